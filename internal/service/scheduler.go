package service

import (
	"sync"
	"time"
)

// OpponentScheduler runs at most one delayed task per player. Scheduling again for the same
// player replaces the pending task.
type OpponentScheduler struct {
	mu      sync.Mutex
	delay   time.Duration
	timers  map[string]*time.Timer
	stopped bool
}

func NewOpponentScheduler(delay time.Duration) *OpponentScheduler {
	return &OpponentScheduler{
		delay:  delay,
		timers: make(map[string]*time.Timer),
	}
}

func (that *OpponentScheduler) Schedule(playerID string, task func()) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.stopped {
		return
	}

	if timer, ok := that.timers[playerID]; ok {
		timer.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(that.delay, func() {
		that.mu.Lock()
		if that.timers[playerID] == timer {
			delete(that.timers, playerID)
		}
		that.mu.Unlock()

		task()
	})
	that.timers[playerID] = timer
}

// Cancel drops the pending task of the player. A task that already started still runs to the end.
func (that *OpponentScheduler) Cancel(playerID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if timer, ok := that.timers[playerID]; ok {
		timer.Stop()
		delete(that.timers, playerID)
	}
}

func (that *OpponentScheduler) Pending(playerID string) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	_, ok := that.timers[playerID]
	return ok
}

func (that *OpponentScheduler) Stop() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.stopped = true
	for playerID, timer := range that.timers {
		timer.Stop()
		delete(that.timers, playerID)
	}
}
