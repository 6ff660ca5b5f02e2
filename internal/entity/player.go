package entity

// Player is a session playing against the computer. Generation grows with every new game, so work
// scheduled for an older game can recognise that it is stale.
type Player struct {
	ID         string `json:"id"`
	GameID     string `json:"game_id,omitempty"`
	Generation uint64 `json:"generation"`
}

func (that *Player) InGame() bool {
	return that.GameID != ""
}
