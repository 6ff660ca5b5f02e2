package entity

// GameView is what the presentation layer may see of a game. The opponent's hand and the draw pile
// are reduced to counts.
type GameView struct {
	ID                string `json:"id"`
	Status            Status `json:"status"`
	Turn              Owner  `json:"turn"`
	Winner            Owner  `json:"winner,omitempty"`
	Draw              bool   `json:"draw,omitempty"`
	ActiveSuit        Suit   `json:"active_suit,omitempty"`
	DiscardTop        *Card  `json:"discard_top,omitempty"`
	DiscardPile       []Card `json:"discard_pile"`
	DrawPileCount     int    `json:"draw_pile_count"`
	PlayerHand        []Card `json:"player_hand"`
	OpponentCardCount int    `json:"opponent_card_count"`
}

func (that *Game) View() *GameView {
	view := &GameView{
		ID:                that.ID,
		Status:            that.Status,
		Turn:              that.Turn,
		Winner:            that.Winner,
		Draw:              that.IsDraw(),
		ActiveSuit:        that.ActiveSuit,
		DiscardPile:       append([]Card{}, that.DiscardPile...),
		DrawPileCount:     len(that.DrawPile),
		PlayerHand:        append([]Card{}, that.PlayerHand...),
		OpponentCardCount: len(that.OpponentHand),
	}

	if top, ok := that.Top(); ok {
		view.DiscardTop = &top
	}

	return view
}
