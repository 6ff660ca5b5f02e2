package entity

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/crazyeights-backend/internal/apperror"
)

type Suit string

const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"

	NoSuit Suit = ""
)

// Suits is the canonical suit order. Deck construction and every suit tie-break follow it.
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

func (that Suit) IsValid() bool {
	switch that {
	case Hearts, Diamonds, Clubs, Spades:
		return true
	default:
		return false
	}
}

func ParseSuit(s string) (Suit, error) {
	suit := Suit(strings.ToLower(strings.TrimSpace(s)))
	if !suit.IsValid() {
		return NoSuit, fmt.Errorf("%w: %q", apperror.ErrInvalidSuit, s)
	}

	return suit, nil
}

type Rank string

const (
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
	Ace   Rank = "A"
)

var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

func (that Rank) IsValid() bool {
	for _, rank := range Ranks {
		if rank == that {
			return true
		}
	}
	return false
}

// Card is an immutable (suit, rank) pair.
type Card struct {
	Suit Suit
	Rank Rank
}

func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// ID is unique within a deck, e.g. "K-hearts".
func (that Card) ID() string {
	return string(that.Rank) + "-" + string(that.Suit)
}

func (that Card) IsWild() bool {
	return that.Rank == Eight
}

func (that Card) String() string {
	return that.ID()
}

func ParseCardID(id string) (Card, error) {
	rank, suit, ok := strings.Cut(strings.TrimSpace(id), "-")
	if !ok {
		return Card{}, fmt.Errorf("%w: %q", apperror.ErrInvalidCard, id)
	}

	card := Card{Suit: Suit(suit), Rank: Rank(strings.ToUpper(rank))}
	if !card.Suit.IsValid() || !card.Rank.IsValid() {
		return Card{}, fmt.Errorf("%w: %q", apperror.ErrInvalidCard, id)
	}

	return card, nil
}

type cardJSON struct {
	ID   string `json:"id"`
	Suit Suit   `json:"suit"`
	Rank Rank   `json:"rank"`
}

func (that Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(cardJSON{ID: that.ID(), Suit: that.Suit, Rank: that.Rank})
}

func (that *Card) UnmarshalJSON(data []byte) error {
	var raw cardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to unmarshal card: %w", err)
	}

	that.Suit = raw.Suit
	that.Rank = raw.Rank

	return nil
}
