package model

import "strconv"

// Suit is one of the four French suits
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists every suit in deck-construction order
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

// String returns the suit glyph
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	}
	return "?"
}

// Rank is a card value; Ace is 1 and King is 13
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Ranks lists every rank in deck-construction order
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

// String returns the short face label (A, 2..10, J, Q, K)
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	if r >= Two && r <= Ten {
		return strconv.Itoa(int(r))
	}
	return "?"
}

// Card is a single playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NumericValue is the blackjack base value: face value for 2-10,
// 10 for court cards and 11 for an Ace
func (c Card) NumericValue() int {
	switch {
	case c.Rank == Ace:
		return 11
	case c.Rank >= Jack:
		return 10
	default:
		return int(c.Rank)
	}
}

// String renders the card as e.g. "10♥"
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}
