// Package deck models a standard 52-card deck and blackjack hand scoring.
package deck

import (
	"github.com/mcoot/pocketcasino/internal/dependencies/random"
	"github.com/mcoot/pocketcasino/internal/model"
)

// Size is the number of cards in a full deck
const Size = 52

// Deck is a shuffled stack of cards drawn from the front
type Deck struct {
	cards []model.Card
}

// New builds a full deck and shuffles it
func New(rnd random.Random) *Deck {
	return &Deck{cards: Shuffle(rnd, Ordered())}
}

// FromCards wraps an existing card order (used to resume a saved round)
func FromCards(cards []model.Card) *Deck {
	return &Deck{cards: append([]model.Card{}, cards...)}
}

// Ordered returns the 52 cards in suit-major construction order
func Ordered() []model.Card {
	cards := make([]model.Card, 0, Size)
	for _, suit := range model.Suits {
		for _, rank := range model.Ranks {
			cards = append(cards, model.Card{Suit: suit, Rank: rank})
		}
	}
	return cards
}

// Shuffle returns a uniformly permuted copy of cards (Fisher-Yates).
// The input slice is not modified.
func Shuffle(rnd random.Random, cards []model.Card) []model.Card {
	shuffled := append([]model.Card{}, cards...)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Draw removes and returns the top card
func (d *Deck) Draw() (model.Card, error) {
	if len(d.cards) == 0 {
		return model.Card{}, model.ErrDeckEmpty
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// DrawN removes and returns the top n cards
func (d *Deck) DrawN(n int) ([]model.Card, error) {
	if n > len(d.cards) {
		return nil, model.ErrDeckEmpty
	}
	drawn := append([]model.Card{}, d.cards[:n]...)
	d.cards = d.cards[n:]
	return drawn, nil
}

// Remaining returns the number of undrawn cards
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Cards returns a copy of the undrawn cards in draw order
func (d *Deck) Cards() []model.Card {
	return append([]model.Card{}, d.cards...)
}
