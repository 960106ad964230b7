package deck

import "github.com/mcoot/pocketcasino/internal/model"

// Blackjack is the target hand total
const Blackjack = 21

// HandValue scores a blackjack hand. Every Ace starts at 11; while the
// total is over 21 and an Ace is still counted high, one Ace drops to 1.
func HandValue(cards []model.Card) int {
	total, _ := handTotal(cards)
	return total
}

// IsSoft reports whether the best total still counts an Ace as 11
func IsSoft(cards []model.Card) bool {
	_, softAces := handTotal(cards)
	return softAces > 0
}

// IsNatural reports whether cards form a two-card 21
func IsNatural(cards []model.Card) bool {
	return len(cards) == 2 && HandValue(cards) == Blackjack
}

// IsBust reports whether the hand is over 21 after ace adjustment
func IsBust(cards []model.Card) bool {
	return HandValue(cards) > Blackjack
}

func handTotal(cards []model.Card) (total, softAces int) {
	for _, c := range cards {
		total += c.NumericValue()
		if c.Rank == model.Ace {
			softAces++
		}
	}
	for total > Blackjack && softAces > 0 {
		total -= 10
		softAces--
	}
	return total, softAces
}
