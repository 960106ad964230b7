package poker

import (
	"fmt"
	"sort"

	"github.com/mcoot/pocketcasino/internal/model"
)

// HandSize is the number of cards in a ranked hand
const HandSize = 5

// AceHigh is the ranking value of an Ace when it plays high
const AceHigh = 14

// rankValue maps a card rank to its ranking value (Ace high)
func rankValue(r model.Rank) int {
	if r == model.Ace {
		return AceHigh
	}
	return int(r)
}

type group struct {
	value int
	count int
}

// Evaluate5 ranks exactly five cards
func Evaluate5(cards []model.Card) (model.HandValue, error) {
	if len(cards) != HandSize {
		return model.HandValue{}, fmt.Errorf("poker hand needs %d cards, got %d", HandSize, len(cards))
	}

	counts := make(map[int]int, HandSize)
	flush := true
	for i, c := range cards {
		counts[rankValue(c.Rank)]++
		if i > 0 && c.Suit != cards[0].Suit {
			flush = false
		}
	}

	groups := make([]group, 0, len(counts))
	for v, n := range counts {
		groups = append(groups, group{value: v, count: n})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].value > groups[j].value
	})

	kickers := make([]int, len(groups))
	for i, g := range groups {
		kickers[i] = g.value
	}

	hand := model.HandValue{Cards: append([]model.Card{}, cards...)}
	high, straight := straightHigh(groups)

	switch {
	case straight && flush && high == AceHigh:
		hand.Rank, hand.Kickers = model.RoyalFlush, []int{high}
	case straight && flush:
		hand.Rank, hand.Kickers = model.StraightFlush, []int{high}
	case groups[0].count == 4:
		hand.Rank, hand.Kickers = model.FourOfAKind, kickers
	case groups[0].count == 3 && groups[1].count == 2:
		hand.Rank, hand.Kickers = model.FullHouse, kickers
	case flush:
		hand.Rank, hand.Kickers = model.Flush, kickers
	case straight:
		hand.Rank, hand.Kickers = model.Straight, []int{high}
	case groups[0].count == 3:
		hand.Rank, hand.Kickers = model.ThreeOfAKind, kickers
	case groups[0].count == 2 && groups[1].count == 2:
		hand.Rank, hand.Kickers = model.TwoPair, kickers
	case groups[0].count == 2:
		hand.Rank, hand.Kickers = model.OnePair, kickers
	default:
		hand.Rank, hand.Kickers = model.HighCard, kickers
	}
	return hand, nil
}

// straightHigh reports whether five distinct values run consecutively,
// returning the high card. A-2-3-4-5 plays as a five-high straight.
func straightHigh(groups []group) (int, bool) {
	if len(groups) != HandSize {
		return 0, false
	}
	// groups are all singletons here, so they are sorted by value descending
	top, bottom := groups[0].value, groups[HandSize-1].value
	if top-bottom == HandSize-1 {
		return top, true
	}
	if top == AceHigh && groups[1].value == 5 && bottom == 2 {
		return 5, true
	}
	return 0, false
}

// Compare orders two evaluated hands: negative if a loses, zero on a
// split, positive if a wins
func Compare(a, b model.HandValue) int {
	if a.Rank != b.Rank {
		return int(a.Rank) - int(b.Rank)
	}
	for i := 0; i < len(a.Kickers) && i < len(b.Kickers); i++ {
		if a.Kickers[i] != b.Kickers[i] {
			return a.Kickers[i] - b.Kickers[i]
		}
	}
	return len(a.Kickers) - len(b.Kickers)
}

// BestOfSeven picks the strongest five-card hand from five to seven cards
func BestOfSeven(cards []model.Card) (model.HandValue, error) {
	if len(cards) < HandSize || len(cards) > 7 {
		return model.HandValue{}, fmt.Errorf("best hand needs 5 to 7 cards, got %d", len(cards))
	}

	var best model.HandValue
	found := false
	combo := make([]model.Card, HandSize)
	var choose func(start, depth int)
	choose = func(start, depth int) {
		if depth == HandSize {
			// combo is always five cards here
			hand, _ := Evaluate5(combo)
			if !found || Compare(hand, best) > 0 {
				best, found = hand, true
			}
			return
		}
		for i := start; i <= len(cards)-(HandSize-depth); i++ {
			combo[depth] = cards[i]
			choose(i+1, depth+1)
		}
	}
	choose(0, 0)
	return best, nil
}
