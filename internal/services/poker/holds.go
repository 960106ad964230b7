package poker

import (
	"github.com/samber/lo"

	"github.com/mcoot/pocketcasino/internal/model"
)

// SuggestHolds picks the positions a simple strategy keeps before the
// draw: every card of a made straight or better, otherwise any pairs and
// sets, otherwise the high cards that could make a paying pair.
func SuggestHolds(hand []model.Card) []int {
	all := lo.Range(len(hand))
	if value, err := Evaluate5(hand); err == nil && value.Rank >= model.Straight {
		return all
	}

	counts := lo.CountValuesBy(hand, func(c model.Card) model.Rank { return c.Rank })
	matched := lo.Filter(all, func(i int, _ int) bool { return counts[hand[i].Rank] >= 2 })
	if len(matched) > 0 {
		return matched
	}
	return lo.Filter(all, func(i int, _ int) bool { return rankValue(hand[i].Rank) >= minPairValue })
}
