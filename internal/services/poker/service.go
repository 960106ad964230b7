package poker

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mcoot/pocketcasino/internal/dependencies/random"
	"github.com/mcoot/pocketcasino/internal/model"
	"github.com/mcoot/pocketcasino/internal/services/deck"
)

// minPairValue is the lowest pair that pays in jacks-or-better
const minPairValue = int(model.Jack)

// paytable is the jacks-or-better total return as a multiple of the stake
var paytable = map[model.HandRank]int64{
	model.RoyalFlush:    250,
	model.StraightFlush: 50,
	model.FourOfAKind:   25,
	model.FullHouse:     9,
	model.Flush:         6,
	model.Straight:      4,
	model.ThreeOfAKind:  3,
	model.TwoPair:       2,
	model.OnePair:       1,
}

// Service deals jacks-or-better video poker
type Service struct {
	random random.Random
}

// New creates a new video poker service
func New(rnd random.Random) *Service {
	return &Service{random: rnd}
}

// Deal shuffles a fresh deck and deals a five-card hand
func (s *Service) Deal(bet int64) (*model.VideoPokerRound, error) {
	return DealFrom(bet, deck.New(s.random))
}

// DealFrom deals a round from an already-ordered deck
func DealFrom(bet int64, d *deck.Deck) (*model.VideoPokerRound, error) {
	hand, err := d.DrawN(HandSize)
	if err != nil {
		return nil, err
	}
	value, err := Evaluate5(hand)
	if err != nil {
		return nil, err
	}
	return &model.VideoPokerRound{
		ID:    uuid.NewString(),
		Bet:   bet,
		Deck:  d.Cards(),
		Hand:  hand,
		State: model.VideoPokerDealt,
		Value: value,
	}, nil
}

// Draw replaces every card whose index is not in holds, then settles.
// A round may only be drawn once.
func Draw(round *model.VideoPokerRound, holds []int) error {
	if round.State == model.VideoPokerComplete {
		return model.ErrRoundComplete
	}
	held := make(map[int]bool, len(holds))
	for _, i := range holds {
		if i < 0 || i >= HandSize || held[i] {
			return fmt.Errorf("%w: %d", model.ErrInvalidHold, i)
		}
		held[i] = true
	}

	d := deck.FromCards(round.Deck)
	hand := append([]model.Card{}, round.Hand...)
	for i := range hand {
		if held[i] {
			continue
		}
		card, err := d.Draw()
		if err != nil {
			return err
		}
		hand[i] = card
	}

	value, err := Evaluate5(hand)
	if err != nil {
		return err
	}
	round.Hand = hand
	round.Deck = d.Cards()
	round.Value = value
	round.Payout = Payout(value, round.Bet)
	round.State = model.VideoPokerComplete
	return nil
}

// Payout is the total return for an evaluated hand on the given stake
func Payout(value model.HandValue, bet int64) int64 {
	if value.Rank == model.OnePair && value.Kickers[0] < minPairValue {
		return 0
	}
	return paytable[value.Rank] * bet
}

// Outcome converts a drawn round into a round outcome. Getting the stake
// back on jacks or better does not count as a win.
func Outcome(round *model.VideoPokerRound) (model.Outcome, error) {
	if round.State != model.VideoPokerComplete {
		return model.Outcome{}, model.ErrRoundInProgress
	}
	return model.Outcome{
		RoundID: round.ID,
		Game:    model.GamePoker,
		Bet:     round.Bet,
		Payout:  round.Payout,
		Won:     round.Payout > round.Bet,
		Details: round,
	}, nil
}
