package blackjack

import (
	"github.com/google/uuid"

	"github.com/mcoot/pocketcasino/internal/dependencies/random"
	"github.com/mcoot/pocketcasino/internal/model"
	"github.com/mcoot/pocketcasino/internal/services/deck"
)

// DealerStandsOn is the total at which the dealer stops drawing (all 17s)
const DealerStandsOn = 17

// Service deals blackjack rounds
type Service struct {
	random random.Random
}

// New creates a new blackjack service
func New(rnd random.Random) *Service {
	return &Service{random: rnd}
}

// Deal shuffles a fresh deck and deals player, dealer, player, dealer.
// A natural on either side settles the round immediately.
func (s *Service) Deal(bet int64) (*model.BlackjackRound, error) {
	return DealFrom(bet, deck.New(s.random))
}

// DealFrom deals a round from an already-ordered deck
func DealFrom(bet int64, d *deck.Deck) (*model.BlackjackRound, error) {
	cards, err := d.DrawN(4)
	if err != nil {
		return nil, err
	}
	round := &model.BlackjackRound{
		ID:     uuid.NewString(),
		Bet:    bet,
		Player: []model.Card{cards[0], cards[2]},
		Dealer: []model.Card{cards[1], cards[3]},
		State:  model.BlackjackPlayerTurn,
	}
	round.Deck = d.Cards()
	round.Natural = deck.IsNatural(round.Player)
	refresh(round)

	dealerNatural := deck.IsNatural(round.Dealer)
	switch {
	case round.Natural && dealerNatural:
		settle(round, model.BlackjackPush)
	case round.Natural:
		settle(round, model.BlackjackPlayerNatural)
	case dealerNatural:
		settle(round, model.BlackjackDealerWin)
	}
	return round, nil
}

// Hit draws one card for the player. Busting settles the round.
func Hit(round *model.BlackjackRound) error {
	if round.IsComplete() {
		return model.ErrRoundComplete
	}
	d := deck.FromCards(round.Deck)
	card, err := d.Draw()
	if err != nil {
		return err
	}
	round.Player = append(round.Player, card)
	round.Deck = d.Cards()
	refresh(round)

	if deck.IsBust(round.Player) {
		settle(round, model.BlackjackPlayerBust)
	}
	return nil
}

// Stand ends the player's turn, plays out the dealer and settles
func Stand(round *model.BlackjackRound) error {
	if round.IsComplete() {
		return model.ErrRoundComplete
	}
	d := deck.FromCards(round.Deck)
	for deck.HandValue(round.Dealer) < DealerStandsOn {
		card, err := d.Draw()
		if err != nil {
			return err
		}
		round.Dealer = append(round.Dealer, card)
	}
	round.Deck = d.Cards()
	refresh(round)

	player, dealer := round.PlayerValue, round.DealerValue
	switch {
	case dealer > deck.Blackjack:
		settle(round, model.BlackjackDealerBust)
	case player > dealer:
		settle(round, model.BlackjackPlayerWin)
	case player == dealer:
		settle(round, model.BlackjackPush)
	default:
		settle(round, model.BlackjackDealerWin)
	}
	return nil
}

// PlayAuto hits until the player reaches threshold, then stands
func PlayAuto(round *model.BlackjackRound, threshold int) error {
	for !round.IsComplete() && deck.HandValue(round.Player) < threshold {
		if err := Hit(round); err != nil {
			return err
		}
	}
	if round.IsComplete() {
		return nil
	}
	return Stand(round)
}

// Outcome converts a settled round into a round outcome.
// A natural signals the blackjack_21 achievement whatever the result.
func Outcome(round *model.BlackjackRound) (model.Outcome, error) {
	if !round.IsComplete() {
		return model.Outcome{}, model.ErrRoundInProgress
	}
	outcome := model.Outcome{
		RoundID: round.ID,
		Game:    model.GameBlackjack,
		Bet:     round.Bet,
		Payout:  round.Payout,
		Won:     round.Won(),
		Details: round,
	}
	if round.Natural {
		outcome.Achievements = []model.AchievementID{model.AchievementBlackjack21}
	}
	return outcome, nil
}

// Payout is the total return for a result on the given stake
func Payout(result model.BlackjackResult, bet int64) int64 {
	switch result {
	case model.BlackjackPlayerNatural:
		return bet + bet*3/2
	case model.BlackjackPlayerWin, model.BlackjackDealerBust:
		return bet * 2
	case model.BlackjackPush:
		return bet
	}
	return 0
}

func settle(round *model.BlackjackRound, result model.BlackjackResult) {
	round.State = model.BlackjackComplete
	round.Result = result
	round.Payout = Payout(result, round.Bet)
}

func refresh(round *model.BlackjackRound) {
	round.PlayerValue = deck.HandValue(round.Player)
	round.DealerValue = deck.HandValue(round.Dealer)
}
