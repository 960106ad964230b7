// Package session ties the game rules to the player record. It owns the
// progression controller for one player and is the only place rounds are
// validated, staked and settled.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mcoot/pocketcasino/internal/dependencies/random"
	"github.com/mcoot/pocketcasino/internal/model"
	"github.com/mcoot/pocketcasino/internal/services/blackjack"
	"github.com/mcoot/pocketcasino/internal/services/dice"
	"github.com/mcoot/pocketcasino/internal/services/poker"
	"github.com/mcoot/pocketcasino/internal/services/progression"
	"github.com/mcoot/pocketcasino/internal/services/roulette"
	"github.com/mcoot/pocketcasino/internal/services/slots"
)

// BlackjackTurn is the state after a blackjack action. Outcome is set
// once the round has been settled.
type BlackjackTurn struct {
	Round   *model.BlackjackRound
	Outcome *model.Outcome
}

// Service plays rounds against one player's record
type Service struct {
	progression *progression.Controller
	slots       *slots.Service
	roulette    *roulette.Service
	blackjack   *blackjack.Service
	dice        *dice.Service
	poker       *poker.Service
	logger      *slog.Logger

	// mu keeps one round in flight at a time
	mu             sync.Mutex
	blackjackRound *model.BlackjackRound
	pokerRound     *model.VideoPokerRound
}

// New creates a session over the given controller
func New(ctrl *progression.Controller, rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		progression: ctrl,
		slots:       slots.New(rnd),
		roulette:    roulette.New(rnd),
		blackjack:   blackjack.New(rnd),
		dice:        dice.New(rnd),
		poker:       poker.New(rnd),
		logger:      logger,
	}
}

// Progression returns the controller that owns the player record
func (s *Service) Progression() *progression.Controller {
	return s.progression
}

// ValidateBet checks a stake against the game's table minimum and the
// current balance without changing anything
func (s *Service) ValidateBet(game model.GameType, bet int64) error {
	info, ok := model.LookupGame(game)
	if !ok {
		return fmt.Errorf("%w: %q", model.ErrUnknownGame, game)
	}
	if bet <= 0 {
		return model.ErrInvalidBet
	}
	if bet < info.MinBet {
		return fmt.Errorf("%w: %s minimum is %d", model.ErrBetBelowMinimum, info.Title, info.MinBet)
	}
	if coins := s.progression.Coins(); bet > coins {
		return fmt.Errorf("%w: bet %d, balance %d", model.ErrInsufficientFunds, bet, coins)
	}
	return nil
}

// stake validates and takes the bet before any randomness is drawn
func (s *Service) stake(game model.GameType, bet int64) error {
	if err := s.ValidateBet(game, bet); err != nil {
		return err
	}
	return s.progression.PlaceBet(bet)
}

func (s *Service) settle(outcome model.Outcome) model.Outcome {
	s.progression.Settle(outcome)
	s.logger.Info("round played",
		slog.String("game", string(outcome.Game)),
		slog.Int64("bet", outcome.Bet),
		slog.Int64("payout", outcome.Payout),
	)
	return outcome
}

// SpinSlots plays one slot machine spin
func (s *Service) SpinSlots(bet int64) (model.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.stake(model.GameSlots, bet); err != nil {
		return model.Outcome{}, err
	}
	return s.settle(s.slots.Spin(bet)), nil
}

// SpinRoulette plays one roulette spin on a single selection
func (s *Service) SpinRoulette(bet int64, sel model.RouletteBet) (model.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := roulette.ValidateBet(sel); err != nil {
		return model.Outcome{}, err
	}
	if err := s.stake(model.GameRoulette, bet); err != nil {
		return model.Outcome{}, err
	}
	outcome, err := s.roulette.Spin(bet, sel)
	if err != nil {
		return model.Outcome{}, err
	}
	return s.settle(outcome), nil
}

// RollDice plays one roll of two dice
func (s *Service) RollDice(bet int64, b model.DiceBet) (model.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := dice.ValidateBet(b); err != nil {
		return model.Outcome{}, err
	}
	if err := s.stake(model.GameDice, bet); err != nil {
		return model.Outcome{}, err
	}
	outcome, err := s.dice.Roll(bet, b)
	if err != nil {
		return model.Outcome{}, err
	}
	return s.settle(outcome), nil
}

// StartBlackjack stakes bet and deals a round. Naturals settle at once.
func (s *Service) StartBlackjack(bet int64) (BlackjackTurn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.blackjackRound != nil {
		return BlackjackTurn{}, model.ErrRoundInProgress
	}
	if err := s.stake(model.GameBlackjack, bet); err != nil {
		return BlackjackTurn{}, err
	}
	round, err := s.blackjack.Deal(bet)
	if err != nil {
		return BlackjackTurn{}, err
	}
	s.blackjackRound = round
	return s.advanceBlackjack()
}

// HitBlackjack draws a card in the active round
func (s *Service) HitBlackjack() (BlackjackTurn, error) {
	return s.actBlackjack(blackjack.Hit)
}

// StandBlackjack ends the player's turn in the active round
func (s *Service) StandBlackjack() (BlackjackTurn, error) {
	return s.actBlackjack(blackjack.Stand)
}

// AutoBlackjack hits the active round up to threshold and stands
func (s *Service) AutoBlackjack(threshold int) (BlackjackTurn, error) {
	return s.actBlackjack(func(r *model.BlackjackRound) error {
		return blackjack.PlayAuto(r, threshold)
	})
}

func (s *Service) actBlackjack(action func(*model.BlackjackRound) error) (BlackjackTurn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.blackjackRound == nil {
		return BlackjackTurn{}, model.ErrNoActiveRound
	}
	if err := action(s.blackjackRound); err != nil {
		return BlackjackTurn{}, err
	}
	return s.advanceBlackjack()
}

// advanceBlackjack settles the active round once it is complete
func (s *Service) advanceBlackjack() (BlackjackTurn, error) {
	round := s.blackjackRound
	turn := BlackjackTurn{Round: copyBlackjack(round)}
	if !round.IsComplete() {
		return turn, nil
	}
	outcome, err := blackjack.Outcome(round)
	if err != nil {
		return BlackjackTurn{}, err
	}
	s.blackjackRound = nil
	outcome.Details = turn.Round
	settled := s.settle(outcome)
	turn.Outcome = &settled
	return turn, nil
}

// ActiveBlackjack returns a copy of the round in progress, or nil
func (s *Service) ActiveBlackjack() *model.BlackjackRound {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.blackjackRound == nil {
		return nil
	}
	return copyBlackjack(s.blackjackRound)
}

// StartPoker stakes bet and deals a video poker hand
func (s *Service) StartPoker(bet int64) (*model.VideoPokerRound, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pokerRound != nil {
		return nil, model.ErrRoundInProgress
	}
	if err := s.stake(model.GamePoker, bet); err != nil {
		return nil, err
	}
	round, err := s.poker.Deal(bet)
	if err != nil {
		return nil, err
	}
	s.pokerRound = round
	return copyPoker(round), nil
}

// DrawPoker replaces the unheld cards and settles the hand
func (s *Service) DrawPoker(holds []int) (model.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pokerRound == nil {
		return model.Outcome{}, model.ErrNoActiveRound
	}
	if err := poker.Draw(s.pokerRound, holds); err != nil {
		return model.Outcome{}, err
	}
	outcome, err := poker.Outcome(s.pokerRound)
	if err != nil {
		return model.Outcome{}, err
	}
	outcome.Details = copyPoker(s.pokerRound)
	s.pokerRound = nil
	return s.settle(outcome), nil
}

// ActivePoker returns a copy of the hand in progress, or nil
func (s *Service) ActivePoker() *model.VideoPokerRound {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pokerRound == nil {
		return nil
	}
	return copyPoker(s.pokerRound)
}

// Reset abandons any rounds in flight and restores the initial record.
// Stakes already taken for abandoned rounds are not returned.
func (s *Service) Reset(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blackjackRound = nil
	s.pokerRound = nil
	return s.progression.Reset(ctx)
}

func copyBlackjack(r *model.BlackjackRound) *model.BlackjackRound {
	c := *r
	c.Deck = append([]model.Card{}, r.Deck...)
	c.Player = append([]model.Card{}, r.Player...)
	c.Dealer = append([]model.Card{}, r.Dealer...)
	return &c
}

func copyPoker(r *model.VideoPokerRound) *model.VideoPokerRound {
	c := *r
	c.Deck = append([]model.Card{}, r.Deck...)
	c.Hand = append([]model.Card{}, r.Hand...)
	c.Value.Cards = append([]model.Card{}, r.Value.Cards...)
	c.Value.Kickers = append([]int{}, r.Value.Kickers...)
	return &c
}
