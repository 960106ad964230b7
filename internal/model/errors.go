package model

import "errors"

// Common errors used across the application
var (
	// Betting errors
	ErrInvalidBet        = errors.New("bet must be positive")
	ErrInsufficientFunds = errors.New("insufficient coins for bet")
	ErrBetBelowMinimum   = errors.New("bet is below the table minimum")
	ErrUnknownGame       = errors.New("unknown game")

	// Progression errors
	ErrInvalidName = errors.New("leaderboard name must not be empty")

	// Round errors
	ErrNoActiveRound   = errors.New("no round in progress")
	ErrRoundInProgress = errors.New("a round is already in progress")
	ErrRoundComplete   = errors.New("round is already complete")

	// Rule errors
	ErrInvalidRouletteBet = errors.New("invalid roulette bet")
	ErrInvalidDiceBet     = errors.New("invalid dice bet")
	ErrInvalidHold        = errors.New("hold positions must be between 0 and 4")
	ErrDeckEmpty          = errors.New("deck is empty")

	// Persistence errors
	ErrMalformedState = errors.New("saved state is malformed")
)
