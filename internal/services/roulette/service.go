package roulette

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mcoot/pocketcasino/internal/dependencies/random"
	"github.com/mcoot/pocketcasino/internal/model"
)

// Pockets is the number of pockets on a single-zero wheel (0-36)
const Pockets = 37

var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// multipliers are total returns as a multiple of the stake
var multipliers = map[model.RouletteBetKind]int64{
	model.BetStraight: 36,
	model.BetRed:      2,
	model.BetBlack:    2,
	model.BetEven:     2,
	model.BetOdd:      2,
	model.BetLow:      2,
	model.BetHigh:     2,
	model.BetDozen:    3,
	model.BetColumn:   3,
}

// Service spins the roulette wheel
type Service struct {
	random random.Random
}

// New creates a new roulette service
func New(rnd random.Random) *Service {
	return &Service{random: rnd}
}

// Color returns the pocket colour of n. Out-of-range numbers are green.
func Color(n int) model.RouletteColor {
	switch {
	case n <= 0 || n >= Pockets:
		return model.ColorGreen
	case redNumbers[n]:
		return model.ColorRed
	default:
		return model.ColorBlack
	}
}

// ValidateBet checks that sel describes a wager on the layout
func ValidateBet(sel model.RouletteBet) error {
	switch sel.Kind {
	case model.BetStraight:
		if sel.Number < 0 || sel.Number >= Pockets {
			return fmt.Errorf("%w: straight number %d out of range", model.ErrInvalidRouletteBet, sel.Number)
		}
	case model.BetDozen, model.BetColumn:
		if sel.Number < 1 || sel.Number > 3 {
			return fmt.Errorf("%w: %s %d out of range", model.ErrInvalidRouletteBet, sel.Kind, sel.Number)
		}
	case model.BetRed, model.BetBlack, model.BetEven, model.BetOdd, model.BetLow, model.BetHigh:
	default:
		return fmt.Errorf("%w: unknown bet kind %q", model.ErrInvalidRouletteBet, sel.Kind)
	}
	return nil
}

// Spin validates the selection, draws a pocket and settles the bet.
// An invalid selection consumes no randomness.
func (s *Service) Spin(bet int64, sel model.RouletteBet) (model.Outcome, error) {
	if err := ValidateBet(sel); err != nil {
		return model.Outcome{}, err
	}
	return Evaluate(bet, sel, s.random.Intn(Pockets)), nil
}

// Evaluate settles a selection against a fixed winning number
func Evaluate(bet int64, sel model.RouletteBet, number int) model.Outcome {
	var payout int64
	won := Wins(sel, number)
	if won {
		payout = bet * multipliers[sel.Kind]
	}

	outcome := model.Outcome{
		RoundID: uuid.NewString(),
		Game:    model.GameRoulette,
		Bet:     bet,
		Payout:  payout,
		Won:     won,
		Details: &model.RouletteDetails{Bet: sel, Number: number, Color: Color(number)},
	}
	if won && sel.Kind == model.BetStraight {
		outcome.Achievements = []model.AchievementID{model.AchievementRouletteLucky}
	}
	return outcome
}

// Wins reports whether sel covers the winning number.
// Zero only pays a straight bet on zero.
func Wins(sel model.RouletteBet, number int) bool {
	if sel.Kind == model.BetStraight {
		return sel.Number == number
	}
	if number <= 0 || number >= Pockets {
		return false
	}
	switch sel.Kind {
	case model.BetRed:
		return Color(number) == model.ColorRed
	case model.BetBlack:
		return Color(number) == model.ColorBlack
	case model.BetEven:
		return number%2 == 0
	case model.BetOdd:
		return number%2 == 1
	case model.BetLow:
		return number <= 18
	case model.BetHigh:
		return number >= 19
	case model.BetDozen:
		return (number-1)/12+1 == sel.Number
	case model.BetColumn:
		return (number-1)%3+1 == sel.Number
	}
	return false
}

// Multiplier returns the total return multiple for a bet kind
func Multiplier(kind model.RouletteBetKind) int64 {
	return multipliers[kind]
}
