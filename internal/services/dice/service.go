package dice

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mcoot/pocketcasino/internal/dependencies/random"
	"github.com/mcoot/pocketcasino/internal/model"
)

// Faces is the number of sides on each die
const Faces = 6

var multipliers = map[model.DiceBet]int64{
	model.DiceOver:    2,
	model.DiceUnder:   2,
	model.DiceSeven:   5,
	model.DiceDoubles: 5,
}

// Service rolls two dice
type Service struct {
	random random.Random
}

// New creates a new dice service
func New(rnd random.Random) *Service {
	return &Service{random: rnd}
}

// ValidateBet checks that b is a known dice wager
func ValidateBet(b model.DiceBet) error {
	if _, ok := multipliers[b]; !ok {
		return fmt.Errorf("%w: %q", model.ErrInvalidDiceBet, b)
	}
	return nil
}

// Roll validates the wager then draws one value per die
func (s *Service) Roll(bet int64, b model.DiceBet) (model.Outcome, error) {
	if err := ValidateBet(b); err != nil {
		return model.Outcome{}, err
	}
	d1 := s.random.Intn(Faces) + 1
	d2 := s.random.Intn(Faces) + 1
	return Evaluate(bet, b, [2]int{d1, d2}), nil
}

// Evaluate settles a wager against a fixed pair of dice
func Evaluate(bet int64, b model.DiceBet, dice [2]int) model.Outcome {
	sum := dice[0] + dice[1]
	won := Wins(b, dice)
	var payout int64
	if won {
		payout = bet * multipliers[b]
	}
	return model.Outcome{
		RoundID: uuid.NewString(),
		Game:    model.GameDice,
		Bet:     bet,
		Payout:  payout,
		Won:     won,
		Details: &model.DiceDetails{Bet: b, Dice: dice, Sum: sum},
	}
}

// Wins reports whether the dice satisfy the wager
func Wins(b model.DiceBet, dice [2]int) bool {
	sum := dice[0] + dice[1]
	switch b {
	case model.DiceOver:
		return sum >= 8
	case model.DiceUnder:
		return sum <= 6
	case model.DiceSeven:
		return sum == 7
	case model.DiceDoubles:
		return dice[0] == dice[1]
	}
	return false
}
