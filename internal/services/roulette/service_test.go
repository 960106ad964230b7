package roulette

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/pocketcasino/internal/dependencies/mocks"
	"github.com/mcoot/pocketcasino/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	random  *mocks.MockRandom
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.service = New(s.random)
}

// Colour partition tests

func (s *ServiceSuite) TestColorOfKnownPockets() {
	s.Equal(model.ColorGreen, Color(0))
	s.Equal(model.ColorRed, Color(1))
	s.Equal(model.ColorBlack, Color(2))
	s.Equal(model.ColorRed, Color(36))
	s.Equal(model.ColorBlack, Color(35))
}

func (s *ServiceSuite) TestColorPartitionCoversWheel() {
	counts := map[model.RouletteColor]int{}
	for n := 0; n < Pockets; n++ {
		counts[Color(n)]++
	}
	s.Equal(1, counts[model.ColorGreen])
	s.Equal(18, counts[model.ColorRed])
	s.Equal(18, counts[model.ColorBlack])
	s.Len(counts, 3)
}

// Spin tests

func (s *ServiceSuite) TestSpinDrawsOnePocket() {
	s.random.QueueIntn(17)

	outcome, err := s.service.Spin(100, model.RouletteBet{Kind: model.BetBlack})
	s.Require().NoError(err)

	s.Equal([]int{Pockets}, s.random.IntnCalls)
	details := outcome.Details.(*model.RouletteDetails)
	s.Equal(17, details.Number)
	s.Equal(model.ColorBlack, details.Color)
	s.True(outcome.Won)
	s.Equal(int64(200), outcome.Payout)
	s.Equal(model.GameRoulette, outcome.Game)
}

func (s *ServiceSuite) TestSpinRejectsInvalidBetWithoutDrawing() {
	tests := []model.RouletteBet{
		{Kind: model.BetStraight, Number: 37},
		{Kind: model.BetStraight, Number: -1},
		{Kind: model.BetDozen, Number: 0},
		{Kind: model.BetColumn, Number: 4},
		{Kind: "corner"},
	}
	for _, sel := range tests {
		_, err := s.service.Spin(100, sel)
		s.ErrorIs(err, model.ErrInvalidRouletteBet, "%+v", sel)
	}
	s.Zero(s.random.Draws())
}

// Settlement tests

func (s *ServiceSuite) TestStraightWinPaysThirtySixAndSignalsLucky() {
	outcome := Evaluate(25, model.RouletteBet{Kind: model.BetStraight, Number: 7}, 7)
	s.True(outcome.Won)
	s.Equal(int64(900), outcome.Payout)
	s.Equal([]model.AchievementID{model.AchievementRouletteLucky}, outcome.Achievements)
}

func (s *ServiceSuite) TestStraightOnZero() {
	outcome := Evaluate(25, model.RouletteBet{Kind: model.BetStraight, Number: 0}, 0)
	s.True(outcome.Won)
	s.Equal(int64(900), outcome.Payout)
}

func (s *ServiceSuite) TestStraightLoss() {
	outcome := Evaluate(25, model.RouletteBet{Kind: model.BetStraight, Number: 7}, 8)
	s.False(outcome.Won)
	s.Zero(outcome.Payout)
	s.Empty(outcome.Achievements)
}

func (s *ServiceSuite) TestZeroLosesOutsideBets() {
	for _, kind := range []model.RouletteBetKind{
		model.BetRed, model.BetBlack, model.BetEven, model.BetOdd, model.BetLow, model.BetHigh,
	} {
		s.False(Wins(model.RouletteBet{Kind: kind}, 0), "%s", kind)
	}
	s.False(Wins(model.RouletteBet{Kind: model.BetDozen, Number: 1}, 0))
	s.False(Wins(model.RouletteBet{Kind: model.BetColumn, Number: 3}, 0))
}

func (s *ServiceSuite) TestOutsideBets() {
	tests := []struct {
		sel    model.RouletteBet
		number int
		want   bool
	}{
		{model.RouletteBet{Kind: model.BetRed}, 3, true},
		{model.RouletteBet{Kind: model.BetRed}, 4, false},
		{model.RouletteBet{Kind: model.BetEven}, 36, true},
		{model.RouletteBet{Kind: model.BetOdd}, 36, false},
		{model.RouletteBet{Kind: model.BetLow}, 18, true},
		{model.RouletteBet{Kind: model.BetHigh}, 18, false},
		{model.RouletteBet{Kind: model.BetHigh}, 19, true},
		{model.RouletteBet{Kind: model.BetDozen, Number: 1}, 12, true},
		{model.RouletteBet{Kind: model.BetDozen, Number: 2}, 13, true},
		{model.RouletteBet{Kind: model.BetDozen, Number: 3}, 24, false},
		{model.RouletteBet{Kind: model.BetColumn, Number: 1}, 34, true},
		{model.RouletteBet{Kind: model.BetColumn, Number: 2}, 35, true},
		{model.RouletteBet{Kind: model.BetColumn, Number: 3}, 36, true},
		{model.RouletteBet{Kind: model.BetColumn, Number: 3}, 34, false},
	}
	for _, tt := range tests {
		s.Equal(tt.want, Wins(tt.sel, tt.number), "%+v on %d", tt.sel, tt.number)
	}
}

func (s *ServiceSuite) TestOutsidePayouts() {
	s.Equal(int64(100), Evaluate(50, model.RouletteBet{Kind: model.BetRed}, 1).Payout)
	s.Equal(int64(150), Evaluate(50, model.RouletteBet{Kind: model.BetDozen, Number: 3}, 30).Payout)
	s.Equal(int64(3), Multiplier(model.BetColumn))
}
