package achievement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/pocketcasino/internal/model"
)

type EvaluatorSuite struct {
	suite.Suite
	now time.Time
	p   *model.Progression
}

func TestEvaluatorSuite(t *testing.T) {
	suite.Run(t, new(EvaluatorSuite))
}

func (s *EvaluatorSuite) SetupTest() {
	s.now = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	s.p = model.NewProgression(Catalog())
}

// Catalog tests

func (s *EvaluatorSuite) TestCatalogOrderAndLockState() {
	ids := make([]model.AchievementID, 0)
	for _, a := range Catalog() {
		ids = append(ids, a.ID)
		s.False(a.Unlocked)
		s.Nil(a.UnlockedAt)
		s.NotEmpty(a.Title)
	}
	s.Equal([]model.AchievementID{
		model.AchievementFirstWin, model.AchievementThreeInRow, model.AchievementJackpot,
		model.AchievementHighRoller, model.AchievementBlackjack21, model.AchievementRouletteLucky,
	}, ids)
}

func (s *EvaluatorSuite) TestCatalogReturnsFreshCopies() {
	first := Catalog()
	first[0].Unlocked = true
	s.False(Catalog()[0].Unlocked)
	s.True(Known(model.AchievementJackpot))
	s.False(Known("unknown"))
}

// Unlock tests

func (s *EvaluatorSuite) TestUnlockIsIdempotent() {
	s.True(Unlock(s.p, model.AchievementJackpot, s.now))
	s.False(Unlock(s.p, model.AchievementJackpot, s.now.Add(time.Hour)))

	a := s.p.Achievement(model.AchievementJackpot)
	s.True(a.Unlocked)
	s.Equal(s.now, *a.UnlockedAt)
}

func (s *EvaluatorSuite) TestUnlockUnknownIsNoop() {
	before := s.p.Clone()
	s.False(Unlock(s.p, "no_such_thing", s.now))
	s.Equal(before, s.p)
}

// Evaluate tests

func (s *EvaluatorSuite) TestFirstWinOnlyWhenGamesWonIsOne() {
	s.p.GamesWon = 1
	s.Equal([]model.AchievementID{model.AchievementFirstWin}, Evaluate(s.p, true, s.now))

	fresh := model.NewProgression(Catalog())
	fresh.GamesWon = 2
	s.Empty(Evaluate(fresh, true, s.now))

	lost := model.NewProgression(Catalog())
	lost.GamesWon = 1
	s.Empty(Evaluate(lost, false, s.now))
}

func (s *EvaluatorSuite) TestStreakAndHighRoller() {
	s.p.WinStreak = 3
	s.p.Coins = 10000

	unlocked := Evaluate(s.p, true, s.now)

	s.ElementsMatch([]model.AchievementID{model.AchievementThreeInRow, model.AchievementHighRoller}, unlocked)
	s.Empty(Evaluate(s.p, true, s.now), "second pass unlocks nothing new")
}

func (s *EvaluatorSuite) TestBelowThresholds() {
	s.p.WinStreak = 2
	s.p.Coins = 9999
	s.Empty(Evaluate(s.p, true, s.now))
	s.Empty(Unlocked(s.p))
}

// Merge tests

func (s *EvaluatorSuite) TestMergeKeepsUnlockedAndAddsNewEntries() {
	at := s.now
	saved := []model.Achievement{
		{ID: model.AchievementJackpot, Title: "Old title", Unlocked: true, UnlockedAt: &at},
		{ID: "retired", Unlocked: true, UnlockedAt: &at},
	}

	merged := Merge(saved)

	s.Len(merged, len(catalog))
	p := &model.Progression{Achievements: merged}
	s.True(p.IsUnlocked(model.AchievementJackpot))
	s.Equal("Jackpot Winner", p.Achievement(model.AchievementJackpot).Title)
	s.Equal(at, *p.Achievement(model.AchievementJackpot).UnlockedAt)
	s.False(p.IsUnlocked(model.AchievementFirstWin))
	s.Nil(p.Achievement("retired"))
}

// Progress tests

func (s *EvaluatorSuite) TestProgress() {
	s.p.GamesWon = 5
	s.p.HighestWinStreak = 2
	s.p.Coins = 12000
	Unlock(s.p, model.AchievementBlackjack21, s.now)

	byID := map[model.AchievementID]model.AchievementProgress{}
	for _, pr := range Progress(s.p) {
		byID[pr.ID] = pr
	}

	s.Equal(model.AchievementProgress{ID: model.AchievementFirstWin, Current: 1, Target: 1}, byID[model.AchievementFirstWin])
	s.Equal(model.AchievementProgress{ID: model.AchievementThreeInRow, Current: 2, Target: 3}, byID[model.AchievementThreeInRow])
	s.Equal(model.AchievementProgress{ID: model.AchievementHighRoller, Current: 10000, Target: 10000}, byID[model.AchievementHighRoller])
	s.Equal(int64(1), byID[model.AchievementBlackjack21].Current)
	s.Equal(int64(0), byID[model.AchievementJackpot].Current)
	s.InDelta(66.67, byID[model.AchievementThreeInRow].Percent(), 0.01)
}
