// Package achievement holds the static achievement catalog and the rules
// that unlock entries against a progression snapshot.
package achievement

import (
	"time"

	"github.com/samber/lo"

	"github.com/mcoot/pocketcasino/internal/model"
)

const (
	// StreakTarget is the win streak that unlocks three_in_row
	StreakTarget int64 = 3

	// HighRollerCoins is the balance that unlocks high_roller
	HighRollerCoins int64 = 10000
)

var catalog = []model.Achievement{
	{ID: model.AchievementFirstWin, Title: "First Victory", Description: "Win your first game"},
	{ID: model.AchievementThreeInRow, Title: "Hot Streak", Description: "Win 3 games in a row"},
	{ID: model.AchievementJackpot, Title: "Jackpot Winner", Description: "Hit a jackpot in slots"},
	{ID: model.AchievementHighRoller, Title: "High Roller", Description: "Accumulate 10,000 coins"},
	{ID: model.AchievementBlackjack21, Title: "Perfect 21", Description: "Get a natural blackjack"},
	{ID: model.AchievementRouletteLucky, Title: "Lucky Number", Description: "Win on a single number bet in roulette"},
}

// Catalog returns a fresh, fully locked copy of the catalog in display order
func Catalog() []model.Achievement {
	return lo.Map(catalog, func(a model.Achievement, _ int) model.Achievement {
		return model.Achievement{ID: a.ID, Title: a.Title, Description: a.Description}
	})
}

// Known reports whether id is in the catalog
func Known(id model.AchievementID) bool {
	return lo.ContainsBy(catalog, func(a model.Achievement) bool { return a.ID == id })
}

// Evaluate checks the coin and streak rules against the freshly updated
// record and unlocks whatever now qualifies. It returns the ids unlocked
// by this pass.
func Evaluate(p *model.Progression, won bool, now time.Time) []model.AchievementID {
	var unlocked []model.AchievementID
	check := func(id model.AchievementID, ok bool) {
		if ok && Unlock(p, id, now) {
			unlocked = append(unlocked, id)
		}
	}
	check(model.AchievementFirstWin, won && p.GamesWon == 1)
	check(model.AchievementThreeInRow, p.WinStreak >= StreakTarget)
	check(model.AchievementHighRoller, p.Coins >= HighRollerCoins)
	return unlocked
}

// Unlock marks id unlocked and stamps the time. It reports whether the
// entry changed; already-unlocked and unknown ids are no-ops.
func Unlock(p *model.Progression, id model.AchievementID, now time.Time) bool {
	a := p.Achievement(id)
	if a == nil || a.Unlocked {
		return false
	}
	at := now
	a.Unlocked = true
	a.UnlockedAt = &at
	return true
}

// Merge lays saved unlock state over the current catalog. New catalog
// entries appear locked; saved entries no longer in the catalog are dropped.
// Titles and descriptions always come from the catalog.
func Merge(saved []model.Achievement) []model.Achievement {
	byID := lo.KeyBy(saved, func(a model.Achievement) model.AchievementID { return a.ID })
	return lo.Map(Catalog(), func(a model.Achievement, _ int) model.Achievement {
		if s, ok := byID[a.ID]; ok && s.Unlocked {
			a.Unlocked = true
			if s.UnlockedAt != nil {
				at := *s.UnlockedAt
				a.UnlockedAt = &at
			}
		}
		return a
	})
}

// Unlocked returns the unlocked entries in catalog order
func Unlocked(p *model.Progression) []model.Achievement {
	return lo.Filter(p.Achievements, func(a model.Achievement, _ int) bool { return a.Unlocked })
}

// Progress reports how close the player is to each achievement
func Progress(p *model.Progression) []model.AchievementProgress {
	return lo.Map(p.Achievements, func(a model.Achievement, _ int) model.AchievementProgress {
		switch a.ID {
		case model.AchievementFirstWin:
			return model.AchievementProgress{ID: a.ID, Current: min(p.GamesWon, 1), Target: 1}
		case model.AchievementThreeInRow:
			return model.AchievementProgress{ID: a.ID, Current: min(p.HighestWinStreak, StreakTarget), Target: StreakTarget}
		case model.AchievementHighRoller:
			return model.AchievementProgress{ID: a.ID, Current: min(p.Coins, HighRollerCoins), Target: HighRollerCoins}
		}
		current := int64(0)
		if a.Unlocked {
			current = 1
		}
		return model.AchievementProgress{ID: a.ID, Current: current, Target: 1}
	})
}
