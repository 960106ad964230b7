package model

import "time"

const (
	// StartingCoins is the balance of a fresh player record
	StartingCoins int64 = 5000

	// MaxLeaderboardEntries caps the local leaderboard
	MaxLeaderboardEntries = 10
)

// AchievementID identifies an entry in the static achievement catalog
type AchievementID string

const (
	AchievementFirstWin      AchievementID = "first_win"
	AchievementThreeInRow    AchievementID = "three_in_row"
	AchievementJackpot       AchievementID = "jackpot"
	AchievementHighRoller    AchievementID = "high_roller"
	AchievementBlackjack21   AchievementID = "blackjack_21"
	AchievementRouletteLucky AchievementID = "roulette_lucky"
)

// Achievement is one catalog entry together with the player's unlock state.
// Once Unlocked is true it never reverts and UnlockedAt is never rewritten.
type Achievement struct {
	ID          AchievementID
	Title       string
	Description string
	Unlocked    bool
	UnlockedAt  *time.Time
}

// AchievementProgress is how far the player is towards an achievement
type AchievementProgress struct {
	ID      AchievementID
	Current int64
	Target  int64
}

// Percent returns progress as a percentage in [0, 100]
func (p AchievementProgress) Percent() float64 {
	if p.Target <= 0 {
		return 0
	}
	pct := float64(p.Current) / float64(p.Target) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// LeaderboardEntry is an immutable snapshot of a player's balance
type LeaderboardEntry struct {
	Name  string
	Coins int64
	Date  time.Time
}

// Settings are presentation-only preferences
type Settings struct {
	SoundEnabled bool
	HighContrast bool
	LargeText    bool
}

// SettingsUpdate is a partial Settings; nil fields are left unchanged
type SettingsUpdate struct {
	SoundEnabled *bool
	HighContrast *bool
	LargeText    *bool
}

// DailyRewardResult reports the result of a daily reward claim
type DailyRewardResult struct {
	Success bool
	Amount  int64
	Message string
}

// Progression is the persisted player record every game reads and mutates
type Progression struct {
	Coins            int64
	SoundEnabled     bool // mirrors Settings.SoundEnabled for older saves
	Achievements     []Achievement
	Leaderboard      []LeaderboardEntry
	LastDailyReward  *time.Time
	GamesPlayed      int64
	GamesWon         int64
	WinStreak        int64
	HighestWinStreak int64
	TotalWinnings    int64
	Settings         Settings
}

// NewProgression returns the initial record for a first run
func NewProgression(catalog []Achievement) *Progression {
	achievements := make([]Achievement, len(catalog))
	for i, a := range catalog {
		achievements[i] = Achievement{ID: a.ID, Title: a.Title, Description: a.Description}
	}
	return &Progression{
		Coins:        StartingCoins,
		SoundEnabled: true,
		Achievements: achievements,
		Leaderboard:  []LeaderboardEntry{},
		Settings: Settings{
			SoundEnabled: true,
		},
	}
}

// Achievement returns a pointer to the achievement with the given id, or nil
func (p *Progression) Achievement(id AchievementID) *Achievement {
	for i := range p.Achievements {
		if p.Achievements[i].ID == id {
			return &p.Achievements[i]
		}
	}
	return nil
}

// IsUnlocked reports whether the achievement exists and is unlocked
func (p *Progression) IsUnlocked(id AchievementID) bool {
	a := p.Achievement(id)
	return a != nil && a.Unlocked
}

// Clone returns a deep copy safe to hand to other goroutines
func (p *Progression) Clone() *Progression {
	c := *p
	c.Achievements = make([]Achievement, len(p.Achievements))
	for i, a := range p.Achievements {
		if a.UnlockedAt != nil {
			at := *a.UnlockedAt
			a.UnlockedAt = &at
		}
		c.Achievements[i] = a
	}
	c.Leaderboard = append([]LeaderboardEntry{}, p.Leaderboard...)
	if p.LastDailyReward != nil {
		last := *p.LastDailyReward
		c.LastDailyReward = &last
	}
	return &c
}
