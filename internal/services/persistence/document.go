package persistence

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/mcoot/pocketcasino/internal/model"
	"github.com/mcoot/pocketcasino/internal/services/achievement"
)

const (
	// StateKey is the storage key the player record is saved under
	StateKey = "lucky-fun-casino-state"

	// DocumentVersion is written into every saved document
	DocumentVersion = 1
)

// document is the on-disk layout of a Progression. Keys follow the
// browser save format so older saves load unchanged.
type document struct {
	Version          int              `json:"version"`
	Coins            *int64           `json:"coins"`
	SoundEnabled     *bool            `json:"soundEnabled,omitempty"`
	Achievements     []achievementDoc `json:"achievements"`
	Leaderboard      []leaderboardDoc `json:"leaderboard"`
	LastDailyReward  *time.Time       `json:"lastDailyReward"`
	GamesPlayed      int64            `json:"gamesPlayed"`
	GamesWon         int64            `json:"gamesWon"`
	WinStreak        int64            `json:"winStreak"`
	HighestWinStreak int64            `json:"highestWinStreak"`
	TotalWinnings    int64            `json:"totalWinnings"`
	Settings         *settingsDoc     `json:"settings,omitempty"`
}

type achievementDoc struct {
	ID          model.AchievementID `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Unlocked    bool                `json:"unlocked"`
	UnlockedAt  *time.Time          `json:"unlockedAt,omitempty"`
}

type leaderboardDoc struct {
	Name  string    `json:"name"`
	Coins int64     `json:"coins"`
	Date  time.Time `json:"date"`
}

type settingsDoc struct {
	SoundEnabled bool `json:"soundEnabled"`
	HighContrast bool `json:"highContrast"`
	LargeText    bool `json:"largeText"`
}

// Encode serializes a Progression into the saved document layout
func Encode(p *model.Progression) ([]byte, error) {
	coins := p.Coins
	sound := p.SoundEnabled
	doc := document{
		Version:          DocumentVersion,
		Coins:            &coins,
		SoundEnabled:     &sound,
		Achievements:     make([]achievementDoc, len(p.Achievements)),
		Leaderboard:      make([]leaderboardDoc, len(p.Leaderboard)),
		LastDailyReward:  p.LastDailyReward,
		GamesPlayed:      p.GamesPlayed,
		GamesWon:         p.GamesWon,
		WinStreak:        p.WinStreak,
		HighestWinStreak: p.HighestWinStreak,
		TotalWinnings:    p.TotalWinnings,
		Settings: &settingsDoc{
			SoundEnabled: p.Settings.SoundEnabled,
			HighContrast: p.Settings.HighContrast,
			LargeText:    p.Settings.LargeText,
		},
	}
	for i, a := range p.Achievements {
		doc.Achievements[i] = achievementDoc(a)
	}
	for i, e := range p.Leaderboard {
		doc.Leaderboard[i] = leaderboardDoc(e)
	}
	return json.Marshal(doc)
}

// Decode parses a saved document. The achievement catalog is re-merged
// against the saved entries. Documents that fail to parse, lack a coin
// balance or carry negative counters are rejected with ErrMalformedState.
func Decode(data []byte) (*model.Progression, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedState, err)
	}
	if doc.Coins == nil {
		return nil, fmt.Errorf("%w: missing coins", model.ErrMalformedState)
	}
	if doc.Version > DocumentVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", model.ErrMalformedState, doc.Version)
	}
	for name, v := range map[string]int64{
		"coins":            *doc.Coins,
		"gamesPlayed":      doc.GamesPlayed,
		"gamesWon":         doc.GamesWon,
		"winStreak":        doc.WinStreak,
		"highestWinStreak": doc.HighestWinStreak,
		"totalWinnings":    doc.TotalWinnings,
	} {
		if v < 0 {
			return nil, fmt.Errorf("%w: negative %s", model.ErrMalformedState, name)
		}
	}

	p := model.NewProgression(achievement.Catalog())
	p.Coins = *doc.Coins
	p.LastDailyReward = doc.LastDailyReward
	p.GamesPlayed = doc.GamesPlayed
	p.GamesWon = doc.GamesWon
	p.WinStreak = doc.WinStreak
	p.HighestWinStreak = max(doc.HighestWinStreak, doc.WinStreak)
	p.TotalWinnings = doc.TotalWinnings

	if doc.Settings != nil {
		p.Settings = model.Settings{
			SoundEnabled: doc.Settings.SoundEnabled,
			HighContrast: doc.Settings.HighContrast,
			LargeText:    doc.Settings.LargeText,
		}
	}
	p.SoundEnabled = p.Settings.SoundEnabled
	if doc.SoundEnabled != nil {
		p.SoundEnabled = *doc.SoundEnabled
	}

	saved := make([]model.Achievement, len(doc.Achievements))
	for i, a := range doc.Achievements {
		saved[i] = model.Achievement(a)
	}
	p.Achievements = achievement.Merge(saved)

	for _, e := range doc.Leaderboard {
		p.Leaderboard = append(p.Leaderboard, model.LeaderboardEntry(e))
	}
	sort.SliceStable(p.Leaderboard, func(i, j int) bool {
		return p.Leaderboard[i].Coins > p.Leaderboard[j].Coins
	})
	if len(p.Leaderboard) > model.MaxLeaderboardEntries {
		p.Leaderboard = p.Leaderboard[:model.MaxLeaderboardEntries]
	}
	return p, nil
}
