package response

import (
	"time"

	"github.com/mcoot/pocketcasino/internal/model"
)

// Event is the JSON body of an SSE frame
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload,omitempty"`
}

// RoundSettled is the payload of a round_settled event
type RoundSettled struct {
	RoundID string `json:"round_id"`
	Game    string `json:"game"`
	Bet     int64  `json:"bet"`
	Payout  int64  `json:"payout"`
	Won     bool   `json:"won"`
	Coins   int64  `json:"coins"`
}

// AchievementUnlocked is the payload of an achievement_unlocked event
type AchievementUnlocked struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// DailyRewardClaimed is the payload of a daily_reward_claimed event
type DailyRewardClaimed struct {
	Amount int64 `json:"amount"`
	Coins  int64 `json:"coins"`
}

// LeaderboardUpdated is the payload of a leaderboard_updated event
type LeaderboardUpdated struct {
	Name  string `json:"name"`
	Coins int64  `json:"coins"`
	Rank  int    `json:"rank"`
}

// EventFromModel converts an engine event to its wire form
func EventFromModel(e model.Event) Event {
	out := Event{Type: string(e.Type), Timestamp: e.Timestamp}
	switch p := e.Payload.(type) {
	case model.RoundSettledPayload:
		out.Payload = RoundSettled{
			RoundID: p.RoundID,
			Game:    string(p.Game),
			Bet:     p.Bet,
			Payout:  p.Payout,
			Won:     p.Won,
			Coins:   p.Coins,
		}
	case model.AchievementUnlockedPayload:
		out.Payload = AchievementUnlocked{ID: string(p.ID), Title: p.Title}
	case model.DailyRewardClaimedPayload:
		out.Payload = DailyRewardClaimed{Amount: p.Amount, Coins: p.Coins}
	case model.LeaderboardUpdatedPayload:
		out.Payload = LeaderboardUpdated{Name: p.Name, Coins: p.Coins, Rank: p.Rank}
	case model.Settings:
		out.Payload = SettingsFromModel(p)
	}
	return out
}
