package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventRoundSettled        EventType = "round_settled"
	EventAchievementUnlocked EventType = "achievement_unlocked"
	EventDailyRewardClaimed  EventType = "daily_reward_claimed"
	EventLeaderboardUpdated  EventType = "leaderboard_updated"
	EventSettingsChanged     EventType = "settings_changed"
	EventStateReset          EventType = "state_reset"
)

// Event is the base structure for all events. Events are purely
// informational; nothing feeds back into the engine from them.
type Event struct {
	Type      EventType
	Timestamp time.Time
	Payload   any // Type-specific data
}

// RoundSettledPayload contains data for round settled events
type RoundSettledPayload struct {
	RoundID string
	Game    GameType
	Bet     int64
	Payout  int64
	Won     bool
	Coins   int64
}

// AchievementUnlockedPayload contains data for achievement unlocked events
type AchievementUnlockedPayload struct {
	ID    AchievementID
	Title string
}

// DailyRewardClaimedPayload contains data for daily reward events
type DailyRewardClaimedPayload struct {
	Amount int64
	Coins  int64
}

// LeaderboardUpdatedPayload contains data for leaderboard events
type LeaderboardUpdatedPayload struct {
	Name  string
	Coins int64
	Rank  int // 1-based; 0 if the entry did not make the top ten
}
