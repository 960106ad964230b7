package request

// BetRequest is the request body for games that take only a stake
type BetRequest struct {
	Bet int64 `json:"bet"`
}

// RouletteRequest is the request body for a roulette spin. Number is the
// pocket for straight bets and the dozen or column index for those bets.
type RouletteRequest struct {
	Bet    int64  `json:"bet"`
	Kind   string `json:"kind"`
	Number int    `json:"number,omitempty"`
}

// DiceRequest is the request body for a dice roll
type DiceRequest struct {
	Bet  int64  `json:"bet"`
	Pick string `json:"pick"`
}

// PokerDrawRequest lists the 0-based hand positions to keep
type PokerDrawRequest struct {
	Holds []int `json:"holds"`
}

// LeaderboardRequest is the request body for adding a leaderboard entry
type LeaderboardRequest struct {
	Name string `json:"name"`
}

// SettingsRequest is a partial settings update; omitted fields are kept
type SettingsRequest struct {
	SoundEnabled *bool `json:"sound_enabled,omitempty"`
	HighContrast *bool `json:"high_contrast,omitempty"`
	LargeText    *bool `json:"large_text,omitempty"`
}
