package response

import (
	"time"

	"github.com/samber/lo"

	"github.com/mcoot/pocketcasino/internal/model"
)

// Health is the health check body
type Health struct {
	Status string `json:"status"`
}

// Game is a lobby catalog entry
type Game struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	MinBet      int64  `json:"min_bet"`
	MaxWin      int64  `json:"max_win"`
}

// GamesFromModel converts the game catalog
func GamesFromModel(games []model.GameInfo) []Game {
	return lo.Map(games, func(g model.GameInfo, _ int) Game {
		return Game{
			Type:        string(g.Type),
			Title:       g.Title,
			Description: g.Description,
			MinBet:      g.MinBet,
			MaxWin:      g.MaxWin,
		}
	})
}

// Achievement is a catalog entry with the player's unlock state
type Achievement struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}

// AchievementFromModel converts model.Achievement
func AchievementFromModel(a model.Achievement) Achievement {
	return Achievement{
		ID:          string(a.ID),
		Title:       a.Title,
		Description: a.Description,
		Unlocked:    a.Unlocked,
		UnlockedAt:  a.UnlockedAt,
	}
}

// AchievementProgress is progress towards one achievement
type AchievementProgress struct {
	ID      string  `json:"id"`
	Current int64   `json:"current"`
	Target  int64   `json:"target"`
	Percent float64 `json:"percent"`
}

// Achievements is the achievements endpoint body
type Achievements struct {
	Achievements []Achievement         `json:"achievements"`
	Unlocked     int                   `json:"unlocked"`
	Progress     []AchievementProgress `json:"progress"`
}

// AchievementsFromModel converts the catalog state and progress
func AchievementsFromModel(all []model.Achievement, progress []model.AchievementProgress) Achievements {
	return Achievements{
		Achievements: lo.Map(all, func(a model.Achievement, _ int) Achievement { return AchievementFromModel(a) }),
		Unlocked:     lo.CountBy(all, func(a model.Achievement) bool { return a.Unlocked }),
		Progress: lo.Map(progress, func(p model.AchievementProgress, _ int) AchievementProgress {
			return AchievementProgress{ID: string(p.ID), Current: p.Current, Target: p.Target, Percent: p.Percent()}
		}),
	}
}

// LeaderboardEntry is one ranked leaderboard row
type LeaderboardEntry struct {
	Rank  int       `json:"rank"`
	Name  string    `json:"name"`
	Coins int64     `json:"coins"`
	Date  time.Time `json:"date"`
}

// LeaderboardFromModel converts the leaderboard, numbering ranks from 1
func LeaderboardFromModel(entries []model.LeaderboardEntry) []LeaderboardEntry {
	return lo.Map(entries, func(e model.LeaderboardEntry, i int) LeaderboardEntry {
		return LeaderboardEntry{Rank: i + 1, Name: e.Name, Coins: e.Coins, Date: e.Date}
	})
}

// Leaderboard is the leaderboard endpoint body
type Leaderboard struct {
	Entries       []LeaderboardEntry `json:"entries"`
	ProjectedRank int                `json:"projected_rank"`
}

// LeaderboardAdded is the response after adding an entry
type LeaderboardAdded struct {
	Rank    int                `json:"rank"`
	Entries []LeaderboardEntry `json:"entries"`
}

// Settings are the presentation preferences
type Settings struct {
	SoundEnabled bool `json:"sound_enabled"`
	HighContrast bool `json:"high_contrast"`
	LargeText    bool `json:"large_text"`
}

// SettingsFromModel converts model.Settings
func SettingsFromModel(s model.Settings) Settings {
	return Settings{
		SoundEnabled: s.SoundEnabled,
		HighContrast: s.HighContrast,
		LargeText:    s.LargeText,
	}
}

// Stats are the lifetime round counters
type Stats struct {
	GamesPlayed      int64 `json:"games_played"`
	GamesWon         int64 `json:"games_won"`
	WinStreak        int64 `json:"win_streak"`
	HighestWinStreak int64 `json:"highest_win_streak"`
	TotalWinnings    int64 `json:"total_winnings"`
}

// State is the full player record
type State struct {
	Coins           int64              `json:"coins"`
	Stats           Stats              `json:"stats"`
	Settings        Settings           `json:"settings"`
	Achievements    []Achievement      `json:"achievements"`
	Leaderboard     []LeaderboardEntry `json:"leaderboard"`
	LastDailyReward *time.Time         `json:"last_daily_reward"`
	CanClaimDaily   bool               `json:"can_claim_daily"`
	NextDailyReward time.Time          `json:"next_daily_reward"`
}

// StateFromModel converts a progression snapshot
func StateFromModel(p *model.Progression, canClaim bool, next time.Time) State {
	return State{
		Coins: p.Coins,
		Stats: Stats{
			GamesPlayed:      p.GamesPlayed,
			GamesWon:         p.GamesWon,
			WinStreak:        p.WinStreak,
			HighestWinStreak: p.HighestWinStreak,
			TotalWinnings:    p.TotalWinnings,
		},
		Settings:        SettingsFromModel(p.Settings),
		Achievements:    lo.Map(p.Achievements, func(a model.Achievement, _ int) Achievement { return AchievementFromModel(a) }),
		Leaderboard:     LeaderboardFromModel(p.Leaderboard),
		LastDailyReward: p.LastDailyReward,
		CanClaimDaily:   canClaim,
		NextDailyReward: next,
	}
}

// DailyReward is the daily reward claim result
type DailyReward struct {
	Success bool   `json:"success"`
	Amount  int64  `json:"amount"`
	Message string `json:"message"`
	Coins   int64  `json:"coins"`
}

// DailyRewardFromModel converts a claim result
func DailyRewardFromModel(r model.DailyRewardResult, coins int64) DailyReward {
	return DailyReward{Success: r.Success, Amount: r.Amount, Message: r.Message, Coins: coins}
}

// Card is a playing card
type Card struct {
	Rank  string `json:"rank"`
	Suit  string `json:"suit"`
	Label string `json:"label"`
}

// CardsFromModel converts a slice of cards
func CardsFromModel(cards []model.Card) []Card {
	return lo.Map(cards, func(c model.Card, _ int) Card {
		return Card{Rank: c.Rank.String(), Suit: c.Suit.String(), Label: c.String()}
	})
}

// SlotResult is the slot-specific part of an outcome
type SlotResult struct {
	Reels   []string `json:"reels"`
	Emoji   []string `json:"emoji"`
	Match   string   `json:"match"`
	Matched string   `json:"matched,omitempty"`
	Tier    string   `json:"tier"`
}

// RouletteResult is the roulette-specific part of an outcome
type RouletteResult struct {
	Kind      string `json:"kind"`
	Selection int    `json:"selection,omitempty"`
	Number    int    `json:"number"`
	Color     string `json:"color"`
}

// DiceResult is the dice-specific part of an outcome
type DiceResult struct {
	Pick string `json:"pick"`
	Dice [2]int `json:"dice"`
	Sum  int    `json:"sum"`
}

// BlackjackRound is a blackjack hand. While the player is acting only
// the dealer's up card is shown.
type BlackjackRound struct {
	ID          string `json:"id"`
	Bet         int64  `json:"bet"`
	State       string `json:"state"`
	Result      string `json:"result,omitempty"`
	Player      []Card `json:"player"`
	Dealer      []Card `json:"dealer"`
	PlayerValue int    `json:"player_value"`
	DealerValue int    `json:"dealer_value"`
	Natural     bool   `json:"natural"`
	Payout      int64  `json:"payout"`
}

// BlackjackRoundFromModel converts a round, hiding the hole card until
// the round is complete
func BlackjackRoundFromModel(r *model.BlackjackRound) BlackjackRound {
	dealer := r.Dealer
	dealerValue := r.DealerValue
	if !r.IsComplete() && len(dealer) > 0 {
		dealer = dealer[:1]
		dealerValue = dealer[0].NumericValue()
	}
	return BlackjackRound{
		ID:          r.ID,
		Bet:         r.Bet,
		State:       string(r.State),
		Result:      string(r.Result),
		Player:      CardsFromModel(r.Player),
		Dealer:      CardsFromModel(dealer),
		PlayerValue: r.PlayerValue,
		DealerValue: dealerValue,
		Natural:     r.Natural,
		Payout:      r.Payout,
	}
}

// PokerRound is a video poker hand
type PokerRound struct {
	ID       string `json:"id"`
	Bet      int64  `json:"bet"`
	State    string `json:"state"`
	Hand     []Card `json:"hand"`
	HandRank string `json:"hand_rank"`
	Payout   int64  `json:"payout"`
}

// PokerRoundFromModel converts a video poker round
func PokerRoundFromModel(r *model.VideoPokerRound) PokerRound {
	return PokerRound{
		ID:       r.ID,
		Bet:      r.Bet,
		State:    string(r.State),
		Hand:     CardsFromModel(r.Hand),
		HandRank: r.Value.Rank.String(),
		Payout:   r.Payout,
	}
}

// Outcome is a settled round. Exactly one game-specific field is set.
type Outcome struct {
	RoundID      string          `json:"round_id"`
	Game         string          `json:"game"`
	Bet          int64           `json:"bet"`
	Payout       int64           `json:"payout"`
	Net          int64           `json:"net"`
	Won          bool            `json:"won"`
	Achievements []string        `json:"achievements"`
	Coins        int64           `json:"coins"`
	Slots        *SlotResult     `json:"slots,omitempty"`
	Roulette     *RouletteResult `json:"roulette,omitempty"`
	Dice         *DiceResult     `json:"dice,omitempty"`
	Blackjack    *BlackjackRound `json:"blackjack,omitempty"`
	Poker        *PokerRound     `json:"poker,omitempty"`
}

// OutcomeFromModel converts a settled outcome together with the balance
// after settlement
func OutcomeFromModel(o model.Outcome, coins int64) Outcome {
	out := Outcome{
		RoundID:      o.RoundID,
		Game:         string(o.Game),
		Bet:          o.Bet,
		Payout:       o.Payout,
		Net:          o.Net(),
		Won:          o.Won,
		Achievements: lo.Map(o.Achievements, func(id model.AchievementID, _ int) string { return string(id) }),
		Coins:        coins,
	}

	switch d := o.Details.(type) {
	case *model.SlotDetails:
		res := &SlotResult{
			Reels: lo.Map(d.Reels[:], func(s model.Symbol, _ int) string { return s.String() }),
			Emoji: lo.Map(d.Reels[:], func(s model.Symbol, _ int) string { return s.Emoji() }),
			Match: string(d.Match),
			Tier:  string(d.Tier),
		}
		if d.Match != model.SlotMatchNone {
			res.Matched = d.Matched.String()
		}
		out.Slots = res
	case *model.RouletteDetails:
		out.Roulette = &RouletteResult{
			Kind:      string(d.Bet.Kind),
			Selection: d.Bet.Number,
			Number:    d.Number,
			Color:     string(d.Color),
		}
	case *model.DiceDetails:
		out.Dice = &DiceResult{Pick: string(d.Bet), Dice: d.Dice, Sum: d.Sum}
	case *model.BlackjackRound:
		r := BlackjackRoundFromModel(d)
		out.Blackjack = &r
	case *model.VideoPokerRound:
		r := PokerRoundFromModel(d)
		out.Poker = &r
	}
	return out
}

// BlackjackTurn is the response to a blackjack action. Outcome is set
// once the round has settled.
type BlackjackTurn struct {
	Round   BlackjackRound `json:"round"`
	Outcome *Outcome       `json:"outcome,omitempty"`
	Coins   int64          `json:"coins"`
}

// PokerDeal is the response to dealing a video poker hand
type PokerDeal struct {
	Round PokerRound `json:"round"`
	Coins int64      `json:"coins"`
}

// Saved reports the result of a forced save or reset
type Saved struct {
	Saved bool `json:"saved"`
}

// SoundToggled reports the new sound setting
type SoundToggled struct {
	SoundEnabled bool `json:"sound_enabled"`
}
