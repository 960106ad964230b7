package progression

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/mcoot/pocketcasino/internal/dependencies/clock"
	"github.com/mcoot/pocketcasino/internal/dependencies/random"
	"github.com/mcoot/pocketcasino/internal/model"
	"github.com/mcoot/pocketcasino/internal/services/achievement"
	"github.com/mcoot/pocketcasino/internal/services/persistence"
)

const (
	// DailyRewardWindow is the time that must pass between daily reward claims
	DailyRewardWindow = 24 * time.Hour

	// Daily reward bounds, inclusive
	DailyRewardMin = 100
	DailyRewardMax = 500
)

// Publisher receives engine events. Publish must not block.
type Publisher interface {
	Publish(event model.Event)
}

// NopPublisher discards every event
type NopPublisher struct{}

// Publish implements Publisher
func (NopPublisher) Publish(model.Event) {}

// Controller owns the player record. Every operation runs as one critical
// section, schedules a debounced save and then publishes its events.
type Controller struct {
	mu        sync.Mutex
	state     *model.Progression
	saver     *persistence.Saver
	clock     clock.Clock
	random    random.Random
	publisher Publisher
	logger    *slog.Logger
}

// NewController creates a controller over a loaded record
func NewController(
	state *model.Progression,
	saver *persistence.Saver,
	clock clock.Clock,
	random random.Random,
	publisher Publisher,
	logger *slog.Logger,
) *Controller {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &Controller{
		state:     state,
		saver:     saver,
		clock:     clock,
		random:    random,
		publisher: publisher,
		logger:    logger,
	}
}

// mutate runs fn under the lock, schedules a save when fn reports a change
// and publishes whatever events fn collected
func (c *Controller) mutate(fn func(p *model.Progression, now time.Time) (changed bool, events []model.Event)) {
	c.mu.Lock()
	now := c.clock.Now()
	changed, events := fn(c.state, now)
	if changed {
		c.saver.Schedule(c.state.Clone())
	}
	c.mu.Unlock()

	for _, e := range events {
		c.publisher.Publish(e)
	}
}

func (c *Controller) event(t model.EventType, now time.Time, payload any) model.Event {
	return model.Event{Type: t, Timestamp: now, Payload: payload}
}

// unlockedEvents turns freshly unlocked ids into events and log lines
func (c *Controller) unlockedEvents(p *model.Progression, ids []model.AchievementID, now time.Time) []model.Event {
	return lo.Map(ids, func(id model.AchievementID, _ int) model.Event {
		a := p.Achievement(id)
		c.logger.Info("achievement unlocked", slog.String("achievement", string(id)))
		return c.event(model.EventAchievementUnlocked, now, model.AchievementUnlockedPayload{ID: id, Title: a.Title})
	})
}

// applyCoins is the round-settling step shared by UpdateCoins and Settle
func applyCoins(p *model.Progression, amount int64, isWin bool, now time.Time) []model.AchievementID {
	p.Coins = max(0, saturatingAdd(p.Coins, amount))
	p.GamesPlayed++
	if isWin {
		p.GamesWon++
		p.WinStreak++
		p.TotalWinnings = saturatingAdd(p.TotalWinnings, abs(amount))
	} else {
		p.WinStreak = 0
	}
	p.HighestWinStreak = max(p.HighestWinStreak, p.WinStreak)
	return achievement.Evaluate(p, isWin, now)
}

// saturatingAdd adds without wrapping past the int64 range
func saturatingAdd(a, b int64) int64 {
	switch {
	case b > 0 && a > math.MaxInt64-b:
		return math.MaxInt64
	case b < 0 && a < math.MinInt64-b:
		return math.MinInt64
	}
	return a + b
}

func abs(n int64) int64 {
	if n == math.MinInt64 {
		return math.MaxInt64
	}
	if n < 0 {
		return -n
	}
	return n
}

// UpdateCoins applies a round result: the balance moves by amount (never
// below zero), the round is counted and the achievement rules run. It
// returns the achievements unlocked by this call.
func (c *Controller) UpdateCoins(amount int64, isWin bool) []model.AchievementID {
	var unlocked []model.AchievementID
	c.mutate(func(p *model.Progression, now time.Time) (bool, []model.Event) {
		unlocked = applyCoins(p, amount, isWin, now)
		return true, c.unlockedEvents(p, unlocked, now)
	})
	return unlocked
}

// PlaceBet takes the stake for a round. It does not count as a round and
// leaves the streak alone; the round is counted when it is settled.
func (c *Controller) PlaceBet(bet int64) error {
	var err error
	c.mutate(func(p *model.Progression, now time.Time) (bool, []model.Event) {
		switch {
		case bet <= 0:
			err = model.ErrInvalidBet
			return false, nil
		case bet > p.Coins:
			err = fmt.Errorf("%w: bet %d, balance %d", model.ErrInsufficientFunds, bet, p.Coins)
			return false, nil
		}
		p.Coins -= bet
		return true, nil
	})
	return err
}

// Settle credits a round's payout, counts the round and unlocks any
// achievements the round signalled. The stake must already have been
// taken with PlaceBet.
func (c *Controller) Settle(outcome model.Outcome) []model.AchievementID {
	var unlocked []model.AchievementID
	c.mutate(func(p *model.Progression, now time.Time) (bool, []model.Event) {
		unlocked = applyCoins(p, outcome.Payout, outcome.Won, now)
		for _, id := range outcome.Achievements {
			if achievement.Unlock(p, id, now) {
				unlocked = append(unlocked, id)
			}
		}

		c.logger.Debug("round settled",
			slog.String("round_id", outcome.RoundID),
			slog.String("game", string(outcome.Game)),
			slog.Int64("bet", outcome.Bet),
			slog.Int64("payout", outcome.Payout),
			slog.Bool("won", outcome.Won),
			slog.Int64("coins", p.Coins),
		)

		events := []model.Event{c.event(model.EventRoundSettled, now, model.RoundSettledPayload{
			RoundID: outcome.RoundID,
			Game:    outcome.Game,
			Bet:     outcome.Bet,
			Payout:  outcome.Payout,
			Won:     outcome.Won,
			Coins:   p.Coins,
		})}
		return true, append(events, c.unlockedEvents(p, unlocked, now)...)
	})
	return unlocked
}

// UnlockAchievement unlocks id if it is known and still locked. It reports
// whether anything changed; unknown ids are ignored.
func (c *Controller) UnlockAchievement(id model.AchievementID) bool {
	var changed bool
	c.mutate(func(p *model.Progression, now time.Time) (bool, []model.Event) {
		changed = achievement.Unlock(p, id, now)
		if !changed {
			return false, nil
		}
		return true, c.unlockedEvents(p, []model.AchievementID{id}, now)
	})
	return changed
}

// ClaimDailyReward credits a random bonus once per window
func (c *Controller) ClaimDailyReward() model.DailyRewardResult {
	var result model.DailyRewardResult
	c.mutate(func(p *model.Progression, now time.Time) (bool, []model.Event) {
		if !canClaim(p, now) {
			result = model.DailyRewardResult{Message: "Daily reward already claimed today"}
			return false, nil
		}

		amount := int64(random.Int(c.random, DailyRewardMin, DailyRewardMax))
		p.Coins = saturatingAdd(p.Coins, amount)
		claimed := now
		p.LastDailyReward = &claimed
		result = model.DailyRewardResult{
			Success: true,
			Amount:  amount,
			Message: fmt.Sprintf("You received %d coins!", amount),
		}

		c.logger.Info("daily reward claimed",
			slog.Int64("amount", amount),
			slog.Int64("coins", p.Coins),
		)

		events := []model.Event{c.event(model.EventDailyRewardClaimed, now, model.DailyRewardClaimedPayload{
			Amount: amount,
			Coins:  p.Coins,
		})}
		unlocked := achievement.Evaluate(p, false, now)
		return true, append(events, c.unlockedEvents(p, unlocked, now)...)
	})
	return result
}

func canClaim(p *model.Progression, now time.Time) bool {
	if p.LastDailyReward == nil {
		return true
	}
	return now.Sub(*p.LastDailyReward) >= DailyRewardWindow
}

// AddToLeaderboard records the current balance under name. The board keeps
// the best ten, highest first; equal balances keep insertion order. It
// returns the 1-based rank of the new entry, or 0 if it did not make the
// board.
func (c *Controller) AddToLeaderboard(name string) (int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, model.ErrInvalidName
	}

	var rank int
	c.mutate(func(p *model.Progression, now time.Time) (bool, []model.Event) {
		entry := model.LeaderboardEntry{Name: name, Coins: p.Coins, Date: now}
		board := append(append([]model.LeaderboardEntry{}, p.Leaderboard...), entry)
		sort.SliceStable(board, func(i, j int) bool {
			return board[i].Coins > board[j].Coins
		})
		if len(board) > model.MaxLeaderboardEntries {
			board = board[:model.MaxLeaderboardEntries]
		}
		p.Leaderboard = board

		// the new entry is the last one with its balance
		rank = 0
		for i, e := range board {
			if e == entry {
				rank = i + 1
			}
		}

		c.logger.Info("leaderboard entry added",
			slog.String("name", name),
			slog.Int64("coins", entry.Coins),
			slog.Int("rank", rank),
		)
		return true, []model.Event{c.event(model.EventLeaderboardUpdated, now, model.LeaderboardUpdatedPayload{
			Name:  name,
			Coins: entry.Coins,
			Rank:  rank,
		})}
	})
	return rank, nil
}

// UpdateSettings merges the non-nil fields of update and returns the result
func (c *Controller) UpdateSettings(update model.SettingsUpdate) model.Settings {
	var settings model.Settings
	c.mutate(func(p *model.Progression, now time.Time) (bool, []model.Event) {
		if update.SoundEnabled != nil {
			p.Settings.SoundEnabled = *update.SoundEnabled
			p.SoundEnabled = *update.SoundEnabled
		}
		if update.HighContrast != nil {
			p.Settings.HighContrast = *update.HighContrast
		}
		if update.LargeText != nil {
			p.Settings.LargeText = *update.LargeText
		}
		settings = p.Settings
		return true, []model.Event{c.event(model.EventSettingsChanged, now, settings)}
	})
	return settings
}

// ToggleSound flips the sound preference and returns the new value
func (c *Controller) ToggleSound() bool {
	var enabled bool
	c.mutate(func(p *model.Progression, now time.Time) (bool, []model.Event) {
		enabled = !p.SoundEnabled
		p.SoundEnabled = enabled
		p.Settings.SoundEnabled = enabled
		return true, []model.Event{c.event(model.EventSettingsChanged, now, p.Settings)}
	})
	return enabled
}

// Reset replaces the record with the first-run state and writes it
// immediately. It reports whether the write succeeded; the in-memory reset
// happens either way.
func (c *Controller) Reset(ctx context.Context) bool {
	c.mu.Lock()
	now := c.clock.Now()
	c.state = persistence.Initial()
	err := c.saver.SaveNow(ctx, c.state.Clone())
	c.mu.Unlock()

	c.logger.Info("casino data reset")
	c.publisher.Publish(c.event(model.EventStateReset, now, nil))
	if err != nil {
		c.logger.Error("failed to save reset state", slog.String("error", err.Error()))
		return false
	}
	return true
}

// ForceSave writes the current record now, cancelling any pending save
func (c *Controller) ForceSave(ctx context.Context) bool {
	c.mu.Lock()
	err := c.saver.SaveNow(ctx, c.state.Clone())
	c.mu.Unlock()

	if err != nil {
		c.logger.Error("failed to force save state", slog.String("error", err.Error()))
		return false
	}
	return true
}

// Snapshot returns a deep copy of the record
func (c *Controller) Snapshot() *model.Progression {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Coins returns the current balance
func (c *Controller) Coins() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Coins
}

// CanClaimDailyReward reports whether ClaimDailyReward would succeed now
func (c *Controller) CanClaimDailyReward() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return canClaim(c.state, c.clock.Now())
}

// NextDailyReward returns when the daily reward can next be claimed
func (c *Controller) NextDailyReward() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.LastDailyReward == nil {
		return c.clock.Now()
	}
	return c.state.LastDailyReward.Add(DailyRewardWindow)
}

// UnlockedAchievements returns the unlocked achievements in catalog order
func (c *Controller) UnlockedAchievements() []model.Achievement {
	c.mu.Lock()
	defer c.mu.Unlock()
	return achievement.Unlocked(c.state.Clone())
}

// AchievementProgress reports progress towards every achievement
func (c *Controller) AchievementProgress() []model.AchievementProgress {
	c.mu.Lock()
	defer c.mu.Unlock()
	return achievement.Progress(c.state)
}

// ProjectedRank is the rank the current balance would take if added to the
// leaderboard now. A result above MaxLeaderboardEntries would not make the board.
func (c *Controller) ProjectedRank() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	coins := c.state.Coins
	return lo.CountBy(c.state.Leaderboard, func(e model.LeaderboardEntry) bool {
		return e.Coins >= coins
	}) + 1
}
