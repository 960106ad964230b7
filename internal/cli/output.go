package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/mcoot/pocketcasino/internal/api/response"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]any{
			"error": map[string]string{"message": err.Error()},
		})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintf(o.w, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.State:
		o.printState(v)
	case []response.Game:
		o.printGames(v)
	case response.Outcome:
		o.printOutcome(v)
	case response.BlackjackTurn:
		o.printBlackjackTurn(v)
	case PokerResult:
		o.printPokerResult(v)
	case response.DailyReward:
		o.printDailyReward(v)
	case response.Leaderboard:
		o.printLeaderboard(v.Entries)
		if v.ProjectedRank > 0 {
			fmt.Fprintf(o.w, "Your balance would rank #%d\n", v.ProjectedRank)
		}
	case response.LeaderboardAdded:
		if v.Rank > 0 {
			fmt.Fprintf(o.w, "Added at rank #%d\n", v.Rank)
		} else {
			fmt.Fprintln(o.w, "Added, but not enough coins to make the board")
		}
		o.printLeaderboard(v.Entries)
	case response.Achievements:
		o.printAchievements(v)
	case response.Settings:
		o.printSettings(v)
	case response.Health:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (o *Output) printState(s response.State) {
	fmt.Fprintf(o.w, "Coins: %d\n", s.Coins)
	fmt.Fprintf(o.w, "Games played: %d (won %d)\n", s.Stats.GamesPlayed, s.Stats.GamesWon)
	fmt.Fprintf(o.w, "Win streak: %d (best %d)\n", s.Stats.WinStreak, s.Stats.HighestWinStreak)
	fmt.Fprintf(o.w, "Total winnings: %d\n", s.Stats.TotalWinnings)
	unlocked := lo.CountBy(s.Achievements, func(a response.Achievement) bool { return a.Unlocked })
	fmt.Fprintf(o.w, "Achievements: %d/%d\n", unlocked, len(s.Achievements))
	if s.CanClaimDaily {
		fmt.Fprintln(o.w, "Daily reward: ready to claim")
	} else {
		fmt.Fprintf(o.w, "Daily reward: available %s\n", s.NextDailyReward.Local().Format("2006-01-02 15:04"))
	}
}

func (o *Output) printGames(games []response.Game) {
	for _, g := range games {
		fmt.Fprintf(o.w, "%-10s %-15s min bet %5d  max win %6d\n", g.Type, g.Title, g.MinBet, g.MaxWin)
		fmt.Fprintf(o.w, "           %s\n", g.Description)
	}
}

func cardLabels(cards []response.Card) string {
	return strings.Join(lo.Map(cards, func(c response.Card, _ int) string { return c.Label }), " ")
}

func (o *Output) printOutcome(r response.Outcome) {
	switch {
	case r.Slots != nil:
		fmt.Fprintf(o.w, "[ %s ]\n", strings.Join(r.Slots.Emoji, " | "))
		if r.Slots.Matched != "" {
			fmt.Fprintf(o.w, "%s of %s\n", r.Slots.Match, r.Slots.Matched)
		}
	case r.Roulette != nil:
		fmt.Fprintf(o.w, "Ball landed on %d %s\n", r.Roulette.Number, r.Roulette.Color)
	case r.Dice != nil:
		fmt.Fprintf(o.w, "Rolled %d + %d = %d\n", r.Dice.Dice[0], r.Dice.Dice[1], r.Dice.Sum)
	case r.Blackjack != nil:
		o.printBlackjackRound(*r.Blackjack)
	case r.Poker != nil:
		fmt.Fprintf(o.w, "Hand: %s (%s)\n", cardLabels(r.Poker.Hand), r.Poker.HandRank)
	}

	switch {
	case r.Won:
		fmt.Fprintf(o.w, "WIN! Bet %d, paid %d (%+d)\n", r.Bet, r.Payout, r.Net)
	case r.Payout == r.Bet:
		fmt.Fprintf(o.w, "Push. Bet %d returned\n", r.Bet)
	default:
		fmt.Fprintf(o.w, "Lost %d\n", r.Bet)
	}
	for _, id := range r.Achievements {
		fmt.Fprintf(o.w, "Achievement unlocked: %s\n", id)
	}
	fmt.Fprintf(o.w, "Coins: %d\n", r.Coins)
}

func (o *Output) printBlackjackRound(r response.BlackjackRound) {
	fmt.Fprintf(o.w, "Dealer: %s (%d)\n", cardLabels(r.Dealer), r.DealerValue)
	fmt.Fprintf(o.w, "Player: %s (%d)\n", cardLabels(r.Player), r.PlayerValue)
	if r.Result != "" {
		fmt.Fprintf(o.w, "Result: %s\n", r.Result)
	}
}

func (o *Output) printBlackjackTurn(t response.BlackjackTurn) {
	if t.Outcome != nil {
		o.printOutcome(*t.Outcome)
		return
	}
	o.printBlackjackRound(t.Round)
	fmt.Fprintf(o.w, "Coins: %d\n", t.Coins)
}

func (o *Output) printPokerResult(p PokerResult) {
	fmt.Fprintf(o.w, "Dealt: %s\n", cardLabels(p.Dealt.Hand))
	held := lo.Map(p.Holds, func(i int, _ int) string { return p.Dealt.Hand[i].Label })
	if len(held) == 0 {
		fmt.Fprintln(o.w, "Held: nothing")
	} else {
		fmt.Fprintf(o.w, "Held: %s\n", strings.Join(held, " "))
	}
	o.printOutcome(p.Outcome)
}

func (o *Output) printDailyReward(r response.DailyReward) {
	fmt.Fprintln(o.w, r.Message)
	if r.Success {
		fmt.Fprintf(o.w, "+%d coins\n", r.Amount)
	}
	fmt.Fprintf(o.w, "Coins: %d\n", r.Coins)
}

func (o *Output) printLeaderboard(entries []response.LeaderboardEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(o.w, "Leaderboard is empty")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(o.w, "%2d. %-20s %8d  %s\n", e.Rank, e.Name, e.Coins, e.Date.Local().Format("2006-01-02"))
	}
}

func (o *Output) printAchievements(a response.Achievements) {
	fmt.Fprintf(o.w, "Unlocked %d of %d\n", a.Unlocked, len(a.Achievements))
	progress := lo.KeyBy(a.Progress, func(p response.AchievementProgress) string { return p.ID })
	for _, ach := range a.Achievements {
		mark := " "
		if ach.Unlocked {
			mark = "x"
		}
		fmt.Fprintf(o.w, "[%s] %-20s %s", mark, ach.Title, ach.Description)
		if p, ok := progress[ach.ID]; ok && !ach.Unlocked {
			fmt.Fprintf(o.w, " (%d/%d)", p.Current, p.Target)
		}
		fmt.Fprintln(o.w)
	}
}

func (o *Output) printSettings(s response.Settings) {
	fmt.Fprintf(o.w, "Sound: %s\n", onOff(s.SoundEnabled))
	fmt.Fprintf(o.w, "High contrast: %s\n", onOff(s.HighContrast))
	fmt.Fprintf(o.w, "Large text: %s\n", onOff(s.LargeText))
}
