package cli

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/pocketcasino/internal/api/response"
	"github.com/mcoot/pocketcasino/internal/factory"
	"github.com/mcoot/pocketcasino/internal/model"
	"github.com/mcoot/pocketcasino/internal/services/blackjack"
	"github.com/mcoot/pocketcasino/internal/services/poker"
)

func newGamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "List the games and their table limits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			NewOutput(opts.Output, cmd.OutOrStdout()).Print(response.GamesFromModel(model.Games))
			return nil
		},
	}
}

// betFlag registers --bet with the game's table minimum as default
func betFlag(cmd *cobra.Command, bet *int64, game model.GameType) {
	info, _ := model.LookupGame(game)
	cmd.Flags().Int64VarP(bet, "bet", "b", info.MinBet, "Stake in coins")
}

func newSpinCmd() *cobra.Command {
	var bet int64

	cmd := &cobra.Command{
		Use:   "spin",
		Short: "Spin the slot machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *factory.App, out *Output) error {
				outcome, err := app.Session.SpinSlots(bet)
				if err != nil {
					return err
				}
				out.Print(response.OutcomeFromModel(outcome, app.Progression.Coins()))
				return nil
			})
		},
	}
	betFlag(cmd, &bet, model.GameSlots)
	return cmd
}

func newRouletteCmd() *cobra.Command {
	var bet int64

	cmd := &cobra.Command{
		Use:   "roulette <kind> [number]",
		Short: "Spin the roulette wheel",
		Long: `Place one bet and spin the single-zero wheel.

Kinds:
  straight <0-36>   single number, pays 36x
  red, black        pays 2x
  even, odd         pays 2x
  low, high         1-18 or 19-36, pays 2x
  dozen <1-3>       pays 3x
  column <1-3>      pays 3x`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel := model.RouletteBet{Kind: model.RouletteBetKind(strings.ToLower(args[0]))}
			if len(args) == 2 {
				n, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("number must be an integer: %w", err)
				}
				sel.Number = n
			}
			return withApp(cmd, func(app *factory.App, out *Output) error {
				outcome, err := app.Session.SpinRoulette(bet, sel)
				if err != nil {
					return err
				}
				out.Print(response.OutcomeFromModel(outcome, app.Progression.Coins()))
				return nil
			})
		},
	}
	betFlag(cmd, &bet, model.GameRoulette)
	return cmd
}

func newDiceCmd() *cobra.Command {
	var bet int64

	cmd := &cobra.Command{
		Use:   "dice <over|under|seven|doubles>",
		Short: "Roll two dice",
		Long: `Bet on the roll of two dice.

  over     sum 8-12, pays 2x
  under    sum 2-6, pays 2x
  seven    sum exactly 7, pays 5x
  doubles  both dice equal, pays 5x`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pick := model.DiceBet(strings.ToLower(args[0]))
			return withApp(cmd, func(app *factory.App, out *Output) error {
				outcome, err := app.Session.RollDice(bet, pick)
				if err != nil {
					return err
				}
				out.Print(response.OutcomeFromModel(outcome, app.Progression.Coins()))
				return nil
			})
		},
	}
	betFlag(cmd, &bet, model.GameDice)
	return cmd
}

func newBlackjackCmd() *cobra.Command {
	var (
		bet     int64
		standOn int
	)

	cmd := &cobra.Command{
		Use:   "blackjack",
		Short: "Play a hand of blackjack",
		Long: `Deal a hand of blackjack and play it out. The player hits until the
hand reaches --stand-on, then the dealer draws to 17.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *factory.App, out *Output) error {
				turn, err := app.Session.StartBlackjack(bet)
				if err != nil {
					return err
				}
				if turn.Outcome == nil {
					if turn, err = app.Session.AutoBlackjack(standOn); err != nil {
						return err
					}
				}
				out.Print(blackjackTurn(turn.Round, turn.Outcome, app.Progression.Coins()))
				return nil
			})
		},
	}
	betFlag(cmd, &bet, model.GameBlackjack)
	cmd.Flags().IntVar(&standOn, "stand-on", blackjack.DealerStandsOn, "Stop hitting once the hand totals this much")
	return cmd
}

func blackjackTurn(round *model.BlackjackRound, outcome *model.Outcome, coins int64) response.BlackjackTurn {
	turn := response.BlackjackTurn{
		Round: response.BlackjackRoundFromModel(round),
		Coins: coins,
	}
	if outcome != nil {
		o := response.OutcomeFromModel(*outcome, coins)
		turn.Outcome = &o
	}
	return turn
}

// PokerResult is a dealt video poker hand together with the draw
type PokerResult struct {
	Dealt   response.PokerRound `json:"dealt"`
	Holds   []int               `json:"holds"`
	Outcome response.Outcome    `json:"outcome"`
}

func newPokerCmd() *cobra.Command {
	var (
		bet  int64
		hold string
	)

	cmd := &cobra.Command{
		Use:   "poker",
		Short: "Play a hand of jacks-or-better video poker",
		Long: `Deal five cards, hold some and draw once.

--hold takes 0-based positions ("0,2,4"), "none" to redraw all five, or
"auto" to keep made hands, pairs and high cards.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := parseHolds(hold, nil); err != nil {
				return err
			}
			return withApp(cmd, func(app *factory.App, out *Output) error {
				dealt, err := app.Session.StartPoker(bet)
				if err != nil {
					return err
				}
				holds, err := parseHolds(hold, dealt.Hand)
				if err != nil {
					return err
				}
				outcome, err := app.Session.DrawPoker(holds)
				if err != nil {
					return err
				}
				out.Print(PokerResult{
					Dealt:   response.PokerRoundFromModel(dealt),
					Holds:   holds,
					Outcome: response.OutcomeFromModel(outcome, app.Progression.Coins()),
				})
				return nil
			})
		},
	}
	betFlag(cmd, &bet, model.GamePoker)
	cmd.Flags().StringVar(&hold, "hold", "auto", `Positions to hold: "auto", "none" or e.g. "0,2,4"`)
	return cmd
}

// parseHolds turns the --hold flag into hand positions. Explicit
// positions do not depend on the hand, so they can be checked before
// the stake is taken.
func parseHolds(hold string, hand []model.Card) ([]int, error) {
	switch strings.ToLower(strings.TrimSpace(hold)) {
	case "auto":
		return poker.SuggestHolds(hand), nil
	case "none", "":
		return []int{}, nil
	}
	var holds []int
	for _, f := range strings.Split(hold, ",") {
		i, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || i < 0 || i >= poker.HandSize || slices.Contains(holds, i) {
			return nil, fmt.Errorf("%w: %q", model.ErrInvalidHold, strings.TrimSpace(f))
		}
		holds = append(holds, i)
	}
	return holds, nil
}
