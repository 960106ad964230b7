package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/pocketcasino/internal/api/response"
	"github.com/mcoot/pocketcasino/internal/factory"
	"github.com/mcoot/pocketcasino/internal/model"
	"github.com/mcoot/pocketcasino/internal/services/achievement"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show coins, stats and daily reward availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *factory.App, out *Output) error {
				ctrl := app.Progression
				out.Print(response.StateFromModel(ctrl.Snapshot(), ctrl.CanClaimDailyReward(), ctrl.NextDailyReward()))
				return nil
			})
		},
	}
}

func newDailyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "daily",
		Short: "Claim the daily coin reward",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *factory.App, out *Output) error {
				result := app.Progression.ClaimDailyReward()
				out.Print(response.DailyRewardFromModel(result, app.Progression.Coins()))
				return nil
			})
		},
	}
}

func newLeaderboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the local leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *factory.App, out *Output) error {
				out.Print(response.Leaderboard{
					Entries:       response.LeaderboardFromModel(app.Progression.Snapshot().Leaderboard),
					ProjectedRank: app.Progression.ProjectedRank(),
				})
				return nil
			})
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Record the current balance on the leaderboard",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			return withApp(cmd, func(app *factory.App, out *Output) error {
				rank, err := app.Progression.AddToLeaderboard(name)
				if err != nil {
					return err
				}
				out.Print(response.LeaderboardAdded{
					Rank:    rank,
					Entries: response.LeaderboardFromModel(app.Progression.Snapshot().Leaderboard),
				})
				return nil
			})
		},
	})
	return cmd
}

func newAchievementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "List achievements and progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *factory.App, out *Output) error {
				p := app.Progression.Snapshot()
				out.Print(response.AchievementsFromModel(p.Achievements, achievement.Progress(p)))
				return nil
			})
		},
	}
}

func newSettingsCmd() *cobra.Command {
	var (
		sound, highContrast, largeText bool
		toggleSound                    bool
	)

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change presentation settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var update model.SettingsUpdate
			flags := cmd.Flags()
			if flags.Changed("sound") {
				update.SoundEnabled = &sound
			}
			if flags.Changed("high-contrast") {
				update.HighContrast = &highContrast
			}
			if flags.Changed("large-text") {
				update.LargeText = &largeText
			}
			if toggleSound && update.SoundEnabled != nil {
				return errors.New("--toggle-sound and --sound cannot be combined")
			}

			return withApp(cmd, func(app *factory.App, out *Output) error {
				settings := app.Progression.Snapshot().Settings
				if update != (model.SettingsUpdate{}) {
					settings = app.Progression.UpdateSettings(update)
				}
				if toggleSound {
					settings.SoundEnabled = app.Progression.ToggleSound()
				}
				out.Print(response.SettingsFromModel(settings))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&sound, "sound", false, "Enable or disable sound")
	cmd.Flags().BoolVar(&highContrast, "high-contrast", false, "Enable or disable high contrast")
	cmd.Flags().BoolVar(&largeText, "large-text", false, "Enable or disable large text")
	cmd.Flags().BoolVar(&toggleSound, "toggle-sound", false, "Flip the sound setting")
	return cmd
}

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all progress and start over",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("reset erases coins, achievements and the leaderboard; pass --yes to confirm")
			}
			return withApp(cmd, func(app *factory.App, out *Output) error {
				if !app.Session.Reset(cmd.Context()) {
					return errSaveFailed
				}
				out.PrintMessage(fmt.Sprintf("Progress reset. Coins: %d", app.Progression.Coins()))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")
	return cmd
}
