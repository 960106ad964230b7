package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/pocketcasino/internal/factory"
)

// errSaveFailed is returned when a command played but could not save
var errSaveFailed = errors.New("failed to save progress")

// withApp opens the saved record, runs fn and force-saves before closing,
// so a one-shot command never leaves progress behind in the debounce window
func withApp(cmd *cobra.Command, fn func(app *factory.App, out *Output) error) error {
	ctx := cmd.Context()

	app, err := factory.New(ctx, factory.ConfigFrom(conf, logger))
	if err != nil {
		return fmt.Errorf("open casino: %w", err)
	}

	runErr := fn(app, NewOutput(opts.Output, cmd.OutOrStdout()))

	var saveErr error
	if !app.Progression.ForceSave(ctx) {
		saveErr = errSaveFailed
	}
	return errors.Join(runErr, saveErr, app.Close(ctx))
}
