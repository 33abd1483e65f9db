package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cfsweep/cfsweep-cli/internal/adapters/progress"
	"github.com/cfsweep/cfsweep-cli/internal/app"
	"github.com/cfsweep/cfsweep-cli/internal/config"
	"github.com/cfsweep/cfsweep-cli/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// Execute runs the root command with signal-aware cancellation. An
// interrupt lets the in-flight delete finish and stops the run at the
// next boundary; partial progress is always safe.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := NewRootCmd().ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

// NewRootCmd creates the root command for the cfsweep CLI
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cfsweep",
		Short: "Bulk cleanup of Cloudflare Pages deployments",
		Long: `cfsweep deletes every deployment of a Cloudflare Pages project except
the newest production one, in rate-limit-safe batches, retrying
transient failures until nothing deletable remains.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			// Local .env is a convenience for development; absence is fine.
			_ = godotenv.Load()

			v := config.SetupViper(cmd)

			sink := newSink(v.GetBool("non_interactive"))

			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			if err := appInstance.Config.Validate(); err != nil {
				return err
			}
			appInstance.Logger.Info("configuration validated",
				"project", appInstance.Config.Project,
				"batch_size", appInstance.Config.Sweep.BatchSize)

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().String("project", "", "Pages project name (defaults to CF_PAGES_PROJECT)")
	rootCmd.PersistentFlags().String("account-id", "", "Cloudflare account ID (defaults to CF_ACCOUNT_ID)")

	sweepCmd := NewSweepCmd()
	rootCmd.AddCommand(sweepCmd)

	listCmd := NewListCmd()
	rootCmd.AddCommand(listCmd)

	versionCmd := NewVersionCmd()
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// newSink picks the progress sink: a spinner for interactive runs, a
// no-op otherwise so CI logs stay clean.
func newSink(nonInteractive bool) usecase.ProgressSink {
	if nonInteractive {
		return progress.NewNopSink()
	}
	return progress.NewSpinnerSink()
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	a, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return a, nil
}
