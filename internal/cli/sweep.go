package cli

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cfsweep/cfsweep-cli/internal/cli/render"
	"github.com/cfsweep/cfsweep-cli/internal/domain"
)

// NewSweepCmd creates the sweep command
func NewSweepCmd() *cobra.Command {
	var (
		dryRun     bool
		yes        bool
		reportPath string
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Delete all deployments except the newest production one",
		Long: `Delete all deployments of the configured Pages project except the
newest production deployment.

Candidates are drained in bounded batches; transient API failures
(429, 5xx, timeouts) are retried with exponential backoff, and an id
that keeps failing is retired after its retry ceiling so the run
always terminates. A non-retryable 4xx aborts the whole run since it
indicates a token scope problem rather than a per-item one.`,
		Example: `  # Preview what would be deleted
  cfsweep sweep --dry-run

  # Run unattended in CI
  cfsweep sweep --non-interactive

  # Smaller batches plus a YAML run report
  cfsweep sweep --batch-size 10 --report cleanup.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			// Classify first so the keep target and candidates can be
			// shown (and confirmed) before anything is deleted.
			plan, err := app.SweepDeployments.Plan(cmd.Context())
			if err != nil {
				return err
			}

			renderer := render.NewSweepRenderer(cmd.OutOrStdout())
			if err := renderer.RenderPlan(plan); err != nil {
				return err
			}

			if dryRun || len(plan.Candidates) == 0 {
				return nil
			}

			if !yes && !app.Config.NonInteractive {
				prompt := promptui.Prompt{
					Label:     fmt.Sprintf("Delete %d deployment(s), keeping %s? This cannot be undone", len(plan.Candidates), plan.Keep.ID),
					IsConfirm: true,
				}
				if _, err := prompt.Run(); err != nil {
					fmt.Fprintln(cmd.OutOrStdout(), "Sweep cancelled.")
					return nil
				}
			}

			summary, err := app.SweepDeployments.Run(cmd.Context())
			if err != nil {
				return err
			}

			if err := renderer.RenderSummary(summary); err != nil {
				return err
			}
			if reportPath != "" {
				if err := writeReport(reportPath, summary); err != nil {
					return err
				}
			}

			if summary.ExitSignal() == domain.ExitPartialFailure {
				return &domain.PartialFailureError{Failed: summary.Failed}
			}
			return nil
		},
	}

	cmd.Flags().IntP("batch-size", "b", 0, "Max deletions per sweep (default 24)")
	cmd.Flags().Int("retry-ceiling", 0, "Exhausted retry envelopes before an id is retired (default 1)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the plan without deleting anything")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().StringVar(&reportPath, "report", "", "Write the run summary to this file as YAML")

	return cmd
}

// writeReport persists the finalized run summary as a YAML artifact.
func writeReport(path string, summary *domain.RunSummary) error {
	data, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to encode run report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write run report: %w", err)
	}
	return nil
}
