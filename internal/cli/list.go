package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cfsweep/cfsweep-cli/internal/cli/render"
	"github.com/cfsweep/cfsweep-cli/internal/domain"
	"github.com/cfsweep/cfsweep-cli/internal/usecase"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var environment string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List deployments of the configured Pages project",
		Example: `  # List all deployments
  cfsweep list

  # List preview deployments only
  cfsweep list --env preview`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			var env domain.Environment
			switch environment {
			case "":
			case "production":
				env = domain.EnvironmentProduction
			case "preview":
				env = domain.EnvironmentPreview
			default:
				return fmt.Errorf("invalid environment: %s (valid: production, preview)", environment)
			}

			result, err := app.ListDeployments.Run(cmd.Context(), usecase.ListDeploymentsParams{
				Environment: env,
			})
			if err != nil {
				return err
			}

			renderer := render.NewDeploymentsRenderer(cmd.OutOrStdout())
			return renderer.RenderDeploymentList(result)
		},
	}

	cmd.Flags().StringVar(&environment, "env", "", "Filter by environment (production, preview)")

	return cmd
}
