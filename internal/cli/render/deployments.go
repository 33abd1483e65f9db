package render

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/cfsweep/cfsweep-cli/internal/domain"
	"github.com/cfsweep/cfsweep-cli/internal/usecase"
)

var (
	productionStyle = color.New(color.FgGreen, color.Bold)
	previewStyle    = color.New(color.FgYellow)
	timestampStyle  = color.New(color.Faint)
)

// DeploymentsRenderer renders deployment listings as formatted tables
type DeploymentsRenderer struct {
	out io.Writer
}

// NewDeploymentsRenderer creates a new deployments renderer
func NewDeploymentsRenderer(out io.Writer) *DeploymentsRenderer {
	return &DeploymentsRenderer{out: out}
}

// RenderDeploymentList renders the listing newest first with a
// per-environment summary line.
func (r *DeploymentsRenderer) RenderDeploymentList(result *usecase.DeploymentListResult) error {
	if len(result.Deployments) == 0 {
		fmt.Fprintln(r.out, "No deployments found")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "ENVIRONMENT", "CREATED", "URL"})

	for _, d := range result.Deployments {
		t.AppendRow(table.Row{
			d.ID,
			styleEnvironment(d.Environment),
			timestampStyle.Sprint(d.CreatedAt.Format(time.RFC3339)),
			d.URL,
		})
	}
	t.Render()

	fmt.Fprintf(r.out, "\n%d deployment(s): %d production, %d preview\n",
		result.Summary.Total,
		result.Summary.ByEnvironment[domain.EnvironmentProduction],
		result.Summary.ByEnvironment[domain.EnvironmentPreview])

	return nil
}

func styleEnvironment(env domain.Environment) string {
	if env == domain.EnvironmentProduction {
		return productionStyle.Sprint(env)
	}
	return previewStyle.Sprint(env)
}
