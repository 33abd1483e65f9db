package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/cfsweep/cfsweep-cli/internal/domain"
	"github.com/cfsweep/cfsweep-cli/internal/usecase"
)

// SweepRenderer renders sweep plans and run summaries
type SweepRenderer struct {
	out io.Writer
}

// NewSweepRenderer creates a new sweep renderer
func NewSweepRenderer(out io.Writer) *SweepRenderer {
	return &SweepRenderer{out: out}
}

// RenderPlan shows the keep target and the candidates a run would
// delete, before anything is touched.
func (r *SweepRenderer) RenderPlan(plan *usecase.SweepPlan) error {
	fmt.Fprintf(r.out, "Keeping newest %s deployment: %s\n",
		productionStyle.Sprint(plan.Keep.Environment), plan.Keep.ID)

	if len(plan.Candidates) == 0 {
		fmt.Fprintln(r.out, "Nothing to delete; only the keep target remains.")
		return nil
	}

	fmt.Fprintf(r.out, "\nFound %d deployment(s) to delete:\n\n", len(plan.Candidates))
	for _, d := range plan.Candidates {
		fmt.Fprintf(r.out, "  - %s [%s]\n", d.ID, styleEnvironment(d.Environment))
	}
	fmt.Fprintln(r.out)

	return nil
}

// RenderSummary prints the terminal run summary.
func (r *SweepRenderer) RenderSummary(summary *domain.RunSummary) error {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"DELETED", "FAILED", "SWEEPS", "KEPT"})
	t.AppendRow(table.Row{summary.Deleted, summary.Failed, summary.Sweeps, summary.KeptID})
	t.Render()

	if summary.Failed > 0 {
		color.New(color.FgYellow).Fprintf(r.out, "\nSweep finished with %d permanent failure(s):\n", summary.Failed)
		for _, id := range summary.FailedIDs {
			fmt.Fprintf(r.out, "  - %s\n", id)
		}
		return nil
	}

	color.New(color.FgGreen).Fprintf(r.out, "\nSweep complete. Deleted %d deployment(s), kept %s.\n",
		summary.Deleted, summary.KeptID)
	return nil
}
