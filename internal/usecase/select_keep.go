package usecase

import (
	"github.com/samber/lo"

	"github.com/cfsweep/cfsweep-cli/internal/domain"
)

// SelectKeep determines the single deployment a cleanup run must
// preserve: the newest production deployment. Ties on created_on are
// broken by the lexically greatest id — arbitrary but stable, so
// repeated runs over the same listing pick the same keep target.
//
// Returns domain.ErrNoProductionDeployment when the listing has no
// production deployment; the caller must abort rather than delete
// everything. Pure function over the snapshot.
func SelectKeep(deployments []domain.Deployment) (string, error) {
	production := lo.Filter(deployments, func(d domain.Deployment, _ int) bool {
		return d.IsProduction()
	})
	if len(production) == 0 {
		return "", domain.ErrNoProductionDeployment
	}

	keep := lo.MaxBy(production, func(a, b domain.Deployment) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
	return keep.ID, nil
}
