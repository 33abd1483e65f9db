package adapters

import (
	"github.com/google/wire"

	"github.com/cfsweep/cfsweep-cli/internal/adapters/cloudflare"
	"github.com/cfsweep/cfsweep-cli/internal/usecase"
)

// CloudflareSet provides the Cloudflare-backed API client
var CloudflareSet = wire.NewSet(
	cloudflare.NewClient,
	wire.Bind(new(usecase.DeploymentAPI), new(*cloudflare.Client)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	CloudflareSet,
)
