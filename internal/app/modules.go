package app

import (
	"github.com/c2n2p/portal/internal/module"
	"github.com/c2n2p/portal/internal/modules/orgs"
	"github.com/c2n2p/portal/internal/modules/status"
)

// NewModules creates and returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules(deps Dependencies) []module.Module {
	return []module.Module{
		status.New(statusDeps(deps)),
		orgs.New(orgsDeps(deps)),
	}
}
