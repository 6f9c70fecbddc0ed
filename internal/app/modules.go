package app

import (
	"github.com/nfrund/portview/internal/module"
	"github.com/nfrund/portview/internal/modules/activity"
	"github.com/nfrund/portview/internal/modules/dashboard"
)

// NewModules returns the list of all active modules for the application.
// This is the single source of truth for which features are enabled.
func NewModules() []module.Module {
	return []module.Module{
		activity.New(),
		dashboard.New(),
	}
}
