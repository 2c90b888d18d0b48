package cli

import (
	"github.com/spf13/cobra"

	"github.com/ngimenez/opoplan/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plans    service.PlanService
	Replans  service.ReplanService
	Capacity service.CapacityService
	States   service.StateService

	// IsInteractive reports whether stdin is a terminal; gates the input
	// form and the plan pager.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "opoplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "opoplan",
		Short: "Deterministic study-plan generator for oposiciones",
	}

	root.AddCommand(
		newPlanCmd(app),
		newReplanCmd(app),
		newCapacityCmd(app),
		newStateCmd(app),
	)

	return root
}
