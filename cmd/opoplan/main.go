package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/ngimenez/opoplan/internal/cli"
	"github.com/ngimenez/opoplan/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Service telemetry goes to stderr only when asked for.
	var logWriter io.Writer
	if os.Getenv("OPOPLAN_LOG") != "" {
		logWriter = os.Stderr
	}
	observer := service.NewLogUseCaseObserver(logWriter)

	app := &cli.App{
		Plans:    service.NewPlanService(observer),
		Replans:  service.NewReplanService(observer),
		Capacity: service.NewCapacityService(observer),
		States:   service.NewStateService(observer),
	}

	// Detect interactive terminal for the input form and the plan pager.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
