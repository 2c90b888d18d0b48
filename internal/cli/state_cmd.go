package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ngimenez/opoplan/internal/cli/formatter"
	"github.com/ngimenez/opoplan/internal/contract"
	"github.com/ngimenez/opoplan/internal/domain"
)

func newStateCmd(app *App) *cobra.Command {
	var inputsPath, eventsPath, today string

	cmd := &cobra.Command{
		Use:   "state",
		Short: "Show the per-unit ledger and slack, optionally after feedback",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := loadInputs(app, inputsPath)
			if err != nil {
				return err
			}

			var events []domain.FeedbackEvent
			if eventsPath != "" {
				if events, err = loadEvents(eventsPath); err != nil {
					return err
				}
			}

			resp, err := app.States.Derive(context.Background(), contract.StateRequest{
				Inputs:   inputs,
				Events:   events,
				TodayISO: todayFlag(today),
			})
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatState(&resp.State))
			return nil
		},
	}

	cmd.Flags().StringVar(&inputsPath, "inputs", "", "Path to the inputs file (JSON or YAML)")
	cmd.Flags().StringVar(&eventsPath, "events", "", "Path to a feedback events file (JSON or YAML)")
	cmd.Flags().StringVar(&today, "today", "", "Planning start date (YYYY-MM-DD, defaults to today)")

	return cmd
}
