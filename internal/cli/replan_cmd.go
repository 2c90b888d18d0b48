package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ngimenez/opoplan/internal/cli/formatter"
	"github.com/ngimenez/opoplan/internal/contract"
)

func newReplanCmd(app *App) *cobra.Command {
	var inputsPath, eventsPath, today string

	cmd := &cobra.Command{
		Use:   "replan",
		Short: "Fold feedback events over the plan and regenerate it",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := loadInputs(app, inputsPath)
			if err != nil {
				return err
			}
			events, err := loadEvents(eventsPath)
			if err != nil {
				return err
			}

			resp, err := app.Replans.Replan(context.Background(), contract.ReplanRequest{
				Inputs:   inputs,
				Events:   events,
				TodayISO: todayFlag(today),
			})
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatReplanDelta(resp))
			fmt.Print(formatter.FormatPlan(&resp.Plan))
			return nil
		},
	}

	cmd.Flags().StringVar(&inputsPath, "inputs", "", "Path to the inputs file (JSON or YAML)")
	cmd.Flags().StringVar(&eventsPath, "events", "", "Path to the feedback events file (JSON or YAML)")
	cmd.Flags().StringVar(&today, "today", "", "Planning start date (YYYY-MM-DD, defaults to today)")
	_ = cmd.MarkFlagRequired("events")

	return cmd
}
