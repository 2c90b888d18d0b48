package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ngimenez/opoplan/internal/cli/formatter"
	"github.com/ngimenez/opoplan/internal/contract"
)

func newCapacityCmd(app *App) *cobra.Command {
	var inputsPath, today string

	cmd := &cobra.Command{
		Use:   "capacity",
		Short: "Assess planable capacity and buffer without generating a plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := loadInputs(app, inputsPath)
			if err != nil {
				return err
			}

			resp, err := app.Capacity.Assess(context.Background(), contract.CapacityRequest{
				Inputs:   inputs,
				TodayISO: todayFlag(today),
			})
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatCapacity(resp.Capacity))
			return nil
		},
	}

	cmd.Flags().StringVar(&inputsPath, "inputs", "", "Path to the inputs file (JSON or YAML)")
	cmd.Flags().StringVar(&today, "today", "", "Planning start date (YYYY-MM-DD, defaults to today)")

	return cmd
}
