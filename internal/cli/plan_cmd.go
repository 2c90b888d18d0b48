package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ngimenez/opoplan/internal/cli/formatter"
	"github.com/ngimenez/opoplan/internal/contract"
)

func newPlanCmd(app *App) *cobra.Command {
	var inputsPath, today string
	var asJSON, interactive bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a study plan from form inputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := loadInputs(app, inputsPath)
			if err != nil {
				return err
			}

			resp, err := app.Plans.Generate(context.Background(), contract.PlanRequest{
				Inputs:   inputs,
				TodayISO: todayFlag(today),
			})
			if err != nil {
				return err
			}

			if asJSON {
				data, err := json.MarshalIndent(resp.Plan, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding plan: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}

			rendered := formatter.FormatPlan(&resp.Plan) + "\n" + formatter.FormatWeekSummaries(&resp.Plan)
			if interactive && app.IsInteractive != nil && app.IsInteractive() {
				return runPager("Study plan", rendered)
			}
			fmt.Print(rendered)
			return nil
		},
	}

	cmd.Flags().StringVar(&inputsPath, "inputs", "", "Path to the inputs file (JSON or YAML)")
	cmd.Flags().StringVar(&today, "today", "", "Planning start date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw plan as JSON")
	cmd.Flags().BoolVar(&interactive, "interactive", false, "Browse the plan in a pager")

	return cmd
}
