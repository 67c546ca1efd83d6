package cmd

import (
	"github.com/spf13/cobra"
)

var monthCmd = &cobra.Command{
	Use:   "month",
	Short: "Print the month calendar of each scenario",
	Long: `Print the settled month calendar for the scenarios in the data file.

The month shown is the one containing --date (today by default). Streak
positions are laid out from the first of the month.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = e.logger.Sync() }()

		name, _ := cmd.Flags().GetString("scenario")
		return renderMonth(cmd.OutOrStdout(), e.dataset, name, e.currentDate)
	},
}

func init() {
	monthCmd.Flags().String("scenario", "", "Scenario to render (default: all)")
}
