package cmd

import (
	"github.com/spf13/cobra"
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Print the week row of each scenario",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = e.logger.Sync() }()

		name, _ := cmd.Flags().GetString("scenario")
		perfect, _ := cmd.Flags().GetBool("perfect-week")
		return renderWeek(cmd.OutOrStdout(), e.dataset, name, perfect)
	},
}

func init() {
	weekCmd.Flags().String("scenario", "", "Scenario to render (default: all)")
	weekCmd.Flags().Bool("perfect-week", false, "Render every weekday as a flame")
}
