package command

import (
	"github.com/spf13/cobra"
)

var patientsCmd = &cobra.Command{
	Use:   "patients",
	Short: "Patient rosters",
	Long:  "The patients command is used to inspect practice rosters",
}

func init() {
	rootCmd.AddCommand(patientsCmd)
}
