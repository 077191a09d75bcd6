package command

import (
	"github.com/spf13/cobra"

	"github.com/dentalops/roster/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the roster service",
	Long:  "The serve command runs the roster HTTP service until interrupted",
	Run:   func(cmd *cobra.Command, args []string) { api.MainLoop() },
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
