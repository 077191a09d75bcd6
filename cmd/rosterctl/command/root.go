package command

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/dentalops/roster/api"
)

// Run executes a given function with dependencies supplied by the roster service DI graph
// `f` must return an error or nothing
// `opts` can be used to supply additional arguments that are not provided by the roster service
func Run(f interface{}, opts ...fx.Option) error {
	options := append(opts, api.Dependencies()...)
	options = append(options, fx.NopLogger, fx.Invoke(f))
	app := fx.New(options...)
	if err := app.Err(); err != nil {
		return err
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		return err
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStop()
	return app.Stop(stopCtx)
}

var rootCmd = &cobra.Command{
	Use:   "rosterctl",
	Short: "Helper tool to manage patient rosters",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
