package commands

import (
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pizzaorder/internal/app"
	"pizzaorder/internal/config"
	"pizzaorder/internal/logging"
)

var (
	configPath string
	endpoint   string
	verbose    bool
	appCtx     *app.Wire
)

// Execute runs the pizza CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "pizza",
		Short:        "Order a pizza from the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if endpoint != "" {
				settings.Endpoint = endpoint
			}

			log, err := logging.New(logging.Options{
				Config:      settings.Log,
				Verbose:     verbose,
				Interactive: cmd.Name() == "form",
			})
			if err != nil {
				return err
			}

			appCtx, err = app.NewWire(app.Config{
				Settings: settings,
				HTTP:     &http.Client{},
				Logger:   log,
			})
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				_ = appCtx.Log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&endpoint, "endpoint", "", "order endpoint URL (default "+config.DefaultEndpoint+")")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(formCmd(), orderCmd(), toppingsCmd())
	return root
}

func logger() *zap.Logger {
	if appCtx == nil || appCtx.Log == nil {
		return zap.NewNop()
	}
	return appCtx.Log
}
