package api

import (
	"go.uber.org/fx"

	"github.com/dentalops/roster/config"
	"github.com/dentalops/roster/logger"
	"github.com/dentalops/roster/patients"
	"github.com/dentalops/roster/scrape"
	"github.com/dentalops/roster/store"
)

// Dependencies is the full service graph; the ops CLI reuses it for
// one-shot commands.
func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			newConfig,
			logger.NewProductionLogger,
			logger.Suggar,
			store.NewConfig,
			store.GetConnectionString,
			store.NewClient,
			store.NewDatabase,
			patients.NewRepository,
			patients.NewService,
			scrape.NewCredentialStore,
			scrape.NewGatewayConfig,
			scrape.NewGateway,
			scrape.NewDispatcher,
			NewHealthCheck,
			NewHandler,
			NewServer,
		),
		patients.CollaboratorsModule,
	}
}

func newConfig() (*config.Config, error) {
	cfg := config.New()
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MainLoop() {
	options := append(
		Dependencies(),
		fx.Invoke(SetReady),
		fx.Invoke(Start),
	)
	fx.New(options...).Run()
}
