package api

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/dentalops/roster/patients"
	"github.com/dentalops/roster/scrape"
)

type Handler struct {
	patients   patients.Service
	dispatcher scrape.Dispatcher
	logger     *zap.SugaredLogger
}

type Params struct {
	fx.In

	Patients   patients.Service
	Dispatcher scrape.Dispatcher
	Logger     *zap.SugaredLogger
}

func NewHandler(p Params) *Handler {
	return &Handler{
		patients:   p.Patients,
		dispatcher: p.Dispatcher,
		logger:     p.Logger,
	}
}
