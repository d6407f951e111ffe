package app

import (
	"github.com/growthbridge/growthbridge-backend/internal/handlers"
	"github.com/growthbridge/growthbridge-backend/internal/logger"
)

type Handlers struct {
	Assessment *handlers.AssessmentHandler
	Catalog    *handlers.CatalogHandler
	User       *handlers.UserHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Assessment: handlers.NewAssessmentHandler(log, services.Assessment),
		Catalog:    handlers.NewCatalogHandler(log, services.Catalog),
		User:       handlers.NewUserHandler(services.User),
	}
}
