package app

import (
	"gorm.io/gorm"
	"github.com/growthbridge/growthbridge-backend/internal/logger"
	"github.com/growthbridge/growthbridge-backend/internal/services"
)

type Services struct {
	Assessment services.AssessmentService
	Catalog    services.CatalogService
	User       services.UserService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, clients Clients) Services {
	log.Info("Wiring services...")
	return Services{
		Assessment: services.NewAssessmentService(
			db,
			log,
			reposet.AssessmentQuestion,
			reposet.AssessmentAnswer,
			reposet.LevelDescription,
			reposet.AssessmentResult,
			reposet.UserProfile,
		),
		Catalog: services.NewCatalogService(db, log, clients.Cache, reposet.Dimension, reposet.AssessmentQuestion),
		User:    services.NewUserService(db, log, reposet.User, reposet.UserProfile),
	}
}
