package app

import (
	"gorm.io/gorm"
	"github.com/growthbridge/growthbridge-backend/internal/logger"
	"github.com/growthbridge/growthbridge-backend/internal/repos"
)

type Repos struct {
	User               repos.UserRepo
	UserProfile        repos.UserProfileRepo
	Dimension          repos.DimensionRepo
	AssessmentQuestion repos.AssessmentQuestionRepo
	AssessmentAnswer   repos.AssessmentAnswerRepo
	LevelDescription   repos.LevelDescriptionRepo
	AssessmentResult   repos.AssessmentResultRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:               repos.NewUserRepo(db, log),
		UserProfile:        repos.NewUserProfileRepo(db, log),
		Dimension:          repos.NewDimensionRepo(db, log),
		AssessmentQuestion: repos.NewAssessmentQuestionRepo(db, log),
		AssessmentAnswer:   repos.NewAssessmentAnswerRepo(db, log),
		LevelDescription:   repos.NewLevelDescriptionRepo(db, log),
		AssessmentResult:   repos.NewAssessmentResultRepo(db, log),
	}
}
