package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/growthbridge/growthbridge-backend/internal/apierr"
	"github.com/growthbridge/growthbridge-backend/internal/logger"
	"github.com/growthbridge/growthbridge-backend/internal/repos"
	"github.com/growthbridge/growthbridge-backend/internal/types"
)

type AnswerInput struct {
	QuestionID uuid.UUID `json:"question_id"`
	Response   int       `json:"response"`
}

type SubmitOutcome struct {
	SavedCount int  `json:"saved_count"`
	Completed  bool `json:"completed"`
}

type AssessmentService interface {
	GetPendingQuestions(ctx context.Context, userID uuid.UUID) ([]*types.AssessmentQuestion, error)
	SubmitAnswers(ctx context.Context, userID uuid.UUID, answers []AnswerInput) (*SubmitOutcome, error)
	GetResults(ctx context.Context, userID uuid.UUID) ([]*types.AssessmentResult, error)
}

type assessmentService struct {
	db              *gorm.DB
	log             *logger.Logger
	questionRepo    repos.AssessmentQuestionRepo
	answerRepo      repos.AssessmentAnswerRepo
	descriptionRepo repos.LevelDescriptionRepo
	resultRepo      repos.AssessmentResultRepo
	profileRepo     repos.UserProfileRepo
}

func NewAssessmentService(
	db *gorm.DB,
	log *logger.Logger,
	questionRepo repos.AssessmentQuestionRepo,
	answerRepo repos.AssessmentAnswerRepo,
	descriptionRepo repos.LevelDescriptionRepo,
	resultRepo repos.AssessmentResultRepo,
	profileRepo repos.UserProfileRepo,
) AssessmentService {
	serviceLog := log.With("service", "AssessmentService")
	return &assessmentService{
		db:              db,
		log:             serviceLog,
		questionRepo:    questionRepo,
		answerRepo:      answerRepo,
		descriptionRepo: descriptionRepo,
		resultRepo:      resultRepo,
		profileRepo:     profileRepo,
	}
}

func (as *assessmentService) GetPendingQuestions(ctx context.Context, userID uuid.UUID) ([]*types.AssessmentQuestion, error) {
	if userID == uuid.Nil {
		return nil, apierr.Validation(fmt.Errorf("a user id is required"))
	}
	pending, err := as.questionRepo.GetPendingByUser(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("Failed to load pending questions: %w", err)
	}
	return pending, nil
}

// SubmitAnswers upserts the batch, re-checks the pending set and, when the
// inventory just became complete, recomputes and projects the aggregate
// results. The whole sequence runs in one transaction bound to a single
// pooled connection: an aggregation failure rolls the answer batch back too,
// and partial writes are never visible to readers.
func (as *assessmentService) SubmitAnswers(ctx context.Context, userID uuid.UUID, answers []AnswerInput) (*SubmitOutcome, error) {
	if vErr := validateSubmission(userID, answers); vErr != nil {
		return nil, vErr
	}

	ctx, span := otel.Tracer("growthbridge/assessment").Start(ctx, "assessment.submit")
	span.SetAttributes(
		attribute.String("user.id", userID.String()),
		attribute.Int("assessment.batch_size", len(answers)),
	)
	defer span.End()

	outcome := &SubmitOutcome{SavedCount: len(answers)}
	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, answer := range answers {
			row := &types.AssessmentAnswer{
				ID:         uuid.New(),
				UserID:     userID,
				QuestionID: answer.QuestionID,
				Response:   answer.Response,
			}
			if uErr := as.answerRepo.Upsert(ctx, tx, row); uErr != nil {
				return fmt.Errorf("Failed to save answer for question %s: %w", answer.QuestionID, uErr)
			}
		}

		pendingCount, pErr := as.questionRepo.CountPendingByUser(ctx, tx, userID)
		if pErr != nil {
			return fmt.Errorf("Failed to count pending questions: %w", pErr)
		}
		outcome.Completed = pendingCount == 0

		if outcome.Completed {
			if aErr := as.aggregateAndProject(ctx, tx, userID); aErr != nil {
				return aErr
			}
		}
		return nil
	})
	if err != nil {
		as.log.Error("Answer submission failed", "user_id", userID, "error", err)
		return nil, err
	}

	as.log.Info("Answer batch saved", "user_id", userID, "saved_count", outcome.SavedCount, "completed", outcome.Completed)
	return outcome, nil
}

// aggregateAndProject recomputes every dimension mean from scratch,
// classifies it, resolves the matching level description and upserts the
// aggregate row. A missing description aborts the surrounding transaction:
// a result row may never reference a description that does not exist.
func (as *assessmentService) aggregateAndProject(ctx context.Context, tx *gorm.DB, userID uuid.UUID) error {
	averages, err := as.answerRepo.GetDimensionAverages(ctx, tx, userID)
	if err != nil {
		return fmt.Errorf("Failed to compute dimension averages: %w", err)
	}
	if len(averages) == 0 {
		return nil
	}

	var projected *types.AssessmentResult
	for _, avg := range averages {
		level, cErr := classifyLevel(avg.Score)
		if cErr != nil {
			return cErr
		}
		description, dErr := as.descriptionRepo.GetByDimensionAndLevel(ctx, tx, avg.DimensionID, level)
		if dErr != nil {
			return fmt.Errorf("Failed to load level description: %w", dErr)
		}
		if description == nil {
			return apierr.Consistency(fmt.Errorf("no level description for dimension %s at level %s", avg.DimensionID, level))
		}

		result := &types.AssessmentResult{
			ID:            uuid.New(),
			UserID:        userID,
			DimensionID:   avg.DimensionID,
			Score:         avg.Score,
			Level:         level,
			DescriptionID: description.ID,
		}
		if uErr := as.resultRepo.Upsert(ctx, tx, result); uErr != nil {
			return fmt.Errorf("Failed to upsert aggregate result: %w", uErr)
		}
		// Averages arrive in dimension catalog order, so the pointer always
		// lands on the lowest-position dimension's result.
		if projected == nil {
			projected = result
		}
	}

	if sErr := as.profileRepo.SetLatestResult(ctx, tx, userID, projected.ID); sErr != nil {
		return fmt.Errorf("Failed to project latest result onto profile: %w", sErr)
	}
	return nil
}

func (as *assessmentService) GetResults(ctx context.Context, userID uuid.UUID) ([]*types.AssessmentResult, error) {
	if userID == uuid.Nil {
		return nil, apierr.Validation(fmt.Errorf("a user id is required"))
	}
	results, err := as.resultRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("Failed to load assessment results: %w", err)
	}
	if len(results) == 0 {
		return nil, apierr.NotFound(fmt.Errorf("no assessment results for user %s", userID))
	}
	return results, nil
}

func validateSubmission(userID uuid.UUID, answers []AnswerInput) error {
	if userID == uuid.Nil {
		return apierr.Validation(fmt.Errorf("a user id is required"))
	}
	if len(answers) == 0 {
		return apierr.Validation(fmt.Errorf("at least one answer is required"))
	}
	for _, answer := range answers {
		if answer.QuestionID == uuid.Nil {
			return apierr.Validation(fmt.Errorf("every answer needs a question id"))
		}
		if answer.Response < 1 || answer.Response > 5 {
			return apierr.Validation(fmt.Errorf("response %d for question %s is outside [1, 5]", answer.Response, answer.QuestionID))
		}
	}
	return nil
}
