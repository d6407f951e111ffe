package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/growthbridge/growthbridge-backend/internal/logger"
  "github.com/growthbridge/growthbridge-backend/internal/types"
)

// DimensionAverage is one row of the per-dimension mean recompute, ordered by
// dimension catalog position.
type DimensionAverage struct {
  DimensionID uuid.UUID `gorm:"column:dimension_id"`
  Score       float64   `gorm:"column:score"`
}

type AssessmentAnswerRepo interface {
  Upsert(ctx context.Context, tx *gorm.DB, row *types.AssessmentAnswer) error
  GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.AssessmentAnswer, error)
  GetDimensionAverages(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*DimensionAverage, error)
  CountByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
}

type assessmentAnswerRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewAssessmentAnswerRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentAnswerRepo {
  repoLog := baseLog.With("repo", "AssessmentAnswerRepo")
  return &assessmentAnswerRepo{db: db, log: repoLog}
}

func (r *assessmentAnswerRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.AssessmentAnswer) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if row == nil {
    return nil
  }

  // Upsert by unique user_id + question_id
  if err := transaction.WithContext(ctx).
    Where("user_id = ? AND question_id = ?", row.UserID, row.QuestionID).
    Assign(map[string]interface{}{"response": row.Response}).
    FirstOrCreate(row).Error; err != nil {
    return err
  }
  return nil
}

func (r *assessmentAnswerRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.AssessmentAnswer, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.AssessmentAnswer
  if userID == uuid.Nil {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

// GetDimensionAverages recomputes the mean response per dimension from
// scratch over all of the user's answers. Full recompute on purpose: answers
// can be overwritten, an incremental counter would drift.
func (r *assessmentAnswerRepo) GetDimensionAverages(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*DimensionAverage, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*DimensionAverage
  if userID == uuid.Nil {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Table("assessment_answer").
    Select("assessment_question.dimension_id AS dimension_id, AVG(assessment_answer.response) AS score").
    Joins("JOIN assessment_question ON assessment_question.id = assessment_answer.question_id").
    Joins("JOIN dimension ON dimension.id = assessment_question.dimension_id").
    Where("assessment_answer.user_id = ?", userID).
    Group("assessment_question.dimension_id, dimension.position").
    Order("dimension.position ASC").
    Scan(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *assessmentAnswerRepo) CountByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var count int64
  if userID == uuid.Nil {
    return 0, nil
  }

  if err := transaction.WithContext(ctx).
    Model(&types.AssessmentAnswer{}).
    Where("user_id = ?", userID).
    Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}
