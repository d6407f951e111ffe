package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/growthbridge/growthbridge-backend/internal/logger"
  "github.com/growthbridge/growthbridge-backend/internal/types"
)

type AssessmentQuestionRepo interface {
  GetAll(ctx context.Context, tx *gorm.DB) ([]*types.AssessmentQuestion, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.AssessmentQuestion, error)
  GetPendingByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.AssessmentQuestion, error)
  CountPendingByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
}

type assessmentQuestionRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewAssessmentQuestionRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentQuestionRepo {
  repoLog := baseLog.With("repo", "AssessmentQuestionRepo")
  return &assessmentQuestionRepo{db: db, log: repoLog}
}

func (r *assessmentQuestionRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.AssessmentQuestion, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.AssessmentQuestion
  if err := transaction.WithContext(ctx).
    Preload("Dimension").
    Order("position ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *assessmentQuestionRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.AssessmentQuestion, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.AssessmentQuestion
  if len(ids) == 0 {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Where("id IN ?", ids).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

// GetPendingByUser returns, in catalog order, every question the user has no
// stored answer for. Live left-anti-join against the catalog; no cached
// completion state.
func (r *assessmentQuestionRepo) GetPendingByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.AssessmentQuestion, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.AssessmentQuestion
  if userID == uuid.Nil {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Model(&types.AssessmentQuestion{}).
    Joins("LEFT JOIN assessment_answer ON assessment_answer.question_id = assessment_question.id AND assessment_answer.user_id = ?", userID).
    Where("assessment_answer.id IS NULL").
    Order("assessment_question.position ASC").
    Preload("Dimension").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *assessmentQuestionRepo) CountPendingByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var count int64
  if userID == uuid.Nil {
    return 0, nil
  }

  if err := transaction.WithContext(ctx).
    Model(&types.AssessmentQuestion{}).
    Joins("LEFT JOIN assessment_answer ON assessment_answer.question_id = assessment_question.id AND assessment_answer.user_id = ?", userID).
    Where("assessment_answer.id IS NULL").
    Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}
