package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/growthbridge/growthbridge-backend/internal/logger"
  "github.com/growthbridge/growthbridge-backend/internal/types"
)

type AssessmentResultRepo interface {
  Upsert(ctx context.Context, tx *gorm.DB, row *types.AssessmentResult) error
  GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.AssessmentResult, error)
  CountByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error)
}

type assessmentResultRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewAssessmentResultRepo(db *gorm.DB, baseLog *logger.Logger) AssessmentResultRepo {
  repoLog := baseLog.With("repo", "AssessmentResultRepo")
  return &assessmentResultRepo{db: db, log: repoLog}
}

// Upsert writes the aggregate row for (user, dimension). On conflict the
// score, level and description pointer are replaced together so the three
// fields never diverge. After return row.ID holds the persisted id.
func (r *assessmentResultRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.AssessmentResult) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if row == nil {
    return nil
  }

  if err := transaction.WithContext(ctx).
    Where("user_id = ? AND dimension_id = ?", row.UserID, row.DimensionID).
    Assign(map[string]interface{}{
      "score":          row.Score,
      "level":          row.Level,
      "description_id": row.DescriptionID,
    }).
    FirstOrCreate(row).Error; err != nil {
    return err
  }
  return nil
}

func (r *assessmentResultRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.AssessmentResult, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.AssessmentResult
  if userID == uuid.Nil {
    return results, nil
  }

  if err := transaction.WithContext(ctx).
    Model(&types.AssessmentResult{}).
    Joins("JOIN dimension ON dimension.id = assessment_result.dimension_id").
    Where("assessment_result.user_id = ?", userID).
    Order("dimension.position ASC").
    Preload("Dimension").
    Preload("Description").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *assessmentResultRepo) CountByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (int64, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var count int64
  if userID == uuid.Nil {
    return 0, nil
  }

  if err := transaction.WithContext(ctx).
    Model(&types.AssessmentResult{}).
    Where("user_id = ?", userID).
    Count(&count).Error; err != nil {
    return 0, err
  }
  return count, nil
}
