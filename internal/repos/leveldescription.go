package repos

import (
  "context"
  "errors"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/growthbridge/growthbridge-backend/internal/logger"
  "github.com/growthbridge/growthbridge-backend/internal/types"
)

type LevelDescriptionRepo interface {
  GetAll(ctx context.Context, tx *gorm.DB) ([]*types.LevelDescription, error)
  GetByDimensionAndLevel(ctx context.Context, tx *gorm.DB, dimensionID uuid.UUID, level string) (*types.LevelDescription, error)
}

type levelDescriptionRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewLevelDescriptionRepo(db *gorm.DB, baseLog *logger.Logger) LevelDescriptionRepo {
  repoLog := baseLog.With("repo", "LevelDescriptionRepo")
  return &levelDescriptionRepo{db: db, log: repoLog}
}

func (r *levelDescriptionRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.LevelDescription, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.LevelDescription
  if err := transaction.WithContext(ctx).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

// GetByDimensionAndLevel returns (nil, nil) when no row exists; the caller
// decides whether that is fatal.
func (r *levelDescriptionRepo) GetByDimensionAndLevel(ctx context.Context, tx *gorm.DB, dimensionID uuid.UUID, level string) (*types.LevelDescription, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.LevelDescription
  if err := transaction.WithContext(ctx).
    Where("dimension_id = ? AND level = ?", dimensionID, level).
    First(&result).Error; err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, nil
    }
    return nil, err
  }
  return &result, nil
}
