package repos

import (
  "context"
  "gorm.io/gorm"
  "github.com/growthbridge/growthbridge-backend/internal/logger"
  "github.com/growthbridge/growthbridge-backend/internal/types"
)

type DimensionRepo interface {
  GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Dimension, error)
}

type dimensionRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewDimensionRepo(db *gorm.DB, baseLog *logger.Logger) DimensionRepo {
  repoLog := baseLog.With("repo", "DimensionRepo")
  return &dimensionRepo{db: db, log: repoLog}
}

func (r *dimensionRepo) GetAll(ctx context.Context, tx *gorm.DB) ([]*types.Dimension, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var results []*types.Dimension
  if err := transaction.WithContext(ctx).
    Order("position ASC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
