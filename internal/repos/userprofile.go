package repos

import (
  "context"
  "errors"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/growthbridge/growthbridge-backend/internal/logger"
  "github.com/growthbridge/growthbridge-backend/internal/types"
)

type UserProfileRepo interface {
  GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.UserProfile, error)
  Upsert(ctx context.Context, tx *gorm.DB, row *types.UserProfile) error
  SetLatestResult(ctx context.Context, tx *gorm.DB, userID uuid.UUID, resultID uuid.UUID) error
}

type userProfileRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewUserProfileRepo(db *gorm.DB, baseLog *logger.Logger) UserProfileRepo {
  repoLog := baseLog.With("repo", "UserProfileRepo")
  return &userProfileRepo{db: db, log: repoLog}
}

func (r *userProfileRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.UserProfile, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var result types.UserProfile
  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Preload("LatestResult").
    Preload("LatestResult.Dimension").
    Preload("LatestResult.Description").
    First(&result).Error; err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, nil
    }
    return nil, err
  }
  return &result, nil
}

func (r *userProfileRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.UserProfile) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  if row == nil {
    return nil
  }

  if err := transaction.WithContext(ctx).
    Where("user_id = ?", row.UserID).
    Assign(map[string]interface{}{
      "headline":    row.Headline,
      "bio":         row.Bio,
      "preferences": row.Preferences,
    }).
    FirstOrCreate(row).Error; err != nil {
    return err
  }
  return nil
}

// SetLatestResult rewrites the denormalized pointer on the profile
// projection. The profile row is created on first completion if the user
// never touched their profile.
func (r *userProfileRepo) SetLatestResult(ctx context.Context, tx *gorm.DB, userID uuid.UUID, resultID uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  row := &types.UserProfile{
    ID:     uuid.New(),
    UserID: userID,
  }
  if err := transaction.WithContext(ctx).
    Where("user_id = ?", userID).
    Assign(map[string]interface{}{"latest_result_id": resultID}).
    FirstOrCreate(row).Error; err != nil {
    return err
  }
  return nil
}
