package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/growthbridge/growthbridge-backend/internal/apierr"
	"github.com/growthbridge/growthbridge-backend/internal/logger"
	"github.com/growthbridge/growthbridge-backend/internal/repos"
	"github.com/growthbridge/growthbridge-backend/internal/types"
)

type ProfileInput struct {
	Headline    string                 `json:"headline"`
	Bio         string                 `json:"bio"`
	Preferences map[string]interface{} `json:"preferences"`
}

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*types.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input ProfileInput) (*types.UserProfile, error)
}

type userService struct {
	db          *gorm.DB
	log         *logger.Logger
	userRepo    repos.UserRepo
	profileRepo repos.UserProfileRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo, profileRepo repos.UserProfileRepo) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{
		db:          db,
		log:         serviceLog,
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

func (us *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*types.UserProfile, error) {
	if userID == uuid.Nil {
		return nil, apierr.Validation(fmt.Errorf("a user id is required"))
	}
	profile, err := us.profileRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("Failed to load user profile: %w", err)
	}
	if profile == nil {
		return nil, apierr.NotFound(fmt.Errorf("no profile for user %s", userID))
	}
	return profile, nil
}

func (us *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input ProfileInput) (*types.UserProfile, error) {
	if userID == uuid.Nil {
		return nil, apierr.Validation(fmt.Errorf("a user id is required"))
	}
	exists, err := us.userRepo.Exists(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("Failed to check user: %w", err)
	}
	if !exists {
		return nil, apierr.NotFound(fmt.Errorf("no user %s", userID))
	}

	var preferences datatypes.JSON
	if input.Preferences != nil {
		raw, mErr := json.Marshal(input.Preferences)
		if mErr != nil {
			return nil, apierr.Validation(fmt.Errorf("preferences are not serializable: %w", mErr))
		}
		preferences = datatypes.JSON(raw)
	}

	row := &types.UserProfile{
		ID:          uuid.New(),
		UserID:      userID,
		Headline:    input.Headline,
		Bio:         input.Bio,
		Preferences: preferences,
	}
	if err := us.profileRepo.Upsert(ctx, nil, row); err != nil {
		return nil, fmt.Errorf("Failed to upsert user profile: %w", err)
	}

	profile, err := us.profileRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("Failed to reload user profile: %w", err)
	}
	return profile, nil
}
