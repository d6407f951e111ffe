package types

import (
	"time"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserProfile is a denormalized read projection, not a source of truth.
// LatestResultID points at one of the user's assessment_result rows and is
// rewritten on every completion event.
type UserProfile struct {
	ID             uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	User           *User             `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	Headline       string            `gorm:"column:headline" json:"headline"`
	Bio            string            `gorm:"column:bio;type:text" json:"bio"`
	Preferences    datatypes.JSON    `gorm:"type:jsonb;column:preferences" json:"preferences,omitempty"`
	LatestResultID *uuid.UUID        `gorm:"type:uuid;column:latest_result_id" json:"latest_result_id,omitempty"`
	LatestResult   *AssessmentResult `gorm:"foreignKey:LatestResultID;references:ID" json:"latest_result,omitempty"`
	CreatedAt      time.Time         `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"not null" json:"updated_at"`
}

func (UserProfile) TableName() string { return "user_profile" }
