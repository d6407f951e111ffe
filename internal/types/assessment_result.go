package types

import (
	"time"
	"github.com/google/uuid"
)

// AssessmentResult is the aggregate row per (user, dimension). Score is the
// unrounded mean of the user's answers for that dimension; Level and
// DescriptionID are always derived from it in the same transaction.
type AssessmentResult struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID         `gorm:"type:uuid;not null;index:idx_user_dimension,unique" json:"user_id"`
	User          *User             `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	DimensionID   uuid.UUID         `gorm:"type:uuid;not null;index:idx_user_dimension,unique" json:"dimension_id"`
	Dimension     *Dimension        `gorm:"constraint:OnDelete:CASCADE;foreignKey:DimensionID;references:ID" json:"dimension,omitempty"`
	Score         float64           `gorm:"column:score;not null" json:"score"`
	Level         string            `gorm:"column:level;not null" json:"level"`
	DescriptionID uuid.UUID         `gorm:"type:uuid;not null" json:"description_id"`
	Description   *LevelDescription `gorm:"foreignKey:DescriptionID;references:ID" json:"description,omitempty"`
	CreatedAt     time.Time         `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"not null" json:"updated_at"`
}

func (AssessmentResult) TableName() string { return "assessment_result" }
