package types

import (
	"time"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AssessmentQuestion struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	DimensionID uuid.UUID      `gorm:"type:uuid;not null;index" json:"dimension_id"`
	Dimension   *Dimension     `gorm:"constraint:OnDelete:CASCADE;foreignKey:DimensionID;references:ID" json:"dimension,omitempty"`
	Prompt      string         `gorm:"column:prompt;not null" json:"prompt"`
	Position    int            `gorm:"column:position;not null;index" json:"position"`
	Metadata    datatypes.JSON `gorm:"type:jsonb;column:metadata" json:"metadata,omitempty"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updated_at"`
}

func (AssessmentQuestion) TableName() string { return "assessment_question" }
