package types

import (
	"time"
	"github.com/google/uuid"
)

// Level labels reachable by the score classifier.
const (
	LevelLow      = "Low"
	LevelModerate = "Moderate"
	LevelHigh     = "High"
)

// LevelDescription is the narrative for one (dimension, level) pair. A row
// must pre-exist for every pair the classifier can reach; aggregation aborts
// otherwise.
type LevelDescription struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	DimensionID uuid.UUID  `gorm:"type:uuid;not null;index:idx_dimension_level,unique" json:"dimension_id"`
	Dimension   *Dimension `gorm:"constraint:OnDelete:CASCADE;foreignKey:DimensionID;references:ID" json:"dimension,omitempty"`
	Level       string     `gorm:"column:level;not null;index:idx_dimension_level,unique" json:"level"`
	Title       string     `gorm:"column:title" json:"title"`
	Narrative   string     `gorm:"column:narrative;type:text;not null" json:"narrative"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`
}

func (LevelDescription) TableName() string { return "level_description" }
