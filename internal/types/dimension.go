package types

import (
	"time"
	"github.com/google/uuid"
)

// Dimension is one assessable trait axis of the saboteur inventory.
// Immutable reference data, seeded at boot.
type Dimension struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Key       string    `gorm:"column:key;not null;uniqueIndex" json:"key"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Position  int       `gorm:"column:position;not null;index" json:"position"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Dimension) TableName() string { return "dimension" }
