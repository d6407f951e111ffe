package types

import (
	"time"
	"github.com/google/uuid"
)

// AssessmentAnswer holds one 1-5 response per (user, question). Resubmission
// overwrites in place; the pipeline never deletes rows.
type AssessmentAnswer struct {
	ID         uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID           `gorm:"type:uuid;not null;index:idx_user_question,unique" json:"user_id"`
	User       *User               `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	QuestionID uuid.UUID           `gorm:"type:uuid;not null;index:idx_user_question,unique" json:"question_id"`
	Question   *AssessmentQuestion `gorm:"constraint:OnDelete:CASCADE;foreignKey:QuestionID;references:ID" json:"question,omitempty"`
	Response   int                 `gorm:"column:response;not null" json:"response"`
	CreatedAt  time.Time           `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time           `gorm:"not null" json:"updated_at"`
}

func (AssessmentAnswer) TableName() string { return "assessment_answer" }
