package model

import (
	"time"

	"gorm.io/gorm"
)

type UserResponse struct {
	ID         uint              `gorm:"primarykey" json:"id"`
	UserID     string            `json:"user_id" gorm:"not null;index"`
	QuestionID uint              `json:"question_id" gorm:"not null;index"`
	Question   TechnicalQuestion `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	UserAnswer string            `json:"user_answer" gorm:"type:text;not null"`
	TimeTaken  *int              `json:"time_taken,omitempty"` // seconds
	IsCorrect  *bool             `json:"is_correct,omitempty"`
	AIScore    *int              `json:"ai_score,omitempty"`
	AIFeedback string            `json:"ai_feedback,omitempty" gorm:"type:text"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	DeletedAt  gorm.DeletedAt    `gorm:"index" json:"-"`
}
