package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	QuestionTypeMCQ         = "mcq"
	QuestionTypeShortAnswer = "short_answer"
	QuestionTypeLongAnswer  = "long_answer"

	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type TechnicalQuestion struct {
	ID              uint            `gorm:"primarykey" json:"id"`
	QuestionText    string          `json:"question_text" gorm:"type:text;not null"`
	QuestionType    string          `json:"question_type" gorm:"not null;index"` // "mcq", "short_answer", "long_answer"
	TechStack       string          `json:"tech_stack" gorm:"not null;index"`
	DifficultyLevel string          `json:"difficulty_level" gorm:"not null;index"` // "easy", "medium", "hard"
	Topic           string          `json:"topic"`
	IsPremium       bool            `json:"is_premium" gorm:"not null;default:false"`
	MCQOptions      []MCQOption     `json:"mcq_options,omitempty" gorm:"foreignKey:QuestionID"`
	ExpectedAnswer  *ExpectedAnswer `json:"expected_answer,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (q *TechnicalQuestion) IsMCQ() bool {
	return q.QuestionType == QuestionTypeMCQ
}

type MCQOption struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	QuestionID  uint   `json:"question_id" gorm:"not null;index"`
	OptionText  string `json:"option_text" gorm:"type:text;not null"`
	IsCorrect   bool   `json:"is_correct" gorm:"not null;default:false"`
	OptionLabel string `json:"option_label" gorm:"size:1;not null"` // A-D
}

type ExpectedAnswer struct {
	ID              uint                        `gorm:"primarykey" json:"id"`
	QuestionID      uint                        `json:"question_id" gorm:"not null;uniqueIndex"`
	SampleAnswer    string                      `json:"sample_answer" gorm:"type:text;not null"`
	KeyPoints       datatypes.JSONSlice[string] `json:"key_points"`
	ScoringCriteria string                      `json:"scoring_criteria" gorm:"type:text"`
	CreatedAt       time.Time                   `json:"created_at"`
}
