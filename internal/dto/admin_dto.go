package dto

// MCQOptionCreateDTO is one choice of a multiple choice question.
type MCQOptionCreateDTO struct {
	OptionLabel string `json:"option_label" binding:"required,oneof=A B C D"`
	OptionText  string `json:"option_text" binding:"required"`
	IsCorrect   bool   `json:"is_correct"`
}

type ExpectedAnswerCreateDTO struct {
	SampleAnswer    string   `json:"sample_answer" binding:"required"`
	KeyPoints       []string `json:"key_points"`
	ScoringCriteria string   `json:"scoring_criteria"`
}

// TechnicalQuestionCreateDTO is for admin to add a question to the bank.
// MCQ questions carry 2-4 options, free text questions an expected answer.
type TechnicalQuestionCreateDTO struct {
	QuestionText    string                   `json:"question_text" binding:"required"`
	QuestionType    string                   `json:"question_type" binding:"required,oneof=mcq short_answer long_answer"`
	TechStack       string                   `json:"tech_stack" binding:"required"`
	DifficultyLevel string                   `json:"difficulty_level" binding:"required,oneof=easy medium hard"`
	Topic           string                   `json:"topic"`
	IsPremium       bool                     `json:"is_premium"`
	MCQOptions      []MCQOptionCreateDTO     `json:"mcq_options" binding:"omitempty,max=4,dive"`
	ExpectedAnswer  *ExpectedAnswerCreateDTO `json:"expected_answer"`
}

// AdminQuestionResponse echoes a created question including the correct option.
type AdminQuestionResponse struct {
	QuestionDetailsResponse
	CorrectOptionLabel string `json:"correct_option_label,omitempty"`
}
