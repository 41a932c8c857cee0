package dto

import "time"

type ErrorResponse struct {
	Error   string   `json:"error"`
	Code    string   `json:"code,omitempty"`
	Details []string `json:"details,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ResumeDTO struct {
	ID            string    `json:"id"`
	FileName      string    `json:"file_name"`
	FileType      string    `json:"file_type"`
	MimeType      string    `json:"mime_type,omitempty"`
	SizeBytes     int64     `json:"size_bytes"`
	ExtractedText string    `json:"extracted_text"`
	UserID        string    `json:"user_id,omitempty"`
	ParsedAt      time.Time `json:"parsed_at"`
}

type ResumeUploadData struct {
	ID            string    `json:"id"`
	FileName      string    `json:"file_name"`
	FileType      string    `json:"file_type"`
	TextLength    int       `json:"text_length"`
	ParsedAt      time.Time `json:"parsed_at"`
	ExtractedText string    `json:"extracted_text"`
}

type ResumeUploadResponse struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	Data      ResumeUploadData    `json:"data"`
	Questions []GeneratedQuestion `json:"questions"`
}

type ResumeListResponse struct {
	Resumes []ResumeDTO `json:"resumes"`
}

// GeneratedQuestion is a canned interview question picked from resume keywords.
type GeneratedQuestion struct {
	Category   string `json:"category"`
	Question   string `json:"question"`
	Difficulty string `json:"difficulty"`
}

type ResumeQuestionsResponse struct {
	ResumeID  string              `json:"resume_id"`
	Questions []GeneratedQuestion `json:"questions"`
}

type TechnicalQuestionDTO struct {
	ID              uint      `json:"id"`
	QuestionText    string    `json:"question_text"`
	QuestionType    string    `json:"question_type"`
	TechStack       string    `json:"tech_stack"`
	DifficultyLevel string    `json:"difficulty_level"`
	Topic           string    `json:"topic,omitempty"`
	IsPremium       bool      `json:"is_premium"`
	CreatedAt       time.Time `json:"created_at"`
}

type QuestionListResponse struct {
	Questions []TechnicalQuestionDTO `json:"questions"`
}

type TechStacksResponse struct {
	TechStacks []string `json:"tech_stacks"`
}

// MCQOptionDTO never carries the correctness flag.
type MCQOptionDTO struct {
	ID          uint   `json:"id"`
	OptionLabel string `json:"option_label"`
	OptionText  string `json:"option_text"`
}

type ExpectedAnswerDTO struct {
	SampleAnswer    string   `json:"sample_answer"`
	KeyPoints       []string `json:"key_points"`
	ScoringCriteria string   `json:"scoring_criteria,omitempty"`
}

type QuestionDetailsResponse struct {
	Question       TechnicalQuestionDTO `json:"question"`
	MCQOptions     []MCQOptionDTO       `json:"mcq_options,omitempty"`
	ExpectedAnswer *ExpectedAnswerDTO   `json:"expected_answer,omitempty"`
}

type UserResponseDTO struct {
	ID           uint      `json:"id"`
	UserID       string    `json:"user_id"`
	QuestionID   uint      `json:"question_id"`
	QuestionText string    `json:"question_text,omitempty"`
	UserAnswer   string    `json:"user_answer"`
	TimeTaken    *int      `json:"time_taken,omitempty"`
	IsCorrect    *bool     `json:"is_correct,omitempty"`
	AIScore      *int      `json:"ai_score,omitempty"`
	AIFeedback   string    `json:"ai_feedback,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type SubmitResponseResult struct {
	Response      UserResponseDTO `json:"response"`
	IsCorrect     *bool           `json:"is_correct,omitempty"`
	CorrectOption *MCQOptionDTO   `json:"correct_option,omitempty"`
}

type UserResponsesResponse struct {
	Responses []UserResponseDTO `json:"responses"`
}

type FeedbackDTO struct {
	Overall           int      `json:"overall"`
	TechnicalAccuracy int      `json:"technical_accuracy"`
	Completeness      int      `json:"completeness"`
	Clarity           int      `json:"clarity"`
	Summary           string   `json:"summary"`
	Strengths         []string `json:"strengths"`
	Improvements      []string `json:"improvements"`
}

type FeedbackResponse struct {
	ResponseID uint        `json:"response_id"`
	Feedback   FeedbackDTO `json:"feedback"`
}
