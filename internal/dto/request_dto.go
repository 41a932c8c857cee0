package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AnswerValue accepts a JSON string or number. MCQ answers are option ids
// and clients send them either way.
type AnswerValue string

func (a *AnswerValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = AnswerValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("user_answer must be a string or number")
	}
	*a = AnswerValue(n.String())
	return nil
}

type SubmitResponseRequest struct {
	UserID     string      `json:"user_id" binding:"required"`
	QuestionID uint        `json:"question_id" binding:"required"`
	UserAnswer AnswerValue `json:"user_answer"`
	TimeTaken  *int        `json:"time_taken,omitempty" binding:"omitempty,min=0"`
}

// QuestionListQuery binds the listing filters from the query string.
type QuestionListQuery struct {
	TechStack      string `form:"tech_stack"`
	Difficulty     string `form:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	Type           string `form:"type" binding:"omitempty,oneof=mcq short_answer long_answer"`
	IncludePremium *bool  `form:"include_premium"`
}
