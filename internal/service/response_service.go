package service

import (
	"context"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/intervue/internal/apperror"
	"github.com/lshigami/intervue/internal/dto"
	"github.com/lshigami/intervue/internal/model"
	"github.com/lshigami/intervue/internal/repository"
	"github.com/rs/zerolog/log"
)

type ResponseService interface {
	Submit(ctx context.Context, req dto.SubmitResponseRequest) (*dto.SubmitResponseResult, error)
	ListByUser(ctx context.Context, userID string) ([]dto.UserResponseDTO, error)
	GenerateFeedback(ctx context.Context, responseID uint) (*dto.FeedbackResponse, error)
}

type responseService struct {
	questionRepo repository.TechnicalQuestionRepository
	responseRepo repository.UserResponseRepository
	feedback     FeedbackProvider
}

func NewResponseService(questionRepo repository.TechnicalQuestionRepository, responseRepo repository.UserResponseRepository, feedback FeedbackProvider) ResponseService {
	return &responseService{questionRepo: questionRepo, responseRepo: responseRepo, feedback: feedback}
}

func (s *responseService) Submit(ctx context.Context, req dto.SubmitResponseRequest) (*dto.SubmitResponseResult, error) {
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		return nil, apperror.New(apperror.KindValidation, "user_id is required")
	}
	answer := strings.TrimSpace(string(req.UserAnswer))
	if answer == "" {
		return nil, apperror.New(apperror.KindValidation, "user_answer must not be blank")
	}

	question, err := s.questionRepo.FindByIDWithDetails(ctx, req.QuestionID)
	if err != nil {
		return nil, dbError(err, "Question not found")
	}

	response := model.UserResponse{
		UserID:     userID,
		QuestionID: question.ID,
		UserAnswer: answer,
		TimeTaken:  req.TimeTaken,
	}

	var correctOption *model.MCQOption
	if question.IsMCQ() {
		known := false
		for _, o := range question.MCQOptions {
			if idString(o.ID) == answer {
				known = true
				break
			}
		}
		if !known {
			return nil, apperror.New(apperror.KindValidation, "user_answer must be the id of one of the question's options")
		}
		isCorrect, correct := CheckMCQ(question.MCQOptions, answer)
		response.IsCorrect = &isCorrect
		correctOption = correct
	}

	if err := s.responseRepo.Create(ctx, &response); err != nil {
		log.Error().Err(err).Uint("question_id", question.ID).Str("user_id", userID).Msg("Failed to save user response")
		return nil, dbError(err, "Question not found")
	}
	log.Info().Uint("response_id", response.ID).Uint("question_id", question.ID).Str("user_id", userID).Msg("User response submitted")

	result := &dto.SubmitResponseResult{IsCorrect: response.IsCorrect}
	response.Question = *question
	result.Response = responseDTO(response)
	if correctOption != nil {
		opt := optionDTO(*correctOption)
		result.CorrectOption = &opt
	}
	return result, nil
}

func (s *responseService) ListByUser(ctx context.Context, userID string) ([]dto.UserResponseDTO, error) {
	responses, err := s.responseRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, dbError(err, "Responses not found")
	}
	out := make([]dto.UserResponseDTO, 0, len(responses))
	for _, r := range responses {
		out = append(out, responseDTO(r))
	}
	return out, nil
}

// GenerateFeedback scores a stored response and writes the result back.
func (s *responseService) GenerateFeedback(ctx context.Context, responseID uint) (*dto.FeedbackResponse, error) {
	response, err := s.responseRepo.FindByID(ctx, responseID)
	if err != nil {
		return nil, dbError(err, "Response not found")
	}
	question, err := s.questionRepo.FindByIDWithDetails(ctx, response.QuestionID)
	if err != nil {
		return nil, dbError(err, "Question not found")
	}

	f, err := s.feedback.Evaluate(ctx, *question, response.UserAnswer)
	if err != nil {
		return nil, err
	}

	if err := s.responseRepo.UpdateFeedback(ctx, response.ID, f.Overall, FormatFeedback(f)); err != nil {
		log.Error().Err(err).Uint("response_id", response.ID).Msg("Failed to store AI feedback")
		return nil, dbError(err, "Response not found")
	}
	log.Info().Uint("response_id", response.ID).Int("score", f.Overall).Msg("Feedback generated")

	var fb dto.FeedbackDTO
	copier.Copy(&fb, &f)
	return &dto.FeedbackResponse{ResponseID: response.ID, Feedback: fb}, nil
}

func responseDTO(r model.UserResponse) dto.UserResponseDTO {
	var out dto.UserResponseDTO
	copier.Copy(&out, &r)
	out.QuestionText = r.Question.QuestionText
	return out
}
