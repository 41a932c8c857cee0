package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lshigami/intervue/internal/apperror"
	"github.com/lshigami/intervue/internal/dto"
	"github.com/lshigami/intervue/internal/model"
	"github.com/lshigami/intervue/internal/repository"
	"github.com/rs/zerolog/log"
)

type AdminQuestionService interface {
	CreateQuestion(ctx context.Context, req dto.TechnicalQuestionCreateDTO) (*dto.AdminQuestionResponse, error)
}

type adminQuestionService struct {
	repo repository.TechnicalQuestionRepository
}

func NewAdminQuestionService(repo repository.TechnicalQuestionRepository) AdminQuestionService {
	return &adminQuestionService{repo: repo}
}

func (s *adminQuestionService) CreateQuestion(ctx context.Context, req dto.TechnicalQuestionCreateDTO) (*dto.AdminQuestionResponse, error) {
	if err := validateQuestionCreate(req); err != nil {
		return nil, apperror.Wrap(apperror.KindValidation, "Invalid question", err)
	}

	question := model.TechnicalQuestion{
		QuestionText:    strings.TrimSpace(req.QuestionText),
		QuestionType:    req.QuestionType,
		TechStack:       strings.TrimSpace(req.TechStack),
		DifficultyLevel: req.DifficultyLevel,
		Topic:           strings.TrimSpace(req.Topic),
		IsPremium:       req.IsPremium,
	}
	if req.QuestionType == model.QuestionTypeMCQ {
		for _, o := range req.MCQOptions {
			question.MCQOptions = append(question.MCQOptions, model.MCQOption{
				OptionLabel: o.OptionLabel,
				OptionText:  o.OptionText,
				IsCorrect:   o.IsCorrect,
			})
		}
	} else if req.ExpectedAnswer != nil {
		question.ExpectedAnswer = &model.ExpectedAnswer{
			SampleAnswer:    req.ExpectedAnswer.SampleAnswer,
			KeyPoints:       req.ExpectedAnswer.KeyPoints,
			ScoringCriteria: req.ExpectedAnswer.ScoringCriteria,
		}
	}

	if err := s.repo.Create(ctx, &question); err != nil {
		log.Error().Err(err).Msg("Failed to create technical question in database")
		return nil, dbError(err, "Question not found")
	}
	log.Info().Uint("question_id", question.ID).Str("tech_stack", question.TechStack).Msg("Technical question created")

	created, err := s.repo.FindByIDWithDetails(ctx, question.ID)
	if err != nil {
		log.Error().Err(err).Uint("question_id", question.ID).Msg("Failed to reload created question, answering from input")
		created = &question
	}

	resp := &dto.AdminQuestionResponse{QuestionDetailsResponse: *questionDetails(created)}
	for _, o := range created.MCQOptions {
		if o.IsCorrect {
			resp.CorrectOptionLabel = o.OptionLabel
		}
	}
	return resp, nil
}

func validateQuestionCreate(req dto.TechnicalQuestionCreateDTO) error {
	if strings.TrimSpace(req.QuestionText) == "" {
		return fmt.Errorf("question_text must not be blank")
	}
	if req.QuestionType != model.QuestionTypeMCQ {
		if len(req.MCQOptions) > 0 {
			return fmt.Errorf("only mcq questions can have options")
		}
		return nil
	}

	if len(req.MCQOptions) < 2 || len(req.MCQOptions) > 4 {
		return fmt.Errorf("an mcq question must have between 2 and 4 options, received %d", len(req.MCQOptions))
	}
	if req.ExpectedAnswer != nil {
		return fmt.Errorf("mcq questions do not take an expected answer")
	}
	labels := make(map[string]bool)
	correct := 0
	for _, o := range req.MCQOptions {
		switch o.OptionLabel {
		case "A", "B", "C", "D":
		default:
			return fmt.Errorf("option label must be one of A-D, got %q", o.OptionLabel)
		}
		if labels[o.OptionLabel] {
			return fmt.Errorf("duplicate option label %s", o.OptionLabel)
		}
		labels[o.OptionLabel] = true
		if strings.TrimSpace(o.OptionText) == "" {
			return fmt.Errorf("option %s has no text", o.OptionLabel)
		}
		if o.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		return fmt.Errorf("an mcq question must have exactly one correct option, found %d", correct)
	}
	return nil
}
