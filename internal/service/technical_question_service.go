package service

import (
	"context"
	"strconv"

	"github.com/jinzhu/copier"
	"github.com/lshigami/intervue/internal/dto"
	"github.com/lshigami/intervue/internal/model"
	"github.com/lshigami/intervue/internal/repository"
	"github.com/rs/zerolog/log"
)

type TechnicalQuestionService interface {
	List(ctx context.Context, query dto.QuestionListQuery) ([]dto.TechnicalQuestionDTO, error)
	TechStacks(ctx context.Context) ([]string, error)
	Details(ctx context.Context, id uint) (*dto.QuestionDetailsResponse, error)
}

type technicalQuestionService struct {
	repo repository.TechnicalQuestionRepository
}

func NewTechnicalQuestionService(repo repository.TechnicalQuestionRepository) TechnicalQuestionService {
	return &technicalQuestionService{repo: repo}
}

func (s *technicalQuestionService) List(ctx context.Context, query dto.QuestionListQuery) ([]dto.TechnicalQuestionDTO, error) {
	filter := repository.QuestionFilter{
		TechStack:      query.TechStack,
		Difficulty:     query.Difficulty,
		Type:           query.Type,
		IncludePremium: query.IncludePremium == nil || *query.IncludePremium,
	}
	questions, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		log.Error().Err(err).Interface("filter", filter).Msg("Failed to list technical questions")
		return nil, dbError(err, "Questions not found")
	}
	resp := []dto.TechnicalQuestionDTO{}
	copier.Copy(&resp, &questions)
	return resp, nil
}

func (s *technicalQuestionService) TechStacks(ctx context.Context) ([]string, error) {
	stacks, err := s.repo.DistinctTechStacks(ctx)
	if err != nil {
		return nil, dbError(err, "Tech stacks not found")
	}
	if stacks == nil {
		stacks = []string{}
	}
	return stacks, nil
}

func (s *technicalQuestionService) Details(ctx context.Context, id uint) (*dto.QuestionDetailsResponse, error) {
	question, err := s.repo.FindByIDWithDetails(ctx, id)
	if err != nil {
		return nil, dbError(err, "Question not found")
	}
	return questionDetails(question), nil
}

func questionDetails(q *model.TechnicalQuestion) *dto.QuestionDetailsResponse {
	resp := &dto.QuestionDetailsResponse{}
	copier.Copy(&resp.Question, q)

	if q.IsMCQ() {
		resp.MCQOptions = make([]dto.MCQOptionDTO, 0, len(q.MCQOptions))
		for _, o := range q.MCQOptions {
			resp.MCQOptions = append(resp.MCQOptions, optionDTO(o))
		}
	} else if q.ExpectedAnswer != nil {
		resp.ExpectedAnswer = &dto.ExpectedAnswerDTO{
			SampleAnswer:    q.ExpectedAnswer.SampleAnswer,
			KeyPoints:       append([]string{}, q.ExpectedAnswer.KeyPoints...),
			ScoringCriteria: q.ExpectedAnswer.ScoringCriteria,
		}
	}
	return resp
}

func optionDTO(o model.MCQOption) dto.MCQOptionDTO {
	return dto.MCQOptionDTO{ID: o.ID, OptionLabel: o.OptionLabel, OptionText: o.OptionText}
}

// CheckMCQ reports whether selectedOptionID is the option flagged correct,
// and returns that option. It does not consult anything but its arguments.
func CheckMCQ(options []model.MCQOption, selectedOptionID string) (bool, *model.MCQOption) {
	var correct *model.MCQOption
	for i := range options {
		if options[i].IsCorrect {
			correct = &options[i]
			break
		}
	}
	if correct == nil {
		return false, nil
	}
	return idString(correct.ID) == selectedOptionID, correct
}

func idString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
