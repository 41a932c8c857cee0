package repository

import (
	"context"

	"github.com/lshigami/intervue/internal/model"
	"gorm.io/gorm"
)

// QuestionFilter narrows a listing. Empty fields are ignored.
type QuestionFilter struct {
	TechStack      string
	Difficulty     string
	Type           string
	IncludePremium bool
}

type TechnicalQuestionRepository interface {
	Create(ctx context.Context, question *model.TechnicalQuestion) error
	FindByID(ctx context.Context, id uint) (*model.TechnicalQuestion, error)
	FindByIDWithDetails(ctx context.Context, id uint) (*model.TechnicalQuestion, error)
	FindAll(ctx context.Context, filter QuestionFilter) ([]model.TechnicalQuestion, error)
	DistinctTechStacks(ctx context.Context) ([]string, error)
}

type technicalQuestionRepository struct {
	db *gorm.DB
}

func NewTechnicalQuestionRepository(db *gorm.DB) TechnicalQuestionRepository {
	return &technicalQuestionRepository{db: db}
}

// Create inserts the question together with its options and expected answer.
func (r *technicalQuestionRepository) Create(ctx context.Context, question *model.TechnicalQuestion) error {
	return r.db.WithContext(ctx).Create(question).Error
}

func (r *technicalQuestionRepository) FindByID(ctx context.Context, id uint) (*model.TechnicalQuestion, error) {
	var question model.TechnicalQuestion
	if err := r.db.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *technicalQuestionRepository) FindByIDWithDetails(ctx context.Context, id uint) (*model.TechnicalQuestion, error) {
	var question model.TechnicalQuestion
	err := r.db.WithContext(ctx).
		Preload("MCQOptions", func(db *gorm.DB) *gorm.DB {
			return db.Order("mcq_options.option_label ASC")
		}).
		Preload("ExpectedAnswer").
		First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *technicalQuestionRepository) FindAll(ctx context.Context, filter QuestionFilter) ([]model.TechnicalQuestion, error) {
	query := r.db.WithContext(ctx).Model(&model.TechnicalQuestion{})
	if filter.TechStack != "" {
		query = query.Where("tech_stack = ?", filter.TechStack)
	}
	if filter.Difficulty != "" {
		query = query.Where("difficulty_level = ?", filter.Difficulty)
	}
	if filter.Type != "" {
		query = query.Where("question_type = ?", filter.Type)
	}
	if !filter.IncludePremium {
		query = query.Where("is_premium = ?", false)
	}

	var questions []model.TechnicalQuestion
	if err := query.Order("created_at DESC").Order("id DESC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *technicalQuestionRepository) DistinctTechStacks(ctx context.Context) ([]string, error) {
	var stacks []string
	err := r.db.WithContext(ctx).Model(&model.TechnicalQuestion{}).
		Distinct("tech_stack").
		Order("tech_stack ASC").
		Pluck("tech_stack", &stacks).Error
	if err != nil {
		return nil, err
	}
	return stacks, nil
}
