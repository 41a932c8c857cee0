package repository

import (
	"context"

	"github.com/lshigami/intervue/internal/model"
	"gorm.io/gorm"
)

type ResumeRepository interface {
	Create(ctx context.Context, resume *model.Resume) error
	FindByID(ctx context.Context, id string) (*model.Resume, error)
	FindAll(ctx context.Context) ([]model.Resume, error)
	CreateQuestions(ctx context.Context, questions []model.ResumeQuestion) error
	FindQuestions(ctx context.Context, resumeID string) ([]model.ResumeQuestion, error)
}

type resumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}

func (r *resumeRepository) Create(ctx context.Context, resume *model.Resume) error {
	return r.db.WithContext(ctx).Create(resume).Error
}

func (r *resumeRepository) FindByID(ctx context.Context, id string) (*model.Resume, error) {
	var resume model.Resume
	if err := r.db.WithContext(ctx).First(&resume, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &resume, nil
}

// FindAll returns resumes in upload order.
func (r *resumeRepository) FindAll(ctx context.Context) ([]model.Resume, error) {
	var resumes []model.Resume
	if err := r.db.WithContext(ctx).Order("parsed_at ASC").Order("created_at ASC").Find(&resumes).Error; err != nil {
		return nil, err
	}
	return resumes, nil
}

func (r *resumeRepository) CreateQuestions(ctx context.Context, questions []model.ResumeQuestion) error {
	if len(questions) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&questions).Error
}

func (r *resumeRepository) FindQuestions(ctx context.Context, resumeID string) ([]model.ResumeQuestion, error) {
	var questions []model.ResumeQuestion
	if err := r.db.WithContext(ctx).Where("resume_id = ?", resumeID).Order("position ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
