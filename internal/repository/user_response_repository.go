package repository

import (
	"context"

	"github.com/lshigami/intervue/internal/model"
	"gorm.io/gorm"
)

type UserResponseRepository interface {
	Create(ctx context.Context, response *model.UserResponse) error
	FindByID(ctx context.Context, id uint) (*model.UserResponse, error)
	FindByUserID(ctx context.Context, userID string) ([]model.UserResponse, error)
	UpdateFeedback(ctx context.Context, id uint, score int, feedback string) error
}

type userResponseRepository struct {
	db *gorm.DB
}

func NewUserResponseRepository(db *gorm.DB) UserResponseRepository {
	return &userResponseRepository{db: db}
}

func (r *userResponseRepository) Create(ctx context.Context, response *model.UserResponse) error {
	return r.db.WithContext(ctx).Omit("Question").Create(response).Error
}

func (r *userResponseRepository) FindByID(ctx context.Context, id uint) (*model.UserResponse, error) {
	var response model.UserResponse
	if err := r.db.WithContext(ctx).Preload("Question").First(&response, id).Error; err != nil {
		return nil, err
	}
	return &response, nil
}

// FindByUserID returns the user's responses, newest first.
func (r *userResponseRepository) FindByUserID(ctx context.Context, userID string) ([]model.UserResponse, error) {
	var responses []model.UserResponse
	err := r.db.WithContext(ctx).
		Preload("Question").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}

func (r *userResponseRepository) UpdateFeedback(ctx context.Context, id uint, score int, feedback string) error {
	result := r.db.WithContext(ctx).Model(&model.UserResponse{}).Where("id = ?", id).
		Updates(map[string]interface{}{"ai_score": score, "ai_feedback": feedback})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
