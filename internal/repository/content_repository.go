package repository

import (
	"context"

	"quintet_backend/internal/model"

	"gorm.io/gorm"
)

type ContentRepository struct {
	DB *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{DB: db}
}

func (r *ContentRepository) WithTx(tx *gorm.DB) *ContentRepository {
	return &ContentRepository{DB: tx}
}

func (r *ContentRepository) Create(ctx context.Context, content *model.Content) error {
	return r.DB.WithContext(ctx).Create(content).Error
}

func (r *ContentRepository) FindByID(ctx context.Context, id uint) (*model.Content, error) {
	var content model.Content
	if err := r.DB.WithContext(ctx).First(&content, id).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

func (r *ContentRepository) ListByCourse(ctx context.Context, courseID uint) ([]model.Content, error) {
	contents := []model.Content{}
	err := r.DB.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("type, id").
		Find(&contents).Error
	return contents, err
}

func (r *ContentRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&model.Content{}, id).Error
}
