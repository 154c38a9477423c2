package repository

import (
	"context"

	"quintet_backend/internal/model"

	"gorm.io/gorm"
)

// CatalogRepository 大学、主题、教材这几张参考表
type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

func (r *CatalogRepository) CreateUniversity(ctx context.Context, u *model.University) error {
	return r.DB.WithContext(ctx).Create(u).Error
}

func (r *CatalogRepository) FindUniversity(ctx context.Context, id uint) (*model.University, error) {
	var u model.University
	if err := r.DB.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *CatalogRepository) ListUniversities(ctx context.Context) ([]model.University, error) {
	universities := []model.University{}
	err := r.DB.WithContext(ctx).Order("id").Find(&universities).Error
	return universities, err
}

func (r *CatalogRepository) CreateTopic(ctx context.Context, t *model.Topic) error {
	return r.DB.WithContext(ctx).Create(t).Error
}

func (r *CatalogRepository) FindTopic(ctx context.Context, id uint) (*model.Topic, error) {
	var t model.Topic
	if err := r.DB.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *CatalogRepository) ListTopics(ctx context.Context) ([]model.Topic, error) {
	topics := []model.Topic{}
	err := r.DB.WithContext(ctx).Order("id").Find(&topics).Error
	return topics, err
}

func (r *CatalogRepository) CreateTextbook(ctx context.Context, t *model.Textbook) error {
	return r.DB.WithContext(ctx).Create(t).Error
}

func (r *CatalogRepository) FindTextbook(ctx context.Context, id uint) (*model.Textbook, error) {
	var t model.Textbook
	if err := r.DB.WithContext(ctx).First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *CatalogRepository) ListTextbooks(ctx context.Context) ([]model.Textbook, error) {
	textbooks := []model.Textbook{}
	err := r.DB.WithContext(ctx).Order("id").Find(&textbooks).Error
	return textbooks, err
}
