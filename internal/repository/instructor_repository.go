package repository

import (
	"context"

	"quintet_backend/internal/model"

	"gorm.io/gorm"
)

type InstructorRepository struct {
	DB *gorm.DB
}

func NewInstructorRepository(db *gorm.DB) *InstructorRepository {
	return &InstructorRepository{DB: db}
}

func (r *InstructorRepository) WithTx(tx *gorm.DB) *InstructorRepository {
	return &InstructorRepository{DB: tx}
}

func (r *InstructorRepository) FindByID(ctx context.Context, id uint) (*model.Instructor, error) {
	var instructor model.Instructor
	if err := r.DB.WithContext(ctx).First(&instructor, id).Error; err != nil {
		return nil, err
	}
	return &instructor, nil
}

func (r *InstructorRepository) FindByUserID(ctx context.Context, userID uint) (*model.Instructor, error) {
	var instructor model.Instructor
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&instructor).Error; err != nil {
		return nil, err
	}
	return &instructor, nil
}

func (r *InstructorRepository) profileQuery(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Table("instructors i").
		Select("i.id AS instructor_id, i.user_id, u.email, i.name, i.expertise").
		Joins("JOIN users u ON u.id = i.user_id")
}

func (r *InstructorRepository) Profile(ctx context.Context, id uint) (*model.InstructorProfile, error) {
	var profiles []model.InstructorProfile
	if err := r.profileQuery(ctx).Where("i.id = ?", id).Scan(&profiles).Error; err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &profiles[0], nil
}

func (r *InstructorRepository) List(ctx context.Context) ([]model.InstructorProfile, error) {
	profiles := []model.InstructorProfile{}
	err := r.profileQuery(ctx).Order("i.id").Scan(&profiles).Error
	return profiles, err
}

func (r *InstructorRepository) UpdateProfile(ctx context.Context, id uint, updates model.Instructor) error {
	return r.DB.WithContext(ctx).Model(&model.Instructor{ID: id}).Updates(updates).Error
}
