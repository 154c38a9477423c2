package repository

import (
	"context"

	"quintet_backend/internal/model"

	"gorm.io/gorm"
)

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: db}
}

func (r *StudentRepository) WithTx(tx *gorm.DB) *StudentRepository {
	return &StudentRepository{DB: tx}
}

func (r *StudentRepository) FindByID(ctx context.Context, id uint) (*model.Student, error) {
	var student model.Student
	if err := r.DB.WithContext(ctx).First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepository) FindByUserID(ctx context.Context, userID uint) (*model.Student, error) {
	var student model.Student
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&student).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepository) profileQuery(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Table("students s").
		Select("s.id AS student_id, s.user_id, u.email, s.age, s.skill_level, s.category, s.country").
		Joins("JOIN users u ON u.id = s.user_id")
}

func (r *StudentRepository) Profile(ctx context.Context, id uint) (*model.StudentProfile, error) {
	var profiles []model.StudentProfile
	if err := r.profileQuery(ctx).Where("s.id = ?", id).Scan(&profiles).Error; err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &profiles[0], nil
}

func (r *StudentRepository) List(ctx context.Context) ([]model.StudentProfile, error) {
	profiles := []model.StudentProfile{}
	err := r.profileQuery(ctx).Order("s.id").Scan(&profiles).Error
	return profiles, err
}

// UpdateProfile 只更新档案字段，零值字段不覆盖
func (r *StudentRepository) UpdateProfile(ctx context.Context, id uint, updates model.Student) error {
	return r.DB.WithContext(ctx).Model(&model.Student{ID: id}).Updates(updates).Error
}
