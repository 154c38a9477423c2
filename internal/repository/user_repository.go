package repository

import (
	"context"

	"quintet_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) WithTx(tx *gorm.DB) *UserRepository {
	return &UserRepository{DB: tx}
}

// Create 同时写入挂在 User 上的 Student / Instructor 档案
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).
		Preload("Student").
		Preload("Instructor").
		First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// RoleOf 只查询账号当前角色，账号不存在时返回 gorm.ErrRecordNotFound
func (r *UserRepository) RoleOf(ctx context.Context, id uint) (model.UserRole, error) {
	var user model.User
	err := r.DB.WithContext(ctx).Select("id", "role").Take(&user, id).Error
	return user.Role, err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).
		Preload("Student").
		Preload("Instructor").
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// List role 为空时返回全部账号
func (r *UserRepository) List(ctx context.Context, role model.UserRole) ([]model.User, error) {
	var users []model.User
	q := r.DB.WithContext(ctx).Order("id")
	if role != "" {
		q = q.Where("role = ?", role)
	}
	err := q.Find(&users).Error
	return users, err
}

func (r *UserRepository) CountByRole(ctx context.Context, role model.UserRole) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uint, digest string) error {
	return r.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("password", digest).Error
}
