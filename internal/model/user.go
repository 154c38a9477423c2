package model

import (
	"fmt"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleStudent    UserRole = "student"
	RoleInstructor UserRole = "instructor"
	RoleAnalyst    UserRole = "analyst"
	RoleAdmin      UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAnalyst, RoleAdmin:
		return true
	}
	return false
}

func ParseRole(s string) (UserRole, error) {
	r := UserRole(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// swagger:model User
type User struct {
	ID       uint     `gorm:"primaryKey;autoIncrement" json:"user_id"`
	Email    string   `gorm:"size:255;uniqueIndex;not null" json:"email_id"`
	Password string   `gorm:"size:255;not null" json:"-"`
	Role     UserRole `gorm:"size:20;not null;index" json:"role"`
	Timestamps

	// 同一时间最多只会加载其中一个，见 Profile
	Student    *Student    `gorm:"foreignKey:UserID" json:"-"`
	Instructor *Instructor `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate 保证角色与档案一致：学生只能带 Student，讲师只能带 Instructor，其余角色不带档案
func (u *User) BeforeCreate(tx *gorm.DB) error {
	return u.validateProfile()
}

func (u *User) validateProfile() error {
	if !u.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrProfileMismatch, u.Role)
	}
	if u.Student != nil && u.Instructor != nil {
		return fmt.Errorf("%w: user carries both student and instructor profiles", ErrProfileMismatch)
	}
	switch u.Role {
	case RoleStudent:
		if u.Instructor != nil {
			return fmt.Errorf("%w: student user with instructor profile", ErrProfileMismatch)
		}
	case RoleInstructor:
		if u.Student != nil {
			return fmt.Errorf("%w: instructor user with student profile", ErrProfileMismatch)
		}
	default:
		if u.Student != nil || u.Instructor != nil {
			return fmt.Errorf("%w: %s user cannot own a profile", ErrProfileMismatch, u.Role)
		}
	}
	return nil
}
