package model

import (
	"errors"
	"fmt"
)

var ErrProfileMismatch = errors.New("role and profile do not match")

// Profile 是挂在 User 上的角色档案：*Student、*Instructor 或 nil（分析师/管理员）
type Profile interface {
	ProfileRole() UserRole
}

func (*Student) ProfileRole() UserRole    { return RoleStudent }
func (*Instructor) ProfileRole() UserRole { return RoleInstructor }

// Profile 返回已加载的档案，未 Preload 时为 nil
func (u *User) Profile() Profile {
	switch {
	case u.Student != nil:
		return u.Student
	case u.Instructor != nil:
		return u.Instructor
	}
	return nil
}

func NewStudentUser(email, digest string, student *Student) (*User, error) {
	if student == nil {
		return nil, fmt.Errorf("%w: student user requires a student profile", ErrProfileMismatch)
	}
	return &User{Email: email, Password: digest, Role: RoleStudent, Student: student}, nil
}

func NewInstructorUser(email, digest string, instructor *Instructor) (*User, error) {
	if instructor == nil {
		return nil, fmt.Errorf("%w: instructor user requires an instructor profile", ErrProfileMismatch)
	}
	return &User{Email: email, Password: digest, Role: RoleInstructor, Instructor: instructor}, nil
}

// NewStaffUser 创建没有档案的账号（analyst / admin）
func NewStaffUser(email, digest string, role UserRole) (*User, error) {
	if role != RoleAnalyst && role != RoleAdmin {
		return nil, fmt.Errorf("%w: %q is not a staff role", ErrProfileMismatch, role)
	}
	return &User{Email: email, Password: digest, Role: role}, nil
}
