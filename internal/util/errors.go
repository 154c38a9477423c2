package util

import (
	"errors"

	"quintet_backend/internal/model"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrStudentNotFound     = errors.New("student not found")
	ErrInstructorNotFound  = errors.New("instructor not found")
	ErrCourseNotFound      = errors.New("course not found")
	ErrUniversityNotFound  = errors.New("university not found")
	ErrTopicNotFound       = errors.New("topic not found")
	ErrTextbookNotFound    = errors.New("textbook not found")
	ErrEnrollmentNotFound  = errors.New("enrollment not found")
	ErrContentNotFound     = errors.New("content not found")
	ErrAlreadyEnrolled     = errors.New("student is already enrolled in this course")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrAlreadyLinked       = errors.New("association already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrRoleMismatch        = errors.New("account is not registered for this role")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrTokenRevoked        = errors.New("token has been revoked")
	ErrInvalidScore        = errors.New("score must be a finite number")
	ErrInvalidFileType     = errors.New("invalid file type")
	ErrInvalidContentInput = errors.New("content requires either a url or a file")
)

var notFoundErrors = []error{
	ErrUserNotFound,
	ErrStudentNotFound,
	ErrInstructorNotFound,
	ErrCourseNotFound,
	ErrUniversityNotFound,
	ErrTopicNotFound,
	ErrTextbookNotFound,
	ErrEnrollmentNotFound,
	ErrContentNotFound,
}

var conflictErrors = []error{
	ErrAlreadyEnrolled,
	ErrEmailRegistered,
	ErrAlreadyLinked,
}

var validationErrors = []error{
	ErrInvalidScore,
	ErrInvalidFileType,
	ErrInvalidContentInput,
	model.ErrProfileMismatch,
}

func isAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

// IsNotFound 引用的实体不存在
func IsNotFound(err error) bool {
	return isAny(err, notFoundErrors)
}

// IsConflict 违反唯一性等不变量
func IsConflict(err error) bool {
	return isAny(err, conflictErrors)
}

func IsValidation(err error) bool {
	return isAny(err, validationErrors)
}
