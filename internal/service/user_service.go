package service

import (
	"context"

	"quintet_backend/internal/model"
	"quintet_backend/internal/repository"
	"quintet_backend/internal/util"
)

// UserService 账号与角色档案的查询和修改
type UserService struct {
	UserRepo       *repository.UserRepository
	StudentRepo    *repository.StudentRepository
	InstructorRepo *repository.InstructorRepository
}

func NewUserService(userRepo *repository.UserRepository, studentRepo *repository.StudentRepository, instructorRepo *repository.InstructorRepository) *UserService {
	return &UserService{
		UserRepo:       userRepo,
		StudentRepo:    studentRepo,
		InstructorRepo: instructorRepo,
	}
}

// StudentIDForUser 由令牌中的 user id 找到学生档案 id
func (s *UserService) StudentIDForUser(ctx context.Context, userID uint) (uint, error) {
	student, err := s.StudentRepo.FindByUserID(ctx, userID)
	if err != nil {
		return 0, notFound(err, util.ErrStudentNotFound)
	}
	return student.ID, nil
}

func (s *UserService) InstructorIDForUser(ctx context.Context, userID uint) (uint, error) {
	instructor, err := s.InstructorRepo.FindByUserID(ctx, userID)
	if err != nil {
		return 0, notFound(err, util.ErrInstructorNotFound)
	}
	return instructor.ID, nil
}

func (s *UserService) StudentProfile(ctx context.Context, studentID uint) (*model.StudentProfile, error) {
	profile, err := s.StudentRepo.Profile(ctx, studentID)
	if err != nil {
		return nil, notFound(err, util.ErrStudentNotFound)
	}
	return profile, nil
}

func (s *UserService) UpdateStudentProfile(ctx context.Context, studentID uint, req *model.UpdateStudentProfileRequest) (*model.StudentProfile, error) {
	if _, err := s.StudentRepo.FindByID(ctx, studentID); err != nil {
		return nil, notFound(err, util.ErrStudentNotFound)
	}
	updates := model.Student{
		Age:        req.Age,
		SkillLevel: req.SkillLevel,
		Category:   req.Category,
		Country:    req.Country,
	}
	if err := s.StudentRepo.UpdateProfile(ctx, studentID, updates); err != nil {
		return nil, err
	}
	return s.StudentProfile(ctx, studentID)
}

func (s *UserService) InstructorProfile(ctx context.Context, instructorID uint) (*model.InstructorProfile, error) {
	profile, err := s.InstructorRepo.Profile(ctx, instructorID)
	if err != nil {
		return nil, notFound(err, util.ErrInstructorNotFound)
	}
	return profile, nil
}

func (s *UserService) UpdateInstructorProfile(ctx context.Context, instructorID uint, req *model.UpdateInstructorProfileRequest) (*model.InstructorProfile, error) {
	if _, err := s.InstructorRepo.FindByID(ctx, instructorID); err != nil {
		return nil, notFound(err, util.ErrInstructorNotFound)
	}
	updates := model.Instructor{Name: req.Name, Expertise: req.Expertise}
	if err := s.InstructorRepo.UpdateProfile(ctx, instructorID, updates); err != nil {
		return nil, err
	}
	return s.InstructorProfile(ctx, instructorID)
}

func (s *UserService) ListStudents(ctx context.Context) ([]model.StudentProfile, error) {
	return s.StudentRepo.List(ctx)
}

func (s *UserService) ListInstructors(ctx context.Context) ([]model.InstructorProfile, error) {
	return s.InstructorRepo.List(ctx)
}

func (s *UserService) ListUsers(ctx context.Context, role model.UserRole) ([]model.User, error) {
	return s.UserRepo.List(ctx, role)
}
