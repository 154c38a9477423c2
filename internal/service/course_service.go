package service

import (
	"context"

	"quintet_backend/internal/model"
	"quintet_backend/internal/repository"
	"quintet_backend/internal/util"
	"quintet_backend/pkg/logger"

	"go.uber.org/zap"
)

type CourseService struct {
	CourseRepo     *repository.CourseRepository
	CatalogRepo    *repository.CatalogRepository
	InstructorRepo *repository.InstructorRepository
}

func NewCourseService(courseRepo *repository.CourseRepository, catalogRepo *repository.CatalogRepository, instructorRepo *repository.InstructorRepository) *CourseService {
	return &CourseService{
		CourseRepo:     courseRepo,
		CatalogRepo:    catalogRepo,
		InstructorRepo: instructorRepo,
	}
}

func (s *CourseService) Create(ctx context.Context, req *model.CreateCourseRequest) (*model.Course, error) {
	if _, err := s.CatalogRepo.FindUniversity(ctx, req.UniversityID); err != nil {
		return nil, notFound(err, util.ErrUniversityNotFound)
	}
	if req.InstructorID != nil {
		if _, err := s.InstructorRepo.FindByID(ctx, *req.InstructorID); err != nil {
			return nil, notFound(err, util.ErrInstructorNotFound)
		}
	}

	course := &model.Course{
		Name:         req.Name,
		Duration:     req.Duration,
		ProgramType:  req.ProgramType,
		UniversityID: req.UniversityID,
		InstructorID: req.InstructorID,
	}
	if err := s.CourseRepo.Create(ctx, course); err != nil {
		return nil, err
	}

	logger.Log.Info("Course created", zap.Uint("courseID", course.ID), zap.String("name", course.Name))
	return s.CourseRepo.FindByID(ctx, course.ID)
}

func (s *CourseService) Get(ctx context.Context, id uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, util.ErrCourseNotFound)
	}
	return course, nil
}

func (s *CourseService) List(ctx context.Context, filter repository.CourseFilter) ([]model.Course, error) {
	return s.CourseRepo.List(ctx, filter)
}

func (s *CourseService) ListByInstructor(ctx context.Context, instructorID uint) ([]model.Course, error) {
	return s.CourseRepo.List(ctx, repository.CourseFilter{InstructorID: instructorID})
}

// EnsureInstructorOwns 课程不存在返回 ErrCourseNotFound，不归该讲师返回 ErrPermissionDenied
func (s *CourseService) EnsureInstructorOwns(ctx context.Context, instructorID, courseID uint) error {
	course, err := s.Get(ctx, courseID)
	if err != nil {
		return err
	}
	if !course.TaughtBy(instructorID) {
		return util.ErrPermissionDenied
	}
	return nil
}

func (s *CourseService) AttachTopic(ctx context.Context, courseID, topicID uint) error {
	if _, err := s.Get(ctx, courseID); err != nil {
		return err
	}
	if _, err := s.CatalogRepo.FindTopic(ctx, topicID); err != nil {
		return notFound(err, util.ErrTopicNotFound)
	}
	if err := s.CourseRepo.AttachTopic(ctx, courseID, topicID); err != nil {
		if isDuplicateKey(err) {
			return util.ErrAlreadyLinked
		}
		return err
	}
	return nil
}

func (s *CourseService) AttachTextbook(ctx context.Context, courseID, textbookID uint) error {
	if _, err := s.Get(ctx, courseID); err != nil {
		return err
	}
	if _, err := s.CatalogRepo.FindTextbook(ctx, textbookID); err != nil {
		return notFound(err, util.ErrTextbookNotFound)
	}
	if err := s.CourseRepo.AttachTextbook(ctx, courseID, textbookID); err != nil {
		if isDuplicateKey(err) {
			return util.ErrAlreadyLinked
		}
		return err
	}
	return nil
}
