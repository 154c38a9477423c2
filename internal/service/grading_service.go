package service

import (
	"context"

	"quintet_backend/internal/config"
	"quintet_backend/internal/model"
	"quintet_backend/internal/repository"
	"quintet_backend/internal/util"
	"quintet_backend/pkg/logger"
	"quintet_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type GradingService struct {
	DB             *gorm.DB
	EnrollmentRepo *repository.EnrollmentRepository
	CourseRepo     *repository.CourseRepository
	Cfg            config.GradingConfig
}

func NewGradingService(db *gorm.DB, enrollmentRepo *repository.EnrollmentRepository, courseRepo *repository.CourseRepository, cfg config.GradingConfig) *GradingService {
	return &GradingService{
		DB:             db,
		EnrollmentRepo: enrollmentRepo,
		CourseRepo:     courseRepo,
		Cfg:            cfg,
	}
}

// Grade 覆盖已有选课的分数，后写入者生效。
// 非有限值直接拒绝，其余值截断到配置的分数范围。
func (s *GradingService) Grade(ctx context.Context, courseID, studentID uint, score float64) (*model.Enrollment, error) {
	clamped, err := util.ClampScore(score, s.Cfg.MinScore, s.Cfg.MaxScore)
	if err != nil {
		return nil, err
	}

	var enrollment *model.Enrollment
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		enrollments := s.EnrollmentRepo.WithTx(tx)

		var err error
		enrollment, err = enrollments.Find(ctx, studentID, courseID)
		if err != nil {
			return notFound(err, util.ErrEnrollmentNotFound)
		}
		if err := enrollments.UpdateScore(ctx, studentID, courseID, clamped); err != nil {
			return err
		}
		enrollment.EvaluationScore = clamped
		return nil
	})
	if err != nil {
		return nil, err
	}

	monitoring.GradesRecorded.Inc()
	fields := []zap.Field{
		zap.Uint("courseID", courseID),
		zap.Uint("studentID", studentID),
		zap.Float64("score", clamped),
	}
	if clamped != score {
		fields = append(fields, zap.Float64("requested", score))
	}
	logger.Log.Info("Evaluation score recorded", fields...)
	return enrollment, nil
}

// GradeAsInstructor 只允许课程当前的讲师评分
func (s *GradingService) GradeAsInstructor(ctx context.Context, instructorID, courseID, studentID uint, score float64) (*model.Enrollment, error) {
	course, err := s.CourseRepo.FindByID(ctx, courseID)
	if err != nil {
		return nil, notFound(err, util.ErrCourseNotFound)
	}
	if !course.TaughtBy(instructorID) {
		return nil, util.ErrPermissionDenied
	}
	return s.Grade(ctx, courseID, studentID, score)
}
