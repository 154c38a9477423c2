package service

import (
	"context"
	"errors"

	"quintet_backend/internal/model"
	"quintet_backend/internal/repository"
	"quintet_backend/internal/util"
	"quintet_backend/pkg/logger"
	"quintet_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EnrollmentService 选课、退课以及删除父记录时的级联清理。
// 每个写操作都在一个事务内完成。
type EnrollmentService struct {
	DB             *gorm.DB
	StudentRepo    *repository.StudentRepository
	InstructorRepo *repository.InstructorRepository
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
	ContentRepo    *repository.ContentRepository
	CascadeRepo    *repository.CascadeRepository
	// Storage 为 nil 时删除课程不清理已上传的文件
	Storage *StorageService
}

func NewEnrollmentService(
	db *gorm.DB,
	studentRepo *repository.StudentRepository,
	instructorRepo *repository.InstructorRepository,
	courseRepo *repository.CourseRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	contentRepo *repository.ContentRepository,
	cascadeRepo *repository.CascadeRepository,
	storage *StorageService,
) *EnrollmentService {
	return &EnrollmentService{
		DB:             db,
		StudentRepo:    studentRepo,
		InstructorRepo: instructorRepo,
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
		ContentRepo:    contentRepo,
		CascadeRepo:    cascadeRepo,
		Storage:        storage,
	}
}

func enrollmentResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case util.IsConflict(err):
		return "conflict"
	case util.IsNotFound(err):
		return "not_found"
	}
	return "error"
}

// Enroll 新建选课，初始分数为 0
func (s *EnrollmentService) Enroll(ctx context.Context, studentID, courseID uint) (*model.Enrollment, error) {
	enrollment := &model.Enrollment{StudentID: studentID, CourseID: courseID}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.StudentRepo.WithTx(tx).FindByID(ctx, studentID); err != nil {
			return notFound(err, util.ErrStudentNotFound)
		}
		if _, err := s.CourseRepo.WithTx(tx).FindByID(ctx, courseID); err != nil {
			return notFound(err, util.ErrCourseNotFound)
		}

		enrollments := s.EnrollmentRepo.WithTx(tx)
		exists, err := enrollments.Exists(ctx, studentID, courseID)
		if err != nil {
			return err
		}
		if exists {
			return util.ErrAlreadyEnrolled
		}

		// 并发选课时由联合主键兜底
		if err := enrollments.Create(ctx, enrollment); err != nil {
			if isDuplicateKey(err) {
				return util.ErrAlreadyEnrolled
			}
			return err
		}
		return nil
	})

	monitoring.EnrollmentOps.WithLabelValues("enroll", enrollmentResult(err)).Inc()
	if err != nil {
		return nil, err
	}

	logger.Log.Info("Student enrolled",
		zap.Uint("studentID", studentID),
		zap.Uint("courseID", courseID),
	)
	return enrollment, nil
}

// Drop 硬删除选课记录，之后可以重新选同一门课
func (s *EnrollmentService) Drop(ctx context.Context, studentID, courseID uint) error {
	affected, err := s.EnrollmentRepo.Delete(ctx, studentID, courseID)
	if err == nil && affected == 0 {
		err = util.ErrEnrollmentNotFound
	}

	monitoring.EnrollmentOps.WithLabelValues("drop", enrollmentResult(err)).Inc()
	if err != nil {
		return err
	}

	logger.Log.Info("Enrollment dropped",
		zap.Uint("studentID", studentID),
		zap.Uint("courseID", courseID),
	)
	return nil
}

// runCascade 在一个事务内执行删除计划，before 在同一事务内先于计划执行
func (s *EnrollmentService) runCascade(ctx context.Context, plan repository.CascadePlan, id uint, missing error, before func(tx *gorm.DB) error) error {
	var result *repository.CascadeResult
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if before != nil {
			if err := before(tx); err != nil {
				return err
			}
		}
		var err error
		result, err = s.CascadeRepo.WithTx(tx).Execute(ctx, plan, id)
		return notFound(err, missing)
	})
	if err != nil {
		if !errors.Is(err, missing) {
			logger.Log.Error("Cascade delete failed",
				zap.String("plan", plan.Name),
				zap.Uint("id", id),
				zap.Error(err),
			)
		}
		return err
	}

	fields := []zap.Field{zap.String("plan", plan.Name), zap.Uint("id", id)}
	for _, table := range plan.Tables() {
		n := result.Affected[table]
		monitoring.CascadeRows.WithLabelValues(plan.Name, table).Add(float64(n))
		fields = append(fields, zap.Int64(table, n))
	}
	logger.Log.Info("Cascade delete completed", fields...)
	return nil
}

// DeleteCourseCascade 删除课程及其选课、资料、主题和教材关联。
// 事务提交后再删除资料对应的存储对象。
func (s *EnrollmentService) DeleteCourseCascade(ctx context.Context, courseID uint) error {
	var keys []string
	collect := func(tx *gorm.DB) error {
		if s.Storage == nil || s.ContentRepo == nil {
			return nil
		}
		contents, err := s.ContentRepo.WithTx(tx).ListByCourse(ctx, courseID)
		if err != nil {
			return err
		}
		for i := range contents {
			if key := storedObjectKey(&contents[i]); key != "" {
				keys = append(keys, key)
			}
		}
		return nil
	}

	if err := s.runCascade(ctx, repository.CourseDeletionPlan, courseID, util.ErrCourseNotFound, collect); err != nil {
		return err
	}
	if len(keys) > 0 {
		s.Storage.removeObjects(ctx, keys)
		logger.Log.Info("Course uploads removed", zap.Uint("courseID", courseID), zap.Int("objects", len(keys)))
	}
	return nil
}

// DeleteStudentCascade 删除学生的选课、学生档案和所属账号
func (s *EnrollmentService) DeleteStudentCascade(ctx context.Context, studentID uint) error {
	return s.runCascade(ctx, repository.StudentDeletionPlan, studentID, util.ErrStudentNotFound, nil)
}

// DeleteInstructorCascade 讲师负责的课程保留但变为未分配
func (s *EnrollmentService) DeleteInstructorCascade(ctx context.Context, instructorID uint) error {
	return s.runCascade(ctx, repository.InstructorDeletionPlan, instructorID, util.ErrInstructorNotFound, nil)
}

// AssignInstructor 覆盖课程当前的讲师
func (s *EnrollmentService) AssignInstructor(ctx context.Context, courseID, instructorID uint) (*model.Course, error) {
	var course *model.Course
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		courses := s.CourseRepo.WithTx(tx)
		if _, err := courses.FindByID(ctx, courseID); err != nil {
			return notFound(err, util.ErrCourseNotFound)
		}
		if _, err := s.InstructorRepo.WithTx(tx).FindByID(ctx, instructorID); err != nil {
			return notFound(err, util.ErrInstructorNotFound)
		}
		if err := courses.SetInstructor(ctx, courseID, &instructorID); err != nil {
			return err
		}

		var err error
		course, err = courses.FindByID(ctx, courseID)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("Instructor assigned",
		zap.Uint("courseID", courseID),
		zap.Uint("instructorID", instructorID),
	)
	return course, nil
}

func (s *EnrollmentService) ListByStudent(ctx context.Context, studentID uint) ([]model.StudentEnrollment, error) {
	if _, err := s.StudentRepo.FindByID(ctx, studentID); err != nil {
		return nil, notFound(err, util.ErrStudentNotFound)
	}
	return s.EnrollmentRepo.ListByStudent(ctx, studentID)
}

func (s *EnrollmentService) ListByCourse(ctx context.Context, courseID uint) ([]model.RosterEntry, error) {
	if _, err := s.CourseRepo.FindByID(ctx, courseID); err != nil {
		return nil, notFound(err, util.ErrCourseNotFound)
	}
	return s.EnrollmentRepo.Roster(ctx, courseID)
}
