package service

import (
	"testing"

	"quintet_backend/internal/config"
	"quintet_backend/internal/repository"
	"quintet_backend/internal/testutil"

	"gorm.io/gorm"
)

type testEnv struct {
	db         *gorm.DB
	cfg        *config.Config
	auth       *AuthService
	users      *UserService
	courses    *CourseService
	catalog    *CatalogService
	enrollment *EnrollmentService
	grading    *GradingService
	analytics  *AnalyticsService
	blacklist  *MemoryTokenBlacklist
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)
	cfg := testutil.TestConfig()

	userRepo := repository.NewUserRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	instructorRepo := repository.NewInstructorRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	contentRepo := repository.NewContentRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)

	blacklist := NewMemoryTokenBlacklist()
	return &testEnv{
		db:         db,
		cfg:        cfg,
		auth:       NewAuthService(userRepo, blacklist, cfg),
		users:      NewUserService(userRepo, studentRepo, instructorRepo),
		courses:    NewCourseService(courseRepo, catalogRepo, instructorRepo),
		catalog:    NewCatalogService(catalogRepo),
		enrollment: NewEnrollmentService(db, studentRepo, instructorRepo, courseRepo, enrollmentRepo, contentRepo, repository.NewCascadeRepository(db), NewStorageService(&cfg.Storage)),
		grading:    NewGradingService(db, enrollmentRepo, courseRepo, cfg.Grading),
		analytics:  NewAnalyticsService(repository.NewAnalyticsRepository(db), courseRepo, studentRepo, enrollmentRepo, contentRepo),
		blacklist:  blacklist,
	}
}
