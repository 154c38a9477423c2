// Package testutil 为各包测试提供内存 sqlite 数据库和基础数据
package testutil

import (
	"fmt"
	"testing"
	"time"

	"quintet_backend/internal/config"
	"quintet_backend/internal/model"
	"quintet_backend/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB 每个测试一个独立的内存库，已开启外键并完成建表
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// TestConfig 测试用配置，分数范围 0~100
func TestConfig() *config.Config {
	return &config.Config{
		Server:   config.ServerConfig{Port: "0", Mode: "test"},
		Database: config.DatabaseConfig{Driver: "sqlite"},
		JWT:      config.JWTConfig{Secret: "test-secret-test-secret-test-secret", ExpireTime: time.Hour},
		Storage:  config.StorageConfig{Type: "local"},
		Grading:  config.GradingConfig{MinScore: 0, MaxScore: 100},
	}
}

func CreateUniversity(t *testing.T, db *gorm.DB, name string) *model.University {
	t.Helper()
	u := &model.University{Name: name, Country: "China"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func CreateStudent(t *testing.T, db *gorm.DB, email, skillLevel, country string) *model.Student {
	t.Helper()
	user, err := model.NewStudentUser(email, "digest", &model.Student{
		Age:        20,
		SkillLevel: skillLevel,
		Category:   "Undergraduate",
		Country:    country,
	})
	require.NoError(t, err)
	require.NoError(t, db.Create(user).Error)
	return user.Student
}

func CreateInstructor(t *testing.T, db *gorm.DB, email, name string) *model.Instructor {
	t.Helper()
	user, err := model.NewInstructorUser(email, "digest", &model.Instructor{Name: name})
	require.NoError(t, err)
	require.NoError(t, db.Create(user).Error)
	return user.Instructor
}

// CreateCourse instructor 为 nil 时课程未分配讲师
func CreateCourse(t *testing.T, db *gorm.DB, name string, universityID uint, instructor *model.Instructor) *model.Course {
	t.Helper()
	course := &model.Course{
		Name:         name,
		Duration:     "8 weeks",
		ProgramType:  "Certificate",
		UniversityID: universityID,
	}
	if instructor != nil {
		course.InstructorID = &instructor.ID
	}
	require.NoError(t, db.Create(course).Error)
	return course
}

// Enroll 直接写入选课记录
func Enroll(t *testing.T, db *gorm.DB, studentID, courseID uint, score float64) {
	t.Helper()
	require.NoError(t, db.Create(&model.Enrollment{
		StudentID:       studentID,
		CourseID:        courseID,
		EvaluationScore: score,
	}).Error)
}

// Count 表的行数
func Count(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Count(&n).Error)
	return n
}
