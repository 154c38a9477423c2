package repository

import (
	"context"

	"quintet_backend/internal/model"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

func (r *EnrollmentRepository) WithTx(tx *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: tx}
}

func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *model.Enrollment) error {
	return r.DB.WithContext(ctx).Create(enrollment).Error
}

func (r *EnrollmentRepository) Find(ctx context.Context, studentID, courseID uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.DB.WithContext(ctx).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		First(&enrollment).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *EnrollmentRepository) Exists(ctx context.Context, studentID, courseID uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Enrollment{}).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Count(&count).Error
	return count > 0, err
}

// Delete 返回删除的行数，0 表示该选课不存在
func (r *EnrollmentRepository) Delete(ctx context.Context, studentID, courseID uint) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Delete(&model.Enrollment{})
	return res.RowsAffected, res.Error
}

// UpdateScore 覆盖分数；调用方需先确认记录存在（MySQL 在值未变化时 RowsAffected 为 0）
func (r *EnrollmentRepository) UpdateScore(ctx context.Context, studentID, courseID uint, score float64) error {
	return r.DB.WithContext(ctx).Model(&model.Enrollment{}).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Update("evaluation_score", score).Error
}

// ListByStudent 学生的选课记录连同课程、大学、讲师名称
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, studentID uint) ([]model.StudentEnrollment, error) {
	rows := []model.StudentEnrollment{}
	err := r.DB.WithContext(ctx).
		Table("enrollments e").
		Select(`e.student_id, e.course_id, c.name AS course_name, c.program_type, c.duration,
			u.name AS university_name, COALESCE(i.name, ?) AS instructor_name, e.evaluation_score`, model.UnassignedInstructor).
		Joins("JOIN courses c ON c.id = e.course_id").
		Joins("LEFT JOIN universities u ON u.id = c.university_id").
		Joins("LEFT JOIN instructors i ON i.id = c.instructor_id").
		Where("e.student_id = ?", studentID).
		Order("e.course_id").
		Scan(&rows).Error
	return rows, err
}

// Roster 课程的选课学生
func (r *EnrollmentRepository) Roster(ctx context.Context, courseID uint) ([]model.RosterEntry, error) {
	rows := []model.RosterEntry{}
	err := r.DB.WithContext(ctx).
		Table("enrollments e").
		Select("s.id AS student_id, u.email, s.age, s.skill_level, s.category, s.country, e.evaluation_score").
		Joins("JOIN students s ON s.id = e.student_id").
		Joins("JOIN users u ON u.id = s.user_id").
		Where("e.course_id = ?", courseID).
		Order("s.id").
		Scan(&rows).Error
	return rows, err
}
