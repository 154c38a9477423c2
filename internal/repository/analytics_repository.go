package repository

import (
	"context"

	"quintet_backend/internal/model"

	"gorm.io/gorm"
)

// TopCoursesLimit 选课人数排行的条数
const TopCoursesLimit = 5

// AnalyticsRepository 只读的统计查询
type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

// EntityTotals 各实体的总数
type EntityTotals struct {
	Students     int64
	Instructors  int64
	Courses      int64
	Enrollments  int64
	Universities int64
	Contents     int64
}

func (r *AnalyticsRepository) Totals(ctx context.Context) (*EntityTotals, error) {
	db := r.DB.WithContext(ctx)
	totals := &EntityTotals{}
	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&model.Student{}, &totals.Students},
		{&model.Instructor{}, &totals.Instructors},
		{&model.Course{}, &totals.Courses},
		{&model.Enrollment{}, &totals.Enrollments},
		{&model.University{}, &totals.Universities},
		{&model.Content{}, &totals.Contents},
	}
	for _, c := range counts {
		if err := db.Model(c.model).Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return totals, nil
}

// Scores 全部选课的分数
func (r *AnalyticsRepository) Scores(ctx context.Context) ([]float64, error) {
	scores := []float64{}
	err := r.DB.WithContext(ctx).Model(&model.Enrollment{}).Pluck("evaluation_score", &scores).Error
	return scores, err
}

func (r *AnalyticsRepository) StudentsPerCountry(ctx context.Context) ([]model.CountryStudentCount, error) {
	rows := []model.CountryStudentCount{}
	err := r.DB.WithContext(ctx).Model(&model.Student{}).
		Select("country, COUNT(id) AS student_count").
		Group("country").
		Order("country").
		Scan(&rows).Error
	return rows, err
}

func (r *AnalyticsRepository) StudentsPerSkillLevel(ctx context.Context) ([]model.SkillLevelStudentCount, error) {
	rows := []model.SkillLevelStudentCount{}
	err := r.DB.WithContext(ctx).Model(&model.Student{}).
		Select("skill_level, COUNT(id) AS student_count").
		Group("skill_level").
		Order("skill_level").
		Scan(&rows).Error
	return rows, err
}

func (r *AnalyticsRepository) StudentsPerCategory(ctx context.Context) ([]model.CategoryStudentCount, error) {
	rows := []model.CategoryStudentCount{}
	err := r.DB.WithContext(ctx).Model(&model.Student{}).
		Select("category, COUNT(id) AS student_count").
		Group("category").
		Order("category").
		Scan(&rows).Error
	return rows, err
}

// CoursesPerUniversity 只包含至少有一门课程的大学
func (r *AnalyticsRepository) CoursesPerUniversity(ctx context.Context) ([]model.UniversityCourseCount, error) {
	rows := []model.UniversityCourseCount{}
	err := r.DB.WithContext(ctx).
		Table("universities u").
		Select("u.name AS university, COUNT(c.id) AS course_count").
		Joins("JOIN courses c ON c.university_id = u.id").
		Group("u.name").
		Order("u.name").
		Scan(&rows).Error
	return rows, err
}

// ProgramTypeStats 每种项目类型的课程数和该类型下所有选课的平均分
func (r *AnalyticsRepository) ProgramTypeStats(ctx context.Context) ([]model.ProgramTypeStat, error) {
	rows := []model.ProgramTypeStat{}
	err := r.DB.WithContext(ctx).
		Table("courses c").
		Select(`c.program_type,
			COUNT(DISTINCT c.id) AS course_count,
			COALESCE(AVG(e.evaluation_score), 0) AS average_score`).
		Joins("LEFT JOIN enrollments e ON e.course_id = c.id").
		Group("c.program_type").
		Order("c.program_type").
		Scan(&rows).Error
	return rows, err
}

// CourseSummaries 一次查询得到每门课程的选课与分数统计，按课程 id 排序
func (r *AnalyticsRepository) CourseSummaries(ctx context.Context, passThreshold float64) ([]model.CourseSummary, error) {
	rows := []model.CourseSummary{}
	err := r.DB.WithContext(ctx).
		Table("courses c").
		Select(`c.id AS course_id, c.name AS course_name, c.program_type, c.duration,
			COALESCE(i.name, ?) AS instructor_name,
			u.name AS university_name,
			COUNT(e.student_id) AS enrollment_count,
			COALESCE(AVG(e.evaluation_score), 0) AS average_score,
			COALESCE(MAX(e.evaluation_score), 0) AS max_score,
			COALESCE(MIN(e.evaluation_score), 0) AS min_score,
			COALESCE(SUM(CASE WHEN e.evaluation_score >= ? THEN 1 ELSE 0 END), 0) AS pass_count,
			COALESCE(SUM(CASE WHEN e.evaluation_score < ? THEN 1 ELSE 0 END), 0) AS fail_count,
			(SELECT COUNT(*) FROM contents ct WHERE ct.course_id = c.id) AS content_count`,
			model.UnassignedInstructor, passThreshold, passThreshold).
		Joins("LEFT JOIN instructors i ON i.id = c.instructor_id").
		Joins("LEFT JOIN universities u ON u.id = c.university_id").
		Joins("LEFT JOIN enrollments e ON e.course_id = c.id").
		Group("c.id, c.name, c.program_type, c.duration, i.name, u.name").
		Order("c.id").
		Scan(&rows).Error
	return rows, err
}

// TopCoursesByEnrollment 只统计有选课的课程；人数相同按课程 id 升序
func (r *AnalyticsRepository) TopCoursesByEnrollment(ctx context.Context, limit int) ([]model.CourseEnrollmentCount, error) {
	rows := []model.CourseEnrollmentCount{}
	err := r.DB.WithContext(ctx).
		Table("courses c").
		Select("c.id AS course_id, c.name AS course_name, COUNT(e.student_id) AS enrollment_count").
		Joins("JOIN enrollments e ON e.course_id = c.id").
		Group("c.id, c.name").
		Order("enrollment_count DESC, c.id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *AnalyticsRepository) SkillLevelsByCourse(ctx context.Context, courseID uint) (model.SkillLevelBreakdown, error) {
	var rows []model.SkillLevelStudentCount
	err := r.DB.WithContext(ctx).
		Table("enrollments e").
		Select("s.skill_level, COUNT(s.id) AS student_count").
		Joins("JOIN students s ON s.id = e.student_id").
		Where("e.course_id = ?", courseID).
		Group("s.skill_level").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	breakdown := make(model.SkillLevelBreakdown, len(rows))
	for _, row := range rows {
		breakdown[row.SkillLevel] = row.StudentCount
	}
	return breakdown, nil
}
