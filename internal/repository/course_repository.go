package repository

import (
	"context"

	"quintet_backend/internal/model"

	"gorm.io/gorm"
)

// CourseFilter 课程列表的可选过滤条件
type CourseFilter struct {
	ProgramType  string
	UniversityID uint
	InstructorID uint
}

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) WithTx(tx *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: tx}
}

func (r *CourseRepository) Create(ctx context.Context, course *model.Course) error {
	return r.DB.WithContext(ctx).Create(course).Error
}

func (r *CourseRepository) FindByID(ctx context.Context, id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.WithContext(ctx).
		Preload("Instructor").
		Preload("University").
		First(&course, id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepository) List(ctx context.Context, filter CourseFilter) ([]model.Course, error) {
	courses := []model.Course{}
	q := r.DB.WithContext(ctx).
		Preload("Instructor").
		Preload("University").
		Order("id")
	if filter.ProgramType != "" {
		q = q.Where("program_type = ?", filter.ProgramType)
	}
	if filter.UniversityID != 0 {
		q = q.Where("university_id = ?", filter.UniversityID)
	}
	if filter.InstructorID != 0 {
		q = q.Where("instructor_id = ?", filter.InstructorID)
	}
	err := q.Find(&courses).Error
	return courses, err
}

// SetInstructor 覆盖课程的讲师，nil 表示解除
func (r *CourseRepository) SetInstructor(ctx context.Context, courseID uint, instructorID *uint) error {
	return r.DB.WithContext(ctx).Model(&model.Course{}).
		Where("id = ?", courseID).
		Update("instructor_id", instructorID).Error
}

func (r *CourseRepository) AttachTopic(ctx context.Context, courseID, topicID uint) error {
	return r.DB.WithContext(ctx).Create(&model.CourseTopic{CourseID: courseID, TopicID: topicID}).Error
}

func (r *CourseRepository) AttachTextbook(ctx context.Context, courseID, textbookID uint) error {
	return r.DB.WithContext(ctx).Create(&model.TextbookUsed{CourseID: courseID, TextbookID: textbookID}).Error
}

func (r *CourseRepository) Topics(ctx context.Context, courseID uint) ([]model.Topic, error) {
	topics := []model.Topic{}
	err := r.DB.WithContext(ctx).
		Joins("JOIN course_topics ct ON ct.topic_id = topics.id").
		Where("ct.course_id = ?", courseID).
		Order("topics.id").
		Find(&topics).Error
	return topics, err
}

func (r *CourseRepository) Textbooks(ctx context.Context, courseID uint) ([]model.Textbook, error) {
	textbooks := []model.Textbook{}
	err := r.DB.WithContext(ctx).
		Joins("JOIN textbooks_used tu ON tu.textbook_id = textbooks.id").
		Where("tu.course_id = ?", courseID).
		Order("textbooks.id").
		Find(&textbooks).Error
	return textbooks, err
}
