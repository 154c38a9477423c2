package model

import "time"

// Enrollment 以 (student_id, course_id) 为联合主键，同一学生同一课程最多一条
//
// swagger:model Enrollment
type Enrollment struct {
	StudentID       uint      `gorm:"primaryKey;autoIncrement:false" json:"student_id"`
	CourseID        uint      `gorm:"primaryKey;autoIncrement:false;index" json:"course_id"`
	EvaluationScore float64   `gorm:"not null;default:0" json:"evaluation_score"`
	CreatedAt       time.Time `json:"enrolled_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Student *Student `gorm:"foreignKey:StudentID" json:"-"`
	Course  *Course  `gorm:"foreignKey:CourseID" json:"-"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

// StudentEnrollment 学生视角的选课记录
type StudentEnrollment struct {
	StudentID       uint    `json:"student_id"`
	CourseID        uint    `json:"course_id"`
	CourseName      string  `json:"course_name"`
	ProgramType     string  `json:"program_type"`
	Duration        string  `json:"duration"`
	UniversityName  *string `json:"university_name"`
	InstructorName  string  `json:"instructor_name"`
	EvaluationScore float64 `json:"evaluation_score"`
}

// RosterEntry 课程视角的选课学生
type RosterEntry struct {
	StudentID       uint    `json:"student_id"`
	Email           string  `json:"email_id"`
	Age             int     `json:"age"`
	SkillLevel      string  `json:"skill_level"`
	Category        string  `json:"category"`
	Country         string  `json:"country"`
	EvaluationScore float64 `json:"evaluation_score"`
}
