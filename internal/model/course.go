package model

// swagger:model Course
type Course struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"course_id"`
	Name         string `gorm:"size:200;not null" json:"course_name"`
	Duration     string `gorm:"size:50;not null" json:"duration"`
	ProgramType  string `gorm:"size:50;not null;index" json:"program_type"`
	InstructorID *uint  `gorm:"index" json:"instructor_id"` // 讲师被删除后置空
	UniversityID uint   `gorm:"not null;index" json:"university_id"`
	Timestamps

	Instructor *Instructor `gorm:"foreignKey:InstructorID" json:"instructor,omitempty"`
	University *University `gorm:"foreignKey:UniversityID" json:"university,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// TaughtBy 判断课程当前是否由该讲师负责
func (c *Course) TaughtBy(instructorID uint) bool {
	return c.InstructorID != nil && *c.InstructorID == instructorID
}

// UnassignedInstructor 讲师被删除或尚未分配时显示的名称
const UnassignedInstructor = "Unassigned"
