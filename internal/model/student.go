package model

// SkillLevels 学生技能等级的合法取值
var SkillLevels = []string{"Beginner", "Intermediate", "Advanced"}

// swagger:model Student
type Student struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"student_id"`
	UserID     uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	Age        int    `gorm:"not null" json:"age"`
	SkillLevel string `gorm:"size:50;not null;index" json:"skill_level"`
	Category   string `gorm:"size:100;not null" json:"category"`
	Country    string `gorm:"size:100;not null;index" json:"country"`
	Timestamps
}

func (Student) TableName() string {
	return "students"
}

// StudentProfile 学生档案连同账号邮箱
type StudentProfile struct {
	StudentID  uint   `json:"student_id"`
	UserID     uint   `json:"user_id"`
	Email      string `json:"email_id"`
	Age        int    `json:"age"`
	SkillLevel string `json:"skill_level"`
	Category   string `json:"category"`
	Country    string `json:"country"`
}
