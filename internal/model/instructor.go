package model

// swagger:model Instructor
type Instructor struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"instructor_id"`
	UserID    uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	Name      string `gorm:"size:100;not null" json:"name"`
	Expertise string `gorm:"size:200" json:"expertise"`
	Timestamps
}

func (Instructor) TableName() string {
	return "instructors"
}

type InstructorProfile struct {
	InstructorID uint   `json:"instructor_id"`
	UserID       uint   `json:"user_id"`
	Email        string `json:"email_id"`
	Name         string `json:"name"`
	Expertise    string `json:"expertise"`
}
