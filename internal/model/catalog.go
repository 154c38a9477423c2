package model

// swagger:model University
type University struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"university_id"`
	Name    string `gorm:"size:200;not null" json:"name"`
	Country string `gorm:"size:100;not null" json:"country"`
}

func (University) TableName() string {
	return "universities"
}

// swagger:model Topic
type Topic struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"topic_id"`
	Name string `gorm:"column:topic_name;size:200;not null" json:"topic_name"`
}

func (Topic) TableName() string {
	return "topics"
}

// swagger:model Textbook
type Textbook struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"textbook_id"`
	Title  string `gorm:"size:300;not null" json:"title"`
	Author string `gorm:"size:200;not null" json:"author"`
	Link   string `gorm:"size:500" json:"link,omitempty"`
}

func (Textbook) TableName() string {
	return "textbooks"
}

// CourseTopic 课程与主题的关联表
type CourseTopic struct {
	CourseID uint `gorm:"primaryKey;autoIncrement:false" json:"course_id"`
	TopicID  uint `gorm:"primaryKey;autoIncrement:false" json:"topic_id"`

	Course *Course `gorm:"foreignKey:CourseID" json:"-"`
	Topic  *Topic  `gorm:"foreignKey:TopicID" json:"-"`
}

func (CourseTopic) TableName() string {
	return "course_topics"
}

// TextbookUsed 课程与教材的关联表
type TextbookUsed struct {
	CourseID   uint `gorm:"primaryKey;autoIncrement:false" json:"course_id"`
	TextbookID uint `gorm:"primaryKey;autoIncrement:false" json:"textbook_id"`

	Course   *Course   `gorm:"foreignKey:CourseID" json:"-"`
	Textbook *Textbook `gorm:"foreignKey:TextbookID" json:"-"`
}

func (TextbookUsed) TableName() string {
	return "textbooks_used"
}

// AllModels 迁移顺序：被引用的表在前
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&University{},
		&Instructor{},
		&Student{},
		&Topic{},
		&Textbook{},
		&Course{},
		&Enrollment{},
		&Content{},
		&CourseTopic{},
		&TextbookUsed{},
	}
}
