package model

import "gorm.io/datatypes"

const (
	ContentTypeVideo    = "video"
	ContentTypeDocument = "document"
	ContentTypeLink     = "link"
	ContentTypeQuiz     = "quiz"
)

// swagger:model Content
type Content struct {
	ID       uint           `gorm:"primaryKey;autoIncrement" json:"content_id"`
	CourseID uint           `gorm:"not null;index" json:"course_id"`
	Type     string         `gorm:"size:50;not null;index" json:"type"`
	Title    string         `gorm:"size:200" json:"title,omitempty"`
	URL      string         `gorm:"column:content_url;size:500;not null" json:"content_url"`
	Metadata datatypes.JSON `json:"metadata,omitempty"` // 视频时长、文件大小等
	Timestamps

	Course *Course `gorm:"foreignKey:CourseID" json:"-"`
}

func (Content) TableName() string {
	return "contents"
}
