package model

import (
	"time"

	"github.com/google/uuid"
)

// Timestamps 通用的创建/更新时间，主键由各模型自行声明（JSON 字段名不同）
type Timestamps struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func GenerateUUID() string {
	return uuid.New().String()
}
