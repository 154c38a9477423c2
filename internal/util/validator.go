package util

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"quintet_backend/internal/model"
)

// RegisterValidators 注册自定义的 binding 规则，需在路由初始化前调用
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("skill_level", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		if value == "" {
			return true
		}
		for _, level := range model.SkillLevels {
			if level == value {
				return true
			}
		}
		return false
	})
}
