package util

import (
	"testing"

	"quintet_backend/internal/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillLevelValidator(t *testing.T) {
	require.NoError(t, RegisterValidators())

	req := model.StudentSignupRequest{
		Email:      "li@example.com",
		Password:   "secret1",
		Age:        20,
		SkillLevel: "Intermediate",
		Category:   "Undergraduate",
		Country:    "China",
	}
	assert.NoError(t, binding.Validator.ValidateStruct(&req))

	req.SkillLevel = "Wizard"
	assert.Error(t, binding.Validator.ValidateStruct(&req))

	// 修改档案时可以不传
	assert.NoError(t, binding.Validator.ValidateStruct(&model.UpdateStudentProfileRequest{Country: "Canada"}))
}
