package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"quintet_backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err  error
		want int
	}{
		{ErrCourseNotFound, http.StatusNotFound},
		{fmt.Errorf("lookup: %w", ErrStudentNotFound), http.StatusNotFound},
		{ErrAlreadyEnrolled, http.StatusBadRequest},
		{ErrEmailRegistered, http.StatusBadRequest},
		{ErrInvalidScore, http.StatusBadRequest},
		{model.ErrProfileMismatch, http.StatusBadRequest},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrTokenRevoked, http.StatusUnauthorized},
		{ErrRoleMismatch, http.StatusForbidden},
		{ErrPermissionDenied, http.StatusForbidden},
		{errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			RespondError(c, tt.err)

			assert.Equal(t, tt.want, w.Code)
			var body Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.want, body.Code)
		})
	}
}

func TestErrorClasses(t *testing.T) {
	assert.True(t, IsNotFound(ErrEnrollmentNotFound))
	assert.False(t, IsNotFound(ErrAlreadyEnrolled))
	assert.True(t, IsConflict(fmt.Errorf("enroll: %w", ErrAlreadyEnrolled)))
	assert.False(t, IsConflict(ErrInvalidScore))
	assert.True(t, IsValidation(ErrInvalidContentInput))
}

func TestParamID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		raw     string
		want    uint
		wantErr bool
	}{
		{"12", 12, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Params = gin.Params{{Key: "id", Value: tt.raw}}
			got, err := ParamID(c, "id")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, uint(0), MustParseUint("x"))
}
