package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"quintet_backend/internal/model"
	"quintet_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIsDuplicateKey(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"translated", gorm.ErrDuplicatedKey, true},
		{"wrapped", fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), true},
		{"untranslated driver text", errors.New("pq: duplicate key value violates unique constraint"), false},
		{"other", errors.New("duplicate work item"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isDuplicateKey(tt.err))
		})
	}
}

func TestIsDuplicateKey_SQLiteConstraint(t *testing.T) {
	db := testutil.NewTestDB(t)
	uni := testutil.CreateUniversity(t, db, "Tsinghua")
	course := testutil.CreateCourse(t, db, "Algorithms", uni.ID, nil)
	student := testutil.CreateStudent(t, db, "s1@example.com", "Beginner", "China")
	testutil.Enroll(t, db, student.ID, course.ID, 0)

	err := db.WithContext(context.Background()).Create(&model.Enrollment{StudentID: student.ID, CourseID: course.ID}).Error
	require.Error(t, err)
	assert.True(t, isDuplicateKey(err), err.Error())
}
