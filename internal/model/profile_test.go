package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserProfileConstructors(t *testing.T) {
	student, err := NewStudentUser("li@example.com", "digest", &Student{SkillLevel: "Beginner"})
	require.NoError(t, err)
	assert.Equal(t, RoleStudent, student.Role)
	assert.Equal(t, RoleStudent, student.Profile().ProfileRole())

	instructor, err := NewInstructorUser("alice@example.com", "digest", &Instructor{Name: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, RoleInstructor, instructor.Profile().ProfileRole())

	analyst, err := NewStaffUser("ana@example.com", "digest", RoleAnalyst)
	require.NoError(t, err)
	assert.Nil(t, analyst.Profile())

	_, err = NewStudentUser("x@example.com", "digest", nil)
	assert.ErrorIs(t, err, ErrProfileMismatch)
	_, err = NewInstructorUser("x@example.com", "digest", nil)
	assert.ErrorIs(t, err, ErrProfileMismatch)
	_, err = NewStaffUser("x@example.com", "digest", RoleStudent)
	assert.ErrorIs(t, err, ErrProfileMismatch)
}

func TestUserValidateProfile(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr bool
	}{
		{"student with student profile", User{Role: RoleStudent, Student: &Student{}}, false},
		{"instructor with instructor profile", User{Role: RoleInstructor, Instructor: &Instructor{}}, false},
		{"admin without profile", User{Role: RoleAdmin}, false},
		{"unknown role", User{Role: "guest"}, true},
		{"both profiles", User{Role: RoleStudent, Student: &Student{}, Instructor: &Instructor{}}, true},
		{"student with instructor profile", User{Role: RoleStudent, Instructor: &Instructor{}}, true},
		{"instructor with student profile", User{Role: RoleInstructor, Student: &Student{}}, true},
		{"analyst with profile", User{Role: RoleAnalyst, Student: &Student{}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.validateProfile()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrProfileMismatch)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("analyst")
	require.NoError(t, err)
	assert.Equal(t, RoleAnalyst, r)

	_, err = ParseRole("superuser")
	assert.Error(t, err)
}

func TestCourseTaughtBy(t *testing.T) {
	id := uint(4)
	course := Course{InstructorID: &id}
	assert.True(t, course.TaughtBy(4))
	assert.False(t, course.TaughtBy(5))
	assert.False(t, (&Course{}).TaughtBy(4))
}
