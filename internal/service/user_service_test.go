package service

import (
	"context"
	"testing"

	"quintet_backend/internal/model"
	"quintet_backend/internal/testutil"
	"quintet_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentProfile(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	student := testutil.CreateStudent(t, env.db, "li@example.com", "Beginner", "China")

	id, err := env.users.StudentIDForUser(ctx, student.UserID)
	require.NoError(t, err)
	assert.Equal(t, student.ID, id)

	profile, err := env.users.UpdateStudentProfile(ctx, student.ID, &model.UpdateStudentProfileRequest{SkillLevel: "Advanced"})
	require.NoError(t, err)
	assert.Equal(t, "Advanced", profile.SkillLevel)
	assert.Equal(t, "China", profile.Country)
	assert.Equal(t, "li@example.com", profile.Email)

	_, err = env.users.StudentProfile(ctx, 999)
	assert.ErrorIs(t, err, util.ErrStudentNotFound)
	_, err = env.users.StudentIDForUser(ctx, 999)
	assert.ErrorIs(t, err, util.ErrStudentNotFound)
}

func TestInstructorProfile(t *testing.T) {
	env := setup(t)
	ctx := context.Background()
	inst := testutil.CreateInstructor(t, env.db, "alice@example.com", "Alice")

	id, err := env.users.InstructorIDForUser(ctx, inst.UserID)
	require.NoError(t, err)
	assert.Equal(t, inst.ID, id)

	profile, err := env.users.UpdateInstructorProfile(ctx, inst.ID, &model.UpdateInstructorProfileRequest{Expertise: "Graphs"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", profile.Name)
	assert.Equal(t, "Graphs", profile.Expertise)

	list, err := env.users.ListInstructors(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = env.users.UpdateInstructorProfile(ctx, 999, &model.UpdateInstructorProfileRequest{Name: "X"})
	assert.ErrorIs(t, err, util.ErrInstructorNotFound)
}

func TestCourseService(t *testing.T) {
	env := setup(t)
	ctx := context.Background()

	uni, err := env.catalog.CreateUniversity(ctx, &model.CreateUniversityRequest{Name: "Tsinghua", Country: "China"})
	require.NoError(t, err)
	inst := testutil.CreateInstructor(t, env.db, "alice@example.com", "Alice")

	course, err := env.courses.Create(ctx, &model.CreateCourseRequest{
		Name:         "Algorithms",
		Duration:     "12 weeks",
		ProgramType:  "Degree",
		UniversityID: uni.ID,
		InstructorID: &inst.ID,
	})
	require.NoError(t, err)
	require.NotNil(t, course.University)
	assert.Equal(t, "Tsinghua", course.University.Name)

	_, err = env.courses.Create(ctx, &model.CreateCourseRequest{Name: "X", Duration: "1", ProgramType: "Degree", UniversityID: 999})
	assert.ErrorIs(t, err, util.ErrUniversityNotFound)
	missing := uint(999)
	_, err = env.courses.Create(ctx, &model.CreateCourseRequest{Name: "X", Duration: "1", ProgramType: "Degree", UniversityID: uni.ID, InstructorID: &missing})
	assert.ErrorIs(t, err, util.ErrInstructorNotFound)

	mine, err := env.courses.ListByInstructor(ctx, inst.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	assert.NoError(t, env.courses.EnsureInstructorOwns(ctx, inst.ID, course.ID))
	assert.ErrorIs(t, env.courses.EnsureInstructorOwns(ctx, inst.ID+1, course.ID), util.ErrPermissionDenied)
	assert.ErrorIs(t, env.courses.EnsureInstructorOwns(ctx, inst.ID, 999), util.ErrCourseNotFound)

	book, err := env.catalog.CreateTextbook(ctx, &model.CreateTextbookRequest{Title: "CLRS", Author: "Cormen"})
	require.NoError(t, err)
	require.NoError(t, env.courses.AttachTextbook(ctx, course.ID, book.ID))
	assert.ErrorIs(t, env.courses.AttachTextbook(ctx, course.ID, book.ID), util.ErrAlreadyLinked)
	assert.ErrorIs(t, env.courses.AttachTextbook(ctx, course.ID, 999), util.ErrTextbookNotFound)
	assert.ErrorIs(t, env.courses.AttachTopic(ctx, course.ID, 999), util.ErrTopicNotFound)
}
