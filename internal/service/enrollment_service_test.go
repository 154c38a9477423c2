package service

import (
	"context"
	"sync"
	"testing"

	"quintet_backend/internal/model"
	"quintet_backend/internal/testutil"
	"quintet_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnroll_Lifecycle(t *testing.T) {
	env := setup(t)
	ctx := context.Background()

	uni := testutil.CreateUniversity(t, env.db, "Tsinghua")
	course := testutil.CreateCourse(t, env.db, "Algorithms", uni.ID, nil)
	student := testutil.CreateStudent(t, env.db, "li@example.com", "Beginner", "China")

	enrollment, err := env.enrollment.Enroll(ctx, student.ID, course.ID)
	require.NoError(t, err)
	assert.Zero(t, enrollment.EvaluationScore)

	_, err = env.enrollment.Enroll(ctx, student.ID, course.ID)
	assert.ErrorIs(t, err, util.ErrAlreadyEnrolled)
	assert.EqualValues(t, 1, testutil.Count(t, env.db, "enrollments"))

	_, err = env.grading.Grade(ctx, course.ID, student.ID, 75)
	require.NoError(t, err)

	require.NoError(t, env.enrollment.Drop(ctx, student.ID, course.ID))
	assert.ErrorIs(t, env.enrollment.Drop(ctx, student.ID, course.ID), util.ErrEnrollmentNotFound)

	// 重新选课后分数从 0 开始
	_, err = env.enrollment.Enroll(ctx, student.ID, course.ID)
	require.NoError(t, err)
	rows, err := env.enrollment.ListByStudent(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].EvaluationScore)
}

func TestEnroll_MissingReferences(t *testing.T) {
	env := setup(t)
	ctx := context.Background()

	uni := testutil.CreateUniversity(t, env.db, "Tsinghua")
	course := testutil.CreateCourse(t, env.db, "Algorithms", uni.ID, nil)
	student := testutil.CreateStudent(t, env.db, "li@example.com", "Beginner", "China")

	_, err := env.enrollment.Enroll(ctx, 999, course.ID)
	assert.ErrorIs(t, err, util.ErrStudentNotFound)

	_, err = env.enrollment.Enroll(ctx, student.ID, 999)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)

	assert.EqualValues(t, 0, testutil.Count(t, env.db, "enrollments"))
}

func TestEnroll_Concurrent(t *testing.T) {
	env := setup(t)
	ctx := context.Background()

	uni := testutil.CreateUniversity(t, env.db, "Tsinghua")
	course := testutil.CreateCourse(t, env.db, "Algorithms", uni.ID, nil)
	student := testutil.CreateStudent(t, env.db, "li@example.com", "Beginner", "China")

	const workers = 8
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.enrollment.Enroll(ctx, student.ID, course.ID)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, util.ErrAlreadyEnrolled)
	}
	assert.Equal(t, 1, succeeded)
	assert.EqualValues(t, 1, testutil.Count(t, env.db, "enrollments"))
}

func TestListByStudent_UnassignedInstructor(t *testing.T) {
	env := setup(t)
	ctx := context.Background()

	uni := testutil.CreateUniversity(t, env.db, "Tsinghua")
	inst := testutil.CreateInstructor(t, env.db, "alice@example.com", "Alice")
	taught := testutil.CreateCourse(t, env.db, "Algorithms", uni.ID, inst)
	open := testutil.CreateCourse(t, env.db, "Databases", uni.ID, nil)
	student := testutil.CreateStudent(t, env.db, "li@example.com", "Beginner", "China")
	testutil.Enroll(t, env.db, student.ID, taught.ID, 0)
	testutil.Enroll(t, env.db, student.ID, open.ID, 0)

	rows, err := env.enrollment.ListByStudent(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Alice", rows[0].InstructorName)
	assert.Equal(t, model.UnassignedInstructor, rows[1].InstructorName)
	require.NotNil(t, rows[0].UniversityName)
	assert.Equal(t, "Tsinghua", *rows[0].UniversityName)

	_, err = env.enrollment.ListByStudent(ctx, 999)
	assert.ErrorIs(t, err, util.ErrStudentNotFound)

	roster, err := env.enrollment.ListByCourse(ctx, taught.ID)
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "li@example.com", roster[0].Email)
}

func TestDeleteCascades(t *testing.T) {
	env := setup(t)
	ctx := context.Background()

	uni := testutil.CreateUniversity(t, env.db, "Tsinghua")
	inst := testutil.CreateInstructor(t, env.db, "alice@example.com", "Alice")
	course := testutil.CreateCourse(t, env.db, "Algorithms", uni.ID, inst)
	keep := testutil.CreateCourse(t, env.db, "Databases", uni.ID, inst)
	s1 := testutil.CreateStudent(t, env.db, "s1@example.com", "Beginner", "China")
	s2 := testutil.CreateStudent(t, env.db, "s2@example.com", "Advanced", "India")
	testutil.Enroll(t, env.db, s1.ID, course.ID, 40)
	testutil.Enroll(t, env.db, s2.ID, course.ID, 80)
	testutil.Enroll(t, env.db, s2.ID, keep.ID, 60)

	require.NoError(t, env.enrollment.DeleteCourseCascade(ctx, course.ID))
	assert.EqualValues(t, 1, testutil.Count(t, env.db, "enrollments"))
	assert.ErrorIs(t, env.enrollment.DeleteCourseCascade(ctx, course.ID), util.ErrCourseNotFound)

	require.NoError(t, env.enrollment.DeleteStudentCascade(ctx, s2.ID))
	assert.EqualValues(t, 0, testutil.Count(t, env.db, "enrollments"))
	assert.EqualValues(t, 1, testutil.Count(t, env.db, "students"))
	assert.ErrorIs(t, env.enrollment.DeleteStudentCascade(ctx, s2.ID), util.ErrStudentNotFound)

	require.NoError(t, env.enrollment.DeleteInstructorCascade(ctx, inst.ID))
	got, err := env.courses.Get(ctx, keep.ID)
	require.NoError(t, err)
	assert.Nil(t, got.InstructorID)
	assert.ErrorIs(t, env.enrollment.DeleteInstructorCascade(ctx, inst.ID), util.ErrInstructorNotFound)

	// 剩下 s1 的账号
	assert.EqualValues(t, 1, testutil.Count(t, env.db, "users"))
}

func TestAssignInstructor(t *testing.T) {
	env := setup(t)
	ctx := context.Background()

	uni := testutil.CreateUniversity(t, env.db, "Tsinghua")
	alice := testutil.CreateInstructor(t, env.db, "alice@example.com", "Alice")
	bob := testutil.CreateInstructor(t, env.db, "bob@example.com", "Bob")
	course := testutil.CreateCourse(t, env.db, "Algorithms", uni.ID, alice)

	updated, err := env.enrollment.AssignInstructor(ctx, course.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, updated.TaughtBy(bob.ID))
	require.NotNil(t, updated.Instructor)
	assert.Equal(t, "Bob", updated.Instructor.Name)

	_, err = env.enrollment.AssignInstructor(ctx, course.ID, 999)
	assert.ErrorIs(t, err, util.ErrInstructorNotFound)
	_, err = env.enrollment.AssignInstructor(ctx, 999, bob.ID)
	assert.ErrorIs(t, err, util.ErrCourseNotFound)
}
