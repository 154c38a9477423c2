package repository

import (
	"context"
	"errors"
	"testing"

	"quintet_backend/internal/model"
	"quintet_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCascade_CourseLeavesNoOrphans(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	uni := testutil.CreateUniversity(t, db, "Tsinghua")
	inst := testutil.CreateInstructor(t, db, "alice@example.com", "Alice")
	course := testutil.CreateCourse(t, db, "Algorithms", uni.ID, inst)
	other := testutil.CreateCourse(t, db, "Databases", uni.ID, inst)
	s1 := testutil.CreateStudent(t, db, "s1@example.com", "Beginner", "China")
	s2 := testutil.CreateStudent(t, db, "s2@example.com", "Advanced", "India")
	testutil.Enroll(t, db, s1.ID, course.ID, 50)
	testutil.Enroll(t, db, s2.ID, course.ID, 70)
	testutil.Enroll(t, db, s1.ID, other.ID, 90)

	topic := &model.Topic{Name: "Graphs"}
	book := &model.Textbook{Title: "CLRS", Author: "Cormen"}
	require.NoError(t, db.Create(topic).Error)
	require.NoError(t, db.Create(book).Error)
	require.NoError(t, db.Create(&model.CourseTopic{CourseID: course.ID, TopicID: topic.ID}).Error)
	require.NoError(t, db.Create(&model.TextbookUsed{CourseID: course.ID, TextbookID: book.ID}).Error)
	require.NoError(t, db.Create(&model.Content{CourseID: course.ID, Type: model.ContentTypeLink, URL: "https://example.com/a"}).Error)

	var result *CascadeResult
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		result, err = NewCascadeRepository(db).WithTx(tx).Execute(ctx, CourseDeletionPlan, course.ID)
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, "course", result.Plan)
	assert.EqualValues(t, 2, result.Affected["enrollments"])
	assert.EqualValues(t, 1, result.Affected["contents"])
	assert.EqualValues(t, 1, result.Affected["course_topics"])
	assert.EqualValues(t, 1, result.Affected["textbooks_used"])
	assert.EqualValues(t, 1, result.Affected["courses"])

	var orphans int64
	require.NoError(t, db.Model(&model.Enrollment{}).Where("course_id = ?", course.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)
	assert.EqualValues(t, 1, testutil.Count(t, db, "enrollments"))
	assert.EqualValues(t, 0, testutil.Count(t, db, "contents"))
	assert.EqualValues(t, 0, testutil.Count(t, db, "course_topics"))
	assert.EqualValues(t, 0, testutil.Count(t, db, "textbooks_used"))
	assert.EqualValues(t, 1, testutil.Count(t, db, "courses"))
	// 主题和教材本身保留
	assert.EqualValues(t, 1, testutil.Count(t, db, "topics"))
	assert.EqualValues(t, 1, testutil.Count(t, db, "textbooks"))
}

func TestCascade_StudentRemovesAccount(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	uni := testutil.CreateUniversity(t, db, "Toronto")
	course := testutil.CreateCourse(t, db, "ML", uni.ID, nil)
	s1 := testutil.CreateStudent(t, db, "s1@example.com", "Beginner", "Canada")
	s2 := testutil.CreateStudent(t, db, "s2@example.com", "Beginner", "Canada")
	testutil.Enroll(t, db, s1.ID, course.ID, 10)
	testutil.Enroll(t, db, s2.ID, course.ID, 20)

	result, err := NewCascadeRepository(db).Execute(ctx, StudentDeletionPlan, s1.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.Affected["enrollments"])
	assert.EqualValues(t, 1, result.Affected["students"])
	assert.EqualValues(t, 1, result.Affected["users"])

	assert.EqualValues(t, 1, testutil.Count(t, db, "students"))
	assert.EqualValues(t, 1, testutil.Count(t, db, "users"))
	assert.EqualValues(t, 1, testutil.Count(t, db, "enrollments"))

	var n int64
	require.NoError(t, db.Model(&model.User{}).Where("id = ?", s1.UserID).Count(&n).Error)
	assert.Zero(t, n)
}

func TestCascade_InstructorUnassignsCourses(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	uni := testutil.CreateUniversity(t, db, "Tsinghua")
	inst := testutil.CreateInstructor(t, db, "alice@example.com", "Alice")
	c1 := testutil.CreateCourse(t, db, "A", uni.ID, inst)
	c2 := testutil.CreateCourse(t, db, "B", uni.ID, inst)

	result, err := NewCascadeRepository(db).Execute(ctx, InstructorDeletionPlan, inst.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, result.Affected["courses"])

	for _, id := range []uint{c1.ID, c2.ID} {
		var course model.Course
		require.NoError(t, db.First(&course, id).Error)
		assert.Nil(t, course.InstructorID)
	}
	assert.EqualValues(t, 0, testutil.Count(t, db, "instructors"))
	assert.EqualValues(t, 0, testutil.Count(t, db, "users"))
}

func TestCascade_MissingRoot(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewCascadeRepository(db)

	for _, plan := range []CascadePlan{CourseDeletionPlan, StudentDeletionPlan, InstructorDeletionPlan} {
		_, err := repo.Execute(context.Background(), plan, 999)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound, plan.Name)
	}
}

func TestCascadePlan_Tables(t *testing.T) {
	assert.Equal(t, []string{"enrollments", "contents", "course_topics", "textbooks_used", "courses"}, CourseDeletionPlan.Tables())
	assert.Equal(t, []string{"enrollments", "students", "users"}, StudentDeletionPlan.Tables())
	assert.Equal(t, []string{"courses", "instructors", "users"}, InstructorDeletionPlan.Tables())
}

func TestCascade_RollsBackOnStepFailure(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	uni := testutil.CreateUniversity(t, db, "Tsinghua")
	course := testutil.CreateCourse(t, db, "Algorithms", uni.ID, nil)
	s1 := testutil.CreateStudent(t, db, "s1@example.com", "Beginner", "China")
	testutil.Enroll(t, db, s1.ID, course.ID, 50)
	require.NoError(t, db.Create(&model.Content{CourseID: course.ID, Type: model.ContentTypeLink, URL: "https://example.com/a"}).Error)

	errStep := errors.New("step failed")
	plan := CourseDeletionPlan
	plan.Steps = append([]cascadeStep{plan.Steps[0], {
		Table: "failing",
		run: func(tx *gorm.DB, root cascadeRoot) *gorm.DB {
			failed := tx.Session(&gorm.Session{})
			failed.AddError(errStep)
			return failed
		},
	}}, plan.Steps[1:]...)

	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := NewCascadeRepository(db).WithTx(tx).Execute(ctx, plan, course.ID)
		return err
	})
	require.ErrorIs(t, err, errStep)
	assert.Contains(t, err.Error(), "delete from failing")

	// 已执行的 enrollments 步骤一并回滚
	assert.EqualValues(t, 1, testutil.Count(t, db, "enrollments"))
	assert.EqualValues(t, 1, testutil.Count(t, db, "contents"))
	assert.EqualValues(t, 1, testutil.Count(t, db, "courses"))
	// 原计划不受影响
	assert.Len(t, CourseDeletionPlan.Steps, 5)
}
