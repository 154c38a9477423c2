package repository

import (
	"context"
	"fmt"
	"testing"

	"quintet_backend/internal/model"
	"quintet_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopCoursesByEnrollment(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	uni := testutil.CreateUniversity(t, db, "Tsinghua")

	students := make([]*model.Student, 5)
	for i := range students {
		students[i] = testutil.CreateStudent(t, db, fmt.Sprintf("s%d@example.com", i), "Beginner", "China")
	}

	counts := []int{1, 3, 5, 3, 1, 1, 0}
	courses := make([]*model.Course, len(counts))
	for i, n := range counts {
		courses[i] = testutil.CreateCourse(t, db, fmt.Sprintf("course-%d", i), uni.ID, nil)
		for j := 0; j < n; j++ {
			testutil.Enroll(t, db, students[j].ID, courses[i].ID, 50)
		}
	}

	top, err := NewAnalyticsRepository(db).TopCoursesByEnrollment(ctx, TopCoursesLimit)
	require.NoError(t, err)
	require.Len(t, top, 5)

	wantIDs := []uint{courses[2].ID, courses[1].ID, courses[3].ID, courses[0].ID, courses[4].ID}
	wantCounts := []int64{5, 3, 3, 1, 1}
	for i, row := range top {
		assert.Equal(t, wantIDs[i], row.CourseID, "rank %d", i)
		assert.Equal(t, wantCounts[i], row.EnrollmentCount, "rank %d", i)
	}
}

func TestTopCoursesByEnrollment_SkipsEmptyCourses(t *testing.T) {
	db := testutil.NewTestDB(t)
	uni := testutil.CreateUniversity(t, db, "Tsinghua")
	testutil.CreateCourse(t, db, "empty", uni.ID, nil)

	top, err := NewAnalyticsRepository(db).TopCoursesByEnrollment(context.Background(), TopCoursesLimit)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestCourseSummaries(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	uni := testutil.CreateUniversity(t, db, "Tsinghua")
	inst := testutil.CreateInstructor(t, db, "alice@example.com", "Alice")
	taught := testutil.CreateCourse(t, db, "Algorithms", uni.ID, inst)
	unassigned := testutil.CreateCourse(t, db, "Databases", uni.ID, nil)

	s1 := testutil.CreateStudent(t, db, "s1@example.com", "Beginner", "China")
	s2 := testutil.CreateStudent(t, db, "s2@example.com", "Advanced", "India")
	s3 := testutil.CreateStudent(t, db, "s3@example.com", "Advanced", "India")
	testutil.Enroll(t, db, s1.ID, taught.ID, 30)
	testutil.Enroll(t, db, s2.ID, taught.ID, 50)
	testutil.Enroll(t, db, s3.ID, taught.ID, 90)
	require.NoError(t, db.Create(&model.Content{CourseID: taught.ID, Type: model.ContentTypeLink, URL: "https://example.com"}).Error)

	rows, err := NewAnalyticsRepository(db).CourseSummaries(ctx, 40)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, taught.ID, first.CourseID)
	assert.Equal(t, "Alice", first.InstructorName)
	require.NotNil(t, first.UniversityName)
	assert.Equal(t, "Tsinghua", *first.UniversityName)
	assert.EqualValues(t, 3, first.EnrollmentCount)
	assert.InDelta(t, 56.666, first.AverageScore, 0.01)
	assert.Equal(t, 90.0, first.MaxScore)
	assert.Equal(t, 30.0, first.MinScore)
	assert.EqualValues(t, 2, first.PassCount)
	assert.EqualValues(t, 1, first.FailCount)
	assert.EqualValues(t, 1, first.ContentCount)

	second := rows[1]
	assert.Equal(t, unassigned.ID, second.CourseID)
	assert.Equal(t, model.UnassignedInstructor, second.InstructorName)
	assert.Zero(t, second.EnrollmentCount)
	assert.Zero(t, second.AverageScore)
	assert.Zero(t, second.PassCount)
	assert.Zero(t, second.FailCount)
}

func TestGroupedCounts(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewAnalyticsRepository(db)

	uni := testutil.CreateUniversity(t, db, "Tsinghua")
	other := testutil.CreateUniversity(t, db, "Toronto")
	testutil.CreateUniversity(t, db, "No Courses")
	course := testutil.CreateCourse(t, db, "A", uni.ID, nil)
	testutil.CreateCourse(t, db, "B", uni.ID, nil)
	testutil.CreateCourse(t, db, "C", other.ID, nil)

	s1 := testutil.CreateStudent(t, db, "s1@example.com", "Beginner", "China")
	s2 := testutil.CreateStudent(t, db, "s2@example.com", "Advanced", "China")
	testutil.CreateStudent(t, db, "s3@example.com", "Advanced", "India")
	testutil.Enroll(t, db, s1.ID, course.ID, 80)
	testutil.Enroll(t, db, s2.ID, course.ID, 60)

	countries, err := repo.StudentsPerCountry(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.CountryStudentCount{{Country: "China", StudentCount: 2}, {Country: "India", StudentCount: 1}}, countries)

	levels, err := repo.StudentsPerSkillLevel(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.SkillLevelStudentCount{{SkillLevel: "Advanced", StudentCount: 2}, {SkillLevel: "Beginner", StudentCount: 1}}, levels)

	perUni, err := repo.CoursesPerUniversity(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.UniversityCourseCount{{University: "Toronto", CourseCount: 1}, {University: "Tsinghua", CourseCount: 2}}, perUni)

	programs, err := repo.ProgramTypeStats(ctx)
	require.NoError(t, err)
	require.Len(t, programs, 1)
	assert.EqualValues(t, 3, programs[0].CourseCount)
	assert.InDelta(t, 70, programs[0].AverageScore, 0.001)

	breakdown, err := repo.SkillLevelsByCourse(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SkillLevelBreakdown{"Beginner": 1, "Advanced": 1}, breakdown)

	totals, err := repo.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, &EntityTotals{Students: 3, Courses: 3, Enrollments: 2, Universities: 3}, totals)
}

func TestAnalytics_EmptyDatabase(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()
	repo := NewAnalyticsRepository(db)

	scores, err := repo.Scores(ctx)
	require.NoError(t, err)
	assert.Empty(t, scores)

	summaries, err := repo.CourseSummaries(ctx, 40)
	require.NoError(t, err)
	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)

	countries, err := repo.StudentsPerCountry(ctx)
	require.NoError(t, err)
	assert.Empty(t, countries)
}
