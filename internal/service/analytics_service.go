package service

import (
	"context"

	"quintet_backend/internal/model"
	"quintet_backend/internal/repository"
	"quintet_backend/internal/util"
	"quintet_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
)

// AnalyticsService 只读统计，每次调用时实时计算；没有数据时各项为 0
type AnalyticsService struct {
	Repo           *repository.AnalyticsRepository
	CourseRepo     *repository.CourseRepository
	StudentRepo    *repository.StudentRepository
	EnrollmentRepo *repository.EnrollmentRepository
	ContentRepo    *repository.ContentRepository
}

func NewAnalyticsService(
	repo *repository.AnalyticsRepository,
	courseRepo *repository.CourseRepository,
	studentRepo *repository.StudentRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	contentRepo *repository.ContentRepository,
) *AnalyticsService {
	return &AnalyticsService{
		Repo:           repo,
		CourseRepo:     courseRepo,
		StudentRepo:    studentRepo,
		EnrollmentRepo: enrollmentRepo,
		ContentRepo:    contentRepo,
	}
}

func (s *AnalyticsService) GeneralStatistics(ctx context.Context) (stats *model.GeneralStatistics, err error) {
	ctx, span := tracing.Start(ctx, "analytics.GeneralStatistics")
	defer func() { tracing.End(span, err) }()

	totals, err := s.Repo.Totals(ctx)
	if err != nil {
		return nil, err
	}
	scores, err := s.Repo.Scores(ctx)
	if err != nil {
		return nil, err
	}
	summary := util.SummarizeScores(scores)

	stats = &model.GeneralStatistics{
		TotalStudents:          totals.Students,
		TotalInstructors:       totals.Instructors,
		TotalCourses:           totals.Courses,
		TotalEnrollments:       totals.Enrollments,
		TotalUniversities:      totals.Universities,
		TotalContents:          totals.Contents,
		AverageEvaluationScore: summary.Average,
		PassCount:              summary.PassCount,
		FailCount:              summary.FailCount,
		ScoreDistribution:      util.ScoreDistribution(scores),
	}

	if stats.StudentsPerCountry, err = s.Repo.StudentsPerCountry(ctx); err != nil {
		return nil, err
	}
	if stats.StudentsPerSkillLevel, err = s.Repo.StudentsPerSkillLevel(ctx); err != nil {
		return nil, err
	}
	if stats.StudentsPerCategory, err = s.Repo.StudentsPerCategory(ctx); err != nil {
		return nil, err
	}
	if stats.CoursesPerUniversity, err = s.Repo.CoursesPerUniversity(ctx); err != nil {
		return nil, err
	}
	if stats.ProgramTypes, err = s.Repo.ProgramTypeStats(ctx); err != nil {
		return nil, err
	}
	for i := range stats.ProgramTypes {
		stats.ProgramTypes[i].AverageScore = util.Round2(stats.ProgramTypes[i].AverageScore)
	}

	span.SetAttributes(attribute.Int64("enrollments", totals.Enrollments))
	return stats, nil
}

func (s *AnalyticsService) CoursesSummary(ctx context.Context) (summaries []model.CourseSummary, err error) {
	ctx, span := tracing.Start(ctx, "analytics.CoursesSummary")
	defer func() { tracing.End(span, err) }()

	summaries, err = s.Repo.CourseSummaries(ctx, util.PassThreshold)
	if err != nil {
		return nil, err
	}
	for i := range summaries {
		summaries[i].AverageScore = util.Round2(summaries[i].AverageScore)
	}

	span.SetAttributes(attribute.Int("courses", len(summaries)))
	return summaries, nil
}

func (s *AnalyticsService) EnrollmentsSummary(ctx context.Context) (summary *model.EnrollmentsSummary, err error) {
	ctx, span := tracing.Start(ctx, "analytics.EnrollmentsSummary")
	defer func() { tracing.End(span, err) }()

	scores, err := s.Repo.Scores(ctx)
	if err != nil {
		return nil, err
	}
	top, err := s.Repo.TopCoursesByEnrollment(ctx, repository.TopCoursesLimit)
	if err != nil {
		return nil, err
	}

	stats := util.SummarizeScores(scores)
	return &model.EnrollmentsSummary{
		TotalEnrollments:       stats.Count,
		AverageScore:           stats.Average,
		MaxScore:               stats.Max,
		MinScore:               stats.Min,
		TopCoursesByEnrollment: top,
	}, nil
}

// groupContent 按类型分组，组的顺序与 contents 中类型首次出现的顺序一致
func groupContent(contents []model.Content) []model.ContentGroup {
	groups := []model.ContentGroup{}
	index := make(map[string]int)
	for _, c := range contents {
		i, ok := index[c.Type]
		if !ok {
			i = len(groups)
			index[c.Type] = i
			groups = append(groups, model.ContentGroup{Type: c.Type, Items: []model.Content{}})
		}
		groups[i].Items = append(groups[i].Items, c)
		groups[i].Count++
	}
	return groups
}

func (s *AnalyticsService) CourseDetail(ctx context.Context, courseID uint) (detail *model.CourseDetail, err error) {
	ctx, span := tracing.Start(ctx, "analytics.CourseDetail", attribute.Int64("course.id", int64(courseID)))
	defer func() { tracing.End(span, err) }()

	course, err := s.CourseRepo.FindByID(ctx, courseID)
	if err != nil {
		return nil, notFound(err, util.ErrCourseNotFound)
	}

	roster, err := s.EnrollmentRepo.Roster(ctx, courseID)
	if err != nil {
		return nil, err
	}
	scores := make([]float64, len(roster))
	for i, r := range roster {
		scores[i] = r.EvaluationScore
	}
	stats := util.SummarizeScores(scores)

	detail = &model.CourseDetail{
		CourseID:          course.ID,
		CourseName:        course.Name,
		Duration:          course.Duration,
		ProgramType:       course.ProgramType,
		InstructorName:    model.UnassignedInstructor,
		EnrollmentCount:   stats.Count,
		AverageScore:      stats.Average,
		MaxScore:          stats.Max,
		MinScore:          stats.Min,
		PassCount:         stats.PassCount,
		FailCount:         stats.FailCount,
		Students:          roster,
		ScoreDistribution: util.ScoreDistribution(scores),
	}
	if course.Instructor != nil {
		detail.InstructorName = course.Instructor.Name
	}
	if course.University != nil {
		name := course.University.Name
		detail.UniversityName = &name
	}

	if detail.Topics, err = s.CourseRepo.Topics(ctx, courseID); err != nil {
		return nil, err
	}
	if detail.Textbooks, err = s.CourseRepo.Textbooks(ctx, courseID); err != nil {
		return nil, err
	}
	contents, err := s.ContentRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	detail.ContentByType = groupContent(contents)
	if detail.SkillLevels, err = s.Repo.SkillLevelsByCourse(ctx, courseID); err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *AnalyticsService) StudentDetail(ctx context.Context, studentID uint) (detail *model.StudentDetail, err error) {
	ctx, span := tracing.Start(ctx, "analytics.StudentDetail", attribute.Int64("student.id", int64(studentID)))
	defer func() { tracing.End(span, err) }()

	profile, err := s.StudentRepo.Profile(ctx, studentID)
	if err != nil {
		return nil, notFound(err, util.ErrStudentNotFound)
	}
	enrollments, err := s.EnrollmentRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	scores := make([]float64, len(enrollments))
	for i, e := range enrollments {
		scores[i] = e.EvaluationScore
	}
	stats := util.SummarizeScores(scores)

	return &model.StudentDetail{
		StudentProfile: *profile,
		Enrollments:    enrollments,
		TotalCourses:   len(enrollments),
		AverageScore:   stats.Average,
		HighestScore:   stats.Max,
		LowestScore:    stats.Min,
		PassCount:      stats.PassCount,
		FailCount:      stats.FailCount,
	}, nil
}
