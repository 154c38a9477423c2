package model

// ScoreDistribution 分数段 -> 人数，五个分数段总是全部出现
type ScoreDistribution map[string]int64

type CountryStudentCount struct {
	Country      string `json:"country"`
	StudentCount int64  `json:"student_count"`
}

type SkillLevelStudentCount struct {
	SkillLevel   string `json:"skill_level"`
	StudentCount int64  `json:"student_count"`
}

type CategoryStudentCount struct {
	Category     string `json:"category"`
	StudentCount int64  `json:"student_count"`
}

type UniversityCourseCount struct {
	University  string `json:"university"`
	CourseCount int64  `json:"course_count"`
}

// ProgramTypeStat 按项目类型统计课程数与平均分
type ProgramTypeStat struct {
	ProgramType  string  `json:"program_type"`
	CourseCount  int64   `json:"course_count"`
	AverageScore float64 `json:"average_score"`
}

// GeneralStatistics 全库概览
type GeneralStatistics struct {
	TotalStudents          int64                    `json:"total_students"`
	TotalInstructors       int64                    `json:"total_instructors"`
	TotalCourses           int64                    `json:"total_courses"`
	TotalEnrollments       int64                    `json:"total_enrollments"`
	TotalUniversities      int64                    `json:"total_universities"`
	TotalContents          int64                    `json:"total_contents"`
	AverageEvaluationScore float64                  `json:"average_evaluation_score"`
	PassCount              int64                    `json:"pass_count"`
	FailCount              int64                    `json:"fail_count"`
	StudentsPerCountry     []CountryStudentCount    `json:"students_per_country"`
	StudentsPerSkillLevel  []SkillLevelStudentCount `json:"students_per_skill_level"`
	StudentsPerCategory    []CategoryStudentCount   `json:"students_per_category"`
	CoursesPerUniversity   []UniversityCourseCount  `json:"courses_per_university"`
	ProgramTypes           []ProgramTypeStat        `json:"program_types"`
	ScoreDistribution      ScoreDistribution        `json:"score_distribution"`
}

// CourseSummary 单门课程的统计
type CourseSummary struct {
	CourseID        uint    `json:"course_id"`
	CourseName      string  `json:"course_name"`
	ProgramType     string  `json:"program_type"`
	Duration        string  `json:"duration"`
	InstructorName  string  `json:"instructor_name"`
	UniversityName  *string `json:"university_name"`
	EnrollmentCount int64   `json:"enrollment_count"`
	AverageScore    float64 `json:"average_score"`
	MaxScore        float64 `json:"max_score"`
	MinScore        float64 `json:"min_score"`
	PassCount       int64   `json:"pass_count"`
	FailCount       int64   `json:"fail_count"`
	ContentCount    int64   `json:"content_count"`
}

type CourseEnrollmentCount struct {
	CourseID        uint   `json:"course_id"`
	CourseName      string `json:"course_name"`
	EnrollmentCount int64  `json:"enrollment_count"`
}

type EnrollmentsSummary struct {
	TotalEnrollments       int64                   `json:"total_enrollments"`
	AverageScore           float64                 `json:"average_score"`
	MaxScore               float64                 `json:"max_score"`
	MinScore               float64                 `json:"min_score"`
	TopCoursesByEnrollment []CourseEnrollmentCount `json:"top_5_courses_by_enrollment"`
}

type ContentGroup struct {
	Type  string    `json:"type"`
	Count int       `json:"count"`
	Items []Content `json:"items"`
}

type SkillLevelBreakdown map[string]int64

// CourseDetail 单门课程的详细视图
type CourseDetail struct {
	CourseID          uint                `json:"course_id"`
	CourseName        string              `json:"course_name"`
	Duration          string              `json:"duration"`
	ProgramType       string              `json:"program_type"`
	InstructorName    string              `json:"instructor_name"`
	UniversityName    *string             `json:"university_name"`
	EnrollmentCount   int64               `json:"enrollment_count"`
	AverageScore      float64             `json:"average_score"`
	MaxScore          float64             `json:"max_score"`
	MinScore          float64             `json:"min_score"`
	PassCount         int64               `json:"pass_count"`
	FailCount         int64               `json:"fail_count"`
	Students          []RosterEntry       `json:"students"`
	Topics            []Topic             `json:"topics"`
	Textbooks         []Textbook          `json:"textbooks"`
	ContentByType     []ContentGroup      `json:"content_by_type"`
	ScoreDistribution ScoreDistribution   `json:"score_distribution"`
	SkillLevels       SkillLevelBreakdown `json:"skill_level_breakdown"`
}

// StudentDetail 单个学生的详细视图
type StudentDetail struct {
	StudentProfile
	Enrollments  []StudentEnrollment `json:"enrollments"`
	TotalCourses int                 `json:"total_courses"`
	AverageScore float64             `json:"average_score"`
	HighestScore float64             `json:"highest_score"`
	LowestScore  float64             `json:"lowest_score"`
	PassCount    int64               `json:"pass_count"`
	FailCount    int64               `json:"fail_count"`
}
