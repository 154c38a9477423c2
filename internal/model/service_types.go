package model

// 请求体，binding 规则由 gin 在控制器中校验

type StudentSignupRequest struct {
	Email      string `json:"email_id" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Age        int    `json:"age" binding:"required,min=1,max=150"`
	SkillLevel string `json:"skill_level" binding:"required,skill_level"`
	Category   string `json:"category" binding:"required"`
	Country    string `json:"country" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email_id" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ExpiresIn   int64    `json:"expires_in"`
	UserID      uint     `json:"user_id"`
	Role        UserRole `json:"role"`
	ProfileID   uint     `json:"profile_id,omitempty"`
}

type CreateInstructorRequest struct {
	Email     string `json:"email_id" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Name      string `json:"name" binding:"required"`
	Expertise string `json:"expertise"`
}

type CreateAnalystRequest struct {
	Email    string `json:"email_id" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type UpdateStudentProfileRequest struct {
	Age        int    `json:"age" binding:"omitempty,min=1,max=150"`
	SkillLevel string `json:"skill_level" binding:"omitempty,skill_level"`
	Category   string `json:"category"`
	Country    string `json:"country"`
}

type UpdateInstructorProfileRequest struct {
	Name      string `json:"name"`
	Expertise string `json:"expertise"`
}

type EnrollRequest struct {
	CourseID uint `json:"course_id" binding:"required"`
}

// GradeRequest 分数用指针区分“未提供”和 0 分
type GradeRequest struct {
	StudentID       uint     `json:"student_id" binding:"required"`
	EvaluationScore *float64 `json:"evaluation_score" binding:"required"`
}

type CreateCourseRequest struct {
	Name         string `json:"course_name" binding:"required"`
	Duration     string `json:"duration" binding:"required"`
	ProgramType  string `json:"program_type" binding:"required"`
	UniversityID uint   `json:"university_id" binding:"required"`
	InstructorID *uint  `json:"instructor_id"`
}

type AssignInstructorRequest struct {
	InstructorID uint `json:"instructor_id" binding:"required"`
}

type CreateContentRequest struct {
	Type  string `json:"type" binding:"required,oneof=video document link quiz"`
	Title string `json:"title"`
	URL   string `json:"content_url" binding:"required,url"`
}

type CreateUniversityRequest struct {
	Name    string `json:"name" binding:"required"`
	Country string `json:"country" binding:"required"`
}

type CreateTopicRequest struct {
	Name string `json:"topic_name" binding:"required"`
}

type CreateTextbookRequest struct {
	Title  string `json:"title" binding:"required"`
	Author string `json:"author" binding:"required"`
	Link   string `json:"link" binding:"omitempty,url"`
}

type AttachRequest struct {
	ID uint `json:"id" binding:"required"`
}
