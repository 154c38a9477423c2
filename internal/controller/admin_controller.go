package controller

import (
	"quintet_backend/internal/model"
	"quintet_backend/internal/service"
	"quintet_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	AuthService       *service.AuthService
	UserService       *service.UserService
	CourseService     *service.CourseService
	CatalogService    *service.CatalogService
	EnrollmentService *service.EnrollmentService
	GradingService    *service.GradingService
}

func NewAdminController(
	authService *service.AuthService,
	userService *service.UserService,
	courseService *service.CourseService,
	catalogService *service.CatalogService,
	enrollmentService *service.EnrollmentService,
	gradingService *service.GradingService,
) *AdminController {
	return &AdminController{
		AuthService:       authService,
		UserService:       userService,
		CourseService:     courseService,
		CatalogService:    catalogService,
		EnrollmentService: enrollmentService,
		GradingService:    gradingService,
	}
}

// ListUsers godoc
// @Summary 账号列表
// @Tags 管理员
// @Produce json
// @Security ApiKeyAuth
// @Param role query string false "按角色过滤"
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /api/admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	var role model.UserRole
	if raw := ctx.Query("role"); raw != "" {
		parsed, err := model.ParseRole(raw)
		if err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}
		role = parsed
	}
	users, err := c.UserService.ListUsers(ctx.Request.Context(), role)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// ListInstructors godoc
// @Summary 讲师列表
// @Tags 管理员
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.InstructorProfile}
// @Router /api/admin/instructors [get]
func (c *AdminController) ListInstructors(ctx *gin.Context) {
	instructors, err := c.UserService.ListInstructors(ctx.Request.Context())
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, instructors)
}

// CreateInstructor godoc
// @Summary 创建讲师账号
// @Tags 管理员
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.CreateInstructorRequest true "讲师信息"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response "邮箱已注册"
// @Router /api/admin/instructors [post]
func (c *AdminController) CreateInstructor(ctx *gin.Context) {
	var req model.CreateInstructorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	user, err := c.AuthService.CreateInstructor(ctx.Request.Context(), &req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, model.InstructorProfile{
		InstructorID: user.Instructor.ID,
		UserID:       user.ID,
		Email:        user.Email,
		Name:         user.Instructor.Name,
		Expertise:    user.Instructor.Expertise,
	})
}

// DeleteInstructor godoc
// @Summary 删除讲师
// @Description 讲师负责的课程保留并变为未分配
// @Tags 管理员
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "讲师ID"
// @Success 200 {object} util.Response
// @Router /api/admin/instructors/{id} [delete]
func (c *AdminController) DeleteInstructor(ctx *gin.Context) {
	id, err := util.ParamID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.EnrollmentService.DeleteInstructorCascade(ctx.Request.Context(), id); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "instructor deleted"})
}

// CreateAnalyst godoc
// @Summary 创建分析师账号
// @Tags 管理员
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.CreateAnalystRequest true "分析师信息"
// @Success 201 {object} util.Response
// @Router /api/admin/analysts [post]
func (c *AdminController) CreateAnalyst(ctx *gin.Context) {
	var req model.CreateAnalystRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	user, err := c.AuthService.CreateAnalyst(ctx.Request.Context(), &req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, user)
}

// ListStudents godoc
// @Summary 学生列表
// @Tags 管理员
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.StudentProfile}
// @Router /api/admin/students [get]
func (c *AdminController) ListStudents(ctx *gin.Context) {
	students, err := c.UserService.ListStudents(ctx.Request.Context())
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, students)
}

// DeleteStudent godoc
// @Summary 删除学生
// @Description 同时删除学生的选课记录和登录账号
// @Tags 管理员
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "学生ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "学生不存在"
// @Router /api/admin/students/{id} [delete]
func (c *AdminController) DeleteStudent(ctx *gin.Context) {
	id, err := util.ParamID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.EnrollmentService.DeleteStudentCascade(ctx.Request.Context(), id); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "student deleted"})
}

// CreateCourse godoc
// @Summary 创建课程
// @Tags 管理员
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.CreateCourseRequest true "课程信息"
// @Success 201 {object} util.Response{data=model.Course}
// @Router /api/admin/courses [post]
func (c *AdminController) CreateCourse(ctx *gin.Context) {
	var req model.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	course, err := c.CourseService.Create(ctx.Request.Context(), &req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// DeleteCourse godoc
// @Summary 删除课程
// @Description 同时删除选课、资料、主题与教材关联
// @Tags 管理员
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/admin/courses/{id} [delete]
func (c *AdminController) DeleteCourse(ctx *gin.Context) {
	id, err := util.ParamID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.EnrollmentService.DeleteCourseCascade(ctx.Request.Context(), id); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "course deleted"})
}

// AssignInstructor godoc
// @Summary 指定课程讲师
// @Tags 管理员
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "课程ID"
// @Param body body model.AssignInstructorRequest true "讲师"
// @Success 200 {object} util.Response{data=model.Course}
// @Router /api/admin/courses/{id}/instructor [put]
func (c *AdminController) AssignInstructor(ctx *gin.Context) {
	id, err := util.ParamID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	var req model.AssignInstructorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	course, err := c.EnrollmentService.AssignInstructor(ctx.Request.Context(), id, req.InstructorID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// Grade godoc
// @Summary 管理员评分
// @Tags 管理员
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "课程ID"
// @Param body body model.GradeRequest true "学生与分数"
// @Success 200 {object} util.Response{data=model.Enrollment}
// @Router /api/admin/courses/{id}/grades [put]
func (c *AdminController) Grade(ctx *gin.Context) {
	id, err := util.ParamID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	var req model.GradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	enrollment, err := c.GradingService.Grade(ctx.Request.Context(), id, req.StudentID, *req.EvaluationScore)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, enrollment)
}

// AttachTopic godoc
// @Summary 为课程添加主题
// @Tags 管理员
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "课程ID"
// @Param body body model.AttachRequest true "主题ID"
// @Success 200 {object} util.Response
// @Router /api/admin/courses/{id}/topics [post]
func (c *AdminController) AttachTopic(ctx *gin.Context) {
	id, err := util.ParamID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	var req model.AttachRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.CourseService.AttachTopic(ctx.Request.Context(), id, req.ID); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"course_id": id, "topic_id": req.ID})
}

// AttachTextbook godoc
// @Summary 为课程添加教材
// @Tags 管理员
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "课程ID"
// @Param body body model.AttachRequest true "教材ID"
// @Success 200 {object} util.Response
// @Router /api/admin/courses/{id}/textbooks [post]
func (c *AdminController) AttachTextbook(ctx *gin.Context) {
	id, err := util.ParamID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	var req model.AttachRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.CourseService.AttachTextbook(ctx.Request.Context(), id, req.ID); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"course_id": id, "textbook_id": req.ID})
}

// CreateUniversity godoc
// @Summary 创建大学
// @Tags 管理员
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.CreateUniversityRequest true "大学信息"
// @Success 201 {object} util.Response{data=model.University}
// @Router /api/admin/universities [post]
func (c *AdminController) CreateUniversity(ctx *gin.Context) {
	var req model.CreateUniversityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	u, err := c.CatalogService.CreateUniversity(ctx.Request.Context(), &req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, u)
}

// CreateTopic godoc
// @Summary 创建主题
// @Tags 管理员
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.CreateTopicRequest true "主题"
// @Success 201 {object} util.Response{data=model.Topic}
// @Router /api/admin/topics [post]
func (c *AdminController) CreateTopic(ctx *gin.Context) {
	var req model.CreateTopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	t, err := c.CatalogService.CreateTopic(ctx.Request.Context(), &req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, t)
}

// CreateTextbook godoc
// @Summary 创建教材
// @Tags 管理员
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.CreateTextbookRequest true "教材"
// @Success 201 {object} util.Response{data=model.Textbook}
// @Router /api/admin/textbooks [post]
func (c *AdminController) CreateTextbook(ctx *gin.Context) {
	var req model.CreateTextbookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	t, err := c.CatalogService.CreateTextbook(ctx.Request.Context(), &req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, t)
}
