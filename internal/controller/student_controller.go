package controller

import (
	"quintet_backend/internal/model"
	"quintet_backend/internal/service"
	"quintet_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StudentController struct {
	UserService       *service.UserService
	EnrollmentService *service.EnrollmentService
	AnalyticsService  *service.AnalyticsService
}

func NewStudentController(userService *service.UserService, enrollmentService *service.EnrollmentService, analyticsService *service.AnalyticsService) *StudentController {
	return &StudentController{
		UserService:       userService,
		EnrollmentService: enrollmentService,
		AnalyticsService:  analyticsService,
	}
}

// currentStudentID 当前登录账号对应的学生 id，失败时已写入响应
func (c *StudentController) currentStudentID(ctx *gin.Context) (uint, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return 0, false
	}
	id, err := c.UserService.StudentIDForUser(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.RespondError(ctx, err)
		return 0, false
	}
	return id, true
}

// GetProfile godoc
// @Summary 学生档案
// @Tags 学生
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.StudentProfile}
// @Router /api/students/profile [get]
func (c *StudentController) GetProfile(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}
	profile, err := c.UserService.StudentProfile(ctx.Request.Context(), studentID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// UpdateProfile godoc
// @Summary 修改学生档案
// @Tags 学生
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.UpdateStudentProfileRequest true "档案字段"
// @Success 200 {object} util.Response{data=model.StudentProfile}
// @Router /api/students/profile [put]
func (c *StudentController) UpdateProfile(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}
	var req model.UpdateStudentProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	profile, err := c.UserService.UpdateStudentProfile(ctx.Request.Context(), studentID, &req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// Enroll godoc
// @Summary 选课
// @Tags 学生
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.EnrollRequest true "课程"
// @Success 201 {object} util.Response{data=model.Enrollment}
// @Failure 400 {object} util.Response "已选过该课程"
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/students/enroll [post]
func (c *StudentController) Enroll(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}
	var req model.EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	enrollment, err := c.EnrollmentService.Enroll(ctx.Request.Context(), studentID, req.CourseID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, enrollment)
}

// Drop godoc
// @Summary 退课
// @Tags 学生
// @Produce json
// @Security ApiKeyAuth
// @Param course_id path int true "课程ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "未选该课程"
// @Router /api/students/enrollments/{course_id} [delete]
func (c *StudentController) Drop(ctx *gin.Context) {
	courseID, err := util.ParamID(ctx, "course_id")
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}
	if err := c.EnrollmentService.Drop(ctx.Request.Context(), studentID, courseID); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "enrollment dropped"})
}

// MyCourses godoc
// @Summary 我的课程
// @Tags 学生
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.StudentEnrollment}
// @Router /api/students/my-courses [get]
func (c *StudentController) MyCourses(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}
	enrollments, err := c.EnrollmentService.ListByStudent(ctx.Request.Context(), studentID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, enrollments)
}

// MyDetail godoc
// @Summary 我的学习统计
// @Tags 学生
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.StudentDetail}
// @Router /api/students/me/detail [get]
func (c *StudentController) MyDetail(ctx *gin.Context) {
	studentID, ok := c.currentStudentID(ctx)
	if !ok {
		return
	}
	detail, err := c.AnalyticsService.StudentDetail(ctx.Request.Context(), studentID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}
