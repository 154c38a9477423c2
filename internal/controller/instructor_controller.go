package controller

import (
	"quintet_backend/internal/model"
	"quintet_backend/internal/service"
	"quintet_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type InstructorController struct {
	UserService       *service.UserService
	CourseService     *service.CourseService
	EnrollmentService *service.EnrollmentService
	GradingService    *service.GradingService
	ContentService    *service.ContentService
}

func NewInstructorController(
	userService *service.UserService,
	courseService *service.CourseService,
	enrollmentService *service.EnrollmentService,
	gradingService *service.GradingService,
	contentService *service.ContentService,
) *InstructorController {
	return &InstructorController{
		UserService:       userService,
		CourseService:     courseService,
		EnrollmentService: enrollmentService,
		GradingService:    gradingService,
		ContentService:    contentService,
	}
}

func (c *InstructorController) currentInstructorID(ctx *gin.Context) (uint, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return 0, false
	}
	id, err := c.UserService.InstructorIDForUser(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.RespondError(ctx, err)
		return 0, false
	}
	return id, true
}

// ownedCourse 解析路径中的课程 id 并确认归当前讲师
func (c *InstructorController) ownedCourse(ctx *gin.Context) (instructorID, courseID uint, ok bool) {
	courseID, err := util.ParamID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return 0, 0, false
	}
	instructorID, ok = c.currentInstructorID(ctx)
	if !ok {
		return 0, 0, false
	}
	if err := c.CourseService.EnsureInstructorOwns(ctx.Request.Context(), instructorID, courseID); err != nil {
		util.RespondError(ctx, err)
		return 0, 0, false
	}
	return instructorID, courseID, true
}

// GetProfile godoc
// @Summary 讲师档案
// @Tags 讲师
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.InstructorProfile}
// @Router /api/instructors/profile [get]
func (c *InstructorController) GetProfile(ctx *gin.Context) {
	instructorID, ok := c.currentInstructorID(ctx)
	if !ok {
		return
	}
	profile, err := c.UserService.InstructorProfile(ctx.Request.Context(), instructorID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// UpdateProfile godoc
// @Summary 修改讲师档案
// @Tags 讲师
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.UpdateInstructorProfileRequest true "档案字段"
// @Success 200 {object} util.Response{data=model.InstructorProfile}
// @Router /api/instructors/profile [put]
func (c *InstructorController) UpdateProfile(ctx *gin.Context) {
	instructorID, ok := c.currentInstructorID(ctx)
	if !ok {
		return
	}
	var req model.UpdateInstructorProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	profile, err := c.UserService.UpdateInstructorProfile(ctx.Request.Context(), instructorID, &req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// MyCourses godoc
// @Summary 我负责的课程
// @Tags 讲师
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/instructors/my-courses [get]
func (c *InstructorController) MyCourses(ctx *gin.Context) {
	instructorID, ok := c.currentInstructorID(ctx)
	if !ok {
		return
	}
	courses, err := c.CourseService.ListByInstructor(ctx.Request.Context(), instructorID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// Roster godoc
// @Summary 课程学生名单
// @Tags 讲师
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response{data=[]model.RosterEntry}
// @Failure 403 {object} util.Response "不是该课程的讲师"
// @Router /api/instructors/courses/{id}/students [get]
func (c *InstructorController) Roster(ctx *gin.Context) {
	_, courseID, ok := c.ownedCourse(ctx)
	if !ok {
		return
	}
	roster, err := c.EnrollmentService.ListByCourse(ctx.Request.Context(), courseID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, roster)
}

// Grade godoc
// @Summary 评分
// @Description 覆盖学生在该课程的分数，超出范围的分数会被截断
// @Tags 讲师
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "课程ID"
// @Param body body model.GradeRequest true "学生与分数"
// @Success 200 {object} util.Response{data=model.Enrollment}
// @Failure 403 {object} util.Response "不是该课程的讲师"
// @Failure 404 {object} util.Response "选课记录不存在"
// @Router /api/instructors/courses/{id}/grades [put]
func (c *InstructorController) Grade(ctx *gin.Context) {
	courseID, err := util.ParamID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	var req model.GradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	instructorID, ok := c.currentInstructorID(ctx)
	if !ok {
		return
	}

	enrollment, err := c.GradingService.GradeAsInstructor(ctx.Request.Context(), instructorID, courseID, req.StudentID, *req.EvaluationScore)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, enrollment)
}

// ListContent godoc
// @Summary 课程资料列表
// @Tags 讲师
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response{data=[]model.Content}
// @Router /api/instructors/courses/{id}/contents [get]
func (c *InstructorController) ListContent(ctx *gin.Context) {
	_, courseID, ok := c.ownedCourse(ctx)
	if !ok {
		return
	}
	contents, err := c.ContentService.ListByCourse(ctx.Request.Context(), courseID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, contents)
}

// CreateContent godoc
// @Summary 添加链接资料
// @Tags 讲师
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "课程ID"
// @Param body body model.CreateContentRequest true "资料"
// @Success 201 {object} util.Response{data=model.Content}
// @Router /api/instructors/courses/{id}/contents [post]
func (c *InstructorController) CreateContent(ctx *gin.Context) {
	_, courseID, ok := c.ownedCourse(ctx)
	if !ok {
		return
	}
	var req model.CreateContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	content, err := c.ContentService.Create(ctx.Request.Context(), courseID, &req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, content)
}

// UploadContent godoc
// @Summary 上传资料文件
// @Description 视频文件会记录时长、分辨率等元数据
// @Tags 讲师
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "课程ID"
// @Param file formData file true "文件"
// @Param title formData string false "标题"
// @Success 201 {object} util.Response{data=model.Content}
// @Router /api/instructors/courses/{id}/contents/upload [post]
func (c *InstructorController) UploadContent(ctx *gin.Context) {
	_, courseID, ok := c.ownedCourse(ctx)
	if !ok {
		return
	}
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	content, err := c.ContentService.Upload(ctx.Request.Context(), courseID, file, ctx.PostForm("title"))
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Created(ctx, content)
}

// DeleteContent godoc
// @Summary 删除资料
// @Tags 讲师
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "课程ID"
// @Param content_id path int true "资料ID"
// @Success 200 {object} util.Response
// @Router /api/instructors/courses/{id}/contents/{content_id} [delete]
func (c *InstructorController) DeleteContent(ctx *gin.Context) {
	_, courseID, ok := c.ownedCourse(ctx)
	if !ok {
		return
	}
	contentID, err := util.ParamID(ctx, "content_id")
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	content, err := c.ContentService.Get(ctx.Request.Context(), contentID)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	if content.CourseID != courseID {
		util.RespondError(ctx, util.ErrContentNotFound)
		return
	}
	if err := c.ContentService.Delete(ctx.Request.Context(), contentID); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "content deleted"})
}
