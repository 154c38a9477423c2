package controller

import (
	"strconv"

	"quintet_backend/internal/repository"
	"quintet_backend/internal/service"
	"quintet_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// CourseController 公开的课程与目录查询
type CourseController struct {
	CourseService  *service.CourseService
	CatalogService *service.CatalogService
}

func NewCourseController(courseService *service.CourseService, catalogService *service.CatalogService) *CourseController {
	return &CourseController{
		CourseService:  courseService,
		CatalogService: catalogService,
	}
}

// ListCourses godoc
// @Summary 课程列表
// @Tags 课程
// @Produce json
// @Param program_type query string false "项目类型"
// @Param university_id query int false "大学ID"
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	filter := repository.CourseFilter{ProgramType: ctx.Query("program_type")}
	if raw := ctx.Query("university_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			util.BadRequest(ctx, "invalid university_id")
			return
		}
		filter.UniversityID = uint(id)
	}

	courses, err := c.CourseService.List(ctx.Request.Context(), filter)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// GetCourse godoc
// @Summary 课程详情
// @Tags 课程
// @Produce json
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, err := util.ParamID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	course, err := c.CourseService.Get(ctx.Request.Context(), id)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// ListUniversities godoc
// @Summary 大学列表
// @Tags 目录
// @Produce json
// @Success 200 {object} util.Response{data=[]model.University}
// @Router /api/universities [get]
func (c *CourseController) ListUniversities(ctx *gin.Context) {
	universities, err := c.CatalogService.ListUniversities(ctx.Request.Context())
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, universities)
}

// GetUniversity godoc
// @Summary 大学详情
// @Tags 目录
// @Produce json
// @Param id path int true "大学ID"
// @Success 200 {object} util.Response{data=model.University}
// @Router /api/universities/{id} [get]
func (c *CourseController) GetUniversity(ctx *gin.Context) {
	id, err := util.ParamID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	u, err := c.CatalogService.GetUniversity(ctx.Request.Context(), id)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, u)
}

// ListTopics godoc
// @Summary 主题列表
// @Tags 目录
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Topic}
// @Router /api/topics [get]
func (c *CourseController) ListTopics(ctx *gin.Context) {
	topics, err := c.CatalogService.ListTopics(ctx.Request.Context())
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, topics)
}

// ListTextbooks godoc
// @Summary 教材列表
// @Tags 目录
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Textbook}
// @Router /api/textbooks [get]
func (c *CourseController) ListTextbooks(ctx *gin.Context) {
	textbooks, err := c.CatalogService.ListTextbooks(ctx.Request.Context())
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, textbooks)
}
