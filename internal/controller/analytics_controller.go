package controller

import (
	"quintet_backend/internal/service"
	"quintet_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AnalyticsController 分析师使用的只读统计接口
type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// GetStatistics godoc
// @Summary 全局统计
// @Tags 分析
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.GeneralStatistics}
// @Router /api/analyst/statistics [get]
func (c *AnalyticsController) GetStatistics(ctx *gin.Context) {
	stats, err := c.AnalyticsService.GeneralStatistics(ctx.Request.Context())
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// GetCoursesSummary godoc
// @Summary 课程统计
// @Tags 分析
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.CourseSummary}
// @Router /api/analyst/courses/summary [get]
func (c *AnalyticsController) GetCoursesSummary(ctx *gin.Context) {
	summaries, err := c.AnalyticsService.CoursesSummary(ctx.Request.Context())
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, summaries)
}

// GetEnrollmentsSummary godoc
// @Summary 选课统计
// @Tags 分析
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.EnrollmentsSummary}
// @Router /api/analyst/enrollments/summary [get]
func (c *AnalyticsController) GetEnrollmentsSummary(ctx *gin.Context) {
	summary, err := c.AnalyticsService.EnrollmentsSummary(ctx.Request.Context())
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}

// GetCourseDetail godoc
// @Summary 课程详情统计
// @Tags 分析
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "课程ID"
// @Success 200 {object} util.Response{data=model.CourseDetail}
// @Failure 404 {object} util.Response "课程不存在"
// @Router /api/analyst/courses/{id} [get]
func (c *AnalyticsController) GetCourseDetail(ctx *gin.Context) {
	id, err := util.ParamID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	detail, err := c.AnalyticsService.CourseDetail(ctx.Request.Context(), id)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}

// GetStudentDetail godoc
// @Summary 学生详情统计
// @Tags 分析
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "学生ID"
// @Success 200 {object} util.Response{data=model.StudentDetail}
// @Failure 404 {object} util.Response "学生不存在"
// @Router /api/analyst/students/{id} [get]
func (c *AnalyticsController) GetStudentDetail(ctx *gin.Context) {
	id, err := util.ParamID(ctx, "id")
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	detail, err := c.AnalyticsService.StudentDetail(ctx.Request.Context(), id)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}
