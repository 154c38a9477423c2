package controller

import (
	"quintet_backend/internal/model"
	"quintet_backend/internal/service"
	"quintet_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// SignupStudent godoc
// @Summary 学生注册
// @Description 创建学生账号及学生档案
// @Tags 认证
// @Accept json
// @Produce json
// @Param body body model.StudentSignupRequest true "注册信息"
// @Success 201 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response "参数错误或邮箱已注册"
// @Router /api/auth/student/signup [post]
func (c *AuthController) SignupStudent(ctx *gin.Context) {
	var req model.StudentSignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AuthService.SignupStudent(ctx.Request.Context(), &req)
	if err != nil {
		util.RespondError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{
		"user_id":    user.ID,
		"student_id": user.Student.ID,
		"email_id":   user.Email,
		"role":       user.Role,
	})
}

// Login godoc
// @Summary 按角色登录
// @Description 账号角色必须与登录入口一致
// @Tags 认证
// @Accept json
// @Produce json
// @Param body body model.LoginRequest true "登录信息"
// @Success 200 {object} util.Response{data=model.LoginResponse}
// @Failure 401 {object} util.Response "邮箱或密码错误"
// @Failure 403 {object} util.Response "角色不匹配"
// @Router /api/auth/student/login [post]
// @Router /api/auth/instructor/login [post]
// @Router /api/auth/analyst/login [post]
// @Router /api/auth/admin/login [post]
func (c *AuthController) Login(role model.UserRole) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.LoginRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			util.BadRequest(ctx, err.Error())
			return
		}

		resp, err := c.AuthService.Login(ctx.Request.Context(), role, req.Email, req.Password)
		if err != nil {
			util.RespondError(ctx, err)
			return
		}
		util.Success(ctx, resp)
	}
}

// Logout godoc
// @Summary 登出
// @Description 当前令牌在过期前失效
// @Tags 认证
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := c.AuthService.Logout(ctx.Request.Context(), util.GetUserFromContext(ctx)); err != nil {
		util.RespondError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "logged out"})
}
