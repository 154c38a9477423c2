package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"quintet_backend/internal/config"
	"quintet_backend/internal/model"
	"quintet_backend/internal/util"
	"quintet_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RevocationChecker 查询令牌是否已登出
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AccountLookup 查询账号当前角色，账号已删除时返回 gorm.ErrRecordNotFound
type AccountLookup interface {
	RoleOf(ctx context.Context, id uint) (model.UserRole, error)
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if token := strings.TrimPrefix(authHeader, "Bearer "); token != authHeader {
		return strings.TrimSpace(token)
	}
	return ""
}

// AuthMiddleware 令牌有效之外还要求账号仍然存在且角色未变
func AuthMiddleware(cfg *config.Config, revoked RevocationChecker, accounts AccountLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			logger.Log.Debug("JWT parse failed", zap.Error(err))
			util.Unauthorized(c)
			c.Abort()
			return
		}

		if revoked != nil && claims.ID != "" {
			isRevoked, err := revoked.IsRevoked(c.Request.Context(), claims.ID)
			if err != nil {
				util.LogInternalError(c, err)
				c.Abort()
				return
			}
			if isRevoked {
				util.Error(c, http.StatusUnauthorized, util.ErrTokenRevoked.Error())
				c.Abort()
				return
			}
		}

		if accounts != nil {
			role, err := accounts.RoleOf(c.Request.Context(), claims.UserID)
			if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && role != claims.Role) {
				logger.Log.Debug("Token owner no longer valid", zap.Uint("userID", claims.UserID))
				util.Unauthorized(c)
				c.Abort()
				return
			}
			if err != nil {
				util.LogInternalError(c, err)
				c.Abort()
				return
			}
		}

		c.Set("user", claims)
		c.Next()
	}
}

// RoleMiddleware 管理员可以访问所有受角色保护的路由
func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		hasRole := user.Role == model.RoleAdmin
		for _, role := range roles {
			if user.Role == role {
				hasRole = true
				break
			}
		}

		if !hasRole {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
