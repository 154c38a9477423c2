package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quintet_backend/internal/model"
	"quintet_backend/internal/testutil"
	"quintet_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type revokedSet map[string]bool

func (r revokedSet) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return r[jti], nil
}

type failingChecker struct{}

func (failingChecker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return false, errors.New("redis down")
}

// accountRoles 账号 id -> 当前角色
type accountRoles map[uint]model.UserRole

func (a accountRoles) RoleOf(ctx context.Context, id uint) (model.UserRole, error) {
	role, ok := a[id]
	if !ok {
		return "", gorm.ErrRecordNotFound
	}
	return role, nil
}

type failingLookup struct{}

func (failingLookup) RoleOf(ctx context.Context, id uint) (model.UserRole, error) {
	return "", errors.New("db down")
}

var knownAccounts = accountRoles{
	1: model.RoleStudent,
	2: model.RoleAdmin,
	3: model.RoleAnalyst,
}

func accountID(role model.UserRole) uint {
	for id, r := range knownAccounts {
		if r == role {
			return id
		}
	}
	return 0
}

func newRouter(checker RevocationChecker, accounts AccountLookup, roles ...model.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(testutil.TestConfig(), checker, accounts), RoleMiddleware(roles...), func(c *gin.Context) {
		c.String(http.StatusOK, util.GetUserFromContext(c).Email)
	})
	return r
}

func tokenFor(t *testing.T, role model.UserRole) (string, *util.Claims) {
	t.Helper()
	return tokenForID(t, accountID(role), role)
}

func tokenForID(t *testing.T, id uint, role model.UserRole) (string, *util.Claims) {
	t.Helper()
	secret := testutil.TestConfig().JWT.Secret
	token, err := util.GenerateJWT(&model.User{ID: id, Email: string(role) + "@example.com", Role: role}, secret, time.Hour)
	require.NoError(t, err)
	claims, err := util.ParseJWT(token, secret)
	require.NoError(t, err)
	return token, claims
}

func do(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	studentToken, studentClaims := tokenFor(t, model.RoleStudent)
	adminToken, _ := tokenFor(t, model.RoleAdmin)
	analystToken, _ := tokenFor(t, model.RoleAnalyst)

	deletedToken, _ := tokenForID(t, 99, model.RoleStudent)
	// 账号 3 现在是分析师，旧令牌仍声称是学生
	staleRoleToken, _ := tokenForID(t, 3, model.RoleStudent)

	tests := []struct {
		name     string
		checker  RevocationChecker
		accounts AccountLookup
		header   string
		want     int
	}{
		{"missing header", nil, knownAccounts, "", http.StatusUnauthorized},
		{"not bearer", nil, knownAccounts, "Token " + studentToken, http.StatusUnauthorized},
		{"garbage token", nil, knownAccounts, "Bearer abc.def.ghi", http.StatusUnauthorized},
		{"matching role", nil, knownAccounts, "Bearer " + studentToken, http.StatusOK},
		{"admin bypass", nil, knownAccounts, "Bearer " + adminToken, http.StatusOK},
		{"other role", nil, knownAccounts, "Bearer " + analystToken, http.StatusForbidden},
		{"revoked token", revokedSet{studentClaims.ID: true}, knownAccounts, "Bearer " + studentToken, http.StatusUnauthorized},
		{"revocation lookup fails", failingChecker{}, knownAccounts, "Bearer " + studentToken, http.StatusInternalServerError},
		{"deleted account", nil, knownAccounts, "Bearer " + deletedToken, http.StatusUnauthorized},
		{"role changed since issue", nil, knownAccounts, "Bearer " + staleRoleToken, http.StatusUnauthorized},
		{"account lookup fails", nil, failingLookup{}, "Bearer " + studentToken, http.StatusInternalServerError},
		{"no account lookup", nil, nil, "Bearer " + deletedToken, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newRouter(tt.checker, tt.accounts, model.RoleStudent), tt.header)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestAuthMiddleware_SetsClaims(t *testing.T) {
	token, _ := tokenFor(t, model.RoleStudent)
	w := do(newRouter(revokedSet{}, knownAccounts, model.RoleStudent), "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "student@example.com", w.Body.String())
}

func TestRoleMiddleware_NoClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RoleMiddleware(model.RoleStudent), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
