package service

import (
	"context"
	"errors"
	"fmt"

	"quintet_backend/internal/config"
	"quintet_backend/internal/model"
	"quintet_backend/internal/repository"
	"quintet_backend/internal/util"
	"quintet_backend/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo  *repository.UserRepository
	Blacklist TokenBlacklist
	Cfg       *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, blacklist TokenBlacklist, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo:  userRepo,
		Blacklist: blacklist,
		Cfg:       cfg,
	}
}

func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func CheckPassword(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// register 写入账号及其档案，邮箱唯一
func (s *AuthService) register(ctx context.Context, user *model.User) error {
	exists, err := s.UserRepo.EmailExists(ctx, user.Email)
	if err != nil {
		return err
	}
	if exists {
		return util.ErrEmailRegistered
	}

	if err := s.UserRepo.Create(ctx, user); err != nil {
		if isDuplicateKey(err) {
			return util.ErrEmailRegistered
		}
		return err
	}
	return nil
}

func (s *AuthService) SignupStudent(ctx context.Context, req *model.StudentSignupRequest) (*model.User, error) {
	digest, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := model.NewStudentUser(req.Email, digest, &model.Student{
		Age:        req.Age,
		SkillLevel: req.SkillLevel,
		Category:   req.Category,
		Country:    req.Country,
	})
	if err != nil {
		return nil, err
	}

	if err := s.register(ctx, user); err != nil {
		return nil, err
	}
	logger.Log.Info("Student registered", zap.Uint("userID", user.ID), zap.Uint("studentID", user.Student.ID))
	return user, nil
}

func (s *AuthService) CreateInstructor(ctx context.Context, req *model.CreateInstructorRequest) (*model.User, error) {
	digest, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := model.NewInstructorUser(req.Email, digest, &model.Instructor{
		Name:      req.Name,
		Expertise: req.Expertise,
	})
	if err != nil {
		return nil, err
	}

	if err := s.register(ctx, user); err != nil {
		return nil, err
	}
	logger.Log.Info("Instructor created", zap.Uint("userID", user.ID), zap.Uint("instructorID", user.Instructor.ID))
	return user, nil
}

func (s *AuthService) CreateAnalyst(ctx context.Context, req *model.CreateAnalystRequest) (*model.User, error) {
	digest, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := model.NewStaffUser(req.Email, digest, model.RoleAnalyst)
	if err != nil {
		return nil, err
	}

	if err := s.register(ctx, user); err != nil {
		return nil, err
	}
	logger.Log.Info("Analyst created", zap.Uint("userID", user.ID))
	return user, nil
}

// Login 校验密码后还要求账号角色与登录入口一致
func (s *AuthService) Login(ctx context.Context, role model.UserRole, email, password string) (*model.LoginResponse, error) {
	user, err := s.UserRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInvalidCredentials
		}
		return nil, err
	}

	if !CheckPassword(user.Password, password) {
		return nil, util.ErrInvalidCredentials
	}
	if user.Role != role {
		return nil, util.ErrRoleMismatch
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}

	resp := &model.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.Cfg.JWT.ExpireTime.Seconds()),
		UserID:      user.ID,
		Role:        user.Role,
	}
	switch p := user.Profile().(type) {
	case *model.Student:
		resp.ProfileID = p.ID
	case *model.Instructor:
		resp.ProfileID = p.ID
	}
	return resp, nil
}

// Logout 将令牌加入黑名单直到其过期
func (s *AuthService) Logout(ctx context.Context, claims *util.Claims) error {
	if claims == nil || claims.ID == "" {
		return util.ErrUnauthorized
	}
	return s.Blacklist.Revoke(ctx, claims.ID, claims.TTL())
}

// EnsureAdmin 启动时创建配置中的管理员账号，已存在则跳过
func (s *AuthService) EnsureAdmin(ctx context.Context) error {
	email := s.Cfg.Admin.Email
	existing, err := s.UserRepo.FindByEmail(ctx, email)
	if err == nil {
		if existing.Role != model.RoleAdmin {
			return fmt.Errorf("admin email %s is registered with role %s", email, existing.Role)
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if s.Cfg.Admin.Password == "" {
		logger.Log.Warn("admin.password is empty, skipping admin bootstrap", zap.String("email", email))
		return nil
	}

	digest, err := HashPassword(s.Cfg.Admin.Password)
	if err != nil {
		return err
	}
	user, err := model.NewStaffUser(email, digest, model.RoleAdmin)
	if err != nil {
		return err
	}
	if err := s.register(ctx, user); err != nil {
		return err
	}
	logger.Log.Info("Admin account created", zap.String("email", email))
	return nil
}
