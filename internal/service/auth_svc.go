package service

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"buyingbd_storefront/internal/api/dto"
	"buyingbd_storefront/internal/middleware"
	"buyingbd_storefront/internal/model"
)

// ==================== AuthService 认证服务 ====================

// 内置管理员凭据
const (
	DefaultAdminEmail    = "admin@buyingbd.com"
	DefaultAdminPassword = "admin123"
)

// AuthService 校验管理员凭据并签发令牌
type AuthService struct {
	adminEmail string
	adminHash  []byte
}

// NewAuthService 启动时对管理员密码做 bcrypt，之后只保留哈希
func NewAuthService(adminEmail, adminPassword string) (*AuthService, error) {
	if adminEmail == "" || adminPassword == "" {
		return nil, errors.New("管理员账号不能为空")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("生成管理员密码哈希失败: %w", err)
	}
	return &AuthService{adminEmail: adminEmail, adminHash: hash}, nil
}

// IsAdmin 邮箱完全一致且密码匹配
func (s *AuthService) IsAdmin(email, password string) bool {
	if email != s.adminEmail {
		return false
	}
	return bcrypt.CompareHashAndPassword(s.adminHash, []byte(password)) == nil
}

// IssueTokens 仅为管理员签发，令牌绑定设备
func (s *AuthService) IssueTokens(user *model.User, deviceID string) (*dto.RefreshTokenResponse, error) {
	if !user.IsAdmin() {
		return nil, ErrTokenNotIssued
	}

	accessToken, refreshToken, err := middleware.GenerateTokenPair(middleware.TokenSubject{
		UserID:   user.ID,
		Email:    user.Email,
		Role:     string(user.Role),
		DeviceID: deviceID,
	})
	if err != nil {
		return nil, err
	}

	cfg := middleware.GetJWTConfig()
	return &dto.RefreshTokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(cfg.AccessTokenTTL),
	}, nil
}

// Refresh 用 Refresh Token 换新令牌对，设备必须一致
func (s *AuthService) Refresh(refreshToken, deviceID string) (*dto.RefreshTokenResponse, error) {
	claims, err := middleware.ParseToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Subject != "refresh" || claims.DeviceID != deviceID {
		return nil, ErrInvalidToken
	}

	user := &model.User{ID: claims.UserID, Email: claims.Email, Role: model.UserRole(claims.Role)}
	return s.IssueTokens(user, deviceID)
}

var (
	ErrInvalidToken   = errors.New("Token 无效")
	ErrTokenNotIssued = errors.New("仅管理员可获取令牌")
)
