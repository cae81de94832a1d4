package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buyingbd_storefront/internal/middleware"
	"buyingbd_storefront/internal/model"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	svc, err := NewAuthService(DefaultAdminEmail, DefaultAdminPassword)
	require.NoError(t, err)
	return svc
}

func TestAuthService_IsAdmin(t *testing.T) {
	svc := newTestAuthService(t)

	tests := []struct {
		name     string
		email    string
		password string
		want     bool
	}{
		{"正确凭据", "admin@buyingbd.com", "admin123", true},
		{"密码错误", "admin@buyingbd.com", "admin1234", false},
		{"邮箱大小写不同", "Admin@buyingbd.com", "admin123", false},
		{"其他邮箱", "ops@buyingbd.com", "admin123", false},
		{"空密码", "admin@buyingbd.com", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.IsAdmin(tt.email, tt.password))
		})
	}
}

func TestNewAuthService_RequiresCredentials(t *testing.T) {
	_, err := NewAuthService("", "x")
	assert.Error(t, err)
	_, err = NewAuthService("a@b.bd", "")
	assert.Error(t, err)
}

func TestAuthService_IssueTokens(t *testing.T) {
	svc := newTestAuthService(t)
	admin := &model.User{ID: AdminUserID, Email: DefaultAdminEmail, Role: model.UserRoleAdmin, Name: AdminUserName}

	tokens, err := svc.IssueTokens(admin, "dev-1")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.False(t, tokens.ExpiresAt.IsZero())

	claims, err := middleware.ParseToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "access", claims.Subject)
	assert.Equal(t, AdminUserID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "dev-1", claims.DeviceID)

	customer := &model.User{ID: "u1", Email: "c@d.bd", Role: model.UserRoleCustomer}
	_, err = svc.IssueTokens(customer, "dev-1")
	assert.ErrorIs(t, err, ErrTokenNotIssued)

	_, err = svc.IssueTokens(nil, "dev-1")
	assert.ErrorIs(t, err, ErrTokenNotIssued)
}

func TestAuthService_Refresh(t *testing.T) {
	svc := newTestAuthService(t)
	admin := &model.User{ID: AdminUserID, Email: DefaultAdminEmail, Role: model.UserRoleAdmin}

	tokens, err := svc.IssueTokens(admin, "dev-1")
	require.NoError(t, err)

	tests := []struct {
		name     string
		token    string
		deviceID string
		wantErr  error
	}{
		{"同一设备刷新", tokens.RefreshToken, "dev-1", nil},
		{"其他设备", tokens.RefreshToken, "dev-2", ErrInvalidToken},
		{"使用 Access Token", tokens.AccessToken, "dev-1", ErrInvalidToken},
		{"无效字符串", "not-a-token", "dev-1", ErrInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := svc.Refresh(tt.token, tt.deviceID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			claims, err := middleware.ParseToken(res.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, tt.deviceID, claims.DeviceID)
		})
	}
}
