package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"buyingbd_storefront/internal/api/dto"
	"buyingbd_storefront/internal/middleware"
	"buyingbd_storefront/internal/service"
)

type AuthController struct {
	sessions    *service.SessionRegistry
	authService *service.AuthService
}

func NewAuthController(sessions *service.SessionRegistry, authService *service.AuthService) *AuthController {
	return &AuthController{sessions: sessions, authService: authService}
}

// Login
// @Summary 登录
// @Description 管理员凭据得到管理员身份并返回令牌对；其他任意非空凭据得到顾客身份（不签发令牌）
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "邮箱与密码"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]interface{} "参数错误"
// @Router /api/auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	front, ok := storefrontOf(c, ctrl.sessions)
	if !ok {
		return
	}

	user, err := front.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		serviceError(c, err)
		return
	}

	resp := dto.LoginResponse{User: user, View: string(front.Snapshot().View)}
	if user.IsAdmin() {
		tokens, err := ctrl.authService.IssueTokens(user, middleware.GetDeviceID(c))
		if err != nil {
			serviceError(c, err)
			return
		}
		resp.AccessToken = tokens.AccessToken
		resp.RefreshToken = tokens.RefreshToken
		resp.ExpiresAt = &tokens.ExpiresAt
	}

	success(c, http.StatusOK, resp)
}

// Logout
// @Summary 退出登录
// @Description 清空当前用户并回到首页；已签发的令牌在设备状态中失去管理员身份后无法再操作后台
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	front, ok := storefrontOf(c, ctrl.sessions)
	if !ok {
		return
	}
	if err := front.Logout(c.Request.Context()); err != nil {
		serviceError(c, err)
		return
	}
	success(c, http.StatusOK, gin.H{"view": front.Snapshot().View})
}

// RefreshToken
// @Summary 刷新令牌
// @Description Refresh Token 只能在签发它的设备上使用
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body dto.RefreshTokenRequest true "Refresh Token"
// @Success 200 {object} dto.RefreshTokenResponse
// @Failure 401 {object} map[string]interface{} "Token 无效"
// @Router /api/auth/refresh [post]
func (ctrl *AuthController) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	tokens, err := ctrl.authService.Refresh(req.RefreshToken, middleware.GetDeviceID(c))
	if err != nil {
		serviceError(c, err)
		return
	}
	success(c, http.StatusOK, tokens)
}
