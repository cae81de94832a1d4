package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"buyingbd_storefront/internal/middleware"
	"buyingbd_storefront/internal/service"
)

// ==================== 统一响应 ====================

func success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"code":    0,
		"message": "success",
		"data":    data,
	})
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"code":    status,
		"message": message,
	})
}

func badRequest(c *gin.Context, err error) {
	fail(c, http.StatusBadRequest, "参数错误: "+err.Error())
}

// statusOf 业务错误 -> HTTP 状态码
func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrForbidden), errors.Is(err, service.ErrTokenNotIssued):
		return http.StatusForbidden
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrVariantNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrApplicationNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrApplicationDecided), errors.Is(err, service.ErrAdvisorBusy):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidView),
		errors.Is(err, service.ErrInvalidAdminTab),
		errors.Is(err, service.ErrNotInAdmin),
		errors.Is(err, service.ErrInvalidModal),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrInvalidOrderStatus),
		errors.Is(err, service.ErrInvalidDecision),
		errors.Is(err, service.ErrInvalidProductName),
		errors.Is(err, service.ErrInvalidPrice),
		errors.Is(err, service.ErrEmptyQuery):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func serviceError(c *gin.Context, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		if errors.Is(err, service.ErrCorruptRecord) {
			fail(c, status, "存储数据损坏，请联系管理员")
			return
		}
		fail(c, status, "服务器错误")
		return
	}
	fail(c, status, err.Error())
}

// ==================== 设备状态 ====================

// storefrontOf 取当前设备的店面状态，失败时已写响应
func storefrontOf(c *gin.Context, sessions *service.SessionRegistry) (*service.Storefront, bool) {
	front, err := sessions.Get(c.Request.Context(), middleware.GetDeviceID(c))
	if err != nil {
		serviceError(c, err)
		return nil, false
	}
	return front, true
}
