package middleware

import (
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderDeviceID 设备标识请求头，每个设备拥有独立的店面状态
const HeaderDeviceID = "X-Device-ID"

// ContextKeyDeviceID gin.Context 中的设备 ID
const ContextKeyDeviceID = "device_id"

var deviceIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ValidDeviceID 只允许字母数字、下划线、连字符
func ValidDeviceID(id string) bool {
	return deviceIDPattern.MatchString(id)
}

// DeviceIdentity 读取设备 ID，缺失或非法时生成新的，并回写到响应头
func DeviceIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		deviceID := c.GetHeader(HeaderDeviceID)
		if !ValidDeviceID(deviceID) {
			deviceID = uuid.NewString()
		}

		c.Set(ContextKeyDeviceID, deviceID)
		c.Header(HeaderDeviceID, deviceID)
		c.Next()
	}
}

// GetDeviceID 从 Context 获取设备 ID
func GetDeviceID(c *gin.Context) string {
	if id, exists := c.Get(ContextKeyDeviceID); exists {
		return id.(string)
	}
	return ""
}
