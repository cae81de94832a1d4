package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ==================== 管理操作审计 ====================

// AdminAudit 记录管理端写操作，需在 JWTAuth 之后使用
func AdminAudit(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "GET" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("user_id", GetUserID(c)),
			zap.String("role", GetUserRole(c)),
			zap.String("device", GetDeviceID(c)),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if claims := GetUserClaims(c); claims != nil && claims.ExpiresAt != nil {
			fields = append(fields, zap.Time("token_expires_at", claims.ExpiresAt.Time))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		log.Info("管理操作", fields...)
	}
}
