package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New 生产环境输出 JSON，其余输出带颜色的开发格式
func New(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return cfg.Build()
}
