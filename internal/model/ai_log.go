package model

// AICallLog 顾问调用日志
type AICallLog struct {
	BaseModel

	// 关联
	DeviceID string `gorm:"size:64;index;comment:设备ID"`

	// 调用信息
	Transport string `gorm:"size:16;comment:调用方式(sdk/rest)"`
	ModelName string `gorm:"size:64;comment:模型名称"`

	// 用量统计
	QueryChars    int `gorm:"default:0;comment:问题字符数"`
	CatalogItems  int `gorm:"default:0;comment:上下文商品数"`
	ResponseChars int `gorm:"default:0;comment:回答字符数"`

	// 性能
	DurationMs int64 `gorm:"comment:耗时(毫秒)"`

	// 状态
	Status    string `gorm:"size:32;index;default:success;comment:状态(success/failed)"`
	ErrorKind string `gorm:"size:32;comment:失败分类"`
	ErrorMsg  string `gorm:"size:1024;comment:错误信息"`
}

func (AICallLog) TableName() string {
	return "ai_call_logs"
}

// ==================== 状态常量 ====================

const (
	AICallStatusSuccess = "success"
	AICallStatusFailed  = "failed"
)
