package dto

import (
	"time"

	"buyingbd_storefront/internal/model"
)

// ==================== 页面 ====================

// NavigateRequest 切换页面
type NavigateRequest struct {
	View model.ViewState `json:"view" binding:"required"`
}

// AdminTabRequest 切换后台标签
type AdminTabRequest struct {
	Tab model.AdminTab `json:"tab" binding:"required"`
}

// ==================== 顾问 ====================

// AskRequest 向顾问提问
type AskRequest struct {
	Query string `json:"query" binding:"required,max=2000"`
}

// AskResponse 顾问回答；失败时 Reply 为兜底文案，ErrorKind 给出分类
type AskResponse struct {
	Reply     model.ChatMessage   `json:"reply"`
	ErrorKind string              `json:"error_kind,omitempty"`
	History   []model.ChatMessage `json:"history"`
}

// AdvisorCallView 单次顾问调用记录（管理端）
type AdvisorCallView struct {
	ID            int64     `json:"id"`
	Transport     string    `json:"transport"`
	ModelName     string    `json:"model_name"`
	QueryChars    int       `json:"query_chars"`
	ResponseChars int       `json:"response_chars"`
	DurationMs    int64     `json:"duration_ms"`
	Status        string    `json:"status"`
	ErrorKind     string    `json:"error_kind,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
