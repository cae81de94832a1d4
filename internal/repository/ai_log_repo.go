package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"buyingbd_storefront/internal/model"
)

// ==================== 仓储接口 ====================

// AICallLogRepository 顾问调用日志仓储接口
type AICallLogRepository interface {
	Create(ctx context.Context, log *model.AICallLog) error
	GetByID(ctx context.Context, id int64) (*model.AICallLog, error)
	ListByDevice(ctx context.Context, deviceID string, limit int) ([]model.AICallLog, error)

	// 统计查询
	GetUsage(ctx context.Context, startTime, endTime time.Time) (*AIUsageStats, error)
	GetUsageByDevice(ctx context.Context, deviceID string) (*AIUsageStats, error)
	GetDailyUsage(ctx context.Context, startDate, endDate time.Time) ([]DailyUsageStats, error)

	// 保留期清理
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// ==================== 统计结构 ====================

// AIUsageStats 顾问用量统计
type AIUsageStats struct {
	TotalCalls         int64   `json:"total_calls"`
	SDKCalls           int64   `json:"sdk_calls"`
	RESTCalls          int64   `json:"rest_calls"`
	TotalQueryChars    int64   `json:"total_query_chars"`
	TotalResponseChars int64   `json:"total_response_chars"`
	AvgDurationMs      float64 `json:"avg_duration_ms"`
	SuccessCount       int64   `json:"success_count"`
	FailedCount        int64   `json:"failed_count"`
}

// DailyUsageStats 每日用量统计
type DailyUsageStats struct {
	Date            string `json:"date"`
	TotalCalls      int64  `json:"total_calls"`
	FailedCount     int64  `json:"failed_count"`
	TotalQueryChars int64  `json:"total_query_chars"`
}

const usageSelect = `
	COUNT(*) as total_calls,
	COALESCE(SUM(CASE WHEN transport = 'sdk' THEN 1 ELSE 0 END), 0) as sdk_calls,
	COALESCE(SUM(CASE WHEN transport = 'rest' THEN 1 ELSE 0 END), 0) as rest_calls,
	COALESCE(SUM(query_chars), 0) as total_query_chars,
	COALESCE(SUM(response_chars), 0) as total_response_chars,
	COALESCE(AVG(duration_ms), 0) as avg_duration_ms,
	COALESCE(SUM(CASE WHEN status = 'success' THEN 1 ELSE 0 END), 0) as success_count,
	COALESCE(SUM(CASE WHEN status = 'failed' THEN 1 ELSE 0 END), 0) as failed_count
`

// ==================== 仓储实现 ====================

type aiCallLogRepo struct {
	db *gorm.DB
}

// NewAICallLogRepository 创建顾问调用日志仓储
func NewAICallLogRepository(db *gorm.DB) AICallLogRepository {
	return &aiCallLogRepo{db: db}
}

func (r *aiCallLogRepo) Create(ctx context.Context, log *model.AICallLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *aiCallLogRepo) GetByID(ctx context.Context, id int64) (*model.AICallLog, error) {
	var log model.AICallLog
	if err := r.db.WithContext(ctx).First(&log, id).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (r *aiCallLogRepo) ListByDevice(ctx context.Context, deviceID string, limit int) ([]model.AICallLog, error) {
	var logs []model.AICallLog
	query := r.db.WithContext(ctx).Where("device_id = ?", deviceID).Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&logs).Error
	return logs, err
}

func (r *aiCallLogRepo) GetUsage(ctx context.Context, startTime, endTime time.Time) (*AIUsageStats, error) {
	var stats AIUsageStats

	query := r.db.WithContext(ctx).Model(&model.AICallLog{})
	if !startTime.IsZero() {
		query = query.Where("created_at >= ?", startTime)
	}
	if !endTime.IsZero() {
		query = query.Where("created_at <= ?", endTime)
	}

	err := query.Select(usageSelect).Scan(&stats).Error
	return &stats, err
}

func (r *aiCallLogRepo) GetUsageByDevice(ctx context.Context, deviceID string) (*AIUsageStats, error) {
	var stats AIUsageStats

	err := r.db.WithContext(ctx).Model(&model.AICallLog{}).
		Where("device_id = ?", deviceID).
		Select(usageSelect).
		Scan(&stats).Error

	return &stats, err
}

func (r *aiCallLogRepo) GetDailyUsage(ctx context.Context, startDate, endDate time.Time) ([]DailyUsageStats, error) {
	var stats []DailyUsageStats

	err := r.db.WithContext(ctx).Model(&model.AICallLog{}).
		Where("created_at >= ? AND created_at <= ?", startDate, endDate).
		Select(`
			DATE(created_at) as date,
			COUNT(*) as total_calls,
			COALESCE(SUM(CASE WHEN status = 'failed' THEN 1 ELSE 0 END), 0) as failed_count,
			COALESCE(SUM(query_chars), 0) as total_query_chars
		`).
		Group("DATE(created_at)").
		Order("date ASC").
		Scan(&stats).Error

	return stats, err
}

// DeleteBefore 物理删除 cutoff 之前的日志
func (r *aiCallLogRepo) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Unscoped().
		Where("created_at < ?", cutoff).
		Delete(&model.AICallLog{})
	return result.RowsAffected, result.Error
}
