package task

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"buyingbd_storefront/internal/middleware"
	"buyingbd_storefront/internal/service"
)

// DefaultSweepSpec 默认每 5 分钟清理一次（含秒字段）
const DefaultSweepSpec = "0 */5 * * * *"

// SessionSweepTask 定时清理空闲设备状态与过期限流条目
type SessionSweepTask struct {
	registry *service.SessionRegistry
	limiter  *middleware.CooldownLimiter
	idle     time.Duration
	spec     string
	log      *zap.Logger
	Cron     *cron.Cron
}

// NewSessionSweepTask limiter 可为 nil
func NewSessionSweepTask(registry *service.SessionRegistry, limiter *middleware.CooldownLimiter, idle time.Duration, spec string, log *zap.Logger) *SessionSweepTask {
	if spec == "" {
		spec = DefaultSweepSpec
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &SessionSweepTask{
		registry: registry,
		limiter:  limiter,
		idle:     idle,
		spec:     spec,
		log:      log,
		Cron:     cron.New(cron.WithSeconds()), // 支持秒级控制
	}
}

// Start 注册并启动定时任务
func (t *SessionSweepTask) Start() error {
	if _, err := t.Cron.AddFunc(t.spec, t.RunOnce); err != nil {
		return fmt.Errorf("无法启动设备状态清理任务: %w", err)
	}

	t.Cron.Start()
	t.log.Info("设备状态清理任务已启动", zap.String("spec", t.spec), zap.Duration("idle", t.idle))
	return nil
}

// RunOnce 执行一次清理
func (t *SessionSweepTask) RunOnce() {
	removed := t.registry.Sweep(t.idle)

	pruned := 0
	if t.limiter != nil {
		pruned = t.limiter.Prune(t.idle)
	}

	t.log.Debug("[Cron] 清理完成",
		zap.Int("sessions_removed", removed),
		zap.Int("limiter_pruned", pruned),
		zap.Int("sessions_active", t.registry.Len()),
	)
}

// Stop 停止调度并等待正在执行的任务结束
func (t *SessionSweepTask) Stop(ctx context.Context) {
	done := t.Cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		t.log.Warn("等待清理任务结束超时")
	}
}
