package task

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"buyingbd_storefront/internal/repository"
)

// AILogRetentionTask 顾问调用日志保留期清理
type AILogRetentionTask struct {
	repo      repository.AICallLogRepository
	retention time.Duration
	interval  time.Duration
	log       *zap.Logger
	now       func() time.Time

	stopCh  chan struct{}
	wg      sync.WaitGroup
	running bool
	mu      sync.Mutex
}

// RetentionOption 任务选项
type RetentionOption func(*AILogRetentionTask)

// WithRetention 设置保留时长
func WithRetention(d time.Duration) RetentionOption {
	return func(t *AILogRetentionTask) {
		if d > 0 {
			t.retention = d
		}
	}
}

// WithRetentionInterval 设置执行间隔
func WithRetentionInterval(d time.Duration) RetentionOption {
	return func(t *AILogRetentionTask) {
		if d > 0 {
			t.interval = d
		}
	}
}

// NewAILogRetentionTask 默认保留 90 天，每 24 小时执行一次
func NewAILogRetentionTask(repo repository.AICallLogRepository, log *zap.Logger, opts ...RetentionOption) *AILogRetentionTask {
	if log == nil {
		log = zap.NewNop()
	}
	t := &AILogRetentionTask{
		repo:      repo,
		retention: 90 * 24 * time.Hour,
		interval:  24 * time.Hour,
		log:       log,
		now:       time.Now,
		stopCh:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Start 启动任务，重复调用无效
func (t *AILogRetentionTask) Start() {
	t.mu.Lock()
	if t.running {
		t.mu.Unlock()
		return
	}
	t.running = true
	t.mu.Unlock()

	t.wg.Add(1)
	go t.run()

	t.log.Info("顾问日志清理任务已启动", zap.Duration("interval", t.interval), zap.Duration("retention", t.retention))
}

// Stop 停止任务
func (t *AILogRetentionTask) Stop() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	t.running = false
	t.mu.Unlock()

	close(t.stopCh)
	t.wg.Wait()
	t.log.Info("顾问日志清理任务已停止")
}

func (t *AILogRetentionTask) run() {
	defer t.wg.Done()

	// 启动时立即执行
	t.RunOnce()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			t.RunOnce()
		case <-t.stopCh:
			return
		}
	}
}

// RunOnce 删除超过保留期的日志，返回删除条数
func (t *AILogRetentionTask) RunOnce() int64 {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cutoff := t.now().Add(-t.retention)
	removed, err := t.repo.DeleteBefore(ctx, cutoff)
	if err != nil {
		t.log.Error("清理顾问日志失败", zap.Error(err))
		return 0
	}
	if removed > 0 {
		t.log.Info("已清理过期顾问日志", zap.Int64("removed", removed), zap.Time("cutoff", cutoff))
	}
	return removed
}
