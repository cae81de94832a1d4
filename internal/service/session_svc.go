package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// bootstrapTimeout 单次加载设备数据的上限
const bootstrapTimeout = 30 * time.Second

// SessionRegistry 设备 ID -> 店面状态，首次访问时创建并加载
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*session

	kv   KVStore
	opts StorefrontOptions
	log  *zap.Logger
	now  func() time.Time
}

type session struct {
	front      *Storefront
	ready      chan struct{} // 加载完成后关闭
	err        error
	lastAccess time.Time
}

func NewSessionRegistry(kv KVStore, opts StorefrontOptions) *SessionRegistry {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &SessionRegistry{
		sessions: make(map[string]*session),
		kv:       kv,
		opts:     opts,
		log:      log,
		now:      now,
	}
}

// Get 获取设备的店面状态，同一设备的并发首次访问只加载一次
func (r *SessionRegistry) Get(ctx context.Context, deviceID string) (*Storefront, error) {
	r.mu.Lock()
	sess, ok := r.sessions[deviceID]
	if ok {
		sess.lastAccess = r.now()
		r.mu.Unlock()

		select {
		case <-sess.ready:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		if sess.err != nil {
			return nil, sess.err
		}
		return sess.front, nil
	}

	sess = &session{
		front:      NewStorefront(deviceID, r.kv, r.opts),
		ready:      make(chan struct{}),
		lastAccess: r.now(),
	}
	r.sessions[deviceID] = sess
	r.mu.Unlock()

	// 加载结果由所有等待者共享，不随首个请求取消
	loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), bootstrapTimeout)
	sess.err = sess.front.Bootstrap(loadCtx)
	cancel()
	close(sess.ready)

	if sess.err != nil {
		// 加载失败不缓存，下次重试
		r.mu.Lock()
		if r.sessions[deviceID] == sess {
			delete(r.sessions, deviceID)
		}
		r.mu.Unlock()
		return nil, sess.err
	}
	return sess.front, nil
}

// Drop 从内存移除设备状态，持久化集合不受影响
func (r *SessionRegistry) Drop(deviceID string) {
	r.mu.Lock()
	delete(r.sessions, deviceID)
	r.mu.Unlock()
}

// Len 当前内存中的设备数
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep 移除超过 idle 未访问的设备状态，返回移除数量
// 顾问调用进行中的状态保留
func (r *SessionRegistry) Sweep(idle time.Duration) int {
	cutoff := r.now().Add(-idle)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, sess := range r.sessions {
		if !sess.lastAccess.Before(cutoff) {
			continue
		}
		select {
		case <-sess.ready:
		default:
			continue // 仍在加载
		}
		if sess.front.AdvisorBusy() {
			continue
		}
		delete(r.sessions, id)
		removed++
	}

	if removed > 0 {
		r.log.Info("清理空闲设备状态", zap.Int("removed", removed), zap.Int("remaining", len(r.sessions)))
	}
	return removed
}
