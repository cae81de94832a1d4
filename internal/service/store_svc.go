package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gorm.io/gorm"

	"buyingbd_storefront/internal/repository"
)

// ==================== 持久化键 ====================

// 四个固定集合键，整集合覆盖写入
const (
	KeyProducts     = "bbd_db_products"
	KeyOrders       = "bbd_db_orders"
	KeyApplications = "bbd_db_vendors"
	KeyCurrentUser  = "bbd_db_user_v3"
)

// PersistedKeys 全部持久化键
var PersistedKeys = []string{KeyProducts, KeyOrders, KeyApplications, KeyCurrentUser}

// ==================== 接口定义 ====================

// KVStore 键值存储适配器
type KVStore interface {
	// Get 键不存在时 found=false 且 err=nil
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Purger 支持按前缀批量清理的存储
type Purger interface {
	Purge(ctx context.Context, prefix string) (int64, error)
}

// ==================== 配置 ====================

type StoreConfig struct {
	Provider    string // "memory" | "db" | "redis" | "s3"
	RedisURL    string
	RedisPrefix string
	S3          S3StoreConfig
}

// ==================== 工厂方法 ====================

// NewKVStore 按配置创建存储适配器，db 仅在 provider=db 时使用
func NewKVStore(ctx context.Context, cfg *StoreConfig, db *gorm.DB) (KVStore, error) {
	switch cfg.Provider {
	case "memory", "":
		return NewMemoryStore(), nil
	case "db":
		if db == nil {
			return nil, errors.New("db 存储需要数据库连接")
		}
		return NewDBStore(repository.NewKVRepository(db)), nil
	case "redis":
		return NewRedisStoreFromURL(ctx, cfg.RedisURL, cfg.RedisPrefix)
	case "s3":
		return NewS3Store(ctx, &cfg.S3)
	default:
		return nil, fmt.Errorf("不支持的存储提供者: %s", cfg.Provider)
	}
}

// ==================== 内存实现 ====================

type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	buf := make([]byte, len(value))
	copy(buf, value)

	m.mu.Lock()
	m.data[key] = buf
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Purge(_ context.Context, prefix string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			delete(m.data, k)
			n++
		}
	}
	return n, nil
}

// ==================== 数据库实现 ====================

// DBStore 基于 kv_records 表
type DBStore struct {
	repo repository.KVRepository
}

func NewDBStore(repo repository.KVRepository) *DBStore {
	return &DBStore{repo: repo}
}

func (s *DBStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.repo.Get(ctx, key)
}

func (s *DBStore) Set(ctx context.Context, key string, value []byte) error {
	return s.repo.Set(ctx, key, value)
}

func (s *DBStore) Delete(ctx context.Context, key string) error {
	return s.repo.Delete(ctx, key)
}

func (s *DBStore) Purge(ctx context.Context, prefix string) (int64, error) {
	return s.repo.DeleteByPrefix(ctx, prefix)
}

// ==================== 设备命名空间 ====================

// NamespacedStore 为每个设备加 "<device>:" 前缀
type NamespacedStore struct {
	inner     KVStore
	namespace string
}

func NewNamespacedStore(inner KVStore, namespace string) *NamespacedStore {
	return &NamespacedStore{inner: inner, namespace: namespace}
}

func (n *NamespacedStore) key(k string) string {
	return NamespaceKey(n.namespace, k)
}

func (n *NamespacedStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return n.inner.Get(ctx, n.key(key))
}

func (n *NamespacedStore) Set(ctx context.Context, key string, value []byte) error {
	return n.inner.Set(ctx, n.key(key), value)
}

func (n *NamespacedStore) Delete(ctx context.Context, key string) error {
	return n.inner.Delete(ctx, n.key(key))
}

// NamespaceKey device + ":" + key
func NamespaceKey(namespace, key string) string {
	return namespace + ":" + key
}

// ResetNamespace 删除设备的全部持久化集合，下次加载回落到种子数据
func ResetNamespace(ctx context.Context, store KVStore, namespace string) (int64, error) {
	if p, ok := store.(Purger); ok {
		return p.Purge(ctx, namespace+":")
	}
	ns := NewNamespacedStore(store, namespace)
	var n int64
	for _, k := range PersistedKeys {
		if err := ns.Delete(ctx, k); err != nil {
			return n, fmt.Errorf("删除 %s 失败: %w", k, err)
		}
		n++
	}
	return n, nil
}

// ==================== JSON 封装 ====================

// PersistedStore 以 JSON 整体读写集合
type PersistedStore struct {
	kv KVStore
}

func NewPersistedStore(kv KVStore) *PersistedStore {
	return &PersistedStore{kv: kv}
}

// Save 整体覆盖写入
func (p *PersistedStore) Save(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("序列化 %s 失败: %w", key, err)
	}
	if err := p.kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("写入 %s 失败: %w", key, err)
	}
	return nil
}

// Load 读取并反序列化到 out；键不存在或存储的是 null 时 found=false
func (p *PersistedStore) Load(ctx context.Context, key string, out interface{}) (bool, error) {
	data, found, err := p.kv.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("读取 %s 失败: %w", key, err)
	}
	if !found {
		return false, nil
	}
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, &CorruptRecordError{Key: key, Err: err}
	}
	return true, nil
}

// CorruptRecordError 存储内容无法解析
type CorruptRecordError struct {
	Key string
	Err error
}

func (e *CorruptRecordError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrCorruptRecord.Error(), e.Key, e.Err)
}

func (e *CorruptRecordError) Unwrap() error { return ErrCorruptRecord }

var (
	ErrCorruptRecord = errors.New("持久化记录已损坏")
)
