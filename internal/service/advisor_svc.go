package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"buyingbd_storefront/internal/model"
	"buyingbd_storefront/internal/repository"
)

// ==================== 配置 ====================

// AdvisorConfig 采购顾问配置
type AdvisorConfig struct {
	APIKey      string
	Model       string
	Transport   string // "sdk" | "rest"
	BaseURL     string // rest 方式的接口地址
	ProxyURL    string // rest 方式的出站代理
	Timeout     time.Duration
	Temperature float32
}

// 默认值
const (
	DefaultAdvisorModel       = "gemini-3-pro-preview"
	DefaultAdvisorBaseURL     = "https://generativelanguage.googleapis.com/v1beta"
	DefaultAdvisorTimeout     = 60 * time.Second
	DefaultAdvisorTemperature = 0.3

	TransportSDK  = "sdk"
	TransportREST = "rest"
)

func (c *AdvisorConfig) applyDefaults() {
	if c.Model == "" {
		c.Model = DefaultAdvisorModel
	}
	if c.Transport == "" {
		c.Transport = TransportSDK
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultAdvisorBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultAdvisorTimeout
	}
	if c.Temperature <= 0 {
		c.Temperature = DefaultAdvisorTemperature
	}
}

// ==================== 请求与结果 ====================

// AdviceRequest 一次提问
type AdviceRequest struct {
	DeviceID string
	Query    string
	Catalog  []model.Product
}

// Advice 顾问回答
type Advice struct {
	Text string
}

// AdvisorErrorKind 失败分类
type AdvisorErrorKind string

const (
	AdvisorNotConfigured AdvisorErrorKind = "not_configured"
	AdvisorNetwork       AdvisorErrorKind = "network"
	AdvisorRateLimited   AdvisorErrorKind = "rate_limited"
	AdvisorBlocked       AdvisorErrorKind = "blocked"
	AdvisorEmpty         AdvisorErrorKind = "empty"
	AdvisorUpstream      AdvisorErrorKind = "upstream"
)

// AdvisorError 带分类的顾问错误
type AdvisorError struct {
	Kind AdvisorErrorKind
	Err  error
}

func (e *AdvisorError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("advisor %s", e.Kind)
	}
	return fmt.Sprintf("advisor %s: %v", e.Kind, e.Err)
}

func (e *AdvisorError) Unwrap() error { return e.Err }

// AdvisorErrorKindOf 非顾问错误返回空
func AdvisorErrorKindOf(err error) AdvisorErrorKind {
	var ae *AdvisorError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}

// ==================== 生成器 ====================

// GenerationRequest 发给模型的内容
type GenerationRequest struct {
	SystemInstruction string
	Query             string
	Temperature       float32
}

// Generator 文本生成后端，错误需为 *AdvisorError
type Generator interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
	Transport() string
	ModelName() string
}

// NewGenerator 按配置创建生成器；未配置 API Key 时返回 nil
func NewGenerator(ctx context.Context, cfg *AdvisorConfig) (Generator, error) {
	cfg.applyDefaults()
	if cfg.APIKey == "" {
		return nil, nil
	}

	switch cfg.Transport {
	case TransportSDK:
		return NewSDKGenerator(ctx, cfg.APIKey, cfg.Model)
	case TransportREST:
		return NewRESTGenerator(cfg.BaseURL, cfg.APIKey, cfg.Model, cfg.Timeout).WithProxy(cfg.ProxyURL), nil
	default:
		return nil, fmt.Errorf("不支持的顾问调用方式: %s", cfg.Transport)
	}
}

// ==================== 服务 ====================

// AdvisorService 采购顾问
type AdvisorService struct {
	cfg         AdvisorConfig
	gen         Generator
	callLogRepo repository.AICallLogRepository
	log         *zap.Logger
}

// NewAdvisorService gen 为 nil 表示未配置；callLogRepo 可为 nil
func NewAdvisorService(cfg AdvisorConfig, gen Generator, callLogRepo repository.AICallLogRepository, log *zap.Logger) *AdvisorService {
	cfg.applyDefaults()
	if log == nil {
		log = zap.NewNop()
	}
	return &AdvisorService{
		cfg:         cfg,
		gen:         gen,
		callLogRepo: callLogRepo,
		log:         log,
	}
}

// Configured 是否可用
func (s *AdvisorService) Configured() bool {
	return s.gen != nil
}

// Advise 单次调用，不重试
func (s *AdvisorService) Advise(ctx context.Context, req AdviceRequest) (*Advice, error) {
	if s.gen == nil {
		return nil, &AdvisorError{Kind: AdvisorNotConfigured, Err: errors.New("Gemini API Key 未配置")}
	}

	instruction, err := BuildSystemInstruction(req.Catalog)
	if err != nil {
		return nil, &AdvisorError{Kind: AdvisorUpstream, Err: err}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	start := time.Now()
	text, err := s.gen.Generate(callCtx, GenerationRequest{
		SystemInstruction: instruction,
		Query:             req.Query,
		Temperature:       s.cfg.Temperature,
	})
	if err == nil && strings.TrimSpace(text) == "" {
		err = &AdvisorError{Kind: AdvisorEmpty, Err: errors.New("模型返回为空")}
	}
	if err != nil && AdvisorErrorKindOf(err) == "" {
		err = &AdvisorError{Kind: classifyContextError(err), Err: err}
	}

	s.recordCall(ctx, req, text, time.Since(start), err)

	if err != nil {
		return nil, err
	}
	return &Advice{Text: text}, nil
}

func classifyContextError(err error) AdvisorErrorKind {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return AdvisorNetwork
	}
	return AdvisorUpstream
}

// recordCall 写调用日志，失败只记录不影响结果
func (s *AdvisorService) recordCall(ctx context.Context, req AdviceRequest, text string, elapsed time.Duration, callErr error) {
	entry := &model.AICallLog{
		DeviceID:      req.DeviceID,
		Transport:     s.gen.Transport(),
		ModelName:     s.gen.ModelName(),
		QueryChars:    utf8.RuneCountInString(req.Query),
		CatalogItems:  len(req.Catalog),
		ResponseChars: utf8.RuneCountInString(text),
		DurationMs:    elapsed.Milliseconds(),
		Status:        model.AICallStatusSuccess,
	}
	fields := []zap.Field{
		zap.String("device", req.DeviceID),
		zap.String("transport", entry.Transport),
		zap.Int64("duration_ms", entry.DurationMs),
	}
	if callErr != nil {
		entry.Status = model.AICallStatusFailed
		entry.ErrorKind = string(AdvisorErrorKindOf(callErr))
		entry.ErrorMsg = truncate(callErr.Error(), 1024)
		s.log.Warn("顾问调用失败", append(fields, zap.String("kind", entry.ErrorKind), zap.Error(callErr))...)
	} else {
		s.log.Info("顾问调用完成", append(fields, zap.Int("response_chars", entry.ResponseChars))...)
	}

	if s.callLogRepo == nil {
		return
	}
	if err := s.callLogRepo.Create(context.WithoutCancel(ctx), entry); err != nil {
		s.log.Error("写入顾问调用日志失败", zap.Error(err))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	// 避免截断半个 UTF-8 字符
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// ==================== 提示词 ====================

type catalogVariant struct {
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discountPrice,omitempty"`
}

type catalogEntry struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Variants    []catalogVariant  `json:"variants"`
	Specs       map[string]string `json:"specs"`
}

// CatalogContext 目录上下文 JSON：id、名称、描述、变体(名称/价格/折扣价)、规格
func CatalogContext(products []model.Product) (string, error) {
	entries := make([]catalogEntry, 0, len(products))
	for _, p := range products {
		variants := make([]catalogVariant, 0, len(p.Variants))
		for _, v := range p.Variants {
			variants = append(variants, catalogVariant{Name: v.Name, Price: v.Price, DiscountPrice: v.DiscountPrice})
		}
		entries = append(entries, catalogEntry{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Variants:    variants,
			Specs:       p.Specs,
		})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(entries); err != nil {
		return "", fmt.Errorf("序列化商品目录失败: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

const systemInstructionTemplate = `আপনি 'Buying BD' (বাইয়িং বিডি) এর একজন বিশেষজ্ঞ ডিজিটাল প্রোডাক্ট কনসালট্যান্ট। বাইয়িং বিডি হলো সফটওয়্যার, সাবস্ক্রিপশন এবং ডিজিটাল অ্যাসেটের একটি প্রিমিয়াম মার্কেটপ্লেস।
আপনার কাজ হলো গ্রাহকদের সঠিক ডিজিটাল টুল খুঁজে পেতে সাহায্য করা, লাইসেন্সের শর্তাবলী ব্যাখ্যা করা এবং প্রয়োজনীয় পণ্যের পরামর্শ দেওয়া।

আমাদের বর্তমান ক্যাটালগ (JSON):
%s

নিয়মাবলী:
১. শুধুমাত্র ক্যাটালগে থাকা পণ্যের পরামর্শ দিন।
২. যদি গ্রাহক এমন কিছু চায় যা আমাদের কাছে নেই, তবে বিনয়ের সাথে সবচেয়ে কাছের বিকল্পটির পরামর্শ দিন।
৩. অত্যন্ত পেশাদার এবং সাহায্যকারী মনোভাব বজায় রাখুন।
৪. টেকনিক্যাল স্পেসিফিকেশন এবং লাইসেন্সের বিবরণ হাইলাইট করুন।
৫. অবশ্যই প্রমিত বাংলায় (Standard Bangla) উত্তর দিন।
৬. উত্তরের ফরম্যাটিং এর জন্য মার্কডাউন (Markdown) ব্যবহার করুন।`

// BuildSystemInstruction 固定的孟加拉语系统指令 + 当前目录
func BuildSystemInstruction(products []model.Product) (string, error) {
	catalog, err := CatalogContext(products)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(systemInstructionTemplate, catalog), nil
}
