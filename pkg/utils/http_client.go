package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClientOptions 出站客户端选项
type HTTPClientOptions struct {
	Timeout   time.Duration
	ProxyURL  string // 为空则直连
	UserAgent string
	Debug     bool
}

// NewHTTPClient 创建配置好代理、超时与 UA 的 Resty 客户端
// 所有对外请求统一从这里创建
func NewHTTPClient(opts HTTPClientOptions) *resty.Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 20 * time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "BuyingBD-Storefront/1.0"
	}

	client := resty.New().
		SetDebug(opts.Debug).
		SetTimeout(opts.Timeout).
		SetHeader("User-Agent", opts.UserAgent)

	if opts.ProxyURL != "" {
		client.SetProxy(opts.ProxyURL)
	}
	return client
}
