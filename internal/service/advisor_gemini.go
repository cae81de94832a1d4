package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"buyingbd_storefront/pkg/utils"
)

// ==================== SDK 方式 ====================

// SDKGenerator 通过 genai SDK 调用 Gemini
type SDKGenerator struct {
	client *genai.Client
	model  string
}

func NewSDKGenerator(ctx context.Context, apiKey, modelName string) (*SDKGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("Gemini 初始化失败: %w", err)
	}
	return &SDKGenerator{client: client, model: modelName}, nil
}

func (g *SDKGenerator) Transport() string { return TransportSDK }
func (g *SDKGenerator) ModelName() string { return g.model }

func (g *SDKGenerator) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	modelAI := g.client.GenerativeModel(g.model)
	modelAI.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.SystemInstruction)}}
	modelAI.SetTemperature(req.Temperature)

	resp, err := modelAI.GenerateContent(ctx, genai.Text(req.Query))
	if err != nil {
		return "", classifySDKError(err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", &AdvisorError{Kind: AdvisorEmpty, Err: errors.New("AI 返回为空")}
	}

	// 拼接所有文本 Part
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String(), nil
}

func (g *SDKGenerator) Close() error {
	return g.client.Close()
}

func classifySDKError(err error) error {
	var blocked *genai.BlockedError
	if errors.As(err, &blocked) {
		return &AdvisorError{Kind: AdvisorBlocked, Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &AdvisorError{Kind: AdvisorNetwork, Err: err}
	}

	switch status.Code(err) {
	case codes.ResourceExhausted:
		return &AdvisorError{Kind: AdvisorRateLimited, Err: err}
	case codes.Unavailable, codes.DeadlineExceeded:
		return &AdvisorError{Kind: AdvisorNetwork, Err: err}
	case codes.Unauthenticated, codes.PermissionDenied:
		return &AdvisorError{Kind: AdvisorNotConfigured, Err: err}
	}
	return &AdvisorError{Kind: AdvisorUpstream, Err: err}
}

// ==================== REST 方式 ====================

// RESTGenerator 直接调用 generateContent 接口
type RESTGenerator struct {
	client  *resty.Client
	baseURL string
	apiKey  string
	model   string
}

func NewRESTGenerator(baseURL, apiKey, modelName string, timeout time.Duration) *RESTGenerator {
	return &RESTGenerator{
		client:  utils.NewHTTPClient(utils.HTTPClientOptions{Timeout: timeout}),
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   modelName,
	}
}

// WithProxy 经代理访问接口，空值忽略
func (g *RESTGenerator) WithProxy(proxyURL string) *RESTGenerator {
	if proxyURL != "" {
		g.client.SetProxy(proxyURL)
	}
	return g
}

func (g *RESTGenerator) Transport() string { return TransportREST }
func (g *RESTGenerator) ModelName() string { return g.model }

type restPart struct {
	Text string `json:"text"`
}

type restContent struct {
	Role  string     `json:"role,omitempty"`
	Parts []restPart `json:"parts"`
}

type restGenerateRequest struct {
	SystemInstruction restContent   `json:"systemInstruction"`
	Contents          []restContent `json:"contents"`
	GenerationConfig  struct {
		Temperature float32 `json:"temperature"`
	} `json:"generationConfig"`
}

type restGenerateResponse struct {
	Candidates []struct {
		Content      restContent `json:"content"`
		FinishReason string      `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
}

func (g *RESTGenerator) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	body := restGenerateRequest{
		SystemInstruction: restContent{Parts: []restPart{{Text: req.SystemInstruction}}},
		Contents:          []restContent{{Role: "user", Parts: []restPart{{Text: req.Query}}}},
	}
	body.GenerationConfig.Temperature = req.Temperature

	url := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, g.model)

	var res restGenerateResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-goog-api-key", g.apiKey).
		SetBody(body).
		SetResult(&res).
		Post(url)
	if err != nil {
		return "", &AdvisorError{Kind: AdvisorNetwork, Err: fmt.Errorf("请求中断: %w", err)}
	}

	switch code := resp.StatusCode(); {
	case code == http.StatusTooManyRequests:
		return "", &AdvisorError{Kind: AdvisorRateLimited, Err: fmt.Errorf("Gemini API 错误 [%d]: %s", code, resp.String())}
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return "", &AdvisorError{Kind: AdvisorNotConfigured, Err: fmt.Errorf("Gemini API 错误 [%d]: %s", code, resp.String())}
	case code != http.StatusOK:
		return "", &AdvisorError{Kind: AdvisorUpstream, Err: fmt.Errorf("Gemini API 错误 [%d]: %s", code, resp.String())}
	}

	if res.PromptFeedback.BlockReason != "" {
		return "", &AdvisorError{Kind: AdvisorBlocked, Err: fmt.Errorf("提示被拦截: %s", res.PromptFeedback.BlockReason)}
	}
	if len(res.Candidates) == 0 {
		return "", &AdvisorError{Kind: AdvisorEmpty, Err: errors.New("无生成结果")}
	}

	candidate := res.Candidates[0]
	if candidate.FinishReason == "SAFETY" || candidate.FinishReason == "PROHIBITED_CONTENT" {
		return "", &AdvisorError{Kind: AdvisorBlocked, Err: fmt.Errorf("回答被拦截: %s", candidate.FinishReason)}
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}
