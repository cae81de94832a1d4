package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buyingbd_storefront/internal/middleware"
	"buyingbd_storefront/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ==================== 请求构造辅助 ====================

const testDevice = "dev-test"

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func performRequest(r http.Handler, method, path string, body interface{}, headers ...string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderDeviceID, testDevice)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if out != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return env
}

type adminCreds struct{}

func (adminCreds) IsAdmin(email, password string) bool {
	return email == service.DefaultAdminEmail && password == service.DefaultAdminPassword
}

type replyAdvisor struct {
	text string
	err  error
}

func (a replyAdvisor) Advise(context.Context, service.AdviceRequest) (*service.Advice, error) {
	if a.err != nil {
		return nil, a.err
	}
	return &service.Advice{Text: a.text}, nil
}

func newTestSessions(advisor service.Advisor) *service.SessionRegistry {
	return service.NewSessionRegistry(service.NewMemoryStore(), service.StorefrontOptions{
		Admin:   adminCreds{},
		Advisor: advisor,
	})
}

// setupStorefrontRouter 不带 JWT 的前台路由
func setupStorefrontRouter(sessions *service.SessionRegistry) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.DeviceIdentity())

	sf := NewStorefrontController(sessions)
	order := NewOrderController(sessions)
	shop := NewShopController(sessions)
	advisor := NewAdvisorController(sessions)

	api := r.Group("/api")
	{
		api.GET("/state", sf.GetState)
		api.POST("/view", sf.Navigate)
		api.POST("/search", sf.Search)
		api.GET("/products", sf.ListProducts)
		api.GET("/products/recommended", sf.Recommended)
		api.GET("/products/:id", sf.GetProduct)
		api.POST("/modals/:name/open", sf.OpenModal)
		api.POST("/modals/:name/close", sf.CloseModal)

		api.GET("/cart", order.GetCart)
		api.POST("/cart/items", order.AddItem)
		api.DELETE("/cart/items/:productId/:variantId", order.RemoveItem)
		api.POST("/checkout", order.Checkout)

		api.POST("/vendor-applications", shop.SubmitApplication)

		api.POST("/advisor/ask", advisor.Ask)
		api.GET("/advisor/history", advisor.History)
	}
	return r
}

// ==================== 页面与目录 ====================

func TestStorefrontController_GetState(t *testing.T) {
	r := setupStorefrontRouter(newTestSessions(nil))

	w := performRequest(r, http.MethodGet, "/api/state", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testDevice, w.Header().Get(middleware.HeaderDeviceID))

	var state StateResponse
	env := decode(t, w, &state)
	assert.Equal(t, 0, env.Code)
	assert.Equal(t, "HOME", string(state.View))
	assert.Len(t, state.Products, 8)
	assert.Len(t, state.Orders, 1)
	assert.Empty(t, state.Notice)
}

func TestStorefrontController_Navigate(t *testing.T) {
	r := setupStorefrontRouter(newTestSessions(nil))

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
	}{
		{"目录页", gin.H{"view": "CATALOG"}, http.StatusOK},
		{"未登录进入后台", gin.H{"view": "ADMIN"}, http.StatusForbidden},
		{"未知页面", gin.H{"view": "SETTINGS"}, http.StatusBadRequest},
		{"缺少参数", gin.H{}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(r, http.MethodPost, "/api/view", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

func TestStorefrontController_Search(t *testing.T) {
	r := setupStorefrontRouter(newTestSessions(nil))

	w := performRequest(r, http.MethodPost, "/api/search", gin.H{"term": "gift"})
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Term  string `json:"term"`
		Total int    `json:"total"`
	}
	decode(t, w, &list)
	assert.Equal(t, "gift", list.Term)
	assert.Equal(t, 3, list.Total)

	// 列表沿用搜索词
	w = performRequest(r, http.MethodGet, "/api/products", nil)
	decode(t, w, &list)
	assert.Equal(t, 3, list.Total)
	assert.Equal(t, "gift", list.Term)
}

func TestStorefrontController_Products(t *testing.T) {
	r := setupStorefrontRouter(newTestSessions(nil))

	w := performRequest(r, http.MethodGet, "/api/products/recommended", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rec []struct {
		ID string `json:"id"`
	}
	decode(t, w, &rec)
	assert.Len(t, rec, 4)

	w = performRequest(r, http.MethodGet, "/api/products/gc-002", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, http.MethodGet, "/api/products/none", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStorefrontController_Modals(t *testing.T) {
	r := setupStorefrontRouter(newTestSessions(nil))

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"打开顾问", "/api/modals/advisor/open", http.StatusOK},
		{"关闭顾问", "/api/modals/advisor/close", http.StatusOK},
		{"新建商品需要管理员", "/api/modals/asset/open", http.StatusForbidden},
		{"未知弹窗", "/api/modals/popup/open", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(r, http.MethodPost, tt.path, nil)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

// ==================== 购物车与下单 ====================

func TestOrderController_CartAndCheckout(t *testing.T) {
	r := setupStorefrontRouter(newTestSessions(nil))

	w := performRequest(r, http.MethodPost, "/api/checkout", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code, "空购物车不能下单")

	for _, item := range []gin.H{
		{"productId": "gc-001", "variantId": "v1"},
		{"productId": "gc-001", "variantId": "v1"},
		{"productId": "gc-002", "variantId": "v1"},
	} {
		w = performRequest(r, http.MethodPost, "/api/cart/items", item)
		require.Equal(t, http.StatusOK, w.Code)
	}

	var cart struct {
		Items []struct {
			ProductID string `json:"productId"`
			Quantity  int    `json:"quantity"`
		} `json:"items"`
		Total float64 `json:"total"`
	}
	decode(t, performRequest(r, http.MethodGet, "/api/cart", nil), &cart)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.InDelta(t, 25.5, cart.Total, 1e-9)

	decode(t, performRequest(r, http.MethodDelete, "/api/cart/items/gc-002/v1", nil), &cart)
	require.Len(t, cart.Items, 1)
	assert.InDelta(t, 20.0, cart.Total, 1e-9)

	w = performRequest(r, http.MethodPost, "/api/checkout", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	var order struct {
		ID     string  `json:"id"`
		Total  float64 `json:"total"`
		Status string  `json:"status"`
	}
	decode(t, w, &order)
	assert.Regexp(t, `^ORD-\d{5}$`, order.ID)
	assert.InDelta(t, 20.0, order.Total, 1e-9)
	assert.Equal(t, "Pending", order.Status)

	decode(t, performRequest(r, http.MethodGet, "/api/cart", nil), &cart)
	assert.Empty(t, cart.Items)
}

func TestOrderController_AddItemErrors(t *testing.T) {
	r := setupStorefrontRouter(newTestSessions(nil))

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
	}{
		{"缺少规格", gin.H{"productId": "gc-001"}, http.StatusBadRequest},
		{"商品不存在", gin.H{"productId": "x", "variantId": "v1"}, http.StatusNotFound},
		{"规格不存在", gin.H{"productId": "gc-001", "variantId": "v9"}, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(r, http.MethodPost, "/api/cart/items", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

// ==================== 商家入驻 ====================

func TestShopController_SubmitApplication(t *testing.T) {
	r := setupStorefrontRouter(newTestSessions(nil))

	valid := gin.H{
		"fullName": "Rahim", "email": "rahim@soft.bd", "phone": "01700000000",
		"shopName": "Rahim Soft", "businessCategory": "Software", "description": "licenses",
	}
	w := performRequest(r, http.MethodPost, "/api/vendor-applications", valid)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Application struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"application"`
		Notice string `json:"notice"`
	}
	decode(t, w, &resp)
	assert.Equal(t, "Pending", resp.Application.Status)
	assert.Equal(t, service.VendorApplicationNotice, resp.Notice)

	invalid := gin.H{"fullName": "A", "email": "not-an-email"}
	w = performRequest(r, http.MethodPost, "/api/vendor-applications", invalid)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// ==================== 顾问 ====================

func TestAdvisorController_Ask(t *testing.T) {
	tests := []struct {
		name     string
		advisor  service.Advisor
		wantText string
		wantKind string
	}{
		{"正常回答", replyAdvisor{text: "উত্তর"}, "উত্তর", ""},
		{"限流兜底", replyAdvisor{err: &service.AdvisorError{Kind: service.AdvisorRateLimited}}, service.AdvisorErrorFallback, "rate_limited"},
		{"未配置", nil, service.AdvisorErrorFallback, "not_configured"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupStorefrontRouter(newTestSessions(tt.advisor))

			w := performRequest(r, http.MethodPost, "/api/advisor/ask", gin.H{"query": "কোনটা ভালো?"})
			require.Equal(t, http.StatusOK, w.Code)

			var resp struct {
				Reply struct {
					Role string `json:"role"`
					Text string `json:"text"`
				} `json:"reply"`
				ErrorKind string `json:"error_kind"`
				History   []struct {
					Role string `json:"role"`
				} `json:"history"`
			}
			decode(t, w, &resp)
			assert.Equal(t, "ai", resp.Reply.Role)
			assert.Equal(t, tt.wantText, resp.Reply.Text)
			assert.Equal(t, tt.wantKind, resp.ErrorKind)
			assert.Len(t, resp.History, 2)
		})
	}
}

func TestAdvisorController_AskEmptyQuery(t *testing.T) {
	r := setupStorefrontRouter(newTestSessions(nil))

	w := performRequest(r, http.MethodPost, "/api/advisor/ask", gin.H{"query": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(r, http.MethodPost, "/api/advisor/ask", gin.H{"query": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
