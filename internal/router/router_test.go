package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buyingbd_storefront/internal/controller"
	"buyingbd_storefront/internal/middleware"
	"buyingbd_storefront/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	authSvc, err := service.NewAuthService(service.DefaultAdminEmail, service.DefaultAdminPassword)
	require.NoError(t, err)

	sessions := service.NewSessionRegistry(service.NewMemoryStore(), service.StorefrontOptions{Admin: authSvc})
	ctls := &Controllers{
		Storefront: controller.NewStorefrontController(sessions),
		Auth:       controller.NewAuthController(sessions, authSvc),
		Order:      controller.NewOrderController(sessions),
		Shop:       controller.NewShopController(sessions),
		Advisor:    controller.NewAdvisorController(sessions),
		Admin:      controller.NewAdminController(sessions, nil),
	}
	return SetupRouter(ctls, Options{AdvisorCooldown: time.Minute})
}

func performRequest(r http.Handler, method, path, deviceID string, body interface{}, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if deviceID != "" {
		req.Header.Set(middleware.HeaderDeviceID, deviceID)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_Healthz(t *testing.T) {
	r := setupTestRouter(t)
	w := performRequest(r, http.MethodGet, "/healthz", "", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_AssignsDeviceID(t *testing.T) {
	r := setupTestRouter(t)

	w := performRequest(r, http.MethodGet, "/api/state", "", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, middleware.ValidDeviceID(w.Header().Get(middleware.HeaderDeviceID)))
}

func TestRouter_DevicesHaveSeparateState(t *testing.T) {
	r := setupTestRouter(t)

	w := performRequest(r, http.MethodPost, "/api/cart/items", "dev-a", gin.H{"productId": "sub-001", "variantId": "v1"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Items []interface{} `json:"items"`
		} `json:"data"`
	}
	w = performRequest(r, http.MethodGet, "/api/cart", "dev-b", nil, "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data.Items)

	w = performRequest(r, http.MethodGet, "/api/cart", "dev-a", nil, "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Items, 1)
}

func TestRouter_AdvisorCooldown(t *testing.T) {
	r := setupTestRouter(t)

	w := performRequest(r, http.MethodPost, "/api/advisor/ask", "dev-a", gin.H{"query": "hi"}, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, http.MethodPost, "/api/advisor/ask", "dev-a", gin.H{"query": "again"}, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// 其他设备不受影响
	w = performRequest(r, http.MethodPost, "/api/advisor/ask", "dev-b", gin.H{"query": "hi"}, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_AdminFlow(t *testing.T) {
	r := setupTestRouter(t)

	w := performRequest(r, http.MethodGet, "/api/admin/orders", "dev-a", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// 顾客登录不签发令牌
	w = performRequest(r, http.MethodPost, "/api/auth/login", "dev-a", gin.H{"email": "c@x.bd", "password": "p"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, http.MethodPost, "/api/auth/login", "dev-a",
		gin.H{"email": service.DefaultAdminEmail, "password": service.DefaultAdminPassword}, "")
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Data.AccessToken)

	w = performRequest(r, http.MethodGet, "/api/admin/orders", "dev-a", nil, login.Data.AccessToken)
	assert.Equal(t, http.StatusOK, w.Code)

	w = performRequest(r, http.MethodGet, "/api/admin/orders", "dev-b", nil, login.Data.AccessToken)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
