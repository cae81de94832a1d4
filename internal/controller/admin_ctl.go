package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"buyingbd_storefront/internal/api/dto"
	"buyingbd_storefront/internal/middleware"
	"buyingbd_storefront/internal/repository"
	"buyingbd_storefront/internal/service"
)

// ==================== 控制器 ====================

// AdminController 管理后台
type AdminController struct {
	sessions    *service.SessionRegistry
	callLogRepo repository.AICallLogRepository // 未配置数据库时为 nil
}

func NewAdminController(sessions *service.SessionRegistry, callLogRepo repository.AICallLogRepository) *AdminController {
	return &AdminController{sessions: sessions, callLogRepo: callLogRepo}
}

// ==================== 看板 ====================

// Dashboard 看板统计
// @Summary 管理看板
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.DashboardStats
// @Router /api/admin/dashboard [get]
func (ctrl *AdminController) Dashboard(c *gin.Context) {
	front, ok := storefrontOf(c, ctrl.sessions)
	if !ok {
		return
	}
	success(c, http.StatusOK, front.DashboardStats())
}

// SetTab 切换后台标签
// @Summary 切换后台标签
// @Description dashboard | inventory | orders | vendors；需处于 ADMIN 页面
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.AdminTabRequest true "标签"
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/tab [post]
func (ctrl *AdminController) SetTab(c *gin.Context) {
	var req dto.AdminTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	front, ok := storefrontOf(c, ctrl.sessions)
	if !ok {
		return
	}
	if err := front.SetAdminTab(req.Tab); err != nil {
		serviceError(c, err)
		return
	}
	success(c, http.StatusOK, gin.H{"tab": req.Tab})
}

// ==================== 订单 ====================

// ListOrders 订单列表（新订单在前）
// @Summary 订单列表
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Order
// @Router /api/admin/orders [get]
func (ctrl *AdminController) ListOrders(c *gin.Context) {
	front, ok := storefrontOf(c, ctrl.sessions)
	if !ok {
		return
	}
	success(c, http.StatusOK, front.Snapshot().Orders)
}

// UpdateOrderStatus 修改订单状态
// @Summary 修改订单状态
// @Description 任意状态之间均可切换
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "订单号"
// @Param body body dto.UpdateOrderStatusRequest true "新状态"
// @Success 200 {object} model.Order
// @Failure 404 {object} map[string]interface{} "订单不存在"
// @Router /api/admin/orders/{id}/status [put]
func (ctrl *AdminController) UpdateOrderStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	front, ok := storefrontOf(c, ctrl.sessions)
	if !ok {
		return
	}
	order, err := front.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		serviceError(c, err)
		return
	}
	success(c, http.StatusOK, order)
}

// ==================== 入驻申请 ====================

// ListApplications 入驻申请列表
// @Summary 入驻申请列表
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ShopApplication
// @Router /api/admin/applications [get]
func (ctrl *AdminController) ListApplications(c *gin.Context) {
	front, ok := storefrontOf(c, ctrl.sessions)
	if !ok {
		return
	}
	success(c, http.StatusOK, front.Snapshot().Applications)
}

// DecideApplication 审核入驻申请
// @Summary 审核入驻申请
// @Description 只能对 Pending 申请做出 Approved / Rejected 决定，不可撤销
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "申请ID"
// @Param body body dto.ApplicationDecisionRequest true "审核结果"
// @Success 200 {object} model.ShopApplication
// @Failure 409 {object} map[string]interface{} "已处理"
// @Router /api/admin/applications/{id}/decision [post]
func (ctrl *AdminController) DecideApplication(c *gin.Context) {
	var req dto.ApplicationDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	front, ok := storefrontOf(c, ctrl.sessions)
	if !ok {
		return
	}
	app, err := front.DecideApplication(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		serviceError(c, err)
		return
	}
	success(c, http.StatusOK, app)
}

// ==================== 商品 ====================

// CreateProduct 新建商品
// @Summary 新建商品
// @Description 生成单一默认规格的订阅商品，排在目录最前
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateProductRequest true "商品信息"
// @Success 201 {object} model.Product
// @Router /api/admin/products [post]
func (ctrl *AdminController) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	front, ok := storefrontOf(c, ctrl.sessions)
	if !ok {
		return
	}
	product, err := front.CreateProduct(c.Request.Context(), req.Name, *req.Price, req.Description)
	if err != nil {
		serviceError(c, err)
		return
	}
	success(c, http.StatusCreated, product)
}

// DeleteProduct 删除商品
// @Summary 删除商品
// @Description 已有订单中的商品快照不受影响
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "商品ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{} "商品不存在"
// @Router /api/admin/products/{id} [delete]
func (ctrl *AdminController) DeleteProduct(c *gin.Context) {
	front, ok := storefrontOf(c, ctrl.sessions)
	if !ok {
		return
	}
	if err := front.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		serviceError(c, err)
		return
	}
	success(c, http.StatusOK, gin.H{"id": c.Param("id")})
}

// ==================== 顾问用量 ====================

// AdvisorUsage 顾问调用统计
// @Summary 顾问调用统计
// @Description 最近 N 天的总量与按日统计；指定 device 时返回该设备的累计用量与最近调用，需配置数据库
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param days query int false "天数" default(7)
// @Param device query string false "设备ID"
// @Param limit query int false "最近调用条数（仅 device）" default(20)
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{} "未配置数据库"
// @Router /api/admin/advisor/usage [get]
func (ctrl *AdminController) AdvisorUsage(c *gin.Context) {
	if ctrl.callLogRepo == nil {
		fail(c, http.StatusServiceUnavailable, "未配置数据库，无调用统计")
		return
	}

	if deviceID := c.Query("device"); deviceID != "" {
		ctrl.deviceAdvisorUsage(c, deviceID)
		return
	}

	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days <= 0 || days > 90 {
		fail(c, http.StatusBadRequest, "days 必须在 1-90 之间")
		return
	}

	end := time.Now()
	start := end.AddDate(0, 0, -days)
	ctx := c.Request.Context()

	total, err := ctrl.callLogRepo.GetUsage(ctx, start, end)
	if err != nil {
		serviceError(c, err)
		return
	}
	daily, err := ctrl.callLogRepo.GetDailyUsage(ctx, start, end)
	if err != nil {
		serviceError(c, err)
		return
	}

	success(c, http.StatusOK, gin.H{"total": total, "daily": daily})
}

// deviceAdvisorUsage 单个设备的累计用量与最近调用
func (ctrl *AdminController) deviceAdvisorUsage(c *gin.Context, deviceID string) {
	if !middleware.ValidDeviceID(deviceID) {
		fail(c, http.StatusBadRequest, "无效的设备ID")
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 || limit > 100 {
		fail(c, http.StatusBadRequest, "limit 必须在 1-100 之间")
		return
	}

	ctx := c.Request.Context()
	total, err := ctrl.callLogRepo.GetUsageByDevice(ctx, deviceID)
	if err != nil {
		serviceError(c, err)
		return
	}
	recent, err := ctrl.callLogRepo.ListByDevice(ctx, deviceID, limit)
	if err != nil {
		serviceError(c, err)
		return
	}

	calls := make([]dto.AdvisorCallView, 0, len(recent))
	for _, l := range recent {
		calls = append(calls, dto.AdvisorCallView{
			ID:            l.ID,
			Transport:     l.Transport,
			ModelName:     l.ModelName,
			QueryChars:    l.QueryChars,
			ResponseChars: l.ResponseChars,
			DurationMs:    l.DurationMs,
			Status:        l.Status,
			ErrorKind:     l.ErrorKind,
			CreatedAt:     l.CreatedAt,
		})
	}
	success(c, http.StatusOK, gin.H{"device": deviceID, "total": total, "recent": calls})
}
