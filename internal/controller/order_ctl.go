package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"buyingbd_storefront/internal/api/dto"
	"buyingbd_storefront/internal/service"
)

// OrderController 购物车与下单
type OrderController struct {
	sessions *service.SessionRegistry
}

func NewOrderController(sessions *service.SessionRegistry) *OrderController {
	return &OrderController{sessions: sessions}
}

// GetCart 购物车
// @Summary 获取购物车
// @Tags Cart
// @Produce json
// @Success 200 {object} dto.CartResponse
// @Router /api/cart [get]
func (ctrl *OrderController) GetCart(c *gin.Context) {
	front, ok := storefrontOf(c, ctrl.sessions)
	if !ok {
		return
	}
	success(c, http.StatusOK, cartResponse(front))
}

// AddItem 加入购物车
// @Summary 加入购物车
// @Description 同一商品同一规格合并数量；价格取折扣价（若有）
// @Tags Cart
// @Accept json
// @Produce json
// @Param body body dto.AddCartItemRequest true "商品与规格"
// @Success 200 {object} dto.CartResponse
// @Failure 404 {object} map[string]interface{} "商品或规格不存在"
// @Router /api/cart/items [post]
func (ctrl *OrderController) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	front, ok := storefrontOf(c, ctrl.sessions)
	if !ok {
		return
	}
	if _, err := front.AddVariantToCart(req.ProductID, req.VariantID); err != nil {
		serviceError(c, err)
		return
	}

	success(c, http.StatusOK, cartResponse(front))
}

// RemoveItem 移除购物车条目
// @Summary 移除购物车条目
// @Tags Cart
// @Produce json
// @Param productId path string true "商品ID"
// @Param variantId path string true "规格ID"
// @Success 200 {object} dto.CartResponse
// @Router /api/cart/items/{productId}/{variantId} [delete]
func (ctrl *OrderController) RemoveItem(c *gin.Context) {
	front, ok := storefrontOf(c, ctrl.sessions)
	if !ok {
		return
	}
	front.RemoveFromCart(c.Param("productId"), c.Param("variantId"))

	success(c, http.StatusOK, cartResponse(front))
}

// Checkout 下单
// @Summary 结算下单
// @Description 以当前购物车生成订单（状态 Pending），清空购物车
// @Tags Cart
// @Produce json
// @Success 201 {object} model.Order
// @Failure 400 {object} map[string]interface{} "购物车为空"
// @Router /api/checkout [post]
func (ctrl *OrderController) Checkout(c *gin.Context) {
	front, ok := storefrontOf(c, ctrl.sessions)
	if !ok {
		return
	}

	order, err := front.ProcessOrder(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	success(c, http.StatusCreated, order)
}

func cartResponse(front *service.Storefront) dto.CartResponse {
	return dto.CartResponse{Items: front.Cart(), Total: front.CartTotal()}
}
