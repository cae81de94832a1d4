package dto

import "buyingbd_storefront/internal/model"

// ==================== 购物车 ====================

// AddCartItemRequest 加入购物车，价格与名称按当前目录取值
type AddCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	VariantID string `json:"variantId" binding:"required"`
}

// CartResponse 购物车
type CartResponse struct {
	Items []model.CartItem `json:"items"`
	Total float64          `json:"total"`
}

// ==================== 订单 ====================

// UpdateOrderStatusRequest 修改订单状态
type UpdateOrderStatusRequest struct {
	Status model.OrderStatus `json:"status" binding:"required,oneof=Pending Processing Completed Refunded"`
}
