package dto

import "buyingbd_storefront/internal/model"

// ==================== 目录 ====================

// SearchRequest 搜索
type SearchRequest struct {
	Term string `json:"term" binding:"max=200"`
}

// ProductListResponse 商品列表
type ProductListResponse struct {
	Term  string          `json:"term"`
	Total int             `json:"total"`
	List  []model.Product `json:"list"`
}

// ==================== 管理端 ====================

// CreateProductRequest 新建商品
type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required,max=200"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Description string   `json:"description" binding:"max=2000"`
}
