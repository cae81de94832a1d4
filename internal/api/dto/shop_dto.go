package dto

import "buyingbd_storefront/internal/model"

// ==================== 商家入驻 ====================

// VendorApplicationRequest 入驻申请表单，所有字段必填
type VendorApplicationRequest struct {
	FullName         string `json:"fullName" binding:"required,max=100"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone" binding:"required,max=32"`
	ShopName         string `json:"shopName" binding:"required,max=100"`
	BusinessCategory string `json:"businessCategory" binding:"required,max=64"`
	Description      string `json:"description" binding:"required,max=2000"`
}

// VendorApplicationResponse 提交结果
type VendorApplicationResponse struct {
	Application *model.ShopApplication `json:"application"`
	Notice      string                 `json:"notice"`
}

// ApplicationDecisionRequest 审核入驻申请
type ApplicationDecisionRequest struct {
	Status model.ApplicationStatus `json:"status" binding:"required,oneof=Approved Rejected"`
}
