package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"buyingbd_storefront/internal/api/dto"
	"buyingbd_storefront/internal/service"
)

// ShopController 商家入驻
type ShopController struct {
	sessions *service.SessionRegistry
}

func NewShopController(sessions *service.SessionRegistry) *ShopController {
	return &ShopController{sessions: sessions}
}

// SubmitApplication 提交入驻申请
// @Summary 提交商家入驻申请
// @Description 新申请状态为 Pending，排在列表最前
// @Tags Vendor
// @Accept json
// @Produce json
// @Param body body dto.VendorApplicationRequest true "申请表单"
// @Success 201 {object} dto.VendorApplicationResponse
// @Failure 400 {object} map[string]interface{} "参数错误"
// @Router /api/vendor-applications [post]
func (ctrl *ShopController) SubmitApplication(c *gin.Context) {
	var req dto.VendorApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	front, ok := storefrontOf(c, ctrl.sessions)
	if !ok {
		return
	}

	app, err := front.SubmitVendorApp(c.Request.Context(), service.VendorApplicationForm{
		FullName:         req.FullName,
		Email:            req.Email,
		Phone:            req.Phone,
		ShopName:         req.ShopName,
		BusinessCategory: req.BusinessCategory,
		Description:      req.Description,
	})
	if err != nil {
		serviceError(c, err)
		return
	}

	success(c, http.StatusCreated, dto.VendorApplicationResponse{
		Application: app,
		Notice:      front.TakeNotice(),
	})
}
