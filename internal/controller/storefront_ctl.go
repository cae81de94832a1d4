package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"buyingbd_storefront/internal/api/dto"
	"buyingbd_storefront/internal/model"
	"buyingbd_storefront/internal/service"
)

// ==================== 控制器 ====================

// StorefrontController 页面状态、目录浏览、弹窗
type StorefrontController struct {
	sessions *service.SessionRegistry
}

func NewStorefrontController(sessions *service.SessionRegistry) *StorefrontController {
	return &StorefrontController{sessions: sessions}
}

// StateResponse 完整状态 + 一次性提示
type StateResponse struct {
	service.StorefrontSnapshot
	Notice string `json:"notice,omitempty"`
}

// ==================== API 方法 ====================

// GetState 获取当前设备的完整店面状态
// @Summary 获取店面状态
// @Description 返回页面、用户、目录、订单、入驻申请、购物车、弹窗与对话记录；待展示的提示只返回一次
// @Tags Storefront
// @Produce json
// @Param X-Device-ID header string false "设备ID，缺失时自动生成"
// @Success 200 {object} StateResponse
// @Router /api/state [get]
func (ctrl *StorefrontController) GetState(c *gin.Context) {
	front, ok := storefrontOf(c, ctrl.sessions)
	if !ok {
		return
	}

	success(c, http.StatusOK, StateResponse{
		StorefrontSnapshot: front.Snapshot(),
		Notice:             front.TakeNotice(),
	})
}

// Navigate 切换页面
// @Summary 切换页面
// @Description 进入 ADMIN 需要当前用户为管理员
// @Tags Storefront
// @Accept json
// @Produce json
// @Param body body dto.NavigateRequest true "目标页面"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{} "未知页面"
// @Failure 403 {object} map[string]interface{} "需要管理员"
// @Router /api/view [post]
func (ctrl *StorefrontController) Navigate(c *gin.Context) {
	var req dto.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	front, ok := storefrontOf(c, ctrl.sessions)
	if !ok {
		return
	}
	if err := front.Navigate(req.View); err != nil {
		serviceError(c, err)
		return
	}

	success(c, http.StatusOK, gin.H{"view": req.View})
}

// Search 更新搜索词并跳转到目录
// @Summary 搜索商品
// @Description 名称或分类包含搜索词（不区分大小写），空搜索词返回全部
// @Tags Catalog
// @Accept json
// @Produce json
// @Param body body dto.SearchRequest true "搜索词"
// @Success 200 {object} dto.ProductListResponse
// @Router /api/search [post]
func (ctrl *StorefrontController) Search(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	front, ok := storefrontOf(c, ctrl.sessions)
	if !ok {
		return
	}
	list := front.SetSearch(req.Term)

	success(c, http.StatusOK, dto.ProductListResponse{Term: req.Term, Total: len(list), List: list})
}

// ListProducts 当前搜索词下的商品
// @Summary 商品列表
// @Tags Catalog
// @Produce json
// @Success 200 {object} dto.ProductListResponse
// @Router /api/products [get]
func (ctrl *StorefrontController) ListProducts(c *gin.Context) {
	front, ok := storefrontOf(c, ctrl.sessions)
	if !ok {
		return
	}
	list := front.FilteredProducts()

	success(c, http.StatusOK, dto.ProductListResponse{
		Term:  front.Snapshot().SearchTerm,
		Total: len(list),
		List:  list,
	})
}

// GetProduct 商品详情
// @Summary 商品详情
// @Tags Catalog
// @Produce json
// @Param id path string true "商品ID"
// @Success 200 {object} model.Product
// @Failure 404 {object} map[string]interface{} "商品不存在"
// @Router /api/products/{id} [get]
func (ctrl *StorefrontController) GetProduct(c *gin.Context) {
	front, ok := storefrontOf(c, ctrl.sessions)
	if !ok {
		return
	}

	id := c.Param("id")
	for _, p := range front.Snapshot().Products {
		if p.ID == id {
			success(c, http.StatusOK, p)
			return
		}
	}
	serviceError(c, service.ErrProductNotFound)
}

// Recommended 推荐位
// @Summary 推荐商品
// @Description 评分 >= 4.8 或标记推荐，最多 4 个
// @Tags Catalog
// @Produce json
// @Success 200 {array} model.Product
// @Router /api/products/recommended [get]
func (ctrl *StorefrontController) Recommended(c *gin.Context) {
	front, ok := storefrontOf(c, ctrl.sessions)
	if !ok {
		return
	}
	success(c, http.StatusOK, front.RecommendedProducts())
}

// OpenModal 打开弹窗
// @Summary 打开弹窗
// @Description login | vendor | asset | advisor | sidebar；asset 与 sidebar 需要管理员
// @Tags Storefront
// @Produce json
// @Param name path string true "弹窗名称"
// @Success 200 {object} map[string]interface{}
// @Router /api/modals/{name}/open [post]
func (ctrl *StorefrontController) OpenModal(c *gin.Context) {
	ctrl.setModal(c, true)
}

// CloseModal 关闭弹窗
// @Summary 关闭弹窗
// @Tags Storefront
// @Produce json
// @Param name path string true "弹窗名称"
// @Success 200 {object} map[string]interface{}
// @Router /api/modals/{name}/close [post]
func (ctrl *StorefrontController) CloseModal(c *gin.Context) {
	ctrl.setModal(c, false)
}

func (ctrl *StorefrontController) setModal(c *gin.Context, open bool) {
	front, ok := storefrontOf(c, ctrl.sessions)
	if !ok {
		return
	}

	m := model.Modal(c.Param("name"))
	var err error
	if open {
		err = front.OpenModal(m)
	} else {
		err = front.CloseModal(m)
	}
	if err != nil {
		serviceError(c, err)
		return
	}

	success(c, http.StatusOK, gin.H{"modals": front.Snapshot().Modals})
}
