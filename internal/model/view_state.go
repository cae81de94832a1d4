package model

// ==================== 页面状态 ====================

// ViewState 当前页面
type ViewState string

const (
	ViewHome         ViewState = "HOME"
	ViewCatalog      ViewState = "CATALOG"
	ViewProfile      ViewState = "PROFILE"
	ViewCart         ViewState = "CART"
	ViewCheckout     ViewState = "CHECKOUT"
	ViewOrderSuccess ViewState = "ORDER_SUCCESS"
	ViewAdmin        ViewState = "ADMIN"
)

// Valid 是否为已知页面
func (v ViewState) Valid() bool {
	switch v {
	case ViewHome, ViewCatalog, ViewProfile, ViewCart, ViewCheckout, ViewOrderSuccess, ViewAdmin:
		return true
	}
	return false
}

// AdminTab 管理后台子导航
type AdminTab string

const (
	AdminTabDashboard AdminTab = "dashboard"
	AdminTabInventory AdminTab = "inventory"
	AdminTabOrders    AdminTab = "orders"
	AdminTabVendors   AdminTab = "vendors"
)

// Valid 是否为已知 tab
func (t AdminTab) Valid() bool {
	switch t {
	case AdminTabDashboard, AdminTabInventory, AdminTabOrders, AdminTabVendors:
		return true
	}
	return false
}

// Modal 弹窗/面板
type Modal string

const (
	ModalLogin        Modal = "login"
	ModalVendor       Modal = "vendor"
	ModalNewAsset     Modal = "asset"
	ModalAdvisor      Modal = "advisor"
	ModalAdminSidebar Modal = "sidebar"
)

// Valid 是否为已知弹窗
func (m Modal) Valid() bool {
	switch m {
	case ModalLogin, ModalVendor, ModalNewAsset, ModalAdvisor, ModalAdminSidebar:
		return true
	}
	return false
}

// ==================== 顾问对话 ====================

// ChatRole 对话角色
type ChatRole string

const (
	ChatRoleUser ChatRole = "user"
	ChatRoleAI   ChatRole = "ai"
)

// ChatMessage 顾问对话记录（不持久化）
type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

// ==================== 看板 ====================

// RevenuePoint 营收图表数据点
type RevenuePoint struct {
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
}

// DashboardStats 管理看板统计
type DashboardStats struct {
	TotalRevenue        float64        `json:"totalRevenue"`
	ActiveProducts      int            `json:"activeProducts"`
	PendingApplications int            `json:"pendingApplications"`
	SuccessRate         string         `json:"successRate"`
	RevenueChart        []RevenuePoint `json:"revenueChart"`
}
