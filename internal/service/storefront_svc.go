package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"buyingbd_storefront/internal/model"
	"buyingbd_storefront/pkg/utils"
)

// ==================== 依赖接口 ====================

// AdminVerifier 校验管理员凭据
type AdminVerifier interface {
	IsAdmin(email, password string) bool
}

// Advisor 采购顾问
type Advisor interface {
	Advise(ctx context.Context, req AdviceRequest) (*Advice, error)
}

// 顾问兜底文案
const (
	AdvisorEmptyFallback = "দুঃখিত, আমি এই মুহূর্তে উত্তর দিতে পারছি না।"
	AdvisorErrorFallback = "আমি বর্তমানে কিছুটা ব্যস্ত আছি। অনুগ্রহ করে কিছুক্ষণ পর আবার চেষ্টা করুন।"
)

// VendorApplicationNotice 入驻申请提交后的一次性提示
const VendorApplicationNotice = "আবেদনটি পর্যালোচনার জন্য জমা দেওয়া হয়েছে!"

// StorefrontOptions 店面构造参数
type StorefrontOptions struct {
	Admin   AdminVerifier
	Advisor Advisor
	Logger  *zap.Logger
	Locale  string           // 订单日期区域，默认 bn-BD
	Now     func() time.Time // 测试可替换
}

// ==================== 店面状态 ====================

// Storefront 单个设备的店面状态：持久化集合的内存镜像 + 界面临时状态
type Storefront struct {
	mu sync.Mutex

	deviceID string
	store    *PersistedStore
	admin    AdminVerifier
	advisor  Advisor
	log      *zap.Logger
	locale   string
	now      func() time.Time

	// 持久化集合
	products     []model.Product
	orders       []model.Order
	applications []model.ShopApplication
	currentUser  *model.User

	// 界面状态（不持久化）
	view           model.ViewState
	adminTab       model.AdminTab
	searchTerm     string
	cart           []model.CartItem
	modals         map[model.Modal]bool
	chat           []model.ChatMessage
	advisorLoading bool
	notice         string
}

// NewStorefront kv 为全局存储，内部按设备加命名空间
func NewStorefront(deviceID string, kv KVStore, opts StorefrontOptions) *Storefront {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	locale := opts.Locale
	if locale == "" {
		locale = utils.LocaleBnBD
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Storefront{
		deviceID: deviceID,
		store:    NewPersistedStore(NewNamespacedStore(kv, deviceID)),
		admin:    opts.Admin,
		advisor:  opts.Advisor,
		log:      log.With(zap.String("device", deviceID)),
		locale:   locale,
		now:      now,
		view:     model.ViewHome,
		adminTab: model.AdminTabDashboard,
		cart:     []model.CartItem{},
		modals:   make(map[model.Modal]bool),
		chat:     []model.ChatMessage{},
	}
}

// DeviceID 所属设备
func (s *Storefront) DeviceID() string {
	return s.deviceID
}

// ==================== 加载 ====================

// Bootstrap 并发加载四个集合，缺失时回落到种子数据，然后整体写回一次
// 任一集合读取失败时不写回，避免覆盖存储中的数据
func (s *Storefront) Bootstrap(ctx context.Context) error {
	var (
		products     []model.Product
		orders       []model.Order
		applications []model.ShopApplication
		user         model.User

		productsFound, ordersFound, appsFound, userFound bool
	)

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) (err error) {
		productsFound, err = s.store.Load(ctx, KeyProducts, &products)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		ordersFound, err = s.store.Load(ctx, KeyOrders, &orders)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		appsFound, err = s.store.Load(ctx, KeyApplications, &applications)
		return err
	})
	p.Go(func(ctx context.Context) (err error) {
		userFound, err = s.store.Load(ctx, KeyCurrentUser, &user)
		return err
	})
	if err := p.Wait(); err != nil {
		s.log.Error("加载持久化集合失败", zap.Error(err))
		return fmt.Errorf("加载店面数据失败: %w", err)
	}

	if !productsFound || products == nil {
		products = model.SeedProducts()
	}
	if !ordersFound || orders == nil {
		orders = model.SeedOrders()
	}
	if !appsFound || applications == nil {
		applications = []model.ShopApplication{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = products
	s.orders = orders
	s.applications = applications
	s.currentUser = nil
	if userFound {
		u := user
		s.currentUser = &u
	}

	for _, key := range PersistedKeys {
		if err := s.persistLocked(ctx, key); err != nil {
			return err
		}
	}

	s.log.Debug("店面数据已加载",
		zap.Int("products", len(s.products)),
		zap.Int("orders", len(s.orders)),
		zap.Int("applications", len(s.applications)),
		zap.Bool("seeded_products", !productsFound),
	)
	return nil
}

// persistLocked 整集合写回，调用方需持有锁
func (s *Storefront) persistLocked(ctx context.Context, key string) error {
	var value interface{}
	switch key {
	case KeyProducts:
		value = s.products
	case KeyOrders:
		value = s.orders
	case KeyApplications:
		value = s.applications
	case KeyCurrentUser:
		value = s.currentUser
	default:
		return fmt.Errorf("未知的持久化键: %s", key)
	}

	if err := s.store.Save(ctx, key, value); err != nil {
		s.log.Error("持久化失败", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// ==================== 只读视图 ====================

// StorefrontSnapshot 渲染用的完整状态拷贝
type StorefrontSnapshot struct {
	DeviceID       string                  `json:"deviceId"`
	View           model.ViewState         `json:"view"`
	AdminTab       model.AdminTab          `json:"adminTab"`
	SearchTerm     string                  `json:"searchTerm"`
	CurrentUser    *model.User             `json:"currentUser"`
	Products       []model.Product         `json:"products"`
	Orders         []model.Order           `json:"orders"`
	Applications   []model.ShopApplication `json:"applications"`
	Cart           []model.CartItem        `json:"cart"`
	CartTotal      float64                 `json:"cartTotal"`
	Modals         map[model.Modal]bool    `json:"modals"`
	Chat           []model.ChatMessage     `json:"chat"`
	AdvisorLoading bool                    `json:"advisorLoading"`
}

// Snapshot 深拷贝当前状态
func (s *Storefront) Snapshot() StorefrontSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	var user *model.User
	if s.currentUser != nil {
		u := *s.currentUser
		user = &u
	}
	modals := make(map[model.Modal]bool, len(s.modals))
	for k, v := range s.modals {
		if v {
			modals[k] = true
		}
	}

	return StorefrontSnapshot{
		DeviceID:       s.deviceID,
		View:           s.view,
		AdminTab:       s.adminTab,
		SearchTerm:     s.searchTerm,
		CurrentUser:    user,
		Products:       model.CloneProducts(s.products),
		Orders:         model.CloneOrders(s.orders),
		Applications:   model.CloneApplications(s.applications),
		Cart:           append([]model.CartItem{}, s.cart...),
		CartTotal:      model.SumItems(s.cart),
		Modals:         modals,
		Chat:           append([]model.ChatMessage{}, s.chat...),
		AdvisorLoading: s.advisorLoading,
	}
}

// FilteredProducts 名称或分类包含搜索词（不区分大小写）
func (s *Storefront) FilteredProducts() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filterProducts(s.products, s.searchTerm)
}

func filterProducts(products []model.Product, term string) []model.Product {
	needle := strings.ToLower(term)
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(string(p.Category)), needle) {
			out = append(out, p.Clone())
		}
	}
	return out
}

// recommendedLimit 推荐位数量
const recommendedLimit = 4

// RecommendedProducts 评分 >= 4.8 或标记推荐，按目录顺序取前 4 个
func (s *Storefront) RecommendedProducts() []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Product, 0, recommendedLimit)
	for _, p := range s.products {
		if p.Rating >= 4.8 || p.IsRecommended {
			out = append(out, p.Clone())
			if len(out) == recommendedLimit {
				break
			}
		}
	}
	return out
}

// CartTotal 每次重新计算
func (s *Storefront) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.SumItems(s.cart)
}

// Cart 购物车拷贝
func (s *Storefront) Cart() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.CartItem{}, s.cart...)
}

// DashboardStats 管理看板
func (s *Storefront) DashboardStats() model.DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	var revenue float64
	for _, o := range s.orders {
		revenue += o.Total
	}
	pending := 0
	for _, a := range s.applications {
		if a.Status == model.ApplicationPending {
			pending++
		}
	}

	return model.DashboardStats{
		TotalRevenue:        revenue,
		ActiveProducts:      len(s.products),
		PendingApplications: pending,
		SuccessRate:         model.DashboardSuccessRate,
		RevenueChart:        model.WeeklyRevenueChart(),
	}
}

// ==================== 导航 ====================

// Navigate 显式导航；进入管理后台需要当前用户为管理员
func (s *Storefront) Navigate(view model.ViewState) error {
	if !view.Valid() {
		return ErrInvalidView
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if view == model.ViewAdmin && !s.currentUser.IsAdmin() {
		return ErrForbidden
	}
	s.view = view
	return nil
}

// SetAdminTab 仅在管理后台内切换
func (s *Storefront) SetAdminTab(tab model.AdminTab) error {
	if !tab.Valid() {
		return ErrInvalidAdminTab
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.currentUser.IsAdmin() {
		return ErrForbidden
	}
	if s.view != model.ViewAdmin {
		return ErrNotInAdmin
	}
	s.adminTab = tab
	// 移动端选择 tab 后收起侧栏
	s.modals[model.ModalAdminSidebar] = false
	return nil
}

// SetSearch 更新搜索词，并切换到目录页
func (s *Storefront) SetSearch(term string) []model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.searchTerm = term
	if s.view != model.ViewCatalog {
		s.view = model.ViewCatalog
	}
	return filterProducts(s.products, s.searchTerm)
}

// OpenModal 打开弹窗
func (s *Storefront) OpenModal(m model.Modal) error {
	return s.setModal(m, true)
}

// CloseModal 关闭弹窗
func (s *Storefront) CloseModal(m model.Modal) error {
	return s.setModal(m, false)
}

func (s *Storefront) setModal(m model.Modal, open bool) error {
	if !m.Valid() {
		return ErrInvalidModal
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if open && (m == model.ModalNewAsset || m == model.ModalAdminSidebar) && !s.currentUser.IsAdmin() {
		return ErrForbidden
	}
	s.modals[m] = open
	return nil
}

// ==================== 登录 ====================

// 内置管理员身份
const (
	AdminUserID   = "admin-0"
	AdminUserName = "Root Admin"
)

// Login 管理员凭据得到管理员身份并进入后台；其他任意非空凭据得到顾客身份
func (s *Storefront) Login(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var user model.User
	isAdmin := s.admin != nil && s.admin.IsAdmin(email, password)
	if isAdmin {
		user = model.User{ID: AdminUserID, Email: email, Role: model.UserRoleAdmin, Name: AdminUserName}
	} else {
		user = model.User{ID: uuid.NewString(), Email: email, Role: model.UserRoleCustomer, Name: emailLocalPart(email)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentUser = &user
	s.modals[model.ModalLogin] = false
	if isAdmin {
		s.view = model.ViewAdmin
	}

	if err := s.persistLocked(ctx, KeyCurrentUser); err != nil {
		return nil, err
	}

	s.log.Info("用户登录", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	out := user
	return &out, nil
}

func emailLocalPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}

// Logout 清空当前用户，回到首页
func (s *Storefront) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentUser = nil
	s.view = model.ViewHome
	s.modals[model.ModalAdminSidebar] = false

	return s.persistLocked(ctx, KeyCurrentUser)
}

// CurrentUser 当前用户拷贝
func (s *Storefront) CurrentUser() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentUser == nil {
		return nil
	}
	u := *s.currentUser
	return &u
}

// ==================== 购物车 ====================

// AddToCart 同一 (productId, variantId) 合并数量，否则追加；随后进入购物车页
func (s *Storefront) AddToCart(item model.CartItem) error {
	if item.Quantity < 1 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false
	for i := range s.cart {
		if s.cart[i].SameLine(item.ProductID, item.VariantID) {
			s.cart[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		s.cart = append(s.cart, item)
	}
	s.view = model.ViewCart
	return nil
}

// AddVariantToCart 按当前目录构造购物车快照（折扣价优先，数量 1）
func (s *Storefront) AddVariantToCart(productID, variantID string) (model.CartItem, error) {
	s.mu.Lock()
	var (
		item  model.CartItem
		found bool
		err   error
	)
	for i := range s.products {
		p := &s.products[i]
		if p.ID != productID {
			continue
		}
		found = true
		v, ok := p.FindVariant(variantID)
		if !ok {
			err = ErrVariantNotFound
			break
		}
		if err = v.Validate(); err != nil {
			break
		}
		item = model.CartItem{
			ProductID:   p.ID,
			VariantID:   v.ID,
			Name:        p.Name,
			VariantName: v.Name,
			Price:       v.EffectivePrice(),
			Quantity:    1,
			Image:       p.Image,
		}
		break
	}
	s.mu.Unlock()

	if !found {
		return model.CartItem{}, ErrProductNotFound
	}
	if err != nil {
		return model.CartItem{}, err
	}
	return item, s.AddToCart(item)
}

// RemoveFromCart 移除完全匹配的条目
func (s *Storefront) RemoveFromCart(productID, variantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.cart[:0]
	for _, it := range s.cart {
		if !it.SameLine(productID, variantID) {
			kept = append(kept, it)
		}
	}
	s.cart = kept
}

// ==================== 下单 ====================

// ProcessOrder 以当前购物车生成订单，放到订单列表最前，清空购物车
func (s *Storefront) ProcessOrder(ctx context.Context) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart) == 0 {
		return nil, ErrEmptyCart
	}

	items := append([]model.CartItem(nil), s.cart...)
	billingName, billingEmail := model.GuestBillingName, model.GuestBillingEmail
	if s.currentUser != nil {
		if s.currentUser.Name != "" {
			billingName = s.currentUser.Name
		}
		if s.currentUser.Email != "" {
			billingEmail = s.currentUser.Email
		}
	}

	order := model.Order{
		ID:            utils.NewOrderID(s.orderIDTakenLocked),
		Date:          utils.FormatLocaleDate(s.now(), s.locale),
		Total:         model.SumItems(items),
		Status:        model.OrderStatusPending,
		Items:         items,
		PaymentMethod: model.PaymentMethodCorporateCredit,
		BillingName:   billingName,
		BillingEmail:  billingEmail,
	}

	s.orders = append([]model.Order{order}, s.orders...)
	s.cart = []model.CartItem{}
	s.view = model.ViewOrderSuccess

	if err := s.persistLocked(ctx, KeyOrders); err != nil {
		return nil, err
	}

	s.log.Info("订单已创建", zap.String("order_id", order.ID), zap.Float64("total", order.Total), zap.Int("items", len(items)))
	out := order.Clone()
	return &out, nil
}

func (s *Storefront) orderIDTakenLocked(id string) bool {
	for _, o := range s.orders {
		if o.ID == id {
			return true
		}
	}
	return false
}

// ==================== 商家入驻 ====================

// VendorApplicationForm 入驻表单
type VendorApplicationForm struct {
	FullName         string
	Email            string
	Phone            string
	ShopName         string
	BusinessCategory string
	Description      string
}

// SubmitVendorApp 新申请状态总是 Pending，放到列表最前
func (s *Storefront) SubmitVendorApp(ctx context.Context, form VendorApplicationForm) (*model.ShopApplication, error) {
	now := s.now()
	app := model.ShopApplication{
		ID:               utils.NewApplicationID(now),
		FullName:         form.FullName,
		Email:            form.Email,
		Phone:            form.Phone,
		ShopName:         form.ShopName,
		BusinessCategory: form.BusinessCategory,
		Description:      form.Description,
		Status:           model.ApplicationPending,
		Date:             utils.ISODate(now.UTC()),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.applications = append([]model.ShopApplication{app}, s.applications...)
	s.modals[model.ModalVendor] = false
	s.notice = VendorApplicationNotice

	if err := s.persistLocked(ctx, KeyApplications); err != nil {
		return nil, err
	}

	s.log.Info("收到入驻申请", zap.String("application_id", app.ID), zap.String("shop", app.ShopName))
	out := app
	return &out, nil
}

// TakeNotice 取出并清空一次性提示
func (s *Storefront) TakeNotice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.notice
	s.notice = ""
	return n
}

// ==================== 管理操作 ====================

// UpdateOrderStatus 任意状态可改为任意合法状态
func (s *Storefront) UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidOrderStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.currentUser.IsAdmin() {
		return nil, ErrForbidden
	}

	idx := -1
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrOrderNotFound
	}

	s.orders[idx].Status = status
	if err := s.persistLocked(ctx, KeyOrders); err != nil {
		return nil, err
	}

	out := s.orders[idx].Clone()
	return &out, nil
}

// DecideApplication 仅能对 Pending 申请做出 Approved/Rejected 决定，不可撤销
func (s *Storefront) DecideApplication(ctx context.Context, appID string, status model.ApplicationStatus) (*model.ShopApplication, error) {
	if !status.IsDecision() {
		return nil, ErrInvalidDecision
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.currentUser.IsAdmin() {
		return nil, ErrForbidden
	}

	idx := -1
	for i := range s.applications {
		if s.applications[i].ID == appID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrApplicationNotFound
	}
	if s.applications[idx].Status != model.ApplicationPending {
		return nil, ErrApplicationDecided
	}

	s.applications[idx].Status = status
	if err := s.persistLocked(ctx, KeyApplications); err != nil {
		return nil, err
	}

	out := s.applications[idx]
	return &out, nil
}

// DeleteProduct 只删除该商品，订单中的快照不受影响
func (s *Storefront) DeleteProduct(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.currentUser.IsAdmin() {
		return ErrForbidden
	}

	idx := -1
	for i := range s.products {
		if s.products[i].ID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrProductNotFound
	}

	s.products = append(s.products[:idx:idx], s.products[idx+1:]...)
	return s.persistLocked(ctx, KeyProducts)
}

// CreateProduct 生成单一默认变体与固定占位信息的新商品，放到目录最前
func (s *Storefront) CreateProduct(ctx context.Context, name string, price float64, description string) (*model.Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidProductName
	}
	variant := model.Variant{ID: model.NewProductVariantID, Name: model.NewProductVariantName, Price: price}
	if err := variant.Validate(); err != nil {
		return nil, err
	}

	product := model.Product{
		ID:           utils.NewProductID(s.now()),
		Name:         name,
		Description:  description,
		Category:     model.CategorySubscription,
		Image:        model.NewProductImage,
		Variants:     []model.Variant{variant},
		Region:       model.RegionGlobal,
		Specs:        model.NewProductSpecs(),
		VendorName:   model.NewProductVendor,
		Rating:       5,
		ReviewsCount: 0,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.currentUser.IsAdmin() {
		return nil, ErrForbidden
	}

	s.products = append([]model.Product{product}, s.products...)
	s.modals[model.ModalNewAsset] = false
	if err := s.persistLocked(ctx, KeyProducts); err != nil {
		return nil, err
	}

	out := product.Clone()
	return &out, nil
}

// ==================== 采购顾问 ====================

// Ask 追加用户提问，调用顾问（不持有锁），追加回答或兜底文案
// 顾问失败时返回兜底消息以及 *AdvisorError
func (s *Storefront) Ask(ctx context.Context, query string) (model.ChatMessage, error) {
	if strings.TrimSpace(query) == "" {
		return model.ChatMessage{}, ErrEmptyQuery
	}

	s.mu.Lock()
	if s.advisorLoading {
		s.mu.Unlock()
		return model.ChatMessage{}, ErrAdvisorBusy
	}
	s.chat = append(s.chat, model.ChatMessage{Role: model.ChatRoleUser, Text: query})
	s.advisorLoading = true
	catalog := model.CloneProducts(s.products)
	s.mu.Unlock()

	var (
		advice *Advice
		err    error
	)
	if s.advisor == nil {
		err = &AdvisorError{Kind: AdvisorNotConfigured, Err: errors.New("未配置顾问")}
	} else {
		advice, err = s.advisor.Advise(ctx, AdviceRequest{DeviceID: s.deviceID, Query: query, Catalog: catalog})
	}

	reply := model.ChatMessage{Role: model.ChatRoleAI}
	switch {
	case err != nil:
		reply.Text = AdvisorErrorFallback
		var ae *AdvisorError
		if errors.As(err, &ae) && ae.Kind == AdvisorEmpty {
			reply.Text = AdvisorEmptyFallback
		}
		s.log.Warn("顾问调用失败", zap.Error(err))
	case advice == nil || strings.TrimSpace(advice.Text) == "":
		reply.Text = AdvisorEmptyFallback
	default:
		reply.Text = advice.Text
	}

	s.mu.Lock()
	s.chat = append(s.chat, reply)
	s.advisorLoading = false
	s.mu.Unlock()

	return reply, err
}

// AdvisorBusy 顾问调用是否进行中
func (s *Storefront) AdvisorBusy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.advisorLoading
}

// ChatHistory 对话记录拷贝
func (s *Storefront) ChatHistory() []model.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.ChatMessage{}, s.chat...)
}

// ==================== 错误定义 ====================

var (
	ErrForbidden           = errors.New("需要管理员身份")
	ErrInvalidView         = errors.New("未知页面")
	ErrInvalidAdminTab     = errors.New("未知的后台标签")
	ErrNotInAdmin          = errors.New("当前不在管理后台")
	ErrInvalidModal        = errors.New("未知弹窗")
	ErrInvalidCredentials  = errors.New("邮箱和密码不能为空")
	ErrInvalidQuantity     = errors.New("数量必须大于等于 1")
	ErrProductNotFound     = errors.New("商品不存在")
	ErrVariantNotFound     = errors.New("商品规格不存在")
	ErrEmptyCart           = errors.New("购物车为空")
	ErrOrderNotFound       = errors.New("订单不存在")
	ErrInvalidOrderStatus  = errors.New("无效的订单状态")
	ErrApplicationNotFound = errors.New("入驻申请不存在")
	ErrApplicationDecided  = errors.New("入驻申请已处理，不可更改")
	ErrInvalidDecision     = errors.New("审核结果只能是 Approved 或 Rejected")
	ErrInvalidProductName  = errors.New("商品名称不能为空")
	ErrInvalidPrice        = model.ErrNegativePrice
	ErrEmptyQuery          = errors.New("问题不能为空")
	ErrAdvisorBusy         = errors.New("顾问正在回答上一个问题")
)
