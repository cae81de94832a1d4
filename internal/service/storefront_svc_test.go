package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buyingbd_storefront/internal/model"
)

// ==================== 测试辅助 ====================

type staticAdmin struct{}

func (staticAdmin) IsAdmin(email, password string) bool {
	return email == DefaultAdminEmail && password == DefaultAdminPassword
}

type advisorFunc func(ctx context.Context, req AdviceRequest) (*Advice, error)

func (f advisorFunc) Advise(ctx context.Context, req AdviceRequest) (*Advice, error) {
	return f(ctx, req)
}

var fixedNow = time.Date(2025, 3, 7, 9, 30, 0, 0, time.UTC)

func newTestStorefront(t *testing.T, kv KVStore, advisor Advisor) *Storefront {
	t.Helper()
	if kv == nil {
		kv = NewMemoryStore()
	}
	s := NewStorefront("dev-1", kv, StorefrontOptions{
		Admin:   staticAdmin{},
		Advisor: advisor,
		Now:     func() time.Time { return fixedNow },
	})
	require.NoError(t, s.Bootstrap(context.Background()))
	return s
}

func loginAdmin(t *testing.T, s *Storefront) {
	t.Helper()
	_, err := s.Login(context.Background(), DefaultAdminEmail, DefaultAdminPassword)
	require.NoError(t, err)
}

func cartItem(productID, variantID string, price float64, qty int) model.CartItem {
	return model.CartItem{ProductID: productID, VariantID: variantID, Name: productID, VariantName: variantID, Price: price, Quantity: qty}
}

// ==================== 加载 ====================

func TestStorefront_BootstrapSeeds(t *testing.T) {
	kv := NewMemoryStore()
	s := newTestStorefront(t, kv, nil)

	snap := s.Snapshot()
	assert.Len(t, snap.Products, len(model.SeedProducts()))
	assert.Equal(t, model.SeedOrders(), snap.Orders)
	assert.Empty(t, snap.Applications)
	assert.NotNil(t, snap.Applications)
	assert.Nil(t, snap.CurrentUser)
	assert.Equal(t, model.ViewHome, snap.View)

	// 四个集合都写回了存储
	for _, key := range PersistedKeys {
		_, found, err := kv.Get(context.Background(), NamespaceKey("dev-1", key))
		require.NoError(t, err)
		assert.True(t, found, "%s 应已写回", key)
	}
}

func TestStorefront_BootstrapKeepsStoredCollections(t *testing.T) {
	kv := NewMemoryStore()
	ps := NewPersistedStore(NewNamespacedStore(kv, "dev-1"))
	ctx := context.Background()

	require.NoError(t, ps.Save(ctx, KeyProducts, []model.Product{}))
	require.NoError(t, ps.Save(ctx, KeyCurrentUser, model.User{ID: "u1", Email: "a@b.bd", Role: model.UserRoleCustomer, Name: "a"}))

	s := newTestStorefront(t, kv, nil)
	snap := s.Snapshot()

	assert.Empty(t, snap.Products, "已存储的空目录不回落到种子")
	require.NotNil(t, snap.CurrentUser)
	assert.Equal(t, "u1", snap.CurrentUser.ID)
}

func TestStorefront_BootstrapCorruptRecord(t *testing.T) {
	kv := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, NamespaceKey("dev-1", KeyOrders), []byte(`{broken`)))

	s := NewStorefront("dev-1", kv, StorefrontOptions{})
	err := s.Bootstrap(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCorruptRecord))

	// 损坏的数据不会被种子覆盖
	raw, _, _ := kv.Get(ctx, NamespaceKey("dev-1", KeyOrders))
	assert.Equal(t, `{broken`, string(raw))
}

func TestStorefront_ReloadIsIdempotent(t *testing.T) {
	kv := NewMemoryStore()
	first := newTestStorefront(t, kv, nil)
	loginAdmin(t, first)
	_, err := first.CreateProduct(context.Background(), "নতুন লাইসেন্স", 42, "desc")
	require.NoError(t, err)

	second := newTestStorefront(t, kv, nil)
	third := newTestStorefront(t, kv, nil)

	a, b, c := first.Snapshot(), second.Snapshot(), third.Snapshot()
	assert.Equal(t, a.Products, b.Products)
	assert.Equal(t, a.Orders, b.Orders)
	assert.Equal(t, a.CurrentUser, b.CurrentUser)
	assert.Equal(t, b.Products, c.Products)
	assert.Equal(t, b.Applications, c.Applications)
}

// ==================== 购物车 ====================

func TestStorefront_AddToCartMerges(t *testing.T) {
	s := newTestStorefront(t, nil, nil)

	adds := []model.CartItem{
		cartItem("sub-001", "v1", 4.5, 1),
		cartItem("sub-001", "v2", 13.5, 1),
		cartItem("sub-001", "v1", 4.5, 1),
		cartItem("gc-001", "v1", 10, 1),
		cartItem("sub-001", "v1", 4.5, 1),
	}
	for _, it := range adds {
		require.NoError(t, s.AddToCart(it))
	}

	cart := s.Cart()
	counts := map[string]int{}
	for _, it := range adds {
		counts[it.ProductID+"/"+it.VariantID]++
	}
	assert.Len(t, cart, len(counts), "每个 (productId, variantId) 最多一条")
	for _, it := range cart {
		assert.Equal(t, counts[it.ProductID+"/"+it.VariantID], it.Quantity)
	}
	assert.Equal(t, model.ViewCart, s.Snapshot().View)
}

func TestStorefront_AddToCartAccumulatesIncomingQuantity(t *testing.T) {
	s := newTestStorefront(t, nil, nil)

	require.NoError(t, s.AddToCart(cartItem("p", "v", 1, 2)))
	require.NoError(t, s.AddToCart(cartItem("p", "v", 1, 3)))

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 5, cart[0].Quantity)
}

func TestStorefront_AddToCartInvalidQuantity(t *testing.T) {
	s := newTestStorefront(t, nil, nil)
	assert.ErrorIs(t, s.AddToCart(cartItem("p", "v", 1, 0)), ErrInvalidQuantity)
	assert.Empty(t, s.Cart())
}

func TestStorefront_CartTotal(t *testing.T) {
	s := newTestStorefront(t, nil, nil)

	require.NoError(t, s.AddToCart(cartItem("A", "v1", 10, 1)))
	require.NoError(t, s.AddToCart(cartItem("B", "v1", 5, 2)))

	assert.InDelta(t, 20.00, s.CartTotal(), 1e-9)
}

func TestStorefront_AddVariantToCart(t *testing.T) {
	s := newTestStorefront(t, nil, nil)

	tests := []struct {
		name      string
		productID string
		variantID string
		wantPrice float64
		wantErr   error
	}{
		{"折扣价优先", "sub-001", "v2", 13.50, nil},
		{"无折扣用原价", "sub-001", "v1", 4.50, nil},
		{"商品不存在", "nope", "v1", 0, ErrProductNotFound},
		{"规格不存在", "sub-001", "v9", 0, ErrVariantNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := s.AddVariantToCart(tt.productID, tt.variantID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrice, item.Price)
			assert.Equal(t, 1, item.Quantity)
			assert.NotEmpty(t, item.Image)
		})
	}
}

func TestStorefront_AddVariantToCartRejectsNegativePrice(t *testing.T) {
	kv := NewMemoryStore()
	ps := NewPersistedStore(NewNamespacedStore(kv, "dev-1"))
	discount := -2.0
	require.NoError(t, ps.Save(context.Background(), KeyProducts, []model.Product{{
		ID:       "bad-001",
		Name:     "Broken",
		Variants: []model.Variant{{ID: "v1", Name: "1 মাস", Price: 5, DiscountPrice: &discount}},
	}}))

	s := newTestStorefront(t, kv, nil)
	_, err := s.AddVariantToCart("bad-001", "v1")
	assert.ErrorIs(t, err, ErrInvalidPrice)
	assert.Empty(t, s.Cart())
}

func TestStorefront_RemoveFromCart(t *testing.T) {
	s := newTestStorefront(t, nil, nil)
	require.NoError(t, s.AddToCart(cartItem("A", "v1", 10, 1)))
	require.NoError(t, s.AddToCart(cartItem("A", "v2", 12, 1)))

	s.RemoveFromCart("A", "v1")

	cart := s.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "v2", cart[0].VariantID)

	// 不存在的条目无影响
	s.RemoveFromCart("Z", "v1")
	assert.Len(t, s.Cart(), 1)
}

// ==================== 下单 ====================

func TestStorefront_ProcessOrder(t *testing.T) {
	kv := NewMemoryStore()
	s := newTestStorefront(t, kv, nil)
	ctx := context.Background()

	require.NoError(t, s.AddToCart(cartItem("A", "v1", 10, 1)))
	require.NoError(t, s.AddToCart(cartItem("B", "v1", 5, 2)))
	before := s.Snapshot()

	order, err := s.ProcessOrder(ctx)
	require.NoError(t, err)

	assert.InDelta(t, before.CartTotal, order.Total, 1e-9)
	assert.Equal(t, before.Cart, order.Items)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, model.PaymentMethodCorporateCredit, order.PaymentMethod)
	assert.Equal(t, model.GuestBillingName, order.BillingName)
	assert.Equal(t, model.GuestBillingEmail, order.BillingEmail)
	assert.Regexp(t, `^ORD-\d{5}$`, order.ID)
	assert.Equal(t, "৭/৩/২০২৫", order.Date)

	after := s.Snapshot()
	assert.Empty(t, after.Cart)
	assert.Equal(t, model.ViewOrderSuccess, after.View)
	require.Len(t, after.Orders, len(before.Orders)+1)
	assert.Equal(t, order.ID, after.Orders[0].ID, "新订单在最前")

	// 已持久化
	var stored []model.Order
	found, err := NewPersistedStore(NewNamespacedStore(kv, "dev-1")).Load(ctx, KeyOrders, &stored)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, order.ID, stored[0].ID)
}

func TestStorefront_ProcessOrderBillsCurrentUser(t *testing.T) {
	s := newTestStorefront(t, nil, nil)
	ctx := context.Background()

	_, err := s.Login(ctx, "karim@acme.bd", "secret")
	require.NoError(t, err)
	require.NoError(t, s.AddToCart(cartItem("A", "v1", 10, 1)))

	order, err := s.ProcessOrder(ctx)
	require.NoError(t, err)
	assert.Equal(t, "karim", order.BillingName)
	assert.Equal(t, "karim@acme.bd", order.BillingEmail)
}

func TestStorefront_ProcessOrderEmptyCart(t *testing.T) {
	s := newTestStorefront(t, nil, nil)
	before := s.Snapshot()

	_, err := s.ProcessOrder(context.Background())
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, before.Orders, s.Snapshot().Orders)
}

func TestStorefront_ProcessOrderUniqueIDs(t *testing.T) {
	s := newTestStorefront(t, nil, nil)
	ctx := context.Background()

	seen := map[string]bool{}
	for _, o := range s.Snapshot().Orders {
		seen[o.ID] = true
	}
	for i := 0; i < 200; i++ {
		require.NoError(t, s.AddToCart(cartItem("A", "v1", 1, 1)))
		order, err := s.ProcessOrder(ctx)
		require.NoError(t, err)
		assert.False(t, seen[order.ID], "订单号重复: %s", order.ID)
		seen[order.ID] = true
	}
}

// ==================== 商家入驻 ====================

func TestStorefront_SubmitVendorApp(t *testing.T) {
	s := newTestStorefront(t, nil, nil)
	ctx := context.Background()
	require.NoError(t, s.OpenModal(model.ModalVendor))

	forms := []VendorApplicationForm{
		{FullName: "Rahim", Email: "r@x.bd", Phone: "017", ShopName: "Rahim Soft", BusinessCategory: "Software", Description: "first"},
		{FullName: "", Email: "weird", Phone: "", ShopName: "", BusinessCategory: "", Description: ""},
	}
	for i, form := range forms {
		app, err := s.SubmitVendorApp(ctx, form)
		require.NoError(t, err)
		assert.Equal(t, model.ApplicationPending, app.Status)
		assert.Equal(t, "2025-03-07", app.Date)
		assert.True(t, strings.HasPrefix(app.ID, "APP-"))

		snap := s.Snapshot()
		assert.Len(t, snap.Applications, i+1)
		assert.Equal(t, app.ID, snap.Applications[0].ID, "新申请在最前")
		assert.False(t, snap.Modals[model.ModalVendor])
	}

	assert.Equal(t, VendorApplicationNotice, s.TakeNotice())
	assert.Empty(t, s.TakeNotice(), "提示只出现一次")
}

// ==================== 登录 ====================

func TestStorefront_Login(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantRole model.UserRole
		wantName string
		wantView model.ViewState
		wantErr  error
	}{
		{"管理员", "admin@buyingbd.com", "admin123", model.UserRoleAdmin, "Root Admin", model.ViewAdmin, nil},
		{"管理员邮箱错误密码", "admin@buyingbd.com", "wrong", model.UserRoleCustomer, "admin", model.ViewHome, nil},
		{"普通顾客", "sales@company.bd", "x", model.UserRoleCustomer, "sales", model.ViewHome, nil},
		{"空密码", "a@b.bd", "", "", "", "", ErrInvalidCredentials},
		{"空邮箱", "", "x", "", "", "", ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStorefront(t, nil, nil)
			require.NoError(t, s.OpenModal(model.ModalLogin))

			user, err := s.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, s.CurrentUser())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, user.Role)
			assert.Equal(t, tt.wantName, user.Name)
			if tt.wantRole == model.UserRoleAdmin {
				assert.Equal(t, AdminUserID, user.ID)
			}

			snap := s.Snapshot()
			assert.Equal(t, tt.wantView, snap.View)
			assert.False(t, snap.Modals[model.ModalLogin])
		})
	}
}

func TestStorefront_LoginPersistsAndLogoutClears(t *testing.T) {
	kv := NewMemoryStore()
	s := newTestStorefront(t, kv, nil)
	ctx := context.Background()

	loginAdmin(t, s)
	reloaded := newTestStorefront(t, kv, nil)
	require.NotNil(t, reloaded.CurrentUser())
	assert.True(t, reloaded.CurrentUser().IsAdmin())

	require.NoError(t, s.OpenModal(model.ModalAdminSidebar))
	require.NoError(t, s.Logout(ctx))
	snap := s.Snapshot()
	assert.Nil(t, snap.CurrentUser)
	assert.Equal(t, model.ViewHome, snap.View)
	assert.False(t, snap.Modals[model.ModalAdminSidebar])

	reloaded = newTestStorefront(t, kv, nil)
	assert.Nil(t, reloaded.CurrentUser())
}

// ==================== 导航 ====================

func TestStorefront_NavigateAdminGate(t *testing.T) {
	s := newTestStorefront(t, nil, nil)

	assert.ErrorIs(t, s.Navigate(model.ViewAdmin), ErrForbidden)
	assert.ErrorIs(t, s.Navigate("NOWHERE"), ErrInvalidView)
	assert.NoError(t, s.Navigate(model.ViewCatalog))

	_, err := s.Login(context.Background(), "c@d.bd", "pw")
	require.NoError(t, err)
	assert.ErrorIs(t, s.Navigate(model.ViewAdmin), ErrForbidden, "顾客不能进入后台")

	loginAdmin(t, s)
	assert.NoError(t, s.Navigate(model.ViewHome))
	assert.NoError(t, s.Navigate(model.ViewAdmin))
	assert.NoError(t, s.SetAdminTab(model.AdminTabOrders))
	assert.ErrorIs(t, s.SetAdminTab("reports"), ErrInvalidAdminTab)
	assert.Equal(t, model.AdminTabOrders, s.Snapshot().AdminTab)

	require.NoError(t, s.Navigate(model.ViewHome))
	assert.ErrorIs(t, s.SetAdminTab(model.AdminTabVendors), ErrNotInAdmin)
}

func TestStorefront_Search(t *testing.T) {
	s := newTestStorefront(t, nil, nil)

	tests := []struct {
		name    string
		term    string
		wantIDs []string
	}{
		{"按分类不区分大小写", "gift card", []string{"gc-001", "gc-002", "gc-003"}},
		{"按名称", "স্টিম", []string{"gc-002"}},
		{"software 分类", "SOFTWARE", []string{"sub-003", "sub-005"}},
		{"无结果", "xyz-not-found", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := s.SetSearch(tt.term)
			ids := make([]string, 0, len(list))
			for _, p := range list {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, model.ViewCatalog, s.Snapshot().View)
			assert.Equal(t, list, s.FilteredProducts())
		})
	}

	// 空搜索词返回全部
	assert.Len(t, s.SetSearch(""), len(model.SeedProducts()))
}

func TestStorefront_RecommendedProducts(t *testing.T) {
	s := newTestStorefront(t, nil, nil)

	rec := s.RecommendedProducts()
	ids := make([]string, 0, len(rec))
	for _, p := range rec {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"sub-001", "gc-001", "gc-002", "sub-003"}, ids)
}

func TestStorefront_Modals(t *testing.T) {
	s := newTestStorefront(t, nil, nil)

	assert.NoError(t, s.OpenModal(model.ModalAdvisor))
	assert.True(t, s.Snapshot().Modals[model.ModalAdvisor])
	assert.NoError(t, s.CloseModal(model.ModalAdvisor))
	assert.False(t, s.Snapshot().Modals[model.ModalAdvisor])

	assert.ErrorIs(t, s.OpenModal("popup"), ErrInvalidModal)
	assert.ErrorIs(t, s.OpenModal(model.ModalNewAsset), ErrForbidden)
}

// ==================== 管理操作 ====================

func TestStorefront_AdminRequiresAdmin(t *testing.T) {
	s := newTestStorefront(t, nil, nil)
	ctx := context.Background()

	_, err := s.UpdateOrderStatus(ctx, "ORD-9921", model.OrderStatusRefunded)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, s.DeleteProduct(ctx, "sub-001"), ErrForbidden)
	_, err = s.CreateProduct(ctx, "x", 1, "")
	assert.ErrorIs(t, err, ErrForbidden)
	_, err = s.DecideApplication(ctx, "APP-1", model.ApplicationApproved)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestStorefront_UpdateOrderStatus(t *testing.T) {
	s := newTestStorefront(t, nil, nil)
	loginAdmin(t, s)
	ctx := context.Background()

	// 任意状态之间可互相切换
	for _, st := range []model.OrderStatus{model.OrderStatusRefunded, model.OrderStatusPending, model.OrderStatusCompleted} {
		order, err := s.UpdateOrderStatus(ctx, "ORD-9921", st)
		require.NoError(t, err)
		assert.Equal(t, st, order.Status)
	}

	_, err := s.UpdateOrderStatus(ctx, "ORD-0000", model.OrderStatusCompleted)
	assert.ErrorIs(t, err, ErrOrderNotFound)
	_, err = s.UpdateOrderStatus(ctx, "ORD-9921", "Shipped")
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)
}

func TestStorefront_DecideApplication(t *testing.T) {
	s := newTestStorefront(t, nil, nil)
	ctx := context.Background()

	app, err := s.SubmitVendorApp(ctx, VendorApplicationForm{FullName: "A", ShopName: "S"})
	require.NoError(t, err)
	loginAdmin(t, s)

	_, err = s.DecideApplication(ctx, app.ID, model.ApplicationPending)
	assert.ErrorIs(t, err, ErrInvalidDecision)

	decided, err := s.DecideApplication(ctx, app.ID, model.ApplicationApproved)
	require.NoError(t, err)
	assert.Equal(t, model.ApplicationApproved, decided.Status)

	_, err = s.DecideApplication(ctx, app.ID, model.ApplicationRejected)
	assert.ErrorIs(t, err, ErrApplicationDecided, "决定不可撤销")

	_, err = s.DecideApplication(ctx, "APP-404", model.ApplicationRejected)
	assert.ErrorIs(t, err, ErrApplicationNotFound)

	stats := s.DashboardStats()
	assert.Equal(t, 0, stats.PendingApplications)
}

func TestStorefront_DeleteProduct(t *testing.T) {
	s := newTestStorefront(t, nil, nil)
	loginAdmin(t, s)
	ctx := context.Background()

	before := s.Snapshot()
	require.NoError(t, s.DeleteProduct(ctx, "sub-001"))
	after := s.Snapshot()

	require.Len(t, after.Products, len(before.Products)-1)
	j := 0
	for _, p := range before.Products {
		if p.ID == "sub-001" {
			continue
		}
		assert.Equal(t, p, after.Products[j])
		j++
	}
	// ORD-9921 引用了 sub-001，订单快照不变
	assert.Equal(t, before.Orders, after.Orders)

	assert.ErrorIs(t, s.DeleteProduct(ctx, "sub-001"), ErrProductNotFound)
}

func TestStorefront_CreateProduct(t *testing.T) {
	s := newTestStorefront(t, nil, nil)
	loginAdmin(t, s)
	ctx := context.Background()

	p, err := s.CreateProduct(ctx, "Jira Cloud", 99.5, "tracking")
	require.NoError(t, err)

	assert.Equal(t, "p-"+"1741339800000", p.ID)
	assert.Equal(t, model.CategorySubscription, p.Category)
	assert.Equal(t, model.RegionGlobal, p.Region)
	assert.Equal(t, model.NewProductVendor, p.VendorName)
	assert.Equal(t, float64(5), p.Rating)
	assert.Equal(t, 0, p.ReviewsCount)
	require.Len(t, p.Variants, 1)
	assert.Equal(t, model.NewProductVariantID, p.Variants[0].ID)
	assert.Equal(t, 99.5, p.Variants[0].Price)
	assert.Equal(t, model.NewProductSpecs(), p.Specs)
	assert.Equal(t, p.ID, s.Snapshot().Products[0].ID, "新商品在最前")

	_, err = s.CreateProduct(ctx, "Bad", -1, "")
	assert.ErrorIs(t, err, ErrInvalidPrice)
	_, err = s.CreateProduct(ctx, "  ", 1, "")
	assert.ErrorIs(t, err, ErrInvalidProductName)
}

func TestStorefront_DashboardStats(t *testing.T) {
	s := newTestStorefront(t, nil, nil)
	ctx := context.Background()

	_, err := s.SubmitVendorApp(ctx, VendorApplicationForm{FullName: "A"})
	require.NoError(t, err)
	require.NoError(t, s.AddToCart(cartItem("A", "v1", 50, 1)))
	_, err = s.ProcessOrder(ctx)
	require.NoError(t, err)

	stats := s.DashboardStats()
	assert.InDelta(t, 500.0, stats.TotalRevenue, 1e-9)
	assert.Equal(t, len(model.SeedProducts()), stats.ActiveProducts)
	assert.Equal(t, 1, stats.PendingApplications)
	assert.Equal(t, model.DashboardSuccessRate, stats.SuccessRate)
	assert.Len(t, stats.RevenueChart, 7)
}

// ==================== 采购顾问 ====================

func TestStorefront_Ask(t *testing.T) {
	tests := []struct {
		name      string
		advisor   Advisor
		wantText  string
		wantKind  AdvisorErrorKind
		wantError bool
	}{
		{
			name: "正常回答",
			advisor: advisorFunc(func(_ context.Context, req AdviceRequest) (*Advice, error) {
				return &Advice{Text: "**নেটফ্লিক্স** সুপারিশ করছি"}, nil
			}),
			wantText: "**নেটফ্লিক্স** সুপারিশ করছি",
		},
		{
			name: "空回答用兜底",
			advisor: advisorFunc(func(context.Context, AdviceRequest) (*Advice, error) {
				return &Advice{Text: "  "}, nil
			}),
			wantText: AdvisorEmptyFallback,
		},
		{
			name: "模型返回为空",
			advisor: advisorFunc(func(context.Context, AdviceRequest) (*Advice, error) {
				return nil, &AdvisorError{Kind: AdvisorEmpty}
			}),
			wantText:  AdvisorEmptyFallback,
			wantKind:  AdvisorEmpty,
			wantError: true,
		},
		{
			name: "限流",
			advisor: advisorFunc(func(context.Context, AdviceRequest) (*Advice, error) {
				return nil, &AdvisorError{Kind: AdvisorRateLimited, Err: errors.New("429")}
			}),
			wantText:  AdvisorErrorFallback,
			wantKind:  AdvisorRateLimited,
			wantError: true,
		},
		{
			name:      "未配置",
			advisor:   nil,
			wantText:  AdvisorErrorFallback,
			wantKind:  AdvisorNotConfigured,
			wantError: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStorefront(t, nil, tt.advisor)

			reply, err := s.Ask(context.Background(), "কোন স্ট্রিমিং সাবস্ক্রিপশন ভালো?")
			if tt.wantError {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, AdvisorErrorKindOf(err))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, model.ChatRoleAI, reply.Role)
			assert.Equal(t, tt.wantText, reply.Text)

			history := s.ChatHistory()
			require.Len(t, history, 2)
			assert.Equal(t, model.ChatRoleUser, history[0].Role)
			assert.Equal(t, reply, history[1])
			assert.False(t, s.AdvisorBusy())
		})
	}
}

func TestStorefront_AskSendsCurrentCatalog(t *testing.T) {
	var got AdviceRequest
	s := newTestStorefront(t, nil, advisorFunc(func(_ context.Context, req AdviceRequest) (*Advice, error) {
		got = req
		return &Advice{Text: "ok"}, nil
	}))
	loginAdmin(t, s)
	require.NoError(t, s.DeleteProduct(context.Background(), "gc-003"))

	_, err := s.Ask(context.Background(), "gift card?")
	require.NoError(t, err)
	assert.Equal(t, "dev-1", got.DeviceID)
	assert.Len(t, got.Catalog, len(model.SeedProducts())-1)
}

func TestStorefront_AskValidation(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	s := newTestStorefront(t, nil, advisorFunc(func(ctx context.Context, _ AdviceRequest) (*Advice, error) {
		close(started)
		<-release
		return &Advice{Text: "done"}, nil
	}))

	_, err := s.Ask(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyQuery)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = s.Ask(context.Background(), "first")
	}()
	<-started

	// 调用进行中：状态仍可读取（未持有锁），重复提问被拒绝
	assert.True(t, s.Snapshot().AdvisorLoading)
	_, err = s.Ask(context.Background(), "second")
	assert.ErrorIs(t, err, ErrAdvisorBusy)

	close(release)
	wg.Wait()

	history := s.ChatHistory()
	require.Len(t, history, 2)
	assert.Equal(t, "done", history[1].Text)
}
