package model

// ==================== 订单状态常量 ====================

// OrderStatus 订单状态
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"    // 待处理
	OrderStatusProcessing OrderStatus = "Processing" // 处理中
	OrderStatusCompleted  OrderStatus = "Completed"  // 已完成
	OrderStatusRefunded   OrderStatus = "Refunded"   // 已退款
)

// Valid 是否为已知状态
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusRefunded:
		return true
	}
	return false
}

// 结算默认值
const (
	PaymentMethodCorporateCredit = "Corporate Credit"
	GuestBillingName             = "Guest Enterprise"
	GuestBillingEmail            = "guest@enterprise.bd"
)

// ==================== CartItem 购物车项 ====================

// CartItem 选中的 (商品, 变体) 快照
type CartItem struct {
	ProductID   string  `json:"productId"`
	VariantID   string  `json:"variantId"`
	Name        string  `json:"name"`
	VariantName string  `json:"variantName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Image       string  `json:"image"`
}

// SameLine 是否为同一 (productId, variantId)
func (i CartItem) SameLine(productID, variantID string) bool {
	return i.ProductID == productID && i.VariantID == variantID
}

// LineTotal 小计
func (i CartItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}

// SumItems 计算合计，每次重新计算
func SumItems(items []CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.LineTotal()
	}
	return total
}

// ==================== Order 订单 ====================

// Order 订单，创建后除 Status 外不可变
type Order struct {
	ID            string      `json:"id"`
	Date          string      `json:"date"`
	Total         float64     `json:"total"`
	Status        OrderStatus `json:"status"`
	Items         []CartItem  `json:"items"`
	PaymentMethod string      `json:"paymentMethod"`
	BillingName   string      `json:"billingName"`
	BillingEmail  string      `json:"billingEmail"`
}

// Clone 深拷贝
func (o Order) Clone() Order {
	out := o
	out.Items = append([]CartItem(nil), o.Items...)
	return out
}

// CloneOrders 拷贝订单集合
func CloneOrders(in []Order) []Order {
	if in == nil {
		return nil
	}
	out := make([]Order, len(in))
	for i, o := range in {
		out[i] = o.Clone()
	}
	return out
}
