package model

import "errors"

// ==================== 商品分类 / 区域 ====================

// ProductCategory 商品分类
type ProductCategory string

const (
	CategorySubscription ProductCategory = "Subscription"
	CategoryGiftCard     ProductCategory = "Gift Card"
	CategorySoftware     ProductCategory = "Software"
	CategoryCredit       ProductCategory = "Credit"
)

// Valid 是否为已知分类
func (c ProductCategory) Valid() bool {
	switch c {
	case CategorySubscription, CategoryGiftCard, CategorySoftware, CategoryCredit:
		return true
	}
	return false
}

// ProductRegion 可用区域
type ProductRegion string

const (
	RegionGlobal ProductRegion = "Global"
	RegionUS     ProductRegion = "US"
	RegionEU     ProductRegion = "EU"
	RegionBD     ProductRegion = "BD"
)

// ==================== Variant 变体 ====================

// ErrNegativePrice 变体价格为负
var ErrNegativePrice = errors.New("价格不能为负数")

// Variant 可购买的 SKU（套餐档位、时长等）
type Variant struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discountPrice,omitempty"`
}

// EffectivePrice 实际售价：有折扣价用折扣价
func (v Variant) EffectivePrice() float64 {
	if v.DiscountPrice != nil {
		return *v.DiscountPrice
	}
	return v.Price
}

// Validate 校验价格
func (v Variant) Validate() error {
	if v.Price < 0 || v.EffectivePrice() < 0 {
		return ErrNegativePrice
	}
	return nil
}

// ==================== Review 评价 ====================

// Review 商品评价
type Review struct {
	ID      string  `json:"id"`
	User    string  `json:"user"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
	Date    string  `json:"date"`
}

// ==================== Product 商品 ====================

// Product 商品，按整集合存储，没有数据库主键
type Product struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Category      ProductCategory   `json:"category"`
	Image         string            `json:"image"`
	Variants      []Variant         `json:"variants"`
	Region        ProductRegion     `json:"region"`
	IsHot         bool              `json:"isHot,omitempty"`
	IsRecommended bool              `json:"isRecommended,omitempty"`
	DiscountBadge string            `json:"discountBadge,omitempty"`
	Specs         map[string]string `json:"specs"`
	VendorName    string            `json:"vendorName"`
	Rating        float64           `json:"rating"`
	ReviewsCount  int               `json:"reviewsCount"`
	Reviews       []Review          `json:"reviews,omitempty"`
}

// FindVariant 按 ID 查找变体
func (p *Product) FindVariant(variantID string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.ID == variantID {
			return v, true
		}
	}
	return Variant{}, false
}

// Clone 深拷贝，避免快照与内部状态共享切片/map
func (p Product) Clone() Product {
	out := p
	out.Variants = make([]Variant, len(p.Variants))
	for i, v := range p.Variants {
		out.Variants[i] = v
		if v.DiscountPrice != nil {
			dp := *v.DiscountPrice
			out.Variants[i].DiscountPrice = &dp
		}
	}
	if p.Specs != nil {
		out.Specs = make(map[string]string, len(p.Specs))
		for k, v := range p.Specs {
			out.Specs[k] = v
		}
	}
	if p.Reviews != nil {
		out.Reviews = append([]Review(nil), p.Reviews...)
	}
	return out
}

// CloneProducts 拷贝整个商品集合
func CloneProducts(in []Product) []Product {
	if in == nil {
		return nil
	}
	out := make([]Product, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}
