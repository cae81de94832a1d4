package model

// ==================== 内置种子数据 ====================
// 存储中没有对应集合时使用

func discount(v float64) *float64 { return &v }

// SeedProducts 内置商品目录
func SeedProducts() []Product {
	return []Product{
		{
			ID:           "sub-001",
			Name:         "নেটফ্লিক্স প্রিমিয়াম (4K UHD)",
			Description:  "৪টি স্ক্রিনে একসাথে আল্ট্রা এইচডি স্ট্রিমিং। যেকোনো দেশ থেকে ব্যবহারযোগ্য।",
			Category:     CategorySubscription,
			Image:        "https://images.unsplash.com/photo-1522869635100-9f4c5e86aa37?q=80&w=800&auto=format&fit=crop",
			IsHot:        true,
			Region:       RegionGlobal,
			VendorName:   "গ্লোবাল স্ট্রিম বিডি",
			Rating:       4.8,
			ReviewsCount: 1250,
			Variants: []Variant{
				{ID: "v1", Name: "১ মাস শেয়ার্ড", Price: 4.50},
				{ID: "v2", Name: "১ মাস প্রাইভেট", Price: 15.00, DiscountPrice: discount(13.50)},
				{ID: "v3", Name: "১ বছর প্রাইভেট", Price: 150.00, DiscountPrice: discount(120.00)},
			},
			Specs: map[string]string{"স্ক্রিন": "৪টি", "কোয়ালিটি": "4K + HDR", "ডেলিভারি": "তাৎক্ষণিক"},
		},
		{
			ID:           "gc-001",
			Name:         "অ্যামাজন বিজনেস গিফট কার্ড",
			Description:  "কর্মচারীদের পুরস্কার বা ব্যবসায়িক কেনাকাটার জন্য অ্যামাজন গিফট কার্ড।",
			Category:     CategoryGiftCard,
			Image:        "https://images.unsplash.com/photo-1523475496153-3d6cc0f0bf19?q=80&w=800&auto=format&fit=crop",
			Region:       RegionUS,
			VendorName:   "প্রকিউর ডাইরেক্ট",
			Rating:       4.9,
			ReviewsCount: 840,
			Variants: []Variant{
				{ID: "v1", Name: "$১০ কার্ড", Price: 10.00},
				{ID: "v2", Name: "$৫০ কার্ড", Price: 50.00, DiscountPrice: discount(49.50)},
				{ID: "v3", Name: "$১০০ কার্ড", Price: 100.00, DiscountPrice: discount(98.00)},
			},
			Specs: map[string]string{"ধরণ": "ডিজিটাল কোড", "মেয়াদ": "আজীবন", "অঞ্চল": "USA"},
		},
		{
			ID:            "sub-002",
			Name:          "মাইক্রোসফট ৩৬৫ বিজনেস",
			Description:   "ওয়ার্ড, এক্সেল এবং টিমস সহ টিমের জন্য প্রয়োজনীয় ক্লাউড টুলস।",
			Category:      CategorySubscription,
			Image:         "https://images.unsplash.com/photo-1633419461186-7d40a38105ec?q=80&w=800&auto=format&fit=crop",
			DiscountBadge: "১৫% ছাড়",
			Region:        RegionGlobal,
			VendorName:    "এমএস সলিউশনস বিডি",
			Rating:        4.7,
			ReviewsCount:  2100,
			Variants: []Variant{
				{ID: "v1", Name: "বেসিক (মাসিক)", Price: 6.00},
				{ID: "v2", Name: "প্রিমিয়াম (মাসিক)", Price: 22.00, DiscountPrice: discount(19.50)},
				{ID: "v3", Name: "প্রিমিয়াম (বার্ষিক)", Price: 264.00, DiscountPrice: discount(210.00)},
			},
			Specs: map[string]string{"স্টোরেজ": "১টিবি ওয়ানড্রাইভ", "ইউজার": "৩০০ পর্যন্ত", "প্ল্যাটফর্ম": "উইন্ডোজ/ম্যাক"},
		},
		{
			ID:           "gc-002",
			Name:         "স্টিম ওয়ালেট কার্ড",
			Description:  "গেম কেনা এবং মার্কেটপ্লেসের জন্য গ্লোবাল স্টিম ওয়ালেট কোড।",
			Category:     CategoryGiftCard,
			Image:        "https://images.unsplash.com/photo-1612287230202-1ff1d85d1bdf?q=80&w=800&auto=format&fit=crop",
			IsHot:        true,
			Region:       RegionGlobal,
			VendorName:   "গেমার স্টোর বিডি",
			Rating:       4.9,
			ReviewsCount: 3500,
			Variants: []Variant{
				{ID: "v1", Name: "$৫ কার্ড", Price: 5.50},
				{ID: "v2", Name: "$২০ কার্ড", Price: 22.00, DiscountPrice: discount(21.00)},
				{ID: "v3", Name: "$৫০ কার্ড", Price: 55.00, DiscountPrice: discount(52.00)},
			},
			Specs: map[string]string{"কারেন্সি": "USD", "ব্যবহার": "স্টিম স্টোর", "নিরাপত্তা": "এনক্রিপ্টেড"},
		},
		{
			ID:            "sub-003",
			Name:          "অ্যাডোবি ক্রিয়েটিভ ক্লাউড",
			Description:   "পেশাদারদের জন্য ক্রিয়েটিভ অ্যাপের সম্পূর্ণ স্যুট।",
			Category:      CategorySoftware,
			Image:         "https://images.unsplash.com/photo-1626785774573-4b799315345d?q=80&w=800&auto=format&fit=crop",
			DiscountBadge: "B2B স্পেশাল",
			Region:        RegionGlobal,
			VendorName:    "ক্রিয়েটিভ ইউনিট",
			Rating:        4.8,
			ReviewsCount:  650,
			Variants: []Variant{
				{ID: "v1", Name: "ফটোগ্রাফি প্ল্যান", Price: 19.99},
				{ID: "v2", Name: "অল অ্যাপস (মাসিক)", Price: 82.00, DiscountPrice: discount(75.00)},
				{ID: "v3", Name: "অল অ্যাপস (বার্ষিক)", Price: 980.00, DiscountPrice: discount(650.00)},
			},
			Specs: map[string]string{"অ্যাপস": "২০+", "স্টোরেজ": "১০০জিবি", "ডিভাইস": "২টি"},
		},
		{
			ID:           "sub-004",
			Name:         "স্পটিফাই প্রিমিয়াম ফ্যামিলি",
			Description:  "৬ জন পর্যন্ত মেম্বারের জন্য বিজ্ঞাপনহীন মিউজিক স্ট্রিমিং।",
			Category:     CategorySubscription,
			Image:        "https://images.unsplash.com/photo-1614680376593-902f74cf0d41?q=80&w=800&auto=format&fit=crop",
			IsHot:        true,
			Region:       RegionGlobal,
			VendorName:   "মিউজিক হাব",
			Rating:       4.5,
			ReviewsCount: 4200,
			Variants: []Variant{
				{ID: "v1", Name: "১ মাস শেয়ার্ড", Price: 2.00},
				{ID: "v2", Name: "১ মাস ফুল", Price: 10.00, DiscountPrice: discount(8.50)},
				{ID: "v3", Name: "১ বছর ফুল", Price: 110.00, DiscountPrice: discount(85.00)},
			},
			Specs: map[string]string{"অ্যাকাউন্ট": "৬টি", "বিজ্ঞাপন": "নেই", "কোয়ালিটি": "320kbps"},
		},
		{
			ID:           "gc-003",
			Name:         "গুগল প্লে গিফট কার্ড",
			Description:  "অ্যাপ, গেম এবং ইন-অ্যাপ কেনাকাটার জন্য অফিশিয়াল গুগল প্লে কার্ড।",
			Category:     CategoryGiftCard,
			Image:        "https://images.unsplash.com/photo-1557833006-444027730372?q=80&w=800&auto=format&fit=crop",
			Region:       RegionUS,
			VendorName:   "প্লে-স্টোর এক্সপ্রেস",
			Rating:       4.7,
			ReviewsCount: 1500,
			Variants: []Variant{
				{ID: "v1", Name: "$৫ কার্ড", Price: 5.50},
				{ID: "v2", Name: "$২৫ কার্ড", Price: 26.50, DiscountPrice: discount(25.00)},
				{ID: "v3", Name: "$৫০ কার্ড", Price: 52.50, DiscountPrice: discount(48.00)},
			},
			Specs: map[string]string{"অঞ্চল": "USA", "প্ল্যাটফর্ম": "অ্যান্ড্রয়েড", "রিডিম": "গুগল প্লে"},
		},
		{
			ID:            "sub-005",
			Name:          "ক্যানভা প্রো এন্টারপ্রাইজ",
			Description:   "একসাথে ডিজাইন করুন। পেশাদার টেমপ্লেট এবং কোলাবরেশন টুলস।",
			Category:      CategorySoftware,
			Image:         "https://images.unsplash.com/photo-1626785774573-4b799315345d?q=80&w=800&auto=format&fit=crop",
			DiscountBadge: "জনপ্রিয়",
			Region:        RegionGlobal,
			VendorName:    "ডিজাইন টুলস বিডি",
			Rating:        4.9,
			ReviewsCount:  3100,
			Variants: []Variant{
				{ID: "v1", Name: "১ মাস শেয়ার্ড", Price: 3.50},
				{ID: "v2", Name: "১ বছর শেয়ার্ড", Price: 25.00, DiscountPrice: discount(18.00)},
				{ID: "v3", Name: "১ বছর প্রাইভেট", Price: 120.00, DiscountPrice: discount(95.00)},
			},
			Specs: map[string]string{"টেমপ্লেট": "৬১০k+", "স্টক ফটো": "১০০M+", "ব্র্যান্ড কিট": "আনলিমিটেড"},
		},
	}
}

// SeedOrders 内置示例订单
func SeedOrders() []Order {
	return []Order{
		{
			ID:            "ORD-9921",
			Date:          "২০২৪-০৫-১০",
			Total:         450.00,
			Status:        OrderStatusCompleted,
			PaymentMethod: "Corporate Card",
			BillingName:   "রহিম টেক লিমিটেড",
			BillingEmail:  "billing@rahimtech.bd",
			Items: []CartItem{
				{ProductID: "sub-001", VariantID: "v3", Name: "নেটফ্লিক্স প্রিমিয়াম", VariantName: "১ বছর প্রাইভেট", Price: 120.00, Quantity: 2, Image: ""},
			},
		},
	}
}

// ==================== 新建商品默认值 ====================

const (
	NewProductImage       = "https://images.unsplash.com/photo-1460925895917-afdab827c52f?q=80&w=800"
	NewProductVariantID   = "v1"
	NewProductVariantName = "এন্টারপ্রাইজ লাইসেন্স"
	NewProductVendor      = "Buying BD Direct"
)

// NewProductSpecs 新建商品的固定规格
func NewProductSpecs() map[string]string {
	return map[string]string{"Status": "অফিশিয়াল", "Delivery": "তাৎক্ষণিক"}
}

// ==================== 看板固定数据 ====================

// DashboardSuccessRate 看板成功率展示值
const DashboardSuccessRate = "৯৯.৪%"

// WeeklyRevenueChart 看板周营收图表
func WeeklyRevenueChart() []RevenuePoint {
	return []RevenuePoint{
		{Name: "সোম", Revenue: 4000},
		{Name: "মঙ্গল", Revenue: 3000},
		{Name: "বুধ", Revenue: 2000},
		{Name: "বৃহস্পতি", Revenue: 2780},
		{Name: "শুক্র", Revenue: 1890},
		{Name: "শনি", Revenue: 2390},
		{Name: "রবি", Revenue: 3490},
	}
}
