package utils

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// 订单号：固定前缀 + 5 位随机数
const (
	OrderIDPrefix   = "ORD-"
	orderSuffixMin  = 10000
	orderSuffixSpan = 90000
)

// maxOrderIDAttempts 随机碰撞重试上限，超出后改用时间戳后缀
const maxOrderIDAttempts = 32

// NewOrderID 生成订单号，taken 用于检查是否已被占用（可为 nil）
func NewOrderID(taken func(id string) bool) string {
	for i := 0; i < maxOrderIDAttempts; i++ {
		id := fmt.Sprintf("%s%d", OrderIDPrefix, orderSuffixMin+rand.IntN(orderSuffixSpan))
		if taken == nil || !taken(id) {
			return id
		}
	}
	// 5 位空间基本耗尽，退化为毫秒时间戳，保证唯一
	return fmt.Sprintf("%s%d", OrderIDPrefix, time.Now().UnixMilli())
}

// NewApplicationID 入驻申请 ID
func NewApplicationID(now time.Time) string {
	return fmt.Sprintf("APP-%d", now.UnixMilli())
}

// NewProductID 新建商品 ID
func NewProductID(now time.Time) string {
	return fmt.Sprintf("p-%d", now.UnixMilli())
}
