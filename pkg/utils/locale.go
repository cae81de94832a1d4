package utils

import (
	"fmt"
	"strings"
	"time"
)

// 支持的区域
const (
	LocaleBnBD = "bn-BD"
	LocaleEnUS = "en-US"
)

var bengaliDigits = strings.NewReplacer(
	"0", "০", "1", "১", "2", "২", "3", "৩", "4", "৪",
	"5", "৫", "6", "৬", "7", "৭", "8", "৮", "9", "৯",
)

// FormatLocaleDate 按区域格式化日期（与浏览器 toLocaleDateString 输出一致）
// bn-BD: d/m/yyyy，孟加拉数字
// en-US: m/d/yyyy
func FormatLocaleDate(t time.Time, locale string) string {
	switch locale {
	case LocaleEnUS:
		return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
	default:
		return ToBengaliDigits(fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year()))
	}
}

// ToBengaliDigits 把 ASCII 数字替换为孟加拉数字
func ToBengaliDigits(s string) string {
	return bengaliDigits.Replace(s)
}

// ISODate yyyy-mm-dd
func ISODate(t time.Time) string {
	return t.Format("2006-01-02")
}
