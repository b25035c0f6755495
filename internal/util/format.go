package util

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencySymbol 票房金额前缀（印度卢比）
const CurrencySymbol = "₹"

var printer = message.NewPrinter(language.English)

// FormatCount 千分位整数，小数部分截断
func FormatCount(value float64) string {
	return groupInteger(math.Trunc(value))
}

// FormatCurrency 货币前缀 + 千分位，不保留小数
func FormatCurrency(value float64) string {
	return CurrencySymbol + groupInteger(math.RoundToEven(value))
}

// groupInteger 超出 int64 范围（含 ±Inf、NaN）时按浮点输出，避免转换溢出
func groupInteger(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) || math.Abs(value) >= math.MaxInt64 {
		return printer.Sprintf("%.0f", value)
	}
	return printer.Sprintf("%d", int64(value))
}

// FormatPercent 保留两位小数的百分比，value 已是百分数（80 -> "80.00%"）
func FormatPercent(value float64) string {
	return fmt.Sprintf("%.2f%%", value)
}
