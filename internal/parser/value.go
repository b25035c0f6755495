package parser

import (
	"math"
	"strconv"
	"strings"
)

// PercentPlaceholder 源数据中表示"无占用率"的占位文本
const PercentPlaceholder = "NaN%"

// ParseNumber 解析数值文本（允许千分位逗号与首尾空白）
// 非有限值（NaN/Inf）视为无法解析
func ParseNumber(text string) (float64, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParsePercent 解析百分比文本，如 "80.00%" -> 80
// 去掉所有 "%" 后按浮点数解析，不要求必须带 "%"
func ParsePercent(text string) (float64, bool) {
	return ParseNumber(strings.ReplaceAll(text, "%", ""))
}

// IsPercentPlaceholder 是否为占位文本 "NaN%"
func IsPercentPlaceholder(text string) bool {
	return text == PercentPlaceholder
}
