package format

import (
	"math"
	"strconv"
	"strings"
)

// 展示层货币/百分比格式化，对齐前端 Intl.NumberFormat("en-US") 的输出
// 全部是纯函数，方便快照测试

// Currency 标准货币格式，固定两位小数，如 $64,230.50
func Currency(value float64) string {
	return currency(value, 2, 2)
}

// Price 按价格区间分级精度：>=1 两位小数，[0.01,1) 四位，<0.01 八位
func Price(value float64) string {
	abs := math.Abs(value)
	switch {
	case abs >= 1:
		return currency(value, 2, 2)
	case abs >= 0.01:
		return currency(value, 2, 4)
	default:
		return currency(value, 2, 8)
	}
}

// CompactCurrency 紧凑货币格式，最多两位小数，如 $1.2B
func CompactCurrency(value float64) string {
	return compactCurrency(value, 2, false)
}

// SignedCurrency 紧凑货币格式，总是带符号，最多一位小数，如 +$1.5M
func SignedCurrency(value float64) string {
	return compactCurrency(value, 1, true)
}

// Pct 百分比，固定一位小数，正数带+号；NaN 返回 "0.0%"
func Pct(value float64) string {
	if math.IsNaN(value) {
		return "0.0%"
	}
	sign := ""
	if value > 0 {
		sign = "+"
	}
	return sign + strconv.FormatFloat(value, 'f', 1, 64) + "%"
}

// PctPtr 可空百分比，nil 返回 "0.0%"
func PctPtr(value *float64) string {
	if value == nil {
		return "0.0%"
	}
	return Pct(*value)
}

// Count 非负整数计数，带千分位，如 1,234,567
func Count(value float64) string {
	rounded := int64(math.Round(value))
	if rounded < 0 {
		rounded = 0
	}
	return groupInt(strconv.FormatInt(rounded, 10))
}

// currency 带千分位的货币格式，小数位数在 [minFrac, maxFrac] 之间，多余的尾0去掉
func currency(value float64, minFrac, maxFrac int) string {
	neg := value < 0 || (value == 0 && math.Signbit(value))
	abs := math.Abs(value)

	str := strconv.FormatFloat(abs, 'f', maxFrac, 64)
	str = trimFraction(str, minFrac)

	intPart := str
	decPart := ""
	if idx := strings.IndexByte(str, '.'); idx >= 0 {
		intPart = str[:idx]
		decPart = str[idx+1:]
	}

	out := "$" + groupInt(intPart)
	if decPart != "" {
		out += "." + decPart
	}
	if neg {
		out = "-" + out
	}
	return out
}

var compactUnits = []struct {
	threshold float64
	suffix    string
}{
	{1e12, "T"},
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "K"},
}

// HoverPrice 图表悬浮提示用的紧凑价格，缺失或NaN显示 "--"
func HoverPrice(value *float64) string {
	if value == nil || math.IsNaN(*value) || math.IsInf(*value, 0) {
		return "--"
	}
	return compactCurrency(*value, 1, false)
}

// compactCurrency 紧凑写法：按 K/M/B/T 缩写，尾0去掉
func compactCurrency(value float64, maxFrac int, signed bool) string {
	neg := value < 0
	abs := math.Abs(value)

	scaled := abs
	suffix := ""
	for _, unit := range compactUnits {
		if abs >= unit.threshold {
			scaled = abs / unit.threshold
			suffix = unit.suffix
			break
		}
	}

	str := strconv.FormatFloat(scaled, 'f', maxFrac, 64)
	// 四舍五入后可能进位到1000，此时升一级单位（999999 -> $1M）
	if rounded, err := strconv.ParseFloat(str, 64); err == nil && rounded >= 1000 && suffix != "T" {
		next := suffix
		switch suffix {
		case "":
			next = "K"
		case "K":
			next = "M"
		case "M":
			next = "B"
		case "B":
			next = "T"
		}
		suffix = next
		str = strconv.FormatFloat(rounded/1000, 'f', maxFrac, 64)
	}

	str = trimFraction(str, 0)

	intPart := str
	decPart := ""
	if idx := strings.IndexByte(str, '.'); idx >= 0 {
		intPart = str[:idx]
		decPart = str[idx+1:]
	}

	out := "$" + groupInt(intPart)
	if decPart != "" {
		out += "." + decPart
	}
	out += suffix

	if neg {
		return "-" + out
	}
	if signed {
		return "+" + out
	}
	return out
}

// trimFraction 去掉小数部分多余的尾0，但至少保留 minFrac 位
func trimFraction(str string, minFrac int) string {
	idx := strings.IndexByte(str, '.')
	if idx < 0 {
		return str
	}
	dec := str[idx+1:]
	for len(dec) > minFrac && dec[len(dec)-1] == '0' {
		dec = dec[:len(dec)-1]
	}
	if dec == "" {
		return str[:idx]
	}
	return str[:idx] + "." + dec
}

// groupInt 给整数部分加千分位
func groupInt(s string) string {
	out := ""
	for i, v := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			out += ","
		}
		out += string(v)
	}
	return out
}
