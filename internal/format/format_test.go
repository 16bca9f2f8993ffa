package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	assert.Equal(t, "$64,230.50", Currency(64230.5))
	assert.Equal(t, "$50,000.00", Currency(50000))
	assert.Equal(t, "$0.45", Currency(0.45))
	assert.Equal(t, "-$1,234.57", Currency(-1234.567))
}

func TestPrice(t *testing.T) {
	// 分级精度：>=1两位，[0.01,1)四位，<0.01八位
	assert.Equal(t, "$145.80", Price(145.8))
	assert.Equal(t, "$0.45", Price(0.45))
	assert.Equal(t, "$0.1234", Price(0.1234))
	assert.Equal(t, "$0.000008", Price(0.000008))
	// 尾0去掉但至少保留两位
	assert.Equal(t, "$0.16", Price(0.16))
	assert.Equal(t, "$7.20", Price(7.2))
}

func TestCompactCurrency(t *testing.T) {
	assert.Equal(t, "$1.24T", CompactCurrency(1.24e12))
	assert.Equal(t, "$45.2B", CompactCurrency(45.2e9))
	assert.Equal(t, "$1.2M", CompactCurrency(1200000))
	assert.Equal(t, "$25B", CompactCurrency(25e9))
	assert.Equal(t, "$999", CompactCurrency(999))
	// 四舍五入进位到下一档
	assert.Equal(t, "$1M", CompactCurrency(999999))
	assert.Equal(t, "-$1.5K", CompactCurrency(-1500))
}

func TestSignedCurrency(t *testing.T) {
	assert.Equal(t, "+$1.5M", SignedCurrency(1500000))
	assert.Equal(t, "-$800K", SignedCurrency(-800000))
	assert.Equal(t, "+$0", SignedCurrency(0))
	assert.Equal(t, "+$700K", SignedCurrency(700000))
}

func TestHoverPrice(t *testing.T) {
	v := func(f float64) *float64 { return &f }
	assert.Equal(t, "$64.2K", HoverPrice(v(64230.5)))
	assert.Equal(t, "$1.2M", HoverPrice(v(1200000)))
	assert.Equal(t, "$999", HoverPrice(v(999)))
	assert.Equal(t, "--", HoverPrice(nil))
	nan := math.NaN()
	assert.Equal(t, "--", HoverPrice(&nan))
}

func TestPct(t *testing.T) {
	assert.Equal(t, "+2.4%", Pct(2.4))
	assert.Equal(t, "-0.8%", Pct(-0.8))
	assert.Equal(t, "0.0%", Pct(0))
	assert.Equal(t, "0.0%", Pct(math.NaN()))

	v := 5.0
	assert.Equal(t, "+5.0%", PctPtr(&v))
	assert.Equal(t, "0.0%", PctPtr(nil))
}

func TestCount(t *testing.T) {
	assert.Equal(t, "1,234,567", Count(1234567.4))
	assert.Equal(t, "0", Count(-10))
	assert.Equal(t, "12,000", Count(12000))
	assert.Equal(t, "500", Count(500.2))
}
