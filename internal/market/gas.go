package market

import (
	"math"
	"strconv"

	"nextrade/internal/model"
	"nextrade/pkg/gasrpc"
)

var gasNetworkNames = map[gasrpc.Network]string{
	gasrpc.NetworkEthereum: "Ethereum",
	gasrpc.NetworkBnb:      "BNB Chain",
	gasrpc.NetworkPolygon:  "Polygon",
}

// formatGasNumber 分级精度：>=100 取整，否则保留1位小数
// 整数值不带小数点（12.0 -> "12"）
func formatGasNumber(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "--"
	}
	if value >= 100 {
		return strconv.FormatInt(int64(math.Round(value)), 10)
	}
	rounded := math.Round(value*10) / 10
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// BuildGasRows 把gas快照推导成展示行
// low/fast由平均价推算，拿不到的网络不出行
func BuildGasRows(snapshots []gasrpc.Snapshot) []model.GasRow {
	rows := make([]model.GasRow, 0, len(snapshots))
	for _, s := range snapshots {
		name, ok := gasNetworkNames[s.Network]
		if !ok {
			continue
		}

		avg := math.Max(s.AvgGwei, 0)
		low := math.Max(avg*0.9, avg-1)
		fast := avg * 1.15
		if avg < 10 {
			fast = avg * 1.1
		}

		rows = append(rows, model.GasRow{
			Name:  name,
			Value: formatGasNumber(avg) + " Gwei",
			Low:   formatGasNumber(low),
			Avg:   formatGasNumber(avg),
			Fast:  formatGasNumber(fast),
		})
	}
	return rows
}
