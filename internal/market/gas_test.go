package market

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nextrade/pkg/gasrpc"
)

func TestFormatGasNumber(t *testing.T) {
	assert.Equal(t, "12.4", formatGasNumber(12.44))
	assert.Equal(t, "12", formatGasNumber(12.04))
	assert.Equal(t, "120", formatGasNumber(120.4))
	assert.Equal(t, "0.5", formatGasNumber(0.52))
	assert.Equal(t, "--", formatGasNumber(math.NaN()))
	assert.Equal(t, "--", formatGasNumber(math.Inf(1)))
}

func TestBuildGasRows(t *testing.T) {
	rows := BuildGasRows([]gasrpc.Snapshot{
		{Network: gasrpc.NetworkEthereum, AvgGwei: 20},
		{Network: gasrpc.NetworkBnb, AvgGwei: 5},
	})

	require.Len(t, rows, 2)

	eth := rows[0]
	assert.Equal(t, "Ethereum", eth.Name)
	assert.Equal(t, "20 Gwei", eth.Value)
	// low = max(20*0.9, 20-1) = 19, fast = 20*1.15 = 23
	assert.Equal(t, "19", eth.Low)
	assert.Equal(t, "23", eth.Fast)

	bnb := rows[1]
	assert.Equal(t, "BNB Chain", bnb.Name)
	// avg<10时 fast = 5*1.1 = 5.5
	assert.Equal(t, "5.5", bnb.Fast)
	assert.Equal(t, "4.5", bnb.Low)
}

// 只拿到部分网络时行数对应减少，不报错也不造数
func TestBuildGasRowsPartial(t *testing.T) {
	rows := BuildGasRows([]gasrpc.Snapshot{
		{Network: gasrpc.NetworkPolygon, AvgGwei: 150.6},
	})
	require.Len(t, rows, 1)
	assert.Equal(t, "Polygon", rows[0].Name)
	assert.Equal(t, "151 Gwei", rows[0].Value)
}

func TestBuildGasRowsNegativeClamped(t *testing.T) {
	rows := BuildGasRows([]gasrpc.Snapshot{
		{Network: gasrpc.NetworkEthereum, AvgGwei: -3},
	})
	require.Len(t, rows, 1)
	assert.Equal(t, "0 Gwei", rows[0].Value)
}
