package market

import (
	"fmt"
	"sort"

	"nextrade/internal/format"
	"nextrade/internal/model"
	"nextrade/pkg/defillama"
)

const trendingTopN = 4

// BuildTrendingProtocols 按TVL取头部协议做展示行
// TVL缺失或非正的协议直接剔除
func BuildTrendingProtocols(protocols []defillama.Protocol) []model.TrendingProtocolItem {
	valid := make([]defillama.Protocol, 0, len(protocols))
	for _, p := range protocols {
		if p.Tvl != nil && *p.Tvl > 0 {
			valid = append(valid, p)
		}
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return *valid[i].Tvl > *valid[j].Tvl
	})
	if len(valid) > trendingTopN {
		valid = valid[:trendingTopN]
	}

	items := make([]model.TrendingProtocolItem, 0, len(valid))
	for i, p := range valid {
		chain := "Multi-chain"
		if len(p.Chains) > 0 {
			chain = p.Chains[0]
		}
		items = append(items, model.TrendingProtocolItem{
			Rank:  fmt.Sprintf("%02d", i+1),
			Name:  p.Name,
			Chain: chain,
			Tvl:   format.CompactCurrency(*p.Tvl),
		})
	}
	return items
}
