package leaderboard

import "fmt"

// PseudoWallet 由币种id确定性推导一个展示用的伪钱包地址
// 同一id任何时候都得到同一地址，跟单配置以它为key
func PseudoWallet(coinID string) string {
	hash := uint32(2166136261)
	for i := 0; i < len(coinID); i++ {
		hash ^= uint32(coinID[i])
		hash += (hash << 1) + (hash << 4) + (hash << 7) + (hash << 8) + (hash << 24)
	}

	hex := fmt.Sprintf("%08x", hash)
	return "0x" + hex[:2] + "..." + hex[4:]
}
