package mahjong

import "math"

// ShantenUnreachable 该和了形不可能达成（例如有副露时的七对子、国士）
const ShantenUnreachable = math.MaxInt

// StandardShanten 一般形向听数
func StandardShanten(h Hand) (int, error) {
	if err := ValidateHand13(h); err != nil {
		return 0, err
	}
	return standardShanten(h.ClosedCounts(), len(h.Exposed)), nil
}

// SevenPairsShanten 七对子向听数，四张同种只算一对
func SevenPairsShanten(h Hand) (int, error) {
	if err := ValidateHand13(h); err != nil {
		return 0, err
	}
	if len(h.Exposed) > 0 {
		return ShantenUnreachable, nil
	}
	return sevenPairsShanten(h.ClosedCounts()), nil
}

// ThirteenOrphansShanten 国士无双向听数
func ThirteenOrphansShanten(h Hand) (int, error) {
	if err := ValidateHand13(h); err != nil {
		return 0, err
	}
	if len(h.Exposed) > 0 {
		return ShantenUnreachable, nil
	}
	return thirteenOrphansShanten(h.ClosedCounts()), nil
}

func sevenPairsShanten(h Hand34) int {
	pairs, kinds := 0, 0
	for _, c := range h {
		if c > 0 {
			kinds++
		}
		if c >= 2 {
			pairs++
		}
	}
	return 6 - pairs + max(0, 7-kinds)
}

func thirteenOrphansShanten(h Hand34) int {
	unique, pair := 0, 0
	for _, k := range yaochuKinds {
		if h[k] > 0 {
			unique++
		}
		if h[k] >= 2 {
			pair = 1
		}
	}
	return 13 - unique - pair
}

// standardShanten 枚举雀头（含无雀头），对每种情况求面子、搭子的最优组合
func standardShanten(h Hand34, exposed int) int {
	best := 8 - 2*exposed
	work := h

	evaluate := func(pair int) {
		m, t := searchMelds(&work)
		melds := exposed + m
		effective := min(4-melds, t)
		best = min(best, 8-2*melds-effective-pair)
	}

	for i := 0; i < KindCount; i++ {
		if work[i] < 2 {
			continue
		}
		k := TileKind(i)
		work.withRemoved(func() { evaluate(1) }, k, k)
	}
	evaluate(0)
	return best
}

// searchMelds 回溯搜索面子，叶子处贪心数搭子，取 2*面子+搭子 最大者
func searchMelds(h *Hand34) (melds, partials int) {
	bestScore := -1

	var search func(index, m int)
	search = func(index, m int) {
		if index >= KindCount {
			t := countPartials(*h)
			if score := 2*m + t; score > bestScore {
				bestScore = score
				melds, partials = m, t
			}
			return
		}
		if h[index] == 0 {
			search(index+1, m)
			return
		}

		k := TileKind(index)
		if h[k] >= 3 {
			h.withRemoved(func() { search(index, m+1) }, k, k, k)
		}
		if k.IsNumbered() && k.Number() <= 7 && h[k+1] > 0 && h[k+2] > 0 {
			h.withRemoved(func() { search(index, m+1) }, k, k+1, k+2)
		}
		search(index+1, m)
	}

	search(0, 0)
	return melds, partials
}

// countPartials 贪心统计剩余牌的搭子：两面/边张、嵌张、对子
// h 按值传入，修改的是副本
func countPartials(h Hand34) int {
	t := 0
	for i := 0; i < KindCount; i++ {
		if h[i] == 0 {
			continue
		}
		k := TileKind(i)
		if k.IsNumbered() {
			if k.Number() <= 8 && h[i] > 0 && h[i+1] > 0 {
				h[i]--
				h[i+1]--
				t++
			}
			if k.Number() <= 7 && h[i] > 0 && h[i+2] > 0 {
				h[i]--
				h[i+2]--
				t++
			}
		}
		if h[i] >= 2 {
			h[i] -= 2
			t++
		}
	}
	return t
}

type shantenOptions struct {
	standard        bool
	sevenPairs      bool
	thirteenOrphans bool
}

type ShantenOption func(*shantenOptions)

// WithoutStandard 不计算一般形
func WithoutStandard() ShantenOption {
	return func(o *shantenOptions) { o.standard = false }
}

// WithoutSevenPairs 不计算七对子
func WithoutSevenPairs() ShantenOption {
	return func(o *shantenOptions) { o.sevenPairs = false }
}

// WithoutThirteenOrphans 不计算国士无双
func WithoutThirteenOrphans() ShantenOption {
	return func(o *shantenOptions) { o.thirteenOrphans = false }
}

func newShantenOptions(opts []ShantenOption) shantenOptions {
	o := shantenOptions{standard: true, sevenPairs: true, thirteenOrphans: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// flags 缓存键的一部分
func (o shantenOptions) flags() byte {
	var b byte
	if o.standard {
		b |= 1
	}
	if o.sevenPairs {
		b |= 2
	}
	if o.thirteenOrphans {
		b |= 4
	}
	return b
}

// Shanten 各和了形向听数的最小值，全部禁用时返回 ShantenUnreachable
func Shanten(h Hand, opts ...ShantenOption) (int, error) {
	return defaultSearcher.Shanten(h, opts...)
}

func shantenAll(h Hand34, exposed int, o shantenOptions) int {
	best := ShantenUnreachable
	if o.standard {
		best = min(best, standardShanten(h, exposed))
	}
	if exposed == 0 {
		if o.sevenPairs {
			best = min(best, sevenPairsShanten(h))
		}
		if o.thirteenOrphans {
			best = min(best, thirteenOrphansShanten(h))
		}
	}
	return best
}
