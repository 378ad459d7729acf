package mahjong

import (
	"slices"

	"github.com/k0kishima/riichi-mahjong/common/cache"
	"github.com/k0kishima/riichi-mahjong/common/log"
)

// Searcher 向听数与听牌搜索，可选缓存，结果与不缓存时完全一致
// 并发安全：缓存本身线程安全，计算只使用局部数组
type Searcher struct {
	cache *cache.ResultCache
}

var defaultSearcher = NewSearcher(nil)

// NewSearcher c 为 nil 时不缓存
func NewSearcher(c *cache.ResultCache) *Searcher {
	if c != nil {
		log.Debug("searcher 启用结果缓存")
	}
	return &Searcher{cache: c}
}

// Shanten 组合向听数
func (s *Searcher) Shanten(h Hand, opts ...ShantenOption) (int, error) {
	if err := ValidateHand13(h); err != nil {
		return 0, err
	}

	o := newShantenOptions(opts)
	counts := h.ClosedCounts()
	exposed := len(h.Exposed)
	if s.cache == nil {
		return shantenAll(counts, exposed, o), nil
	}

	key := "s" + counts.keyWithFixedMelds(exposed) + string([]byte{o.flags()})
	if v, ok := s.cache.GetInt(key); ok {
		return v, nil
	}
	v := shantenAll(counts, exposed, o)
	s.cache.Set(key, v)
	return v, nil
}

// Waits 枚举听牌 + 计算进张（未计入他家可见牌）
func (s *Searcher) Waits(h Hand) ([]TileKind, int, error) {
	if err := ValidateHand13(h); err != nil {
		return nil, 0, err
	}

	held := Hand34FromKinds(h.AllKinds())
	var waits []TileKind
	key := ""
	if s.cache != nil {
		counts := h.ClosedCounts()
		key = "w" + counts.keyWithFixedMelds(len(h.Exposed)) + exposedKey(h.Exposed)
		if v, ok := s.cache.Get(key); ok {
			if cached, ok := v.([]TileKind); ok {
				waits = slices.Clone(cached)
				return waits, ukeireByWaits(held, waits), nil
			}
		}
	}

	for t := 0; t < KindCount; t++ {
		k := TileKind(t)
		if held[k] >= 4 {
			continue
		}
		work := Hand{Closed: append(slices.Clone(h.Closed), k), Exposed: h.Exposed}
		ok, err := IsWinning(work)
		if err != nil {
			return nil, 0, err
		}
		if ok {
			waits = append(waits, k)
		}
	}

	if s.cache != nil {
		s.cache.Set(key, slices.Clone(waits))
	}
	return waits, ukeireByWaits(held, waits), nil
}

// ukeireByWaits 听牌的剩余枚数
func ukeireByWaits(held Hand34, waits []TileKind) int {
	ukeire := 0
	for _, k := range waits {
		ukeire += 4 - int(held[k])
	}
	return ukeire
}

// exposedKey 副露的牌种影响剩余枚数，需要进入缓存键
func exposedKey(exposed []Meld) string {
	b := make([]byte, 0, len(exposed)*4)
	for _, m := range exposed {
		for _, k := range m.Tiles {
			b = append(b, byte(k))
		}
		b = append(b, 0xff)
	}
	return string(b)
}

// IsWinning 是否和牌（任一拆解成立）
func IsWinning(h Hand) (bool, error) {
	structures, err := Decompose(h)
	if err != nil {
		return false, err
	}
	return len(structures) > 0, nil
}

// Waits 使用默认 Searcher
func Waits(h Hand) ([]TileKind, int, error) {
	return defaultSearcher.Waits(h)
}
