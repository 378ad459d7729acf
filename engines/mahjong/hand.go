package mahjong

import (
	"fmt"
	"slices"
)

const (
	// HandSizeBeforeDraw 摸牌前的手牌张数
	HandSizeBeforeDraw = 13
	// HandSizeAfterDraw 和了时的手牌张数
	HandSizeAfterDraw = 14
)

// Hand 门内手牌 + 已确定的副露/暗杠
type Hand struct {
	Closed  []TileKind
	Exposed []Meld
}

// TileCount 有效张数，每个副露按 3 张计，杠的第四张是岭上补牌
func (h Hand) TileCount() int {
	return len(h.Closed) + 3*len(h.Exposed)
}

// IsConcealed 门前清，暗杠不破坏门清
func (h Hand) IsConcealed() bool {
	for _, m := range h.Exposed {
		if m.IsOpen() {
			return false
		}
	}
	return true
}

// ClosedCounts 门内手牌的牌种分布
func (h Hand) ClosedCounts() Hand34 {
	return Hand34FromKinds(h.Closed)
}

// AllKinds 全部实体牌（含杠的四张），升序
func (h Hand) AllKinds() []TileKind {
	out := slices.Clone(h.Closed)
	for _, m := range h.Exposed {
		out = append(out, m.Tiles...)
	}
	slices.Sort(out)
	return out
}

// ValidateHand13 校验摸牌前手牌
func ValidateHand13(h Hand) error {
	return validateHand(h, HandSizeBeforeDraw)
}

// ValidateHand14 校验和了手牌
func ValidateHand14(h Hand) error {
	return validateHand(h, HandSizeAfterDraw)
}

func validateHand(h Hand, want int) error {
	n := h.TileCount()
	if n < want {
		return fmt.Errorf("%w: want %d, got %d", ErrTooFewTiles, want, n)
	}
	if n > want {
		return fmt.Errorf("%w: want %d, got %d", ErrTooManyTiles, want, n)
	}

	var seen [KindCount]int
	for _, k := range h.Closed {
		if !k.IsValid() {
			return fmt.Errorf("%w: kind %d out of range", ErrInvalidTile, int(k))
		}
		seen[k]++
	}
	for _, m := range h.Exposed {
		if !m.IsComplete() || !m.Valid() {
			return fmt.Errorf("%w: exposed %s is not a complete meld", ErrInvalidTile, m)
		}
		for _, k := range m.Tiles {
			seen[k]++
		}
	}
	for k, c := range seen {
		if c > 4 {
			return fmt.Errorf("%w: %d copies of %s", ErrInvalidTile, c, TileKind(k))
		}
	}
	return nil
}

// Hand34 牌种分布
type Hand34 [KindCount]uint8

func Hand34FromKinds(kinds []TileKind) Hand34 {
	var h Hand34
	for _, k := range kinds {
		if k.IsValid() {
			h[k]++
		}
	}
	return h
}

func (h *Hand34) Total() int {
	n := 0
	for _, c := range h {
		n += int(c)
	}
	return n
}

// Distinct 持有的牌种数
func (h *Hand34) Distinct() int {
	n := 0
	for _, c := range h {
		if c > 0 {
			n++
		}
	}
	return n
}

// Kinds 展开为升序牌种列表
func (h *Hand34) Kinds() []TileKind {
	out := make([]TileKind, 0, h.Total())
	for i, c := range h {
		for j := uint8(0); j < c; j++ {
			out = append(out, TileKind(i))
		}
	}
	return out
}

// withRemoved 临时拿走 kinds 后执行 fn，返回前一定恢复
func (h *Hand34) withRemoved(fn func(), kinds ...TileKind) {
	for _, k := range kinds {
		h[k]--
	}
	defer func() {
		for _, k := range kinds {
			h[k]++
		}
	}()
	fn()
}

// keyWithFixedMelds 34 字节分布 + 副露数
func (h *Hand34) keyWithFixedMelds(fixedMelds int) string {
	var b [KindCount + 1]byte
	for i := 0; i < KindCount; i++ {
		b[i] = h[i]
	}
	b[KindCount] = byte(fixedMelds)
	return string(b[:])
}
