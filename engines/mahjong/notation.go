package mahjong

import (
	"fmt"
	"strings"
)

// ParseKinds 解析 MPSZ 记法，如 "123m456p789s11z"，0 视为赤五
func ParseKinds(s string) ([]TileKind, error) {
	var out []TileKind
	var pending []int
	for i, r := range s {
		switch {
		case r == ' ':
			continue
		case r >= '0' && r <= '9':
			pending = append(pending, int(r-'0'))
		case r == 'm' || r == 'p' || r == 's' || r == 'z':
			if len(pending) == 0 {
				return nil, fmt.Errorf("%w: suit %q at %d has no numbers", ErrInvalidNotation, r, i)
			}
			for _, n := range pending {
				k, err := kindOf(n, r)
				if err != nil {
					return nil, err
				}
				out = append(out, k)
			}
			pending = pending[:0]
		default:
			return nil, fmt.Errorf("%w: unexpected %q at %d", ErrInvalidNotation, r, i)
		}
	}
	if len(pending) > 0 {
		return nil, fmt.Errorf("%w: trailing numbers without suit in %q", ErrInvalidNotation, s)
	}
	return out, nil
}

func kindOf(n int, suit rune) (TileKind, error) {
	if suit == 'z' {
		if n < 1 || n > 7 {
			return 0, fmt.Errorf("%w: honor %dz out of range", ErrInvalidNotation, n)
		}
		return East + TileKind(n-1), nil
	}
	if n == 0 {
		n = 5
	}
	base := map[rune]TileKind{'m': Man1, 'p': Pin1, 's': So1}[suit]
	return base + TileKind(n-1), nil
}

// ParseHand 扩展 MPSZ 记法：[456p] 为吃/碰/大明杠，(1111z) 为暗杠
func ParseHand(s string) (Hand, error) {
	var h Hand
	var closed strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '[' && c != '(' {
			closed.WriteByte(c)
			continue
		}

		end := byte(']')
		if c == '(' {
			end = ')'
		}
		j := strings.IndexByte(s[i+1:], end)
		if j < 0 {
			return Hand{}, fmt.Errorf("%w: unclosed %q at %d", ErrInvalidNotation, c, i)
		}
		kinds, err := ParseKinds(s[i+1 : i+1+j])
		if err != nil {
			return Hand{}, err
		}
		m, err := meldOf(kinds, c == '(')
		if err != nil {
			return Hand{}, err
		}
		h.Exposed = append(h.Exposed, m)
		i += j + 1
	}

	kinds, err := ParseKinds(closed.String())
	if err != nil {
		return Hand{}, err
	}
	h.Closed = kinds
	return h, nil
}

func meldOf(kinds []TileKind, concealed bool) (Meld, error) {
	s := sortedCopy(kinds)
	if concealed {
		if !IsQuad(s...) {
			return Meld{}, fmt.Errorf("%w: (%s) is not a quad", ErrInvalidNotation, FormatKinds(s))
		}
		return NewQuad(s[0]).Claimed(CallAnkan, SeatSelf), nil
	}
	switch {
	case IsSequence(s...):
		return NewSequence(s[0]).Claimed(CallChi, SeatKamicha), nil
	case IsTriplet(s...):
		return NewTriplet(s[0]).Claimed(CallPon, SeatToimen), nil
	case IsQuad(s...):
		return NewQuad(s[0]).Claimed(CallDaiminkan, SeatToimen), nil
	}
	return Meld{}, fmt.Errorf("%w: [%s] is not a meld", ErrInvalidNotation, FormatKinds(s))
}

// MustParseHand 解析失败直接 panic，用于常量手牌
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(err)
	}
	return h
}

// MustParseKind 单张牌
func MustParseKind(s string) TileKind {
	kinds, err := ParseKinds(s)
	if err != nil {
		panic(err)
	}
	if len(kinds) != 1 {
		panic(fmt.Sprintf("%q is not a single tile", s))
	}
	return kinds[0]
}

// FormatKinds 排序后按 m、p、s、z 输出
func FormatKinds(kinds []TileKind) string {
	sorted := sortedCopy(kinds)
	var b strings.Builder
	for _, suit := range []Suit{SuitMan, SuitPin, SuitSou, SuitHonor} {
		n := 0
		for _, k := range sorted {
			if !k.IsValid() || k.Suit() != suit {
				continue
			}
			if suit == SuitHonor {
				b.WriteByte(byte('1' + k - East))
			} else {
				b.WriteByte(byte('0' + k.Number()))
			}
			n++
		}
		if n > 0 {
			b.WriteString(suit.String())
		}
	}
	return b.String()
}

// FormatHand ParseHand 的逆操作
func FormatHand(h Hand) string {
	var b strings.Builder
	b.WriteString(FormatKinds(h.Closed))
	for _, m := range h.Exposed {
		if m.Call == CallAnkan {
			b.WriteString("(" + FormatKinds(m.Tiles) + ")")
		} else {
			b.WriteString("[" + FormatKinds(m.Tiles) + "]")
		}
	}
	return b.String()
}

// FormatStructure 每个块一组，便于命令行展示
func FormatStructure(s Structure) string {
	blocks := blocksOf(s)
	if len(blocks) == 0 {
		return FormatKinds(s.Tiles())
	}
	parts := make([]string, 0, len(blocks))
	for _, m := range blocks {
		text := FormatKinds(m.Tiles)
		if m.IsOpen() {
			text = "[" + text + "]"
		} else if m.Call == CallAnkan {
			text = "(" + text + ")"
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, " ")
}
