package mahjong

import (
	"slices"
	"strings"
)

type MeldType int

const (
	MeldSequence MeldType = iota // 顺子
	MeldTriplet                  // 刻子
	MeldQuad                     // 杠子
	MeldPair                     // 对子
	MeldPartial                  // 搭子（两面、边张、嵌张）
)

func (t MeldType) String() string {
	switch t {
	case MeldSequence:
		return "Sequence"
	case MeldTriplet:
		return "Triplet"
	case MeldQuad:
		return "Quad"
	case MeldPair:
		return "Pair"
	case MeldPartial:
		return "PartialSequence"
	default:
		return "Unknown"
	}
}

// CallKind 副露方式，CallNone 表示手里自己组成的面子
type CallKind int

const (
	CallNone      CallKind = iota
	CallChi                // 吃
	CallPon                // 碰
	CallDaiminkan          // 大明杠
	CallKakan              // 加杠
	CallAnkan              // 暗杠
)

func (c CallKind) String() string {
	switch c {
	case CallChi:
		return "Chi"
	case CallPon:
		return "Pon"
	case CallDaiminkan:
		return "Daiminkan"
	case CallKakan:
		return "Kakan"
	case CallAnkan:
		return "Ankan"
	default:
		return "None"
	}
}

// Seat 相对座位，表示副露牌来自谁
type Seat int

const (
	SeatSelf     Seat = iota // 自己（暗杠）
	SeatShimocha             // 下家
	SeatToimen               // 对家
	SeatKamicha              // 上家
)

// Meld 面子/对子/搭子，Tiles 升序
type Meld struct {
	Type  MeldType
	Tiles []TileKind
	Call  CallKind
	From  Seat
}

func NewSequence(first TileKind) Meld {
	return Meld{Type: MeldSequence, Tiles: []TileKind{first, first + 1, first + 2}}
}

func NewTriplet(k TileKind) Meld {
	return Meld{Type: MeldTriplet, Tiles: []TileKind{k, k, k}}
}

func NewQuad(k TileKind) Meld {
	return Meld{Type: MeldQuad, Tiles: []TileKind{k, k, k, k}}
}

func NewPair(k TileKind) Meld {
	return Meld{Type: MeldPair, Tiles: []TileKind{k, k}}
}

// Claimed 附加副露来源，不影响牌型判断
func (m Meld) Claimed(call CallKind, from Seat) Meld {
	m.Call = call
	m.From = from
	return m
}

// IsOpen 鸣牌得到的面子，暗杠不算
func (m Meld) IsOpen() bool {
	return m.Call != CallNone && m.Call != CallAnkan
}

func (m Meld) IsComplete() bool {
	return m.Type == MeldSequence || m.Type == MeldTriplet || m.Type == MeldQuad
}

// IsTripletLike 刻子或杠子
func (m Meld) IsTripletLike() bool {
	return m.Type == MeldTriplet || m.Type == MeldQuad
}

func (m Meld) First() TileKind {
	if len(m.Tiles) == 0 {
		return -1
	}
	return m.Tiles[0]
}

func (m Meld) Contains(k TileKind) bool {
	return slices.Contains(m.Tiles, k)
}

// Valid 按类型校验形状
func (m Meld) Valid() bool {
	switch m.Type {
	case MeldSequence:
		return IsSequence(m.Tiles...)
	case MeldTriplet:
		return IsTriplet(m.Tiles...)
	case MeldQuad:
		return IsQuad(m.Tiles...)
	case MeldPair:
		return IsPair(m.Tiles...)
	case MeldPartial:
		return IsPartialSequence(m.Tiles...)
	}
	return false
}

func (m Meld) String() string {
	var b strings.Builder
	b.WriteString(m.Type.String())
	b.WriteByte('(')
	b.WriteString(FormatKinds(m.Tiles))
	if m.Call != CallNone {
		b.WriteByte(' ')
		b.WriteString(m.Call.String())
	}
	b.WriteByte(')')
	return b.String()
}

func sortedCopy(kinds []TileKind) []TileKind {
	out := slices.Clone(kinds)
	slices.Sort(out)
	return out
}

func allValid(kinds []TileKind) bool {
	for _, k := range kinds {
		if !k.IsValid() {
			return false
		}
	}
	return true
}

func allSame(kinds []TileKind) bool {
	for _, k := range kinds[1:] {
		if k != kinds[0] {
			return false
		}
	}
	return true
}

// IsSequence 同花色连续三张数牌，顺序无关
func IsSequence(kinds ...TileKind) bool {
	if len(kinds) != 3 || !allValid(kinds) {
		return false
	}
	s := sortedCopy(kinds)
	if !s[0].IsNumbered() || s[0].Suit() != s[2].Suit() {
		return false
	}
	return s[1] == s[0]+1 && s[2] == s[0]+2
}

func IsTriplet(kinds ...TileKind) bool {
	return len(kinds) == 3 && allValid(kinds) && allSame(kinds)
}

func IsQuad(kinds ...TileKind) bool {
	return len(kinds) == 4 && allValid(kinds) && allSame(kinds)
}

func IsPair(kinds ...TileKind) bool {
	return len(kinds) == 2 && allValid(kinds) && allSame(kinds)
}

// IsPartialSequence 两面/边张（相差 1）或嵌张（相差 2）
func IsPartialSequence(kinds ...TileKind) bool {
	if len(kinds) != 2 || !allValid(kinds) {
		return false
	}
	s := sortedCopy(kinds)
	if !s[0].IsNumbered() || s[0].Suit() != s[1].Suit() {
		return false
	}
	d := s[1] - s[0]
	return d == 1 || d == 2
}
