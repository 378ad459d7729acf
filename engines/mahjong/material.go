package mahjong

import "fmt"

// TileKind 牌种，0-33，与实体牌无关
type TileKind int

const (
	// 万子 (0-8)
	Man1 TileKind = iota
	Man2
	Man3
	Man4
	Man5
	Man6
	Man7
	Man8
	Man9

	// 筒子 (9-17)
	Pin1
	Pin2
	Pin3
	Pin4
	Pin5
	Pin6
	Pin7
	Pin8
	Pin9

	// 索子 (18-26)
	So1
	So2
	So3
	So4
	So5
	So6
	So7
	So8
	So9

	// 字牌 (27-33)
	East
	South
	West
	North
	White
	Green
	Red
)

// KindCount 牌种数量
const KindCount = 34

type Suit int

const (
	SuitMan Suit = iota
	SuitPin
	SuitSou
	SuitHonor
)

func (s Suit) String() string {
	switch s {
	case SuitMan:
		return "m"
	case SuitPin:
		return "p"
	case SuitSou:
		return "s"
	default:
		return "z"
	}
}

type Wind int

const (
	WindEast  Wind = iota // 东风
	WindSouth             // 南风
	WindWest              // 西风
	WindNorth             // 北风
)

func (w Wind) String() string {
	switch w {
	case WindEast:
		return "East"
	case WindSouth:
		return "South"
	case WindWest:
		return "West"
	case WindNorth:
		return "North"
	default:
		return "Unknown"
	}
}

// Kind 风对应的字牌
func (w Wind) Kind() TileKind {
	return East + TileKind(w)
}

// WindOf 字牌对应的风，非风牌返回 false
func WindOf(k TileKind) (Wind, bool) {
	if !k.IsWind() {
		return 0, false
	}
	return Wind(k - East), true
}

// ParseWind 接受 east/south/west/north 或 1z-4z
func ParseWind(s string) (Wind, error) {
	switch s {
	case "east", "East", "E":
		return WindEast, nil
	case "south", "South", "S":
		return WindSouth, nil
	case "west", "West", "W":
		return WindWest, nil
	case "north", "North", "N":
		return WindNorth, nil
	}
	if kinds, err := ParseKinds(s); err == nil && len(kinds) == 1 {
		if w, ok := WindOf(kinds[0]); ok {
			return w, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown wind %q", ErrInvalidNotation, s)
}

func (k TileKind) IsValid() bool {
	return k >= Man1 && k <= Red
}

func (k TileKind) Suit() Suit {
	if k >= East {
		return SuitHonor
	}
	return Suit(k / 9)
}

// Number 数牌的点数 1-9，字牌为 0
func (k TileKind) Number() int {
	if !k.IsNumbered() {
		return 0
	}
	return int(k%9) + 1
}

func (k TileKind) IsNumbered() bool {
	return k >= Man1 && k < East
}

func (k TileKind) IsHonor() bool {
	return k >= East && k <= Red
}

// IsTerminal 老头牌（1、9）
func (k TileKind) IsTerminal() bool {
	n := k.Number()
	return n == 1 || n == 9
}

// IsSimple 中张牌（2-8）
func (k TileKind) IsSimple() bool {
	n := k.Number()
	return n >= 2 && n <= 8
}

// IsYaochu 幺九牌
func (k TileKind) IsYaochu() bool {
	return k.IsTerminal() || k.IsHonor()
}

func (k TileKind) IsWind() bool {
	return k >= East && k <= North
}

func (k TileKind) IsDragon() bool {
	return k >= White && k <= Red
}

// String MPSZ 单张写法，如 5m、7z
func (k TileKind) String() string {
	if !k.IsValid() {
		return fmt.Sprintf("?%d", int(k))
	}
	if k.IsHonor() {
		return fmt.Sprintf("%dz", int(k-East)+1)
	}
	return fmt.Sprintf("%d%s", k.Number(), k.Suit())
}

var yaochuKinds = [13]TileKind{
	Man1, Man9, Pin1, Pin9, So1, So9,
	East, South, West, North, White, Green, Red,
}

// YaochuKinds 国士无双所需的 13 种幺九牌
func YaochuKinds() []TileKind {
	return append([]TileKind(nil), yaochuKinds[:]...)
}
