package mahjong

import (
	"slices"
	"strings"
)

type StructureKind int

const (
	StructureStandard        StructureKind = iota // 一般形：四面子一雀头
	StructureSevenPairs                           // 七对子
	StructureThirteenOrphans                      // 国士无双
)

func (k StructureKind) String() string {
	switch k {
	case StructureStandard:
		return "Standard"
	case StructureSevenPairs:
		return "SevenPairs"
	case StructureThirteenOrphans:
		return "ThirteenOrphans"
	default:
		return "Unknown"
	}
}

// Structure 和了手牌的一种拆解
type Structure interface {
	Kind() StructureKind
	// Tiles 展开后的全部牌，升序
	Tiles() []TileKind
	String() string
	isStructure()
}

// StandardStructure 四面子一雀头，Melds 视为无序集合
type StandardStructure struct {
	Melds [4]Meld
	Pair  Meld
}

func (StandardStructure) Kind() StructureKind { return StructureStandard }
func (StandardStructure) isStructure()        {}

func (s StandardStructure) Tiles() []TileKind {
	out := slices.Clone(s.Pair.Tiles)
	for _, m := range s.Melds {
		out = append(out, m.Tiles...)
	}
	slices.Sort(out)
	return out
}

func (s StandardStructure) String() string {
	parts := make([]string, 0, 5)
	for _, m := range s.Melds {
		parts = append(parts, m.String())
	}
	parts = append(parts, s.Pair.String())
	return "Standard[" + strings.Join(parts, " ") + "]"
}

// HasOpenMeld 是否含有鸣牌面子
func (s StandardStructure) HasOpenMeld() bool {
	for _, m := range s.Melds {
		if m.IsOpen() {
			return true
		}
	}
	return false
}

// Blocks 四面子 + 雀头
func (s StandardStructure) Blocks() []Meld {
	out := make([]Meld, 0, 5)
	out = append(out, s.Melds[:]...)
	return append(out, s.Pair)
}

// SevenPairsStructure 七个不同的对子
type SevenPairsStructure struct {
	Pairs [7]Meld
}

func (SevenPairsStructure) Kind() StructureKind { return StructureSevenPairs }
func (SevenPairsStructure) isStructure()        {}

func (s SevenPairsStructure) Tiles() []TileKind {
	out := make([]TileKind, 0, 14)
	for _, p := range s.Pairs {
		out = append(out, p.Tiles...)
	}
	slices.Sort(out)
	return out
}

func (s SevenPairsStructure) String() string {
	parts := make([]string, 0, 7)
	for _, p := range s.Pairs {
		parts = append(parts, p.String())
	}
	return "SevenPairs[" + strings.Join(parts, " ") + "]"
}

func (s SevenPairsStructure) Blocks() []Meld {
	return slices.Clone(s.Pairs[:])
}

// ThirteenOrphansStructure 13 种幺九牌各一张，Pair 为重复的那一种
type ThirteenOrphansStructure struct {
	Pair TileKind
}

func (ThirteenOrphansStructure) Kind() StructureKind { return StructureThirteenOrphans }
func (ThirteenOrphansStructure) isStructure()        {}

func (s ThirteenOrphansStructure) Tiles() []TileKind {
	out := append(YaochuKinds(), s.Pair)
	slices.Sort(out)
	return out
}

func (s ThirteenOrphansStructure) String() string {
	return "ThirteenOrphans[pair " + s.Pair.String() + "]"
}

// blocksOf 一般形与七对子的全部块，国士无双没有块
func blocksOf(s Structure) []Meld {
	switch v := s.(type) {
	case StandardStructure:
		return v.Blocks()
	case SevenPairsStructure:
		return v.Blocks()
	}
	return nil
}
