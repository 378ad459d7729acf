package mahjong

import "slices"

// Decompose 枚举 14 张和了手牌的全部拆解（一般形 + 七对子 + 国士无双）
// 无法拆解时返回空切片，不是错误
func Decompose(h Hand) ([]Structure, error) {
	if err := ValidateHand14(h); err != nil {
		return nil, err
	}

	standard, err := DecomposeStandard(h)
	if err != nil {
		return nil, err
	}
	sevenPairs, err := DecomposeSevenPairs(h)
	if err != nil {
		return nil, err
	}
	orphans, err := DecomposeThirteenOrphans(h)
	if err != nil {
		return nil, err
	}

	out := make([]Structure, 0, len(standard)+len(sevenPairs)+len(orphans))
	for _, s := range standard {
		out = append(out, s)
	}
	for _, s := range sevenPairs {
		out = append(out, s)
	}
	for _, s := range orphans {
		out = append(out, s)
	}
	return out, nil
}

// DecomposeStandard 一般形，核心思想：枚举雀头，剩余牌回溯组面子
// 同一组牌可能有多种拆法（如 111222333m 既是三刻子也是三顺子），全部保留
func DecomposeStandard(h Hand) ([]StandardStructure, error) {
	if err := ValidateHand14(h); err != nil {
		return nil, err
	}

	need := 4 - len(h.Exposed) // 门内需要组成的面子数
	if need < 0 {
		return nil, nil
	}

	work := h.ClosedCounts()
	var out []StandardStructure
	for i := 0; i < KindCount; i++ {
		if work[i] < 2 {
			continue
		}
		head := TileKind(i)
		work.withRemoved(func() {
			partitionMelds(&work, need, make([]Meld, 0, 4), func(closed []Meld) {
				out = append(out, assembleStandard(closed, h.Exposed, head))
			})
		}, head, head)
	}
	return out, nil
}

// partitionMelds 从最小的非零牌种开始，先试刻子再试顺子
func partitionMelds(h *Hand34, need int, acc []Meld, emit func([]Meld)) {
	first := -1
	for i := 0; i < KindCount; i++ {
		if h[i] > 0 {
			first = i
			break
		}
	}
	if need == 0 {
		if first < 0 {
			emit(acc)
		}
		return
	}
	if first < 0 {
		return
	}

	k := TileKind(first)
	if h[k] >= 3 {
		h.withRemoved(func() {
			partitionMelds(h, need-1, append(acc, NewTriplet(k)), emit)
		}, k, k, k)
	}
	if k.IsNumbered() && k.Number() <= 7 && h[k+1] > 0 && h[k+2] > 0 {
		h.withRemoved(func() {
			partitionMelds(h, need-1, append(acc, NewSequence(k)), emit)
		}, k, k+1, k+2)
	}
}

func assembleStandard(closed []Meld, exposed []Meld, head TileKind) StandardStructure {
	var s StandardStructure
	n := 0
	for _, m := range closed {
		m.Tiles = slices.Clone(m.Tiles)
		s.Melds[n] = m
		n++
	}
	for _, m := range exposed {
		m.Tiles = sortedCopy(m.Tiles)
		s.Melds[n] = m
		n++
	}
	s.Pair = NewPair(head)
	return s
}

// DecomposeSevenPairs 七对子：必须门清，七种各两张，四张同种不算两对
func DecomposeSevenPairs(h Hand) ([]SevenPairsStructure, error) {
	if err := ValidateHand14(h); err != nil {
		return nil, err
	}
	if len(h.Exposed) > 0 {
		return nil, nil
	}

	counts := h.ClosedCounts()
	var s SevenPairsStructure
	n := 0
	for i, c := range counts {
		switch c {
		case 0:
			continue
		case 2:
			if n == len(s.Pairs) {
				return nil, nil
			}
			s.Pairs[n] = NewPair(TileKind(i))
			n++
		default:
			return nil, nil
		}
	}
	if n != len(s.Pairs) {
		return nil, nil
	}
	return []SevenPairsStructure{s}, nil
}

// DecomposeThirteenOrphans 国士无双：13 种幺九牌齐全，其中恰好一种成对
func DecomposeThirteenOrphans(h Hand) ([]ThirteenOrphansStructure, error) {
	if err := ValidateHand14(h); err != nil {
		return nil, err
	}
	if len(h.Exposed) > 0 {
		return nil, nil
	}

	counts := h.ClosedCounts()
	pair := TileKind(-1)
	singles := 0
	for i, c := range counts {
		if c == 0 {
			continue
		}
		k := TileKind(i)
		if !k.IsYaochu() {
			return nil, nil
		}
		switch c {
		case 1:
			singles++
		case 2:
			if pair >= 0 {
				return nil, nil
			}
			pair = k
		default:
			return nil, nil
		}
	}
	if pair < 0 || singles != len(yaochuKinds)-1 {
		return nil, nil
	}
	return []ThirteenOrphansStructure{{Pair: pair}}, nil
}
