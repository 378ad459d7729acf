package mahjong

// Wait 和了时的听牌形
type Wait int

const (
	WaitUndetermined Wait = iota
	WaitRyanmen           // 两面
	WaitKanchan           // 嵌张
	WaitPenchan           // 边张
	WaitShanpon           // 双碰
	WaitTanki             // 单骑
)

func (w Wait) String() string {
	switch w {
	case WaitRyanmen:
		return "Ryanmen"
	case WaitKanchan:
		return "Kanchan"
	case WaitPenchan:
		return "Penchan"
	case WaitShanpon:
		return "Shanpon"
	case WaitTanki:
		return "Tanki"
	default:
		return "Undetermined"
	}
}

// ClassifyWait 判断和了牌在一般形中的听牌形，先匹配到的块为准
// 副露面子不可能包含和了牌，跳过
func ClassifyWait(s Structure, winning TileKind) Wait {
	std, ok := s.(StandardStructure)
	if !ok {
		return WaitUndetermined
	}
	if std.Pair.Contains(winning) {
		return WaitTanki
	}

	for _, m := range std.Melds {
		if m.Call != CallNone || !m.Contains(winning) {
			continue
		}
		switch m.Type {
		case MeldSequence:
			low, high := m.Tiles[0], m.Tiles[2]
			switch winning {
			case low:
				if high.Number() == 9 {
					return WaitPenchan
				}
				return WaitRyanmen
			case high:
				if low.Number() == 1 {
					return WaitPenchan
				}
				return WaitRyanmen
			default:
				return WaitKanchan
			}
		case MeldTriplet, MeldQuad:
			return WaitShanpon
		}
	}
	return WaitUndetermined
}
