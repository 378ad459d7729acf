package mahjong

import "fmt"

// RiichiYakuRegistry 四人立直麻将役表，顺序不影响结果
var RiichiYakuRegistry = []YakuChecker{
	shapeChecker(YakuTanyao, HanTable{Closed: 1, Open: 1}, checkTanyao),
	tableChecker(YakuPinfu, HanTable{Closed: 1, Open: 0}, checkPinfu),
	shapeChecker(YakuIipeikou, HanTable{Closed: 1, Open: 0}, checkIipeikou),
	shapeChecker(YakuRyanpeikou, HanTable{Closed: 3, Open: 0}, checkRyanpeikou),
	tableChecker(YakuSanankou, HanTable{Closed: 2, Open: 2}, checkSanankou),
	yakuCheckerFunc{id: YakuSuuankou, check: checkSuuankou},
	shapeChecker(YakuSankantsu, HanTable{Closed: 2, Open: 2}, checkSankantsu),
	shapeChecker(YakuSuukantsu, HanTable{Closed: 13, Open: 13}, checkSuukantsu),
	shapeChecker(YakuToitoi, HanTable{Closed: 2, Open: 2}, checkToitoi),
	shapeChecker(YakuChiitoitsu, HanTable{Closed: 2, Open: 0}, checkChiitoitsu),
	shapeChecker(YakuHonchan, HanTable{Closed: 2, Open: 1}, checkHonchan),
	shapeChecker(YakuJunchan, HanTable{Closed: 3, Open: 2}, checkJunchan),
	shapeChecker(YakuHonroutou, HanTable{Closed: 2, Open: 2}, checkHonroutou),
	shapeChecker(YakuChinroutou, HanTable{Closed: 13, Open: 13}, checkChinroutou),
	shapeChecker(YakuShousangen, HanTable{Closed: 2, Open: 2}, checkShousangen),
	shapeChecker(YakuDaisangen, HanTable{Closed: 13, Open: 13}, checkDaisangen),
	shapeChecker(YakuTsuuiisou, HanTable{Closed: 13, Open: 13}, checkTsuuiisou),
	shapeChecker(YakuRyuuiisou, HanTable{Closed: 13, Open: 13}, checkRyuuiisou),
	shapeChecker(YakuShousuushii, HanTable{Closed: 13, Open: 13}, checkShousuushii),
	shapeChecker(YakuDaisuushii, HanTable{Closed: 13, Open: 13}, checkDaisuushii),
	tableChecker(YakuChuurenPoutou, HanTable{Closed: 13, Open: 0}, checkChuurenPoutou),
	shapeChecker(YakuKokushiMusou, HanTable{Closed: 13, Open: 0}, checkKokushiMusou),
	shapeChecker(YakuSanshokuDoujun, HanTable{Closed: 2, Open: 1}, checkSanshokuDoujun),
	shapeChecker(YakuSanshokuDoukou, HanTable{Closed: 2, Open: 2}, checkSanshokuDoukou),
	shapeChecker(YakuIkkitsuukan, HanTable{Closed: 2, Open: 1}, checkIkkitsuukan),
	shapeChecker(YakuHonitsu, HanTable{Closed: 3, Open: 2}, checkHonitsu),
	shapeChecker(YakuChinitsu, HanTable{Closed: 6, Open: 5}, checkChinitsu),
	shapeChecker(YakuHaku, HanTable{Closed: 1, Open: 1}, dragonTripletOf(White)),
	shapeChecker(YakuHatsu, HanTable{Closed: 1, Open: 1}, dragonTripletOf(Green)),
	shapeChecker(YakuChun, HanTable{Closed: 1, Open: 1}, dragonTripletOf(Red)),
	tableChecker(YakuMenzenTsumo, HanTable{Closed: 1, Open: 0}, checkMenzenTsumo),
	tableChecker(YakuBakaze, HanTable{Closed: 1, Open: 1}, windTripletOf(YakuBakaze, func(ctx *WinContext) *Wind { return ctx.RoundWind })),
	tableChecker(YakuJikaze, HanTable{Closed: 1, Open: 1}, windTripletOf(YakuJikaze, func(ctx *WinContext) *Wind { return ctx.SeatWind })),
}

func standardOf(s Structure) (StandardStructure, bool) {
	std, ok := s.(StandardStructure)
	return std, ok
}

func isStandardOrSevenPairs(s Structure) bool {
	k := s.Kind()
	return k == StructureStandard || k == StructureSevenPairs
}

func allTiles(s Structure, pred func(TileKind) bool) bool {
	for _, k := range s.Tiles() {
		if !pred(k) {
			return false
		}
	}
	return true
}

func anyTile(s Structure, pred func(TileKind) bool) bool {
	for _, k := range s.Tiles() {
		if pred(k) {
			return true
		}
	}
	return false
}

// countTriplets 满足条件的刻子/杠子数
func countTriplets(std StandardStructure, pred func(TileKind) bool) int {
	n := 0
	for _, m := range std.Melds {
		if m.IsTripletLike() && pred(m.First()) {
			n++
		}
	}
	return n
}

func countMelds(std StandardStructure, t MeldType) int {
	n := 0
	for _, m := range std.Melds {
		if m.Type == t {
			n++
		}
	}
	return n
}

// sequenceFirsts 各顺子首张出现次数
func sequenceFirsts(std StandardStructure) map[TileKind]int {
	out := make(map[TileKind]int, 4)
	for _, m := range std.Melds {
		if m.Type == MeldSequence {
			out[m.First()]++
		}
	}
	return out
}

// concealedTriplets 暗刻数：荣和时含和了牌的刻子算明刻，单骑除外
func concealedTriplets(std StandardStructure, ctx *WinContext) int {
	tanki := std.Pair.Contains(ctx.WinningTile)
	n := 0
	for _, m := range std.Melds {
		if !m.IsTripletLike() || m.IsOpen() {
			continue
		}
		if !ctx.SelfDrawn && m.Contains(ctx.WinningTile) && !tanki {
			continue
		}
		n++
	}
	return n
}

func checkTanyao(s Structure) bool {
	return allTiles(s, TileKind.IsSimple)
}

// checkPinfu 门清、全顺子、雀头非役牌、两面听
func checkPinfu(s Structure, ctx *WinContext) (bool, error) {
	if !ctx.Concealed {
		return false, nil
	}
	std, ok := standardOf(s)
	if !ok {
		return false, nil
	}
	if err := ctx.requireWinds(YakuPinfu); err != nil {
		return false, err
	}

	head := std.Pair.First()
	if head.IsDragon() || head == ctx.RoundWind.Kind() || head == ctx.SeatWind.Kind() {
		return false, nil
	}
	if countMelds(std, MeldSequence) != 4 {
		return false, nil
	}
	return ClassifyWait(std, ctx.WinningTile) == WaitRyanmen, nil
}

// checkIipeikou 二杯口成立时不再计一杯口（两者不复合）
func checkIipeikou(s Structure) bool {
	std, ok := standardOf(s)
	if !ok || checkRyanpeikou(s) {
		return false
	}
	for _, c := range sequenceFirsts(std) {
		if c >= 2 {
			return true
		}
	}
	return false
}

func checkRyanpeikou(s Structure) bool {
	std, ok := standardOf(s)
	if !ok {
		return false
	}
	pairs := 0
	for _, c := range sequenceFirsts(std) {
		pairs += c / 2
	}
	return pairs >= 2
}

func checkSanankou(s Structure, ctx *WinContext) (bool, error) {
	std, ok := standardOf(s)
	if !ok {
		return false, nil
	}
	return concealedTriplets(std, ctx) == 3, nil
}

// checkSuuankou 四暗刻，单骑听为双倍役满，番数无法用门清/副露两档表示
func checkSuuankou(s Structure, ctx *WinContext) (int, error) {
	std, ok := standardOf(s)
	if !ok || concealedTriplets(std, ctx) != 4 {
		return 0, nil
	}
	if std.Pair.Contains(ctx.WinningTile) {
		return 26, nil
	}
	return 13, nil
}

// checkSankantsu 恰好三杠，四杠只计四杠子
func checkSankantsu(s Structure) bool {
	std, ok := standardOf(s)
	return ok && countMelds(std, MeldQuad) == 3
}

func checkSuukantsu(s Structure) bool {
	std, ok := standardOf(s)
	return ok && countMelds(std, MeldQuad) == 4
}

func checkToitoi(s Structure) bool {
	std, ok := standardOf(s)
	return ok && countTriplets(std, func(TileKind) bool { return true }) == 4
}

func checkChiitoitsu(s Structure) bool {
	return s.Kind() == StructureSevenPairs
}

// outsideHand 每个块都含幺九牌且至少一组顺子，honors 决定是混全还是纯全
func outsideHand(s Structure, honors bool) bool {
	std, ok := standardOf(s)
	if !ok || countMelds(std, MeldSequence) == 0 {
		return false
	}
	hasHonor := false
	for _, m := range std.Blocks() {
		yaochu := false
		for _, k := range m.Tiles {
			if k.IsHonor() {
				hasHonor = true
			}
			if k.IsYaochu() {
				yaochu = true
			}
		}
		if !yaochu {
			return false
		}
	}
	return hasHonor == honors
}

func checkHonchan(s Structure) bool {
	return outsideHand(s, true)
}

func checkJunchan(s Structure) bool {
	return outsideHand(s, false)
}

func checkHonroutou(s Structure) bool {
	return isStandardOrSevenPairs(s) &&
		allTiles(s, TileKind.IsYaochu) &&
		anyTile(s, TileKind.IsHonor) &&
		anyTile(s, TileKind.IsTerminal)
}

func checkChinroutou(s Structure) bool {
	return s.Kind() == StructureStandard && allTiles(s, TileKind.IsTerminal)
}

func checkShousangen(s Structure) bool {
	std, ok := standardOf(s)
	return ok && countTriplets(std, TileKind.IsDragon) == 2 && std.Pair.First().IsDragon()
}

func checkDaisangen(s Structure) bool {
	std, ok := standardOf(s)
	return ok && countTriplets(std, TileKind.IsDragon) == 3
}

func checkTsuuiisou(s Structure) bool {
	return isStandardOrSevenPairs(s) && allTiles(s, TileKind.IsHonor)
}

func isGreen(k TileKind) bool {
	switch k {
	case So2, So3, So4, So6, So8, Green:
		return true
	}
	return false
}

func checkRyuuiisou(s Structure) bool {
	return isStandardOrSevenPairs(s) && allTiles(s, isGreen)
}

func checkShousuushii(s Structure) bool {
	std, ok := standardOf(s)
	return ok && countTriplets(std, TileKind.IsWind) == 3 && std.Pair.First().IsWind()
}

func checkDaisuushii(s Structure) bool {
	std, ok := standardOf(s)
	return ok && countTriplets(std, TileKind.IsWind) == 4
}

// checkChuurenPoutou 门清一色，1、9 各三张以上，2-8 各一张以上
func checkChuurenPoutou(s Structure, ctx *WinContext) (bool, error) {
	if !ctx.Concealed || s.Kind() != StructureStandard || !singleSuit(s, false) {
		return false, nil
	}
	var byNumber [10]int
	for _, k := range s.Tiles() {
		byNumber[k.Number()]++
	}
	if byNumber[1] < 3 || byNumber[9] < 3 {
		return false, nil
	}
	for n := 2; n <= 8; n++ {
		if byNumber[n] < 1 {
			return false, nil
		}
	}
	return true, nil
}

func checkKokushiMusou(s Structure) bool {
	return s.Kind() == StructureThirteenOrphans
}

func checkSanshokuDoujun(s Structure) bool {
	std, ok := standardOf(s)
	if !ok {
		return false
	}
	firsts := sequenceFirsts(std)
	for n := Man1; n <= Man7; n++ {
		if firsts[n] > 0 && firsts[n+9] > 0 && firsts[n+18] > 0 {
			return true
		}
	}
	return false
}

func checkSanshokuDoukou(s Structure) bool {
	std, ok := standardOf(s)
	if !ok {
		return false
	}
	var seen [3][10]bool
	for _, m := range std.Melds {
		if k := m.First(); m.IsTripletLike() && k.IsNumbered() {
			seen[k.Suit()][k.Number()] = true
		}
	}
	for n := 1; n <= 9; n++ {
		if seen[SuitMan][n] && seen[SuitPin][n] && seen[SuitSou][n] {
			return true
		}
	}
	return false
}

func checkIkkitsuukan(s Structure) bool {
	std, ok := standardOf(s)
	if !ok {
		return false
	}
	firsts := sequenceFirsts(std)
	for _, base := range []TileKind{Man1, Pin1, So1} {
		if firsts[base] > 0 && firsts[base+3] > 0 && firsts[base+6] > 0 {
			return true
		}
	}
	return false
}

// singleSuit 数牌只有一种花色，withHonors 要求同时含字牌
func singleSuit(s Structure, withHonors bool) bool {
	suit := Suit(-1)
	hasHonor := false
	for _, k := range s.Tiles() {
		if k.IsHonor() {
			hasHonor = true
			continue
		}
		if suit >= 0 && k.Suit() != suit {
			return false
		}
		suit = k.Suit()
	}
	return suit >= 0 && hasHonor == withHonors
}

func checkHonitsu(s Structure) bool {
	return isStandardOrSevenPairs(s) && singleSuit(s, true)
}

func checkChinitsu(s Structure) bool {
	return isStandardOrSevenPairs(s) && singleSuit(s, false)
}

func dragonTripletOf(dragon TileKind) func(s Structure) bool {
	return func(s Structure) bool {
		std, ok := standardOf(s)
		return ok && countTriplets(std, func(k TileKind) bool { return k == dragon }) > 0
	}
}

func checkMenzenTsumo(_ Structure, ctx *WinContext) (bool, error) {
	return ctx.Concealed && ctx.SelfDrawn, nil
}

// windTripletOf 场风/自风刻子，手中有风牌刻子时才需要对应的风
func windTripletOf(id Yaku, wind func(ctx *WinContext) *Wind) yakuPredicate {
	return func(s Structure, ctx *WinContext) (bool, error) {
		std, ok := standardOf(s)
		if !ok || countTriplets(std, TileKind.IsWind) == 0 {
			return false, nil
		}
		w := wind(ctx)
		if w == nil {
			return false, fmt.Errorf("%w: %s requires the wind to be set", ErrMissingWinContext, id)
		}
		return countTriplets(std, func(k TileKind) bool {
			kw, ok := WindOf(k)
			return ok && kw == *w
		}) > 0, nil
	}
}
