package mahjong

import (
	"fmt"
)

type Yaku int

const (
	// 1 番
	YakuTanyao      Yaku = iota // 断幺九
	YakuPinfu                   // 平和
	YakuIipeikou                // 一杯口
	YakuMenzenTsumo             // 门前清自摸和
	YakuHaku                    // 役牌 白
	YakuHatsu                   // 役牌 发
	YakuChun                    // 役牌 中
	YakuBakaze                  // 场风
	YakuJikaze                  // 自风

	// 2 番
	YakuSanankou       // 三暗刻
	YakuSankantsu      // 三杠子
	YakuToitoi         // 对对和
	YakuChiitoitsu     // 七对子
	YakuHonchan        // 混全带幺九
	YakuHonroutou      // 混老头
	YakuShousangen     // 小三元
	YakuSanshokuDoujun // 三色同顺
	YakuSanshokuDoukou // 三色同刻
	YakuIkkitsuukan    // 一气通贯

	// 3 番
	YakuRyanpeikou // 二杯口
	YakuJunchan    // 纯全带幺九
	YakuHonitsu    // 混一色

	// 6 番
	YakuChinitsu // 清一色

	// 役满
	YakuSuuankou      // 四暗刻（单骑为双倍）
	YakuSuukantsu     // 四杠子
	YakuChinroutou    // 清老头
	YakuDaisangen     // 大三元
	YakuTsuuiisou     // 字一色
	YakuRyuuiisou     // 绿一色
	YakuShousuushii   // 小四喜
	YakuDaisuushii    // 大四喜
	YakuChuurenPoutou // 九莲宝灯
	YakuKokushiMusou  // 国士无双
)

var yakuNames = map[Yaku]string{
	YakuTanyao:         "Tanyao",
	YakuPinfu:          "Pinfu",
	YakuIipeikou:       "Iipeikou",
	YakuMenzenTsumo:    "MenzenTsumo",
	YakuHaku:           "Haku",
	YakuHatsu:          "Hatsu",
	YakuChun:           "Chun",
	YakuBakaze:         "Bakaze",
	YakuJikaze:         "Jikaze",
	YakuSanankou:       "Sanankou",
	YakuSankantsu:      "Sankantsu",
	YakuToitoi:         "Toitoi",
	YakuChiitoitsu:     "Chiitoitsu",
	YakuHonchan:        "Honchan",
	YakuHonroutou:      "Honroutou",
	YakuShousangen:     "Shousangen",
	YakuSanshokuDoujun: "SanshokuDoujun",
	YakuSanshokuDoukou: "SanshokuDoukou",
	YakuIkkitsuukan:    "Ikkitsuukan",
	YakuRyanpeikou:     "Ryanpeikou",
	YakuJunchan:        "Junchan",
	YakuHonitsu:        "Honitsu",
	YakuChinitsu:       "Chinitsu",
	YakuSuuankou:       "Suuankou",
	YakuSuukantsu:      "Suukantsu",
	YakuChinroutou:     "Chinroutou",
	YakuDaisangen:      "Daisangen",
	YakuTsuuiisou:      "Tsuuiisou",
	YakuRyuuiisou:      "Ryuuiisou",
	YakuShousuushii:    "Shousuushii",
	YakuDaisuushii:     "Daisuushii",
	YakuChuurenPoutou:  "ChuurenPoutou",
	YakuKokushiMusou:   "KokushiMusou",
}

func (y Yaku) String() string {
	if name, ok := yakuNames[y]; ok {
		return name
	}
	return fmt.Sprintf("Yaku(%d)", int(y))
}

// HanTable 门清/副露时的番数，Open 为 0 表示门清限定
type HanTable struct {
	Closed int
	Open   int
}

func (t HanTable) For(concealed bool) int {
	if concealed {
		return t.Closed
	}
	return t.Open
}

// WinContext 和了上下文，风为 nil 表示调用方未提供
type WinContext struct {
	Concealed   bool
	WinningTile TileKind
	RoundWind   *Wind
	SeatWind    *Wind
	SelfDrawn   bool
}

// requireWinds 需要场风、自风的役在缺失时直接报错
func (ctx *WinContext) requireWinds(id Yaku) error {
	if ctx.RoundWind == nil || ctx.SeatWind == nil {
		return fmt.Errorf("%w: %s requires round and seat wind", ErrMissingWinContext, id)
	}
	return nil
}

type YakuResult struct {
	Yaku Yaku   `json:"-" yaml:"-"`
	Name string `json:"name" yaml:"name"`
	Han  int    `json:"han" yaml:"han"`
}

// YakuChecker 返回 0 表示不成立
type YakuChecker interface {
	ID() Yaku
	Check(s Structure, ctx *WinContext) (int, error)
}

type yakuCheckerFunc struct {
	id    Yaku
	check func(s Structure, ctx *WinContext) (int, error)
}

func (f yakuCheckerFunc) ID() Yaku { return f.id }

func (f yakuCheckerFunc) Check(s Structure, ctx *WinContext) (int, error) {
	return f.check(s, ctx)
}

type yakuPredicate func(s Structure, ctx *WinContext) (bool, error)

// tableChecker 番数只取决于门清与否的普通役
func tableChecker(id Yaku, han HanTable, pred yakuPredicate) YakuChecker {
	return yakuCheckerFunc{id: id, check: func(s Structure, ctx *WinContext) (int, error) {
		ok, err := pred(s, ctx)
		if err != nil || !ok {
			return 0, err
		}
		return han.For(ctx.Concealed), nil
	}}
}

// shapeChecker 只看牌型、不会出错的役
func shapeChecker(id Yaku, han HanTable, pred func(s Structure) bool) YakuChecker {
	return tableChecker(id, han, func(s Structure, _ *WinContext) (bool, error) {
		return pred(s), nil
	})
}

type DetectOption func(*WinContext)

func WithRoundWind(w Wind) DetectOption {
	return func(ctx *WinContext) { ctx.RoundWind = &w }
}

func WithSeatWind(w Wind) DetectOption {
	return func(ctx *WinContext) { ctx.SeatWind = &w }
}

// WithSelfDraw 自摸和了
func WithSelfDraw() DetectOption {
	return func(ctx *WinContext) { ctx.SelfDrawn = true }
}

// DetectYaku 判定和了手牌的役，多种拆解时取总番数最高者
// 无法拆解或无役时返回空切片
func DetectYaku(h Hand, winning TileKind, opts ...DetectOption) ([]YakuResult, error) {
	return DetectYakuWith(RiichiYakuRegistry, h, winning, opts...)
}

// DetectYakuWith 使用指定的役表
func DetectYakuWith(registry []YakuChecker, h Hand, winning TileKind, opts ...DetectOption) ([]YakuResult, error) {
	if !winning.IsValid() {
		return nil, fmt.Errorf("%w: winning tile %d out of range", ErrInvalidTile, int(winning))
	}
	structures, err := Decompose(h)
	if err != nil {
		return nil, err
	}

	ctx := &WinContext{Concealed: h.IsConcealed(), WinningTile: winning}
	for _, opt := range opts {
		opt(ctx)
	}
	return EvaluateStructures(registry, structures, ctx)
}

// EvaluateStructures 每种拆解跑一遍役表，番数严格更高才替换，平局保留先出现的拆解
func EvaluateStructures(registry []YakuChecker, structures []Structure, ctx *WinContext) ([]YakuResult, error) {
	best := []YakuResult{}
	maxHan := -1
	for _, s := range structures {
		current := []YakuResult{}
		total := 0
		for _, checker := range registry {
			han, err := checker.Check(s, ctx)
			if err != nil {
				return nil, err
			}
			if han == 0 {
				continue
			}
			current = append(current, YakuResult{Yaku: checker.ID(), Name: checker.ID().String(), Han: han})
			total += han
		}
		if total > maxHan {
			maxHan = total
			best = current
		}
	}
	return best, nil
}

// TotalHan 合计番数
func TotalHan(results []YakuResult) int {
	total := 0
	for _, r := range results {
		total += r.Han
	}
	return total
}
