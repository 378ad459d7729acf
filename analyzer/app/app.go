package app

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/k0kishima/riichi-mahjong/common/cache"
	"github.com/k0kishima/riichi-mahjong/common/config"
	"github.com/k0kishima/riichi-mahjong/common/log"
	"github.com/k0kishima/riichi-mahjong/engines/mahjong"
	"gopkg.in/yaml.v3"
)

// Options 单次命令的参数，空字符串表示未指定
type Options struct {
	RoundWind         string
	SeatWind          string
	SelfDraw          bool
	NoSevenPairs      bool
	NoThirteenOrphans bool
}

// App 命令行各子命令共用的状态
type App struct {
	mu       sync.RWMutex
	cfg      config.AnalyzerConfiguration
	cache    *cache.ResultCache
	searcher *mahjong.Searcher
}

func New(cfg config.AnalyzerConfiguration) (*App, error) {
	a := &App{cfg: cfg}
	if cfg.Cache.Enabled {
		c, err := cache.NewResultCache(cfg.Cache.MaxCost, time.Duration(cfg.Cache.TtlSeconds)*time.Second)
		if err != nil {
			return nil, err
		}
		a.cache = c
	}
	a.searcher = mahjong.NewSearcher(a.cache)
	return a, nil
}

func (a *App) Close() {
	if a.cache != nil {
		a.cache.Close()
	}
}

// Reload 配置热更新：日志级别与规则开关立即生效，缓存清空
func (a *App) Reload(cfg config.AnalyzerConfiguration) {
	a.mu.Lock()
	a.cfg.Log = cfg.Log
	a.cfg.Rule = cfg.Rule
	a.cfg.Batch = cfg.Batch
	a.mu.Unlock()

	log.SetLevel(cfg.Log.Level)
	if a.cache != nil {
		a.cache.Clear()
	}
	log.Info("配置已更新: rule=%+v batch=%+v", cfg.Rule, cfg.Batch)
}

func (a *App) config() config.AnalyzerConfiguration {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cfg
}

func (a *App) shantenOptions(o Options) []mahjong.ShantenOption {
	rule := a.config().Rule
	var opts []mahjong.ShantenOption
	if o.NoSevenPairs || !rule.SevenPairs {
		opts = append(opts, mahjong.WithoutSevenPairs())
	}
	if o.NoThirteenOrphans || !rule.ThirteenOrphans {
		opts = append(opts, mahjong.WithoutThirteenOrphans())
	}
	return opts
}

func detectOptions(o Options) ([]mahjong.DetectOption, error) {
	var opts []mahjong.DetectOption
	if o.RoundWind != "" {
		w, err := mahjong.ParseWind(o.RoundWind)
		if err != nil {
			return nil, err
		}
		opts = append(opts, mahjong.WithRoundWind(w))
	}
	if o.SeatWind != "" {
		w, err := mahjong.ParseWind(o.SeatWind)
		if err != nil {
			return nil, err
		}
		opts = append(opts, mahjong.WithSeatWind(w))
	}
	if o.SelfDraw {
		opts = append(opts, mahjong.WithSelfDraw())
	}
	return opts, nil
}

type ShantenReport struct {
	Hand            string `json:"hand" yaml:"hand"`
	Shanten         int    `json:"shanten" yaml:"shanten"`
	Standard        int    `json:"standard" yaml:"standard"`
	SevenPairs      *int   `json:"sevenPairs,omitempty" yaml:"sevenPairs,omitempty"`
	ThirteenOrphans *int   `json:"thirteenOrphans,omitempty" yaml:"thirteenOrphans,omitempty"`
}

// reachable 不可达的特殊形不输出
func reachable(n int) *int {
	if n == mahjong.ShantenUnreachable {
		return nil
	}
	return &n
}

func (a *App) Shanten(notation string, o Options) (*ShantenReport, error) {
	h, err := mahjong.ParseHand(notation)
	if err != nil {
		return nil, err
	}
	combined, err := a.searcher.Shanten(h, a.shantenOptions(o)...)
	if err != nil {
		return nil, err
	}
	standard, err := mahjong.StandardShanten(h)
	if err != nil {
		return nil, err
	}
	sevenPairs, err := mahjong.SevenPairsShanten(h)
	if err != nil {
		return nil, err
	}
	orphans, err := mahjong.ThirteenOrphansShanten(h)
	if err != nil {
		return nil, err
	}
	return &ShantenReport{
		Hand:            mahjong.FormatHand(h),
		Shanten:         combined,
		Standard:        standard,
		SevenPairs:      reachable(sevenPairs),
		ThirteenOrphans: reachable(orphans),
	}, nil
}

type StructureView struct {
	Kind   string `json:"kind" yaml:"kind"`
	Blocks string `json:"blocks" yaml:"blocks"`
	Wait   string `json:"wait,omitempty" yaml:"wait,omitempty"`
}

type DecomposeReport struct {
	Hand       string          `json:"hand" yaml:"hand"`
	Structures []StructureView `json:"structures" yaml:"structures"`
}

// Decompose winning 非空时附带每种拆解的听牌形
func (a *App) Decompose(notation, winning string) (*DecomposeReport, error) {
	h, err := mahjong.ParseHand(notation)
	if err != nil {
		return nil, err
	}
	structures, err := mahjong.Decompose(h)
	if err != nil {
		return nil, err
	}

	var win *mahjong.TileKind
	if winning != "" {
		kinds, err := mahjong.ParseKinds(winning)
		if err != nil {
			return nil, err
		}
		if len(kinds) != 1 {
			return nil, fmt.Errorf("%w: winning tile must be a single tile, got %q", mahjong.ErrInvalidNotation, winning)
		}
		win = &kinds[0]
	}

	report := &DecomposeReport{Hand: mahjong.FormatHand(h), Structures: []StructureView{}}
	for _, s := range structures {
		view := StructureView{Kind: s.Kind().String(), Blocks: mahjong.FormatStructure(s)}
		if win != nil {
			view.Wait = mahjong.ClassifyWait(s, *win).String()
		}
		report.Structures = append(report.Structures, view)
	}
	return report, nil
}

type YakuReport struct {
	Hand    string               `json:"hand" yaml:"hand"`
	Winning string               `json:"winning" yaml:"winning"`
	Yaku    []mahjong.YakuResult `json:"yaku" yaml:"yaku"`
	Han     int                  `json:"han" yaml:"han"`
}

// Yaku winning 为空时取手牌最后一张
func (a *App) Yaku(notation, winning string, o Options) (*YakuReport, error) {
	h, err := mahjong.ParseHand(notation)
	if err != nil {
		return nil, err
	}
	win, err := winningTile(h, winning)
	if err != nil {
		return nil, err
	}
	opts, err := detectOptions(o)
	if err != nil {
		return nil, err
	}
	results, err := mahjong.DetectYaku(h, win, opts...)
	if err != nil {
		return nil, err
	}
	return &YakuReport{
		Hand:    mahjong.FormatHand(h),
		Winning: win.String(),
		Yaku:    results,
		Han:     mahjong.TotalHan(results),
	}, nil
}

func winningTile(h mahjong.Hand, winning string) (mahjong.TileKind, error) {
	if winning == "" {
		if len(h.Closed) == 0 {
			return 0, fmt.Errorf("%w: no closed tile to take as winning tile", mahjong.ErrMissingWinContext)
		}
		return h.Closed[len(h.Closed)-1], nil
	}
	kinds, err := mahjong.ParseKinds(winning)
	if err != nil {
		return 0, err
	}
	if len(kinds) != 1 {
		return 0, fmt.Errorf("%w: winning tile must be a single tile, got %q", mahjong.ErrInvalidNotation, winning)
	}
	return kinds[0], nil
}

type WaitsReport struct {
	Hand   string   `json:"hand" yaml:"hand"`
	Waits  []string `json:"waits" yaml:"waits"`
	Ukeire int      `json:"ukeire" yaml:"ukeire"`
}

func (a *App) Waits(notation string) (*WaitsReport, error) {
	h, err := mahjong.ParseHand(notation)
	if err != nil {
		return nil, err
	}
	waits, ukeire, err := a.searcher.Waits(h)
	if err != nil {
		return nil, err
	}
	return &WaitsReport{Hand: mahjong.FormatHand(h), Waits: kindNames(waits), Ukeire: ukeire}, nil
}

func kindNames(kinds []mahjong.TileKind) []string {
	out := make([]string, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, k.String())
	}
	return out
}

// Write 按 format 输出，空表示使用配置中的默认格式
func (a *App) Write(w io.Writer, v any, format string) error {
	if format == "" {
		format = a.config().Batch.Format
	}
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
