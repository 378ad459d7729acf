package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/k0kishima/riichi-mahjong/common/log"
	"github.com/k0kishima/riichi-mahjong/engines/mahjong"
	"golang.org/x/sync/errgroup"
)

// BatchResult 单行结果，13 张输出向听与听牌，14 张输出役
type BatchResult struct {
	ID      string               `json:"id" yaml:"id"`
	Hand    string               `json:"hand" yaml:"hand"`
	Shanten *int                 `json:"shanten,omitempty" yaml:"shanten,omitempty"`
	Waits   []string             `json:"waits,omitempty" yaml:"waits,omitempty"`
	Ukeire  *int                 `json:"ukeire,omitempty" yaml:"ukeire,omitempty"`
	Winning string               `json:"winning,omitempty" yaml:"winning,omitempty"`
	Yaku    []mahjong.YakuResult `json:"yaku,omitempty" yaml:"yaku,omitempty"`
	Han     *int                 `json:"han,omitempty" yaml:"han,omitempty"`
	Error   string               `json:"error,omitempty" yaml:"error,omitempty"`
}

type batchLine struct {
	id      string
	hand    string
	winning string
}

// parseBatchLine 格式：[id=xxx] 手牌 [和了牌]，空行与 # 开头的行跳过
func parseBatchLine(line string) (batchLine, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return batchLine{}, false
	}
	fields := strings.Fields(line)
	var l batchLine
	if id, ok := strings.CutPrefix(fields[0], "id="); ok {
		l.id = id
		fields = fields[1:]
	}
	if l.id == "" {
		l.id = uuid.NewString()
	}
	if len(fields) > 0 {
		l.hand = fields[0]
	}
	if len(fields) > 1 {
		l.winning = fields[1]
	}
	return l, true
}

// RunBatch 并发评估每一行，结果顺序与输入一致
// 单行出错记录在结果里，不中断整批
func (a *App) RunBatch(ctx context.Context, r io.Reader, o Options) ([]BatchResult, error) {
	var lines []batchLine
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if l, ok := parseBatchLine(scanner.Text()); ok {
			lines = append(lines, l)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read batch input: %w", err)
	}

	workers := a.config().Batch.Workers
	log.Debug("批量评估 %d 行, workers=%d", len(lines), workers)

	results := make([]BatchResult, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, l := range lines {
		i, l := i, l
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = a.evaluateLine(l, o)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (a *App) evaluateLine(l batchLine, o Options) BatchResult {
	res := BatchResult{ID: l.id, Hand: l.hand}
	fail := func(err error) BatchResult {
		log.Warn("批量评估失败 id=%s hand=%s: %v", l.id, l.hand, err)
		res.Error = err.Error()
		return res
	}

	h, err := mahjong.ParseHand(l.hand)
	if err != nil {
		return fail(err)
	}
	res.Hand = mahjong.FormatHand(h)

	if h.TileCount() == mahjong.HandSizeBeforeDraw {
		n, err := a.searcher.Shanten(h, a.shantenOptions(o)...)
		if err != nil {
			return fail(err)
		}
		waits, ukeire, err := a.searcher.Waits(h)
		if err != nil {
			return fail(err)
		}
		res.Shanten = &n
		res.Waits = kindNames(waits)
		res.Ukeire = &ukeire
		return res
	}

	report, err := a.Yaku(l.hand, l.winning, o)
	if err != nil {
		return fail(err)
	}
	res.Winning = report.Winning
	res.Yaku = report.Yaku
	res.Han = &report.Han
	return res
}
