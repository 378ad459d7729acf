package mahjong

import (
	"testing"

	"github.com/k0kishima/riichi-mahjong/common/cache"
)

func makeBenchSearchers(b *testing.B) (cached, plain *Searcher) {
	b.Helper()
	c, err := cache.NewResultCache(1<<14, 0)
	if err != nil {
		b.Fatalf("create cache: %v", err)
	}
	b.Cleanup(c.Close)
	return NewSearcher(c), NewSearcher(nil)
}

var (
	benchHand13  = MustParseHand("59m1144589p16s14z")
	benchChuuren = MustParseHand("1112345678999m")
	benchHand14  = MustParseHand("11122345678999m")
)

func BenchmarkShanten_Cached(b *testing.B) {
	s, _ := makeBenchSearchers(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Shanten(benchHand13)
	}
}

func BenchmarkShanten_NoCache(b *testing.B) {
	_, s := makeBenchSearchers(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = s.Shanten(benchHand13)
	}
}

func BenchmarkWaits_Chuuren_Cached(b *testing.B) {
	s, _ := makeBenchSearchers(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = s.Waits(benchChuuren)
	}
}

func BenchmarkWaits_Chuuren_NoCache(b *testing.B) {
	_, s := makeBenchSearchers(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = s.Waits(benchChuuren)
	}
}

func BenchmarkDecompose(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Decompose(benchHand14)
	}
}

func BenchmarkDetectYaku(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = DetectYaku(benchHand14, Man5, WithRoundWind(WindEast), WithSeatWind(WindEast))
	}
}
