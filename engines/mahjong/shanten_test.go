package mahjong

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shantenOf(t *testing.T, fn func(Hand) (int, error), notation string) int {
	t.Helper()
	n, err := fn(MustParseHand(notation))
	require.NoError(t, err, notation)
	return n
}

func TestStandardShanten(t *testing.T) {
	cases := []struct {
		notation string
		want     int
	}{
		{"123m456p789s1122z", 0},
		{"123m456p789s1z3z5z7z", 2},
		{"123m456p1s5s9s1z3z5z7z", 4},
		{"59m1144589p16s14z", 5},
		{"147m258p369s1234z", 8},
		{"123m456p789s1z[111z]", 0},
	}
	for _, c := range cases {
		if got := shantenOf(t, StandardShanten, c.notation); got != c.want {
			t.Fatalf("%s standard shanten expected %d, got %d", c.notation, c.want, got)
		}
	}
}

func TestStandardShanten_CompletingMeldNeverHurts(t *testing.T) {
	pairs := [][2]string{
		// 三张无关牌换成一组面子
		{"123m456p1s5s9s1z3z5z7z", "123m456p789s1z3z5z7z"},
		{"147m258p369s1234z", "123m258p369s1234z"},
		{"13m46p79s11z2z3z4z55z", "13m46p79s11z234m55z"},
	}
	for _, p := range pairs {
		before := shantenOf(t, StandardShanten, p[0])
		after := shantenOf(t, StandardShanten, p[1])
		if after > before {
			t.Fatalf("%s -> %s shanten went up: %d -> %d", p[0], p[1], before, after)
		}
	}
}

func TestSevenPairsShanten(t *testing.T) {
	cases := []struct {
		notation string
		want     int
	}{
		{"1122334455678m", 1},
		{"1111223344567m", 2},
		{"1122334455666m", 1},
		{"11m22m33m44p55p66s7s", 0},
	}
	for _, c := range cases {
		if got := shantenOf(t, SevenPairsShanten, c.notation); got != c.want {
			t.Fatalf("%s seven pairs shanten expected %d, got %d", c.notation, c.want, got)
		}
	}
}

// 按定义独立计算七对子向听数
func bruteForceSevenPairs(kinds []TileKind) int {
	seen := map[TileKind]int{}
	for _, k := range kinds {
		seen[k]++
	}
	pairs := 0
	for _, c := range seen {
		if c >= 2 {
			pairs++
		}
	}
	missing := 7 - len(seen)
	if missing < 0 {
		missing = 0
	}
	return 6 - pairs + missing
}

func TestSevenPairsShanten_MatchesBruteForce(t *testing.T) {
	for _, notation := range []string{
		"1122334455678m",
		"1122334455789m",
		"1111222233334m",
		"19m19p19s1234567z",
		"11223m44556p789s",
	} {
		h := MustParseHand(notation)
		got, err := SevenPairsShanten(h)
		require.NoError(t, err)
		assert.Equal(t, bruteForceSevenPairs(h.Closed), got, notation)
	}
}

func TestThirteenOrphansShanten(t *testing.T) {
	cases := []struct {
		notation string
		want     int
	}{
		{"19m19p19s1234z555m", 3},
		{"1119m19p19s1234z5m", 2},
		{"19m19p19s1234567z", 0},
		{"19m19p19s123456z1m", 0},
	}
	for _, c := range cases {
		if got := shantenOf(t, ThirteenOrphansShanten, c.notation); got != c.want {
			t.Fatalf("%s thirteen orphans shanten expected %d, got %d", c.notation, c.want, got)
		}
	}
}

func TestShanten_UnreachableWithExposedMeld(t *testing.T) {
	h := MustParseHand("123m456s789s1p[456p]")
	sp, err := SevenPairsShanten(h)
	require.NoError(t, err)
	to, err := ThirteenOrphansShanten(h)
	require.NoError(t, err)
	assert.Equal(t, ShantenUnreachable, sp)
	assert.Equal(t, ShantenUnreachable, to)

	all, err := Shanten(h)
	require.NoError(t, err)
	assert.Equal(t, 0, all)
}

func TestShanten_Combined(t *testing.T) {
	h := MustParseHand("59m1144589p16s14z")

	got, err := Shanten(h)
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	got, err = Shanten(h, WithoutSevenPairs())
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	got, err = Shanten(MustParseHand("19m19p19s1234567z"), WithoutThirteenOrphans())
	require.NoError(t, err)
	assert.NotEqual(t, 0, got)

	got, err = Shanten(h, WithoutStandard(), WithoutSevenPairs(), WithoutThirteenOrphans())
	require.NoError(t, err)
	assert.Equal(t, ShantenUnreachable, got)
}

func TestShanten_WrongTileCount(t *testing.T) {
	for _, fn := range []func(Hand) (int, error){
		StandardShanten,
		SevenPairsShanten,
		ThirteenOrphansShanten,
		func(h Hand) (int, error) { return Shanten(h) },
	} {
		if _, err := fn(MustParseHand("123m456p789s112z")); !errors.Is(err, ErrTooFewTiles) {
			t.Fatalf("12 tiles expected ErrTooFewTiles, got %v", err)
		}
		if _, err := fn(MustParseHand("123m456p789s11223z")); !errors.Is(err, ErrTooManyTiles) {
			t.Fatalf("14 tiles expected ErrTooManyTiles, got %v", err)
		}
	}
}
