package mahjong

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateHand_TileCounts(t *testing.T) {
	cases := []struct {
		notation string
		validate func(Hand) error
		want     error
	}{
		{"123m456p789s1122z", ValidateHand13, nil},
		{"123m456p789s112z", ValidateHand13, ErrTooFewTiles},
		{"123m456p789s11223z", ValidateHand13, ErrTooManyTiles},
		{"123m456p789s11223z", ValidateHand14, nil},
		{"123m456p789s1122z", ValidateHand14, ErrTooFewTiles},
		{"123m456p789s112233z", ValidateHand14, ErrTooManyTiles},
		// 杠按 3 张计
		{"12m99p[1111s][2222p][3333z]", ValidateHand14, ErrTooFewTiles},
		{"234m99p[1111s][2222p][3333z]1z", ValidateHand14, ErrTooManyTiles},
		{"123m456s789s22m(1111z)", ValidateHand14, nil},
	}
	for _, c := range cases {
		h := MustParseHand(c.notation)
		err := c.validate(h)
		if c.want == nil {
			require.NoError(t, err, c.notation)
			continue
		}
		require.ErrorIs(t, err, c.want, c.notation)
	}
}

func TestValidateHand_FiveCopies(t *testing.T) {
	h := MustParseHand("1123m456p789s1z[111m]")
	if err := ValidateHand14(h); !errors.Is(err, ErrInvalidTile) {
		t.Fatalf("five copies expected ErrInvalidTile, got %v", err)
	}
}

func TestHand_IsConcealed(t *testing.T) {
	if !MustParseHand("123m456s789s22m(1111z)").IsConcealed() {
		t.Fatalf("ankan keeps the hand concealed")
	}
	if MustParseHand("123m456s789s22m[888p]").IsConcealed() {
		t.Fatalf("pon opens the hand")
	}
}

func TestHand34_WithRemovedRestores(t *testing.T) {
	h := Hand34FromKinds(MustParseHand("112233m").Closed)
	before := h
	h.withRemoved(func() {
		if h[Man1] != 0 || h[Man2] != 1 {
			t.Fatalf("tiles not removed inside fn: %v", h[:3])
		}
		h.withRemoved(func() {}, Man2, Man3)
	}, Man1, Man1, Man2)
	if h != before {
		t.Fatalf("counts not restored: %v vs %v", h[:3], before[:3])
	}
}

func TestHand34_Kinds(t *testing.T) {
	h := Hand34FromKinds([]TileKind{Red, Man1, Man1})
	require.Equal(t, []TileKind{Man1, Man1, Red}, h.Kinds())
	require.Equal(t, 3, h.Total())
	require.Equal(t, 2, h.Distinct())
}
