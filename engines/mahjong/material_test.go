package mahjong

import (
	"errors"
	"testing"
)

func TestTileKind_Classification(t *testing.T) {
	cases := []struct {
		kind     TileKind
		suit     Suit
		number   int
		terminal bool
		honor    bool
		simple   bool
	}{
		{Man1, SuitMan, 1, true, false, false},
		{Man5, SuitMan, 5, false, false, true},
		{Pin9, SuitPin, 9, true, false, false},
		{So2, SuitSou, 2, false, false, true},
		{So8, SuitSou, 8, false, false, true},
		{East, SuitHonor, 0, false, true, false},
		{Red, SuitHonor, 0, false, true, false},
	}
	for _, c := range cases {
		if got := c.kind.Suit(); got != c.suit {
			t.Fatalf("%s suit expected %s, got %s", c.kind, c.suit, got)
		}
		if got := c.kind.Number(); got != c.number {
			t.Fatalf("%s number expected %d, got %d", c.kind, c.number, got)
		}
		if got := c.kind.IsTerminal(); got != c.terminal {
			t.Fatalf("%s terminal expected %v", c.kind, c.terminal)
		}
		if got := c.kind.IsHonor(); got != c.honor {
			t.Fatalf("%s honor expected %v", c.kind, c.honor)
		}
		if got := c.kind.IsSimple(); got != c.simple {
			t.Fatalf("%s simple expected %v", c.kind, c.simple)
		}
		if got := c.kind.IsYaochu(); got != (c.terminal || c.honor) {
			t.Fatalf("%s yaochu expected %v", c.kind, c.terminal || c.honor)
		}
	}
}

func TestTileKind_String(t *testing.T) {
	if got := Man5.String(); got != "5m" {
		t.Fatalf("expected 5m, got %s", got)
	}
	if got := Red.String(); got != "7z" {
		t.Fatalf("expected 7z, got %s", got)
	}
	if TileKind(34).IsValid() || TileKind(-1).IsValid() {
		t.Fatalf("out of range kinds must be invalid")
	}
}

func TestWind(t *testing.T) {
	if WindSouth.Kind() != South {
		t.Fatalf("south wind kind expected %s, got %s", South, WindSouth.Kind())
	}
	if w, ok := WindOf(West); !ok || w != WindWest {
		t.Fatalf("WindOf(West) expected WindWest, got %v %v", w, ok)
	}
	if _, ok := WindOf(White); ok {
		t.Fatalf("dragon is not a wind")
	}

	w, err := ParseWind("2z")
	if err != nil || w != WindSouth {
		t.Fatalf("ParseWind(2z) expected south, got %v %v", w, err)
	}
	if w, err := ParseWind("north"); err != nil || w != WindNorth {
		t.Fatalf("ParseWind(north) expected north, got %v %v", w, err)
	}
	for _, bad := range []string{"5z", "1m", "11z", "up"} {
		if _, err := ParseWind(bad); !errors.Is(err, ErrInvalidNotation) {
			t.Fatalf("ParseWind(%s) expected ErrInvalidNotation, got %v", bad, err)
		}
	}
}
