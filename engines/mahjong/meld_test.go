package mahjong

import "testing"

func TestMeldValidators(t *testing.T) {
	cases := []struct {
		name string
		ok   bool
		got  bool
	}{
		{"sequence sorted", true, IsSequence(Man1, Man2, Man3)},
		{"sequence unordered", true, IsSequence(Pin9, Pin7, Pin8)},
		{"sequence across suits", false, IsSequence(Man8, Man9, Pin1)},
		{"sequence of honors", false, IsSequence(East, South, West)},
		{"sequence with gap", false, IsSequence(So1, So2, So4)},
		{"triplet", true, IsTriplet(Red, Red, Red)},
		{"triplet mixed", false, IsTriplet(Red, Red, White)},
		{"quad", true, IsQuad(So5, So5, So5, So5)},
		{"quad short", false, IsQuad(So5, So5, So5)},
		{"pair", true, IsPair(North, North)},
		{"pair mixed", false, IsPair(North, East)},
		{"partial ryanmen", true, IsPartialSequence(Man4, Man5)},
		{"partial kanchan", true, IsPartialSequence(Pin3, Pin1)},
		{"partial too far", false, IsPartialSequence(So1, So4)},
		{"partial across suits", false, IsPartialSequence(Man9, Pin1)},
		{"partial honors", false, IsPartialSequence(East, South)},
		{"invalid kind", false, IsTriplet(34, 34, 34)},
	}
	for _, c := range cases {
		if c.got != c.ok {
			t.Fatalf("%s expected %v, got %v", c.name, c.ok, c.got)
		}
	}
}

func TestMeld_ValidAndOpen(t *testing.T) {
	chi := NewSequence(Pin4).Claimed(CallChi, SeatKamicha)
	if !chi.Valid() || !chi.IsOpen() {
		t.Fatalf("chi should be a valid open meld")
	}
	ankan := NewQuad(East).Claimed(CallAnkan, SeatSelf)
	if !ankan.Valid() || ankan.IsOpen() {
		t.Fatalf("ankan should be valid and concealed")
	}
	broken := Meld{Type: MeldSequence, Tiles: []TileKind{Man1, Man1, Man2}}
	if broken.Valid() {
		t.Fatalf("broken sequence should be invalid")
	}
	if !NewTriplet(So3).IsTripletLike() || NewSequence(So3).IsTripletLike() {
		t.Fatalf("IsTripletLike mismatch")
	}
}
