package cfen

import (
	"testing"

	"github.com/armin-ahmadii/kociemba/internal/kociemba"
)

func TestToCFENSolved(t *testing.T) {
	got := ToCFEN(kociemba.Solved())
	want := "U9/R9/F9/D9/L9/B9"
	if got != want {
		t.Errorf("ToCFEN(Solved()) = %q, want %q", got, want)
	}
}

func TestFromCFENSolved(t *testing.T) {
	c, err := FromCFEN("U9/R9/F9/D9/L9/B9")
	if err != nil {
		t.Fatalf("FromCFEN failed: %v", err)
	}
	if !kociemba.IsSolved(c) {
		t.Error("U9/R9/F9/D9/L9/B9 should parse to the solved cube")
	}
}

func TestRoundtripScrambles(t *testing.T) {
	scrambles := [][]kociemba.Move{
		{kociemba.U},
		{kociemba.R, kociemba.U, kociemba.R, kociemba.U},
		{kociemba.U, kociemba.D, kociemba.L, kociemba.R, kociemba.F, kociemba.B, kociemba.R, kociemba.U},
	}
	for _, seq := range scrambles {
		c := kociemba.Solved()
		kociemba.ApplyMoves(&c, seq)

		s := ToCFEN(c)
		back, err := FromCFEN(s)
		if err != nil {
			t.Fatalf("scramble %v: FromCFEN(ToCFEN(c))=%q failed: %v", seq, s, err)
		}
		if back != c {
			t.Errorf("scramble %v: round trip mismatch via %q", seq, s)
		}
	}
}

func TestFromCFENRejectsWrongFaceCount(t *testing.T) {
	_, err := FromCFEN("U9/R9/F9/D9/L9")
	if err == nil {
		t.Error("expected error for a CFEN string with only 5 faces")
	}
}

func TestFromCFENRejectsBadRunLength(t *testing.T) {
	_, err := FromCFEN("U9/R9/F9/D9/L9/B8")
	if err == nil {
		t.Error("expected error for a face whose run lengths don't add up to 9 stickers")
	}
}
