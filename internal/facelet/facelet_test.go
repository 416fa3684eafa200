package facelet

import (
	"strings"
	"testing"

	"github.com/armin-ahmadii/kociemba/internal/kociemba"
)

var solvedNet = "" +
	"   UUU\n" +
	"   UUU\n" +
	"   UUU\n" +
	"LLLFFFRRRBBB\n" +
	"LLLFFFRRRBBB\n" +
	"LLLFFFRRRBBB\n" +
	"   DDD\n" +
	"   DDD\n" +
	"   DDD\n"

func lines(net string) []string {
	return strings.Split(strings.TrimRight(net, "\n"), "\n")
}

func TestParseSolved(t *testing.T) {
	c, err := Parse(lines(solvedNet))
	if err != nil {
		t.Fatalf("Parse(solved) failed: %v", err)
	}
	if !kociemba.IsSolved(c) {
		t.Error("parsed solved net should be the solved cube")
	}
}

func TestPrintSolved(t *testing.T) {
	got := Print(kociemba.Solved())
	if got != solvedNet {
		t.Errorf("Print(Solved()) = %q, want %q", got, solvedNet)
	}
}

func TestRoundtripScrambles(t *testing.T) {
	scrambles := [][]kociemba.Move{
		{kociemba.U},
		{kociemba.R, kociemba.U, kociemba.R, kociemba.U},
		{kociemba.U, kociemba.D, kociemba.L, kociemba.R, kociemba.F, kociemba.B},
		{kociemba.F, kociemba.R, kociemba.U, kociemba.R, kociemba.U, kociemba.F, kociemba.L, kociemba.B, kociemba.D},
	}
	for _, seq := range scrambles {
		c := kociemba.Solved()
		kociemba.ApplyMoves(&c, seq)

		net := Print(c)
		back, err := Parse(lines(net))
		if err != nil {
			t.Fatalf("scramble %v: Parse(Print(c)) failed: %v", seq, err)
		}
		if back != c {
			t.Errorf("scramble %v: round trip mismatch\nprinted:\n%s", seq, net)
		}
	}
}

func TestParseRejectsWrongLineCount(t *testing.T) {
	_, err := Parse(lines(solvedNet)[:8])
	if err == nil {
		t.Error("expected error for 8-line net")
	}
}

func TestParseRejectsDuplicateCenterColor(t *testing.T) {
	bad := strings.Replace(solvedNet, "   DDD\n   DDD\n   DDD\n", "   UUU\n   UUU\n   UUU\n", 1)
	_, err := Parse(lines(bad))
	if err == nil {
		t.Error("expected error for a net with two faces sharing a center color")
	}
}

func TestParseRejectsUnmatchableCubie(t *testing.T) {
	bad := strings.Replace(solvedNet, "LLLFFFRRRBBB\nLLLFFFRRRBBB\nLLLFFFRRRBBB\n",
		"LLLFFFRRRBBB\nLLLFFFRRRBBR\nLLLFFFRRRBBB\n", 1)
	_, err := Parse(lines(bad))
	if err == nil {
		t.Error("expected error for a cubie whose sticker colors match no piece")
	}
}
