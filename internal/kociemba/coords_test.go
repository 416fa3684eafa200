package kociemba

import "testing"

func TestCoordinateRangesAfterScrambles(t *testing.T) {
	seqs := [][]Move{
		{U, R, F, D, L, B},
		{R, U, R, U, R, U},
		{F, B, F, B, U, D, L, R},
	}
	for _, seq := range seqs {
		c := Solved()
		ApplyMoves(&c, seq)

		if v := CO(c); v < 0 || v >= nCO {
			t.Errorf("CO out of range: %d", v)
		}
		if v := EO(c); v < 0 || v >= nEO {
			t.Errorf("EO out of range: %d", v)
		}
		if v := SLICE(c); v < 0 || v >= nSlice {
			t.Errorf("SLICE out of range: %d", v)
		}
		if v := CP(c); v < 0 || v >= nCP {
			t.Errorf("CP out of range: %d", v)
		}
	}
}

func TestSolvedCoordinates(t *testing.T) {
	c := Solved()
	if CO(c) != 0 {
		t.Errorf("CO(solved) = %d, want 0", CO(c))
	}
	if EO(c) != 0 {
		t.Errorf("EO(solved) = %d, want 0", EO(c))
	}
	if CP(c) != 0 {
		t.Errorf("CP(solved) = %d, want 0", CP(c))
	}
	if UD8(c) != 0 {
		t.Errorf("UD8(solved) = %d, want 0", UD8(c))
	}
	if !isG1(c) {
		t.Error("solved cube should already be in G1")
	}
}

func TestDecodeCOEncodeRoundtrip(t *testing.T) {
	for _, coord := range []int{0, 1, 17, 1000, nCO - 1} {
		c := decodeCO(coord)
		if got := CO(c); got != coord {
			t.Errorf("decodeCO(%d) then CO() = %d", coord, got)
		}
	}
}

func TestDecodeEOEncodeRoundtrip(t *testing.T) {
	for _, coord := range []int{0, 1, 500, nEO - 1} {
		c := decodeEO(coord)
		if got := EO(c); got != coord {
			t.Errorf("decodeEO(%d) then EO() = %d", coord, got)
		}
	}
}

func TestDecodeSliceEncodeRoundtrip(t *testing.T) {
	for coord := 0; coord < nSlice; coord += 37 {
		c := decodeSlice(coord)
		if got := SLICE(c); got != coord {
			t.Errorf("decodeSlice(%d) then SLICE() = %d", coord, got)
		}
	}
}

func TestDecodeCPEncodeRoundtrip(t *testing.T) {
	for coord := 0; coord < nCP; coord += 997 {
		c := decodeCP(coord)
		if got := CP(c); got != coord {
			t.Errorf("decodeCP(%d) then CP() = %d", coord, got)
		}
	}
}

func TestDecodeUD8EncodeRoundtrip(t *testing.T) {
	for coord := 0; coord < nUD8; coord += 997 {
		c := decodeUD8(coord)
		if got := UD8(c); got != coord {
			t.Errorf("decodeUD8(%d) then UD8() = %d", coord, got)
		}
	}
}

func TestG1SliceCoordIsStableUnderReorder(t *testing.T) {
	// Any cube whose slice edges sit in slots FR/FL/BL/BR, in any order,
	// must hash to the same SLICE coordinate as solved.
	c := Solved()
	c.Ep[FR], c.Ep[BR] = c.Ep[BR], c.Ep[FR]
	if SLICE(c) != g1SliceCoord {
		t.Error("reordering slice edges within their slots should not change SLICE")
	}
}
