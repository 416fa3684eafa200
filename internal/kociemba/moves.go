package kociemba

// Move is a single quarter-turn face rotation, the atomic unit of the
// output alphabet {U, D, L, R, F, B}.
type Move int

const (
	U Move = iota
	D
	L
	R
	F
	B
)

func (m Move) String() string {
	return [...]string{"U", "D", "L", "R", "F", "B"}[m]
}

// Moves is the fixed, stable ordering the search expands children in.
var Moves = [6]Move{U, D, L, R, F, B}

type moveDef struct {
	cornerCycle [4]int8
	edgeCycle   [4]int8
	cornerTwist [4]int8
	flipEdges   bool
}

var moveDefs = [6]moveDef{
	U: {
		cornerCycle: [4]int8{URF, UBR, ULB, UFL},
		edgeCycle:   [4]int8{UF, UR, UB, UL},
	},
	D: {
		cornerCycle: [4]int8{DFR, DLF, DBL, DRB},
		edgeCycle:   [4]int8{DF, DL, DB, DR},
	},
	L: {
		cornerCycle: [4]int8{UFL, ULB, DBL, DLF},
		cornerTwist: [4]int8{2, 1, 2, 1},
		edgeCycle:   [4]int8{UL, BL, DL, FL},
	},
	R: {
		cornerCycle: [4]int8{URF, DFR, DRB, UBR},
		cornerTwist: [4]int8{1, 2, 1, 2},
		edgeCycle:   [4]int8{UR, FR, DR, BR},
	},
	F: {
		cornerCycle: [4]int8{URF, UFL, DLF, DFR},
		cornerTwist: [4]int8{2, 1, 2, 1},
		edgeCycle:   [4]int8{UF, FL, DF, FR},
		flipEdges:   true,
	},
	B: {
		cornerCycle: [4]int8{ULB, UBR, DRB, DBL},
		cornerTwist: [4]int8{2, 1, 2, 1},
		edgeCycle:   [4]int8{UB, BR, DB, BL},
		flipEdges:   true,
	},
}

// cycle4 rotates the four slots named in cyc by one: the piece at the
// last listed slot moves into the first, each other piece moves into the
// next slot listed after it. Orientation rides along with its piece, then
// twist/flip deltas are applied to the slots the cycle touches.
func cycle4(perm, ori []int8, cyc, twist [4]int8, oriMod int8, flip bool) {
	lastP, lastO := perm[cyc[3]], ori[cyc[3]]
	for i := 3; i > 0; i-- {
		perm[cyc[i]] = perm[cyc[i-1]]
		ori[cyc[i]] = ori[cyc[i-1]]
	}
	perm[cyc[0]] = lastP
	ori[cyc[0]] = lastO

	for i, slot := range cyc {
		v := ori[slot] + twist[i]
		if flip {
			v = ori[slot] ^ 1
		}
		ori[slot] = v % oriMod
	}
}

// ApplyMove applies one quarter-turn face rotation to c in place.
func ApplyMove(c *Cube, m Move) {
	def := &moveDefs[m]
	cycle4(c.Cp[:], c.Co[:], def.cornerCycle, def.cornerTwist, 3, false)
	cycle4(c.Ep[:], c.Eo[:], def.edgeCycle, [4]int8{}, 2, def.flipEdges)
}

// ApplyMoves applies a sequence of quarter-turns in order.
func ApplyMoves(c *Cube, moves []Move) {
	for _, m := range moves {
		ApplyMove(c, m)
	}
}

// phase2Expansion lists, for each Phase-2 generator move (codes 0..9), the
// quarter-turns it expands into in the emitted alphabet: U, U2, U', D, D2,
// D', R2, L2, F2, B2.
var phase2Expansion = [10][]Move{
	0: {U},
	1: {U, U},
	2: {U, U, U},
	3: {D},
	4: {D, D},
	5: {D, D, D},
	6: {R, R},
	7: {L, L},
	8: {F, F},
	9: {B, B},
}

// Phase2MoveNames are the Singmaster names of the ten Phase-2 generator
// moves, in the same order as their numeric codes.
var Phase2MoveNames = [10]string{"U", "U2", "U'", "D", "D2", "D'", "R2", "L2", "F2", "B2"}

// ApplyPhase2Move applies Phase-2 generator move `code` (0..9) to c.
func ApplyPhase2Move(c *Cube, code int) {
	for _, m := range phase2Expansion[code] {
		ApplyMove(c, m)
	}
}

// expandPhase2Path expands a sequence of Phase-2 move codes into the
// quarter-turn moves they represent.
func expandPhase2Path(codes []int) []Move {
	out := make([]Move, 0, len(codes)*2)
	for _, code := range codes {
		out = append(out, phase2Expansion[code]...)
	}
	return out
}

// MovesToString renders a quarter-turn sequence in the canonical output
// alphabet, e.g. []Move{U, R, U} -> "URU".
func MovesToString(moves []Move) string {
	buf := make([]byte, len(moves))
	for i, m := range moves {
		buf[i] = m.String()[0]
	}
	return string(buf)
}
