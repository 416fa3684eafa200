// Package kociemba implements a two-phase IDA* solver for the 3x3x3
// Rubik's cube. Unlike the sticker/facelet grid model used elsewhere in
// this codebase's history, the cube here is represented at the cubie
// level: which physical corner/edge occupies each slot, and how it is
// twisted or flipped there. That representation is what the coordinate
// encoders and pruning tables in this package operate on.
package kociemba

// Corner slot indices, fixed order.
const (
	URF = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

// Edge slot indices, fixed order.
const (
	UF = iota
	UL
	UB
	UR
	FR
	FL
	BL
	BR
	DF
	DL
	DB
	DR
)

// CornerNames and EdgeNames give each slot index a three/two-letter
// label, in the same fixed order as the slot constants above.
var CornerNames = [8]string{"URF", "UFL", "ULB", "UBR", "DFR", "DLF", "DBL", "DRB"}
var EdgeNames = [12]string{"UF", "UL", "UB", "UR", "FR", "FL", "BL", "BR", "DF", "DL", "DB", "DR"}

// Cube is the cubie-level state of a 3x3x3 Rubik's cube.
//
// Cp[i] / Ep[i] is the identity of the cubie occupying slot i. Co[i] is
// the corner's twist (0, 1, or 2) and Eo[i] is the edge's flip (0 or 1),
// both measured against the UD axis. Cube is a comparable value type;
// solves copy it freely rather than sharing a pointer.
type Cube struct {
	Cp [8]int8
	Co [8]int8
	Ep [12]int8
	Eo [12]int8
}

// Solved returns the cube in its solved state.
func Solved() Cube {
	var c Cube
	for i := range c.Cp {
		c.Cp[i] = int8(i)
	}
	for i := range c.Ep {
		c.Ep[i] = int8(i)
	}
	return c
}

// Clone returns an independent copy of c. Since Cube holds only fixed-size
// arrays, a plain assignment already copies it; Clone exists for callers
// that want the copy to read as intentional.
func Clone(c Cube) Cube {
	return c
}

var solvedCube = Solved()

// IsSolved reports whether c is in the solved state.
func IsSolved(c Cube) bool {
	return c == solvedCube
}
