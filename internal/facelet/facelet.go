// Package facelet parses and prints the 9-line facelet net the solver's
// external interface is built around, and identifies cubie identity and
// orientation from the colors found there. This is the I/O-and-mapping
// utility the core treats as an external collaborator: the hard search
// engine lives in internal/kociemba and never sees a facelet.
package facelet

import (
	"fmt"
	"strings"

	"github.com/armin-ahmadii/kociemba/internal/kociemba"
)

// Color is a single sticker color. The alphabet is arbitrary — whatever
// character appears at a face's center defines that face's color — so
// Color is just the raw byte read from the net.
type Color byte

type face int

const (
	faceU face = iota
	faceR
	faceF
	faceD
	faceL
	faceB
)

var baseLine = map[face]int{faceU: 0, faceL: 3, faceF: 3, faceR: 3, faceB: 3, faceD: 6}
var baseCol = map[face]int{faceU: 3, faceL: 0, faceF: 3, faceR: 6, faceB: 9, faceD: 3}

type pos struct {
	face        face
	row, column int
}

func (p pos) line() int { return baseLine[p.face] + p.row }
func (p pos) col() int  { return baseCol[p.face] + p.column }

// cornerPositions lists, for each corner slot (in kociemba's slot order),
// the net positions of its three stickers: home (U/D-facing when
// solved), then the other two in a fixed clockwise order. Orientation is
// read off which of these three positions holds the occupying piece's
// home color.
var cornerPositions = [8][3]pos{
	kociemba.URF: {{faceU, 2, 2}, {faceR, 0, 0}, {faceF, 0, 2}},
	kociemba.UFL: {{faceU, 2, 0}, {faceF, 0, 0}, {faceL, 0, 2}},
	kociemba.ULB: {{faceU, 0, 0}, {faceL, 0, 0}, {faceB, 0, 2}},
	kociemba.UBR: {{faceU, 0, 2}, {faceB, 0, 0}, {faceR, 0, 2}},
	kociemba.DFR: {{faceD, 0, 2}, {faceF, 2, 2}, {faceR, 2, 0}},
	kociemba.DLF: {{faceD, 0, 0}, {faceL, 2, 2}, {faceF, 2, 0}},
	kociemba.DBL: {{faceD, 2, 0}, {faceB, 2, 2}, {faceL, 2, 0}},
	kociemba.DRB: {{faceD, 2, 2}, {faceR, 2, 2}, {faceB, 2, 0}},
}

// edgePositions lists, for each edge slot, the net positions of its two
// stickers, primary then secondary. eo reads which order the occupying
// piece's home colors appear in.
var edgePositions = [12][2]pos{
	kociemba.UF: {{faceU, 2, 1}, {faceF, 0, 1}},
	kociemba.UL: {{faceU, 1, 0}, {faceL, 0, 1}},
	kociemba.UB: {{faceU, 0, 1}, {faceB, 0, 1}},
	kociemba.UR: {{faceU, 1, 2}, {faceR, 0, 1}},
	kociemba.FR: {{faceF, 1, 2}, {faceR, 1, 0}},
	kociemba.FL: {{faceF, 1, 0}, {faceL, 1, 2}},
	kociemba.BL: {{faceB, 1, 2}, {faceL, 1, 0}},
	kociemba.BR: {{faceB, 1, 0}, {faceR, 1, 2}},
	kociemba.DF: {{faceD, 0, 1}, {faceF, 2, 1}},
	kociemba.DL: {{faceD, 1, 0}, {faceL, 2, 1}},
	kociemba.DB: {{faceD, 2, 1}, {faceB, 2, 1}},
	kociemba.DR: {{faceD, 1, 2}, {faceR, 2, 1}},
}

var faces = [6]face{faceU, faceR, faceF, faceD, faceL, faceB}

func centerPos(f face) pos { return pos{f, 1, 1} }

// grid is a parsed 9-line net: 9 rows of up to 12 columns, addressable by
// (line, col). Cells outside a face block are left at 0 and never read.
type grid [9][12]Color

// ParseError reports a malformed facelet net: wrong shape, not a single
// character set of exactly 6 colors, or an unmatchable cubie. It is the
// "Input error" kind from the error-handling design, never a fatal one.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return "facelet: " + e.Msg }

// Parse reads the 9-line facelet net in lines and returns the cube it
// describes. It validates shape and color consistency but does not check
// the algebraic reachability invariants (twist sum, flip sum, parity) —
// call kociemba.CheckReachable on the result for that.
func Parse(lines []string) (kociemba.Cube, error) {
	if len(lines) != 9 {
		return kociemba.Cube{}, &ParseError{Msg: fmt.Sprintf("expected 9 lines, got %d", len(lines))}
	}
	var g grid
	for i, line := range lines {
		isUD := i < 3 || i >= 6
		if isUD {
			if len(line) != 6 || strings.TrimSpace(line[:3]) != "" {
				return kociemba.Cube{}, &ParseError{Msg: fmt.Sprintf("line %d: want 3 leading spaces + 3 stickers", i+1)}
			}
			for c := 0; c < 3; c++ {
				g[i][3+c] = Color(line[3+c])
			}
		} else {
			if len(line) != 12 || strings.ContainsRune(line, ' ') {
				return kociemba.Cube{}, &ParseError{Msg: fmt.Sprintf("line %d: want 12 non-space stickers", i+1)}
			}
			for c := 0; c < 12; c++ {
				g[i][c] = Color(line[c])
			}
		}
	}

	centerColor := map[face]Color{}
	colorToFace := map[Color]face{}
	for _, f := range faces {
		p := centerPos(f)
		col := g[p.line()][p.col()]
		centerColor[f] = col
		if other, dup := colorToFace[col]; dup {
			return kociemba.Cube{}, &ParseError{Msg: fmt.Sprintf("center colors %c used for both faces %d and %d", col, other, f)}
		}
		colorToFace[col] = f
	}

	var c kociemba.Cube

	// refTriple[slot] is the color triple that slot shows when solved:
	// each position's own face's center color, in (home, other1, other2)
	// order. Two different slots never share an unordered color set.
	var refTriple [8][3]Color
	for slot := 0; slot < 8; slot++ {
		for k, p := range cornerPositions[slot] {
			refTriple[slot][k] = centerColor[p.face]
		}
	}
	var refPair [12][2]Color
	for slot := 0; slot < 12; slot++ {
		for k, p := range edgePositions[slot] {
			refPair[slot][k] = centerColor[p.face]
		}
	}

	for slot := 0; slot < 8; slot++ {
		var physical [3]Color
		for k, p := range cornerPositions[slot] {
			physical[k] = g[p.line()][p.col()]
		}
		occupant, twist, err := matchCorner(physical, refTriple)
		if err != nil {
			return kociemba.Cube{}, fmt.Errorf("corner slot %d: %w", slot, err)
		}
		c.Cp[slot] = int8(occupant)
		c.Co[slot] = int8(twist)
	}

	for slot := 0; slot < 12; slot++ {
		var physical [2]Color
		for k, p := range edgePositions[slot] {
			physical[k] = g[p.line()][p.col()]
		}
		occupant, flip, err := matchEdge(physical, refPair)
		if err != nil {
			return kociemba.Cube{}, fmt.Errorf("edge slot %d: %w", slot, err)
		}
		c.Ep[slot] = int8(occupant)
		c.Eo[slot] = int8(flip)
	}

	return c, nil
}

func sameSet3(a, b [3]Color) bool {
	count := map[Color]int{}
	for _, v := range a {
		count[v]++
	}
	for _, v := range b {
		count[v]--
	}
	for _, v := range count {
		if v != 0 {
			return false
		}
	}
	return true
}

func matchCorner(physical [3]Color, refs [8][3]Color) (occupant, twist int, err error) {
	for j, ref := range refs {
		if !sameSet3(physical, ref) {
			continue
		}
		for k := 0; k < 3; k++ {
			if physical[0] != ref[k] {
				continue
			}
			if physical[1] == ref[(k+1)%3] && physical[2] == ref[(k+2)%3] {
				return j, k, nil
			}
		}
		return 0, 0, &ParseError{Msg: fmt.Sprintf("colors %c%c%c are not a valid corner orientation of piece %d", physical[0], physical[1], physical[2], j)}
	}
	return 0, 0, &ParseError{Msg: fmt.Sprintf("colors %c%c%c do not match any corner", physical[0], physical[1], physical[2])}
}

func matchEdge(physical [2]Color, refs [12][2]Color) (occupant, flip int, err error) {
	for j, ref := range refs {
		switch {
		case physical[0] == ref[0] && physical[1] == ref[1]:
			return j, 0, nil
		case physical[0] == ref[1] && physical[1] == ref[0]:
			return j, 1, nil
		}
	}
	return 0, 0, &ParseError{Msg: fmt.Sprintf("colors %c%c do not match any edge", physical[0], physical[1])}
}

// Print renders c as a 9-line facelet net using the face letters
// themselves as sticker colors (a solved cube prints literally "UUU" /
// "LLLFFFRRRBBB" / "DDD", matching the diagram the net format is named
// after).
func Print(c kociemba.Cube) string {
	var g grid
	letter := map[face]Color{faceU: 'U', faceR: 'R', faceF: 'F', faceD: 'D', faceL: 'L', faceB: 'B'}

	for slot := 0; slot < 8; slot++ {
		occupant := int(c.Cp[slot])
		twist := int(c.Co[slot])
		home := [3]face{cornerPositions[occupant][0].face, cornerPositions[occupant][1].face, cornerPositions[occupant][2].face}
		for k, p := range cornerPositions[slot] {
			srcFace := home[(k+twist)%3]
			g[p.line()][p.col()] = letter[srcFace]
		}
	}
	for slot := 0; slot < 12; slot++ {
		occupant := int(c.Ep[slot])
		flip := int(c.Eo[slot])
		home := [2]face{edgePositions[occupant][0].face, edgePositions[occupant][1].face}
		for k, p := range edgePositions[slot] {
			idx := k
			if flip == 1 {
				idx = 1 - k
			}
			g[p.line()][p.col()] = letter[home[idx]]
		}
	}
	for _, f := range faces {
		p := centerPos(f)
		g[p.line()][p.col()] = letter[f]
	}

	var b strings.Builder
	for i := 0; i < 9; i++ {
		if i < 3 || i >= 6 {
			b.WriteString("   ")
			for c := 3; c < 6; c++ {
				b.WriteByte(byte(g[i][c]))
			}
		} else {
			for c := 0; c < 12; c++ {
				b.WriteByte(byte(g[i][c]))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
