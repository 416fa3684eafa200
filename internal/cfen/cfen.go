// Package cfen implements the compact CFEN text notation for a cube
// state, a denser alternative to the 9-line facelet net. It is a thin
// run-length encoding over the same net the facelet package parses and
// prints, re-targeted here at the fixed 3x3x3 cubie model: the
// orientation field and per-dimension wildcard matching the teacher's
// version supported (arbitrary NxN, '?' wildcards, OLL/PLL pattern
// comparison) are gone along with the bigger-cube/pattern-matching
// system they served.
package cfen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/armin-ahmadii/kociemba/internal/facelet"
	"github.com/armin-ahmadii/kociemba/internal/kociemba"
)

// faceBlock describes where a CFEN face's 9 characters live within the
// 9-line facelet net, in (line, colStart) terms.
type faceBlock struct {
	lines []int
	col   int
}

// CFEN faces are listed U, R, F, D, L, B, matching the teacher's order.
var blocks = [6]faceBlock{
	{[]int{0, 1, 2}, 3},  // U
	{[]int{3, 4, 5}, 6},  // R
	{[]int{3, 4, 5}, 3},  // F
	{[]int{6, 7, 8}, 3},  // D
	{[]int{3, 4, 5}, 0},  // L
	{[]int{3, 4, 5}, 9},  // B
}

// ToCFEN renders c as a CFEN string: six run-length-encoded face blocks
// in U/R/F/D/L/B order, separated by '/'.
func ToCFEN(c kociemba.Cube) string {
	net := strings.Split(strings.TrimRight(facelet.Print(c), "\n"), "\n")
	parts := make([]string, 6)
	for i, b := range blocks {
		var face strings.Builder
		for _, line := range b.lines {
			face.WriteString(net[line][b.col : b.col+3])
		}
		parts[i] = runLengthEncode(face.String())
	}
	return strings.Join(parts, "/")
}

var tokenPattern = regexp.MustCompile(`([A-Za-z])(\d*)`)

// FromCFEN parses a CFEN string back into a Cube.
func FromCFEN(s string) (kociemba.Cube, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 6 {
		return kociemba.Cube{}, fmt.Errorf("cfen: expected 6 faces separated by '/', got %d", len(parts))
	}

	lines := make([][]byte, 9)
	for i := range lines {
		lines[i] = []byte(strings.Repeat(" ", 12))
	}

	for i, part := range parts {
		stickers, err := runLengthDecode(part)
		if err != nil {
			return kociemba.Cube{}, fmt.Errorf("cfen: face %d: %w", i, err)
		}
		if len(stickers) != 9 {
			return kociemba.Cube{}, fmt.Errorf("cfen: face %d has %d stickers, want 9", i, len(stickers))
		}
		b := blocks[i]
		for r, line := range b.lines {
			copy(lines[line][b.col:b.col+3], stickers[r*3:r*3+3])
		}
	}

	parsed := make([]string, 9)
	for i, line := range lines {
		if i < 3 || i >= 6 {
			parsed[i] = "   " + string(line[3:6])
		} else {
			parsed[i] = string(line[0:12])
		}
	}
	return facelet.Parse(parsed)
}

func runLengthEncode(stickers string) string {
	var b strings.Builder
	i := 0
	for i < len(stickers) {
		j := i + 1
		for j < len(stickers) && stickers[j] == stickers[i] {
			j++
		}
		b.WriteByte(stickers[i])
		if run := j - i; run > 1 {
			b.WriteString(strconv.Itoa(run))
		}
		i = j
	}
	return b.String()
}

func runLengthDecode(s string) ([]byte, error) {
	matches := tokenPattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("no valid sticker tokens in %q", s)
	}
	var reconstructed strings.Builder
	var out []byte
	for _, m := range matches {
		reconstructed.WriteString(m[0])
		count := 1
		if m[2] != "" {
			n, err := strconv.Atoi(m[2])
			if err != nil || n < 1 {
				return nil, fmt.Errorf("invalid run count in %q", m[0])
			}
			count = n
		}
		for i := 0; i < count; i++ {
			out = append(out, m[1][0])
		}
	}
	if reconstructed.String() != s {
		return nil, fmt.Errorf("could not parse all of %q", s)
	}
	return out, nil
}
