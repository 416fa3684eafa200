// Package notation parses and formats Singmaster cube notation ({U, D, L,
// R, F, B} plus ' and 2 modifiers) for the operator-facing CLI commands
// that accept move sequences as text (twist, verify, show).
package notation

import (
	"fmt"
	"strings"

	"github.com/armin-ahmadii/kociemba/internal/kociemba"
)

var faceByLetter = map[byte]kociemba.Move{
	'U': kociemba.U,
	'D': kociemba.D,
	'L': kociemba.L,
	'R': kociemba.R,
	'F': kociemba.F,
	'B': kociemba.B,
}

// ParseMove parses a single Singmaster token like "R", "R'", or "R2" into
// the quarter-turns it expands to.
func ParseMove(token string) ([]kociemba.Move, error) {
	if len(token) == 0 {
		return nil, fmt.Errorf("empty move notation")
	}
	base, ok := faceByLetter[token[0]]
	if !ok {
		return nil, fmt.Errorf("unknown face %q in move %q", token[0:1], token)
	}
	switch token[1:] {
	case "":
		return []kociemba.Move{base}, nil
	case "2":
		return []kociemba.Move{base, base}, nil
	case "'":
		return []kociemba.Move{base, base, base}, nil
	default:
		return nil, fmt.Errorf("unrecognized modifier in move %q", token)
	}
}

// ParseRaw parses the unseparated quarter-turn alphabet a solve run
// writes to its output file ("RRRUUU") — one character per move, no
// modifiers.
func ParseRaw(sequence string) ([]kociemba.Move, error) {
	out := make([]kociemba.Move, 0, len(sequence))
	for i := 0; i < len(sequence); i++ {
		m, ok := faceByLetter[sequence[i]]
		if !ok {
			return nil, fmt.Errorf("unknown face %q at position %d in %q", sequence[i:i+1], i, sequence)
		}
		out = append(out, m)
	}
	return out, nil
}

// Parse parses a whitespace-separated sequence of Singmaster moves.
func Parse(sequence string) ([]kociemba.Move, error) {
	sequence = strings.TrimSpace(sequence)
	if sequence == "" {
		return nil, nil
	}
	fields := strings.Fields(sequence)
	out := make([]kociemba.Move, 0, len(fields)*2)
	for _, tok := range fields {
		expanded, err := ParseMove(tok)
		if err != nil {
			return nil, fmt.Errorf("parsing move %q: %w", tok, err)
		}
		out = append(out, expanded...)
	}
	return out, nil
}

// Format renders a quarter-turn sequence back in Singmaster notation,
// collapsing each maximal run of the same face into a single token (three
// U's become "U'", two become "U2").
func Format(moves []kociemba.Move) string {
	var b strings.Builder
	i := 0
	for i < len(moves) {
		face := moves[i]
		run := 1
		for i+run < len(moves) && moves[i+run] == face {
			run++
		}
		i += run

		switch run % 4 {
		case 0:
			continue // four quarter turns cancel out
		case 2:
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(face.String())
			b.WriteByte('2')
		case 3:
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(face.String())
			b.WriteByte('\'')
		default:
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(face.String())
		}
	}
	return b.String()
}
