package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/armin-ahmadii/kociemba/internal/facelet"
	"github.com/armin-ahmadii/kociemba/internal/kociemba"
)

// readNetFile reads a 9-line facelet net from path and parses it into a
// cube, checking the algebraic reachability invariants on the way.
func readNetFile(path string) (kociemba.Cube, error) {
	f, err := os.Open(path)
	if err != nil {
		return kociemba.Cube{}, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return kociemba.Cube{}, fmt.Errorf("reading %s: %w", path, err)
	}

	c, err := facelet.Parse(lines)
	if err != nil {
		return kociemba.Cube{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := kociemba.CheckReachable(c); err != nil {
		return kociemba.Cube{}, fmt.Errorf("%s describes an unreachable cube: %w", path, err)
	}
	return c, nil
}

// writeNetFile writes c's facelet net to path.
func writeNetFile(path string, c kociemba.Cube) error {
	if err := os.WriteFile(path, []byte(facelet.Print(c)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// writeSolutionFile writes the single-line solution string spec §6 calls
// for: the quarter-turn character sequence, or an empty line.
func writeSolutionFile(path string, moves []kociemba.Move) error {
	line := kociemba.MovesToString(moves) + "\n"
	if err := os.WriteFile(path, []byte(line), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
