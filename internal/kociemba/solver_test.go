package kociemba

import (
	"testing"
	"time"
)

func TestSolveAlreadySolved(t *testing.T) {
	s := &Solver{tables: testTables, cfg: config{maxTotal: defaultMaxTotal}}
	moves, err := s.Solve(Solved())
	if err != nil {
		t.Fatalf("Solve(solved) returned error: %v", err)
	}
	if len(moves) != 0 {
		t.Errorf("Solve(solved) returned %d moves, want 0", len(moves))
	}
}

func TestSolveShortScrambles(t *testing.T) {
	s := &Solver{tables: testTables, cfg: config{maxTotal: defaultMaxTotal}}

	scrambles := []struct {
		name string
		seq  []Move
	}{
		{"single move", []Move{R}},
		{"two moves", []Move{R, U}},
		{"four moves", []Move{R, U, R, U}},
		{"eight-move mix", []Move{U, R, F, D, L, B, U, R}},
	}

	for _, sc := range scrambles {
		t.Run(sc.name, func(t *testing.T) {
			c := Solved()
			ApplyMoves(&c, sc.seq)
			if IsSolved(c) {
				t.Skip("scramble happened to cancel out to solved")
			}

			solution, err := s.Solve(c)
			if err != nil {
				t.Fatalf("Solve returned error: %v", err)
			}

			result := c
			ApplyMoves(&result, solution)
			if !IsSolved(result) {
				t.Fatalf("applying solution %v did not reach solved", solution)
			}
		})
	}
}

func TestSolveIsDeterministic(t *testing.T) {
	s := &Solver{tables: testTables, cfg: config{maxTotal: defaultMaxTotal}}
	c := Solved()
	ApplyMoves(&c, []Move{R, U, F, D})

	first, err := s.Solve(c)
	if err != nil {
		t.Fatalf("first Solve failed: %v", err)
	}
	second, err := s.Solve(c)
	if err != nil {
		t.Fatalf("second Solve failed: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("solve lengths differ across runs: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("solve move %d differs across runs: %s vs %s", i, first[i], second[i])
		}
	}
}

func TestSolveRespectsTimeout(t *testing.T) {
	s := &Solver{tables: testTables, cfg: config{maxTotal: defaultMaxTotal, timeout: time.Nanosecond}}
	c := Solved()
	ApplyMoves(&c, []Move{R, U, F, D, L, B, R, U})
	time.Sleep(time.Millisecond)

	_, err := s.Solve(c)
	if err != ErrTimeout {
		t.Errorf("Solve with expired deadline returned %v, want ErrTimeout", err)
	}
}

func TestMovesToString(t *testing.T) {
	got := MovesToString([]Move{U, R, F, D})
	want := "URFD"
	if got != want {
		t.Errorf("MovesToString = %q, want %q", got, want)
	}
}
