package kociemba

import "testing"

// BenchmarkBuildTables benchmarks the one-time pruning table construction.
func BenchmarkBuildTables(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BuildTables()
	}
}

// BenchmarkSolve benchmarks end-to-end solves at a few scramble lengths.
func BenchmarkSolve(b *testing.B) {
	s := &Solver{tables: testTables, cfg: config{maxTotal: defaultMaxTotal}}

	benchmarks := []struct {
		name   string
		scramble []Move
	}{
		{"4moves", []Move{R, U, R, U}},
		{"8moves", []Move{R, U, F, D, L, B, R, U}},
	}

	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				c := Solved()
				ApplyMoves(&c, bm.scramble)
				if _, err := s.Solve(c); err != nil {
					b.Fatalf("Solve failed: %v", err)
				}
			}
		})
	}
}
