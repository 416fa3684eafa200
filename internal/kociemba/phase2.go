package kociemba

import "sort"

// Phase 2 solves a cube already in G1 down to the solved state, using
// only the ten moves that preserve G1 membership: U, U2, U', D, D2, D',
// R2, L2, F2, B2. It is invoked fresh at every Phase-1 leaf that reaches
// G1, bounded by the quarter-turns remaining in the outer total bound.

type phase2Search struct {
	tables  *Tables
	clock   deadlineClock
	path    []int
	bound   int
	visited map[uint32]int
}

func packPhase2(cp, ud8 int) uint32 {
	return uint32(cp)*nUD8 + uint32(ud8)
}

// solvePhase2 searches for a sequence of phase-2 generator moves taking c
// (already in G1) to solved, of at most maxLen generator moves. maxLen is
// the outer bound minus the quarter turns of the Phase-1 prefix that
// reached c; each generator counts as one move against it, whether it
// expands to one, two or three quarter turns.
func solvePhase2(tables *Tables, c Cube, maxLen int, clock deadlineClock) ([]int, bool) {
	cp, ud8 := CP(c), UD8(c)
	h := tables.h2(cp, ud8)
	if h > maxLen {
		return nil, false
	}
	s := &phase2Search{tables: tables, clock: clock, visited: make(map[uint32]int)}
	for bound := h; bound <= maxLen; bound++ {
		s.bound = bound
		s.path = s.path[:0]
		for k := range s.visited {
			delete(s.visited, k)
		}
		if clock.expired() {
			return nil, false
		}
		if s.dfs(c, 0, h, -1) {
			out := make([]int, len(s.path))
			copy(out, s.path)
			return out, true
		}
	}
	return nil, false
}

type phase2Child struct {
	code int
	next Cube
	h    int
}

func (s *phase2Search) dfs(cur Cube, g, h int, last int) bool {
	if h == 0 {
		return IsSolved(cur)
	}
	if g+h > s.bound {
		return false
	}
	if s.clock.expired() {
		return false
	}
	key := packPhase2(CP(cur), UD8(cur))
	f := g + h
	if best, ok := s.visited[key]; ok && best <= f {
		return false
	}
	s.visited[key] = f

	children := make([]phase2Child, 0, 10)
	for code := 0; code < 10; code++ {
		if last >= 0 && phase2FaceOf[last] == phase2FaceOf[code] {
			continue
		}
		next := cur
		ApplyPhase2Move(&next, code)
		nh := s.tables.h2(CP(next), UD8(next))
		children = append(children, phase2Child{code, next, nh})
	}
	sort.Slice(children, func(i, j int) bool { return children[i].h < children[j].h })

	for _, ch := range children {
		s.path = append(s.path, ch.code)
		if s.dfs(ch.next, g+1, ch.h, ch.code) {
			return true
		}
		s.path = s.path[:len(s.path)-1]
	}
	return false
}

// phase2FaceOf maps a generator move code to its face (U=0,D=1,R=2,L=3,
// F=4,B=5), matching phase2Expansion's grouping in Phase2MoveNames.
var phase2FaceOf = [10]int{0, 0, 0, 1, 1, 1, 2, 3, 4, 5}
