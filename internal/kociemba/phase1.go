package kociemba

import "sort"

// Phase 1 reduces an arbitrary cube to the G1 subgroup: corners correctly
// oriented, edges correctly oriented, and the four slice edges (FR, FL,
// BL, BR) confined to their four slots (in any order). It searches with
// the full 6-move quarter-turn alphabet and the h1 pruning heuristic.
//
// Phase 1 and Phase 2 are not run as two independent bounded searches:
// every time Phase-1 DFS reaches a G1 state, Phase 2 is invoked right
// there with whatever quarter-turn budget remains under the *total*
// outer bound. If that Phase-2 attempt fails, Phase-1 DFS backtracks and
// keeps looking for a different G1 ending that Phase 2 can finish from
// within budget — a shorter Phase-1 prefix is not always the one that
// leads to a solvable Phase-2 suffix.

func isG1(c Cube) bool {
	return CO(c) == 0 && EO(c) == 0 && SLICE(c) == g1SliceCoord
}

type phase1Search struct {
	tables  *Tables
	clock   deadlineClock
	path    []Move
	bound   int
	visited map[uint32]int
	found   []Move // phase-2 suffix once a full solution is found
}

// packCOEOSLICE packs the three phase-1 coordinates into one key for the
// search's visited cache. CO needs 12 bits (0..2186), EO needs 11 bits
// (0..2047), SLICE needs 9 bits (0..494); 12+11+9=32 fits a uint32 with no
// overlap.
func packCOEOSLICE(co, eo, slice int) uint32 {
	return uint32(co)<<20 | uint32(eo)<<9 | uint32(slice)
}

// solvePhase1 searches, at increasing total bound starting from h1(c), for
// a Phase-1 prefix plus Phase-2 suffix whose combined length is at most
// that bound, stopping at maxTotal. The prefix is counted in quarter
// turns and the suffix in Phase-2 generator moves (a half turn counts
// once), so the returned quarter-turn solution can be longer than the
// bound.
func solvePhase1(tables *Tables, c Cube, maxTotal int, clock deadlineClock) ([]Move, bool) {
	co, eo, slice := CO(c), EO(c), SLICE(c)
	h := tables.h1(co, eo, slice)
	s := &phase1Search{tables: tables, clock: clock, visited: make(map[uint32]int)}
	for bound := h; bound <= maxTotal; bound++ {
		s.bound = bound
		s.path = s.path[:0]
		for k := range s.visited {
			delete(s.visited, k)
		}
		if clock.expired() {
			return nil, false
		}
		if s.dfs(c, 0, h) {
			out := make([]Move, 0, len(s.path)+len(s.found))
			out = append(out, s.path...)
			out = append(out, s.found...)
			return out, true
		}
	}
	return nil, false
}

type phase1Child struct {
	m    Move
	next Cube
	h    int
}

// dfs explores from cube state cur, having already spent g moves (g ==
// len(s.path)), with h the admissible estimate for cur.
func (s *phase1Search) dfs(cur Cube, g, h int) bool {
	if s.clock.expired() {
		return false
	}
	if isG1(cur) {
		if codes, ok := solvePhase2(s.tables, cur, s.bound-g, s.clock); ok {
			s.found = expandPhase2Path(codes)
			return true
		}
		if s.clock.expired() {
			return false
		}
	}
	if g+h > s.bound {
		return false
	}

	key := packCOEOSLICE(CO(cur), EO(cur), SLICE(cur))
	f := g + h
	if best, ok := s.visited[key]; ok && best <= f {
		return false
	}
	s.visited[key] = f

	children := make([]phase1Child, 0, 6)
	for _, m := range Moves {
		next := cur
		ApplyMove(&next, m)
		nh := s.tables.h1(CO(next), EO(next), SLICE(next))
		children = append(children, phase1Child{m, next, nh})
	}
	sort.Slice(children, func(i, j int) bool { return children[i].h < children[j].h })

	for _, ch := range children {
		s.path = append(s.path, ch.m)
		if s.dfs(ch.next, g+1, ch.h) {
			return true
		}
		s.path = s.path[:len(s.path)-1]
	}
	return false
}
