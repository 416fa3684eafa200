package kociemba

import "fmt"

const (
	nCO    = 2187 // 3^7
	nEO    = 2048 // 2^11
	nSlice = 495  // C(12,4)
	nCP    = 40320 // 8!
	nUD8   = 40320 // 8!
)

const unvisited = 0xFF

// Tables holds the move-transition tables and pruning (admissible
// distance) tables both phases search against. Every transition is
// derived by decoding a representative Cube for a coordinate value,
// applying the real move appliers (ApplyMove / ApplyPhase2Move), and
// re-encoding: the table builder never re-derives move semantics by hand,
// so it cannot drift out of sync with the search that uses it.
type Tables struct {
	moveCO    [nCO][6]uint16
	moveEO    [nEO][6]uint16
	moveSlice [nSlice][6]uint16

	moveCP  [nCP][10]uint16
	moveUD8 [nUD8][10]uint16

	distCO    []byte
	distEO    []byte
	distSlice []byte
	distCOEO  []byte // index CO*nEO+EO

	distCP  []byte
	distUD8 []byte
}

// BuildTables constructs the move and pruning tables from scratch. It's
// the only place in the package that runs a BFS; everything else just
// indexes the results. Every cell of every table is reached by
// construction (Component C's self-check): selfCheck re-verifies this
// rather than trusting it silently.
func BuildTables() *Tables {
	t := &Tables{}

	for co := 0; co < nCO; co++ {
		base := decodeCO(co)
		for _, m := range Moves {
			c := base
			ApplyMove(&c, m)
			t.moveCO[co][m] = uint16(CO(c))
		}
	}
	for eo := 0; eo < nEO; eo++ {
		base := decodeEO(eo)
		for _, m := range Moves {
			c := base
			ApplyMove(&c, m)
			t.moveEO[eo][m] = uint16(EO(c))
		}
	}
	for s := 0; s < nSlice; s++ {
		base := decodeSlice(s)
		for _, m := range Moves {
			c := base
			ApplyMove(&c, m)
			t.moveSlice[s][m] = uint16(SLICE(c))
		}
	}
	for cp := 0; cp < nCP; cp++ {
		base := decodeCP(cp)
		for code := 0; code < 10; code++ {
			c := base
			ApplyPhase2Move(&c, code)
			t.moveCP[cp][code] = uint16(CP(c))
		}
	}
	for ud8 := 0; ud8 < nUD8; ud8++ {
		base := decodeUD8(ud8)
		for code := 0; code < 10; code++ {
			c := base
			ApplyPhase2Move(&c, code)
			t.moveUD8[ud8][code] = uint16(UD8(c))
		}
	}

	// The six quarter turns are not closed under inverse, so the Phase-1
	// BFS walks each move backwards (three quarter turns undo one).
	inv := func(step func(x, m int) int) func(x, m int) int {
		return func(x, m int) int { return step(step(step(x, m), m), m) }
	}
	coStep := func(x, m int) int { return int(t.moveCO[x][m]) }
	eoStep := func(x, m int) int { return int(t.moveEO[x][m]) }
	t.distCO = bfs1(nCO, 0, inv(coStep), 6)
	t.distEO = bfs1(nEO, 0, inv(eoStep), 6)
	t.distSlice = bfs1(nSlice, g1SliceCoord, inv(func(x, m int) int { return int(t.moveSlice[x][m]) }), 6)
	t.distCOEO = bfs2(nCO, nEO, 0, 0,
		func(co, eo, m int) (int, int) { return inv(coStep)(co, m), inv(eoStep)(eo, m) }, 6)

	t.distCP = bfs1(nCP, 0, func(x, m int) int { return int(t.moveCP[x][m]) }, 10)
	t.distUD8 = bfs1(nUD8, 0, func(x, m int) int { return int(t.moveUD8[x][m]) }, 10)

	return t
}

// bfs1 runs a breadth-first search over [0,n), starting from goal and
// walking the given step function. The result is each cell's distance to
// the goal when step is the inverse of the search's moves: BuildTables
// passes inverted quarter turns for Phase 1, and the 10 Phase-2
// generators as they are, since that set is closed under inverse.
func bfs1(n, goal int, step func(x, m int) int, numMoves int) []byte {
	dist := make([]byte, n)
	for i := range dist {
		dist[i] = unvisited
	}
	dist[goal] = 0
	queue := make([]int, 1, n)
	queue[0] = goal
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		d := dist[cur]
		for m := 0; m < numMoves; m++ {
			nx := step(cur, m)
			if dist[nx] == unvisited {
				dist[nx] = d + 1
				queue = append(queue, nx)
			}
		}
	}
	return dist
}

// bfs2 is bfs1 over the product space [0,nA)x[0,nB), used for the joint
// orientation table where a single move advances both coordinates at
// once.
func bfs2(nA, nB, goalA, goalB int, step func(a, b, m int) (int, int), numMoves int) []byte {
	size := nA * nB
	dist := make([]byte, size)
	for i := range dist {
		dist[i] = unvisited
	}
	start := goalA*nB + goalB
	dist[start] = 0
	queue := make([]int, 1, 1024)
	queue[0] = start
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		a, b := cur/nB, cur%nB
		d := dist[cur]
		for m := 0; m < numMoves; m++ {
			na, nb := step(a, b, m)
			idx := na*nB + nb
			if dist[idx] == unvisited {
				dist[idx] = d + 1
				queue = append(queue, idx)
			}
		}
	}
	return dist
}

// selfCheck verifies component C's build contract: no sentinel cells
// remain in any table. A bug in a move definition or a coordinate encoder
// manifests here as an unreached cell, since the tables are populated by
// BFS over exactly the same transitions the search uses.
func (t *Tables) selfCheck() error {
	checks := []struct {
		name string
		tbl  []byte
	}{
		{"distCO", t.distCO},
		{"distEO", t.distEO},
		{"distSlice", t.distSlice},
		{"distCOEO", t.distCOEO},
		{"distCP", t.distCP},
		{"distUD8", t.distUD8},
	}
	for _, c := range checks {
		for i, v := range c.tbl {
			if v == unvisited {
				return fmt.Errorf("kociemba: table %s never reached cell %d (move/coordinate mismatch)", c.name, i)
			}
		}
	}
	return nil
}

// h1 is the Phase-1 admissible heuristic: the maximum of the three
// univariate orientation/slice distances and the tighter joint
// corner+edge orientation distance.
func (t *Tables) h1(co, eo, slice int) int {
	m := int(t.distCO[co])
	if v := int(t.distEO[eo]); v > m {
		m = v
	}
	if v := int(t.distSlice[slice]); v > m {
		m = v
	}
	if v := int(t.distCOEO[co*nEO+eo]); v > m {
		m = v
	}
	return m
}

// h2 is the Phase-2 admissible heuristic: the maximum of the two
// univariate permutation distances and their ceil-average, admissible
// because a Phase-2 move always permutes both the corners and the U/D
// edges at once.
func (t *Tables) h2(cp, ud8 int) int {
	a := int(t.distCP[cp])
	b := int(t.distUD8[ud8])
	avg := (a + b + 1) / 2
	m := a
	if b > m {
		m = b
	}
	if avg > m {
		m = avg
	}
	return m
}
