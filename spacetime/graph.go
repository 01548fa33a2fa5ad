// SPDX-License-Identifier: MIT

package spacetime

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/qecsim/core"
	"github.com/katalvlaran/qecsim/register"
	"github.com/katalvlaran/qecsim/rng"
)

type node struct {
	reg      register.ID
	boundary bool
}

// Graph is the space-time defect graph of one stabilizer type.
//
// Topology lives in an undirected weighted core.Graph keyed by Coord.ID; the
// per-node syndrome bit lives in a shared register.File so that measurement
// operations can write into it directly.
//
// A Graph is owned by a single trial and is not safe for concurrent mutation.
type Graph struct {
	rounds int
	topo   *core.Graph
	regs   *register.File
	nodes  map[Coord]*node
	byID   map[string]Coord
	rnd    *rand.Rand
}

// New creates an empty graph spanning rounds measurement rounds. Measurement
// errors are drawn from a stream seeded by seed.
func New(rounds int, seed uint64, regs *register.File) (*Graph, error) {
	if rounds < 1 {
		return nil, ErrBadRounds
	}
	if regs == nil {
		return nil, ErrNilRegisters
	}

	return &Graph{
		rounds: rounds,
		topo:   core.NewGraph(core.WithWeighted()),
		regs:   regs,
		nodes:  make(map[Coord]*node),
		byID:   make(map[string]Coord),
		rnd:    rng.New(seed),
	}, nil
}

// Rounds returns the number of measurement rounds the graph spans.
func (g *Graph) Rounds() int { return g.rounds }

// Topology exposes the underlying core.Graph. Vertex IDs are Coord.ID values.
func (g *Graph) Topology() *core.Graph { return g.topo }

// Registers returns the register file the graph's syndrome bits live in.
func (g *Graph) Registers() *register.File { return g.regs }

// AddNode inserts c with a freshly allocated register. Adding an existing node is a no-op.
func (g *Graph) AddNode(c Coord) {
	if _, ok := g.nodes[c]; ok {
		return
	}
	id := c.ID()
	// AddVertex only fails on an empty ID, which Coord.ID never returns.
	_ = g.topo.AddVertex(id)
	g.nodes[c] = &node{reg: g.regs.Alloc()}
	g.byID[id] = c
}

// AddEdge connects u and v with the given weight, adding missing endpoints.
// A repeated edge keeps its first weight.
func (g *Graph) AddEdge(u, v Coord, weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
		return fmt.Errorf("spacetime: edge %v-%v weight %v: %w", u, v, weight, ErrBadWeight)
	}
	g.AddNode(u)
	g.AddNode(v)
	if g.topo.HasEdge(u.ID(), v.ID()) {
		return nil
	}
	if _, err := g.topo.AddEdge(u.ID(), v.ID(), weight); err != nil {
		return fmt.Errorf("spacetime: edge %v-%v: %w", u, v, err)
	}

	return nil
}

// AddEdges adds every pair with the same weight, stopping at the first error.
func (g *Graph) AddEdges(pairs [][2]Coord, weight float64) error {
	for _, p := range pairs {
		if err := g.AddEdge(p[0], p[1], weight); err != nil {
			return err
		}
	}

	return nil
}

func (g *Graph) lookup(c Coord) (*node, error) {
	n, ok := g.nodes[c]
	if !ok {
		return nil, fmt.Errorf("spacetime: %v: %w", c, ErrUnknownNode)
	}
	return n, nil
}

// SetBoundary marks or unmarks c as a boundary node.
func (g *Graph) SetBoundary(c Coord, boundary bool) error {
	n, err := g.lookup(c)
	if err != nil {
		return err
	}
	n.boundary = boundary

	return nil
}

// SetAllBoundary marks every given node as a boundary node.
func (g *Graph) SetAllBoundary(cs ...Coord) error {
	for _, c := range cs {
		if err := g.SetBoundary(c, true); err != nil {
			return err
		}
	}

	return nil
}

// SetClassicalRegister rebinds c to register id of the shared file.
func (g *Graph) SetClassicalRegister(c Coord, id register.ID) error {
	n, err := g.lookup(c)
	if err != nil {
		return err
	}
	if !g.regs.Valid(id) {
		return fmt.Errorf("spacetime: %v: %w", c, register.ErrUnknownRegister)
	}
	n.reg = id

	return nil
}

// HasNode reports whether c is part of the graph.
func (g *Graph) HasNode(c Coord) bool {
	_, ok := g.nodes[c]
	return ok
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// Coords returns every node ordered by (T, X, Y).
func (g *Graph) Coords() []Coord {
	out := make([]Coord, 0, len(g.nodes))
	for c := range g.nodes {
		out = append(out, c)
	}
	SortCoords(out)

	return out
}

// Coord resolves a core vertex ID back to its coordinate.
func (g *Graph) Coord(id string) (Coord, bool) {
	c, ok := g.byID[id]
	return c, ok
}

// Neighbors returns the nodes adjacent to c ordered by (T, X, Y).
func (g *Graph) Neighbors(c Coord) ([]Coord, error) {
	if _, err := g.lookup(c); err != nil {
		return nil, err
	}
	ids, err := g.topo.NeighborIDs(c.ID())
	if err != nil {
		return nil, fmt.Errorf("spacetime: neighbors of %v: %w", c, err)
	}
	out := make([]Coord, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.byID[id])
	}
	SortCoords(out)

	return out, nil
}

// EdgeWeight returns the weight of the edge u-v.
func (g *Graph) EdgeWeight(u, v Coord) (float64, error) {
	e, err := g.topo.EdgeBetween(u.ID(), v.ID())
	if err != nil {
		return 0, fmt.Errorf("spacetime: edge %v-%v: %w", u, v, err)
	}
	return e.Weight, nil
}

// IsBoundary reports whether c is a boundary node.
func (g *Graph) IsBoundary(c Coord) (bool, error) {
	n, err := g.lookup(c)
	if err != nil {
		return false, err
	}
	return n.boundary, nil
}

// ClassicalRegister returns the register c's syndrome bit is stored in.
func (g *Graph) ClassicalRegister(c Coord) (register.ID, error) {
	n, err := g.lookup(c)
	if err != nil {
		return register.None, err
	}
	return n.reg, nil
}

// Value returns the current bit of c.
func (g *Graph) Value(c Coord) (uint8, error) {
	n, err := g.lookup(c)
	if err != nil {
		return 0, err
	}
	return g.regs.Get(n.reg)
}

// IsDefect reports whether c currently holds a 1.
func (g *Graph) IsDefect(c Coord) (bool, error) {
	v, err := g.Value(c)
	return v == 1, err
}

// Defects returns every node holding a 1, boundary nodes included, ordered by (T, X, Y).
func (g *Graph) Defects() []Coord {
	var out []Coord
	for c, n := range g.nodes {
		if v, _ := g.regs.Get(n.reg); v == 1 {
			out = append(out, c)
		}
	}
	SortCoords(out)

	return out
}

// DefectCount returns len(Defects()) without allocating.
func (g *Graph) DefectCount() int {
	count := 0
	for _, n := range g.nodes {
		if v, _ := g.regs.Get(n.reg); v == 1 {
			count++
		}
	}

	return count
}

// XorToLastTime replaces every non-boundary bit whose predecessor (x, y, t-1) is a
// non-boundary node by the XOR of the two. Layers are processed from the latest
// round down so each step reads the previous pass's values.
func (g *Graph) XorToLastTime() error {
	coords := g.Coords()
	for i := len(coords) - 1; i >= 0; i-- {
		c := coords[i]
		n := g.nodes[c]
		if n.boundary {
			continue
		}
		prev, ok := g.nodes[Coord{X: c.X, Y: c.Y, T: c.T - 1}]
		if !ok || prev.boundary {
			continue
		}
		pv, err := g.regs.Get(prev.reg)
		if err != nil {
			return err
		}
		if pv == 0 {
			continue
		}
		if err := g.regs.Flip(n.reg); err != nil {
			return err
		}
	}

	return nil
}

// InsertMeasurementError flips each non-boundary bit of rounds [0, Rounds) with
// probability rate. Nodes at T >= Rounds hold no measurement and are skipped.
func (g *Graph) InsertMeasurementError(rate float64) error {
	if math.IsNaN(rate) || rate < 0 || rate > 1 {
		return fmt.Errorf("spacetime: measurement error %v: %w", rate, ErrBadRate)
	}
	for _, c := range g.Coords() {
		n := g.nodes[c]
		if n.boundary || c.T >= g.rounds || !rng.Bernoulli(g.rnd, rate) {
			continue
		}
		if err := g.regs.Flip(n.reg); err != nil {
			return err
		}
	}

	return nil
}

// FlipDefect restores an even defect count by setting zero-valued boundary nodes
// to 1, in (T, X, Y) order, at most limit times. It returns the number of flips.
func (g *Graph) FlipDefect(limit int) (int, error) {
	if limit < 1 {
		return 0, ErrBadLimit
	}
	if g.DefectCount()%2 == 0 {
		return 0, nil
	}

	flips := 0
	for _, c := range g.Coords() {
		if flips == limit {
			break
		}
		n := g.nodes[c]
		if !n.boundary {
			continue
		}
		if v, _ := g.regs.Get(n.reg); v != 0 {
			continue
		}
		if err := g.regs.Set(n.reg, 1); err != nil {
			return flips, err
		}
		flips++
		if g.DefectCount()%2 == 0 {
			return flips, nil
		}
	}

	return flips, fmt.Errorf("spacetime: %d flips: %w", flips, ErrParityUnresolved)
}

// ResetRegister zeroes the bits of every node of this graph.
func (g *Graph) ResetRegister() {
	for _, n := range g.nodes {
		_ = g.regs.Set(n.reg, 0)
	}
}

// Clear zeroes the bit of c.
func (g *Graph) Clear(c Coord) error {
	n, err := g.lookup(c)
	if err != nil {
		return err
	}
	return g.regs.Set(n.reg, 0)
}

// EdgeToQubit returns the data qubit crossed by the edge u-v, i.e. the midpoint
// of the two stabilizer positions. The rounds may differ by one for the diagonal
// edges of mid-round errors; a step in time alone crosses no qubit.
func (g *Graph) EdgeToQubit(u, v Coord) (Qubit, error) {
	if u.Spatial() == v.Spatial() || u.T-v.T > 1 || v.T-u.T > 1 {
		return Qubit{}, fmt.Errorf("spacetime: %v-%v: %w", u, v, ErrNotSpatial)
	}
	return Qubit{X: (u.X + v.X) / 2, Y: (u.Y + v.Y) / 2}, nil
}
