package surfacecode

import (
	"github.com/katalvlaran/qecsim/register"
	"github.com/katalvlaran/qecsim/spacetime"
)

var (
	spatialSteps  = [2][2]int{{2, 2}, {-2, 2}}
	boundarySteps = [4][2]int{{2, 2}, {-2, 2}, {-2, -2}, {2, -2}}
)

// schedule returns the CNOT order of stabilizer kind k.
func schedule(k Kind) [4][2]int {
	if k == KindZ {
		return orderZ
	}
	return orderX
}

func stepIndex(order [4][2]int, dx, dy int) int {
	for i, d := range order {
		if d[0] == dx && d[1] == dy {
			return i
		}
	}
	return -1
}

// edgeWeight maps an error probability onto a graph weight; without noise every
// edge costs the same.
func edgeWeight(p float64) float64 {
	if p <= 0 {
		return 1
	}
	return p
}

// buildGraph lays out the space-time defect graph of one stabilizer kind.
//
// Per round t the graph holds the stabilizers, spatial edges between diagonal
// neighbours, edges from the virtual boundary positions to the stabilizers next
// to them, and a free chain through the boundary positions. Time edges join a
// stabilizer to itself at t+1. Every boundary chain is joined to the next by a
// free edge so that the boundary acts as a single node for matching.
//
// A data error that strikes between the CNOTs of its two neighbouring checks is
// seen by the later one in round t and by the earlier one only in round t+1.
// Each spatial edge therefore has a diagonal twin from the later check at t to
// the earlier check at t+1, crossing the same data qubit.
//
// Layer t = rounds closes the graph in time. With readout set it is a full layer
// whose stabilizer values are computed from the final data measurement; without
// it the layer is all boundary and chained to the boundary at rounds-1.
func buildGraph(l *Layout, k Kind, rounds int, p float64, readout bool, seed uint64, regs *register.File) (*spacetime.Graph, error) {
	g, err := spacetime.New(rounds, seed, regs)
	if err != nil {
		return nil, err
	}
	stabs := l.Stabilizers(k)
	bounds := l.Boundary(k)
	isStab := make(map[spacetime.Qubit]bool, len(stabs))
	for _, s := range stabs {
		isStab[s] = true
	}
	w := edgeWeight(p)
	order := schedule(k)
	at := func(q spacetime.Qubit, t int) spacetime.Coord { return spacetime.Coord{X: q.X, Y: q.Y, T: t} }

	layers := rounds
	if readout {
		layers++
	}
	for t := 0; t < layers; t++ {
		var edges, temporal, free [][2]spacetime.Coord

		for _, u := range stabs {
			for _, d := range spatialSteps {
				v := spacetime.Qubit{X: u.X + d[0], Y: u.Y + d[1]}
				if !isStab[v] {
					continue
				}
				edges = append(edges, [2]spacetime.Coord{at(u, t), at(v, t)})
				if t+1 < layers {
					early, late := u, v
					if stepIndex(order, d[0]/2, d[1]/2) > stepIndex(order, -d[0]/2, -d[1]/2) {
						early, late = v, u
					}
					temporal = append(temporal, [2]spacetime.Coord{at(late, t), at(early, t+1)})
				}
			}
			if t < rounds {
				temporal = append(temporal, [2]spacetime.Coord{at(u, t), at(u, t+1)})
			}
		}
		for _, b := range bounds {
			for _, d := range boundarySteps {
				v := spacetime.Qubit{X: b.X + d[0], Y: b.Y + d[1]}
				if isStab[v] {
					edges = append(edges, [2]spacetime.Coord{at(b, t), at(v, t)})
				}
			}
		}
		for i := 1; i < len(bounds); i++ {
			free = append(free, [2]spacetime.Coord{at(bounds[i-1], t), at(bounds[i], t)})
		}
		if t > 0 {
			free = append(free, [2]spacetime.Coord{at(bounds[0], t-1), at(bounds[0], t)})
		}

		for _, batch := range []struct {
			pairs  [][2]spacetime.Coord
			weight float64
		}{{edges, w}, {temporal, w}, {free, 0}} {
			if err := g.AddEdges(batch.pairs, batch.weight); err != nil {
				return nil, err
			}
		}
		for _, b := range bounds {
			if err := g.SetBoundary(at(b, t), true); err != nil {
				return nil, err
			}
		}
	}

	if readout {
		return g, nil
	}

	// Closing layer.
	var closing [][2]spacetime.Coord
	for i := 1; i < len(stabs); i++ {
		closing = append(closing, [2]spacetime.Coord{at(stabs[i-1], rounds), at(stabs[i], rounds)})
	}
	closing = append(closing, [2]spacetime.Coord{at(stabs[0], rounds), at(bounds[0], rounds-1)})
	if err := g.AddEdges(closing, 0); err != nil {
		return nil, err
	}
	for _, s := range stabs {
		if err := g.SetBoundary(at(s, rounds), true); err != nil {
			return nil, err
		}
	}

	return g, nil
}
