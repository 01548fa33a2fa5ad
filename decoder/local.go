package decoder

import (
	"fmt"

	"github.com/katalvlaran/qecsim/dijkstra"
	"github.com/katalvlaran/qecsim/spacetime"
)

// Path is a shortest path from a source defect to one of its nearest defects.
type Path struct {
	// Target is the defect the path ends at.
	Target spacetime.Coord

	// Nodes runs from Target back to the source, both included.
	Nodes []spacetime.Coord

	// Distance is the sum of edge weights along Nodes.
	Distance float64
}

// LocalDijkstra returns the paths from source to its m nearest other defects,
// nearest first. Fewer than m paths come back when the graph holds fewer defects
// reachable from source.
func LocalDijkstra(g *spacetime.Graph, m int, source spacetime.Coord) ([]Path, error) {
	if m < 1 {
		return nil, ErrBadNeighbourCount
	}
	on, err := g.IsDefect(source)
	if err != nil {
		return nil, err
	}
	if !on {
		return nil, fmt.Errorf("decoder: %v: %w", source, ErrNotDefect)
	}

	isDefect := func(id string) bool {
		c, ok := g.Coord(id)
		if !ok {
			return false
		}
		v, _ := g.IsDefect(c)
		return v
	}

	// m+1: the source is itself a defect and is settled first.
	res, err := dijkstra.Dijkstra(g.Topology(),
		dijkstra.Source(source.ID()),
		dijkstra.WithReturnPath(),
		dijkstra.WithTargets(isDefect, m+1),
	)
	if err != nil {
		return nil, fmt.Errorf("decoder: search from %v: %w", source, err)
	}

	srcID := source.ID()
	paths := make([]Path, 0, m)
	for _, id := range res.Targets {
		if id == srcID {
			continue
		}
		ids := res.PathTo(id)
		nodes := make([]spacetime.Coord, len(ids))
		for i, v := range ids {
			nodes[i], _ = g.Coord(v)
		}
		target, _ := g.Coord(id)
		paths = append(paths, Path{Target: target, Nodes: nodes, Distance: res.Distance(id)})
		if len(paths) == m {
			break
		}
	}

	return paths, nil
}
