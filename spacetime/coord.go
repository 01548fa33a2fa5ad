package spacetime

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Coord is a node of the space-time graph: a stabilizer position (X, Y) at round T.
type Coord struct {
	X, Y, T int
}

// Qubit is a data-qubit position on the lattice.
type Qubit struct {
	X, Y int
}

// ID returns the textual vertex ID used in the underlying core.Graph, "x,y,t".
func (c Coord) ID() string {
	buf := make([]byte, 0, 16)
	buf = strconv.AppendInt(buf, int64(c.X), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(c.Y), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(c.T), 10)
	return string(buf)
}

// String implements fmt.Stringer.
func (c Coord) String() string { return "(" + c.ID() + ")" }

// Spatial returns the (X, Y) part of c.
func (c Coord) Spatial() Qubit { return Qubit{X: c.X, Y: c.Y} }

// ParseCoord is the inverse of Coord.ID.
func ParseCoord(s string) (Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return Coord{}, fmt.Errorf("spacetime: parse %q: %w", s, ErrBadCoord)
	}
	var v [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Coord{}, fmt.Errorf("spacetime: parse %q: %w", s, ErrBadCoord)
		}
		v[i] = n
	}
	return Coord{X: v[0], Y: v[1], T: v[2]}, nil
}

// Less orders coordinates by (T, X, Y).
func (c Coord) Less(o Coord) bool {
	if c.T != o.T {
		return c.T < o.T
	}
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Y < o.Y
}

// SortCoords sorts cs in place by (T, X, Y).
func SortCoords(cs []Coord) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].Less(cs[j]) })
}

// SortQubits sorts qs in place by (X, Y).
func SortQubits(qs []Qubit) {
	sort.Slice(qs, func(i, j int) bool {
		if qs[i].X != qs[j].X {
			return qs[i].X < qs[j].X
		}
		return qs[i].Y < qs[j].Y
	})
}
