// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– Source:           ID of the starting vertex (must be non-empty and present in the graph).
//	– ReturnPath:       if true, Result.Prev is populated for path reconstruction.
//	– MaxDistance:      optional cap on distances to explore; vertices beyond this are skipped.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//	– Targets:          stop early once k vertices satisfying a predicate are settled.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrUnweightedGraph if the graph is not configured to support weights.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0 or NaN.
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 or NaN.
//	– ErrBadTargetCount  if WithTargets is given k < 1 or a nil predicate.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was zero, negative or NaN,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrBadTargetCount indicates an early-stop request for fewer than one target.
	ErrBadTargetCount = errors.New("dijkstra: target count must be >= 1 with a non-nil predicate")
)

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source           string               // The ID of the source vertex
	ReturnPath       bool                 // Whether to populate Result.Prev
	MaxDistance      float64              // Maximum distance to explore
	InfEdgeThreshold float64              // Weight threshold at or above which edges are non-traversable
	IsTarget         func(id string) bool // Early-stop predicate (nil = explore everything)
	TargetCount      int                  // Stop after this many settled targets
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Must be provided.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed max are not explored.
// Negative values make Dijkstra return ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) { o.MaxDistance = max }
}

// WithInfEdgeThreshold defines a weight at or above which edges are skipped.
// Non-positive values make Dijkstra return ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) { o.InfEdgeThreshold = threshold }
}

// WithTargets stops the search once k vertices satisfying isTarget have been settled.
// The source counts when it satisfies isTarget. Settled targets are reported in
// Result.Targets in settle order.
func WithTargets(isTarget func(id string) bool, k int) Option {
	return func(o *Options) {
		o.IsTarget = isTarget
		o.TargetCount = k
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// for the given source vertex ID.
//
// Defaults:
//   - ReturnPath:       false.
//   - MaxDistance:      +Inf (no distance limit).
//   - InfEdgeThreshold: +Inf (no edges treated as impassable).
//   - Targets:          none (full exploration).
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// Result holds the outcome of one Dijkstra run.
//
// Dist contains every settled or discovered vertex; a vertex missing from Dist was
// never reached before the search stopped. Prev is nil unless WithReturnPath was
// given; Prev[v] == u means the shortest path to v goes through u.
type Result struct {
	Source  string
	Dist    map[string]float64
	Prev    map[string]string
	Targets []string
}

// Distance returns the distance to id, or +Inf if id was not reached.
func (r *Result) Distance(id string) float64 {
	if d, ok := r.Dist[id]; ok {
		return d
	}
	return math.Inf(1)
}

// PathTo returns the vertex sequence from id back to the source (id first, source last).
// It returns nil when Prev was not requested or id was not reached.
// Complexity: O(path length).
func (r *Result) PathTo(id string) []string {
	if r.Prev == nil {
		return nil
	}
	if _, ok := r.Dist[id]; !ok {
		return nil
	}
	path := []string{id}
	for cur := id; cur != r.Source; {
		p, ok := r.Prev[cur]
		if !ok || p == "" {
			return nil
		}
		path = append(path, p)
		cur = p
	}

	return path
}
