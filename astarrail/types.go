package astarrail

import (
	"errors"

	"github.com/openfrontio/tilepath/terrain"
)

// Sentinel errors returned by New.
var (
	// ErrBadMaxIterations indicates a zero iteration budget was requested.
	ErrBadMaxIterations = errors.New("astarrail: max iterations must be >= 1")
)

// Cost constants from the original TypeScript/Rust engine. Unlike
// astarwater, these are unscaled small integers — the entire reason the
// engine can use a bucket queue instead of a binary heap.
const (
	// WaterPenalty is added when stepping onto a tile that is water or
	// shoreline (land or water).
	WaterPenalty = 5
	// DirectionChangePenalty is added when the displacement into the
	// current tile differs from the displacement into the neighbor.
	DirectionChangePenalty = 3
	// HeuristicWeight scales the Manhattan-distance heuristic.
	HeuristicWeight = 2

	defaultMaxIterations = 500_000

	// maxStepCost bounds a single step's total cost: base (1) + water
	// penalty + direction-change penalty. Used to size the bucket queue.
	maxStepCost = 1 + WaterPenalty + DirectionChangePenalty
)

// Path is an ordered sequence of tile ids from a chosen start to the goal.
type Path []terrain.TileID

// Options configures an AStarRail instance at construction time.
type Options struct {
	MaxIterations uint32
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns the spec-mandated default: max iterations 500,000.
func DefaultOptions() Options {
	return Options{MaxIterations: defaultMaxIterations}
}

// WithMaxIterations overrides the default search iteration budget.
func WithMaxIterations(n uint32) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// absDiff returns |a - b| for unsigned operands without risking
// underflow.
func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

// heuristic computes the weighted Manhattan distance used by AStarRail.
func heuristic(nx, ny, goalX, goalY uint32) uint32 {
	return HeuristicWeight * (absDiff(nx, goalX) + absDiff(ny, goalY))
}
