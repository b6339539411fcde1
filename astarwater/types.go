package astarwater

import (
	"errors"

	"github.com/openfrontio/tilepath/terrain"
)

// Sentinel errors. New returns ErrBadHeuristicWeight and
// ErrBadMaxIterations.
var (
	// ErrBadHeuristicWeight indicates a zero heuristic weight was requested.
	ErrBadHeuristicWeight = errors.New("astarwater: heuristic weight must be >= 1")
	// ErrBadMaxIterations indicates a zero iteration budget was requested.
	ErrBadMaxIterations = errors.New("astarwater: max iterations must be >= 1")
	// ErrNoStarts describes an empty start set. No function in this package
	// returns it: FindPathMulti reports an empty start set as (nil, false).
	ErrNoStarts = errors.New("astarwater: starts must be non-empty")
)

// Cost constants from the original TypeScript/Rust engine. Everything is
// scaled by CostScale so an integer heuristic weight can be applied
// without losing precision to truncation.
const (
	// CostScale is the integer scaling factor applied to every cost term.
	CostScale = 100
	// BaseCost is the per-step cost of entering any traversable tile: one
	// unit, scaled by CostScale.
	BaseCost = 1 * CostScale

	defaultHeuristicWeight = 5
	defaultMaxIterations   = 1_000_000
)

// Path is an ordered sequence of tile ids from a chosen start to the goal.
type Path []terrain.TileID

// Options configures an AStarWater instance at construction time.
type Options struct {
	HeuristicWeight uint32
	MaxIterations   uint32
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns the spec-mandated defaults: heuristic weight 5,
// max iterations 1,000,000.
func DefaultOptions() Options {
	return Options{
		HeuristicWeight: defaultHeuristicWeight,
		MaxIterations:   defaultMaxIterations,
	}
}

// WithHeuristicWeight overrides the default heuristic weight. The weight
// is intentionally super-admissible in the default case — larger values
// favor search speed over strict path optimality.
func WithHeuristicWeight(w uint32) Option {
	return func(o *Options) { o.HeuristicWeight = w }
}

// WithMaxIterations overrides the default search iteration budget.
// Exhausting the budget is indistinguishable from a genuine no-path
// result, per spec §7.
func WithMaxIterations(n uint32) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// magnitudePenalty returns the shore-distance cost added per step into a
// water tile with the given magnitude:
//
//	m < 3:       +1000 (discourage hugging shore)
//	3 <= m <= 10: +0    (preferred open-sea band)
//	m > 10:      +100  (slight penalty for deep water)
func magnitudePenalty(m byte) uint32 {
	switch {
	case m < 3:
		return 10 * CostScale
	case m <= 10:
		return 0
	default:
		return 1 * CostScale
	}
}

// absDiff returns |a - b| for unsigned operands without risking
// underflow.
func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
