package rehex

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"
)

const (
	// MaxNeighbors is the number of slots in a Tile: a hexagon's ring.
	MaxNeighbors = 6

	// DefaultMinDegree is the smallest ring accepted as complete by default:
	// a pentagon.
	DefaultMinDegree = 5

	// minDegreeFloor is the smallest ring any closed triangle mesh can have.
	minDegreeFloor = 3
)

// Absent fills the unused trailing slots of a Tile. It can never be a vertex
// index because vertexCount is capped below it.
const Absent uint32 = math.MaxUint32

// State is the fragmentation state of an Accumulator: how many disjoint arcs
// of the final ring are known, and how long they are.
type State uint8

const (
	// Empty: no fact seen yet.
	Empty State = iota
	// Clear: a single arc of 2 to 5 neighbours.
	Clear
	// TwoTwo: two disjoint arcs of two neighbours each.
	TwoTwo
	// ThreeTwo: an arc of three followed by an arc of two, relative order unknown.
	ThreeTwo
	// TwoTwoTwo: three arcs of two; all six neighbours known, their order not.
	TwoTwoTwo
	// Complete: the ring is closed. Terminal.
	Complete
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Empty:
		return "Empty"
	case Clear:
		return "Clear"
	case TwoTwo:
		return "TwoTwo"
	case ThreeTwo:
		return "ThreeTwo"
	case TwoTwoTwo:
		return "TwoTwoTwo"
	case Complete:
		return "Complete"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Option configures BuildAdjacency and NewBuilder via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// build starts.
type Option func(*Options)

// Options holds the parameters of one adjacency build.
type Options struct {
	// Ctx allows cancellation between triangles.
	Ctx context.Context

	// Workers is the number of goroutines the scan is sharded over.
	// 1 runs the reference single pass.
	Workers int

	// MinDegree is the smallest closed ring accepted by the finalizer.
	MinDegree int

	// Strict makes facts arriving after a ring completed be checked against
	// it instead of being ignored.
	Strict bool

	// Logger receives debug progress lines. Defaults to a discarding logger.
	Logger *log.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a single worker
//   - MinDegree = DefaultMinDegree
//   - non-strict completion (late facts are no-ops)
//   - a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Workers:   1,
		MinDegree: DefaultMinDegree,
		Logger:    log.New(io.Discard),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers shards the scan over n goroutines. n < 1 is a violation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithMinDegree sets the smallest ring accepted as complete.
// k must lie in [3, MaxNeighbors].
func WithMinDegree(k int) Option {
	return func(o *Options) {
		if k < minDegreeFloor || k > MaxNeighbors {
			o.err = fmt.Errorf("%w: MinDegree must be in [%d,%d] (%d)",
				ErrOptionViolation, minDegreeFloor, MaxNeighbors, k)
			return
		}
		o.MinDegree = k
	}
}

// WithStrict checks every fact that arrives after its vertex completed.
// A fact that names a seventh neighbour fails with ErrOverfull, one that
// contradicts the closed ring with ErrInconsistent.
func WithStrict() Option {
	return func(o *Options) { o.Strict = true }
}

// WithLogger routes debug progress lines to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
