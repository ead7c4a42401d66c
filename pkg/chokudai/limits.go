package chokudai

import (
	"encoding/json"
	"math"
	"strings"
)

// Limits describe both the shape of the search (BeamWidth, Depth,
// QueueCap) and when it must stop (Movetime, Sweeps). BeamWidth and
// Depth must be positive, everything else is optional.
type Limits struct {
	// Expansions per level per sweep
	BeamWidth int
	// Search horizon, the number of frontier levels past the root
	Depth int
	// Maximum number of completed sweeps
	Sweeps uint32
	// Wall-clock budget in milliseconds, checked between sweeps only
	Movetime int
	// Per-level queue bound, 0 keeps queues unbounded
	QueueCap int
	Infinite bool
}

func (l Limits) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(l)
	return builder.String()
}

const (
	DefaultBeamWidth            = 1
	DefaultDepthLimit           = 1
	DefaultSweepsLimit   uint32 = math.MaxUint32
	DefaultMovetimeLimit        = -1
)

func DefaultLimits() *Limits {
	return &Limits{
		BeamWidth: DefaultBeamWidth,
		Depth:     DefaultDepthLimit,
		Sweeps:    DefaultSweepsLimit,
		Movetime:  DefaultMovetimeLimit,
		Infinite:  true,
	}
}

// Set the number of expansions per level per sweep
func (l *Limits) SetBeamWidth(width int) *Limits {
	l.BeamWidth = width
	return l
}

// Set the search horizon (number of levels past the root)
func (l *Limits) SetDepth(depth int) *Limits {
	l.Depth = depth
	return l
}

// Set the maximum number of sweeps
func (l *Limits) SetSweeps(sweeps uint32) *Limits {
	l.Sweeps = sweeps
	l.Infinite = false
	return l
}

// Set the wall-clock budget in milliseconds. Zero expires before the
// first sweep, which forces the one-ply fallback.
func (l *Limits) SetMovetime(movetime int) *Limits {
	l.Movetime = movetime
	l.Infinite = false
	return l
}

// Bound every frontier level to 'cap' nodes. Bounded queues evict their
// worst element, which can discard branches a longer budget would have
// revisited, so the anytime monotonicity guarantee no longer holds.
func (l *Limits) SetQueueCap(cap int) *Limits {
	l.QueueCap = max(0, cap)
	return l
}

func (l *Limits) SetInfinite(infinite bool) {
	l.Infinite = infinite
}
