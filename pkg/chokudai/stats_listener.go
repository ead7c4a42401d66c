package chokudai

// ListenerSearchStats is the snapshot handed to listener callbacks
type ListenerSearchStats[T ActionLike, E ScoreLike] struct {
	Sweeps     int
	Expansions uint64
	MaxDepth   int
	TimeMs     int
	Sps        uint32
	Best       SearchResult[T, E]
	HasBest    bool
	StopReason StopReason
}

func (c *Chokudai[T, E, S]) listenerStats() ListenerSearchStats[T, E] {
	best, ok := c.peekBest()
	if !ok && c.result.Fallback {
		best, ok = c.result, true
	}
	return ListenerSearchStats[T, E]{
		Sweeps:     c.Sweeps(),
		Expansions: c.Expansions(),
		MaxDepth:   c.MaxDepth(),
		TimeMs:     int(c.Limiter.Elapsed()),
		Sps:        c.Sps(),
		Best:       best,
		HasBest:    ok,
		StopReason: c.Limiter.StopReason(),
	}
}

// Listener function callback, receives the current search statistics
type ListenerFunc[T ActionLike, E ScoreLike] func(ListenerSearchStats[T, E])

type StatsListener[T ActionLike, E ScoreLike] struct {
	// called when a new frontier level receives its first node
	onDepth ListenerFunc[T, E]

	// called every N completed sweeps
	onSweep ListenerFunc[T, E]
	nSweeps int // call 'onSweep' every N sweeps

	// called once when the search stops (limit, exhaustion or 'stop' signal)
	onStop ListenerFunc[T, E]
}

func NewStatsListener[T ActionLike, E ScoreLike]() StatsListener[T, E] {
	return StatsListener[T, E]{nSweeps: 1}
}

// Attach new on max depth change callback
func (listener *StatsListener[T, E]) OnDepth(onDepth ListenerFunc[T, E]) *StatsListener[T, E] {
	listener.onDepth = onDepth
	return listener
}

// Attach new per-sweep callback. Evaluating the snapshot costs a scan of
// the frontiers, so prefer a large interval on tight budgets.
func (listener *StatsListener[T, E]) OnSweep(onSweep ListenerFunc[T, E]) *StatsListener[T, E] {
	listener.onSweep = onSweep
	return listener
}

func (listener *StatsListener[T, E]) SetSweepInterval(n int) *StatsListener[T, E] {
	if n < 1 {
		n = 1
	}
	listener.nSweeps = n
	return listener
}

// Attach 'on search end' callback, called once,
// makes 'StopReason' available in the stats
func (listener *StatsListener[T, E]) OnStop(onStop ListenerFunc[T, E]) *StatsListener[T, E] {
	listener.onStop = onStop
	return listener
}
