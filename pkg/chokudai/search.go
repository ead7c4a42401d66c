package chokudai

import (
	"context"
	"time"
)

// Counters of the current/last search
type SearchStats struct {
	sweeps     uint32
	expansions uint64
	maxDepth   int
}

// SearchResult describes the frontier node the returned action was read
// from. Fallback is set when no completed sweep produced a usable
// candidate and the action came from the one-ply fallback instead.
type SearchResult[T ActionLike, E ScoreLike] struct {
	Action   T
	Score    E
	Depth    int
	Fallback bool
}

// Chokudai is an anytime multi-depth best-first search driver.
//
// It keeps one max-ordered frontier per depth level and repeatedly
// sweeps them shallow to deep, expanding at most BeamWidth nodes per
// level per sweep. Frontiers are never pruned: candidates that miss the
// cut of one sweep stay for the next, so coverage widens with elapsed
// time instead of being fixed up front. The wall clock is checked only
// between sweeps, a sweep is never interrupted once started.
//
// The driver is single-threaded: every node owns an exclusive state
// clone and no locking is involved. Stop/SetContext allow cooperative
// cancellation from another goroutine, honored at sweep boundaries.
type Chokudai[T ActionLike, E ScoreLike, S GameState[T, E, S]] struct {
	SearchStats
	Limiter  LimiterLike
	listener *StatsListener[T, E]

	root      S
	frontiers []frontier[T, E, S]
	seq       uint64
	result    SearchResult[T, E]
}

func NewChokudai[T ActionLike, E ScoreLike, S GameState[T, E, S]](root S) *Chokudai[T, E, S] {
	return &Chokudai[T, E, S]{
		Limiter:  LimiterLike(NewLimiter()),
		listener: &StatsListener[T, E]{nSweeps: 1},
		root:     root,
	}
}

// Search for the root's legal actions, spending the whole configured
// budget, and return the action most likely to lead to the highest
// reachable score within the Depth horizon.
//
// Guaranteed to return one of the root's legal actions for every valid
// configuration, even when the budget expires before the first sweep
// (one-ply fallback). Fails with *ConfigurationError on a non-positive
// BeamWidth/Depth or a terminal root, and with *StuckStateError when the
// non-terminal root has no legal actions.
func (c *Chokudai[T, E, S]) Search() (T, error) {
	var zero T
	limits := c.Limiter.Limits()

	if limits.Depth <= 0 {
		return zero, errConfig("depth must be positive, got %d", limits.Depth)
	}
	if limits.BeamWidth <= 0 {
		return zero, errConfig("beam width must be positive, got %d", limits.BeamWidth)
	}
	if c.root.IsTerminal() {
		return zero, errConfig("root state is terminal")
	}
	rootActions := c.root.LegalActions()
	if len(rootActions) == 0 {
		return zero, &StuckStateError{}
	}

	c.setupSearch()

	exhausted := false
	for c.Limiter.Ok(c.sweeps) {
		expanded := c.sweep(limits)
		c.sweeps++

		if c.listener.onSweep != nil && c.sweeps%uint32(max(c.listener.nSweeps, 1)) == 0 {
			c.listener.onSweep(c.listenerStats())
		}

		// A sweep that expanded nothing can never expand anything again,
		// the reachable space is enumerated completely
		if expanded == 0 {
			exhausted = true
			break
		}
	}
	c.Limiter.EvaluateStopReason(c.sweeps, exhausted)

	result, ok := c.peekBest()
	if !ok {
		result = c.onePly(rootActions)
	}
	c.result = result

	c.invokeListener(c.listener.onStop)
	return result.Action, nil
}

// One pass over all depth levels, shallow to deep, expanding at most
// BeamWidth nodes per level. Children of level t land in level t+1, the
// level-0 children get their first-action tag stamped here. Returns the
// number of nodes expanded.
func (c *Chokudai[T, E, S]) sweep(limits *Limits) int {
	expanded := 0
	for t := 0; t < limits.Depth; t++ {
		level := &c.frontiers[t]

		for i := 0; i < limits.BeamWidth; i++ {
			if level.Len() == 0 || level.Peek().State.IsTerminal() {
				break
			}

			node := level.PopBest()
			for _, action := range node.State.LegalActions() {
				next := node.State.Apply(action)
				child := &Node[T, E, S]{State: next, Score: next.Evaluate()}
				if t == 0 {
					child.firstAction = action
					child.tagged = true
				} else {
					child.firstAction = node.firstAction
					child.tagged = node.tagged
				}
				c.push(t+1, child)
			}

			expanded++
			c.expansions++
			if t+1 > c.maxDepth {
				c.maxDepth = t + 1
				c.invokeListener(c.listener.onDepth)
			}
		}
	}
	return expanded
}

// Scan levels deepest-first and read the first-action tag off the best
// node of the first non-empty one. Level 0 is skipped: it only ever
// holds the untagged root.
func (c *Chokudai[T, E, S]) peekBest() (SearchResult[T, E], bool) {
	for t := len(c.frontiers) - 1; t >= 1; t-- {
		best := c.frontiers[t].Peek()
		if best == nil {
			continue
		}

		action, ok := best.FirstAction()
		if !ok {
			// Nodes above depth 0 are tagged on creation, an untagged one
			// is a frontier-management bug
			panic("chokudai: untagged node above depth 0")
		}
		return SearchResult[T, E]{Action: action, Score: best.Score, Depth: t}, true
	}
	return SearchResult[T, E]{}, false
}

// Direct one-ply lookahead over the root's legal actions, used when the
// budget expired before any sweep populated a frontier. First best wins,
// so ties resolve to the earliest action in LegalActions order.
func (c *Chokudai[T, E, S]) onePly(actions []T) SearchResult[T, E] {
	result := SearchResult[T, E]{Depth: 1, Fallback: true}
	for i, action := range actions {
		score := c.root.Apply(action).Evaluate()
		if i == 0 || score > result.Score {
			result.Action = action
			result.Score = score
		}
	}
	return result
}

func (c *Chokudai[T, E, S]) setupSearch() {
	limits := c.Limiter.Limits()
	c.Limiter.Reset()
	c.sweeps = 0
	c.expansions = 0
	c.maxDepth = 0
	c.seq = 0
	c.result = SearchResult[T, E]{}

	c.frontiers = make([]frontier[T, E, S], limits.Depth+1)
	for i := range c.frontiers {
		c.frontiers[i].cap = limits.QueueCap
	}

	rootClone := c.root.Clone()
	c.push(0, &Node[T, E, S]{State: rootClone, Score: rootClone.Evaluate()})
}

func (c *Chokudai[T, E, S]) push(depth int, n *Node[T, E, S]) {
	n.seq = c.seq
	c.seq++
	c.frontiers[depth].Insert(n)
}

func (c *Chokudai[T, E, S]) invokeListener(f ListenerFunc[T, E]) {
	if f != nil {
		f(c.listenerStats())
	}
}

// Replace the root position for the next Search call
func (c *Chokudai[T, E, S]) SetPosition(root S) {
	c.root = root
}

func (c *Chokudai[T, E, S]) SetLimits(limits *Limits) {
	c.Limiter.SetLimits(limits)
}

func (c *Chokudai[T, E, S]) Limits() *Limits {
	return c.Limiter.Limits()
}

// Adds custom context to the limiter, enabling cancellation through it.
// Cancellation takes effect at the next sweep boundary.
func (c *Chokudai[T, E, S]) SetContext(ctx context.Context) {
	c.Limiter.SetContext(ctx)
}

// Request the search to stop at the next sweep boundary
func (c *Chokudai[T, E, S]) Stop() {
	c.Limiter.SetStop(true)
}

// Get the reason why the search was stopped, valid after search ends
func (c *Chokudai[T, E, S]) StopReason() StopReason {
	return c.Limiter.StopReason()
}

// The frontier node the last Search read its answer from
func (c *Chokudai[T, E, S]) Result() SearchResult[T, E] {
	return c.result
}

// Number of completed sweeps in the last search
func (c *Chokudai[T, E, S]) Sweeps() int {
	return int(c.sweeps)
}

// Total node expansions in the last search
func (c *Chokudai[T, E, S]) Expansions() uint64 {
	return c.expansions
}

// Deepest level that received a node during the last search
func (c *Chokudai[T, E, S]) MaxDepth() int {
	return c.maxDepth
}

// Sweeps per second
func (c *Chokudai[T, E, S]) Sps() uint32 {
	return c.sweeps * 1000 / c.Limiter.Elapsed()
}

func (c *Chokudai[T, E, S]) ResetListener() {
	c.listener.OnSweep(nil).OnDepth(nil).OnStop(nil)
}

func (c *Chokudai[T, E, S]) StatsListener() *StatsListener[T, E] {
	return c.listener
}

func (c *Chokudai[T, E, S]) SetListener(listener StatsListener[T, E]) {
	*c.listener = listener
}

// SearchAction runs a one-shot search over 'root' with the given beam
// width, depth horizon and wall-clock budget. Budgets smaller than one
// sweep still return a legal action through the one-ply fallback.
func SearchAction[T ActionLike, E ScoreLike, S GameState[T, E, S]](
	root S, beamWidth, depth int, budget time.Duration,
) (T, error) {
	if budget < 0 {
		budget = 0
	}

	engine := NewChokudai[T, E, S](root)
	engine.SetLimits(DefaultLimits().
		SetBeamWidth(beamWidth).
		SetDepth(depth).
		SetMovetime(int(budget.Milliseconds())))
	return engine.Search()
}
