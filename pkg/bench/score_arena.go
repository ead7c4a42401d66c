package bench

import (
	"context"
	"sync"

	"github.com/IlikeChooros/go-chokudai/pkg/chokudai"
)

/*
Arena benchmark subpackage, plays a series of single-player scoring games
with each registered agent and aggregates the final scores. Every agent
plays the exact same sequence of seeded games, so the resulting means are
directly comparable (paired runs).
*/

// Agent is a synchronous action chooser: given a state, return the action
// to play. Implementations keep no per-call state, the arena may call
// them from multiple worker goroutines on independent games.
type Agent[T chokudai.ActionLike, E chokudai.ScoreLike, S chokudai.GameState[T, E, S]] interface {
	Name() string
	ChooseAction(S) (T, error)
}

// NewGameFn builds the initial state of game 'seed'. Must be
// deterministic in the seed, the arena replays the same seeds per agent.
type NewGameFn[T chokudai.ActionLike, E chokudai.ScoreLike, S chokudai.GameState[T, E, S]] func(seed int64) S

// ScoreFn extracts the final score of a finished game
type ScoreFn[T chokudai.ActionLike, E chokudai.ScoreLike, S chokudai.GameState[T, E, S]] func(S) float64

type ScoreArena[T chokudai.ActionLike, E chokudai.ScoreLike, S chokudai.GameState[T, E, S]] struct {
	Agents   []Agent[T, E, S]
	NGames   int
	NThreads int
	Seed     int64 // game i is built from Seed+i

	newGame NewGameFn[T, E, S]
	score   ScoreFn[T, E, S]

	// scores[agent][game], workers write disjoint game ranges
	scores [][]float64

	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
	errOnce sync.Once
	err     error
}

func NewScoreArena[T chokudai.ActionLike, E chokudai.ScoreLike, S chokudai.GameState[T, E, S]](
	newGame NewGameFn[T, E, S], score ScoreFn[T, E, S], agents ...Agent[T, E, S],
) *ScoreArena[T, E, S] {
	return &ScoreArena[T, E, S]{
		Agents:   agents,
		NGames:   100,
		NThreads: 2,
		newGame:  newGame,
		score:    score,
		ctx:      context.Background(),
	}
}

func (sa *ScoreArena[T, E, S]) WithContext(ctx context.Context) *ScoreArena[T, E, S] {
	sa.ctx = ctx
	return sa
}

func (sa *ScoreArena[T, E, S]) Setup(nGames, nThreads int, seed int64) {
	sa.NGames = nGames
	sa.NThreads = max(1, nThreads)
	sa.Seed = seed
}

// Run plays NGames games per agent, distributing the game indices evenly
// across NThreads worker goroutines, and blocks until every game is done
// (or the context is cancelled / an agent fails). Listener callbacks fire
// from the workers, see ListenerLike.
func (sa *ScoreArena[T, E, S]) Run(listener ListenerLike) (Summary, error) {
	if listener == nil {
		listener = NopListener{}
	}
	if len(sa.Agents) == 0 {
		return Summary{}, &chokudai.ConfigurationError{Reason: "arena has no agents"}
	}
	if sa.NGames <= 0 {
		return Summary{}, &chokudai.ConfigurationError{Reason: "arena needs at least one game"}
	}

	sa.scores = make([][]float64, len(sa.Agents))
	for i := range sa.scores {
		sa.scores[i] = make([]float64, sa.NGames)
	}

	ctx, cancel := context.WithCancel(sa.ctx)
	sa.cancel = cancel
	defer cancel()

	// Chunk the game range evenly, first 'rest' workers take one extra
	threads := min(sa.NThreads, sa.NGames)
	nGames := sa.NGames / threads
	rest := sa.NGames % threads
	begin := 0
	for i := 0; i < threads; i++ {
		delta := 0
		if rest > 0 {
			delta = 1
			rest--
		}

		sa.wg.Add(1)
		go sa.worker(ctx, begin, begin+nGames+delta, listener)
		begin += nGames + delta
	}

	sa.wg.Wait()
	if sa.err != nil {
		return Summary{}, sa.err
	}

	summary := sa.summarize()
	listener.Summary(summary)
	return summary, nil
}

func (sa *ScoreArena[T, E, S]) worker(ctx context.Context, begin, end int, listener ListenerLike) {
	defer sa.wg.Done()

	for game := begin; game < end; game++ {
		for a, agent := range sa.Agents {
			select {
			case <-ctx.Done():
				sa.fail(ctx.Err())
				return
			default:
			}

			score, err := sa.playGame(agent, sa.Seed+int64(game))
			if err != nil {
				sa.fail(err)
				return
			}

			sa.scores[a][game] = score
			listener.OnGameDone(agent.Name(), game, sa.NGames, score)
		}
	}
}

func (sa *ScoreArena[T, E, S]) playGame(agent Agent[T, E, S], seed int64) (float64, error) {
	state := sa.newGame(seed)
	for !state.IsTerminal() {
		action, err := agent.ChooseAction(state)
		if err != nil {
			return 0, err
		}
		state = state.Apply(action)
	}
	return sa.score(state), nil
}

// Record the first failure and stop all workers
func (sa *ScoreArena[T, E, S]) fail(err error) {
	sa.errOnce.Do(func() {
		sa.err = err
		sa.cancel()
	})
}
