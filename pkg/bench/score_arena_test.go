package bench

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/IlikeChooros/go-chokudai/pkg/chokudai"
)

// Counting game for arena tests: each of the endTurn turns adds the
// chosen step (0 or 1) to the score, the seed sets the starting score.
type step int

type countState struct {
	score   int
	turn    int
	endTurn int
}

func (s *countState) Clone() *countState {
	clone := *s
	return &clone
}

func (s *countState) IsTerminal() bool     { return s.turn == s.endTurn }
func (s *countState) LegalActions() []step { return []step{0, 1} }
func (s *countState) Evaluate() int        { return s.score }

func (s *countState) Apply(a step) *countState {
	next := s.Clone()
	next.score += int(a)
	next.turn++
	return next
}

func newCountGame(seed int64) *countState {
	return &countState{score: int(seed % 3), endTurn: 4}
}

func finalScore(s *countState) float64 {
	return float64(s.score)
}

type fixedAgent struct {
	name string
	pick step
}

func (a fixedAgent) Name() string { return a.name }
func (a fixedAgent) ChooseAction(s *countState) (step, error) {
	return a.pick, nil
}

type failingAgent struct{}

func (failingAgent) Name() string { return "failing" }
func (failingAgent) ChooseAction(s *countState) (step, error) {
	return 0, fmt.Errorf("agent gave up at turn %d", s.turn)
}

type countingListener struct {
	mu        sync.Mutex
	gamesDone int
	summaries int
}

func (l *countingListener) OnGameDone(agent string, game, nGames int, score float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.gamesDone++
}

func (l *countingListener) Summary(Summary) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.summaries++
}

func TestArenaPairedMeans(t *testing.T) {
	arena := NewScoreArena[step, int, *countState](
		newCountGame, finalScore,
		fixedAgent{name: "always1", pick: 1},
		fixedAgent{name: "always0", pick: 0},
	)
	arena.Setup(6, 4, 0)

	summary, err := arena.Run(nil)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Games != 6 || len(summary.Agents) != 2 {
		t.Fatalf("summary shape: games=%d agents=%d", summary.Games, len(summary.Agents))
	}

	// Seeds 0..5 start the score at 0,1,2,0,1,2 (mean 1); always1 adds
	// 4 points on top of that, always0 adds none.
	if got := summary.Agents[0]; got.Name != "always1" || got.Mean != 5 || got.Min != 4 || got.Max != 6 {
		t.Errorf("always1: %+v", got)
	}
	if got := summary.Agents[1]; got.Name != "always0" || got.Mean != 1 || got.Min != 0 || got.Max != 2 {
		t.Errorf("always0: %+v", got)
	}
}

func TestArenaMoreThreadsThanGames(t *testing.T) {
	arena := NewScoreArena[step, int, *countState](
		newCountGame, finalScore,
		fixedAgent{name: "always1", pick: 1},
	)
	arena.Setup(3, 8, 10)

	summary, err := arena.Run(nil)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Agents[0].Games != 3 {
		t.Fatalf("played %d games, want 3", summary.Agents[0].Games)
	}
}

func TestArenaListenerSeesEveryGame(t *testing.T) {
	arena := NewScoreArena[step, int, *countState](
		newCountGame, finalScore,
		fixedAgent{name: "always1", pick: 1},
		fixedAgent{name: "always0", pick: 0},
	)
	arena.Setup(6, 2, 0)

	listener := &countingListener{}
	if _, err := arena.Run(listener); err != nil {
		t.Fatal(err)
	}

	if listener.gamesDone != 12 {
		t.Errorf("OnGameDone fired %d times, want 12 (6 games x 2 agents)", listener.gamesDone)
	}
	if listener.summaries != 1 {
		t.Errorf("Summary fired %d times, want 1", listener.summaries)
	}
}

func TestArenaPropagatesAgentError(t *testing.T) {
	arena := NewScoreArena[step, int, *countState](
		newCountGame, finalScore,
		failingAgent{},
	)
	arena.Setup(4, 2, 0)

	if _, err := arena.Run(nil); err == nil {
		t.Fatal("failing agent error was swallowed")
	}
}

func TestArenaConfigurationErrors(t *testing.T) {
	var confErr *chokudai.ConfigurationError

	empty := NewScoreArena[step, int, *countState](newCountGame, finalScore)
	if _, err := empty.Run(nil); !errors.As(err, &confErr) {
		t.Errorf("no agents: got %v, want ConfigurationError", err)
	}

	arena := NewScoreArena[step, int, *countState](
		newCountGame, finalScore,
		fixedAgent{name: "always1", pick: 1},
	)
	arena.Setup(0, 2, 0)
	if _, err := arena.Run(nil); !errors.As(err, &confErr) {
		t.Errorf("zero games: got %v, want ConfigurationError", err)
	}
}
