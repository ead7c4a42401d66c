package bench

// ListenerLike receives arena progress. OnGameDone is called from worker
// goroutines concurrently, implementations must be safe for that.
type ListenerLike interface {
	// One agent finished one game
	OnGameDone(agent string, game, nGames int, score float64)
	// All games finished, aggregated results are ready
	Summary(Summary)
}

type NopListener struct{}

func (NopListener) OnGameDone(string, int, int, float64) {}
func (NopListener) Summary(Summary)                      {}
