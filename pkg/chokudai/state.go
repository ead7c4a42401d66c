package chokudai

// GameState is the contract the search driver consumes. The driver never
// mutates a state it holds: every branch is explored through Clone/Apply,
// so implementations must return fully independent copies. Cloning is the
// dominant cost of the search, keep the state flat and cheap to copy.
//
// S is the implementing type itself (self-referential, same pattern as a
// `Clone() O` hook), e.g.:
//
//	type Maze struct{ ... }
//	func (m *Maze) Clone() *Maze { ... }
//	var _ chokudai.GameState[Action, int, *Maze] = (*Maze)(nil)
type GameState[T ActionLike, E ScoreLike, S any] interface {
	// Deep, independent copy, no shared heap structures
	Clone() S

	// True exactly when no further action can be applied
	IsTerminal() bool

	// Enumerate the applicable actions. The order must be deterministic,
	// it is part of the engine's reproducibility guarantee (ties in the
	// one-ply fallback resolve to the earliest action)
	LegalActions() []T

	// Return the successor state, without mutating the receiver
	Apply(T) S

	// Scalar evaluation of the state, higher is better
	Evaluate() E
}
