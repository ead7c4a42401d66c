package chokudai

// Node is a state waiting in a frontier, with its evaluation cached.
//
// The first-action tag records which root-level action started the branch
// this node belongs to. It is stamped on direct children of the root and
// copied unchanged to every deeper descendant, so any node can translate
// itself back into an immediately playable move. The root itself carries
// no tag.
type Node[T ActionLike, E ScoreLike, S GameState[T, E, S]] struct {
	State S
	Score E

	firstAction T
	tagged      bool

	// Insertion counter, breaks evaluation ties (earlier insertion wins)
	seq uint64
}

// FirstAction returns the root-level action that led to this node,
// and whether the node carries one (the root does not).
func (n *Node[T, E, S]) FirstAction() (T, bool) {
	return n.firstAction, n.tagged
}
