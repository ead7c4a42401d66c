package chokudai

import "cmp"

// Action signature type, anything comparable works (ints, small structs, ...)
type ActionLike comparable

// Evaluation score type, must be totally ordered
type ScoreLike interface{ cmp.Ordered }
