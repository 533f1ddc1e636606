package builder

import "errors"

var (
	// ErrTooFewVertices indicates a vertex count below the minimum the
	// requested constructor supports.
	ErrTooFewVertices = errors.New("builder: vertex count too small")

	// ErrTooManyArcs indicates a requested arc count exceeding the
	// capacity of a simple digraph on n vertices, n·(n-1).
	ErrTooManyArcs = errors.New("builder: arc count exceeds capacity")

	// ErrNeedRandSource indicates a stochastic constructor was invoked
	// without a seeded random source (WithSeed or WithRand).
	ErrNeedRandSource = errors.New("builder: random source is required")
)
