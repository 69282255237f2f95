// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodRandomConnected is the canonical name for the RandomConnected constructor.
	MethodRandomConnected = "RandomConnected"
	// MethodRandomChordal is the canonical name for the RandomChordal constructor.
	MethodRandomChordal = "RandomChordal"
	// MethodRandomOrder is the canonical name for the RandomOrder constructor.
	MethodRandomOrder = "RandomOrder"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCompleteNodes is the smallest meaningful size for Complete(n): K_1 is a
// single isolated vertex, which is a valid (if degenerate) simple graph.
const MinCompleteNodes = 1

// MinRandomNodes is the smallest meaningful size for RandomConnected and
// RandomChordal: a graph of fewer than 2 vertices has no edges to place.
const MinRandomNodes = 2

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the lower bound for the edge-probability parameter p in
// RandomConnected (Erdos-Renyi) construction, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for the edge-probability parameter p in
// RandomConnected construction, inclusive.
const MaxProbability = 1.0
