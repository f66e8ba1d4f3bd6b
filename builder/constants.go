// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
// A cycle with fewer than 3 nodes cannot form a ring without parallel edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinStarNodes is the smallest meaningful size for a star (center + 1 leaf).
const MinStarNodes = 2

// MinWheelNodes is the smallest meaningful size for a wheel (hub + 3-cycle).
const MinWheelNodes = 4

// MinCompleteNodes is the smallest size for K_n (a single vertex, no edges).
const MinCompleteNodes = 1

// MinGridDim is the smallest allowed dimension (rows or cols) for a 2D Grid.
const MinGridDim = 1

// MinRandomSparseNodes is the smallest size for RandomSparse.
const MinRandomSparseNodes = 1

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the lower bound for p in RandomSparse.
const MinProbability = 0.0

// MaxProbability is the upper bound for p in RandomSparse.
const MaxProbability = 1.0
