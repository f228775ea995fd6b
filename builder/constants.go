// Package builder defines shared constants used by basis generators, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuild is the canonical name for the Build orchestrator.
	MethodBuild = "Build"
	// MethodIdentity is the canonical name for the Identity constructor.
	MethodIdentity = "Identity"
	// MethodUniform is the canonical name for the Uniform constructor.
	MethodUniform = "Uniform"
	// MethodKnapsack is the canonical name for the Knapsack constructor.
	MethodKnapsack = "Knapsack"
	// MethodRandomKnapsack is the canonical name for the RandomKnapsack constructor.
	MethodRandomKnapsack = "RandomKnapsack"
	// MethodUnitUpper is the canonical name for the UnitUpper constructor.
	MethodUnitUpper = "UnitUpper"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinVectors is the smallest basis any generator emits.
const MinVectors = 1

// MinBound is the smallest accepted entry bound for random generators.
const MinBound = 1

//-----------------------------------------------------------------------------
// Knapsack Weights
//-----------------------------------------------------------------------------

// MinWeightBits and MaxWeightBits bound the bit size of RandomKnapsack
// weights; 62 bits leaves room for the sign and a scale of 1.
const (
	MinWeightBits = 1
	MaxWeightBits = 62
)

// DefaultKnapsackScale multiplies the weight column when the caller passes a
// non-positive scale; large enough that a reduced basis zeroes that column.
const DefaultKnapsackScale = int64(1) << 10
