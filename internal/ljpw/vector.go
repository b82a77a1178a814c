// Package ljpw implements the LJPW scoring model: four-dimensional
// score vectors (Love, Justice, Power, Wisdom), harmony derivation,
// phase classification and trajectory diagnostics.
package ljpw

import "math"

// Vector is a point-in-time LJPW assessment. Values nominally lie in
// [0, 1] but are not validated anywhere in the scoring path: values
// above 1.0 are meaningful in amplification contexts and must pass
// through unchanged. Callers that want bounded input use Clamp01.
type Vector struct {
	Love    float64 `json:"love"`
	Justice float64 `json:"justice"`
	Power   float64 `json:"power"`
	Wisdom  float64 `json:"wisdom"`
}

// Anchor is the fixed reference point of perfect alignment.
var Anchor = Vector{Love: 1, Justice: 1, Power: 1, Wisdom: 1}

// Natural equilibrium values, one mathematical constant per dimension.
const (
	EquilibriumLove    = 0.6180339887498949  // φ⁻¹
	EquilibriumJustice = 0.41421356237309515 // √2 − 1
	EquilibriumPower   = 0.7182818284590452  // e − 2
	EquilibriumWisdom  = 0.6931471805599453  // ln 2
)

// Equilibrium is the secondary reference point distinct from Anchor.
var Equilibrium = Vector{
	Love:    EquilibriumLove,
	Justice: EquilibriumJustice,
	Power:   EquilibriumPower,
	Wisdom:  EquilibriumWisdom,
}

// Weights scales each dimension's contribution to a distance.
type Weights struct {
	Love    float64 `json:"love"`
	Justice float64 `json:"justice"`
	Power   float64 `json:"power"`
	Wisdom  float64 `json:"wisdom"`
}

// UniformWeights weighs every dimension equally.
var UniformWeights = Weights{Love: 1, Justice: 1, Power: 1, Wisdom: 1}

// Distance returns the Euclidean distance between two vectors.
func Distance(a, b Vector) float64 {
	dl := a.Love - b.Love
	dj := a.Justice - b.Justice
	dp := a.Power - b.Power
	dw := a.Wisdom - b.Wisdom
	return math.Sqrt(dl*dl + dj*dj + dp*dp + dw*dw)
}

// WeightedDistance returns the weighted Euclidean distance between two
// vectors. Weights apply to the squared terms.
func WeightedDistance(a, b Vector, w Weights) float64 {
	dl := a.Love - b.Love
	dj := a.Justice - b.Justice
	dp := a.Power - b.Power
	dw := a.Wisdom - b.Wisdom
	return math.Sqrt(w.Love*dl*dl + w.Justice*dj*dj + w.Power*dp*dp + w.Wisdom*dw*dw)
}

// Harmony derives the scalar harmony of a vector: 1/(1+d) where d is
// the Euclidean distance to the Anchor. For inputs in [0,1]⁴ the
// result lies in [1/3, 1]; out-of-range inputs still yield a value in
// (0, 1]. Total on all real 4-tuples.
func Harmony(v Vector) float64 {
	return 1.0 / (1.0 + Distance(v, Anchor))
}

// HarmonyAgainst derives harmony relative to an arbitrary anchor with
// per-dimension weights.
func HarmonyAgainst(v, anchor Vector, w Weights) float64 {
	return 1.0 / (1.0 + WeightedDistance(v, anchor, w))
}

// Clamp01 bounds every dimension to [0, 1]. Opt-in only.
func Clamp01(v Vector) Vector {
	return Vector{
		Love:    clamp01(v.Love),
		Justice: clamp01(v.Justice),
		Power:   clamp01(v.Power),
		Wisdom:  clamp01(v.Wisdom),
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Dims returns the vector as a fixed-order slice (L, J, P, W), the
// order used for storage and wire encoding.
func (v Vector) Dims() [4]float64 {
	return [4]float64{v.Love, v.Justice, v.Power, v.Wisdom}
}

// FromDims builds a vector from the fixed (L, J, P, W) order.
func FromDims(d [4]float64) Vector {
	return Vector{Love: d[0], Justice: d[1], Power: d[2], Wisdom: d[3]}
}
