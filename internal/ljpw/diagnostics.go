package ljpw

import "math"

const (
	// CriticalJustice is the justice level below which collapse risk
	// dominates every other signal.
	CriticalJustice = 0.40

	// BaselineCollapseRisk is the residual risk for healthy states.
	BaselineCollapseRisk = 0.10
)

// CollapseProbability estimates the probability of system collapse
// from a state. Low justice is the primary indicator; low harmony the
// secondary one.
func CollapseProbability(v Vector) float64 {
	if v.Justice < CriticalJustice {
		return math.Min(1.0, (CriticalJustice-v.Justice)*3+0.5)
	}
	h := Harmony(v)
	if h < DefaultThresholds.EntropicMax {
		return (DefaultThresholds.EntropicMax - h) * 2
	}
	return BaselineCollapseRisk
}

// Coupling holds the state-dependent coupling coefficients through
// which love amplifies the other dimensions. Higher harmony gives a
// system more access to that amplification.
type Coupling struct {
	LoveJustice float64 `json:"kappa_lj"`
	LovePower   float64 `json:"kappa_lp"`
	LoveWisdom  float64 `json:"kappa_lw"`

	// LostAmplification is the fraction of the potential love
	// multiplier the system cannot access at its current harmony,
	// in percent.
	LostAmplification float64 `json:"lost_amplification_pct"`
}

// CouplingAt computes the coupling coefficients for a harmony value.
func CouplingAt(h float64) Coupling {
	return Coupling{
		LoveJustice:       1.0 + 0.4*h,
		LovePower:         1.0 + 0.3*h,
		LoveWisdom:        1.0 + 0.5*h,
		LostAmplification: (1.4 - (1.0 + 0.4*h)) / 0.4 * 100,
	}
}

// Deviation is the signed per-dimension difference from a reference
// vector plus the Euclidean magnitude.
type Deviation struct {
	Love      float64 `json:"love"`
	Justice   float64 `json:"justice"`
	Power     float64 `json:"power"`
	Wisdom    float64 `json:"wisdom"`
	Euclidean float64 `json:"euclidean"`
}

// DeviationFrom measures how far v sits from a reference point.
// Positive values mean v is above the reference in that dimension.
func DeviationFrom(v, ref Vector) Deviation {
	return Deviation{
		Love:      v.Love - ref.Love,
		Justice:   v.Justice - ref.Justice,
		Power:     v.Power - ref.Power,
		Wisdom:    v.Wisdom - ref.Wisdom,
		Euclidean: Distance(v, ref),
	}
}

// EquilibriumDeviation measures distance from the natural equilibrium,
// the "cost of existence" reading of the model.
func EquilibriumDeviation(v Vector) Deviation {
	return DeviationFrom(v, Equilibrium)
}
