// Package estimator derives LJPW score vectors from observable proxy
// data: organizational metrics and document text. The weighting scheme
// is a designed reconstruction, not a canonical algorithm; every weight
// is configurable and the defaults are illustrative.
package estimator

import (
	"math"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/ljpw"
)

// Phi is the golden ratio, the normalization base for all estimates.
var Phi = (1 + math.Sqrt(5)) / 2

// Method identifies how a measurement was produced.
type Method string

const (
	MethodProxy     Method = "proxy"
	MethodText      Method = "text"
	MethodConsensus Method = "consensus"
)

// Measurement is an estimated score vector with its provenance and a
// confidence in [0, 1].
type Measurement struct {
	Score      ljpw.Vector `json:"score"`
	Confidence float64     `json:"confidence"`
	Method     Method      `json:"method"`
}

// phiNormalize maps a raw value in [0,1] onto the dimension's natural
// scale: equilibrium × value^(1/φ). Values cluster around the
// equilibrium point rather than spreading linearly.
func phiNormalize(value, equilibrium float64) float64 {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	if value == 0 {
		return 0
	}
	r := equilibrium * math.Pow(value, 1/Phi)
	if r > 1 {
		return 1
	}
	return r
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
