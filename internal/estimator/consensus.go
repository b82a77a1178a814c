package estimator

import (
	"math"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/ljpw"
)

// minAlignmentWeight keeps outlier measurements from being dropped
// entirely from a consensus.
const minAlignmentWeight = 0.1

// Consensus blends multiple measurements into one by φ-alignment
// weighting: measurements that sit close to the per-dimension mean
// carry more weight, outliers are attenuated but never discarded.
// Zero measurements yield a neutral midpoint; one passes through.
func Consensus(measurements []Measurement) Measurement {
	if len(measurements) == 0 {
		return Measurement{
			Score:      ljpw.Vector{Love: 0.5, Justice: 0.5, Power: 0.5, Wisdom: 0.5},
			Confidence: 0,
			Method:     MethodConsensus,
		}
	}
	if len(measurements) == 1 {
		return measurements[0]
	}

	var mean ljpw.Vector
	for _, m := range measurements {
		mean.Love += m.Score.Love
		mean.Justice += m.Score.Justice
		mean.Power += m.Score.Power
		mean.Wisdom += m.Score.Wisdom
	}
	n := float64(len(measurements))
	mean.Love /= n
	mean.Justice /= n
	mean.Power /= n
	mean.Wisdom /= n

	weights := make([]float64, len(measurements))
	var totalWeight float64
	for i, m := range measurements {
		a := (alignment(m.Score.Love, mean.Love) +
			alignment(m.Score.Justice, mean.Justice) +
			alignment(m.Score.Power, mean.Power) +
			alignment(m.Score.Wisdom, mean.Wisdom)) / 4
		if a < minAlignmentWeight {
			a = minAlignmentWeight
		}
		weights[i] = a
		totalWeight += a
	}

	var out Measurement
	out.Method = MethodConsensus
	for i, m := range measurements {
		w := weights[i] / totalWeight
		out.Score.Love += m.Score.Love * w
		out.Score.Justice += m.Score.Justice * w
		out.Score.Power += m.Score.Power * w
		out.Score.Wisdom += m.Score.Wisdom * w
		out.Confidence += m.Confidence * w
	}
	return out
}

// alignment scores how close a value sits to the mean on the φ scale:
// 1 at the mean, falling off with relative deviation.
func alignment(value, mean float64) float64 {
	return 1 - math.Abs(Phi*(value/math.Max(mean, 0.001))-Phi)
}
