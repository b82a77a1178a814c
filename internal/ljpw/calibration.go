package ljpw

import "fmt"

// CalibrationPoint is a known reference state used to sanity-check
// measurements.
type CalibrationPoint struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	Vector Vector `json:"vector"`
}

// CalibrationPoints are the fixed reference states, ordered from
// perfect alignment down to historical collapse cases.
var CalibrationPoints = []CalibrationPoint{
	{Key: "anchor", Name: "Perfect (Anchor Point)", Vector: Anchor},
	{Key: "natural_equilibrium", Name: "Natural Equilibrium", Vector: Equilibrium},
	{Key: "research_institute", Name: "Healthy Research Institute", Vector: Vector{Love: 0.40, Justice: 0.60, Power: 0.30, Wisdom: 0.95}},
	{Key: "family_business", Name: "Healthy Family Business", Vector: Vector{Love: 0.85, Justice: 0.70, Power: 0.50, Wisdom: 0.60}},
	{Key: "enron_2001", Name: "Enron at Collapse (2001)", Vector: Vector{Love: 0.15, Justice: 0.10, Power: 0.95, Wisdom: 0.20}},
	{Key: "theranos_2018", Name: "Theranos at Dissolution (2018)", Vector: Vector{Love: 0.15, Justice: 0.08, Power: 0.15, Wisdom: 0.15}},
}

// CalibrationByKey looks up a calibration point.
func CalibrationByKey(key string) (CalibrationPoint, error) {
	for _, cp := range CalibrationPoints {
		if cp.Key == key {
			return cp, nil
		}
	}
	return CalibrationPoint{}, fmt.Errorf("unknown calibration point %q", key)
}

// CalibrationResult compares a measurement against a reference point.
type CalibrationResult struct {
	Reference      string    `json:"reference"`
	Deviations     Deviation `json:"deviations"`
	TotalDeviation float64   `json:"total_deviation"`
	Alignment      float64   `json:"alignment"`
}

// ValidateAgainst measures the absolute per-dimension deviation of v
// from the named calibration point. Alignment is 1 − total/4, so a
// perfect match scores 1.0.
func ValidateAgainst(v Vector, key string) (CalibrationResult, error) {
	cp, err := CalibrationByKey(key)
	if err != nil {
		return CalibrationResult{}, err
	}

	dl := abs(v.Love - cp.Vector.Love)
	dj := abs(v.Justice - cp.Vector.Justice)
	dp := abs(v.Power - cp.Vector.Power)
	dw := abs(v.Wisdom - cp.Vector.Wisdom)
	total := dl + dj + dp + dw

	return CalibrationResult{
		Reference: cp.Name,
		Deviations: Deviation{
			Love:      dl,
			Justice:   dj,
			Power:     dp,
			Wisdom:    dw,
			Euclidean: Distance(v, cp.Vector),
		},
		TotalDeviation: total,
		Alignment:      1 - total/4,
	}, nil
}

// NearestCalibration returns the calibration point closest to v by
// Euclidean distance.
func NearestCalibration(v Vector) (CalibrationPoint, float64) {
	best := CalibrationPoints[0]
	bestDist := Distance(v, best.Vector)
	for _, cp := range CalibrationPoints[1:] {
		if d := Distance(v, cp.Vector); d < bestDist {
			best, bestDist = cp, d
		}
	}
	return best, bestDist
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
