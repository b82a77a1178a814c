package ljpw

import (
	"errors"
	"math"
)

// DynamicsParams tunes the coupled-oscillator model of the four
// dimensions: each dimension is a damped mass on a spring anchored at
// its natural equilibrium, coupled to the others, with love acting as
// an energy source while harmony stays above the activation threshold.
type DynamicsParams struct {
	Masses          [4]float64    `json:"masses"`
	Coupling        [4][4]float64 `json:"coupling"`
	Rest            [4]float64    `json:"rest"`
	Damping         [4]float64    `json:"damping"`
	SpringK         float64       `json:"spring_k"`
	SourceStrength  float64       `json:"source_strength"`
	SourceThreshold float64       `json:"source_threshold"`
	BoostRate       float64       `json:"boost_rate"`
	DT              float64       `json:"dt"`
	Steps           int           `json:"steps"`
	SampleEvery     int           `json:"sample_every"`
}

// DefaultDynamicsParams returns the parameter set tuned for sustained
// oscillation toward the anchor.
func DefaultDynamicsParams() DynamicsParams {
	eq := Equilibrium.Dims()
	return DynamicsParams{
		Masses: eq,
		Coupling: [4][4]float64{
			{0.0, 0.5, 0.4, 0.6},
			{0.5, 0.0, 0.3, 0.4},
			{0.4, 0.3, 0.0, 0.2},
			{0.6, 0.4, 0.2, 0.0},
		},
		Rest:            eq,
		Damping:         [4]float64{0.03, 0.04, 0.04, 0.05},
		SpringK:         0.3,
		SourceStrength:  1.50,
		SourceThreshold: 0.50,
		BoostRate:       0.02,
		DT:              0.03,
		Steps:           10000,
		SampleEvery:     100,
	}
}

// DynamicsSample is one sampled point of a simulated trajectory.
type DynamicsSample struct {
	T       float64 `json:"t"`
	State   Vector  `json:"state"`
	Harmony float64 `json:"harmony"`
}

// DynamicsResult summarizes a simulated trajectory.
type DynamicsResult struct {
	Samples []DynamicsSample `json:"samples"`
	Final   Vector           `json:"final"`

	InitialHarmony  float64 `json:"initial_harmony"`
	FinalHarmony    float64 `json:"final_harmony"`
	MeanHarmony     float64 `json:"mean_harmony"`
	MinHarmony      float64 `json:"min_harmony"`
	MaxHarmony      float64 `json:"max_harmony"`
	TimeAutopoietic float64 `json:"time_autopoietic"`
}

var (
	ErrBadSimulation      = errors.New("simulation requires positive steps and dt")
	ErrDivergedSimulation = errors.New("simulation diverged to a non-finite state")
)

// Simulate integrates the coupled system from an initial state and
// velocity using semi-implicit Euler. The TimeAutopoietic fraction
// counts steps with harmony above the default autopoietic boundary.
func Simulate(initial, velocity Vector, p DynamicsParams) (DynamicsResult, error) {
	if p.Steps <= 0 || p.DT <= 0 {
		return DynamicsResult{}, ErrBadSimulation
	}
	if p.SampleEvery <= 0 {
		p.SampleEvery = 1
	}
	for i := 0; i < 4; i++ {
		if p.Masses[i] <= 0 {
			return DynamicsResult{}, ErrBadSimulation
		}
	}

	x := initial.Dims()
	v := velocity.Dims()

	res := DynamicsResult{
		InitialHarmony: Harmony(initial),
		MinHarmony:     math.Inf(1),
		MaxHarmony:     math.Inf(-1),
	}

	var sumH float64
	var autopoietic int

	for step := 0; step < p.Steps; step++ {
		h := Harmony(FromDims(x))

		var a [4]float64
		for i := 0; i < 4; i++ {
			force := -p.SpringK * (x[i] - p.Rest[i])
			for j := 0; j < 4; j++ {
				if i != j {
					force -= p.Coupling[i][j] * (x[i] - x[j])
				}
			}
			force -= p.Damping[i] * v[i]

			if h > p.SourceThreshold {
				if i == 0 {
					// Love injects energy toward the anchor and
					// compensates for damping losses.
					force += p.SourceStrength * h * ((1.0 - x[0]) + 0.5*math.Abs(v[0]))
				} else {
					force += p.BoostRate * h * (1.0 - x[i])
				}
			}

			a[i] = force / p.Masses[i]
		}

		for i := 0; i < 4; i++ {
			v[i] += a[i] * p.DT
			x[i] += v[i] * p.DT
		}

		h = Harmony(FromDims(x))
		sumH += h
		if h < res.MinHarmony {
			res.MinHarmony = h
		}
		if h > res.MaxHarmony {
			res.MaxHarmony = h
		}
		if h > DefaultThresholds.AutopoieticMin {
			autopoietic++
		}

		if step%p.SampleEvery == 0 {
			res.Samples = append(res.Samples, DynamicsSample{
				T:       float64(step+1) * p.DT,
				State:   FromDims(x),
				Harmony: h,
			})
		}
	}

	// Extreme parameters blow the integration up; Inf and NaN never
	// recover once they enter the state.
	for i := 0; i < 4; i++ {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
			return DynamicsResult{}, ErrDivergedSimulation
		}
	}

	res.Final = FromDims(x)
	res.FinalHarmony = Harmony(res.Final)
	res.MeanHarmony = sumH / float64(p.Steps)
	res.TimeAutopoietic = float64(autopoietic) / float64(p.Steps)
	return res, nil
}
