package ljpw

import "fmt"

// Phase is the qualitative regime of a harmony value.
type Phase string

const (
	PhaseEntropic    Phase = "entropic"
	PhaseHomeostatic Phase = "homeostatic"
	PhaseAutopoietic Phase = "autopoietic"
)

// Thresholds are the tunable phase boundaries. The source corpus uses
// several different values for the entropic boundary, so these are
// configuration, never constants baked into call sites.
type Thresholds struct {
	EntropicMax    float64 `json:"entropic_max"`
	AutopoieticMin float64 `json:"autopoietic_min"`
	LoveMin        float64 `json:"love_min"`
}

// DefaultThresholds is the most common boundary set in the corpus.
var DefaultThresholds = Thresholds{
	EntropicMax:    0.50,
	AutopoieticMin: 0.60,
	LoveMin:        0.70,
}

// Presets are the named boundary sets that appear across the source
// documents for the entropic/homeostatic transition. They are
// alternatives an operator selects, not values to be averaged.
var Presets = map[string]Thresholds{
	"default":        DefaultThresholds,
	"collapse-floor": {EntropicMax: 0.36, AutopoieticMin: 0.60, LoveMin: 0.70},
	"justice":        {EntropicMax: 0.40, AutopoieticMin: 0.60, LoveMin: 0.70},
	"life":           {EntropicMax: 0.55, AutopoieticMin: 0.60, LoveMin: 0.70},
	"golden":         {EntropicMax: 0.618, AutopoieticMin: 0.618, LoveMin: 0.70},
}

// PresetThresholds looks up a named preset.
func PresetThresholds(name string) (Thresholds, error) {
	th, ok := Presets[name]
	if !ok {
		return Thresholds{}, fmt.Errorf("unknown threshold preset %q", name)
	}
	return th, nil
}

// Classify maps a harmony value (and the love coordinate) to a phase.
// Entropic wins below the entropic boundary; autopoietic requires both
// high harmony and high love; everything else is homeostatic.
func Classify(harmony, love float64, th Thresholds) Phase {
	if harmony < th.EntropicMax {
		return PhaseEntropic
	}
	if harmony >= th.AutopoieticMin && love > th.LoveMin {
		return PhaseAutopoietic
	}
	return PhaseHomeostatic
}

// ValidPhase reports whether s names a known phase.
func ValidPhase(s string) bool {
	switch Phase(s) {
	case PhaseEntropic, PhaseHomeostatic, PhaseAutopoietic:
		return true
	}
	return false
}
