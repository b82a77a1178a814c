package domain

import (
	"time"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/ljpw"
	"github.com/google/uuid"
)

// Reference names which fixed point a profile measures deviation
// against in reports. The source material uses both without a single
// rule, so the choice is per-profile configuration.
type Reference string

const (
	ReferenceAnchor      Reference = "anchor"
	ReferenceEquilibrium Reference = "equilibrium"
)

func ValidReference(r string) bool {
	switch Reference(r) {
	case ReferenceAnchor, ReferenceEquilibrium:
		return true
	}
	return false
}

// Profile is an independent scoring configuration for one application
// domain: its own anchor, dimension weights, phase thresholds and
// deviation reference. Nothing in the scoring path reads process-wide
// constants; every subject carries a profile.
type Profile struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Anchor      ljpw.Vector     `json:"anchor"`
	Weights     ljpw.Weights    `json:"weights"`
	Thresholds  ljpw.Thresholds `json:"thresholds"`
	Reference   Reference       `json:"reference"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ReferenceVector resolves the profile's deviation reference point.
func (p *Profile) ReferenceVector() ljpw.Vector {
	if p.Reference == ReferenceEquilibrium {
		return ljpw.Equilibrium
	}
	return p.Anchor
}

// Harmony computes harmony under this profile's anchor and weights.
func (p *Profile) Harmony(v ljpw.Vector) float64 {
	return ljpw.HarmonyAgainst(v, p.Anchor, p.Weights)
}

// Classify classifies a vector under this profile.
func (p *Profile) Classify(v ljpw.Vector) (float64, ljpw.Phase) {
	h := p.Harmony(v)
	return h, ljpw.Classify(h, v.Love, p.Thresholds)
}

// DefaultProfile returns the standard configuration: anchor reference,
// uniform weights, default thresholds.
func DefaultProfile(name string) *Profile {
	return &Profile{
		Name:       name,
		Anchor:     ljpw.Anchor,
		Weights:    ljpw.UniformWeights,
		Thresholds: ljpw.DefaultThresholds,
		Reference:  ReferenceAnchor,
	}
}
