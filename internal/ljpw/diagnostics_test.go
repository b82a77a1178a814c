package ljpw

import (
	"math"
	"testing"
)

func TestCollapseProbabilityLowJustice(t *testing.T) {
	// Enron at collapse: justice far below critical threshold.
	v := Vector{Love: 0.15, Justice: 0.10, Power: 0.95, Wisdom: 0.20}
	p := CollapseProbability(v)
	want := math.Min(1.0, (0.40-0.10)*3+0.5) // 1.0, capped
	if p != want {
		t.Fatalf("expected collapse probability %v, got %v", want, p)
	}
}

func TestCollapseProbabilityLowHarmony(t *testing.T) {
	// Justice above critical but everything depressed enough that
	// harmony drops below the entropic boundary.
	v := Vector{Love: 0.2, Justice: 0.45, Power: 0.2, Wisdom: 0.2}
	h := Harmony(v)
	if h >= 0.50 {
		t.Fatalf("test fixture broken, harmony %v not entropic", h)
	}
	want := (0.50 - h) * 2
	if p := CollapseProbability(v); math.Abs(p-want) > 1e-15 {
		t.Fatalf("expected %v, got %v", want, p)
	}
}

func TestCollapseProbabilityBaseline(t *testing.T) {
	v := Vector{Love: 0.8, Justice: 0.8, Power: 0.8, Wisdom: 0.8}
	if p := CollapseProbability(v); p != BaselineCollapseRisk {
		t.Fatalf("expected baseline risk, got %v", p)
	}
}

func TestCouplingAt(t *testing.T) {
	c := CouplingAt(1.0)
	if c.LoveJustice != 1.4 || c.LovePower != 1.3 || c.LoveWisdom != 1.5 {
		t.Fatalf("unexpected coefficients at full harmony: %+v", c)
	}
	if math.Abs(c.LostAmplification) > 1e-9 {
		t.Fatalf("no amplification should be lost at full harmony, got %v%%", c.LostAmplification)
	}

	c = CouplingAt(0)
	if math.Abs(c.LostAmplification-100) > 1e-9 {
		t.Fatalf("all amplification should be lost at zero harmony, got %v%%", c.LostAmplification)
	}
}

func TestEquilibriumDeviationAtEquilibrium(t *testing.T) {
	d := EquilibriumDeviation(Equilibrium)
	if d.Euclidean != 0 || d.Love != 0 || d.Justice != 0 || d.Power != 0 || d.Wisdom != 0 {
		t.Fatalf("expected zero deviation at equilibrium, got %+v", d)
	}
}

func TestDeviationSign(t *testing.T) {
	v := Vector{Love: 0.75, Justice: 0.30, Power: EquilibriumPower, Wisdom: 0.80}
	d := EquilibriumDeviation(v)
	if d.Love <= 0 {
		t.Errorf("love above equilibrium should deviate positive, got %v", d.Love)
	}
	if d.Justice >= 0 {
		t.Errorf("justice below equilibrium should deviate negative, got %v", d.Justice)
	}
	if d.Power != 0 {
		t.Errorf("power at equilibrium should not deviate, got %v", d.Power)
	}
}
