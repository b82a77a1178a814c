package ljpw

import (
	"math"
	"testing"
)

func TestValidateAgainstPerfectMatch(t *testing.T) {
	res, err := ValidateAgainst(Anchor, "anchor")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TotalDeviation != 0 {
		t.Fatalf("expected zero deviation, got %v", res.TotalDeviation)
	}
	if res.Alignment != 1.0 {
		t.Fatalf("expected alignment 1.0, got %v", res.Alignment)
	}
}

func TestValidateAgainstKnownDeviation(t *testing.T) {
	v := Vector{Love: 0.25, Justice: 0.10, Power: 0.95, Wisdom: 0.20}
	res, err := ValidateAgainst(v, "enron_2001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(res.TotalDeviation-0.10) > 1e-12 {
		t.Fatalf("expected total deviation 0.10, got %v", res.TotalDeviation)
	}
	if math.Abs(res.Alignment-0.975) > 1e-12 {
		t.Fatalf("expected alignment 0.975, got %v", res.Alignment)
	}
}

func TestValidateAgainstUnknownReference(t *testing.T) {
	if _, err := ValidateAgainst(Anchor, "atlantis"); err == nil {
		t.Fatal("expected error for unknown reference")
	}
}

func TestNearestCalibration(t *testing.T) {
	near, dist := NearestCalibration(Vector{Love: 0.14, Justice: 0.09, Power: 0.16, Wisdom: 0.14})
	if near.Key != "theranos_2018" {
		t.Fatalf("expected theranos_2018, got %q", near.Key)
	}
	if dist > 0.05 {
		t.Fatalf("expected small distance, got %v", dist)
	}

	near, _ = NearestCalibration(Vector{Love: 0.99, Justice: 0.99, Power: 0.98, Wisdom: 1.0})
	if near.Key != "anchor" {
		t.Fatalf("expected anchor, got %q", near.Key)
	}
}
