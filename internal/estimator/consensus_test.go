package estimator

import (
	"math"
	"testing"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/ljpw"
)

func TestConsensusEmpty(t *testing.T) {
	got := Consensus(nil)
	if got.Score != (ljpw.Vector{Love: 0.5, Justice: 0.5, Power: 0.5, Wisdom: 0.5}) {
		t.Fatalf("expected neutral midpoint, got %+v", got.Score)
	}
	if got.Confidence != 0 {
		t.Fatalf("expected zero confidence, got %v", got.Confidence)
	}
}

func TestConsensusSingle(t *testing.T) {
	m := Measurement{
		Score:      ljpw.Vector{Love: 0.3, Justice: 0.4, Power: 0.5, Wisdom: 0.6},
		Confidence: 0.8,
		Method:     MethodProxy,
	}
	if got := Consensus([]Measurement{m}); got != m {
		t.Fatalf("single measurement should pass through, got %+v", got)
	}
}

func TestConsensusAgreementPreserved(t *testing.T) {
	m := Measurement{
		Score:      ljpw.Vector{Love: 0.6, Justice: 0.5, Power: 0.7, Wisdom: 0.65},
		Confidence: 0.7,
	}
	got := Consensus([]Measurement{m, m, m})
	if math.Abs(got.Score.Love-m.Score.Love) > 1e-12 {
		t.Fatalf("unanimous consensus should equal the input, got %+v", got.Score)
	}
	if got.Method != MethodConsensus {
		t.Fatalf("expected method consensus, got %q", got.Method)
	}
}

func TestConsensusWithinHull(t *testing.T) {
	a := Measurement{Score: ljpw.Vector{Love: 0.2, Justice: 0.3, Power: 0.4, Wisdom: 0.5}, Confidence: 0.5}
	b := Measurement{Score: ljpw.Vector{Love: 0.8, Justice: 0.7, Power: 0.6, Wisdom: 0.9}, Confidence: 0.9}

	got := Consensus([]Measurement{a, b})
	if got.Score.Love < a.Score.Love || got.Score.Love > b.Score.Love {
		t.Errorf("love %v outside input hull [%v, %v]", got.Score.Love, a.Score.Love, b.Score.Love)
	}
	if got.Confidence < a.Confidence || got.Confidence > b.Confidence {
		t.Errorf("confidence %v outside input hull", got.Confidence)
	}
}

func TestConsensusAttenuatesOutlier(t *testing.T) {
	agree := Measurement{Score: ljpw.Vector{Love: 0.6, Justice: 0.6, Power: 0.6, Wisdom: 0.6}, Confidence: 0.7}
	outlier := Measurement{Score: ljpw.Vector{Love: 0.05, Justice: 0.05, Power: 0.05, Wisdom: 0.05}, Confidence: 0.7}

	got := Consensus([]Measurement{agree, agree, outlier})
	naive := (0.6 + 0.6 + 0.05) / 3
	if got.Score.Love <= naive {
		t.Fatalf("outlier should be attenuated below naive mean %v, got %v", naive, got.Score.Love)
	}
}
