package estimator

import (
	"testing"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/ljpw"
)

func healthyOrg() OrgMetrics {
	return OrgMetrics{
		EmployeeRetentionRate:        92,
		CollaborationScore:           85,
		CommunicationSentiment:       0.6,
		AuditComplianceScore:         95,
		LawsuitCount:                 1,
		MaxIndustryLawsuits:          10,
		WhistleblowerProtectionIndex: 90,
		RevenueGrowthRate:            12,
		MarketCapChange:              15,
		ExecutionEfficiency:          80,
		RDInvestmentPct:              8,
		PatentQualityIndex:           70,
		LearningRateCoefficient:      0.7,
		ScientistsOnBoard:            4,
		TotalBoardMembers:            9,
	}
}

func troubledOrg() OrgMetrics {
	return OrgMetrics{
		EmployeeRetentionRate:        35,
		CollaborationScore:           20,
		CommunicationSentiment:       -0.5,
		AuditComplianceScore:         30,
		LawsuitCount:                 9,
		MaxIndustryLawsuits:          10,
		WhistleblowerProtectionIndex: 10,
		RevenueGrowthRate:            45,
		MarketCapChange:              60,
		ExecutionEfficiency:          85,
		RDInvestmentPct:              1,
		PatentQualityIndex:           20,
		LearningRateCoefficient:      0.2,
		ScientistsOnBoard:            0,
		TotalBoardMembers:            15,
	}
}

func TestEstimateFromMetricsBounded(t *testing.T) {
	for _, m := range []OrgMetrics{healthyOrg(), troubledOrg(), {}} {
		got := EstimateFromMetrics(m, DefaultProxyWeights)
		for name, v := range map[string]float64{
			"love":    got.Score.Love,
			"justice": got.Score.Justice,
			"power":   got.Score.Power,
			"wisdom":  got.Score.Wisdom,
		} {
			if v < 0 || v > 1 {
				t.Errorf("%s estimate out of [0,1]: %v", name, v)
			}
		}
		if got.Confidence != ProxyConfidence {
			t.Errorf("expected proxy confidence %v, got %v", ProxyConfidence, got.Confidence)
		}
		if got.Method != MethodProxy {
			t.Errorf("expected method proxy, got %q", got.Method)
		}
	}
}

func TestHealthyOrgOutscoresTroubled(t *testing.T) {
	healthy := EstimateFromMetrics(healthyOrg(), DefaultProxyWeights)
	troubled := EstimateFromMetrics(troubledOrg(), DefaultProxyWeights)

	if healthy.Score.Love <= troubled.Score.Love {
		t.Errorf("healthy love %v should exceed troubled %v", healthy.Score.Love, troubled.Score.Love)
	}
	if healthy.Score.Justice <= troubled.Score.Justice {
		t.Errorf("healthy justice %v should exceed troubled %v", healthy.Score.Justice, troubled.Score.Justice)
	}
	if healthy.Score.Wisdom <= troubled.Score.Wisdom {
		t.Errorf("healthy wisdom %v should exceed troubled %v", healthy.Score.Wisdom, troubled.Score.Wisdom)
	}

	// High apparent power with everything else depressed is the
	// classic pre-collapse signature.
	hh := ljpw.Harmony(healthy.Score)
	th := ljpw.Harmony(troubled.Score)
	if hh <= th {
		t.Errorf("healthy harmony %v should exceed troubled %v", hh, th)
	}
}

func TestZeroMetricsYieldZeroishScores(t *testing.T) {
	got := EstimateFromMetrics(OrgMetrics{}, DefaultProxyWeights)
	if got.Score.Love > 0.2 || got.Score.Justice > 0.35 {
		t.Errorf("empty metrics should estimate low, got %+v", got.Score)
	}
}

func TestLawsuitNormalizationFloor(t *testing.T) {
	// MaxIndustryLawsuits below 1 must not divide by zero.
	m := OrgMetrics{LawsuitCount: 3, MaxIndustryLawsuits: 0}
	got := EstimateFromMetrics(m, DefaultProxyWeights)
	if got.Score.Justice < 0 || got.Score.Justice > 1 {
		t.Fatalf("justice estimate out of range: %v", got.Score.Justice)
	}
}
