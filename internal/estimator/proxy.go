package estimator

import (
	"math"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/ljpw"
)

// OrgMetrics is the raw observable data about an organization from
// which the four dimensions are estimated.
type OrgMetrics struct {
	// Love proxies.
	EmployeeRetentionRate float64 `json:"employee_retention_rate"` // 0-100 %
	CollaborationScore    float64 `json:"collaboration_score"`     // 0-100
	CommunicationSentiment float64 `json:"communication_sentiment"` // -1..1

	// Justice proxies.
	AuditComplianceScore         float64 `json:"audit_compliance_score"` // 0-100 %
	LawsuitCount                 float64 `json:"lawsuit_count"`
	MaxIndustryLawsuits          float64 `json:"max_industry_lawsuits"`
	WhistleblowerProtectionIndex float64 `json:"whistleblower_protection_index"` // 0-100

	// Power proxies.
	RevenueGrowthRate   float64 `json:"revenue_growth_rate"` // %
	MarketCapChange     float64 `json:"market_cap_change"`   // %
	ExecutionEfficiency float64 `json:"execution_efficiency"` // 0-100

	// Wisdom proxies.
	RDInvestmentPct         float64 `json:"rd_investment_pct"` // % of revenue
	PatentQualityIndex      float64 `json:"patent_quality_index"` // 0-100
	LearningRateCoefficient float64 `json:"learning_rate_coefficient"` // 0-1
	ScientistsOnBoard       int     `json:"scientists_on_board"`
	TotalBoardMembers       int     `json:"total_board_members"`
}

// ProxyWeights holds the blend weights for each dimension's proxy
// indicators. Each triple (or quad) is a convex combination.
type ProxyWeights struct {
	LoveRetention     float64 `json:"love_retention"`
	LoveCollaboration float64 `json:"love_collaboration"`
	LoveSentiment     float64 `json:"love_sentiment"`

	JusticeCompliance    float64 `json:"justice_compliance"`
	JusticeLawsuits      float64 `json:"justice_lawsuits"`
	JusticeWhistleblower float64 `json:"justice_whistleblower"`

	PowerGrowth     float64 `json:"power_growth"`
	PowerMarketCap  float64 `json:"power_market_cap"`
	PowerEfficiency float64 `json:"power_efficiency"`

	WisdomRD       float64 `json:"wisdom_rd"`
	WisdomPatents  float64 `json:"wisdom_patents"`
	WisdomLearning float64 `json:"wisdom_learning"`
	WisdomBoard    float64 `json:"wisdom_board"`
}

// DefaultProxyWeights are the worked-example weights from the source
// measurements. Illustrative, not canonical.
var DefaultProxyWeights = ProxyWeights{
	LoveRetention:     0.40,
	LoveCollaboration: 0.35,
	LoveSentiment:     0.25,

	JusticeCompliance:    0.40,
	JusticeLawsuits:      0.35,
	JusticeWhistleblower: 0.25,

	PowerGrowth:     0.35,
	PowerMarketCap:  0.35,
	PowerEfficiency: 0.30,

	WisdomRD:       0.30,
	WisdomPatents:  0.25,
	WisdomLearning: 0.25,
	WisdomBoard:    0.20,
}

// ProxyConfidence is the fixed confidence assigned to proxy-derived
// measurements.
const ProxyConfidence = 0.7

// EstimateFromMetrics blends the proxy indicators into a measurement.
// Outputs are clamped to [0,1] because the formulas define that range;
// raw assessments supplied directly by callers are never clamped.
func EstimateFromMetrics(m OrgMetrics, w ProxyWeights) Measurement {
	return Measurement{
		Score: ljpw.Vector{
			Love:    estimateLove(m, w),
			Justice: estimateJustice(m, w),
			Power:   estimatePower(m, w),
			Wisdom:  estimateWisdom(m, w),
		},
		Confidence: ProxyConfidence,
		Method:     MethodProxy,
	}
}

func estimateLove(m OrgMetrics, w ProxyWeights) float64 {
	retention := (m.EmployeeRetentionRate / 100) * ljpw.EquilibriumLove
	collab := math.Pow(clamp01(m.CollaborationScore/100), 1/Phi) * ljpw.EquilibriumLove
	sentiment := clamp01((m.CommunicationSentiment+1)/2) * ljpw.EquilibriumLove

	raw := retention*w.LoveRetention + collab*w.LoveCollaboration + sentiment*w.LoveSentiment
	return phiNormalize(raw/ljpw.EquilibriumLove, ljpw.EquilibriumLove)
}

func estimateJustice(m OrgMetrics, w ProxyWeights) float64 {
	compliance := (m.AuditComplianceScore / 100) * ljpw.EquilibriumJustice

	maxLawsuits := m.MaxIndustryLawsuits
	if maxLawsuits < 1 {
		maxLawsuits = 1
	}
	lawsuitRatio := math.Min(1.0, m.LawsuitCount/maxLawsuits)
	lawsuits := (1 - math.Pow(lawsuitRatio, math.Sqrt2)) * ljpw.EquilibriumJustice

	whistleblower := (m.WhistleblowerProtectionIndex / 100) * ljpw.EquilibriumJustice

	raw := compliance*w.JusticeCompliance + lawsuits*w.JusticeLawsuits + whistleblower*w.JusticeWhistleblower
	return phiNormalize(raw/ljpw.EquilibriumJustice, ljpw.EquilibriumJustice)
}

func estimatePower(m OrgMetrics, w ProxyWeights) float64 {
	// tanh bounds extreme growth and market swings.
	growth := ljpw.EquilibriumPower * math.Tanh(m.RevenueGrowthRate/20)
	marketCap := ljpw.EquilibriumPower * math.Tanh(m.MarketCapChange/50)
	efficiency := (m.ExecutionEfficiency / 100) * ljpw.EquilibriumPower

	raw := growth*w.PowerGrowth + marketCap*w.PowerMarketCap + efficiency*w.PowerEfficiency
	return phiNormalize(raw/ljpw.EquilibriumPower, ljpw.EquilibriumPower)
}

func estimateWisdom(m OrgMetrics, w ProxyWeights) float64 {
	rd := math.Min(ljpw.EquilibriumWisdom, ljpw.EquilibriumWisdom*math.Log2(1+m.RDInvestmentPct))
	patents := (m.PatentQualityIndex / 100) * ljpw.EquilibriumWisdom
	learning := m.LearningRateCoefficient * ljpw.EquilibriumWisdom

	board := 0.0
	if m.TotalBoardMembers > 0 {
		board = ljpw.EquilibriumWisdom * (float64(m.ScientistsOnBoard) / float64(m.TotalBoardMembers)) * Phi
	}

	raw := rd*w.WisdomRD + patents*w.WisdomPatents + learning*w.WisdomLearning + board*w.WisdomBoard
	return phiNormalize(raw/ljpw.EquilibriumWisdom, ljpw.EquilibriumWisdom)
}
