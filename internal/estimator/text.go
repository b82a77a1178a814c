package estimator

import (
	"math"
	"strings"
	"unicode"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/ljpw"
)

// Dimension lexicons for text estimation. A word counts toward a
// dimension when it appears verbatim after lowercasing and stripping
// punctuation.
var (
	loveLexicon = wordSet(
		"connect", "collaborate", "partner", "team", "together", "support",
		"collective", "community", "relationship", "trust", "care", "help",
		"share", "unity", "family", "bond", "loyalty", "commitment",
		"empathy", "compassion", "inclusion", "belonging", "appreciation",
	)
	justiceLexicon = wordSet(
		"comply", "ethical", "transparent", "truth", "honest", "fair",
		"integrity", "accountability", "responsibility", "governance", "audit",
		"compliance", "regulation", "oversight", "disclosure", "accurate",
		"balanced", "equitable", "consistent", "lawful", "principle",
	)
	powerLexicon = wordSet(
		"grow", "execute", "compete", "win", "lead", "dominate",
		"revenue", "profit", "market", "expand", "acquire", "performance",
		"achieve", "deliver", "scale", "aggressive", "strategic", "accelerate",
		"momentum", "strength", "capability", "resource", "invest",
	)
	wisdomLexicon = wordSet(
		"learn", "innovate", "understand", "knowledge", "insight", "evolve",
		"research", "develop", "discover", "analyze", "improve", "optimize",
		"adapt", "intelligent", "design", "technology", "science", "data",
		"experience", "expertise", "solution", "creative", "transform",
	)
)

// textConfidenceTokens is the token count at which text estimation
// reaches full confidence.
const textConfidenceTokens = 10000

// EstimateFromText measures the four dimensions from lexicon match
// ratios, φ-normalized and clamped to [0,1]. Confidence grows with
// document length.
func EstimateFromText(text string) Measurement {
	words := tokenize(text)
	total := len(words)
	if total == 0 {
		total = 1
	}

	var love, justice, power, wisdom int
	for _, w := range words {
		if loveLexicon[w] {
			love++
		}
		if justiceLexicon[w] {
			justice++
		}
		if powerLexicon[w] {
			power++
		}
		if wisdomLexicon[w] {
			wisdom++
		}
	}

	n := float64(total)
	return Measurement{
		Score: ljpw.Vector{
			Love:    lexScore(float64(love) / n),
			Justice: lexScore(float64(justice) / n),
			Power:   lexScore(float64(power) / n),
			Wisdom:  lexScore(float64(wisdom) / n),
		},
		Confidence: math.Min(1.0, n/textConfidenceTokens),
		Method:     MethodText,
	}
}

func lexScore(ratio float64) float64 {
	if ratio <= 0 {
		return 0
	}
	return clamp01(Phi * math.Pow(ratio, 1/Phi))
}

func tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, text)
	return strings.Fields(cleaned)
}

func wordSet(words ...string) map[string]bool {
	s := make(map[string]bool, len(words))
	for _, w := range words {
		s[w] = true
	}
	return s
}
