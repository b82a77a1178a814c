package domain

import (
	"time"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/ljpw"
	"github.com/google/uuid"
)

// Source records how an assessment's scores were produced.
type Source string

const (
	SourceManual     Source = "manual"
	SourceProxy      Source = "proxy"
	SourceText       Source = "text"
	SourceConsensus  Source = "consensus"
	SourceSimulation Source = "simulation"
)

func ValidSource(s string) bool {
	switch Source(s) {
	case SourceManual, SourceProxy, SourceText, SourceConsensus, SourceSimulation:
		return true
	}
	return false
}

// Assessment is a point-in-time LJPW snapshot of a subject. Scores are
// immutable once written; only the derived classification (harmony,
// phase, classified_at) is rewritten when the profile's configuration
// changes after the fact.
type Assessment struct {
	ID           uuid.UUID   `json:"id"`
	SubjectID    uuid.UUID   `json:"subject_id"`
	Score        ljpw.Vector `json:"score"`
	ObservedAt   time.Time   `json:"observed_at"`
	Event        string      `json:"event,omitempty"`
	Source       Source      `json:"source"`
	Confidence   float64     `json:"confidence"`
	Harmony      float64     `json:"harmony"`
	Phase        ljpw.Phase  `json:"phase"`
	ClassifiedAt time.Time   `json:"classified_at"`
	CreatedAt    time.Time   `json:"created_at"`
}

// AssessmentWithDistance pairs an assessment with its Euclidean
// distance to a query vector.
type AssessmentWithDistance struct {
	Assessment
	SubjectName string  `json:"subject_name"`
	Distance    float64 `json:"distance"`
}

// SubjectStanding is one row of the harmony ranking: a subject and its
// most recent assessment's harmony.
type SubjectStanding struct {
	SubjectID  uuid.UUID  `json:"subject_id"`
	Name       string     `json:"name"`
	Harmony    float64    `json:"harmony"`
	Phase      ljpw.Phase `json:"phase"`
	ObservedAt time.Time  `json:"observed_at"`
	Rank       int        `json:"rank"`
}

// StaleAssessment is an assessment whose classification predates its
// profile's last configuration change, joined with the configuration
// needed to reclassify it.
type StaleAssessment struct {
	Assessment
	Anchor     ljpw.Vector     `json:"anchor"`
	Weights    ljpw.Weights    `json:"weights"`
	Thresholds ljpw.Thresholds `json:"thresholds"`
}
