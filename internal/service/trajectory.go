package service

import (
	"context"
	"errors"
	"time"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/domain"
	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/ljpw"
	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrTrajectoryEmpty = errors.New("subject has no assessments")

// TrajectoryPoint is one assessment enriched with diagnostics.
type TrajectoryPoint struct {
	ObservedAt          time.Time     `json:"observed_at"`
	Event               string        `json:"event,omitempty"`
	Score               ljpw.Vector   `json:"score"`
	Harmony             float64       `json:"harmony"`
	Phase               ljpw.Phase    `json:"phase"`
	CollapseProbability float64       `json:"collapse_probability"`
	Coupling            ljpw.Coupling `json:"coupling"`
}

// PhaseTransition marks a change of phase between two consecutive
// assessments.
type PhaseTransition struct {
	ObservedAt time.Time  `json:"observed_at"`
	Event      string     `json:"event,omitempty"`
	From       ljpw.Phase `json:"from"`
	To         ljpw.Phase `json:"to"`
}

// Trajectory is the full diagnostic view of a subject's timeline.
type Trajectory struct {
	SubjectID   uuid.UUID         `json:"subject_id"`
	SubjectName string            `json:"subject_name"`
	Points      []TrajectoryPoint `json:"points"`
	Transitions []PhaseTransition `json:"transitions"`

	MeanHarmony  float64    `json:"mean_harmony"`
	PeakHarmony  float64    `json:"peak_harmony"`
	FinalHarmony float64    `json:"final_harmony"`
	FinalPhase   ljpw.Phase `json:"final_phase"`

	// PeakCollapseProbability is the worst collapse risk seen anywhere
	// on the timeline.
	PeakCollapseProbability float64 `json:"peak_collapse_probability"`
}

type TrajectoryService struct {
	assessments domain.AssessmentStore
	subjects    domain.SubjectStore
	logger      *zap.Logger
}

func NewTrajectoryService(assessments domain.AssessmentStore, subjects domain.SubjectStore, logger *zap.Logger) *TrajectoryService {
	return &TrajectoryService{assessments: assessments, subjects: subjects, logger: logger}
}

// Analyze walks a subject's assessments in observation order and
// derives the phase transitions and risk series.
func (s *TrajectoryService) Analyze(ctx context.Context, subjectID uuid.UUID) (*Trajectory, error) {
	sub, err := s.subjects.GetByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSubjectNotFound
		}
		return nil, err
	}

	assessments, err := s.assessments.ListBySubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if len(assessments) == 0 {
		return nil, ErrTrajectoryEmpty
	}

	traj := &Trajectory{
		SubjectID:   subjectID,
		SubjectName: sub.Name,
		Points:      make([]TrajectoryPoint, 0, len(assessments)),
	}

	var sumH float64
	for i, a := range assessments {
		p := TrajectoryPoint{
			ObservedAt:          a.ObservedAt,
			Event:               a.Event,
			Score:               a.Score,
			Harmony:             a.Harmony,
			Phase:               a.Phase,
			CollapseProbability: ljpw.CollapseProbability(a.Score),
			Coupling:            ljpw.CouplingAt(a.Harmony),
		}
		traj.Points = append(traj.Points, p)

		sumH += a.Harmony
		if a.Harmony > traj.PeakHarmony {
			traj.PeakHarmony = a.Harmony
		}
		if p.CollapseProbability > traj.PeakCollapseProbability {
			traj.PeakCollapseProbability = p.CollapseProbability
		}

		if i > 0 && assessments[i-1].Phase != a.Phase {
			traj.Transitions = append(traj.Transitions, PhaseTransition{
				ObservedAt: a.ObservedAt,
				Event:      a.Event,
				From:       assessments[i-1].Phase,
				To:         a.Phase,
			})
		}
	}

	last := assessments[len(assessments)-1]
	traj.MeanHarmony = sumH / float64(len(assessments))
	traj.FinalHarmony = last.Harmony
	traj.FinalPhase = last.Phase

	s.logger.Debug("trajectory analyzed",
		zap.String("subject_id", subjectID.String()),
		zap.Int("points", len(traj.Points)),
		zap.Int("transitions", len(traj.Transitions)))
	return traj, nil
}
