package service

import (
	"context"
	"testing"
	"time"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/domain"
	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/ljpw"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func setupTrajectoryTest(t *testing.T) (*TrajectoryService, *AssessmentService, uuid.UUID) {
	t.Helper()

	profiles := newMockProfileStore()
	subjects := newMockSubjectStore()
	assessments := newMockAssessmentStore()

	ctx := context.Background()
	profile := domain.DefaultProfile("default")
	if err := profiles.Create(ctx, profile); err != nil {
		t.Fatalf("create profile: %v", err)
	}
	subject := &domain.Subject{ProfileID: profile.ID, Name: "enron", Kind: domain.SubjectOrganization}
	if err := subjects.Create(ctx, subject); err != nil {
		t.Fatalf("create subject: %v", err)
	}

	asvc := NewAssessmentService(assessments, subjects, profiles, zap.NewNop())
	tsvc := NewTrajectoryService(assessments, subjects, zap.NewNop())
	return tsvc, asvc, subject.ID
}

func TestTrajectoryService_AnalyzeDecline(t *testing.T) {
	tsvc, asvc, subjectID := setupTrajectoryTest(t)
	ctx := context.Background()

	base := time.Date(1991, 1, 1, 0, 0, 0, 0, time.UTC)
	timeline := []struct {
		score ljpw.Vector
		event string
	}{
		{ljpw.Vector{Love: 0.60, Justice: 0.65, Power: 0.55, Wisdom: 0.60}, "steady operations"},
		{ljpw.Vector{Love: 0.45, Justice: 0.50, Power: 0.75, Wisdom: 0.45}, "aggressive expansion"},
		{ljpw.Vector{Love: 0.15, Justice: 0.10, Power: 0.95, Wisdom: 0.20}, "fraud exposed"},
	}
	for i, step := range timeline {
		a := &domain.Assessment{
			SubjectID:  subjectID,
			Score:      step.score,
			Event:      step.event,
			ObservedAt: base.AddDate(i*5, 0, 0),
		}
		if err := asvc.Create(ctx, a); err != nil {
			t.Fatalf("create assessment %d: %v", i, err)
		}
	}

	traj, err := tsvc.Analyze(ctx, subjectID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(traj.Points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(traj.Points))
	}
	if traj.SubjectName != "enron" {
		t.Fatalf("subject name = %q", traj.SubjectName)
	}

	// The timeline crosses from homeostatic into entropic exactly once.
	if len(traj.Transitions) != 1 {
		t.Fatalf("expected 1 transition, got %d", len(traj.Transitions))
	}
	tr := traj.Transitions[0]
	if tr.From != ljpw.PhaseHomeostatic || tr.To != ljpw.PhaseEntropic {
		t.Fatalf("transition %q -> %q, want homeostatic -> entropic", tr.From, tr.To)
	}
	if tr.Event != "fraud exposed" {
		t.Fatalf("transition event = %q", tr.Event)
	}

	if traj.FinalPhase != ljpw.PhaseEntropic {
		t.Fatalf("final phase = %q, want entropic", traj.FinalPhase)
	}
	if traj.FinalHarmony >= traj.PeakHarmony {
		t.Fatalf("final harmony %v should sit below peak %v", traj.FinalHarmony, traj.PeakHarmony)
	}
	if traj.PeakCollapseProbability < 0.5 {
		t.Fatalf("peak collapse probability = %v, want >= 0.5", traj.PeakCollapseProbability)
	}

	// Risk rises monotonically along this particular decline.
	for i := 1; i < len(traj.Points); i++ {
		if traj.Points[i].CollapseProbability < traj.Points[i-1].CollapseProbability {
			t.Fatalf("collapse probability fell at point %d", i)
		}
	}
}

func TestTrajectoryService_AnalyzeCouplingTracksHarmony(t *testing.T) {
	tsvc, asvc, subjectID := setupTrajectoryTest(t)
	ctx := context.Background()

	low := &domain.Assessment{
		SubjectID:  subjectID,
		Score:      ljpw.Vector{Love: 0.2, Justice: 0.2, Power: 0.2, Wisdom: 0.2},
		ObservedAt: time.Now().Add(-time.Hour),
	}
	high := &domain.Assessment{
		SubjectID:  subjectID,
		Score:      ljpw.Vector{Love: 0.95, Justice: 0.95, Power: 0.95, Wisdom: 0.95},
		ObservedAt: time.Now(),
	}
	for _, a := range []*domain.Assessment{low, high} {
		if err := asvc.Create(ctx, a); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	traj, err := tsvc.Analyze(ctx, subjectID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if traj.Points[1].Coupling.LoveWisdom <= traj.Points[0].Coupling.LoveWisdom {
		t.Fatal("expected stronger coupling at higher harmony")
	}
}

func TestTrajectoryService_AnalyzeEmpty(t *testing.T) {
	tsvc, _, subjectID := setupTrajectoryTest(t)

	if _, err := tsvc.Analyze(context.Background(), subjectID); err != ErrTrajectoryEmpty {
		t.Fatalf("expected ErrTrajectoryEmpty, got %v", err)
	}
}

func TestTrajectoryService_AnalyzeUnknownSubject(t *testing.T) {
	tsvc, _, _ := setupTrajectoryTest(t)

	if _, err := tsvc.Analyze(context.Background(), uuid.New()); err != ErrSubjectNotFound {
		t.Fatalf("expected ErrSubjectNotFound, got %v", err)
	}
}
