package service

import (
	"context"
	"testing"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/domain"
	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/estimator"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func setupEstimateTest(t *testing.T) (*EstimateService, *mockAssessmentStore, uuid.UUID) {
	t.Helper()

	profiles := newMockProfileStore()
	subjects := newMockSubjectStore()
	assessments := newMockAssessmentStore()

	ctx := context.Background()
	profile := domain.DefaultProfile("default")
	if err := profiles.Create(ctx, profile); err != nil {
		t.Fatalf("create profile: %v", err)
	}
	subject := &domain.Subject{ProfileID: profile.ID, Name: "acme", Kind: domain.SubjectOrganization}
	if err := subjects.Create(ctx, subject); err != nil {
		t.Fatalf("create subject: %v", err)
	}

	asvc := NewAssessmentService(assessments, subjects, profiles, zap.NewNop())
	return NewEstimateService(asvc, zap.NewNop()), assessments, subject.ID
}

func TestEstimateService_NoInput(t *testing.T) {
	svc, _, _ := setupEstimateTest(t)

	if _, err := svc.Estimate(context.Background(), EstimateRequest{}); err != ErrEstimateNoInput {
		t.Fatalf("expected ErrEstimateNoInput, got %v", err)
	}
}

func TestEstimateService_MetricsOnly(t *testing.T) {
	svc, store, _ := setupEstimateTest(t)

	res, err := svc.Estimate(context.Background(), EstimateRequest{
		Metrics: &estimator.OrgMetrics{
			EmployeeRetentionRate:        90,
			CollaborationScore:           85,
			AuditComplianceScore:         95,
			WhistleblowerProtectionIndex: 80,
		},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(res.Measurements) != 1 {
		t.Fatalf("expected 1 measurement, got %d", len(res.Measurements))
	}
	if res.Consensus.Method != estimator.MethodProxy {
		t.Fatalf("single-input consensus method = %q, want proxy", res.Consensus.Method)
	}
	if res.Assessment != nil {
		t.Fatal("expected no persistence without subject_id")
	}
	if len(store.assessments) != 0 {
		t.Fatal("store should be untouched")
	}
}

func TestEstimateService_CombinedPersists(t *testing.T) {
	svc, store, subjectID := setupEstimateTest(t)

	res, err := svc.Estimate(context.Background(), EstimateRequest{
		Metrics:   &estimator.OrgMetrics{EmployeeRetentionRate: 80, AuditComplianceScore: 70},
		Text:      "a fair and honest team, caring support and wise transparent judgment",
		SubjectID: &subjectID,
		Event:     "quarterly review",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(res.Measurements) != 2 {
		t.Fatalf("expected 2 measurements, got %d", len(res.Measurements))
	}
	if res.Consensus.Method != estimator.MethodConsensus {
		t.Fatalf("consensus method = %q", res.Consensus.Method)
	}
	if res.Assessment == nil {
		t.Fatal("expected persisted assessment")
	}
	if res.Assessment.Source != domain.SourceConsensus {
		t.Fatalf("assessment source = %q, want consensus", res.Assessment.Source)
	}
	if res.Assessment.Event != "quarterly review" {
		t.Fatalf("assessment event = %q", res.Assessment.Event)
	}
	if res.Assessment.Harmony <= 0 {
		t.Fatal("expected classification on the persisted assessment")
	}
	if len(store.assessments) != 1 {
		t.Fatalf("expected 1 stored assessment, got %d", len(store.assessments))
	}
}

func TestEstimateService_UnknownSubject(t *testing.T) {
	svc, _, _ := setupEstimateTest(t)
	unknown := uuid.New()

	_, err := svc.Estimate(context.Background(), EstimateRequest{
		Text:      "honest caring team",
		SubjectID: &unknown,
	})
	if err != ErrSubjectNotFound {
		t.Fatalf("expected ErrSubjectNotFound, got %v", err)
	}
}
