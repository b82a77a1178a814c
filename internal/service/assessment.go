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

var (
	ErrAssessmentNotFound      = errors.New("assessment not found")
	ErrAssessmentInvalidSource = errors.New("invalid assessment source")
)

type AssessmentService struct {
	assessments domain.AssessmentStore
	subjects    domain.SubjectStore
	profiles    domain.ProfileStore
	logger      *zap.Logger
}

func NewAssessmentService(assessments domain.AssessmentStore, subjects domain.SubjectStore, profiles domain.ProfileStore, logger *zap.Logger) *AssessmentService {
	return &AssessmentService{
		assessments: assessments,
		subjects:    subjects,
		profiles:    profiles,
		logger:      logger,
	}
}

// Create records an assessment and classifies it under the subject's
// profile at write time. Scores are stored exactly as supplied; the
// model tolerates out-of-range values by design.
func (s *AssessmentService) Create(ctx context.Context, a *domain.Assessment) error {
	if a.Source == "" {
		a.Source = domain.SourceManual
	}
	if !domain.ValidSource(string(a.Source)) {
		return ErrAssessmentInvalidSource
	}
	if a.ObservedAt.IsZero() {
		a.ObservedAt = time.Now()
	}

	sub, err := s.subjects.GetByID(ctx, a.SubjectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSubjectNotFound
		}
		return err
	}

	profile, err := s.profiles.GetByID(ctx, sub.ProfileID)
	if err != nil {
		return err
	}

	a.Harmony, a.Phase = profile.Classify(a.Score)

	if err := s.assessments.Create(ctx, a); err != nil {
		return err
	}

	s.logger.Debug("assessment recorded",
		zap.String("subject_id", a.SubjectID.String()),
		zap.Float64("harmony", a.Harmony),
		zap.String("phase", string(a.Phase)))
	return nil
}

func (s *AssessmentService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Assessment, error) {
	a, err := s.assessments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrAssessmentNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *AssessmentService) ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]domain.Assessment, error) {
	if _, err := s.subjects.GetByID(ctx, subjectID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSubjectNotFound
		}
		return nil, err
	}
	return s.assessments.ListBySubject(ctx, subjectID)
}

// FindSimilar locates stored assessments with the closest LJPW
// signature to the query vector.
func (s *AssessmentService) FindSimilar(ctx context.Context, score ljpw.Vector, opts domain.SimilarOpts) ([]domain.AssessmentWithDistance, error) {
	return s.assessments.FindSimilar(ctx, score, opts)
}
