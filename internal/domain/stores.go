package domain

import (
	"context"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/ljpw"
	"github.com/google/uuid"
)

type ProfileStore interface {
	Create(ctx context.Context, p *Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	GetByName(ctx context.Context, name string) (*Profile, error)
	List(ctx context.Context) ([]Profile, error)
	Update(ctx context.Context, p *Profile) error
}

type SubjectStore interface {
	Create(ctx context.Context, s *Subject) error
	GetByID(ctx context.Context, id uuid.UUID) (*Subject, error)
	List(ctx context.Context, profileID *uuid.UUID, limit int) ([]Subject, error)
}

// SimilarOpts bounds a vector-similarity search over assessments.
type SimilarOpts struct {
	Limit       int
	MaxDistance float64
}

type AssessmentStore interface {
	Create(ctx context.Context, a *Assessment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Assessment, error)
	ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]Assessment, error)
	LatestBySubject(ctx context.Context, subjectID uuid.UUID) (*Assessment, error)
	FindSimilar(ctx context.Context, score ljpw.Vector, opts SimilarOpts) ([]AssessmentWithDistance, error)
	ListStale(ctx context.Context, limit int) ([]StaleAssessment, error)
	UpdateClassification(ctx context.Context, id uuid.UUID, harmony float64, phase ljpw.Phase) error
	Standings(ctx context.Context, limit int) ([]SubjectStanding, error)
}
