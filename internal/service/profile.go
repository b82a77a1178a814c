package service

import (
	"context"
	"errors"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/domain"
	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/ljpw"
	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/store"
	"github.com/google/uuid"
)

var (
	ErrProfileNameMissing = errors.New("profile name is required")
	ErrProfileConflict    = errors.New("profile with this name already exists")
	ErrInvalidReference   = errors.New("reference must be anchor or equilibrium")
	ErrInvalidWeights     = errors.New("weights must be non-negative and not all zero")
)

type ProfileService struct {
	store domain.ProfileStore
}

func NewProfileService(s domain.ProfileStore) *ProfileService {
	return &ProfileService{store: s}
}

func (s *ProfileService) Create(ctx context.Context, p *domain.Profile) error {
	if p.Name == "" {
		return ErrProfileNameMissing
	}
	if p.Reference == "" {
		p.Reference = domain.ReferenceAnchor
	}
	if !domain.ValidReference(string(p.Reference)) {
		return ErrInvalidReference
	}
	if zeroVector(p.Anchor) {
		p.Anchor = ljpw.Anchor
	}
	if p.Weights == (ljpw.Weights{}) {
		p.Weights = ljpw.UniformWeights
	}
	if err := validWeights(p.Weights); err != nil {
		return err
	}
	if p.Thresholds == (ljpw.Thresholds{}) {
		p.Thresholds = ljpw.DefaultThresholds
	}

	if err := s.store.Create(ctx, p); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return ErrProfileConflict
		}
		return err
	}
	return nil
}

func (s *ProfileService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	p, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *ProfileService) List(ctx context.Context) ([]domain.Profile, error) {
	return s.store.List(ctx)
}

// Update rewrites a profile's configuration. Assessments classified
// under the previous configuration become stale and are picked up by
// the reclassification sweeper.
func (s *ProfileService) Update(ctx context.Context, p *domain.Profile) error {
	if !domain.ValidReference(string(p.Reference)) {
		return ErrInvalidReference
	}
	if err := validWeights(p.Weights); err != nil {
		return err
	}

	if _, err := s.store.GetByID(ctx, p.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProfileNotFound
		}
		return err
	}
	return s.store.Update(ctx, p)
}

func zeroVector(v ljpw.Vector) bool {
	return v == ljpw.Vector{}
}

func validWeights(w ljpw.Weights) error {
	if w.Love < 0 || w.Justice < 0 || w.Power < 0 || w.Wisdom < 0 {
		return ErrInvalidWeights
	}
	if w.Love == 0 && w.Justice == 0 && w.Power == 0 && w.Wisdom == 0 {
		return ErrInvalidWeights
	}
	return nil
}
