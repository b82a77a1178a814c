package service

import (
	"context"
	"errors"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/domain"
	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/store"
	"github.com/google/uuid"
)

var (
	ErrSubjectNameMissing = errors.New("subject name is required")
	ErrSubjectInvalidKind = errors.New("invalid subject kind")
	ErrSubjectNotFound    = errors.New("subject not found")
	ErrSubjectConflict    = errors.New("subject with this name already exists in profile")
)

type SubjectService struct {
	subjects domain.SubjectStore
	profiles domain.ProfileStore
}

func NewSubjectService(subjects domain.SubjectStore, profiles domain.ProfileStore) *SubjectService {
	return &SubjectService{subjects: subjects, profiles: profiles}
}

func (s *SubjectService) Create(ctx context.Context, sub *domain.Subject) error {
	if sub.Name == "" {
		return ErrSubjectNameMissing
	}
	if sub.Kind == "" {
		sub.Kind = domain.SubjectOther
	}
	if !domain.ValidSubjectKind(string(sub.Kind)) {
		return ErrSubjectInvalidKind
	}

	if _, err := s.profiles.GetByID(ctx, sub.ProfileID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProfileNotFound
		}
		return err
	}

	if err := s.subjects.Create(ctx, sub); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return ErrSubjectConflict
		}
		return err
	}
	return nil
}

func (s *SubjectService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Subject, error) {
	sub, err := s.subjects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSubjectNotFound
		}
		return nil, err
	}
	return sub, nil
}

func (s *SubjectService) List(ctx context.Context, profileID *uuid.UUID, limit int) ([]domain.Subject, error) {
	return s.subjects.List(ctx, profileID, limit)
}
