package service

import (
	"context"
	"sort"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/domain"
	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/ljpw"
	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/store"
	"github.com/google/uuid"
)

// mockProfileStore implements domain.ProfileStore for testing.
type mockProfileStore struct {
	profiles map[uuid.UUID]*domain.Profile
}

func newMockProfileStore() *mockProfileStore {
	return &mockProfileStore{profiles: make(map[uuid.UUID]*domain.Profile)}
}

func (m *mockProfileStore) Create(ctx context.Context, p *domain.Profile) error {
	for _, existing := range m.profiles {
		if existing.Name == p.Name {
			return store.ErrConflict
		}
	}
	p.ID = uuid.New()
	m.profiles[p.ID] = p
	return nil
}

func (m *mockProfileStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	p, ok := m.profiles[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return p, nil
}

func (m *mockProfileStore) GetByName(ctx context.Context, name string) (*domain.Profile, error) {
	for _, p := range m.profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *mockProfileStore) List(ctx context.Context) ([]domain.Profile, error) {
	var out []domain.Profile
	for _, p := range m.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockProfileStore) Update(ctx context.Context, p *domain.Profile) error {
	if _, ok := m.profiles[p.ID]; !ok {
		return store.ErrNotFound
	}
	m.profiles[p.ID] = p
	return nil
}

// mockSubjectStore implements domain.SubjectStore for testing.
type mockSubjectStore struct {
	subjects map[uuid.UUID]*domain.Subject
}

func newMockSubjectStore() *mockSubjectStore {
	return &mockSubjectStore{subjects: make(map[uuid.UUID]*domain.Subject)}
}

func (m *mockSubjectStore) Create(ctx context.Context, s *domain.Subject) error {
	for _, existing := range m.subjects {
		if existing.ProfileID == s.ProfileID && existing.Name == s.Name {
			return store.ErrConflict
		}
	}
	s.ID = uuid.New()
	m.subjects[s.ID] = s
	return nil
}

func (m *mockSubjectStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Subject, error) {
	s, ok := m.subjects[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return s, nil
}

func (m *mockSubjectStore) List(ctx context.Context, profileID *uuid.UUID, limit int) ([]domain.Subject, error) {
	var out []domain.Subject
	for _, s := range m.subjects {
		if profileID != nil && s.ProfileID != *profileID {
			continue
		}
		out = append(out, *s)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

// mockAssessmentStore implements domain.AssessmentStore for testing.
// Stale entries are staged explicitly by tests via the stale slice.
type mockAssessmentStore struct {
	assessments map[uuid.UUID]*domain.Assessment
	order       []uuid.UUID
	stale       []domain.StaleAssessment
}

func newMockAssessmentStore() *mockAssessmentStore {
	return &mockAssessmentStore{assessments: make(map[uuid.UUID]*domain.Assessment)}
}

func (m *mockAssessmentStore) Create(ctx context.Context, a *domain.Assessment) error {
	a.ID = uuid.New()
	m.assessments[a.ID] = a
	m.order = append(m.order, a.ID)
	return nil
}

func (m *mockAssessmentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Assessment, error) {
	a, ok := m.assessments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return a, nil
}

func (m *mockAssessmentStore) ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]domain.Assessment, error) {
	var out []domain.Assessment
	for _, id := range m.order {
		a := m.assessments[id]
		if a.SubjectID == subjectID {
			out = append(out, *a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ObservedAt.Before(out[j].ObservedAt)
	})
	return out, nil
}

func (m *mockAssessmentStore) LatestBySubject(ctx context.Context, subjectID uuid.UUID) (*domain.Assessment, error) {
	all, _ := m.ListBySubject(ctx, subjectID)
	if len(all) == 0 {
		return nil, store.ErrNotFound
	}
	latest := all[len(all)-1]
	return &latest, nil
}

func (m *mockAssessmentStore) FindSimilar(ctx context.Context, score ljpw.Vector, opts domain.SimilarOpts) ([]domain.AssessmentWithDistance, error) {
	var out []domain.AssessmentWithDistance
	for _, id := range m.order {
		a := m.assessments[id]
		d := ljpw.Distance(a.Score, score)
		if opts.MaxDistance > 0 && d > opts.MaxDistance {
			continue
		}
		out = append(out, domain.AssessmentWithDistance{Assessment: *a, Distance: d})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (m *mockAssessmentStore) ListStale(ctx context.Context, limit int) ([]domain.StaleAssessment, error) {
	if limit > len(m.stale) {
		limit = len(m.stale)
	}
	batch := m.stale[:limit]
	m.stale = m.stale[limit:]
	return batch, nil
}

func (m *mockAssessmentStore) UpdateClassification(ctx context.Context, id uuid.UUID, harmony float64, phase ljpw.Phase) error {
	a, ok := m.assessments[id]
	if !ok {
		return store.ErrNotFound
	}
	a.Harmony = harmony
	a.Phase = phase
	return nil
}

func (m *mockAssessmentStore) Standings(ctx context.Context, limit int) ([]domain.SubjectStanding, error) {
	latest := make(map[uuid.UUID]*domain.Assessment)
	for _, id := range m.order {
		a := m.assessments[id]
		cur, ok := latest[a.SubjectID]
		if !ok || a.ObservedAt.After(cur.ObservedAt) {
			latest[a.SubjectID] = a
		}
	}
	var out []domain.SubjectStanding
	for subjectID, a := range latest {
		out = append(out, domain.SubjectStanding{
			SubjectID:  subjectID,
			Harmony:    a.Harmony,
			Phase:      a.Phase,
			ObservedAt: a.ObservedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Harmony > out[j].Harmony })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	for i := range out {
		out[i].Rank = i + 1
	}
	return out, nil
}
