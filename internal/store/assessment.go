package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/domain"
	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/ljpw"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"
)

type AssessmentStore struct {
	db *pgxpool.Pool
}

func NewAssessmentStore(db *pgxpool.Pool) *AssessmentStore {
	return &AssessmentStore{db: db}
}

func (s *AssessmentStore) Create(ctx context.Context, a *domain.Assessment) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO assessments (subject_id, score, observed_at, event, source, confidence, harmony, phase, classified_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		 RETURNING id, classified_at, created_at`,
		a.SubjectID, scoreToPg(a.Score), a.ObservedAt, a.Event, a.Source, a.Confidence, a.Harmony, a.Phase,
	).Scan(&a.ID, &a.ClassifiedAt, &a.CreatedAt)
}

func (s *AssessmentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Assessment, error) {
	a := &domain.Assessment{}
	var score pgvector.Vector
	err := s.db.QueryRow(ctx,
		`SELECT id, subject_id, score, observed_at, event, source, confidence, harmony, phase, classified_at, created_at
		 FROM assessments WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.SubjectID, &score, &a.ObservedAt, &a.Event, &a.Source, &a.Confidence, &a.Harmony, &a.Phase, &a.ClassifiedAt, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	a.Score = scoreFromPg(score)
	return a, nil
}

func (s *AssessmentStore) ListBySubject(ctx context.Context, subjectID uuid.UUID) ([]domain.Assessment, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, subject_id, score, observed_at, event, source, confidence, harmony, phase, classified_at, created_at
		 FROM assessments WHERE subject_id = $1
		 ORDER BY observed_at ASC`,
		subjectID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assessments []domain.Assessment
	for rows.Next() {
		var a domain.Assessment
		var score pgvector.Vector
		if err := rows.Scan(&a.ID, &a.SubjectID, &score, &a.ObservedAt, &a.Event, &a.Source, &a.Confidence, &a.Harmony, &a.Phase, &a.ClassifiedAt, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.Score = scoreFromPg(score)
		assessments = append(assessments, a)
	}
	return assessments, rows.Err()
}

func (s *AssessmentStore) LatestBySubject(ctx context.Context, subjectID uuid.UUID) (*domain.Assessment, error) {
	a := &domain.Assessment{}
	var score pgvector.Vector
	err := s.db.QueryRow(ctx,
		`SELECT id, subject_id, score, observed_at, event, source, confidence, harmony, phase, classified_at, created_at
		 FROM assessments WHERE subject_id = $1
		 ORDER BY observed_at DESC LIMIT 1`,
		subjectID,
	).Scan(&a.ID, &a.SubjectID, &score, &a.ObservedAt, &a.Event, &a.Source, &a.Confidence, &a.Harmony, &a.Phase, &a.ClassifiedAt, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	a.Score = scoreFromPg(score)
	return a, nil
}

// FindSimilar runs an L2 nearest-neighbor search over stored scores.
func (s *AssessmentStore) FindSimilar(ctx context.Context, score ljpw.Vector, opts domain.SimilarOpts) ([]domain.AssessmentWithDistance, error) {
	if opts.Limit <= 0 {
		opts.Limit = 10
	}

	query := `SELECT a.id, a.subject_id, a.score, a.observed_at, a.event, a.source, a.confidence, a.harmony, a.phase, a.classified_at, a.created_at,
	                 s.name, a.score <-> $1 AS distance
	          FROM assessments a
	          JOIN subjects s ON s.id = a.subject_id`
	args := []any{scoreToPg(score)}

	if opts.MaxDistance > 0 {
		query += ` WHERE a.score <-> $1 <= $3`
	}

	query += ` ORDER BY distance ASC LIMIT $2`
	args = append(args, opts.Limit)
	if opts.MaxDistance > 0 {
		args = append(args, opts.MaxDistance)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("similarity query: %w", err)
	}
	defer rows.Close()

	var results []domain.AssessmentWithDistance
	for rows.Next() {
		var r domain.AssessmentWithDistance
		var sc pgvector.Vector
		if err := rows.Scan(&r.ID, &r.SubjectID, &sc, &r.ObservedAt, &r.Event, &r.Source, &r.Confidence, &r.Harmony, &r.Phase, &r.ClassifiedAt, &r.CreatedAt, &r.SubjectName, &r.Distance); err != nil {
			return nil, err
		}
		r.Score = scoreFromPg(sc)
		results = append(results, r)
	}
	return results, rows.Err()
}

// ListStale returns assessments classified before their profile's last
// configuration change, joined with the current configuration.
func (s *AssessmentStore) ListStale(ctx context.Context, limit int) ([]domain.StaleAssessment, error) {
	if limit <= 0 {
		limit = 500
	}

	rows, err := s.db.Query(ctx,
		`SELECT a.id, a.subject_id, a.score, a.observed_at, a.event, a.source, a.confidence, a.harmony, a.phase, a.classified_at, a.created_at,
		        p.anchor, p.weights, p.entropic_max, p.autopoietic_min, p.love_min
		 FROM assessments a
		 JOIN subjects s ON s.id = a.subject_id
		 JOIN profiles p ON p.id = s.profile_id
		 WHERE a.classified_at < p.updated_at
		 ORDER BY a.classified_at ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stale []domain.StaleAssessment
	for rows.Next() {
		var st domain.StaleAssessment
		var score pgvector.Vector
		var anchor, weights []float64
		if err := rows.Scan(&st.ID, &st.SubjectID, &score, &st.ObservedAt, &st.Event, &st.Source, &st.Confidence, &st.Harmony, &st.Phase, &st.ClassifiedAt, &st.CreatedAt,
			&anchor, &weights, &st.Thresholds.EntropicMax, &st.Thresholds.AutopoieticMin, &st.Thresholds.LoveMin); err != nil {
			return nil, err
		}
		st.Score = scoreFromPg(score)
		st.Anchor = vectorFromSlice(anchor)
		st.Weights = weightsFromSlice(weights)
		stale = append(stale, st)
	}
	return stale, rows.Err()
}

func (s *AssessmentStore) UpdateClassification(ctx context.Context, id uuid.UUID, harmony float64, phase ljpw.Phase) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE assessments SET harmony = $2, phase = $3, classified_at = NOW() WHERE id = $1`,
		id, harmony, phase,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Standings ranks subjects by the harmony of their latest assessment.
func (s *AssessmentStore) Standings(ctx context.Context, limit int) ([]domain.SubjectStanding, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(ctx,
		`SELECT subject_id, name, harmony, phase, observed_at FROM (
		   SELECT DISTINCT ON (a.subject_id) a.subject_id, s.name, a.harmony, a.phase, a.observed_at
		   FROM assessments a
		   JOIN subjects s ON s.id = a.subject_id
		   ORDER BY a.subject_id, a.observed_at DESC
		 ) latest
		 ORDER BY harmony DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var standings []domain.SubjectStanding
	for rows.Next() {
		var st domain.SubjectStanding
		if err := rows.Scan(&st.SubjectID, &st.Name, &st.Harmony, &st.Phase, &st.ObservedAt); err != nil {
			return nil, err
		}
		st.Rank = len(standings) + 1
		standings = append(standings, st)
	}
	return standings, rows.Err()
}

func scoreToPg(v ljpw.Vector) pgvector.Vector {
	d := v.Dims()
	return pgvector.NewVector([]float32{float32(d[0]), float32(d[1]), float32(d[2]), float32(d[3])})
}

func scoreFromPg(v pgvector.Vector) ljpw.Vector {
	s := v.Slice()
	if len(s) != 4 {
		return ljpw.Vector{}
	}
	return ljpw.FromDims([4]float64{float64(s[0]), float64(s[1]), float64(s[2]), float64(s[3])})
}
