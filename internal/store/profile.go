package store

import (
	"context"
	"errors"
	"strings"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/domain"
	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/ljpw"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileStore struct {
	db *pgxpool.Pool
}

func NewProfileStore(db *pgxpool.Pool) *ProfileStore {
	return &ProfileStore{db: db}
}

func (s *ProfileStore) Create(ctx context.Context, p *domain.Profile) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO profiles (name, description, anchor, weights, entropic_max, autopoietic_min, love_min, reference)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		p.Name, p.Description, dimsSlice(p.Anchor), weightsSlice(p.Weights),
		p.Thresholds.EntropicMax, p.Thresholds.AutopoieticMin, p.Thresholds.LoveMin, p.Reference,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil && strings.Contains(err.Error(), "duplicate key") {
		return ErrConflict
	}
	return err
}

func (s *ProfileStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	return s.scanOne(s.db.QueryRow(ctx, profileSelect+` WHERE id = $1`, id))
}

func (s *ProfileStore) GetByName(ctx context.Context, name string) (*domain.Profile, error) {
	return s.scanOne(s.db.QueryRow(ctx, profileSelect+` WHERE name = $1`, name))
}

func (s *ProfileStore) List(ctx context.Context) ([]domain.Profile, error) {
	rows, err := s.db.Query(ctx, profileSelect+` ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

func (s *ProfileStore) Update(ctx context.Context, p *domain.Profile) error {
	return s.db.QueryRow(ctx,
		`UPDATE profiles
		 SET description = $2, anchor = $3, weights = $4,
		     entropic_max = $5, autopoietic_min = $6, love_min = $7,
		     reference = $8, updated_at = NOW()
		 WHERE id = $1
		 RETURNING updated_at`,
		p.ID, p.Description, dimsSlice(p.Anchor), weightsSlice(p.Weights),
		p.Thresholds.EntropicMax, p.Thresholds.AutopoieticMin, p.Thresholds.LoveMin, p.Reference,
	).Scan(&p.UpdatedAt)
}

const profileSelect = `SELECT id, name, description, anchor, weights, entropic_max, autopoietic_min, love_min, reference, created_at, updated_at FROM profiles`

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *ProfileStore) scanOne(row pgx.Row) (*domain.Profile, error) {
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func scanProfile(row rowScanner) (*domain.Profile, error) {
	p := &domain.Profile{}
	var anchor, weights []float64
	err := row.Scan(&p.ID, &p.Name, &p.Description, &anchor, &weights,
		&p.Thresholds.EntropicMax, &p.Thresholds.AutopoieticMin, &p.Thresholds.LoveMin,
		&p.Reference, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Anchor = vectorFromSlice(anchor)
	p.Weights = weightsFromSlice(weights)
	return p, nil
}

func dimsSlice(v ljpw.Vector) []float64 {
	d := v.Dims()
	return d[:]
}

func weightsSlice(w ljpw.Weights) []float64 {
	return []float64{w.Love, w.Justice, w.Power, w.Wisdom}
}

func vectorFromSlice(s []float64) ljpw.Vector {
	if len(s) != 4 {
		return ljpw.Vector{}
	}
	return ljpw.FromDims([4]float64{s[0], s[1], s[2], s[3]})
}

func weightsFromSlice(s []float64) ljpw.Weights {
	if len(s) != 4 {
		return ljpw.UniformWeights
	}
	return ljpw.Weights{Love: s[0], Justice: s[1], Power: s[2], Wisdom: s[3]}
}
