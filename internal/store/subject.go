package store

import (
	"context"
	"errors"
	"strings"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SubjectStore struct {
	db *pgxpool.Pool
}

func NewSubjectStore(db *pgxpool.Pool) *SubjectStore {
	return &SubjectStore{db: db}
}

func (s *SubjectStore) Create(ctx context.Context, sub *domain.Subject) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO subjects (profile_id, name, kind, metadata)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		sub.ProfileID, sub.Name, sub.Kind, sub.Metadata,
	).Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil && strings.Contains(err.Error(), "duplicate key") {
		return ErrConflict
	}
	return err
}

func (s *SubjectStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Subject, error) {
	sub := &domain.Subject{}
	err := s.db.QueryRow(ctx,
		`SELECT id, profile_id, name, kind, metadata, created_at, updated_at
		 FROM subjects WHERE id = $1`,
		id,
	).Scan(&sub.ID, &sub.ProfileID, &sub.Name, &sub.Kind, &sub.Metadata, &sub.CreatedAt, &sub.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sub, nil
}

func (s *SubjectStore) List(ctx context.Context, profileID *uuid.UUID, limit int) ([]domain.Subject, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `SELECT id, profile_id, name, kind, metadata, created_at, updated_at FROM subjects`
	args := []any{limit}
	if profileID != nil {
		query += ` WHERE profile_id = $2`
		args = append(args, *profileID)
	}
	query += ` ORDER BY name LIMIT $1`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []domain.Subject
	for rows.Next() {
		var sub domain.Subject
		if err := rows.Scan(&sub.ID, &sub.ProfileID, &sub.Name, &sub.Kind, &sub.Metadata, &sub.CreatedAt, &sub.UpdatedAt); err != nil {
			return nil, err
		}
		subjects = append(subjects, sub)
	}
	return subjects, rows.Err()
}
