package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubjectKind categorizes what an assessed entity is.
type SubjectKind string

const (
	SubjectOrganization SubjectKind = "organization"
	SubjectEvent        SubjectKind = "event"
	SubjectConstant     SubjectKind = "constant"
	SubjectConjecture   SubjectKind = "conjecture"
	SubjectOther        SubjectKind = "other"
)

func ValidSubjectKind(k string) bool {
	switch SubjectKind(k) {
	case SubjectOrganization, SubjectEvent, SubjectConstant, SubjectConjecture, SubjectOther:
		return true
	}
	return false
}

// Subject is an entity assessed over time under one profile.
type Subject struct {
	ID        uuid.UUID      `json:"id"`
	ProfileID uuid.UUID      `json:"profile_id"`
	Name      string         `json:"name"`
	Kind      SubjectKind    `json:"kind"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
