package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("profile not found")
	ErrForbidden = errors.New("forbidden")
)

// Repository is the persistence port for profiles and their child collections.
// The scoring engine only ever calls Snapshot; the edit flows use the rest.
type Repository interface {
	Upsert(ctx context.Context, p Profile) error
	Get(ctx context.Context, codevID uuid.UUID) (Profile, error)
	Snapshot(ctx context.Context, codevID uuid.UUID) (Snapshot, error)

	AddWorkExperience(ctx context.Context, e WorkExperience) error
	DeleteWorkExperience(ctx context.Context, codevID, entryID uuid.UUID) error
	AddEducation(ctx context.Context, e Education) error
	DeleteEducation(ctx context.Context, codevID, entryID uuid.UUID) error
}
