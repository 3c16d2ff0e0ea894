package scoring

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/codevhq/scoring/pkg/auth"
	"github.com/codevhq/scoring/pkg/profile"
)

// ErrForbidden means the caller is neither the profile's owner nor an admin.
var ErrForbidden = errors.New("forbidden")

// Ledger persists computed point rows. ReplaceForProfile swaps the codev's
// entire row set for the given entries atomically and returns the stored rows
// ordered by recency.
type Ledger interface {
	ReplaceForProfile(ctx context.Context, codevID uuid.UUID, entries []BreakdownEntry) ([]PointRecord, error)
}

// UseCase recomputes and returns a codev's profile-completeness score.
type UseCase interface {
	Score(ctx context.Context, actorID, codevID uuid.UUID) (Result, error)
}

type service struct {
	catalog  Catalog
	profiles profile.Repository
	ledger   Ledger
	users    auth.UserRepository
}

// NewService wires the aggregator: catalog, profile source, ledger, and the
// user repository used for role resolution.
func NewService(catalog Catalog, profiles profile.Repository, ledger Ledger, users auth.UserRepository) UseCase {
	return &service{catalog: catalog, profiles: profiles, ledger: ledger, users: users}
}

func (s *service) Score(ctx context.Context, actorID, codevID uuid.UUID) (Result, error) {
	// Access guard: owner always passes; anyone else must hold the admin
	// role. A failed role lookup fails closed.
	if actorID != codevID {
		u, err := s.users.GetByID(ctx, actorID)
		if err != nil {
			logrus.WithError(err).WithField("actor_id", actorID).Warn("role lookup failed, denying access")
			return Result{}, ErrForbidden
		}
		if !u.IsAdmin() {
			return Result{}, ErrForbidden
		}
	}

	snap, err := s.profiles.Snapshot(ctx, codevID)
	if err != nil {
		return Result{}, err
	}

	comp := s.catalog.Evaluate(snap)

	rows, err := s.ledger.ReplaceForProfile(ctx, codevID, comp.Breakdown)
	if err != nil {
		logrus.WithError(err).WithField("codev_id", codevID).Error("points ledger refresh failed")
		return Result{}, fmt.Errorf("refresh points ledger: %w", err)
	}

	breakdown := comp.Breakdown
	if breakdown == nil {
		breakdown = []BreakdownEntry{}
	}
	if rows == nil {
		rows = []PointRecord{}
	}

	return Result{
		Success:              true,
		TotalPoints:          comp.Total,
		MaxPossiblePoints:    s.catalog.MaxPossiblePoints(),
		CompletionPercentage: s.catalog.Percentage(comp.Total),
		PointsCount:          len(rows),
		Points:               rows,
		Breakdown:            breakdown,
		CompletionDetails:    comp.Details,
		Summary: Summary{
			ProfileSections: s.catalog.Sections(comp.Details),
			DataCounts:      comp.Counts,
		},
	}, nil
}
