package profile

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/codevhq/scoring/pkg/auth"
)

// UseCase covers the profile-edit flows that produce the scoring engine's
// inputs. Every operation is owner-scoped with an admin bypass.
type UseCase interface {
	Get(ctx context.Context, actorID, codevID uuid.UUID) (Snapshot, error)
	Save(ctx context.Context, actorID uuid.UUID, p Profile) (Profile, error)
	AddWorkExperience(ctx context.Context, actorID uuid.UUID, e WorkExperience) (WorkExperience, error)
	RemoveWorkExperience(ctx context.Context, actorID, codevID, entryID uuid.UUID) error
	AddEducation(ctx context.Context, actorID uuid.UUID, e Education) (Education, error)
	RemoveEducation(ctx context.Context, actorID, codevID, entryID uuid.UUID) error
}

type service struct {
	repo  Repository
	users auth.UserRepository
}

// NewService returns the default UseCase implementation.
func NewService(repo Repository, users auth.UserRepository) UseCase {
	return &service{repo: repo, users: users}
}

// authorize permits the owner, or anyone holding the admin role. A failed
// role lookup fails closed.
func (s *service) authorize(ctx context.Context, actorID, codevID uuid.UUID) error {
	if actorID == codevID {
		return nil
	}
	u, err := s.users.GetByID(ctx, actorID)
	if err != nil || !u.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

func (s *service) Get(ctx context.Context, actorID, codevID uuid.UUID) (Snapshot, error) {
	if err := s.authorize(ctx, actorID, codevID); err != nil {
		return Snapshot{}, err
	}
	return s.repo.Snapshot(ctx, codevID)
}

func (s *service) Save(ctx context.Context, actorID uuid.UUID, p Profile) (Profile, error) {
	if err := s.authorize(ctx, actorID, p.CodevID); err != nil {
		return Profile{}, err
	}
	trimPtr(&p.ImageURL)
	trimPtr(&p.About)
	trimPtr(&p.Phone)
	trimPtr(&p.Address)
	trimPtr(&p.Facebook)
	trimPtr(&p.Github)
	trimPtr(&p.Linkedin)
	trimPtr(&p.PortfolioWebsite)
	p.UpdatedAt = time.Now().UTC()
	if err := s.repo.Upsert(ctx, p); err != nil {
		return Profile{}, err
	}
	return s.repo.Get(ctx, p.CodevID)
}

func (s *service) AddWorkExperience(ctx context.Context, actorID uuid.UUID, e WorkExperience) (WorkExperience, error) {
	if err := s.authorize(ctx, actorID, e.CodevID); err != nil {
		return WorkExperience{}, err
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if err := s.repo.AddWorkExperience(ctx, e); err != nil {
		return WorkExperience{}, err
	}
	return e, nil
}

func (s *service) RemoveWorkExperience(ctx context.Context, actorID, codevID, entryID uuid.UUID) error {
	if err := s.authorize(ctx, actorID, codevID); err != nil {
		return err
	}
	return s.repo.DeleteWorkExperience(ctx, codevID, entryID)
}

func (s *service) AddEducation(ctx context.Context, actorID uuid.UUID, e Education) (Education, error) {
	if err := s.authorize(ctx, actorID, e.CodevID); err != nil {
		return Education{}, err
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if err := s.repo.AddEducation(ctx, e); err != nil {
		return Education{}, err
	}
	return e, nil
}

func (s *service) RemoveEducation(ctx context.Context, actorID, codevID, entryID uuid.UUID) error {
	if err := s.authorize(ctx, actorID, codevID); err != nil {
		return err
	}
	return s.repo.DeleteEducation(ctx, codevID, entryID)
}

// trimPtr trims a string pointer in place; a value that becomes empty turns
// into nil so it stores as NULL rather than "".
func trimPtr(s **string) {
	if *s == nil {
		return
	}
	t := strings.TrimSpace(**s)
	if t == "" {
		*s = nil
		return
	}
	*s = &t
}
