package profile

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codevhq/scoring/pkg/auth"
)

type memoryRepo struct {
	profiles map[uuid.UUID]Profile
	work     map[uuid.UUID][]WorkExperience
	edu      map[uuid.UUID][]Education
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		profiles: map[uuid.UUID]Profile{},
		work:     map[uuid.UUID][]WorkExperience{},
		edu:      map[uuid.UUID][]Education{},
	}
}

func (m *memoryRepo) Upsert(_ context.Context, p Profile) error {
	m.profiles[p.CodevID] = p
	return nil
}

func (m *memoryRepo) Get(_ context.Context, codevID uuid.UUID) (Profile, error) {
	p, ok := m.profiles[codevID]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return p, nil
}

func (m *memoryRepo) Snapshot(ctx context.Context, codevID uuid.UUID) (Snapshot, error) {
	p, err := m.Get(ctx, codevID)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Profile: p, WorkExperiences: m.work[codevID], Educations: m.edu[codevID]}, nil
}

func (m *memoryRepo) AddWorkExperience(_ context.Context, e WorkExperience) error {
	m.work[e.CodevID] = append(m.work[e.CodevID], e)
	return nil
}

func (m *memoryRepo) DeleteWorkExperience(_ context.Context, codevID, entryID uuid.UUID) error {
	entries := m.work[codevID]
	for i, e := range entries {
		if e.ID == entryID {
			m.work[codevID] = append(entries[:i], entries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *memoryRepo) AddEducation(_ context.Context, e Education) error {
	m.edu[e.CodevID] = append(m.edu[e.CodevID], e)
	return nil
}

func (m *memoryRepo) DeleteEducation(_ context.Context, codevID, entryID uuid.UUID) error {
	entries := m.edu[codevID]
	for i, e := range entries {
		if e.ID == entryID {
			m.edu[codevID] = append(entries[:i], entries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type fakeUsers struct {
	admins map[uuid.UUID]bool
}

func (f *fakeUsers) Create(context.Context, auth.User) error { return nil }
func (f *fakeUsers) GetByEmail(context.Context, string) (auth.User, error) {
	return auth.User{}, auth.ErrNotFound
}
func (f *fakeUsers) GetByID(_ context.Context, id uuid.UUID) (auth.User, error) {
	role := auth.RoleCodev
	if f.admins[id] {
		role = auth.RoleAdmin
	}
	return auth.User{ID: id, Role: role}, nil
}

func strPtr(s string) *string { return &s }

func TestSave_OwnerUpsertsAndTrims(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, &fakeUsers{})
	codevID := uuid.New()

	saved, err := svc.Save(context.Background(), codevID, Profile{
		CodevID: codevID,
		Phone:   strPtr("  09171234567  "),
		About:   strPtr("   "),
	})
	require.NoError(t, err)

	require.NotNil(t, saved.Phone)
	assert.Equal(t, "09171234567", *saved.Phone)
	assert.Nil(t, saved.About, "whitespace-only values store as NULL")
	assert.False(t, saved.UpdatedAt.IsZero())
}

func TestSave_StrangerForbidden(t *testing.T) {
	svc := NewService(newMemoryRepo(), &fakeUsers{})
	codevID := uuid.New()

	_, err := svc.Save(context.Background(), uuid.New(), Profile{CodevID: codevID})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestSave_AdminBypass(t *testing.T) {
	repo := newMemoryRepo()
	admin := uuid.New()
	svc := NewService(repo, &fakeUsers{admins: map[uuid.UUID]bool{admin: true}})
	codevID := uuid.New()

	_, err := svc.Save(context.Background(), admin, Profile{CodevID: codevID})
	require.NoError(t, err)
}

func TestWorkExperience_AddAndRemove(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, &fakeUsers{})
	codevID := uuid.New()
	_, err := svc.Save(context.Background(), codevID, Profile{CodevID: codevID})
	require.NoError(t, err)

	entry, err := svc.AddWorkExperience(context.Background(), codevID, WorkExperience{
		CodevID: codevID,
		Company: "Acme",
		Role:    "Backend Engineer",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())

	snap, err := svc.Get(context.Background(), codevID, codevID)
	require.NoError(t, err)
	assert.Len(t, snap.WorkExperiences, 1)

	require.NoError(t, svc.RemoveWorkExperience(context.Background(), codevID, codevID, entry.ID))
	snap, err = svc.Get(context.Background(), codevID, codevID)
	require.NoError(t, err)
	assert.Empty(t, snap.WorkExperiences)
}

func TestRemoveEducation_UnknownEntry(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, &fakeUsers{})
	codevID := uuid.New()
	_, err := svc.Save(context.Background(), codevID, Profile{CodevID: codevID})
	require.NoError(t, err)

	err = svc.RemoveEducation(context.Background(), codevID, codevID, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGet_StrangerForbidden(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, &fakeUsers{})
	codevID := uuid.New()
	_, err := svc.Save(context.Background(), codevID, Profile{CodevID: codevID})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), uuid.New(), codevID)
	assert.ErrorIs(t, err, ErrForbidden)
}
