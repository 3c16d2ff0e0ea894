package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/codevhq/scoring/pkg/profile"
)

// ProfileRepository stores profiles and their work-experience/education
// children. The scoring engine reads through Snapshot; the edit flows write.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) (*ProfileRepository, error) {
	r := &ProfileRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ProfileRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS profiles (
	codev_id UUID PRIMARY KEY,
	image_url TEXT,
	about TEXT,
	phone TEXT,
	address TEXT,
	facebook TEXT,
	github TEXT,
	linkedin TEXT,
	portfolio_website TEXT,
	tech_stacks TEXT[],
	positions TEXT[],
	years_of_experience INT,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS work_experiences (
	id UUID PRIMARY KEY,
	codev_id UUID NOT NULL REFERENCES profiles(codev_id) ON DELETE CASCADE,
	company TEXT NOT NULL,
	role TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	date_from TEXT NOT NULL DEFAULT '',
	date_to TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_work_experiences_codev ON work_experiences(codev_id);
CREATE TABLE IF NOT EXISTS educations (
	id UUID PRIMARY KEY,
	codev_id UUID NOT NULL REFERENCES profiles(codev_id) ON DELETE CASCADE,
	institution TEXT NOT NULL,
	degree TEXT NOT NULL DEFAULT '',
	date_from TEXT NOT NULL DEFAULT '',
	date_to TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_educations_codev ON educations(codev_id);
`)
	return err
}

func (r *ProfileRepository) Upsert(ctx context.Context, p profile.Profile) error {
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO profiles (
	codev_id, image_url, about, phone, address,
	facebook, github, linkedin, portfolio_website,
	tech_stacks, positions, years_of_experience, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
ON CONFLICT (codev_id) DO UPDATE SET
	image_url = EXCLUDED.image_url,
	about = EXCLUDED.about,
	phone = EXCLUDED.phone,
	address = EXCLUDED.address,
	facebook = EXCLUDED.facebook,
	github = EXCLUDED.github,
	linkedin = EXCLUDED.linkedin,
	portfolio_website = EXCLUDED.portfolio_website,
	tech_stacks = EXCLUDED.tech_stacks,
	positions = EXCLUDED.positions,
	years_of_experience = EXCLUDED.years_of_experience,
	updated_at = EXCLUDED.updated_at
`, p.CodevID, p.ImageURL, p.About, p.Phone, p.Address,
		p.Facebook, p.Github, p.Linkedin, p.PortfolioWebsite,
		p.TechStacks, p.Positions, p.YearsOfExperience, p.UpdatedAt)
	return err
}

func (r *ProfileRepository) Get(ctx context.Context, codevID uuid.UUID) (profile.Profile, error) {
	row := r.pool.QueryRow(ctx, `
SELECT codev_id, image_url, about, phone, address,
	facebook, github, linkedin, portfolio_website,
	tech_stacks, positions, years_of_experience, updated_at
FROM profiles WHERE codev_id = $1
`, codevID)
	return scanProfile(row)
}

// Snapshot loads the profile row plus both child collections for one codev.
func (r *ProfileRepository) Snapshot(ctx context.Context, codevID uuid.UUID) (profile.Snapshot, error) {
	p, err := r.Get(ctx, codevID)
	if err != nil {
		return profile.Snapshot{}, err
	}
	snap := profile.Snapshot{Profile: p}

	rows, err := r.pool.Query(ctx, `
SELECT id, codev_id, company, role, description, date_from, date_to, created_at
FROM work_experiences WHERE codev_id = $1 ORDER BY created_at DESC
`, codevID)
	if err != nil {
		return profile.Snapshot{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var e profile.WorkExperience
		var created time.Time
		if err := rows.Scan(&e.ID, &e.CodevID, &e.Company, &e.Role, &e.Description, &e.DateFrom, &e.DateTo, &created); err != nil {
			return profile.Snapshot{}, err
		}
		e.CreatedAt = created.UTC()
		snap.WorkExperiences = append(snap.WorkExperiences, e)
	}
	if err := rows.Err(); err != nil {
		return profile.Snapshot{}, err
	}

	eduRows, err := r.pool.Query(ctx, `
SELECT id, codev_id, institution, degree, date_from, date_to, created_at
FROM educations WHERE codev_id = $1 ORDER BY created_at DESC
`, codevID)
	if err != nil {
		return profile.Snapshot{}, err
	}
	defer eduRows.Close()
	for eduRows.Next() {
		var e profile.Education
		var created time.Time
		if err := eduRows.Scan(&e.ID, &e.CodevID, &e.Institution, &e.Degree, &e.DateFrom, &e.DateTo, &created); err != nil {
			return profile.Snapshot{}, err
		}
		e.CreatedAt = created.UTC()
		snap.Educations = append(snap.Educations, e)
	}
	if err := eduRows.Err(); err != nil {
		return profile.Snapshot{}, err
	}
	return snap, nil
}

func (r *ProfileRepository) AddWorkExperience(ctx context.Context, e profile.WorkExperience) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO work_experiences (id, codev_id, company, role, description, date_from, date_to, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, e.ID, e.CodevID, e.Company, e.Role, e.Description, e.DateFrom, e.DateTo, e.CreatedAt)
	return err
}

func (r *ProfileRepository) DeleteWorkExperience(ctx context.Context, codevID, entryID uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `
DELETE FROM work_experiences WHERE id = $1 AND codev_id = $2
`, entryID, codevID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return profile.ErrNotFound
	}
	return nil
}

func (r *ProfileRepository) AddEducation(ctx context.Context, e profile.Education) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO educations (id, codev_id, institution, degree, date_from, date_to, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, e.ID, e.CodevID, e.Institution, e.Degree, e.DateFrom, e.DateTo, e.CreatedAt)
	return err
}

func (r *ProfileRepository) DeleteEducation(ctx context.Context, codevID, entryID uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `
DELETE FROM educations WHERE id = $1 AND codev_id = $2
`, entryID, codevID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return profile.ErrNotFound
	}
	return nil
}

func scanProfile(row pgx.Row) (profile.Profile, error) {
	var p profile.Profile
	var updated time.Time
	err := row.Scan(&p.CodevID, &p.ImageURL, &p.About, &p.Phone, &p.Address,
		&p.Facebook, &p.Github, &p.Linkedin, &p.PortfolioWebsite,
		&p.TechStacks, &p.Positions, &p.YearsOfExperience, &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}
	p.UpdatedAt = updated.UTC()
	return p, nil
}
