package postgres

import (
	"context"
	"errors"
	"time"

	"talentai-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type companyProfileRepo struct {
	db *pgxpool.Pool
}

// NewCompanyProfileRepository creates a new company profile repository
func NewCompanyProfileRepository(db *pgxpool.Pool) domain.CompanyProfileRepository {
	return &companyProfileRepo{db: db}
}

// GetByUserID retrieves a company profile by the employer's user ID
func (r *companyProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.CompanyProfile, error) {
	query := `
		SELECT id, user_id, name, industry, size, location,
		       required_skills, COALESCE(required_experience_level, ''),
		       created_at, updated_at
		FROM company_profiles
		WHERE user_id = $1`

	return r.scanOne(r.db.QueryRow(ctx, query, userID))
}

// GetByID retrieves a company profile by its ID
func (r *companyProfileRepo) GetByID(ctx context.Context, id int64) (*domain.CompanyProfile, error) {
	query := `
		SELECT id, user_id, name, industry, size, location,
		       required_skills, COALESCE(required_experience_level, ''),
		       created_at, updated_at
		FROM company_profiles
		WHERE id = $1`

	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *companyProfileRepo) scanOne(row pgx.Row) (*domain.CompanyProfile, error) {
	var profile domain.CompanyProfile
	var requiredSkills []string
	err := row.Scan(
		&profile.ID, &profile.UserID, &profile.Name,
		&profile.Industry, &profile.Size, &profile.Location,
		pq.Array(&requiredSkills), &profile.RequiredExperienceLevel,
		&profile.CreatedAt, &profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	profile.RequiredSkills = requiredSkills
	return &profile, nil
}

// Upsert creates or updates a company profile (1 profile per user).
// required_skills is a text[] column: element order survives round-trips,
// so the submitted skill order is preserved verbatim.
func (r *companyProfileRepo) Upsert(ctx context.Context, profile *domain.CompanyProfile) error {
	now := time.Now()
	profile.UpdatedAt = now

	query := `
		INSERT INTO company_profiles (
			user_id, name, industry, size, location,
			required_skills, required_experience_level,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			industry = EXCLUDED.industry,
			size = EXCLUDED.size,
			location = EXCLUDED.location,
			required_skills = EXCLUDED.required_skills,
			required_experience_level = EXCLUDED.required_experience_level,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`

	err := r.db.QueryRow(ctx, query,
		profile.UserID, profile.Name, profile.Industry, profile.Size, profile.Location,
		pq.Array(profile.RequiredSkills), profile.RequiredExperienceLevel,
		now, now,
	).Scan(&profile.ID, &profile.CreatedAt)

	return err
}
