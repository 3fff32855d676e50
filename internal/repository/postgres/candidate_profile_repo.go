package postgres

import (
	"context"
	"errors"
	"time"

	"talentai-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type candidateProfileRepo struct {
	db *pgxpool.Pool
}

func NewCandidateProfileRepository(db *pgxpool.Pool) domain.CandidateProfileRepository {
	return &candidateProfileRepo{db: db}
}

func (r *candidateProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	query := `SELECT id, user_id, COALESCE(title, ''), COALESCE(bio, ''), created_at, updated_at
	          FROM candidate_profiles WHERE user_id = $1`

	var p domain.CandidateProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Title, &p.Bio, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	skills, err := r.fetchSkills(ctx, userID)
	if err != nil {
		return nil, err
	}
	p.Skills = skills
	return &p, nil
}

func (r *candidateProfileRepo) fetchSkills(ctx context.Context, userID string) ([]domain.CandidateSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT name, proficiency_level, COALESCE(experience_level, ''), test_score
		 FROM candidate_skills WHERE user_id = $1 ORDER BY position`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := []domain.CandidateSkill{}
	for rows.Next() {
		var s domain.CandidateSkill
		if err := rows.Scan(&s.Name, &s.ProficiencyLevel, &s.ExperienceLevel, &s.TestScore); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

// Upsert creates or updates the profile row and replaces its skills
// atomically. Repeating the call with the same payload yields the same
// stored state.
func (r *candidateProfileRepo) Upsert(ctx context.Context, profile *domain.CandidateProfile) error {
	now := time.Now()
	profile.UpdatedAt = now

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO candidate_profiles (user_id, title, bio, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			title = EXCLUDED.title,
			bio = EXCLUDED.bio,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`

	err = tx.QueryRow(ctx, query,
		profile.UserID, profile.Title, profile.Bio, now, now,
	).Scan(&profile.ID, &profile.CreatedAt)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM candidate_skills WHERE user_id = $1`, profile.UserID); err != nil {
		return err
	}
	for i, s := range profile.Skills {
		_, err := tx.Exec(ctx,
			`INSERT INTO candidate_skills (user_id, name, proficiency_level, experience_level, test_score, position)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			profile.UserID, s.Name, s.ProficiencyLevel, s.ExperienceLevel, s.TestScore, i,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// AttachSkill adds or refreshes one skill on the profile. Used by the
// test-results path that runs after wizard completion.
func (r *candidateProfileRepo) AttachSkill(ctx context.Context, userID string, skill domain.CandidateSkill) error {
	query := `
		INSERT INTO candidate_skills (user_id, name, proficiency_level, experience_level, test_score, position)
		VALUES ($1, $2, $3, $4, $5,
			COALESCE((SELECT MAX(position) + 1 FROM candidate_skills WHERE user_id = $1), 0))
		ON CONFLICT (user_id, name) DO UPDATE SET
			proficiency_level = EXCLUDED.proficiency_level,
			experience_level = EXCLUDED.experience_level,
			test_score = EXCLUDED.test_score`

	_, err := r.db.Exec(ctx, query,
		userID, skill.Name, skill.ProficiencyLevel, skill.ExperienceLevel, skill.TestScore,
	)
	return err
}
