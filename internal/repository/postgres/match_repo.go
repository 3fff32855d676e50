package postgres

import (
	"context"

	"talentai-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type matchRepo struct {
	db *pgxpool.Pool
}

func NewMatchRepository(db *pgxpool.Pool) domain.MatchRepository {
	return &matchRepo{db: db}
}

// FetchCandidatesForJob returns every candidate with at least one rated
// skill, joined with a confirmed bid for the job if one exists. Scoring
// and ranking happen in the usecase.
func (r *matchRepo) FetchCandidatesForJob(ctx context.Context, jobID int64) ([]domain.MatchCandidate, error) {
	query := `
		SELECT u.id, u.username, u.email, u.is_verified, u.role, b.amount
		FROM users u
		JOIN candidate_profiles p ON p.user_id = u.id
		LEFT JOIN bids b ON b.candidate_id = u.id AND b.job_id = $1
		WHERE u.role = 'candidate'
		  AND EXISTS (SELECT 1 FROM candidate_skills s WHERE s.user_id = u.id)
		ORDER BY u.created_at`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []domain.MatchCandidate
	for rows.Next() {
		var m domain.MatchCandidate
		if err := rows.Scan(
			&m.CandidateID, &m.Username, &m.Email, &m.IsVerified, &m.Role, &m.FinalBid,
		); err != nil {
			return nil, err
		}
		candidates = append(candidates, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(candidates) == 0 {
		return candidates, nil
	}

	userIDs := make([]string, len(candidates))
	for i := range candidates {
		userIDs[i] = candidates[i].CandidateID
	}
	skillsByUser, err := r.fetchSkills(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		skills := skillsByUser[candidates[i].CandidateID]
		if skills == nil {
			skills = []domain.MatchedSkill{}
		}
		candidates[i].MatchedSkills = skills
	}
	return candidates, nil
}

// fetchSkills loads the rated skills for all candidates in one round trip.
func (r *matchRepo) fetchSkills(ctx context.Context, userIDs []string) (map[string][]domain.MatchedSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id, name, proficiency_level, COALESCE(experience_level, ''), test_score
		 FROM candidate_skills WHERE user_id = ANY($1) ORDER BY user_id, position`,
		userIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skillsByUser := make(map[string][]domain.MatchedSkill, len(userIDs))
	for rows.Next() {
		var userID string
		var s domain.MatchedSkill
		if err := rows.Scan(&userID, &s.Name, &s.ProficiencyLevel, &s.ExperienceLevel, &s.TestScore); err != nil {
			return nil, err
		}
		skillsByUser[userID] = append(skillsByUser[userID], s)
	}
	return skillsByUser, rows.Err()
}
