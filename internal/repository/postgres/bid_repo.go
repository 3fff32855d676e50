package postgres

import (
	"context"
	"time"

	"talentai-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type bidRepo struct {
	db *pgxpool.Pool
}

func NewBidRepository(db *pgxpool.Pool) domain.BidRepository {
	return &bidRepo{db: db}
}

// Upsert stores a bid; one live bid per (job, candidate), a later bid
// replaces the earlier one.
func (r *bidRepo) Upsert(ctx context.Context, bid *domain.Bid) error {
	if bid.ID == uuid.Nil {
		bid.ID = uuid.New()
	}
	if bid.PlacedAt.IsZero() {
		bid.PlacedAt = time.Now()
	}

	query := `
		INSERT INTO bids (id, job_id, candidate_id, company_user_id, amount, placed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (job_id, candidate_id) DO UPDATE SET
			amount = EXCLUDED.amount,
			company_user_id = EXCLUDED.company_user_id,
			placed_at = EXCLUDED.placed_at`

	_, err := r.db.Exec(ctx, query,
		bid.ID, bid.JobID, bid.CandidateID, bid.CompanyUserID, bid.Amount, bid.PlacedAt,
	)
	return err
}

func (r *bidRepo) ListByJob(ctx context.Context, jobID int64) ([]domain.Bid, error) {
	query := `
		SELECT id, job_id, candidate_id, company_user_id, amount, placed_at
		FROM bids
		WHERE job_id = $1
		ORDER BY placed_at DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bids []domain.Bid
	for rows.Next() {
		var b domain.Bid
		if err := rows.Scan(
			&b.ID, &b.JobID, &b.CandidateID, &b.CompanyUserID, &b.Amount, &b.PlacedAt,
		); err != nil {
			return nil, err
		}
		bids = append(bids, b)
	}
	return bids, rows.Err()
}
