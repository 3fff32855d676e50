package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Bid is a monetary offer a company places against a candidate for a
// specific job. Immutable once accepted; a later bid on the same
// (job, candidate) pair replaces the earlier one.
type Bid struct {
	ID            uuid.UUID `json:"id"`
	JobID         int64     `json:"job_id"`
	CandidateID   string    `json:"candidate_id"`
	CompanyUserID string    `json:"company_user_id"`
	Amount        float64   `json:"amount"`
	PlacedAt      time.Time `json:"placed_at"`
}

type BidRepository interface {
	Upsert(ctx context.Context, bid *Bid) error
	ListByJob(ctx context.Context, jobID int64) ([]Bid, error)
}

type BidUsecase interface {
	// PlaceBid validates preconditions (positive amount, non-empty ids,
	// job ownership) before any repository call. The caller's match list is
	// not patched locally: the confirmed amount reappears via the next
	// matches query.
	PlaceBid(ctx context.Context, companyUserID string, jobID int64, candidateID string, amount float64) (*Bid, error)
	ListBidsForJob(ctx context.Context, companyUserID string, jobID int64) ([]Bid, error)
}
