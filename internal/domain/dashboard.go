package domain

import "context"

// DashboardStats aggregates platform counts. Each count is best-effort:
// a failing lookup degrades to zero instead of failing the whole request.
type DashboardStats struct {
	Candidates int64 `json:"candidates"`
	Companies  int64 `json:"companies"`
	Jobs       int64 `json:"jobs"`
	Bids       int64 `json:"bids"`
}

type DashboardRepository interface {
	CountCandidates(ctx context.Context) (int64, error)
	CountCompanies(ctx context.Context) (int64, error)
	CountActiveJobs(ctx context.Context) (int64, error)
	CountBids(ctx context.Context) (int64, error)
}

type DashboardUsecase interface {
	GetStats(ctx context.Context) (*DashboardStats, error)
}
