package usecase

import (
	"context"

	"talentai-backend/internal/domain"
	"talentai-backend/pkg/logger"
)

type dashboardUsecase struct {
	repo domain.DashboardRepository
}

func NewDashboardUsecase(repo domain.DashboardRepository) domain.DashboardUsecase {
	return &dashboardUsecase{repo: repo}
}

// GetStats aggregates platform counts. These feed secondary dashboard
// widgets, so each failing count degrades to zero with a logged warning
// instead of failing the whole request.
func (u *dashboardUsecase) GetStats(ctx context.Context) (*domain.DashboardStats, error) {
	stats := &domain.DashboardStats{}

	stats.Candidates = u.countOrZero(ctx, "candidates", u.repo.CountCandidates)
	stats.Companies = u.countOrZero(ctx, "companies", u.repo.CountCompanies)
	stats.Jobs = u.countOrZero(ctx, "jobs", u.repo.CountActiveJobs)
	stats.Bids = u.countOrZero(ctx, "bids", u.repo.CountBids)

	return stats, nil
}

func (u *dashboardUsecase) countOrZero(ctx context.Context, name string, fn func(context.Context) (int64, error)) int64 {
	n, err := fn(ctx)
	if err != nil {
		logger.Log.Warn("Dashboard count failed", "stat", name, "error", err)
		return 0
	}
	return n
}
