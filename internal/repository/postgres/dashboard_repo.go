package postgres

import (
	"context"

	"talentai-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type dashboardRepo struct {
	db *pgxpool.Pool
}

func NewDashboardRepository(db *pgxpool.Pool) domain.DashboardRepository {
	return &dashboardRepo{db: db}
}

func (r *dashboardRepo) CountCandidates(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users WHERE role = 'candidate'`)
}

func (r *dashboardRepo) CountCompanies(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM company_profiles`)
}

func (r *dashboardRepo) CountActiveJobs(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM jobs WHERE status = 'active'`)
}

func (r *dashboardRepo) CountBids(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM bids`)
}

func (r *dashboardRepo) count(ctx context.Context, query string) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, query).Scan(&n)
	return n, err
}
