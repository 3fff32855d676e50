package postgres

import (
	"context"
	"errors"
	"time"

	"talentai-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `
		INSERT INTO jobs (company_id, title, description, salary_min, salary_max,
		                  location, status, employment_type, experience_level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	now := time.Now()
	job.CreatedAt = now
	job.UpdatedAt = now
	if job.Status == "" {
		job.Status = domain.JobStatusActive
	}

	return r.db.QueryRow(ctx, query,
		job.CompanyID, job.Title, job.Description, job.SalaryMin, job.SalaryMax,
		job.Location, job.Status, job.EmploymentType, job.ExperienceLevel,
		job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `
		SELECT id, company_id, title, description, salary_min, salary_max,
		       location, status, employment_type, experience_level, created_at, updated_at
		FROM jobs WHERE id = $1`

	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.CompanyID, &job.Title, &job.Description,
		&job.SalaryMin, &job.SalaryMax, &job.Location, &job.Status,
		&job.EmploymentType, &job.ExperienceLevel, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// FetchPublicActiveJobs returns active jobs with company info for public
// listings. Filtering happens server-side; clients cannot bypass it.
func (r *jobRepo) FetchPublicActiveJobs(ctx context.Context, limit, offset int) ([]domain.JobWithCompany, int64, error) {
	query := `
		SELECT j.id, j.company_id, j.title, j.description, j.salary_min, j.salary_max,
		       j.location, j.status, j.employment_type, j.experience_level,
		       j.created_at, j.updated_at,
		       c.name, c.industry
		FROM jobs j
		JOIN company_profiles c ON j.company_id = c.id
		WHERE j.status = 'active'
		ORDER BY j.created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.JobWithCompany
	for rows.Next() {
		var j domain.JobWithCompany
		if err := rows.Scan(
			&j.ID, &j.CompanyID, &j.Title, &j.Description, &j.SalaryMin, &j.SalaryMax,
			&j.Location, &j.Status, &j.EmploymentType, &j.ExperienceLevel,
			&j.CreatedAt, &j.UpdatedAt,
			&j.CompanyName, &j.Industry,
		); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE status = 'active'`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepo) FetchByCompanyID(ctx context.Context, companyID int64, limit, offset int) ([]domain.Job, int64, error) {
	query := `
		SELECT id, company_id, title, description, salary_min, salary_max,
		       location, status, employment_type, experience_level, created_at, updated_at
		FROM jobs
		WHERE company_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var j domain.Job
		if err := rows.Scan(
			&j.ID, &j.CompanyID, &j.Title, &j.Description, &j.SalaryMin, &j.SalaryMax,
			&j.Location, &j.Status, &j.EmploymentType, &j.ExperienceLevel,
			&j.CreatedAt, &j.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE company_id = $1`, companyID).Scan(&total); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	job.UpdatedAt = time.Now()
	query := `
		UPDATE jobs SET title = $2, description = $3, salary_min = $4, salary_max = $5,
		                location = $6, status = $7, employment_type = $8,
		                experience_level = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Description, job.SalaryMin, job.SalaryMax,
		job.Location, job.Status, job.EmploymentType, job.ExperienceLevel, job.UpdatedAt,
	)
	return err
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	return err
}
