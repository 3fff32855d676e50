package domain

import (
	"context"
	"time"
)

type Job struct {
	ID              int64     `json:"id"`
	CompanyID       int64     `json:"company_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	SalaryMin       float64   `json:"salary_min"`
	SalaryMax       float64   `json:"salary_max"`
	Location        string    `json:"location"`
	Status          string    `json:"status"`
	EmploymentType  *string   `json:"employment_type"`
	ExperienceLevel *string   `json:"experience_level"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Job status values
const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"
)

// JobWithCompany extends Job with company profile information
type JobWithCompany struct {
	Job
	CompanyName string `json:"company_name"`
	Industry    string `json:"industry"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	FetchPublicActiveJobs(ctx context.Context, limit, offset int) ([]JobWithCompany, int64, error)
	FetchByCompanyID(ctx context.Context, companyID int64, limit, offset int) ([]Job, int64, error)
	Update(ctx context.Context, job *Job) error
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, userID string, job *Job) error
	GetJobDetails(ctx context.Context, id int64) (*Job, error)
	ListPublicActiveJobs(ctx context.Context, page, pageSize int) ([]JobWithCompany, int64, error)
	ListJobsByEmployer(ctx context.Context, userID string, page, pageSize int) ([]Job, int64, error)
	UpdateJob(ctx context.Context, userID string, job *Job) error
	DeleteJob(ctx context.Context, userID string, id int64) error
}
