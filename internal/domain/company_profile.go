package domain

import (
	"context"
	"time"
)

// CompanyProfile is the employer-side profile. RequiredSkills and
// RequiredExperienceLevel are stored exactly as submitted: no reordering,
// no case transformation.
type CompanyProfile struct {
	ID                      int64     `json:"id"`
	UserID                  string    `json:"user_id" validate:"required"`
	Name                    string    `json:"name" validate:"required,max=100,valid_name,no_emoji"`
	Industry                string    `json:"industry" validate:"required,max=100,valid_name"`
	Size                    string    `json:"size" validate:"required,max=50"`
	Location                string    `json:"location" validate:"required,max=100,valid_name"`
	RequiredSkills          []string  `json:"required_skills"`
	RequiredExperienceLevel string    `json:"required_experience_level" validate:"experience_level"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

type CompanyProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*CompanyProfile, error)
	GetByID(ctx context.Context, id int64) (*CompanyProfile, error)
	Upsert(ctx context.Context, profile *CompanyProfile) error
}

type CompanyProfileUsecase interface {
	GetMyProfile(ctx context.Context, userID string) (*CompanyProfile, error)
	UpsertProfile(ctx context.Context, profile *CompanyProfile) error
}
