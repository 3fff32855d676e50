package domain

import (
	"context"
	"time"
)

// CandidateSkill is one rated skill on a candidate profile. TestScore is
// attached once the skill test has been taken.
type CandidateSkill struct {
	Name             string   `json:"name"`
	ProficiencyLevel int      `json:"proficiency_level" validate:"min=1,max=5"`
	ExperienceLevel  string   `json:"experience_level,omitempty" validate:"experience_level"`
	TestScore        *float64 `json:"test_score,omitempty"`
}

type CandidateProfile struct {
	ID        int64            `json:"id"`
	UserID    string           `json:"user_id" validate:"required"`
	Title     string           `json:"title" validate:"max=100,no_emoji"`
	Bio       string           `json:"bio" validate:"max=500,no_emoji"`
	Skills    []CandidateSkill `json:"skills" validate:"dive"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// SkillTestResult is the payload of the post-wizard skill test. Proficiency
// was chosen in the wizard; Score comes from the test itself.
type SkillTestResult struct {
	Skill       string  `json:"skill" validate:"required"`
	Proficiency int     `json:"proficiency" validate:"required,min=1,max=5"`
	Score       float64 `json:"score" validate:"min=0,max=100"`
}

type CandidateProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*CandidateProfile, error)
	Upsert(ctx context.Context, profile *CandidateProfile) error
	AttachSkill(ctx context.Context, userID string, skill CandidateSkill) error
}

type CandidateProfileUsecase interface {
	GetMyProfile(ctx context.Context, userID string) (*CandidateProfile, error)
	UpsertProfile(ctx context.Context, profile *CandidateProfile) error
	SubmitTestResult(ctx context.Context, userID string, result *SkillTestResult) error
}
