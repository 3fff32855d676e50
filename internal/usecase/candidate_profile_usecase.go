package usecase

import (
	"context"
	"errors"

	"talentai-backend/internal/catalog"
	"talentai-backend/internal/domain"
	"talentai-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type candidateProfileUsecase struct {
	profiles     domain.CandidateProfileRepository
	users        domain.UserRepository
	validate     *validator.Validate
	passingScore int
}

func NewCandidateProfileUsecase(
	profiles domain.CandidateProfileRepository,
	users domain.UserRepository,
	validate *validator.Validate,
	passingScore int,
) domain.CandidateProfileUsecase {
	return &candidateProfileUsecase{
		profiles:     profiles,
		users:        users,
		validate:     validate,
		passingScore: passingScore,
	}
}

func (u *candidateProfileUsecase) GetMyProfile(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	// Security: Verify context user matches requested user
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return nil, apperror.Forbidden("You can only view your own profile")
	}

	profile, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, err
	}
	return profile, nil
}

func (u *candidateProfileUsecase) UpsertProfile(ctx context.Context, profile *domain.CandidateProfile) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	// Force UserID from context so a client cannot write another profile
	profile.UserID = ctxUserID

	if err := u.validate.Struct(profile); err != nil {
		return validationError(err)
	}
	if profile.Skills == nil {
		profile.Skills = []domain.CandidateSkill{}
	}

	return u.profiles.Upsert(ctx, profile)
}

// SubmitTestResult attaches the tested skill to the profile. This is where
// wizard skill selections actually become profile data; passing the test
// also marks the candidate verified.
func (u *candidateProfileUsecase) SubmitTestResult(ctx context.Context, userID string, result *domain.SkillTestResult) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return apperror.Forbidden("You can only submit your own test results")
	}

	if err := u.validate.Struct(result); err != nil {
		return validationError(err)
	}
	if _, ok := catalog.Find(result.Skill); !ok {
		return apperror.BadRequest("Unknown skill: " + result.Skill)
	}

	score := result.Score
	skill := domain.CandidateSkill{
		Name:             result.Skill,
		ProficiencyLevel: result.Proficiency,
		TestScore:        &score,
	}
	if err := u.profiles.AttachSkill(ctx, userID, skill); err != nil {
		return apperror.Internal(err)
	}

	if int(score) >= u.passingScore {
		if err := u.users.SetVerified(ctx, userID, true); err != nil {
			return apperror.Internal(err)
		}
	}
	return nil
}
