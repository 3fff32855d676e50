package usecase

import (
	"context"
	"errors"

	"talentai-backend/internal/domain"
	"talentai-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type companyProfileUsecase struct {
	profiles domain.CompanyProfileRepository
	validate *validator.Validate
}

func NewCompanyProfileUsecase(profiles domain.CompanyProfileRepository, validate *validator.Validate) domain.CompanyProfileUsecase {
	return &companyProfileUsecase{profiles: profiles, validate: validate}
}

func (u *companyProfileUsecase) GetMyProfile(ctx context.Context, userID string) (*domain.CompanyProfile, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return nil, apperror.Forbidden("You can only view your own company profile")
	}

	profile, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Company profile not found")
		}
		return nil, err
	}
	return profile, nil
}

// UpsertProfile stores the company profile. RequiredSkills and
// RequiredExperienceLevel pass through verbatim: no reordering, no case
// transformation.
func (u *companyProfileUsecase) UpsertProfile(ctx context.Context, profile *domain.CompanyProfile) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	profile.UserID = ctxUserID

	if err := u.validate.Struct(profile); err != nil {
		return validationError(err)
	}
	if profile.RequiredSkills == nil {
		profile.RequiredSkills = []string{}
	}

	return u.profiles.Upsert(ctx, profile)
}
