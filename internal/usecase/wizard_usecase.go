package usecase

import (
	"context"
	"errors"
	"net/http"

	"talentai-backend/internal/catalog"
	"talentai-backend/internal/domain"
	"talentai-backend/pkg/apperror"
	"talentai-backend/pkg/logger"
)

type wizardUsecase struct {
	sessions    domain.WizardSessionRepository
	candidates  domain.CandidateProfileRepository
	companies   domain.CompanyProfileRepository
	frontendURL string
}

func NewWizardUsecase(
	sessions domain.WizardSessionRepository,
	candidates domain.CandidateProfileRepository,
	companies domain.CompanyProfileRepository,
	frontendURL string,
) domain.WizardUsecase {
	return &wizardUsecase{
		sessions:    sessions,
		candidates:  candidates,
		companies:   companies,
		frontendURL: frontendURL,
	}
}

func (u *wizardUsecase) Start(ctx context.Context, userID string) (*domain.WizardView, error) {
	state := domain.NewWizardState(userID)
	if err := u.sessions.Save(ctx, state); err != nil {
		return nil, apperror.Internal(err)
	}
	return view(state), nil
}

func (u *wizardUsecase) Get(ctx context.Context, userID string) (*domain.WizardView, error) {
	state, err := u.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return view(state), nil
}

func (u *wizardUsecase) ChooseType(ctx context.Context, userID string, t domain.UserType) (*domain.WizardView, error) {
	return u.mutate(ctx, userID, func(state *domain.WizardState) error {
		return state.ChooseType(t)
	})
}

// SelectSkill validates the label against the catalog for candidates, then
// delegates to the state machine (which enforces the single-skill limit).
// Companies may also require skills outside the catalog.
func (u *wizardUsecase) SelectSkill(ctx context.Context, userID, label string) (*domain.WizardView, error) {
	return u.mutate(ctx, userID, func(state *domain.WizardState) error {
		if label == "" {
			return errors.New("skill label is required")
		}
		if state.UserType == domain.UserTypeCandidate {
			if _, ok := catalog.Find(label); !ok {
				return errors.New("unknown skill: " + label)
			}
		}
		return state.AddSkill(label)
	})
}

func (u *wizardUsecase) DeselectSkill(ctx context.Context, userID, label string) (*domain.WizardView, error) {
	return u.mutate(ctx, userID, func(state *domain.WizardState) error {
		state.RemoveSkill(label)
		return nil
	})
}

func (u *wizardUsecase) SetHederaExperience(ctx context.Context, userID string, exp domain.HederaExperience) (*domain.WizardView, error) {
	return u.mutate(ctx, userID, func(state *domain.WizardState) error {
		if exp != domain.HederaYes && exp != domain.HederaNo {
			return errors.New("hedera experience must be yes or no")
		}
		state.SetHederaExperience(exp)
		return nil
	})
}

func (u *wizardUsecase) AnswerQuiz(ctx context.Context, userID, questionID string, answer int) (*domain.WizardView, error) {
	return u.mutate(ctx, userID, func(state *domain.WizardState) error {
		state.AnswerQuiz(questionID, answer)
		return nil
	})
}

func (u *wizardUsecase) RateSkill(ctx context.Context, userID, label string, level int) (*domain.WizardView, error) {
	return u.mutate(ctx, userID, func(state *domain.WizardState) error {
		return state.RateSkill(label, level)
	})
}

func (u *wizardUsecase) SetCompanyDetails(ctx context.Context, userID string, details domain.CompanyDetails) (*domain.WizardView, error) {
	return u.mutate(ctx, userID, func(state *domain.WizardState) error {
		state.SetCompanyDetails(details)
		return nil
	})
}

func (u *wizardUsecase) SetExperienceLevel(ctx context.Context, userID, level string) (*domain.WizardView, error) {
	return u.mutate(ctx, userID, func(state *domain.WizardState) error {
		if !domain.IsValidExperienceLevel(level) {
			return errors.New("unknown experience level: " + level)
		}
		state.SetExperienceLevel(level)
		return nil
	})
}

func (u *wizardUsecase) Next(ctx context.Context, userID string) (*domain.WizardView, error) {
	return u.mutate(ctx, userID, func(state *domain.WizardState) error {
		return state.Advance()
	})
}

func (u *wizardUsecase) Back(ctx context.Context, userID string) (*domain.WizardView, error) {
	return u.mutate(ctx, userID, func(state *domain.WizardState) error {
		return state.Regress()
	})
}

// Complete submits the finished wizard. On persistence failure the session
// stays in Review untouched so the user can retry; on success the session
// is discarded and the redirect target returned.
func (u *wizardUsecase) Complete(ctx context.Context, userID, returnURL string) (string, error) {
	state, err := u.load(ctx, userID)
	if err != nil {
		return "", err
	}
	if !state.AtReview() {
		return "", apperror.BadRequest(domain.ErrNotAtReview.Error())
	}

	switch state.UserType {
	case domain.UserTypeCandidate:
		err = u.submitCandidate(ctx, state)
	case domain.UserTypeCompany:
		err = u.submitCompany(ctx, state)
	default:
		return "", apperror.BadRequest(domain.ErrTypeNotSet.Error())
	}
	if err != nil {
		return "", apperror.New(http.StatusInternalServerError, "Failed to save profile: "+err.Error(), err)
	}

	if err := u.sessions.Delete(ctx, userID); err != nil {
		// The profile is saved; a stale session only costs a restart prompt
		logger.Log.Warn("Failed to discard wizard session", "user_id", userID, "error", err)
	}

	return domain.RedirectTarget(u.frontendURL, returnURL, state), nil
}

// submitCandidate upserts the profile with an empty skills array: skill and
// proficiency are attached later by the skill-test results path, so the
// wizard selections only travel in the redirect query parameters.
func (u *wizardUsecase) submitCandidate(ctx context.Context, state *domain.WizardState) error {
	if len(state.QuizAnswers) > 0 {
		correct, total := catalog.ScoreQuiz(state.QuizAnswers)
		logger.Log.Info("Hedera quiz completed", "user_id", state.UserID, "correct", correct, "total", total)
	}
	return u.candidates.Upsert(ctx, &domain.CandidateProfile{
		UserID: state.UserID,
		Skills: []domain.CandidateSkill{},
	})
}

func (u *wizardUsecase) submitCompany(ctx context.Context, state *domain.WizardState) error {
	return u.companies.Upsert(ctx, &domain.CompanyProfile{
		UserID:                  state.UserID,
		Name:                    state.CompanyDetails.Name,
		Industry:                state.CompanyDetails.Industry,
		Size:                    state.CompanyDetails.Size,
		Location:                state.CompanyDetails.Location,
		RequiredSkills:          state.RequiredSkills,
		RequiredExperienceLevel: state.ExperienceLevel,
	})
}

func (u *wizardUsecase) load(ctx context.Context, userID string) (*domain.WizardState, error) {
	state, err := u.sessions.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("No wizard session in progress")
		}
		return nil, apperror.Internal(err)
	}
	return state, nil
}

func (u *wizardUsecase) mutate(ctx context.Context, userID string, fn func(*domain.WizardState) error) (*domain.WizardView, error) {
	state, err := u.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := fn(state); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperror.BadRequest(err.Error())
	}
	if err := u.sessions.Save(ctx, state); err != nil {
		return nil, apperror.Internal(err)
	}
	return view(state), nil
}

func view(state *domain.WizardState) *domain.WizardView {
	return &domain.WizardView{
		State:      state,
		Steps:      state.Steps(),
		Step:       state.CurrentStep(),
		CanAdvance: state.CanAdvance(),
	}
}
