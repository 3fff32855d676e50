package usecase_test

import (
	"context"
	"testing"
	"time"

	"talentai-backend/internal/domain"
	"talentai-backend/internal/repository/session"
	"talentai-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const frontend = "https://app.talentai.app"

func newWizardFixture() (*MockCandidateProfileRepo, *MockCompanyProfileRepo, domain.WizardUsecase) {
	candidates := new(MockCandidateProfileRepo)
	companies := new(MockCompanyProfileRepo)
	sessions := session.NewMemoryStore(time.Hour)
	uc := usecase.NewWizardUsecase(sessions, candidates, companies, frontend)
	return candidates, companies, uc
}

func TestWizardCandidateFlow(t *testing.T) {
	ctx := context.Background()
	candidates, _, uc := newWizardFixture()

	view, err := uc.Start(ctx, "user1")
	assert.NoError(t, err)
	assert.Equal(t, domain.StepSelectType, view.Step)
	assert.False(t, view.CanAdvance)

	view, err = uc.ChooseType(ctx, "user1", domain.UserTypeCandidate)
	assert.NoError(t, err)
	assert.Equal(t, domain.StepSelectSkills, view.Step)

	t.Run("Unknown skill is rejected", func(t *testing.T) {
		_, err := uc.SelectSkill(ctx, "user1", "COBOL")
		assert.Error(t, err)
	})

	view, err = uc.SelectSkill(ctx, "user1", "Go")
	assert.NoError(t, err)
	assert.True(t, view.CanAdvance)

	t.Run("Second skill hits the single-skill limit", func(t *testing.T) {
		_, err := uc.SelectSkill(ctx, "user1", "React")
		assert.Error(t, err)
	})

	view, err = uc.Next(ctx, "user1")
	assert.NoError(t, err)
	assert.Equal(t, domain.StepRateProficiency, view.Step)

	_, err = uc.RateSkill(ctx, "user1", "Go", 4)
	assert.NoError(t, err)

	view, err = uc.Next(ctx, "user1")
	assert.NoError(t, err)
	assert.Equal(t, domain.StepReview, view.Step)

	candidates.On("Upsert", mock.Anything, mock.MatchedBy(func(p *domain.CandidateProfile) bool {
		return p.UserID == "user1" && len(p.Skills) == 0
	})).Return(nil)

	redirect, err := uc.Complete(ctx, "user1", "")
	assert.NoError(t, err)
	assert.Equal(t, frontend+"/skill-test?proficiency=4&skill=Go", redirect)
	candidates.AssertExpectations(t)

	t.Run("Session is discarded after completion", func(t *testing.T) {
		_, err := uc.Get(ctx, "user1")
		assert.Error(t, err)
	})
}

func TestWizardCompanyFlow(t *testing.T) {
	ctx := context.Background()
	_, companies, uc := newWizardFixture()

	_, err := uc.Start(ctx, "corp1")
	assert.NoError(t, err)
	_, err = uc.ChooseType(ctx, "corp1", domain.UserTypeCompany)
	assert.NoError(t, err)

	_, err = uc.SetCompanyDetails(ctx, "corp1", domain.CompanyDetails{
		Name: "Acme", Industry: "Tech", Size: "10-50", Location: "Paris",
	})
	assert.NoError(t, err)
	_, err = uc.Next(ctx, "corp1")
	assert.NoError(t, err)

	// companies may require multiple skills, catalog or free-form
	for _, label := range []string{"Go", "React", "Obscure Framework"} {
		_, err = uc.SelectSkill(ctx, "corp1", label)
		assert.NoError(t, err)
	}
	_, err = uc.Next(ctx, "corp1")
	assert.NoError(t, err)

	_, err = uc.SetExperienceLevel(ctx, "corp1", "senior")
	assert.NoError(t, err)
	view, err := uc.Next(ctx, "corp1")
	assert.NoError(t, err)
	assert.Equal(t, domain.StepReview, view.Step)

	companies.On("Upsert", mock.Anything, mock.MatchedBy(func(p *domain.CompanyProfile) bool {
		return p.UserID == "corp1" &&
			assert.ObjectsAreEqual([]string{"Go", "React", "Obscure Framework"}, p.RequiredSkills) &&
			p.RequiredExperienceLevel == "senior"
	})).Return(nil)

	redirect, err := uc.Complete(ctx, "corp1", "")
	assert.NoError(t, err)
	assert.Equal(t, frontend+"/dashboard/company", redirect)
	companies.AssertExpectations(t)
}

func TestWizardCompleteGuards(t *testing.T) {
	ctx := context.Background()

	t.Run("Complete outside the review step fails", func(t *testing.T) {
		candidates, _, uc := newWizardFixture()
		_, err := uc.Start(ctx, "user1")
		assert.NoError(t, err)
		_, err = uc.ChooseType(ctx, "user1", domain.UserTypeCandidate)
		assert.NoError(t, err)

		_, err = uc.Complete(ctx, "user1", "")
		assert.Error(t, err)
		candidates.AssertNotCalled(t, "Upsert")
	})

	t.Run("Complete without a session fails", func(t *testing.T) {
		_, _, uc := newWizardFixture()
		_, err := uc.Complete(ctx, "ghost", "")
		assert.Error(t, err)
	})

	t.Run("Explicit return URL wins over the branch default", func(t *testing.T) {
		_, companies, uc := newWizardFixture()
		_, err := uc.Start(ctx, "corp1")
		assert.NoError(t, err)
		_, err = uc.ChooseType(ctx, "corp1", domain.UserTypeCompany)
		assert.NoError(t, err)
		_, err = uc.SetCompanyDetails(ctx, "corp1", domain.CompanyDetails{
			Name: "Acme", Industry: "Tech", Size: "10-50", Location: "Paris",
		})
		assert.NoError(t, err)
		_, err = uc.Next(ctx, "corp1")
		assert.NoError(t, err)
		_, err = uc.SelectSkill(ctx, "corp1", "Go")
		assert.NoError(t, err)
		_, err = uc.Next(ctx, "corp1")
		assert.NoError(t, err)
		_, err = uc.SetExperienceLevel(ctx, "corp1", "mid")
		assert.NoError(t, err)
		_, err = uc.Next(ctx, "corp1")
		assert.NoError(t, err)

		companies.On("Upsert", mock.Anything, mock.Anything).Return(nil)
		redirect, err := uc.Complete(ctx, "corp1", "/welcome-back")
		assert.NoError(t, err)
		assert.Equal(t, "/welcome-back", redirect)
	})
}

func TestWizardBackNeverLosesData(t *testing.T) {
	ctx := context.Background()
	_, _, uc := newWizardFixture()

	_, err := uc.Start(ctx, "user1")
	assert.NoError(t, err)
	_, err = uc.ChooseType(ctx, "user1", domain.UserTypeCandidate)
	assert.NoError(t, err)
	_, err = uc.SelectSkill(ctx, "user1", "Go")
	assert.NoError(t, err)
	_, err = uc.Next(ctx, "user1")
	assert.NoError(t, err)
	_, err = uc.RateSkill(ctx, "user1", "Go", 5)
	assert.NoError(t, err)

	view, err := uc.Back(ctx, "user1")
	assert.NoError(t, err)
	assert.Equal(t, domain.StepSelectSkills, view.Step)
	assert.Equal(t, []string{"Go"}, view.State.SelectedSkills)
	assert.Equal(t, 5, view.State.Proficiency["Go"])
}
