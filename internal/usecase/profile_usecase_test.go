package usecase_test

import (
	"context"
	"testing"

	"talentai-backend/internal/domain"
	"talentai-backend/internal/usecase"
	"talentai-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const passingScore = 70

func authedCtx(userID string) context.Context {
	return context.WithValue(context.Background(), domain.KeyUserID, userID)
}

func newValidate() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func newProfileFixture() (*MockCandidateProfileRepo, *MockUserRepo, domain.CandidateProfileUsecase) {
	profiles := new(MockCandidateProfileRepo)
	users := new(MockUserRepo)
	uc := usecase.NewCandidateProfileUsecase(profiles, users, newValidate(), passingScore)
	return profiles, users, uc
}

func TestCandidateProfileIDOR(t *testing.T) {
	t.Run("Should fail when context user does not match argument user", func(t *testing.T) {
		_, _, uc := newProfileFixture()
		_, err := uc.GetMyProfile(authedCtx("user1"), "user2")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only view your own profile")
	})

	t.Run("Should fail without authentication", func(t *testing.T) {
		_, _, uc := newProfileFixture()
		_, err := uc.GetMyProfile(context.Background(), "user1")
		assert.Error(t, err)
	})

	t.Run("Upsert forces the user id from context", func(t *testing.T) {
		profiles, _, uc := newProfileFixture()
		profiles.On("Upsert", mock.Anything, mock.MatchedBy(func(p *domain.CandidateProfile) bool {
			return p.UserID == "user1"
		})).Return(nil)

		err := uc.UpsertProfile(authedCtx("user1"), &domain.CandidateProfile{
			UserID: "victim",
			Title:  "Backend Engineer",
		})
		assert.NoError(t, err)
		profiles.AssertExpectations(t)
	})
}

func TestSubmitTestResult(t *testing.T) {
	t.Run("Passing score attaches the skill and verifies the account", func(t *testing.T) {
		profiles, users, uc := newProfileFixture()
		profiles.On("AttachSkill", mock.Anything, "user1", mock.MatchedBy(func(s domain.CandidateSkill) bool {
			return s.Name == "Go" && s.ProficiencyLevel == 4 && s.TestScore != nil && *s.TestScore == 85
		})).Return(nil)
		users.On("SetVerified", mock.Anything, "user1", true).Return(nil)

		err := uc.SubmitTestResult(authedCtx("user1"), "user1", &domain.SkillTestResult{
			Skill: "Go", Proficiency: 4, Score: 85,
		})
		assert.NoError(t, err)
		users.AssertExpectations(t)
	})

	t.Run("Failing score attaches the skill without verification", func(t *testing.T) {
		profiles, users, uc := newProfileFixture()
		profiles.On("AttachSkill", mock.Anything, "user1", mock.Anything).Return(nil)

		err := uc.SubmitTestResult(authedCtx("user1"), "user1", &domain.SkillTestResult{
			Skill: "Go", Proficiency: 4, Score: 40,
		})
		assert.NoError(t, err)
		users.AssertNotCalled(t, "SetVerified")
	})

	t.Run("Unknown skill is rejected", func(t *testing.T) {
		profiles, _, uc := newProfileFixture()

		err := uc.SubmitTestResult(authedCtx("user1"), "user1", &domain.SkillTestResult{
			Skill: "COBOL", Proficiency: 3, Score: 90,
		})
		assert.Error(t, err)
		profiles.AssertNotCalled(t, "AttachSkill")
	})

	t.Run("Submitting for another user is forbidden", func(t *testing.T) {
		profiles, _, uc := newProfileFixture()

		err := uc.SubmitTestResult(authedCtx("user1"), "user2", &domain.SkillTestResult{
			Skill: "Go", Proficiency: 3, Score: 90,
		})
		assert.Error(t, err)
		profiles.AssertNotCalled(t, "AttachSkill")
	})
}

func TestCompanyProfileUpsert(t *testing.T) {
	t.Run("Required skills are stored exactly as submitted", func(t *testing.T) {
		companies := new(MockCompanyProfileRepo)
		uc := usecase.NewCompanyProfileUsecase(companies, newValidate())

		submitted := []string{"React", "Go", "Obscure Framework", "go"}
		companies.On("Upsert", mock.Anything, mock.MatchedBy(func(p *domain.CompanyProfile) bool {
			return assert.ObjectsAreEqual(submitted, p.RequiredSkills)
		})).Return(nil)

		err := uc.UpsertProfile(authedCtx("corp1"), &domain.CompanyProfile{
			Name:                    "Acme",
			Industry:                "Tech",
			Size:                    "10-50",
			Location:                "Paris",
			RequiredSkills:          submitted,
			RequiredExperienceLevel: "senior",
		})
		assert.NoError(t, err)
		companies.AssertExpectations(t)
	})

	t.Run("Bad experience level is rejected", func(t *testing.T) {
		companies := new(MockCompanyProfileRepo)
		uc := usecase.NewCompanyProfileUsecase(companies, newValidate())

		err := uc.UpsertProfile(authedCtx("corp1"), &domain.CompanyProfile{
			Name:                    "Acme",
			Industry:                "Tech",
			Size:                    "10-50",
			Location:                "Paris",
			RequiredExperienceLevel: "wizard",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Required experience level")
		assert.Contains(t, err.Error(), "entry, junior, mid, senior, lead")
		companies.AssertNotCalled(t, "Upsert")
	})

	t.Run("Emoji in the company name is rejected with a labelled message", func(t *testing.T) {
		companies := new(MockCompanyProfileRepo)
		uc := usecase.NewCompanyProfileUsecase(companies, newValidate())

		err := uc.UpsertProfile(authedCtx("corp1"), &domain.CompanyProfile{
			Name:     "Acme \U0001F680",
			Industry: "Tech",
			Size:     "10-50",
			Location: "Paris",
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Company name")
		companies.AssertNotCalled(t, "Upsert")
	})
}
