package domain_test

import (
	"testing"

	"talentai-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestComputeSteps(t *testing.T) {
	t.Run("Unset type only shows the type selection", func(t *testing.T) {
		steps := domain.ComputeSteps(domain.UserTypeUnset, false)
		assert.Equal(t, []domain.StepName{domain.StepSelectType}, steps)
	})

	t.Run("Candidate branch without QCM", func(t *testing.T) {
		steps := domain.ComputeSteps(domain.UserTypeCandidate, false)
		assert.Equal(t, []domain.StepName{
			domain.StepSelectType,
			domain.StepSelectSkills,
			domain.StepRateProficiency,
			domain.StepReview,
		}, steps)
	})

	t.Run("Candidate branch with QCM inserts it after skill selection", func(t *testing.T) {
		steps := domain.ComputeSteps(domain.UserTypeCandidate, true)
		assert.Equal(t, []domain.StepName{
			domain.StepSelectType,
			domain.StepSelectSkills,
			domain.StepHederaQCM,
			domain.StepRateProficiency,
			domain.StepReview,
		}, steps)
	})

	t.Run("Company branch ignores the QCM flag", func(t *testing.T) {
		steps := domain.ComputeSteps(domain.UserTypeCompany, true)
		assert.Equal(t, []domain.StepName{
			domain.StepSelectType,
			domain.StepCompanyDetails,
			domain.StepRequiredSkills,
			domain.StepExperienceLevel,
			domain.StepReview,
		}, steps)
	})
}

func TestCandidateSingleSkill(t *testing.T) {
	s := domain.NewWizardState("user1")
	assert.NoError(t, s.ChooseType(domain.UserTypeCandidate))

	assert.NoError(t, s.AddSkill("React"))

	t.Run("Second distinct skill is rejected and the set is unchanged", func(t *testing.T) {
		err := s.AddSkill("Go")
		assert.ErrorIs(t, err, domain.ErrSkillLimit)
		assert.Equal(t, []string{"React"}, s.SelectedSkills)
	})

	t.Run("Re-selecting the same skill is a no-op", func(t *testing.T) {
		assert.NoError(t, s.AddSkill("React"))
		assert.Equal(t, []string{"React"}, s.SelectedSkills)
	})

	t.Run("Deselecting frees the slot", func(t *testing.T) {
		s.RemoveSkill("React")
		assert.NoError(t, s.AddSkill("Go"))
		assert.Equal(t, []string{"Go"}, s.SelectedSkills)
	})
}

func TestCompanyMultipleSkills(t *testing.T) {
	s := domain.NewWizardState("corp1")
	assert.NoError(t, s.ChooseType(domain.UserTypeCompany))

	assert.NoError(t, s.AddSkill("React"))
	assert.NoError(t, s.AddSkill("Go"))
	assert.NoError(t, s.AddSkill("React")) // duplicate ignored
	assert.Equal(t, []string{"React", "Go"}, s.RequiredSkills)
}

func TestAddSkillBeforeType(t *testing.T) {
	s := domain.NewWizardState("user1")
	assert.ErrorIs(t, s.AddSkill("React"), domain.ErrTypeNotSet)
}

func TestHederaQCMStep(t *testing.T) {
	s := domain.NewWizardState("user1")
	assert.NoError(t, s.ChooseType(domain.UserTypeCandidate))
	assert.NoError(t, s.AddSkill(domain.HederaSkillLabel))

	t.Run("QCM absent until experience is confirmed", func(t *testing.T) {
		assert.NotContains(t, s.Steps(), domain.StepHederaQCM)
	})

	t.Run("Answering yes inserts the QCM step", func(t *testing.T) {
		s.SetHederaExperience(domain.HederaYes)
		assert.Contains(t, s.Steps(), domain.StepHederaQCM)
	})

	t.Run("Answering no removes it again", func(t *testing.T) {
		s.SetHederaExperience(domain.HederaNo)
		assert.NotContains(t, s.Steps(), domain.StepHederaQCM)
	})

	t.Run("Non-Hedera skill never triggers the QCM", func(t *testing.T) {
		s.RemoveSkill(domain.HederaSkillLabel)
		assert.NoError(t, s.AddSkill("React"))
		s.SetHederaExperience(domain.HederaYes)
		assert.NotContains(t, s.Steps(), domain.StepHederaQCM)
	})
}

func TestIndexClampWhenStepsShrink(t *testing.T) {
	s := domain.NewWizardState("user1")
	assert.NoError(t, s.ChooseType(domain.UserTypeCandidate))
	assert.NoError(t, s.AddSkill(domain.HederaSkillLabel))
	s.SetHederaExperience(domain.HederaYes)

	// walk to the last step of the five-step sequence
	for s.CurrentStepIndex < len(s.Steps())-1 {
		assert.NoError(t, s.Advance())
	}
	assert.True(t, s.AtReview())

	// shrinking the step list must keep the index in range
	s.SetHederaExperience(domain.HederaNo)
	assert.Less(t, s.CurrentStepIndex, len(s.Steps()))
	assert.True(t, s.AtReview())
}

func TestAdvanceGuards(t *testing.T) {
	t.Run("Cannot advance past skill selection with no skill", func(t *testing.T) {
		s := domain.NewWizardState("user1")
		assert.NoError(t, s.ChooseType(domain.UserTypeCandidate))
		assert.ErrorIs(t, s.Advance(), domain.ErrStepIncomplete)
	})

	t.Run("Cannot advance past company details until all fields are filled", func(t *testing.T) {
		s := domain.NewWizardState("corp1")
		assert.NoError(t, s.ChooseType(domain.UserTypeCompany))
		s.SetCompanyDetails(domain.CompanyDetails{Name: "Acme"})
		assert.ErrorIs(t, s.Advance(), domain.ErrStepIncomplete)

		s.SetCompanyDetails(domain.CompanyDetails{Name: "Acme", Industry: "Tech", Size: "10-50", Location: "Paris"})
		assert.NoError(t, s.Advance())
		assert.Equal(t, domain.StepRequiredSkills, s.CurrentStep())
	})

	t.Run("Advance from review fails", func(t *testing.T) {
		s := domain.NewWizardState("user1")
		assert.NoError(t, s.ChooseType(domain.UserTypeCandidate))
		assert.NoError(t, s.AddSkill("Go"))
		assert.NoError(t, s.Advance())
		assert.NoError(t, s.Advance())
		assert.True(t, s.AtReview())
		assert.ErrorIs(t, s.Advance(), domain.ErrAtLastStep)
	})
}

func TestBackPreservesData(t *testing.T) {
	s := domain.NewWizardState("user1")
	assert.NoError(t, s.ChooseType(domain.UserTypeCandidate))
	assert.NoError(t, s.AddSkill("Go"))
	assert.NoError(t, s.Advance())
	assert.NoError(t, s.RateSkill("Go", 4))

	assert.NoError(t, s.Regress())
	assert.Equal(t, domain.StepSelectSkills, s.CurrentStep())
	assert.Equal(t, []string{"Go"}, s.SelectedSkills)
	assert.Equal(t, 4, s.Proficiency["Go"])

	t.Run("Back from the first step fails", func(t *testing.T) {
		assert.NoError(t, s.Regress())
		assert.ErrorIs(t, s.Regress(), domain.ErrAtFirstStep)
	})
}

func TestRateSkillValidation(t *testing.T) {
	s := domain.NewWizardState("user1")
	assert.NoError(t, s.ChooseType(domain.UserTypeCandidate))
	assert.NoError(t, s.AddSkill("Go"))

	assert.Error(t, s.RateSkill("Go", 0))
	assert.Error(t, s.RateSkill("Go", 6))
	assert.Error(t, s.RateSkill("React", 3))
	assert.NoError(t, s.RateSkill("Go", 5))
}

func TestRedirectTarget(t *testing.T) {
	front := "https://app.talentai.app"

	t.Run("Explicit return URL always wins", func(t *testing.T) {
		s := domain.NewWizardState("user1")
		assert.NoError(t, s.ChooseType(domain.UserTypeCompany))
		got := domain.RedirectTarget(front, "/jobs/42", s)
		assert.Equal(t, "/jobs/42", got)
	})

	t.Run("Company lands on the company dashboard", func(t *testing.T) {
		s := domain.NewWizardState("corp1")
		assert.NoError(t, s.ChooseType(domain.UserTypeCompany))
		got := domain.RedirectTarget(front, "", s)
		assert.Equal(t, front+"/dashboard/company", got)
	})

	t.Run("Candidate continues to the skill test with skill and proficiency", func(t *testing.T) {
		s := domain.NewWizardState("user1")
		assert.NoError(t, s.ChooseType(domain.UserTypeCandidate))
		assert.NoError(t, s.AddSkill("Go"))
		assert.NoError(t, s.RateSkill("Go", 3))
		got := domain.RedirectTarget(front, "", s)
		assert.Equal(t, front+"/skill-test?proficiency=3&skill=Go", got)
	})
}
