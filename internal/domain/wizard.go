package domain

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"time"
)

// UserType selects the wizard branch
type UserType string

const (
	UserTypeUnset     UserType = ""
	UserTypeCandidate UserType = "candidate"
	UserTypeCompany   UserType = "company"
)

// IsValid checks if the user type is a selectable branch (unset is not)
func (t UserType) IsValid() bool {
	return t == UserTypeCandidate || t == UserTypeCompany
}

// StepName identifies a wizard state
type StepName string

const (
	StepSelectType      StepName = "select_type"
	StepSelectSkills    StepName = "select_skills"
	StepHederaQCM       StepName = "hedera_qcm"
	StepRateProficiency StepName = "rate_proficiency"
	StepCompanyDetails  StepName = "company_details"
	StepRequiredSkills  StepName = "required_skills"
	StepExperienceLevel StepName = "experience_level"
	StepReview          StepName = "review"
)

// HederaExperience answers the "have you worked with Hedera?" question
type HederaExperience string

const (
	HederaUnset HederaExperience = ""
	HederaYes   HederaExperience = "yes"
	HederaNo    HederaExperience = "no"
)

// HederaSkillLabel is the catalog skill that unlocks the QCM step
const HederaSkillLabel = "Hedera"

// Wizard domain errors
var (
	ErrSkillLimit     = errors.New("candidates may select only one skill at a time")
	ErrStepIncomplete = errors.New("current step is incomplete")
	ErrAtFirstStep    = errors.New("already at the first step")
	ErrAtLastStep     = errors.New("already at the last step")
	ErrNotAtReview    = errors.New("wizard can only be completed from the review step")
	ErrTypeNotSet     = errors.New("user type has not been selected")
	ErrInvalidType    = errors.New("user type must be candidate or company")
)

// CompanyDetails collects the company branch form fields
type CompanyDetails struct {
	Name     string `json:"name"`
	Industry string `json:"industry"`
	Size     string `json:"size"`
	Location string `json:"location"`
}

// Complete reports whether all four fields are filled
func (d CompanyDetails) Complete() bool {
	return d.Name != "" && d.Industry != "" && d.Size != "" && d.Location != ""
}

// WizardState is the server-held session for one user's onboarding run.
// It is mutated exclusively through its methods so the step list and
// index stay consistent.
type WizardState struct {
	UserID           string   `json:"user_id"`
	UserType         UserType `json:"user_type"`
	CurrentStepIndex int      `json:"current_step_index"`

	// Candidate branch
	SelectedSkills   []string         `json:"selected_skills,omitempty"`
	HederaExperience HederaExperience `json:"hedera_experience,omitempty"`
	QuizAnswers      map[string]int   `json:"quiz_answers,omitempty"`
	Proficiency      map[string]int   `json:"proficiency,omitempty"`

	// Company branch
	CompanyDetails  CompanyDetails `json:"company_details,omitempty"`
	RequiredSkills  []string       `json:"required_skills,omitempty"`
	ExperienceLevel string         `json:"experience_level,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewWizardState creates an empty session positioned at SelectType
func NewWizardState(userID string) *WizardState {
	now := time.Now()
	return &WizardState{
		UserID:      userID,
		QuizAnswers: map[string]int{},
		Proficiency: map[string]int{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ComputeSteps derives the step sequence from the branch and whether the
// Hedera QCM applies. Pure and deterministic; called on every state change
// rather than cached so the list can never drift from the inputs.
func ComputeSteps(t UserType, hederaQCM bool) []StepName {
	switch t {
	case UserTypeCandidate:
		steps := []StepName{StepSelectType, StepSelectSkills}
		if hederaQCM {
			steps = append(steps, StepHederaQCM)
		}
		return append(steps, StepRateProficiency, StepReview)
	case UserTypeCompany:
		return []StepName{StepSelectType, StepCompanyDetails, StepRequiredSkills, StepExperienceLevel, StepReview}
	default:
		return []StepName{StepSelectType}
	}
}

// hederaQCMRequired: QCM applies only when "Hedera" is among the selected
// skills AND the user claims prior experience
func (s *WizardState) hederaQCMRequired() bool {
	if s.HederaExperience != HederaYes {
		return false
	}
	for _, skill := range s.SelectedSkills {
		if skill == HederaSkillLabel {
			return true
		}
	}
	return false
}

// Steps returns the current step sequence, recomputed from state
func (s *WizardState) Steps() []StepName {
	return ComputeSteps(s.UserType, s.hederaQCMRequired())
}

// CurrentStep returns the step at the current index
func (s *WizardState) CurrentStep() StepName {
	return s.Steps()[s.CurrentStepIndex]
}

// clampIndex restores the invariant CurrentStepIndex < len(steps) after a
// mutation shrinks the step list (e.g. deselecting Hedera mid-run)
func (s *WizardState) clampIndex() {
	if max := len(s.Steps()) - 1; s.CurrentStepIndex > max {
		s.CurrentStepIndex = max
	}
}

// ChooseType sets the branch and immediately advances past SelectType.
// Changing type mid-run resets the index bookkeeping to the branch start.
func (s *WizardState) ChooseType(t UserType) error {
	if !t.IsValid() {
		return ErrInvalidType
	}
	s.UserType = t
	s.CurrentStepIndex = 1
	s.touch()
	return nil
}

// AddSkill records a skill selection. Candidates are limited to a single
// skill: a second distinct selection is rejected and the set is left
// unchanged; re-selecting the same skill is a no-op.
func (s *WizardState) AddSkill(label string) error {
	switch s.UserType {
	case UserTypeCandidate:
		for _, existing := range s.SelectedSkills {
			if existing == label {
				return nil
			}
		}
		if len(s.SelectedSkills) >= 1 {
			return ErrSkillLimit
		}
		s.SelectedSkills = append(s.SelectedSkills, label)
	case UserTypeCompany:
		for _, existing := range s.RequiredSkills {
			if existing == label {
				return nil
			}
		}
		s.RequiredSkills = append(s.RequiredSkills, label)
	default:
		return ErrTypeNotSet
	}
	s.touch()
	return nil
}

// RemoveSkill drops a previously selected skill and its proficiency rating
func (s *WizardState) RemoveSkill(label string) {
	s.SelectedSkills = removeString(s.SelectedSkills, label)
	s.RequiredSkills = removeString(s.RequiredSkills, label)
	delete(s.Proficiency, label)
	s.clampIndex()
	s.touch()
}

// SetHederaExperience records the yes/no answer and reclamps the index
// since the answer can add or remove the QCM step
func (s *WizardState) SetHederaExperience(exp HederaExperience) {
	s.HederaExperience = exp
	s.clampIndex()
	s.touch()
}

// AnswerQuiz stores a raw QCM answer keyed by question id
func (s *WizardState) AnswerQuiz(questionID string, answer int) {
	if s.QuizAnswers == nil {
		s.QuizAnswers = map[string]int{}
	}
	s.QuizAnswers[questionID] = answer
	s.touch()
}

// RateSkill records a 1..5 proficiency for a selected skill
func (s *WizardState) RateSkill(label string, level int) error {
	if level < 1 || level > 5 {
		return errors.New("proficiency must be between 1 and 5")
	}
	found := false
	for _, skill := range s.SelectedSkills {
		if skill == label {
			found = true
			break
		}
	}
	if !found {
		return errors.New("skill is not selected: " + label)
	}
	if s.Proficiency == nil {
		s.Proficiency = map[string]int{}
	}
	s.Proficiency[label] = level
	s.touch()
	return nil
}

// SetCompanyDetails replaces the company form fields
func (s *WizardState) SetCompanyDetails(d CompanyDetails) {
	s.CompanyDetails = d
	s.touch()
}

// SetExperienceLevel records the required experience level verbatim
func (s *WizardState) SetExperienceLevel(level string) {
	s.ExperienceLevel = level
	s.touch()
}

// CanAdvance evaluates the transition guard for the current step
func (s *WizardState) CanAdvance() bool {
	switch s.CurrentStep() {
	case StepSelectType:
		return s.UserType.IsValid()
	case StepSelectSkills:
		return len(s.SelectedSkills) >= 1
	case StepCompanyDetails:
		return s.CompanyDetails.Complete()
	case StepRequiredSkills:
		return len(s.RequiredSkills) >= 1
	case StepExperienceLevel:
		return s.ExperienceLevel != ""
	default:
		return true
	}
}

// Advance moves to the next step if the guard is satisfied
func (s *WizardState) Advance() error {
	if !s.CanAdvance() {
		return ErrStepIncomplete
	}
	if s.CurrentStepIndex >= len(s.Steps())-1 {
		return ErrAtLastStep
	}
	s.CurrentStepIndex++
	s.touch()
	return nil
}

// Regress moves back one step. Previously entered values persist: backward
// navigation never re-validates or clears data.
func (s *WizardState) Regress() error {
	if s.CurrentStepIndex == 0 {
		return ErrAtFirstStep
	}
	s.CurrentStepIndex--
	s.touch()
	return nil
}

// AtReview reports whether the wizard is on its terminal step
func (s *WizardState) AtReview() bool {
	return s.CurrentStep() == StepReview
}

func (s *WizardState) touch() {
	s.UpdatedAt = time.Now()
}

func removeString(list []string, value string) []string {
	out := list[:0]
	for _, v := range list {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}

// RedirectTarget resolves the post-completion destination. An explicit
// returnURL always wins; otherwise companies land on their dashboard and
// candidates continue to the skill test, carrying skill and proficiency
// as query parameters.
func RedirectTarget(frontendURL, returnURL string, s *WizardState) string {
	if returnURL != "" {
		return returnURL
	}
	if s.UserType == UserTypeCompany {
		return frontendURL + "/dashboard/company"
	}
	q := url.Values{}
	if len(s.SelectedSkills) > 0 {
		skill := s.SelectedSkills[0]
		q.Set("skill", skill)
		if level, ok := s.Proficiency[skill]; ok {
			q.Set("proficiency", strconv.Itoa(level))
		}
	}
	target := frontendURL + "/skill-test"
	if encoded := q.Encode(); encoded != "" {
		target += "?" + encoded
	}
	return target
}

// WizardView is the session snapshot returned to clients
type WizardView struct {
	State      *WizardState `json:"state"`
	Steps      []StepName   `json:"steps"`
	Step       StepName     `json:"step"`
	CanAdvance bool         `json:"can_advance"`
}

// WizardSessionRepository persists in-progress wizard sessions
type WizardSessionRepository interface {
	Get(ctx context.Context, userID string) (*WizardState, error)
	Save(ctx context.Context, state *WizardState) error
	Delete(ctx context.Context, userID string) error
}

// WizardUsecase drives the onboarding wizard
type WizardUsecase interface {
	Start(ctx context.Context, userID string) (*WizardView, error)
	Get(ctx context.Context, userID string) (*WizardView, error)
	ChooseType(ctx context.Context, userID string, t UserType) (*WizardView, error)
	SelectSkill(ctx context.Context, userID, label string) (*WizardView, error)
	DeselectSkill(ctx context.Context, userID, label string) (*WizardView, error)
	SetHederaExperience(ctx context.Context, userID string, exp HederaExperience) (*WizardView, error)
	AnswerQuiz(ctx context.Context, userID, questionID string, answer int) (*WizardView, error)
	RateSkill(ctx context.Context, userID, label string, level int) (*WizardView, error)
	SetCompanyDetails(ctx context.Context, userID string, details CompanyDetails) (*WizardView, error)
	SetExperienceLevel(ctx context.Context, userID, level string) (*WizardView, error)
	Next(ctx context.Context, userID string) (*WizardView, error)
	Back(ctx context.Context, userID string) (*WizardView, error)
	Complete(ctx context.Context, userID, returnURL string) (redirect string, err error)
}
