package usecase

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"

	"talentai-backend/internal/catalog"
	"talentai-backend/internal/domain"
	"talentai-backend/pkg/apperror"
)

type matchingUsecase struct {
	matchRepo          domain.MatchRepository
	jobRepo            domain.JobRepository
	companyProfileRepo domain.CompanyProfileRepository
}

func NewMatchingUsecase(
	matchRepo domain.MatchRepository,
	jobRepo domain.JobRepository,
	companyProfileRepo domain.CompanyProfileRepository,
) domain.MatchingUsecase {
	return &matchingUsecase{
		matchRepo:          matchRepo,
		jobRepo:            jobRepo,
		companyProfileRepo: companyProfileRepo,
	}
}

// FindMatches returns the scored candidate ranking for a job, filtered and
// truncated for display. An empty jobID means "no filter selected" and
// short-circuits to an empty list without touching any repository.
func (u *matchingUsecase) FindMatches(ctx context.Context, userID, jobID string, filter domain.MatchFilter, displayCount int) ([]domain.MatchCandidate, error) {
	if strings.TrimSpace(jobID) == "" {
		return []domain.MatchCandidate{}, nil
	}
	id, err := strconv.ParseInt(jobID, 10, 64)
	if err != nil {
		return nil, apperror.BadRequest("Invalid job id: " + jobID)
	}

	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}

	company, err := u.companyProfileRepo.GetByID(ctx, job.CompanyID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if company.UserID != userID {
		return nil, apperror.Forbidden("You can only view matches for your own job posts")
	}

	required := requirementsOf(company)

	candidates, err := u.matchRepo.FetchCandidatesForJob(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	for i := range candidates {
		candidates[i].RequiredSkills = required
		candidates[i].Score = domain.ComputeMatchScore(required, candidates[i].MatchedSkills)
	}

	// Rank best first; stable so equal scores keep repository order
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	filtered := domain.FilterMatches(candidates, filter)
	return domain.RevealMatches(filtered, displayCount), nil
}

// requirementsOf expands the company's stored skill names into requirement
// records: the required level derives from the company's experience level,
// the category from the catalog (empty for free-form skills).
func requirementsOf(company *domain.CompanyProfile) []domain.RequiredSkillInfo {
	level := levelRank(company.RequiredExperienceLevel)
	required := make([]domain.RequiredSkillInfo, 0, len(company.RequiredSkills))
	for _, name := range company.RequiredSkills {
		required = append(required, domain.RequiredSkillInfo{
			Name:       name,
			Level:      level,
			Importance: 1,
			Category:   catalog.CategoryOf(name),
		})
	}
	return required
}

// levelRank maps an experience level to a 1..5 proficiency requirement
func levelRank(level string) int {
	switch strings.ToLower(level) {
	case "entry":
		return 1
	case "junior":
		return 2
	case "mid":
		return 3
	case "senior":
		return 4
	case "lead":
		return 5
	default:
		return 3
	}
}
