package domain

import "context"

// MatchedSkill is a candidate skill relevant to a job match
type MatchedSkill struct {
	Name             string   `json:"name"`
	ProficiencyLevel int      `json:"proficiency_level"`
	ExperienceLevel  string   `json:"experience_level,omitempty"`
	TestScore        *float64 `json:"test_score,omitempty"`
}

// RequiredSkillInfo describes one job requirement as it applied to a match
type RequiredSkillInfo struct {
	Name       string        `json:"name"`
	Level      int           `json:"level"`
	Importance int           `json:"importance"`
	Category   SkillCategory `json:"category"`
}

// MatchCandidate is one ranked entry in a job's match list. Read-only for
// clients; FinalBid reflects the confirmed bid on the server, if any.
type MatchCandidate struct {
	CandidateID    string              `json:"candidate_id"`
	Username       string              `json:"username"`
	Email          string              `json:"email"`
	IsVerified     bool                `json:"is_verified"`
	Role           string              `json:"role"`
	FinalBid       *float64            `json:"final_bid,omitempty"`
	Score          int                 `json:"score"`
	MatchedSkills  []MatchedSkill      `json:"matched_skills"`
	RequiredSkills []RequiredSkillInfo `json:"required_skills"`
}

// MatchFilter is the post-retrieval display filter. Zero value filters
// nothing.
type MatchFilter struct {
	MinScore int
	Skills   []string
}

// MatchPageIncrement is the fixed "Show More" reveal step
const MatchPageIncrement = 3

// ComputeMatchScore scores a candidate 0..100 against job requirements:
// each requirement contributes its importance weighted by how close the
// candidate's proficiency comes to the required level. Candidates missing
// a requirement contribute nothing for it.
func ComputeMatchScore(required []RequiredSkillInfo, skills []MatchedSkill) int {
	if len(required) == 0 {
		return 0
	}
	byName := make(map[string]MatchedSkill, len(skills))
	for _, s := range skills {
		byName[s.Name] = s
	}

	var totalWeight, earned float64
	for _, req := range required {
		weight := float64(req.Importance)
		if weight <= 0 {
			weight = 1
		}
		totalWeight += weight

		have, ok := byName[req.Name]
		if !ok {
			continue
		}
		level := req.Level
		if level < 1 {
			level = 1
		}
		factor := float64(have.ProficiencyLevel) / float64(level)
		if factor > 1 {
			factor = 1
		}
		earned += weight * factor
	}

	score := int(earned/totalWeight*100 + 0.5)
	if score > 100 {
		score = 100
	}
	return score
}

// FilterMatches applies the display filter: keep a candidate iff its score
// meets the threshold AND, when a skill filter is set, every filter skill
// appears among the candidate's matched skills. Order-preserving and pure.
func FilterMatches(matches []MatchCandidate, filter MatchFilter) []MatchCandidate {
	out := make([]MatchCandidate, 0, len(matches))
	for _, m := range matches {
		if m.Score < filter.MinScore {
			continue
		}
		if !hasAllSkills(m.MatchedSkills, filter.Skills) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func hasAllSkills(skills []MatchedSkill, wanted []string) bool {
	for _, name := range wanted {
		found := false
		for _, s := range skills {
			if s.Name == name {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// RevealMatches truncates the list to displayCount entries. displayCount
// only ever grows within one result set; values below one increment are
// bumped to the increment, values past the end return the whole list.
func RevealMatches(matches []MatchCandidate, displayCount int) []MatchCandidate {
	if displayCount < MatchPageIncrement {
		displayCount = MatchPageIncrement
	}
	if displayCount >= len(matches) {
		return matches
	}
	return matches[:displayCount]
}

// MatchRepository fetches raw, unscored match candidates for a job
type MatchRepository interface {
	FetchCandidatesForJob(ctx context.Context, jobID int64) ([]MatchCandidate, error)
}

// MatchingUsecase ranks and filters candidates for a job post
type MatchingUsecase interface {
	// FindMatches returns the scored ranking, best first. An empty jobID is
	// "no filter selected": an empty list with no repository call.
	FindMatches(ctx context.Context, userID, jobID string, filter MatchFilter, displayCount int) ([]MatchCandidate, error)
}
