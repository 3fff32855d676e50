package domain

import "strings"

// SkillCategory groups catalog skills into selectable sections
type SkillCategory string

const (
	CategoryDevelopment SkillCategory = "development"
	CategoryWeb3        SkillCategory = "web3"
	CategoryAI          SkillCategory = "ai"
	CategoryMarketing   SkillCategory = "marketing"
	CategoryQA          SkillCategory = "qa"
	CategoryBusiness    SkillCategory = "business"
)

// ValidSkillCategories returns all defined categories in display order
func ValidSkillCategories() []SkillCategory {
	return []SkillCategory{
		CategoryDevelopment, CategoryWeb3, CategoryAI,
		CategoryMarketing, CategoryQA, CategoryBusiness,
	}
}

// IsValid checks if the category is defined
func (c SkillCategory) IsValid() bool {
	for _, valid := range ValidSkillCategories() {
		if c == valid {
			return true
		}
	}
	return false
}

// SkillDescriptor is an immutable catalog entry, loaded once at process start
type SkillDescriptor struct {
	Label     string        `json:"label"`
	Category  SkillCategory `json:"category"`
	ColorHint string        `json:"color_hint"`
}

// ExperienceLevel values accepted for company requirements.
// Matching is case-insensitive but the stored value is kept verbatim.
var validExperienceLevels = map[string]bool{
	"entry": true, "junior": true, "mid": true, "senior": true, "lead": true,
}

func IsValidExperienceLevel(level string) bool {
	return validExperienceLevels[strings.ToLower(level)]
}
