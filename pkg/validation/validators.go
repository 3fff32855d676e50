package validation

import (
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"

	"talentai-backend/internal/domain"
)

// Regex patterns
var (
	// Allow letters, numbers, spaces, and common professional punctuation: . ' - / & ( ) ,
	nameRegex = regexp.MustCompile(`^[\p{L}0-9 .'/&(),-]+$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("no_emoji", NoEmoji)
	_ = v.RegisterValidation("experience_level", ExperienceLevel)
	_ = v.RegisterValidation("skill_category", SkillCategoryTag)
}

// ValidName validates that a string contains only valid name characters
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return nameRegex.MatchString(val)
}

// NoEmoji validates that a string does not contain emoji characters
func NoEmoji(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	for _, r := range val {
		if r > 0x1F000 {
			return false // Supplementary characters (mostly emoji/symbols)
		}
		if unicode.In(r, unicode.So, unicode.Sk) {
			return false
		}
	}
	return true
}

// ExperienceLevel accepts the five ladder values, case-insensitive
func ExperienceLevel(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return domain.IsValidExperienceLevel(val)
}

// SkillCategoryTag accepts a defined skill category
func SkillCategoryTag(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return domain.SkillCategory(val).IsValid()
}
