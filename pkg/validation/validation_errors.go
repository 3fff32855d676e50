package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// Candidate profile fields
	"Title":            "Profile title",
	"Bio":              "Bio",
	"Skills":           "Skills",
	"ProficiencyLevel": "Proficiency level",
	"ExperienceLevel":  "Experience level",
	"TestScore":        "Test score",

	// Company profile fields
	"Name":                    "Company name",
	"Industry":                "Industry",
	"Size":                    "Company size",
	"Location":                "Location",
	"RequiredSkills":          "Required skills",
	"RequiredExperienceLevel": "Required experience level",

	// Auth fields
	"Email":    "Email",
	"Username": "Username",
	"Password": "Password",
	"Role":     "Role",

	// Job fields
	"Description": "Description",
	"SalaryMin":   "Minimum salary",
	"SalaryMax":   "Maximum salary",

	// Bid fields
	"Amount":      "Bid amount",
	"JobID":       "Job",
	"CandidateID": "Candidate",

	// Skill test fields
	"Skill":       "Skill",
	"Proficiency": "Proficiency",
	"Score":       "Score",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: This field is required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s: Must be at least %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: Must be at most %s", label, param)

	case "oneof":
		return fmt.Sprintf("%s: Must be one of: %s", label, strings.ReplaceAll(param, " ", ", "))

	case "email":
		return fmt.Sprintf("%s: Invalid email format", label)

	case "valid_name":
		return fmt.Sprintf("%s: Only letters, spaces, and common punctuation allowed", label)

	case "no_emoji":
		return fmt.Sprintf("%s: Emoji and special symbols are not allowed", label)

	case "experience_level":
		return fmt.Sprintf("%s: Must be one of: entry, junior, mid, senior, lead", label)

	case "skill_category":
		return fmt.Sprintf("%s: Unknown skill category", label)

	default:
		return fmt.Sprintf("%s: Validation failed (%s)", label, e.Tag())
	}
}

func getFieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}
