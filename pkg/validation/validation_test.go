package validation_test

import (
	"testing"

	"talentai-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type companyForm struct {
	Name            string `validate:"required,valid_name,no_emoji"`
	ExperienceLevel string `validate:"experience_level"`
}

func newValidate() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestCustomValidators(t *testing.T) {
	v := newValidate()

	cases := []struct {
		name string
		form companyForm
		ok   bool
	}{
		{"plain name", companyForm{Name: "Acme Corp"}, true},
		{"punctuated name", companyForm{Name: "O'Brien & Sons (EU), Ltd."}, true},
		{"accented name", companyForm{Name: "Société Générale"}, true},
		{"emoji name", companyForm{Name: "Acme \U0001F680"}, false},
		{"angle brackets", companyForm{Name: "<script>"}, false},
		{"valid level", companyForm{Name: "Acme", ExperienceLevel: "senior"}, true},
		{"level is case insensitive", companyForm{Name: "Acme", ExperienceLevel: "Senior"}, true},
		{"unknown level", companyForm{Name: "Acme", ExperienceLevel: "guru"}, false},
		{"empty level passes", companyForm{Name: "Acme"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.form)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestSkillCategoryValidator(t *testing.T) {
	v := newValidate()

	type form struct {
		Category string `validate:"skill_category"`
	}
	assert.NoError(t, v.Struct(form{Category: "web3"}))
	assert.NoError(t, v.Struct(form{Category: ""}))
	assert.Error(t, v.Struct(form{Category: "astrology"}))
}

func TestFormatValidationErrors(t *testing.T) {
	v := newValidate()

	err := v.Struct(companyForm{Name: "", ExperienceLevel: "guru"})
	assert.Error(t, err)

	messages := validation.FormatValidationErrors(err)
	assert.Len(t, messages, 2)
	assert.Contains(t, messages[0], "This field is required")
	assert.Contains(t, messages[1], "Experience level")
	assert.Contains(t, messages[1], "entry, junior, mid, senior, lead")
}
