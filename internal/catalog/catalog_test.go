package catalog_test

import (
	"testing"

	"talentai-backend/internal/catalog"
	"talentai-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestCatalogCoversAllCategories(t *testing.T) {
	for _, category := range domain.ValidSkillCategories() {
		assert.NotEmpty(t, catalog.SkillsByCategory(category), "category %s", category)
	}
}

func TestAllSkillsMatchesCategoryUnion(t *testing.T) {
	total := 0
	for _, category := range domain.ValidSkillCategories() {
		total += len(catalog.SkillsByCategory(category))
	}
	assert.Len(t, catalog.AllSkills(), total)
}

func TestFind(t *testing.T) {
	t.Run("Known label", func(t *testing.T) {
		s, ok := catalog.Find("Hedera")
		assert.True(t, ok)
		assert.Equal(t, domain.CategoryWeb3, s.Category)
		assert.Equal(t, "#8259ef", s.ColorHint)
	})

	t.Run("Lookup is exact, not case-insensitive", func(t *testing.T) {
		_, ok := catalog.Find("hedera")
		assert.False(t, ok)
	})

	t.Run("Unknown label", func(t *testing.T) {
		_, ok := catalog.Find("COBOL")
		assert.False(t, ok)
	})
}

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, domain.CategoryDevelopment, catalog.CategoryOf("Go"))
	assert.Equal(t, domain.SkillCategory(""), catalog.CategoryOf("Underwater Basket Weaving"))
}

func TestHederaQuizHidesAnswers(t *testing.T) {
	for _, q := range catalog.HederaQuiz() {
		assert.NotEmpty(t, q.ID)
		assert.NotEmpty(t, q.Prompt)
		assert.GreaterOrEqual(t, len(q.Options), 2)
		assert.Less(t, q.Answer, len(q.Options))
	}
}

func TestScoreQuiz(t *testing.T) {
	questions := catalog.HederaQuiz()

	t.Run("All correct", func(t *testing.T) {
		answers := map[string]int{}
		for _, q := range questions {
			answers[q.ID] = q.Answer
		}
		correct, total := catalog.ScoreQuiz(answers)
		assert.Equal(t, len(questions), total)
		assert.Equal(t, total, correct)
	})

	t.Run("Unanswered and wrong answers earn nothing", func(t *testing.T) {
		answers := map[string]int{
			questions[0].ID: questions[0].Answer,
			questions[1].ID: questions[1].Answer + 1,
			"no-such-id":    0,
		}
		correct, total := catalog.ScoreQuiz(answers)
		assert.Equal(t, len(questions), total)
		assert.Equal(t, 1, correct)
	})
}
