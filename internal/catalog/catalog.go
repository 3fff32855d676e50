// Package catalog holds the static skill taxonomy and the Hedera quiz
// question bank. Both are process-wide constants: loaded once, never
// mutated, safe for concurrent reads.
package catalog

import (
	"talentai-backend/internal/domain"
)

// skillsByCategory is the full taxonomy in display order per category.
var skillsByCategory = map[domain.SkillCategory][]domain.SkillDescriptor{
	domain.CategoryDevelopment: {
		{Label: "JavaScript", Category: domain.CategoryDevelopment, ColorHint: "#f7df1e"},
		{Label: "TypeScript", Category: domain.CategoryDevelopment, ColorHint: "#3178c6"},
		{Label: "React", Category: domain.CategoryDevelopment, ColorHint: "#61dafb"},
		{Label: "Node.js", Category: domain.CategoryDevelopment, ColorHint: "#339933"},
		{Label: "Python", Category: domain.CategoryDevelopment, ColorHint: "#3776ab"},
		{Label: "Go", Category: domain.CategoryDevelopment, ColorHint: "#00add8"},
		{Label: "Java", Category: domain.CategoryDevelopment, ColorHint: "#e76f00"},
		{Label: "Docker", Category: domain.CategoryDevelopment, ColorHint: "#2496ed"},
		{Label: "Kubernetes", Category: domain.CategoryDevelopment, ColorHint: "#326ce5"},
		{Label: "SQL", Category: domain.CategoryDevelopment, ColorHint: "#336791"},
	},
	domain.CategoryWeb3: {
		{Label: "Solidity", Category: domain.CategoryWeb3, ColorHint: "#363636"},
		{Label: "Hedera", Category: domain.CategoryWeb3, ColorHint: "#8259ef"},
		{Label: "Ethereum", Category: domain.CategoryWeb3, ColorHint: "#627eea"},
		{Label: "Smart Contracts", Category: domain.CategoryWeb3, ColorHint: "#16c784"},
		{Label: "DeFi", Category: domain.CategoryWeb3, ColorHint: "#ff007a"},
	},
	domain.CategoryAI: {
		{Label: "Machine Learning", Category: domain.CategoryAI, ColorHint: "#ff6f00"},
		{Label: "Deep Learning", Category: domain.CategoryAI, ColorHint: "#ee4c2c"},
		{Label: "NLP", Category: domain.CategoryAI, ColorHint: "#00b894"},
		{Label: "Computer Vision", Category: domain.CategoryAI, ColorHint: "#5c6bc0"},
		{Label: "Prompt Engineering", Category: domain.CategoryAI, ColorHint: "#10a37f"},
	},
	domain.CategoryMarketing: {
		{Label: "SEO", Category: domain.CategoryMarketing, ColorHint: "#47b881"},
		{Label: "Content Marketing", Category: domain.CategoryMarketing, ColorHint: "#f59e0b"},
		{Label: "Social Media", Category: domain.CategoryMarketing, ColorHint: "#1da1f2"},
		{Label: "Growth Hacking", Category: domain.CategoryMarketing, ColorHint: "#9b59b6"},
	},
	domain.CategoryQA: {
		{Label: "Manual Testing", Category: domain.CategoryQA, ColorHint: "#e74c3c"},
		{Label: "Test Automation", Category: domain.CategoryQA, ColorHint: "#27ae60"},
		{Label: "Performance Testing", Category: domain.CategoryQA, ColorHint: "#2980b9"},
	},
	domain.CategoryBusiness: {
		{Label: "Product Management", Category: domain.CategoryBusiness, ColorHint: "#34495e"},
		{Label: "Business Analysis", Category: domain.CategoryBusiness, ColorHint: "#16a085"},
		{Label: "Project Management", Category: domain.CategoryBusiness, ColorHint: "#8e44ad"},
		{Label: "Sales", Category: domain.CategoryBusiness, ColorHint: "#d35400"},
	},
}

// byLabel is the reverse index, built once at init
var byLabel = func() map[string]domain.SkillDescriptor {
	idx := make(map[string]domain.SkillDescriptor)
	for _, skills := range skillsByCategory {
		for _, s := range skills {
			idx[s.Label] = s
		}
	}
	return idx
}()

// SkillsByCategory returns the skills of one category in stable order.
// Every defined category is non-empty.
func SkillsByCategory(category domain.SkillCategory) []domain.SkillDescriptor {
	return skillsByCategory[category]
}

// AllSkills returns the whole taxonomy, categories in display order
func AllSkills() []domain.SkillDescriptor {
	var out []domain.SkillDescriptor
	for _, category := range domain.ValidSkillCategories() {
		out = append(out, skillsByCategory[category]...)
	}
	return out
}

// Find looks a skill up by its exact label
func Find(label string) (domain.SkillDescriptor, bool) {
	s, ok := byLabel[label]
	return s, ok
}

// CategoryOf returns the category of a known skill, or empty for unknown
// labels (free-form company requirements are allowed)
func CategoryOf(label string) domain.SkillCategory {
	if s, ok := byLabel[label]; ok {
		return s.Category
	}
	return ""
}
