// Package prompt defines the prompt data model shared by the library core.
package prompt

import (
	"fmt"
	"strings"
)

// Category classifies a prompt into one of the fixed library sections.
type Category string

const (
	CategoryInvestmentResearch Category = "Investment Research"
	CategoryIndustryAnalysis   Category = "Industry Analysis"
	CategoryCompanyOps         Category = "Company Operations"
	CategoryValuation          Category = "Valuation"
	CategoryWriting            Category = "Report Writing"
	CategoryAutomation         Category = "Workflow Automation"
)

// AllCategories returns the list of supported categories.
func AllCategories() []Category {
	return []Category{
		CategoryInvestmentResearch,
		CategoryIndustryAnalysis,
		CategoryCompanyOps,
		CategoryValuation,
		CategoryWriting,
		CategoryAutomation,
	}
}

// ParseCategory converts a string to a Category or returns an error for
// unknown values. Matching is case-insensitive.
func ParseCategory(raw string) (Category, error) {
	trimmed := strings.TrimSpace(raw)
	for _, candidate := range AllCategories() {
		if strings.EqualFold(string(candidate), trimmed) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("prompt: unknown category %q", raw)
}

// MustCategory parses the input and panics on error. Intended for tests and
// the built-in catalog.
func MustCategory(raw string) Category {
	c, err := ParseCategory(raw)
	if err != nil {
		panic(err)
	}
	return c
}
