package domain

import "strings"

// ExperimentFilter is the optional predicate set for catalog queries. Zero
// values mean "not set"; set fields combine as a conjunction.
type ExperimentFilter struct {
	Category           string
	CurriculumStage    string
	Difficulty         string
	HouseholdItemsOnly bool
	MaxDuration        int // minutes; 0 means no ceiling
	SearchQuery        string
	CurriculumUnitID   string // external unit code; membership resolved by the store
}

// IsZero reports whether no filter field is set.
func (f ExperimentFilter) IsZero() bool {
	return f == ExperimentFilter{}
}

// Matches evaluates every predicate except curriculum-unit membership, which
// depends on the junction relation and is applied by the store before this.
func (f ExperimentFilter) Matches(exp Experiment) bool {
	if f.Category != "" && exp.Category != f.Category {
		return false
	}
	if f.CurriculumStage != "" && exp.CurriculumStage != f.CurriculumStage {
		return false
	}
	if f.Difficulty != "" && exp.Difficulty != f.Difficulty {
		return false
	}
	if f.HouseholdItemsOnly && !exp.HouseholdItemsOnly {
		return false
	}
	if f.MaxDuration > 0 && exp.Duration > f.MaxDuration {
		return false
	}
	if f.SearchQuery != "" && !matchesSearch(exp, f.SearchQuery) {
		return false
	}
	return true
}

func matchesSearch(exp Experiment, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(exp.Title), q) ||
		strings.Contains(strings.ToLower(exp.Description), q) ||
		strings.Contains(strings.ToLower(exp.Category), q)
}
