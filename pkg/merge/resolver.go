// Package merge resolves a duplicate group into a single record. The most
// complete member becomes the base, gaps are filled from the remaining
// members, and literal field disagreements are reported as conflicts for
// human review.
package merge

import (
	"github.com/rosterkit/rosterkit/pkg/roster"
)

// Conflict is a field on which group members hold literally distinct
// values. Clustering answers "same person?" while a conflict answers
// "which value is the truth?". The two use different equality notions,
// so a group can be a confident duplicate and still carry conflicts.
type Conflict struct {
	// Field is the disputed canonical field.
	Field roster.Field `json:"field" yaml:"field"`

	// Values holds the distinct raw values seen across the group, in
	// group order of first appearance.
	Values []any `json:"values" yaml:"values"`
}

// Resolver merges duplicate groups.
type Resolver struct{}

// NewResolver creates a Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ChooseBase returns the index (within members) of the record that should
// anchor the merge: the one with the highest completeness score. Ties go
// to the earliest member, which keeps the choice deterministic.
func (r *Resolver) ChooseBase(members []roster.Employee) int {
	best := 0
	bestScore := -1.0
	for i := range members {
		score := roster.Completeness(&members[i])
		if score > bestScore {
			best = i
			bestScore = score
		}
	}
	return best
}

// Merge combines the group into one record: a copy of the base with every
// empty canonical field filled from the first later member that has a
// value. First write wins; a filled field is never overwritten even when
// other members disagree with it.
func (r *Resolver) Merge(members []roster.Employee) roster.Employee {
	if len(members) == 0 {
		return roster.Employee{}
	}

	base := r.ChooseBase(members)
	merged := members[base].Clone()

	for i := range members {
		if i == base {
			continue
		}
		for _, info := range roster.Fields() {
			if info.Present(&merged) {
				continue
			}
			if info.Present(&members[i]) {
				info.Copy(&merged, &members[i])
			}
		}
	}

	return merged
}

// Conflicts reports every decision-significant field on which the group
// members hold more than one distinct raw value. Values are compared with
// exact equality, not similarity: salaries two percent apart cluster as
// duplicates yet still conflict here.
func (r *Resolver) Conflicts(members []roster.Employee) []Conflict {
	var conflicts []Conflict

	for _, info := range roster.DecisionFields() {
		var values []any
		seen := make(map[any]bool)

		for i := range members {
			if !info.Present(&members[i]) {
				continue
			}
			v := info.Value(&members[i])
			if seen[v] {
				continue
			}
			seen[v] = true
			values = append(values, v)
		}

		if len(values) > 1 {
			conflicts = append(conflicts, Conflict{Field: info.Field, Values: values})
		}
	}

	return conflicts
}
