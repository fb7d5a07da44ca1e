// Package roster defines the personnel record data model shared by the
// similarity, clustering, merge, and quality packages. Employee records are
// produced upstream by ingestion; this package owns their shape and the
// canonical field registry that keeps the dedup pipeline's field lists in
// sync.
package roster

import (
	"time"
)

// Employee represents a single personnel record. The ID is opaque and
// assigned at ingestion; the engine only generates IDs for merged records.
// Optional fields use pointers so absence is distinguishable from a zero
// value.
type Employee struct {
	ID      string `json:"id" yaml:"id"`           // Opaque unique identifier
	Name    string `json:"name" yaml:"name"`       // Full display name
	Title   string `json:"title,omitempty" yaml:"title,omitempty"`     // Job title
	Country string `json:"country,omitempty" yaml:"country,omitempty"` // Country code or name

	Salary            *Salary  `json:"salary,omitempty" yaml:"salary,omitempty"`                         // Compensation
	Comparatio        *float64 `json:"comparatio,omitempty" yaml:"comparatio,omitempty"`                 // Pay / pay-grade midpoint
	PerformanceRating *Rating  `json:"performance_rating,omitempty" yaml:"performance_rating,omitempty"` // Latest rating
	FutureTalent      *bool    `json:"future_talent,omitempty" yaml:"future_talent,omitempty"`           // High-potential flag
	TimeInRole        *int     `json:"time_in_role,omitempty" yaml:"time_in_role,omitempty"`             // Months in current role
	TimeSinceRaise    *int     `json:"time_since_raise,omitempty" yaml:"time_since_raise,omitempty"`     // Months since last raise

	// Merge provenance, set only on records produced by a merge.
	MergedFrom []string   `json:"merged_from,omitempty" yaml:"merged_from,omitempty"` // IDs of the records merged away
	MergedAt   *time.Time `json:"merged_at,omitempty" yaml:"merged_at,omitempty"`     // When the merge happened
}

// Salary is a compensation amount with its currency code. Currency
// normalization happens upstream; the engine compares amounts only.
type Salary struct {
	Amount   float64 `json:"amount" yaml:"amount"`
	Currency string  `json:"currency,omitempty" yaml:"currency,omitempty"`
}

// Rating is a performance rating on a 1-5 scale with display text.
type Rating struct {
	Score float64 `json:"score" yaml:"score"`
	Label string  `json:"label,omitempty" yaml:"label,omitempty"`
}

// Clone returns a deep copy of the employee. Pointer fields are duplicated
// so the copy shares no mutable state with the original.
func (e Employee) Clone() Employee {
	out := e
	if e.Salary != nil {
		s := *e.Salary
		out.Salary = &s
	}
	if e.Comparatio != nil {
		c := *e.Comparatio
		out.Comparatio = &c
	}
	if e.PerformanceRating != nil {
		r := *e.PerformanceRating
		out.PerformanceRating = &r
	}
	if e.FutureTalent != nil {
		f := *e.FutureTalent
		out.FutureTalent = &f
	}
	if e.TimeInRole != nil {
		m := *e.TimeInRole
		out.TimeInRole = &m
	}
	if e.TimeSinceRaise != nil {
		m := *e.TimeSinceRaise
		out.TimeSinceRaise = &m
	}
	if e.MergedFrom != nil {
		out.MergedFrom = make([]string, len(e.MergedFrom))
		copy(out.MergedFrom, e.MergedFrom)
	}
	if e.MergedAt != nil {
		at := *e.MergedAt
		out.MergedAt = &at
	}
	return out
}

// CloneAll returns a deep copy of a record slice.
func CloneAll(employees []Employee) []Employee {
	out := make([]Employee, len(employees))
	for i, e := range employees {
		out[i] = e.Clone()
	}
	return out
}
