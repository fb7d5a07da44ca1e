// Package quality audits a record set for missing or placeholder data.
// It walks the canonical field registry so that the notion of "required"
// and "advisory" stays in one place.
package quality

import (
	"fmt"
	"strings"

	"github.com/rosterkit/rosterkit/pkg/roster"
)

// Issue flags one data problem on one record.
type Issue struct {
	// EmployeeID identifies the affected record.
	EmployeeID string `json:"employee_id" yaml:"employee_id"`

	// Field is the canonical field at fault.
	Field roster.Field `json:"field" yaml:"field"`

	// Message describes the problem.
	Message string `json:"message" yaml:"message"`
}

// Report is the outcome of a quality audit.
type Report struct {
	// Issues are hard problems: required fields that are missing or
	// unusable.
	Issues []Issue `json:"issues" yaml:"issues"`

	// Warnings are soft problems: advisory fields that are missing or
	// hold a placeholder.
	Warnings []Issue `json:"warnings" yaml:"warnings"`

	// QualityScore is 1 for a clean set, docked per finding and floored
	// at 0. Warnings count half an issue.
	QualityScore float64 `json:"quality_score" yaml:"quality_score"`
}

// Auditor checks records against the canonical field registry.
type Auditor struct{}

// NewAuditor creates an Auditor.
func NewAuditor() *Auditor {
	return &Auditor{}
}

// Audit checks every record and scores the set. An empty set is clean.
func (a *Auditor) Audit(records []roster.Employee) *Report {
	report := &Report{QualityScore: 1}
	if len(records) == 0 {
		return report
	}

	for i := range records {
		rec := &records[i]
		for _, info := range roster.Fields() {
			switch {
			case info.Required && !info.Present(rec):
				report.Issues = append(report.Issues, Issue{
					EmployeeID: rec.ID,
					Field:      info.Field,
					Message:    fmt.Sprintf("missing %s", info.Field),
				})
			case info.Advisory && !info.Present(rec):
				report.Warnings = append(report.Warnings, Issue{
					EmployeeID: rec.ID,
					Field:      info.Field,
					Message:    fmt.Sprintf("missing %s", info.Field),
				})
			case info.Field == roster.FieldCountry && isPlaceholderCountry(rec.Country):
				report.Warnings = append(report.Warnings, Issue{
					EmployeeID: rec.ID,
					Field:      info.Field,
					Message:    "country is a placeholder",
				})
			}
		}
	}

	penalty := float64(len(report.Issues)) + 0.5*float64(len(report.Warnings))
	score := 1 - penalty/float64(len(records))
	if score < 0 {
		score = 0
	}
	report.QualityScore = score
	return report
}

// isPlaceholderCountry reports whether the country field holds a value
// that carries no information.
func isPlaceholderCountry(country string) bool {
	switch strings.ToLower(strings.TrimSpace(country)) {
	case "unknown", "n/a", "tbd":
		return true
	}
	return false
}
