package roster

import (
	"strings"
)

// Field identifies one of the canonical employee fields tracked by the
// dedup pipeline. Similarity scoring, merge gap-filling, conflict
// detection, and quality auditing all iterate this registry instead of
// keeping their own field lists, so adding or removing a tracked field
// cannot desync them.
type Field string

// Canonical fields, in registry order.
const (
	FieldName              Field = "name"
	FieldTitle             Field = "title"
	FieldCountry           Field = "country"
	FieldSalary            Field = "salary"
	FieldComparatio        Field = "comparatio"
	FieldPerformanceRating Field = "performance_rating"
	FieldFutureTalent      Field = "future_talent"
	FieldTimeInRole        Field = "time_in_role"
	FieldTimeSinceRaise    Field = "time_since_raise"
)

// String returns the wire name of the field.
func (f Field) String() string {
	return string(f)
}

// FieldInfo describes one canonical field: how to read it, whether it
// carries a value, and how merge copies it between records.
type FieldInfo struct {
	// Field is the canonical field identifier.
	Field Field

	// DecisionSignificant marks fields whose literal disagreement across a
	// duplicate group is surfaced as a merge conflict.
	DecisionSignificant bool

	// Required marks fields whose absence is a hard data-quality issue.
	Required bool

	// Advisory marks fields whose absence is a soft data-quality warning.
	Advisory bool

	// Present reports whether the field carries a usable value.
	Present func(e *Employee) bool

	// Value returns the raw field value for exact-equality comparison.
	// Returned values are comparable.
	Value func(e *Employee) any

	// Copy copies the field value from src to dst.
	Copy func(dst, src *Employee)
}

// fields is the canonical registry. Order matters: merge gap-filling and
// conflict reporting iterate it in this order.
var fields = []FieldInfo{
	{
		Field:               FieldName,
		DecisionSignificant: true,
		Required:            true,
		Present:             func(e *Employee) bool { return strings.TrimSpace(e.Name) != "" },
		Value:               func(e *Employee) any { return e.Name },
		Copy:                func(dst, src *Employee) { dst.Name = src.Name },
	},
	{
		Field:               FieldTitle,
		DecisionSignificant: true,
		Required:            true,
		Present:             func(e *Employee) bool { return strings.TrimSpace(e.Title) != "" },
		Value:               func(e *Employee) any { return e.Title },
		Copy:                func(dst, src *Employee) { dst.Title = src.Title },
	},
	{
		Field:               FieldCountry,
		DecisionSignificant: true,
		Advisory:            true,
		Present:             func(e *Employee) bool { return strings.TrimSpace(e.Country) != "" },
		Value:               func(e *Employee) any { return e.Country },
		Copy:                func(dst, src *Employee) { dst.Country = src.Country },
	},
	{
		Field:               FieldSalary,
		DecisionSignificant: true,
		Required:            true,
		Present:             func(e *Employee) bool { return e.Salary != nil && e.Salary.Amount > 0 },
		Value: func(e *Employee) any {
			if e.Salary == nil {
				return nil
			}
			return *e.Salary
		},
		Copy: func(dst, src *Employee) {
			if src.Salary != nil {
				s := *src.Salary
				dst.Salary = &s
			}
		},
	},
	{
		Field:   FieldComparatio,
		Present: func(e *Employee) bool { return e.Comparatio != nil },
		Value: func(e *Employee) any {
			if e.Comparatio == nil {
				return nil
			}
			return *e.Comparatio
		},
		Copy: func(dst, src *Employee) {
			if src.Comparatio != nil {
				c := *src.Comparatio
				dst.Comparatio = &c
			}
		},
	},
	{
		Field:               FieldPerformanceRating,
		DecisionSignificant: true,
		Advisory:            true,
		Present:             func(e *Employee) bool { return e.PerformanceRating != nil },
		Value: func(e *Employee) any {
			if e.PerformanceRating == nil {
				return nil
			}
			return *e.PerformanceRating
		},
		Copy: func(dst, src *Employee) {
			if src.PerformanceRating != nil {
				r := *src.PerformanceRating
				dst.PerformanceRating = &r
			}
		},
	},
	{
		Field:   FieldFutureTalent,
		Present: func(e *Employee) bool { return e.FutureTalent != nil },
		Value: func(e *Employee) any {
			if e.FutureTalent == nil {
				return nil
			}
			return *e.FutureTalent
		},
		Copy: func(dst, src *Employee) {
			if src.FutureTalent != nil {
				f := *src.FutureTalent
				dst.FutureTalent = &f
			}
		},
	},
	{
		Field:   FieldTimeInRole,
		Present: func(e *Employee) bool { return e.TimeInRole != nil },
		Value: func(e *Employee) any {
			if e.TimeInRole == nil {
				return nil
			}
			return *e.TimeInRole
		},
		Copy: func(dst, src *Employee) {
			if src.TimeInRole != nil {
				m := *src.TimeInRole
				dst.TimeInRole = &m
			}
		},
	},
	{
		Field:   FieldTimeSinceRaise,
		Present: func(e *Employee) bool { return e.TimeSinceRaise != nil },
		Value: func(e *Employee) any {
			if e.TimeSinceRaise == nil {
				return nil
			}
			return *e.TimeSinceRaise
		},
		Copy: func(dst, src *Employee) {
			if src.TimeSinceRaise != nil {
				m := *src.TimeSinceRaise
				dst.TimeSinceRaise = &m
			}
		},
	},
}

// Fields returns the canonical field registry in order.
func Fields() []FieldInfo {
	out := make([]FieldInfo, len(fields))
	copy(out, fields)
	return out
}

// Lookup returns the registry entry for a field.
func Lookup(f Field) (FieldInfo, bool) {
	for _, info := range fields {
		if info.Field == f {
			return info, true
		}
	}
	return FieldInfo{}, false
}

// DecisionFields returns the fields whose literal disagreement within a
// duplicate group requires human adjudication.
func DecisionFields() []FieldInfo {
	var out []FieldInfo
	for _, info := range fields {
		if info.DecisionSignificant {
			out = append(out, info)
		}
	}
	return out
}

// Completeness returns the fraction of canonical fields populated on the
// record, in [0,1]. Used to pick the base record for a merge.
func Completeness(e *Employee) float64 {
	populated := 0
	for _, info := range fields {
		if info.Present(e) {
			populated++
		}
	}
	return float64(populated) / float64(len(fields))
}
