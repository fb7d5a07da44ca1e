package similarity

import (
	"github.com/rosterkit/rosterkit/pkg/roster"
)

// Weights holds the contribution of each compared field to the aggregate
// score. They are not re-normalized when a field is missing: a sparse
// record deliberately scores lower than a complete one.
type Weights struct {
	Name    float64
	Title   float64
	Country float64
	Salary  float64
}

// DefaultWeights returns the standard field weighting. Names dominate
// because they are the strongest identity signal.
func DefaultWeights() Weights {
	return Weights{
		Name:    0.5,
		Title:   0.2,
		Country: 0.2,
		Salary:  0.1,
	}
}

// Thresholds holds the decision cutoffs for the duplicate verdict and the
// per-component reason reporting.
type Thresholds struct {
	// Duplicate is the aggregate score at or above which a pair is judged
	// a duplicate.
	Duplicate float64

	// NameAlone is the name similarity at or above which a pair is judged
	// a duplicate regardless of the other fields.
	NameAlone float64

	// SimilarTitle is the title similarity reported as a match reason.
	SimilarTitle float64

	// CloseSalary is the salary proximity reported as a match reason.
	CloseSalary float64
}

// DefaultThresholds returns the standard decision cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Duplicate:    0.8,
		NameAlone:    0.9,
		SimilarTitle: 0.8,
		CloseSalary:  0.8,
	}
}

// Score is the outcome of comparing two records.
type Score struct {
	// IsDuplicate is the pairwise duplicate verdict.
	IsDuplicate bool

	// Aggregate is the weighted similarity in [0,1].
	Aggregate float64

	// PerField holds the individual field similarities that fed the
	// aggregate.
	PerField map[roster.Field]float64

	// Reasons lists the human-readable signals behind the verdict.
	Reasons []string
}

// Scorer combines field similarities into record-level scores.
type Scorer struct {
	Weights    Weights
	Thresholds Thresholds
}

// NewScorer creates a Scorer with default weights and thresholds.
func NewScorer() *Scorer {
	return &Scorer{
		Weights:    DefaultWeights(),
		Thresholds: DefaultThresholds(),
	}
}

// Score compares two records and returns the weighted aggregate, the
// per-field breakdown, a duplicate verdict, and the reasons behind it.
// A field missing on either side contributes 0 to its term while its
// weight still counts.
func (s *Scorer) Score(a, b *roster.Employee) Score {
	perField := map[roster.Field]float64{
		roster.FieldName:    0,
		roster.FieldTitle:   0,
		roster.FieldCountry: 0,
		roster.FieldSalary:  0,
	}

	if present(a, b, roster.FieldName) {
		perField[roster.FieldName] = Name(a.Name, b.Name)
	}
	if present(a, b, roster.FieldTitle) {
		perField[roster.FieldTitle] = Text(a.Title, b.Title)
	}
	if present(a, b, roster.FieldCountry) {
		perField[roster.FieldCountry] = Categorical(a.Country, b.Country)
	}
	if present(a, b, roster.FieldSalary) {
		perField[roster.FieldSalary] = Numeric(a.Salary.Amount, b.Salary.Amount)
	}

	aggregate := s.Weights.Name*perField[roster.FieldName] +
		s.Weights.Title*perField[roster.FieldTitle] +
		s.Weights.Country*perField[roster.FieldCountry] +
		s.Weights.Salary*perField[roster.FieldSalary]
	aggregate = clamp01(aggregate)

	var reasons []string
	if perField[roster.FieldName] >= s.Thresholds.NameAlone {
		reasons = append(reasons, "near-identical name")
	}
	if perField[roster.FieldTitle] >= s.Thresholds.SimilarTitle {
		reasons = append(reasons, "similar title")
	}
	if perField[roster.FieldCountry] == 1.0 && present(a, b, roster.FieldCountry) {
		reasons = append(reasons, "same country")
	}
	if perField[roster.FieldSalary] >= s.Thresholds.CloseSalary {
		reasons = append(reasons, "comparable salary")
	}

	return Score{
		IsDuplicate: aggregate >= s.Thresholds.Duplicate ||
			perField[roster.FieldName] >= s.Thresholds.NameAlone,
		Aggregate: aggregate,
		PerField:  perField,
		Reasons:   reasons,
	}
}

// present reports whether the field carries a value on both records.
func present(a, b *roster.Employee, f roster.Field) bool {
	info, ok := roster.Lookup(f)
	if !ok {
		return false
	}
	return info.Present(a) && info.Present(b)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
