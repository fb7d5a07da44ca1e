package similarity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterkit/rosterkit/pkg/roster"
	"github.com/rosterkit/rosterkit/pkg/similarity"
)

func employee(name, title, country string, salary float64) roster.Employee {
	e := roster.Employee{Name: name, Title: title, Country: country}
	if salary > 0 {
		e.Salary = &roster.Salary{Amount: salary, Currency: "USD"}
	}
	return e
}

func TestScoreAggregateBounds(t *testing.T) {
	scorer := similarity.NewScorer()

	pairs := [][2]roster.Employee{
		{employee("John Doe", "Engineer", "US", 100000), employee("Doe, John", "Engineer", "US", 102000)},
		{employee("John Doe", "", "", 0), employee("Mary Major", "Accountant", "DE", 50000)},
		{{}, {}},
		{employee("A", "B", "C", 1), employee("A", "B", "C", 1)},
	}

	for _, p := range pairs {
		score := scorer.Score(&p[0], &p[1])
		assert.GreaterOrEqual(t, score.Aggregate, 0.0)
		assert.LessOrEqual(t, score.Aggregate, 1.0)
	}
}

func TestScoreIdenticalRecords(t *testing.T) {
	scorer := similarity.NewScorer()
	a := employee("John Doe", "Engineer", "US", 100000)
	b := employee("John Doe", "Engineer", "US", 100000)

	score := scorer.Score(&a, &b)
	assert.True(t, score.IsDuplicate)
	assert.InDelta(t, 1.0, score.Aggregate, 1e-9)
	assert.Contains(t, score.Reasons, "near-identical name")
	assert.Contains(t, score.Reasons, "similar title")
	assert.Contains(t, score.Reasons, "same country")
	assert.Contains(t, score.Reasons, "comparable salary")
}

func TestScoreNameAloneSufficient(t *testing.T) {
	scorer := similarity.NewScorer()

	// Same person, wildly different other fields: name alone decides.
	a := employee("John Doe", "Engineer", "US", 100000)
	b := employee("Doe, John", "Accountant", "DE", 300000)

	score := scorer.Score(&a, &b)
	require.GreaterOrEqual(t, score.PerField[roster.FieldName], 0.9)
	assert.True(t, score.IsDuplicate)
	assert.Less(t, score.Aggregate, 0.8, "aggregate alone would not have matched")
}

func TestScoreMissingFieldsNotRenormalized(t *testing.T) {
	scorer := similarity.NewScorer()

	// Identical names, everything else missing: aggregate capped at the
	// name weight because missing fields still cost their weight.
	a := employee("John Doe", "", "", 0)
	b := employee("John Doe", "", "", 0)

	score := scorer.Score(&a, &b)
	assert.InDelta(t, 0.5, score.Aggregate, 1e-9)
	assert.True(t, score.IsDuplicate, "perfect name alone is sufficient")
	assert.Equal(t, 0.0, score.PerField[roster.FieldTitle])
	assert.Equal(t, 0.0, score.PerField[roster.FieldCountry])
	assert.Equal(t, 0.0, score.PerField[roster.FieldSalary])
}

func TestScoreNonDuplicate(t *testing.T) {
	scorer := similarity.NewScorer()
	a := employee("John Doe", "Engineer", "US", 100000)
	b := employee("Mary Major", "Engineer", "US", 100000)

	score := scorer.Score(&a, &b)
	assert.False(t, score.IsDuplicate,
		"matching title/country/salary must not outweigh a different name")
}

func TestScoreZeroAmountSalaryTreatedAsMissing(t *testing.T) {
	scorer := similarity.NewScorer()
	a := employee("John Doe", "Engineer", "US", 100000)
	b := employee("John Doe", "Engineer", "US", 0)
	b.Salary = &roster.Salary{Amount: 0, Currency: "USD"}

	score := scorer.Score(&a, &b)
	assert.Equal(t, 0.0, score.PerField[roster.FieldSalary])
}
