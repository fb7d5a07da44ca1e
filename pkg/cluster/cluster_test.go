package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosterkit/rosterkit/pkg/cluster"
	"github.com/rosterkit/rosterkit/pkg/roster"
)

func named(name string) roster.Employee {
	return roster.Employee{Name: name}
}

func TestClustersBasic(t *testing.T) {
	records := []roster.Employee{
		{Name: "John Doe", Title: "Engineer", Country: "US", Salary: &roster.Salary{Amount: 100000}},
		{Name: "Mary Major", Title: "Manager", Country: "DE", Salary: &roster.Salary{Amount: 90000}},
		{Name: "Doe, John", Title: "Engineer", Country: "US", Salary: &roster.Salary{Amount: 102000}},
	}

	c := cluster.New(nil, cluster.ConnectedComponents)
	groups := c.Clusters(records)

	require.Len(t, groups, 1)
	assert.Equal(t, []int{0, 2}, groups[0])
}

func TestClustersDisjointAndNoSingletons(t *testing.T) {
	records := []roster.Employee{
		named("Alice Zhang"),
		named("Alice Zhang"),
		named("Bob Kowalski"),
		named("Bob Kowalski"),
		named("Carol Untried"),
	}

	c := cluster.New(nil, cluster.ConnectedComponents)
	groups := c.Clusters(records)

	require.Len(t, groups, 2)
	seen := map[int]bool{}
	for _, g := range groups {
		assert.GreaterOrEqual(t, len(g), 2, "groups must have at least two members")
		for _, idx := range g {
			assert.False(t, seen[idx], "index %d appears in two groups", idx)
			seen[idx] = true
		}
	}
	assert.False(t, seen[4], "unmatched record must not be grouped")
}

// Transitive chain: marcus~markus and markus~markos match pairwise, but
// marcus and markos differ by two edits. Connected components puts all
// three in one group; the representative-anchored pass splits the chain.
func TestClustersTransitivity(t *testing.T) {
	records := []roster.Employee{
		named("marcus"),
		named("markus"),
		named("markos"),
	}

	cc := cluster.New(nil, cluster.ConnectedComponents)
	groups := cc.Clusters(records)
	require.Len(t, groups, 1)
	assert.Equal(t, []int{0, 1, 2}, groups[0])

	legacy := cluster.New(nil, cluster.RepresentativeAnchored)
	legacyGroups := legacy.Clusters(records)
	require.Len(t, legacyGroups, 1)
	assert.Equal(t, []int{0, 1}, legacyGroups[0],
		"anchored pass only matches against the representative")
}

func TestClustersEmptyAndSingle(t *testing.T) {
	c := cluster.New(nil, cluster.ConnectedComponents)
	assert.Nil(t, c.Clusters(nil))
	assert.Nil(t, c.Clusters([]roster.Employee{named("Solo Person")}))
}
