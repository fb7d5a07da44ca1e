// Package cluster partitions a record set into duplicate groups using
// pairwise similarity verdicts. The default strategy takes connected
// components over the duplicate relation so that transitively linked
// records land in one group; the legacy representative-anchored pass is
// kept for behavioral comparison against older pipelines.
package cluster

import (
	"sort"

	"github.com/rosterkit/rosterkit/pkg/roster"
	"github.com/rosterkit/rosterkit/pkg/similarity"
)

// Strategy selects the grouping algorithm.
type Strategy int

const (
	// ConnectedComponents groups records via union-find over every
	// pairwise duplicate edge. A matches B and B matches C puts all three
	// in one group even when A and C do not match directly.
	ConnectedComponents Strategy = iota

	// RepresentativeAnchored reproduces the shallow single-pass scan:
	// each unprocessed record collects only the later records that match
	// it directly. Transitive chains can split into separate groups.
	RepresentativeAnchored
)

// Clusterer scans a record set and emits disjoint duplicate groups.
type Clusterer struct {
	scorer   *similarity.Scorer
	strategy Strategy
}

// New creates a Clusterer using the given scorer. A nil scorer falls back
// to default weights and thresholds.
func New(scorer *similarity.Scorer, strategy Strategy) *Clusterer {
	if scorer == nil {
		scorer = similarity.NewScorer()
	}
	return &Clusterer{scorer: scorer, strategy: strategy}
}

// Clusters partitions records into duplicate groups. Each group holds at
// least two member indices into the input, in ascending order; indices are
// disjoint across groups. Groups are ordered by their smallest member.
// Singleton buckets are discarded.
func (c *Clusterer) Clusters(records []roster.Employee) [][]int {
	if len(records) < 2 {
		return nil
	}

	switch c.strategy {
	case RepresentativeAnchored:
		return c.representativePass(records)
	default:
		return c.connectedComponents(records)
	}
}

// connectedComponents unions every pairwise duplicate edge and reads the
// resulting components as groups.
func (c *Clusterer) connectedComponents(records []roster.Employee) [][]int {
	uf := newUnionFind(len(records))

	for i := 0; i < len(records); i++ {
		for j := i + 1; j < len(records); j++ {
			if c.scorer.Score(&records[i], &records[j]).IsDuplicate {
				uf.union(i, j)
			}
		}
	}

	members := make(map[int][]int)
	for i := range records {
		root := uf.find(i)
		members[root] = append(members[root], i)
	}

	var groups [][]int
	for _, group := range members {
		if len(group) < 2 {
			continue
		}
		sort.Ints(group)
		groups = append(groups, group)
	}

	sort.Slice(groups, func(a, b int) bool {
		return groups[a][0] < groups[b][0]
	})
	return groups
}

// representativePass anchors each group at the first unprocessed record
// and only tests later records against that anchor.
func (c *Clusterer) representativePass(records []roster.Employee) [][]int {
	processed := make([]bool, len(records))
	var groups [][]int

	for i := 0; i < len(records); i++ {
		if processed[i] {
			continue
		}

		group := []int{i}
		for j := i + 1; j < len(records); j++ {
			if processed[j] {
				continue
			}
			if c.scorer.Score(&records[i], &records[j]).IsDuplicate {
				group = append(group, j)
				processed[j] = true
			}
		}
		processed[i] = true

		if len(group) >= 2 {
			groups = append(groups, group)
		}
	}

	return groups
}
