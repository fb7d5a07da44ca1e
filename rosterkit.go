// Package rosterkit detects duplicate personnel records and resolves them
// into merged records. It clusters a record set into duplicate groups,
// scores each group's confidence, builds merge suggestions with explicit
// conflicts, and applies user-approved merges while keeping an append-only
// audit history.
//
// The engine is pure and in-memory: records go in, groups and new record
// sets come out. A single Engine instance tracks only its last detection
// result and its merge history. It is not safe for concurrent use; create
// one instance per logical session.
package rosterkit

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rosterkit/rosterkit/pkg/cluster"
	"github.com/rosterkit/rosterkit/pkg/errors"
	"github.com/rosterkit/rosterkit/pkg/merge"
	"github.com/rosterkit/rosterkit/pkg/roster"
)

// Engine runs duplicate detection and merge resolution over personnel
// records.
type Engine interface {
	// Detect clusters the records into duplicate groups and builds a
	// merge suggestion for each. Groups are valid only for the exact
	// record slice they were computed from.
	Detect(records []roster.Employee) (*Result, error)

	// ExecuteMerge applies one detected group to the record set: members
	// are removed and replaced by a single merged record carrying fresh
	// provenance. The input slice is never mutated; a new slice is
	// returned. Each group can be applied exactly once.
	ExecuteMerge(groupID string, records []roster.Employee, decision *MergeDecision) ([]roster.Employee, error)

	// History returns the append-only log of executed merges.
	History() []HistoryEntry
}

// engine is the internal implementation of the Engine interface.
type engine struct {
	config    *config
	clusterer *cluster.Clusterer
	resolver  *merge.Resolver
	logger    zerolog.Logger

	// session carries the groups of the last detection and the merge
	// audit log.
	session *session
}

// session is the mutable state of one detection-and-merge workflow: the
// open duplicate groups keyed by ID, consumed as merges are executed,
// and the append-only history of those merges. It lives only as long as
// its engine.
type session struct {
	groups  map[string]Group
	history []HistoryEntry
}

func newSession() *session {
	return &session{groups: make(map[string]Group)}
}

// reset replaces the open groups with a fresh detection result. History
// is kept; it spans detections.
func (s *session) reset() {
	s.groups = make(map[string]Group)
}

func (s *session) track(group Group) {
	s.groups[group.ID] = group
}

// take removes and returns the group, so each group is applied at most
// once.
func (s *session) take(groupID string) (Group, bool) {
	group, ok := s.groups[groupID]
	if ok {
		delete(s.groups, groupID)
	}
	return group, ok
}

func (s *session) record(entry HistoryEntry) {
	s.history = append(s.history, entry)
}

func (s *session) entries() []HistoryEntry {
	out := make([]HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// New creates a new Engine with the given options.
func New(opts ...Option) (Engine, error) {
	e := &engine{
		config:  defaultConfig(),
		session: newSession(),
	}

	for _, opt := range opts {
		if err := opt(e.config); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}

	e.clusterer = cluster.New(e.config.scorer, e.config.strategy)
	e.resolver = merge.NewResolver()
	e.logger = e.config.logger

	return e, nil
}

// Detect clusters the records into duplicate groups.
func (e *engine) Detect(records []roster.Employee) (*Result, error) {
	clusters := e.clusterer.Clusters(records)

	result := &Result{}
	e.session.reset()

	for _, memberIndices := range clusters {
		members := make([]roster.Employee, len(memberIndices))
		for i, idx := range memberIndices {
			members[i] = records[idx]
		}

		confidence := e.confidence(members)
		merged := e.resolver.Merge(members)
		conflicts := e.resolver.Conflicts(members)
		base := e.resolver.ChooseBase(members)

		group := Group{
			ID:            e.config.newID(),
			MemberIndices: memberIndices,
			Confidence:    confidence,
			SuggestedMerge: &MergeSuggestion{
				BaseRecordID: members[base].ID,
				MergedRecord: merged,
				Conflicts:    conflicts,
			},
		}

		e.session.track(group)
		result.Groups = append(result.Groups, group)
		result.AffectedEmployees += len(memberIndices)
		result.Suggestions = append(result.Suggestions, Suggestion{
			GroupID:    group.ID,
			Confidence: confidence,
			Preview:    merged,
		})

		e.logger.Debug().
			Str("group_id", group.ID).
			Ints("members", memberIndices).
			Float64("confidence", confidence).
			Int("conflicts", len(conflicts)).
			Msg("Built duplicate group")
	}

	result.TotalDuplicates = len(result.Groups)

	e.logger.Info().
		Int("records", len(records)).
		Int("groups", result.TotalDuplicates).
		Int("affected", result.AffectedEmployees).
		Msg("Duplicate detection complete")

	return result, nil
}

// ExecuteMerge applies one duplicate group to the record set.
func (e *engine) ExecuteMerge(groupID string, records []roster.Employee, decision *MergeDecision) ([]roster.Employee, error) {
	group, ok := e.session.take(groupID)
	if !ok {
		return nil, errors.NewGroupNotFoundError(groupID)
	}

	memberSet := make(map[int]bool, len(group.MemberIndices))
	for _, idx := range group.MemberIndices {
		if idx < 0 || idx >= len(records) {
			return nil, fmt.Errorf("%w: member index %d outside record set of %d",
				errors.ErrStaleGroup, idx, len(records))
		}
		memberSet[idx] = true
	}

	members := make([]roster.Employee, 0, len(group.MemberIndices))
	mergedFrom := make([]string, 0, len(group.MemberIndices))
	for _, idx := range group.MemberIndices {
		members = append(members, records[idx].Clone())
		mergedFrom = append(mergedFrom, records[idx].ID)
	}

	var merged roster.Employee
	if decision != nil && decision.MergedEmployee != nil {
		merged = decision.MergedEmployee.Clone()
	} else {
		merged = e.resolver.Merge(members)
	}

	mergedAt := e.config.now()
	merged.ID = e.config.newID()
	merged.MergedFrom = mergedFrom
	merged.MergedAt = &mergedAt

	out := make([]roster.Employee, 0, len(records)-len(members)+1)
	for i := range records {
		if memberSet[i] {
			continue
		}
		out = append(out, records[i].Clone())
	}
	out = append(out, merged)

	e.session.record(HistoryEntry{
		GroupID:         groupID,
		OriginalRecords: members,
		MergedRecord:    merged.Clone(),
		MergedAt:        mergedAt,
	})

	e.logger.Info().
		Str("group_id", groupID).
		Str("merged_id", merged.ID).
		Int("merged_away", len(members)).
		Msg("Executed merge")

	return out, nil
}

// History returns a copy of the merge audit log.
func (e *engine) History() []HistoryEntry {
	return e.session.entries()
}

// confidence is the mean pairwise aggregate similarity across all
// distinct member pairs. A group with no pairs yields 0 rather than a
// division by zero.
func (e *engine) confidence(members []roster.Employee) float64 {
	pairs := 0
	total := 0.0
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			total += e.config.scorer.Score(&members[i], &members[j]).Aggregate
			pairs++
		}
	}
	if pairs == 0 {
		return 0
	}
	return total / float64(pairs)
}

var _ Engine = (*engine)(nil)
