package rosterkit

import (
	"time"

	"github.com/rosterkit/rosterkit/pkg/merge"
	"github.com/rosterkit/rosterkit/pkg/roster"
)

// Result is the output of a detection pass over a record set.
type Result struct {
	// Groups are the detected duplicate groups, ordered by their smallest
	// member index.
	Groups []Group `json:"duplicate_groups" yaml:"duplicate_groups"`

	// TotalDuplicates is the number of duplicate groups found.
	TotalDuplicates int `json:"total_duplicates" yaml:"total_duplicates"`

	// AffectedEmployees is the total number of records that fell into any
	// group.
	AffectedEmployees int `json:"affected_employees" yaml:"affected_employees"`

	// Suggestions are the ready-to-apply merge previews, one per group.
	Suggestions []Suggestion `json:"suggestions" yaml:"suggestions"`
}

// Group is one set of records judged to be the same person.
type Group struct {
	// ID identifies the group for a later ExecuteMerge call.
	ID string `json:"id" yaml:"id"`

	// MemberIndices are ascending indices into the record slice the group
	// was detected from. They are invalidated by any change to that slice.
	MemberIndices []int `json:"member_indices" yaml:"member_indices"`

	// Confidence is the mean pairwise similarity across the members.
	Confidence float64 `json:"confidence" yaml:"confidence"`

	// SuggestedMerge is the automatically resolved merge for this group.
	SuggestedMerge *MergeSuggestion `json:"suggested_merge,omitempty" yaml:"suggested_merge,omitempty"`
}

// MergeSuggestion is the resolver's proposed outcome for a group.
type MergeSuggestion struct {
	// BaseRecordID is the most complete member, used as the merge base.
	BaseRecordID string `json:"base_record_id" yaml:"base_record_id"`

	// MergedRecord is the gap-filled merge preview. It carries no
	// provenance; that is stamped when the merge is executed.
	MergedRecord roster.Employee `json:"merged_record" yaml:"merged_record"`

	// Conflicts lists decision-significant fields whose raw values
	// disagree across members and need a human call.
	Conflicts []merge.Conflict `json:"conflicts,omitempty" yaml:"conflicts,omitempty"`
}

// Suggestion pairs a group with its merge preview for display.
type Suggestion struct {
	GroupID    string          `json:"group_id" yaml:"group_id"`
	Confidence float64         `json:"confidence" yaml:"confidence"`
	Preview    roster.Employee `json:"preview" yaml:"preview"`
}

// MergeDecision carries the caller's resolution for a group. A nil
// decision, or one without a record, accepts the suggested merge as is.
type MergeDecision struct {
	// MergedEmployee, when set, replaces the suggested merge entirely.
	// Its ID and provenance are still overwritten by the engine.
	MergedEmployee *roster.Employee `json:"merged_employee,omitempty" yaml:"merged_employee,omitempty"`
}

// HistoryEntry records one executed merge for audit.
type HistoryEntry struct {
	GroupID         string            `json:"group_id" yaml:"group_id"`
	OriginalRecords []roster.Employee `json:"original_records" yaml:"original_records"`
	MergedRecord    roster.Employee   `json:"merged_record" yaml:"merged_record"`
	MergedAt        time.Time         `json:"merged_at" yaml:"merged_at"`
}
