package output

import (
	"fmt"
	"strings"

	"github.com/rosterkit/rosterkit"
	"github.com/rosterkit/rosterkit/pkg/quality"
)

// DetectionTable shapes a detection result for table output.
func DetectionTable(result *rosterkit.Result) Data {
	data := Data{
		Headers: []string{"Group", "Members", "Confidence", "Base", "Conflicts"},
	}
	for _, group := range result.Groups {
		members := make([]string, len(group.MemberIndices))
		for i, idx := range group.MemberIndices {
			members[i] = fmt.Sprintf("#%d", idx)
		}

		base := ""
		conflicts := 0
		if group.SuggestedMerge != nil {
			base = group.SuggestedMerge.BaseRecordID
			conflicts = len(group.SuggestedMerge.Conflicts)
		}

		data.Rows = append(data.Rows, []string{
			group.ID,
			strings.Join(members, ", "),
			fmt.Sprintf("%.2f", group.Confidence),
			base,
			fmt.Sprintf("%d", conflicts),
		})
	}
	return data
}

// AuditTable shapes a quality report for table output.
func AuditTable(report *quality.Report) Data {
	data := Data{
		Headers: []string{"Severity", "Employee", "Field", "Message"},
	}
	for _, issue := range report.Issues {
		data.Rows = append(data.Rows, []string{
			"issue", issue.EmployeeID, issue.Field.String(), issue.Message,
		})
	}
	for _, warning := range report.Warnings {
		data.Rows = append(data.Rows, []string{
			"warning", warning.EmployeeID, warning.Field.String(), warning.Message,
		})
	}
	return data
}

// HistoryTable shapes the merge audit log for table output.
func HistoryTable(entries []rosterkit.HistoryEntry) Data {
	data := Data{
		Headers: []string{"Group", "Merged Away", "Merged Record", "Merged At"},
	}
	for _, entry := range entries {
		ids := make([]string, len(entry.OriginalRecords))
		for i, rec := range entry.OriginalRecords {
			ids[i] = rec.ID
		}
		data.Rows = append(data.Rows, []string{
			entry.GroupID,
			strings.Join(ids, ", "),
			entry.MergedRecord.ID,
			entry.MergedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return data
}
