package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rosterkit/rosterkit"
	"github.com/rosterkit/rosterkit/internal/cmd/output"
	"github.com/rosterkit/rosterkit/pkg/logging"
	"github.com/rosterkit/rosterkit/pkg/quality"
	"github.com/rosterkit/rosterkit/pkg/roster"
)

// NewDetectCommand creates the detect command.
func (a *App) NewDetectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <roster-file>",
		Short: "Find duplicate records in a roster file",
		Long: `Detect scans a roster file for records that likely describe the
same person and reports each duplicate group with its confidence, the
suggested merge base, and any conflicting values.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := roster.LoadFile(args[0])
			if err != nil {
				return err
			}

			engine, err := a.Engine()
			if err != nil {
				return err
			}

			result, err := engine.Detect(records)
			if err != nil {
				return err
			}

			format := output.DetectFormat(a.config.Format)
			formatter := output.NewFormatter(format)
			if format == output.FormatTable {
				if len(result.Groups) == 0 {
					cmd.Println("No duplicates found.")
					return nil
				}
				return formatter.Format(cmd.OutOrStdout(), output.DetectionTable(result))
			}
			return formatter.Format(cmd.OutOrStdout(), result)
		},
	}
}

// NewMergeCommand creates the merge command.
func (a *App) NewMergeCommand() *cobra.Command {
	var (
		groupIndex int
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "merge <roster-file>",
		Short: "Apply suggested merges to a roster file",
		Long: `Merge detects duplicate groups and applies their suggested merges.
By default every group is merged; --group applies only the Nth group
(1-based) from a single detection pass.

The merged roster is written to --out, or printed when --out is not
given. The input file is never modified in place unless named by --out.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := roster.LoadFile(args[0])
			if err != nil {
				return err
			}

			engine, err := a.Engine()
			if err != nil {
				return err
			}

			merged, applied, err := a.runMerges(engine, records, groupIndex)
			if err != nil {
				return err
			}
			logging.Ctx(cmd.Context()).Info().
				Int("applied", applied).
				Int("records", len(merged)).
				Msg("Merge complete")

			format := output.DetectFormat(a.config.Format)
			if outPath != "" {
				if err := roster.WriteFile(outPath, merged); err != nil {
					return err
				}
				// The roster went to the file; show what was merged away.
				if format == output.FormatTable && applied > 0 {
					return output.NewFormatter(format).Format(cmd.OutOrStdout(), output.HistoryTable(engine.History()))
				}
				return nil
			}

			if format == output.FormatTable {
				// Table output is unhelpful for full records; print YAML.
				format = output.FormatYAML
			}
			return output.NewFormatter(format).Format(cmd.OutOrStdout(), merged)
		},
	}

	cmd.Flags().IntVar(&groupIndex, "group", 0, "apply only the Nth detected group (1-based)")
	cmd.Flags().StringVar(&outPath, "out", "", "write the merged roster to this file")

	return cmd
}

// runMerges applies suggested merges and returns the updated roster and
// the number of groups applied. A zero group index applies every group,
// re-detecting after each merge since applying one invalidates the
// remaining indices.
func (a *App) runMerges(engine rosterkit.Engine, records []roster.Employee, groupIndex int) ([]roster.Employee, int, error) {
	if groupIndex > 0 {
		result, err := engine.Detect(records)
		if err != nil {
			return nil, 0, err
		}
		if groupIndex > len(result.Groups) {
			return nil, 0, fmt.Errorf("group %d does not exist: %d group(s) detected", groupIndex, len(result.Groups))
		}
		merged, err := engine.ExecuteMerge(result.Groups[groupIndex-1].ID, records, nil)
		if err != nil {
			return nil, 0, err
		}
		return merged, 1, nil
	}

	applied := 0
	for {
		result, err := engine.Detect(records)
		if err != nil {
			return nil, 0, err
		}
		if len(result.Groups) == 0 {
			return records, applied, nil
		}
		records, err = engine.ExecuteMerge(result.Groups[0].ID, records, nil)
		if err != nil {
			return nil, 0, err
		}
		applied++
	}
}

// NewAuditCommand creates the audit command.
func (a *App) NewAuditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "audit <roster-file>",
		Short: "Audit a roster file for data quality problems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := roster.LoadFile(args[0])
			if err != nil {
				return err
			}

			report := quality.NewAuditor().Audit(records)

			format := output.DetectFormat(a.config.Format)
			formatter := output.NewFormatter(format)
			if format == output.FormatTable {
				if len(report.Issues)+len(report.Warnings) > 0 {
					if err := formatter.Format(cmd.OutOrStdout(), output.AuditTable(report)); err != nil {
						return err
					}
				}
				cmd.Printf("Quality score: %.2f (%d issue(s), %d warning(s))\n",
					report.QualityScore, len(report.Issues), len(report.Warnings))
				return nil
			}
			return formatter.Format(cmd.OutOrStdout(), report)
		},
	}
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("rosterkit %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
