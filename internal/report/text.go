package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/Soulfra/document-generator-mvp-sub009/internal/filesystem"
	"github.com/Soulfra/document-generator-mvp-sub009/pkg/models"
)

// generateText generates a text report
func (g *Generator) generateText(report *models.ScanReport, outputFile string) error {
	var sb strings.Builder

	// Header
	sb.WriteString("=" + strings.Repeat("=", 78) + "\n")
	sb.WriteString("  FILESWIPER DUPLICATE SCAN REPORT\n")
	sb.WriteString("=" + strings.Repeat("=", 78) + "\n\n")

	// Summary
	sb.WriteString("SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 79) + "\n")
	sb.WriteString(fmt.Sprintf("Scan Path:        %s\n", report.ScanPath))
	sb.WriteString(fmt.Sprintf("Start Time:       %s\n", report.StartTime.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("End Time:         %s\n", report.EndTime.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("Duration:         %s\n", FormatDuration(report.Duration)))
	sb.WriteString(fmt.Sprintf("Found Files:      %d\n", report.FoundFiles))
	sb.WriteString(fmt.Sprintf("Processed Files:  %d\n", report.ProcessedFiles))
	sb.WriteString(fmt.Sprintf("Skipped Entries:  %d\n", report.SkippedFiles))
	sb.WriteString(fmt.Sprintf("DUPLICATE GROUPS: %d\n", len(report.Groups)))
	sb.WriteString(fmt.Sprintf("WASTED SPACE:     %s\n", filesystem.FormatSize(report.WastedTotal)))
	sb.WriteString("\n")

	// Groups, ordered by wasted space descending
	if len(report.Groups) > 0 {
		sb.WriteString("DUPLICATE GROUPS\n")
		sb.WriteString(strings.Repeat("-", 79) + "\n")

		for i, group := range report.Groups {
			sb.WriteString(fmt.Sprintf("[%d] %s wasted, %d copies (digest %s)\n",
				i+1, filesystem.FormatSize(group.WastedSpace), group.Count(), shortDigest(group.Digest)))
			for j, member := range group.Members {
				marker := " "
				if j == 0 {
					marker = "*"
				}
				sb.WriteString(fmt.Sprintf("  %s %s (%s, modified %s)\n",
					marker, member.Path,
					filesystem.FormatSize(member.Size),
					member.ModTime.Format("2006-01-02 15:04:05")))
			}
			sb.WriteString("\n")
		}
	}

	// Decisions
	if len(report.Decisions) > 0 {
		sb.WriteString("DECISIONS\n")
		sb.WriteString(strings.Repeat("-", 79) + "\n")
		for _, d := range report.Decisions {
			sb.WriteString(fmt.Sprintf("  %-12s %s | %s\n", d.Outcome, d.FilePathA, d.FilePathB))
			if d.Keep != "" {
				sb.WriteString(fmt.Sprintf("               keep: %s (%s)\n", d.Keep, d.Reason))
			}
		}
		sb.WriteString("\n")
	}

	// Statistics
	if report.Stats != nil {
		sb.WriteString("STATISTICS\n")
		sb.WriteString(strings.Repeat("-", 79) + "\n")
		sb.WriteString(fmt.Sprintf("  Bytes Hashed:     %s\n", filesystem.FormatSize(report.Stats.TotalBytesHashed)))
		sb.WriteString(fmt.Sprintf("  Normalized Files: %d\n", report.Stats.NormalizedFiles))
		sb.WriteString(fmt.Sprintf("  Binary Files:     %d\n", report.Stats.BinaryFiles))
		sb.WriteString(fmt.Sprintf("  Read Errors:      %d\n", report.Stats.ReadErrors))
		sb.WriteString(fmt.Sprintf("  Files/Second:     %.1f\n", report.Stats.FilesPerSecond))
		sb.WriteString(fmt.Sprintf("  Workers:          %d\n", report.Stats.WorkersUsed))
	}

	return os.WriteFile(outputFile, []byte(sb.String()), 0644)
}

// shortDigest truncates a digest for display.
func shortDigest(d models.Digest) string {
	s := string(d)
	if len(s) > 12 {
		return s[:12]
	}
	return s
}
