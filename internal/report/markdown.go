package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/Soulfra/document-generator-mvp-sub009/internal/filesystem"
	"github.com/Soulfra/document-generator-mvp-sub009/pkg/models"
)

// generateMarkdown generates a Markdown report
func (g *Generator) generateMarkdown(report *models.ScanReport, outputFile string) error {
	var sb strings.Builder

	// Header
	sb.WriteString("# FileSwiper Duplicate Scan Report\n\n")

	// Summary
	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Parameter | Value |\n")
	sb.WriteString("|-----------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Scan Path | `%s` |\n", report.ScanPath))
	sb.WriteString(fmt.Sprintf("| Start Time | %s |\n", report.StartTime.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("| End Time | %s |\n", report.EndTime.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("| Duration | %s |\n", FormatDuration(report.Duration)))
	sb.WriteString(fmt.Sprintf("| Found Files | %d |\n", report.FoundFiles))
	sb.WriteString(fmt.Sprintf("| Processed Files | %d |\n", report.ProcessedFiles))
	sb.WriteString(fmt.Sprintf("| Skipped Entries | %d |\n", report.SkippedFiles))
	sb.WriteString(fmt.Sprintf("| **Duplicate Groups** | **%d** |\n", len(report.Groups)))
	sb.WriteString(fmt.Sprintf("| **Wasted Space** | **%s** |\n", filesystem.FormatSize(report.WastedTotal)))
	sb.WriteString("\n")

	if len(report.Groups) == 0 {
		sb.WriteString("> ✅ **No duplicates found**\n\n")
		return os.WriteFile(outputFile, []byte(sb.String()), 0644)
	}

	// Groups
	sb.WriteString("## Duplicate Groups\n\n")
	for i, group := range report.Groups {
		sb.WriteString(fmt.Sprintf("### Group %d — %s wasted (%d copies)\n\n",
			i+1, filesystem.FormatSize(group.WastedSpace), group.Count()))
		sb.WriteString("| Keep | Path | Size | Modified |\n")
		sb.WriteString("|------|------|------|----------|\n")
		for j, member := range group.Members {
			keep := ""
			if j == 0 {
				keep = "✓"
			}
			sb.WriteString(fmt.Sprintf("| %s | `%s` | %s | %s |\n",
				keep, member.Path,
				filesystem.FormatSize(member.Size),
				member.ModTime.Format("2006-01-02 15:04:05")))
		}
		sb.WriteString("\n")
	}

	// Decisions
	if len(report.Decisions) > 0 {
		sb.WriteString("## Decisions\n\n")
		sb.WriteString("| Outcome | File A | File B | Keep |\n")
		sb.WriteString("|---------|--------|--------|------|\n")
		for _, d := range report.Decisions {
			sb.WriteString(fmt.Sprintf("| %s | `%s` | `%s` | `%s` |\n",
				d.Outcome, d.FilePathA, d.FilePathB, d.Keep))
		}
		sb.WriteString("\n")
	}

	return os.WriteFile(outputFile, []byte(sb.String()), 0644)
}
