package report

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Soulfra/document-generator-mvp-sub009/internal/config"
	"github.com/Soulfra/document-generator-mvp-sub009/internal/filesystem"
	"github.com/Soulfra/document-generator-mvp-sub009/pkg/models"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorOrange = "\033[38;5;208m"
	colorGray   = "\033[38;5;245m"
)

// FormatDuration formats duration to a human-readable string with max 2 decimal places
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	} else if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	} else if d < time.Hour {
		mins := int(d.Minutes())
		secs := d.Seconds() - float64(mins*60)
		return fmt.Sprintf("%dm%.2fs", mins, secs)
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) - hours*60
	secs := d.Seconds() - float64(hours*3600) - float64(mins*60)
	return fmt.Sprintf("%dh%dm%.2fs", hours, mins, secs)
}

// Generator generates scan reports in various formats
type Generator struct {
	config *config.Config
	logger *zap.Logger
}

// NewGenerator creates a new report generator
func NewGenerator(cfg *config.Config, logger *zap.Logger) *Generator {
	return &Generator{
		config: cfg,
		logger: logger,
	}
}

// Generate renders a report for the scan results. With no format
// configured it prints a console summary and returns an empty path.
func (g *Generator) Generate(report *models.ScanReport) (string, error) {
	format := g.config.ReportFormat
	outputFile := g.config.OutputFile

	if format == "" {
		g.printConsole(report)
		return "", nil
	}

	// Generate default filename if not specified
	if outputFile == "" {
		timestamp := time.Now().Format("20060102-150405")
		switch format {
		case "json":
			outputFile = fmt.Sprintf("FILESWIPER-REPORT-%s.json", timestamp)
		case "txt", "text":
			outputFile = fmt.Sprintf("FILESWIPER-REPORT-%s.txt", timestamp)
		case "md", "markdown":
			outputFile = fmt.Sprintf("FILESWIPER-REPORT-%s.md", timestamp)
		default:
			return "", fmt.Errorf("unknown report format: %s", format)
		}
	}

	g.logger.Info("Generating report",
		zap.String("format", format),
		zap.String("output", outputFile))

	var err error
	switch format {
	case "json":
		err = g.generateJSON(report, outputFile)
	case "txt", "text":
		err = g.generateText(report, outputFile)
	case "md", "markdown":
		err = g.generateMarkdown(report, outputFile)
	default:
		return "", fmt.Errorf("unknown report format: %s", format)
	}
	if err != nil {
		return "", err
	}

	return outputFile, nil
}

// printConsole prints a colored summary to stdout.
func (g *Generator) printConsole(report *models.ScanReport) {
	fmt.Println()
	fmt.Printf("  %s%sScan Summary%s\n", colorBold, colorOrange, colorReset)
	fmt.Printf("  %sPath:%s       %s\n", colorGray, colorReset, report.ScanPath)
	fmt.Printf("  %sDuration:%s   %s\n", colorGray, colorReset, FormatDuration(report.Duration))
	fmt.Printf("  %sFound:%s      %d files\n", colorGray, colorReset, report.FoundFiles)
	fmt.Printf("  %sProcessed:%s  %d files\n", colorGray, colorReset, report.ProcessedFiles)
	fmt.Printf("  %sSkipped:%s    %d entries\n", colorGray, colorReset, report.SkippedFiles)
	fmt.Println()

	if len(report.Groups) == 0 {
		fmt.Printf("  %s✓ No duplicates found%s\n\n", colorGreen, colorReset)
		return
	}

	fmt.Printf("  %s%sDuplicate groups: %d%s  %s(%s recoverable)%s\n\n",
		colorBold, colorYellow, len(report.Groups), colorReset,
		colorGray, filesystem.FormatSize(report.WastedTotal), colorReset)

	for i, group := range report.Groups {
		fmt.Printf("  %s[%d]%s %s wasted, %d copies\n",
			colorCyan, i+1, colorReset,
			filesystem.FormatSize(group.WastedSpace), group.Count())
		for j, member := range group.Members {
			marker := " "
			if j == 0 {
				marker = "*" // keep-first candidate
			}
			fmt.Printf("      %s %s %s(%s)%s\n",
				marker, member.Path,
				colorGray, filesystem.FormatSize(member.Size), colorReset)
		}
		fmt.Println()
	}
}
