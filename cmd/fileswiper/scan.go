package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Soulfra/document-generator-mvp-sub009/internal/advisor"
	"github.com/Soulfra/document-generator-mvp-sub009/internal/config"
	"github.com/Soulfra/document-generator-mvp-sub009/internal/core"
	"github.com/Soulfra/document-generator-mvp-sub009/internal/report"
	"github.com/Soulfra/document-generator-mvp-sub009/pkg/models"
)

// scanCmd creates the scan command
func scanCmd() *cobra.Command {
	var (
		maxDepth     int
		maxSize      string
		batchSize    int
		batchDelay   int
		workers      int
		exclude      []string
		extensions   []string
		rulesPath    string
		reportFormat string
		outputFile   string
		review       bool
		// Advisor flags
		advisorEnabled bool
		advisorModel   string
		advisorToken   string
	)

	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan a directory tree for duplicate files",
		Long:  `Recursively scan a directory for files with identical content, grouped by normalized content digest and ordered by recoverable space.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			if err := validateFlags(reportFormat, advisorModel); err != nil {
				fmt.Printf("\n  %s✗ Invalid parameter:%s %s\n\n", colorRed, colorReset, err.Error())
				return err
			}

			if err := initLogger(); err != nil {
				return err
			}
			defer logger.Sync()

			printBanner()
			fmt.Printf("  %sScanning:%s  %s\n", colorGray, colorReset, path)
			fmt.Println()

			// Load configuration
			cfg, err := config.LoadConfig()
			if err != nil {
				logger.Error("Failed to load config", zap.Error(err))
				return err
			}

			// Override config with CLI flags
			if maxDepth > 0 {
				cfg.MaxDepth = maxDepth
			}
			if maxSize != "" {
				cfg.MaxSize = maxSize
			}
			if batchSize > 0 {
				cfg.BatchSize = batchSize
			}
			if batchDelay >= 0 {
				cfg.BatchDelay = batchDelay
			}
			if workers > 0 {
				cfg.Workers = workers
			}
			if len(exclude) > 0 {
				cfg.Exclude = exclude
			}
			if len(extensions) > 0 {
				cfg.Extensions = extensions
			}
			if rulesPath != "" {
				cfg.RulesPath = rulesPath
			}
			if reportFormat != "" {
				cfg.ReportFormat = reportFormat
			}
			if outputFile != "" {
				cfg.OutputFile = outputFile
			}
			if advisorEnabled {
				cfg.Advisor.Enabled = true
			}
			if advisorModel != "" {
				cfg.Advisor.Model = advisorModel
			}
			if advisorToken != "" {
				cfg.Advisor.APIToken = advisorToken
			}

			// Create session
			session, err := core.NewSession(cfg, logger)
			if err != nil {
				logger.Error("Failed to create session", zap.Error(err))
				return err
			}

			// Progress bar
			lastPhase := models.PhaseIdle
			session.SetProgressCallback(func(p models.ScanProgress) {
				if lastPhase == p.Phase && p.Phase != models.PhaseIdle {
					fmt.Print("\033[1A\033[K")
				}
				lastPhase = p.Phase

				switch p.Phase {
				case models.PhaseScanning:
					fmt.Printf("  %sEnumerating:%s %d found, %d skipped\n",
						colorGray, colorReset, p.FoundCount, p.SkippedCount)
				case models.PhaseProcessing:
					if p.FoundCount > 0 {
						pct := float64(p.ProcessedCount) / float64(p.FoundCount) * 100
						barWidth := 30
						filled := int(float64(barWidth) * float64(p.ProcessedCount) / float64(p.FoundCount))
						bar := fmt.Sprintf("%s%s", repeat("█", filled), repeat("░", barWidth-filled))
						fmt.Printf("  %sHashing:%s [%s%s%s] %s%.1f%%%s (%d/%d)\n",
							colorGray, colorReset, colorOrange, bar, colorReset,
							colorOrange, pct, colorReset, p.ProcessedCount, p.FoundCount)
					}
				case models.PhaseComplete:
					fmt.Printf("  %s✓ Scan complete%s\n\n", colorGreen, colorReset)
				case models.PhaseError:
					fmt.Printf("  %s✗ Scan failed:%s %s\n\n", colorRed, colorReset, p.Error)
				}
			})

			// Run scan to completion
			if err := session.Start(path); err != nil {
				return err
			}
			session.Wait()

			progress := session.Progress()
			if progress.Phase == models.PhaseError {
				return fmt.Errorf("scan failed: %s", progress.Error)
			}

			// Interactive review
			if review {
				if err := runReview(cmd, session, cfg); err != nil {
					return err
				}
			}

			// Generate report
			generator := report.NewGenerator(cfg, logger)
			reportPath, err := generator.Generate(session.Report())
			if err != nil {
				logger.Error("Failed to generate report", zap.Error(err))
				return err
			}
			if reportPath != "" {
				fmt.Printf("  %sReport:%s    %s%s%s\n", colorGray, colorReset, colorOrange, reportPath, colorReset)
				fmt.Println()
			}

			return nil
		},
	}

	// Flags
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Maximum directory depth from root (default: 3)")
	cmd.Flags().StringVar(&maxSize, "max-size", "", "Maximum file size to hash (default: 10M)")
	cmd.Flags().IntVar(&batchSize, "batch-size", 0, "Candidates hashed per batch (default: 25)")
	cmd.Flags().IntVar(&batchDelay, "batch-delay", -1, "Yield between batches in ms (default: 50)")
	cmd.Flags().IntVar(&workers, "workers", 0, "Hashing workers per batch (default: CPU cores * 2)")
	cmd.Flags().StringSliceVar(&exclude, "exclude", nil, "Extra directory names to exclude (comma-separated)")
	cmd.Flags().StringSliceVar(&extensions, "extensions", nil, "Extension allow-list override (comma-separated)")
	cmd.Flags().StringVar(&rulesPath, "rules", "", "YAML filter rules file")
	cmd.Flags().StringVarP(&reportFormat, "report", "r", "", "Report format: txt, json, md (default: console output)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path")
	cmd.Flags().BoolVar(&review, "review", false, "Review duplicate pairs interactively after the scan")

	// Advisor flags
	cmd.Flags().BoolVar(&advisorEnabled, "advisor", false, "Enable AI-assisted keep/delete suggestions during review")
	cmd.Flags().StringVar(&advisorModel, "advisor-model", "", "Advisor model: haiku, sonnet, opus (default: haiku)")
	cmd.Flags().StringVar(&advisorToken, "advisor-token", "", "Anthropic API token (or set ANTHROPIC_API_KEY)")

	return cmd
}

// validateFlags validates CLI flag values
func validateFlags(reportFormat, advisorModel string) error {
	if reportFormat != "" {
		validFormats := []string{"txt", "text", "json", "md", "markdown"}
		if !contains(validFormats, reportFormat) {
			return fmt.Errorf("--report must be one of: %s (got: %s)", strings.Join(validFormats, ", "), reportFormat)
		}
	}

	if advisorModel != "" {
		validModels := []string{"haiku", "sonnet", "opus"}
		if !contains(validModels, advisorModel) {
			return fmt.Errorf("--advisor-model must be one of: %s (got: %s)", strings.Join(validModels, ", "), advisorModel)
		}
	}

	return nil
}

// contains checks if a slice contains a string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// newAdvisor builds the advisor when enabled, degrading gracefully.
func newAdvisor(cfg *config.Config) *advisor.Advisor {
	if !cfg.Advisor.Enabled {
		return nil
	}
	a, err := advisor.NewAdvisor(&cfg.Advisor, logger)
	if err != nil {
		fmt.Printf("  %s⚠ Advisor disabled:%s %v\n\n", colorYellow, colorReset, err)
		return nil
	}
	return a
}
