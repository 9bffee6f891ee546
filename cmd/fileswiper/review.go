package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Soulfra/document-generator-mvp-sub009/internal/advisor"
	"github.com/Soulfra/document-generator-mvp-sub009/internal/config"
	"github.com/Soulfra/document-generator-mvp-sub009/internal/core"
	"github.com/Soulfra/document-generator-mvp-sub009/internal/decision"
	"github.com/Soulfra/document-generator-mvp-sub009/internal/filesystem"
	"github.com/Soulfra/document-generator-mvp-sub009/pkg/models"
)

// runReview walks the operator through every duplicate pair, one decision
// at a time, and records the outcomes on the session.
func runReview(cmd *cobra.Command, session *core.Session, cfg *config.Config) error {
	groups := session.DuplicateGroups()
	if len(groups) == 0 {
		fmt.Printf("  %sNothing to review%s\n\n", colorGray, colorReset)
		return nil
	}

	adv := newAdvisor(cfg)
	recorder := session.Recorder()
	recorder.SetEventCallback(func(total int, d models.Decision) {
		fmt.Printf("  %s✓ recorded (%d total)%s\n\n", colorGreen, total, colorReset)
	})

	reader := bufio.NewReader(cmd.InOrStdin())
	if cmd.InOrStdin() == nil {
		reader = bufio.NewReader(os.Stdin)
	}

	fmt.Printf("  %s%sReview%s  %s[k]eep both  [d]elete both  [b]etter  [a]uto  [s]kip  [q]uit%s\n\n",
		colorBold, colorOrange, colorReset, colorGray, colorReset)

	for gi, group := range groups {
		first := group.Members[0]
		for _, other := range group.Members[1:] {
			fmt.Printf("  %sGroup %d/%d%s (%s wasted)\n",
				colorCyan, gi+1, len(groups), colorReset,
				filesystem.FormatSize(group.WastedSpace))
			fmt.Printf("    A: %s\n", first.Path)
			fmt.Printf("    B: %s\n", other.Path)
			fmt.Printf("  %s> %s", colorOrange, colorReset)

			input, err := reader.ReadString('\n')
			if err != nil {
				return nil // EOF ends the review
			}

			switch strings.TrimSpace(strings.ToLower(input)) {
			case "k", "keep":
				recorder.Record(first.Path, other.Path, models.OutcomeKeepBoth)
			case "d", "delete":
				recorder.Record(first.Path, other.Path, models.OutcomeDeleteBoth)
			case "b", "better":
				keep, reason := suggestKeep(adv, first, other)
				recorder.RecordWith(first.Path, other.Path, models.OutcomeKeepBetter, keep, reason)
			case "a", "auto":
				keep, reason := suggestKeep(adv, first, other)
				recorder.RecordWith(first.Path, other.Path, models.OutcomeAutoDecide, keep, reason)
			case "q", "quit":
				return nil
			default:
				fmt.Printf("  %sskipped%s\n\n", colorGray, colorReset)
			}
		}
	}

	return nil
}

// suggestKeep resolves which copy survives: advisor first, local
// heuristics when the advisor is off or fails.
func suggestKeep(adv *advisor.Advisor, a, b models.FileCandidate) (string, string) {
	if adv != nil {
		if s, err := adv.SuggestKeep(context.Background(), a, b); err == nil {
			return s.Keep, s.Reason
		}
	}
	keep, reason := decision.PickBest(a, b)
	return keep.Path, reason
}
