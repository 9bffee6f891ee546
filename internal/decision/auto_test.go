package decision

import (
	"testing"
	"time"

	"github.com/Soulfra/document-generator-mvp-sub009/pkg/models"
)

func TestPickBest(t *testing.T) {
	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		a, b       models.FileCandidate
		wantKeep   string
		wantReason string
	}{
		{
			name:       "Clean path beats backup path",
			a:          models.FileCandidate{Path: "/src/main.go", Size: 100, ModTime: base},
			b:          models.FileCandidate{Path: "/backup/main.go", Size: 100, ModTime: base.Add(time.Hour)},
			wantKeep:   "/src/main.go",
			wantReason: "cleaner path",
		},
		{
			name:       "Old marker loses regardless of order",
			a:          models.FileCandidate{Path: "/src/old/main.go", Size: 100, ModTime: base},
			b:          models.FileCandidate{Path: "/src/main.go", Size: 100, ModTime: base},
			wantKeep:   "/src/main.go",
			wantReason: "cleaner path",
		},
		{
			name:       "Newer copy wins when paths are equally clean",
			a:          models.FileCandidate{Path: "/src/a/main.go", Size: 100, ModTime: base},
			b:          models.FileCandidate{Path: "/src/b/main.go", Size: 100, ModTime: base.Add(time.Hour)},
			wantKeep:   "/src/b/main.go",
			wantReason: "more recently modified",
		},
		{
			name:       "Larger copy wins on equal mtime",
			a:          models.FileCandidate{Path: "/src/a/main.go", Size: 200, ModTime: base},
			b:          models.FileCandidate{Path: "/src/b/main.go", Size: 100, ModTime: base},
			wantKeep:   "/src/a/main.go",
			wantReason: "larger copy",
		},
		{
			name:       "Shorter path is the final tie-break",
			a:          models.FileCandidate{Path: "/src/deeply/nested/main.go", Size: 100, ModTime: base},
			b:          models.FileCandidate{Path: "/src/main.go", Size: 100, ModTime: base},
			wantKeep:   "/src/main.go",
			wantReason: "shorter path",
		},
		{
			name:       "Identical candidates keep the first",
			a:          models.FileCandidate{Path: "/src/main.go", Size: 100, ModTime: base},
			b:          models.FileCandidate{Path: "/lib/util.go", Size: 100, ModTime: base},
			wantKeep:   "/src/main.go",
			wantReason: "shorter path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keep, reason := PickBest(tt.a, tt.b)
			if keep.Path != tt.wantKeep {
				t.Errorf("PickBest() keep = %s, want %s", keep.Path, tt.wantKeep)
			}
			if reason != tt.wantReason {
				t.Errorf("PickBest() reason = %q, want %q", reason, tt.wantReason)
			}
		})
	}
}
