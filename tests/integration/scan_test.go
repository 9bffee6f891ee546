package integration

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/Soulfra/document-generator-mvp-sub009/internal/config"
	"github.com/Soulfra/document-generator-mvp-sub009/internal/core"
	"github.com/Soulfra/document-generator-mvp-sub009/internal/report"
	"github.com/Soulfra/document-generator-mvp-sub009/pkg/models"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

// buildFixture lays out a realistic project tree: duplicates across
// directories, a line-ending variant, an excluded node_modules copy, and
// a unique file.
func buildFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	write(t, filepath.Join(root, "src", "util.js"), "function add(a, b) { return a + b; }\n")
	write(t, filepath.Join(root, "lib", "util.js"), "function add(a, b) { return a + b; }\r\n")
	write(t, filepath.Join(root, "backup", "util.js"), "function add(a, b) { return a + b; }\n")
	write(t, filepath.Join(root, "node_modules", "dep", "util.js"), "function add(a, b) { return a + b; }\n")
	write(t, filepath.Join(root, "src", "main.js"), "console.log('entry');\n")
	return root
}

func TestScanToJSONReport(t *testing.T) {
	root := buildFixture(t)
	outPath := filepath.Join(t.TempDir(), "report.json")

	cfg := &config.Config{
		MaxDepth:     3,
		MaxSize:      "10M",
		BatchSize:    25,
		BatchDelay:   0,
		Workers:      2,
		ReportFormat: "json",
		OutputFile:   outPath,
	}

	session, err := core.NewSession(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	if err := session.Start(root); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	session.Wait()

	if phase := session.Progress().Phase; phase != models.PhaseComplete {
		t.Fatalf("phase = %s, want %s", phase, models.PhaseComplete)
	}

	groups := session.DuplicateGroups()
	if len(groups) != 1 {
		t.Fatalf("got %d duplicate groups, want 1", len(groups))
	}
	// node_modules copy must be pruned: three members, not four
	if groups[0].Count() != 3 {
		t.Fatalf("group has %d members, want 3", groups[0].Count())
	}
	for _, m := range groups[0].Members {
		if strings.Contains(m.Path, "node_modules") {
			t.Errorf("excluded directory leaked into results: %s", m.Path)
		}
	}

	if _, err := session.RecordDecision(
		groups[0].Members[0].Path, groups[0].Members[1].Path, models.OutcomeKeepBetter); err != nil {
		t.Fatalf("RecordDecision() error = %v", err)
	}

	gen := report.NewGenerator(cfg, zap.NewNop())
	written, err := gen.Generate(session.Report())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if written != outPath {
		t.Errorf("report written to %s, want %s", written, outPath)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}

	var decoded models.ScanReport
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("report is not valid JSON: %v", err)
	}
	if decoded.ScanPath != root {
		t.Errorf("ScanPath = %s, want %s", decoded.ScanPath, root)
	}
	if len(decoded.Groups) != 1 {
		t.Errorf("decoded groups = %d, want 1", len(decoded.Groups))
	}
	if len(decoded.Decisions) != 1 || decoded.Decisions[0].Outcome != models.OutcomeKeepBetter {
		t.Errorf("decoded decisions = %+v", decoded.Decisions)
	}
	if decoded.WastedTotal != groups[0].WastedSpace {
		t.Errorf("WastedTotal = %d, want %d", decoded.WastedTotal, groups[0].WastedSpace)
	}
}

func TestScanToTextAndMarkdownReports(t *testing.T) {
	root := buildFixture(t)

	for _, format := range []string{"txt", "md"} {
		t.Run(format, func(t *testing.T) {
			outPath := filepath.Join(t.TempDir(), "report."+format)
			cfg := &config.Config{
				MaxDepth:     3,
				MaxSize:      "10M",
				BatchSize:    25,
				Workers:      2,
				ReportFormat: format,
				OutputFile:   outPath,
			}

			session, err := core.NewSession(cfg, zap.NewNop())
			if err != nil {
				t.Fatalf("NewSession() error = %v", err)
			}
			if err := session.Start(root); err != nil {
				t.Fatalf("Start() error = %v", err)
			}
			session.Wait()

			gen := report.NewGenerator(cfg, zap.NewNop())
			if _, err := gen.Generate(session.Report()); err != nil {
				t.Fatalf("Generate() error = %v", err)
			}

			data, err := os.ReadFile(outPath)
			if err != nil {
				t.Fatalf("failed to read report: %v", err)
			}
			body := string(data)
			if !strings.Contains(body, "util.js") {
				t.Errorf("%s report missing duplicate member paths", format)
			}
			if !strings.Contains(body, root) {
				t.Errorf("%s report missing scan path", format)
			}
		})
	}
}

func TestRestartProducesSameResults(t *testing.T) {
	root := buildFixture(t)
	cfg := &config.Config{MaxDepth: 3, MaxSize: "10M", BatchSize: 25, Workers: 2}

	session, err := core.NewSession(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	if err := session.Start(root); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	session.Wait()
	first := session.DuplicateGroups()

	if err := session.Control(core.ActionRestart); err != nil {
		t.Fatalf("Control(restart) error = %v", err)
	}
	session.Wait()
	second := session.DuplicateGroups()

	if len(first) != len(second) {
		t.Fatalf("group count changed across restart: %d -> %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Digest != second[i].Digest || first[i].Count() != second[i].Count() {
			t.Errorf("group[%d] differs across restart", i)
		}
	}
}
