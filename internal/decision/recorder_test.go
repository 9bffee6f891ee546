package decision

import (
	"testing"

	"go.uber.org/zap"

	"github.com/Soulfra/document-generator-mvp-sub009/pkg/models"
)

func TestRecordAppendsInOrder(t *testing.T) {
	r := NewRecorder(zap.NewNop())

	r.Record("/a.txt", "/b.txt", models.OutcomeKeepBoth)
	r.Record("/c.txt", "/d.txt", models.OutcomeDeleteBoth)

	log := r.Decisions()
	if len(log) != 2 {
		t.Fatalf("got %d decisions, want 2", len(log))
	}
	if log[0].FilePathA != "/a.txt" || log[0].Outcome != models.OutcomeKeepBoth {
		t.Errorf("first decision = %+v", log[0])
	}
	if log[1].FilePathA != "/c.txt" || log[1].Outcome != models.OutcomeDeleteBoth {
		t.Errorf("second decision = %+v", log[1])
	}
	if log[0].Timestamp.IsZero() {
		t.Error("decision timestamp not set")
	}
}

func TestRecordWithKeepAndReason(t *testing.T) {
	r := NewRecorder(zap.NewNop())

	d := r.RecordWith("/a.txt", "/b.txt", models.OutcomeKeepBetter, "/a.txt", "more recently modified")
	if d.Keep != "/a.txt" {
		t.Errorf("Keep = %q, want /a.txt", d.Keep)
	}
	if d.Reason != "more recently modified" {
		t.Errorf("Reason = %q", d.Reason)
	}
}

func TestRecordEventCallback(t *testing.T) {
	r := NewRecorder(zap.NewNop())

	var totals []int
	r.SetEventCallback(func(total int, d models.Decision) {
		totals = append(totals, total)
	})

	r.Record("/a.txt", "/b.txt", models.OutcomeKeepBoth)
	r.Record("/a.txt", "/c.txt", models.OutcomeKeepBoth)

	if len(totals) != 2 || totals[0] != 1 || totals[1] != 2 {
		t.Errorf("callback totals = %v, want [1 2]", totals)
	}
}

func TestDecisionsReturnsCopy(t *testing.T) {
	r := NewRecorder(zap.NewNop())
	r.Record("/a.txt", "/b.txt", models.OutcomeKeepBoth)

	log := r.Decisions()
	log[0].FilePathA = "/mutated.txt"

	if r.Decisions()[0].FilePathA != "/a.txt" {
		t.Error("mutating the returned slice changed recorder state")
	}
}

func TestCount(t *testing.T) {
	r := NewRecorder(zap.NewNop())
	if r.Count() != 0 {
		t.Errorf("Count() = %d, want 0", r.Count())
	}
	r.Record("/a.txt", "/b.txt", models.OutcomeKeepBoth)
	if r.Count() != 1 {
		t.Errorf("Count() = %d, want 1", r.Count())
	}
}

func TestOutcomeValid(t *testing.T) {
	tests := []struct {
		name    string
		outcome models.Outcome
		valid   bool
	}{
		{"Delete both", models.OutcomeDeleteBoth, true},
		{"Keep both", models.OutcomeKeepBoth, true},
		{"Keep better", models.OutcomeKeepBetter, true},
		{"Auto decide", models.OutcomeAutoDecide, true},
		{"Empty", models.Outcome(""), false},
		{"Unknown", models.Outcome("purge"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.outcome.Valid(); got != tt.valid {
				t.Errorf("Valid() = %v, want %v", got, tt.valid)
			}
		})
	}
}
