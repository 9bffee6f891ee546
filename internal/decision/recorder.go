// Package decision records operator resolutions for duplicate pairs.
package decision

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Soulfra/document-generator-mvp-sub009/pkg/models"
)

// Event is called after every recorded decision with the running total.
type Event func(total int, decision models.Decision)

// Recorder keeps an in-memory, append-only log of decisions. Recording is
// decoupled from grouping truth: paths are not validated against the
// current duplicate state.
type Recorder struct {
	logger  *zap.Logger
	onEvent Event

	mu  sync.Mutex
	log []models.Decision
}

// NewRecorder creates a new decision recorder
func NewRecorder(logger *zap.Logger) *Recorder {
	return &Recorder{
		logger: logger,
	}
}

// SetEventCallback sets the callback invoked after each recorded decision.
func (r *Recorder) SetEventCallback(cb Event) {
	r.onEvent = cb
}

// Record appends a decision for one duplicate pair.
func (r *Recorder) Record(pathA, pathB string, outcome models.Outcome) models.Decision {
	return r.RecordWith(pathA, pathB, outcome, "", "")
}

// RecordWith appends a decision carrying the surviving path and a reason.
func (r *Recorder) RecordWith(pathA, pathB string, outcome models.Outcome, keep, reason string) models.Decision {
	d := models.Decision{
		FilePathA: pathA,
		FilePathB: pathB,
		Outcome:   outcome,
		Timestamp: time.Now(),
		Keep:      keep,
		Reason:    reason,
	}

	r.mu.Lock()
	r.log = append(r.log, d)
	total := len(r.log)
	r.mu.Unlock()

	r.logger.Debug("Recorded decision",
		zap.String("outcome", string(outcome)),
		zap.String("path_a", pathA),
		zap.String("path_b", pathB),
		zap.Int("total", total))

	if r.onEvent != nil {
		r.onEvent(total, d)
	}

	return d
}

// Decisions returns a copy of the decision log in recording order.
func (r *Recorder) Decisions() []models.Decision {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Decision(nil), r.log...)
}

// Count returns the number of recorded decisions.
func (r *Recorder) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.log)
}
