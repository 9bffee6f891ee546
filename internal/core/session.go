// Package core owns the scan session: enumeration, batched hashing,
// duplicate grouping, and the pause/resume/restart state machine. All
// mutable scan state lives on the session; there are no package-level
// registries.
package core

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Soulfra/document-generator-mvp-sub009/internal/config"
	"github.com/Soulfra/document-generator-mvp-sub009/internal/decision"
	"github.com/Soulfra/document-generator-mvp-sub009/internal/dedup"
	"github.com/Soulfra/document-generator-mvp-sub009/internal/digest"
	"github.com/Soulfra/document-generator-mvp-sub009/internal/filesystem"
	"github.com/Soulfra/document-generator-mvp-sub009/pkg/models"
)

// ProgressCallback is called to report scan progress
type ProgressCallback func(progress models.ScanProgress)

// Action is a control command for a running session.
type Action string

const (
	ActionPause   Action = "pause"
	ActionResume  Action = "resume"
	ActionRestart Action = "restart"
)

// Session is one scan of one root directory. Progress is pull-based via
// Progress(); an optional callback mirrors it for interactive callers.
type Session struct {
	config   *config.Config
	logger   *zap.Logger
	filter   *filesystem.Filter
	grouper  *dedup.Grouper
	recorder *decision.Recorder

	onProgress ProgressCallback

	mu       sync.Mutex
	cond     *sync.Cond
	root     string
	pauseReq bool
	cancel   context.CancelFunc
	done     chan struct{}

	progress  models.ScanProgress
	stats     models.ScanStatistics
	groups    []models.DuplicateGroup
	report    *models.ScanReport
	startTime time.Time
}

// NewSession creates a scan session. User filter rules are loaded from
// cfg.RulesPath and merged on top of the built-in exclusion lists.
func NewSession(cfg *config.Config, logger *zap.Logger) (*Session, error) {
	filter := filesystem.NewFilter(cfg.Exclude, cfg.Extensions)

	rules, err := filesystem.LoadRules(cfg.RulesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load filter rules: %w", err)
	}
	filter.Merge(rules)

	s := &Session{
		config:   cfg,
		logger:   logger,
		filter:   filter,
		grouper:  dedup.NewGrouper(),
		recorder: decision.NewRecorder(logger),
		progress: models.ScanProgress{Phase: models.PhaseIdle},
	}
	s.cond = sync.NewCond(&s.mu)
	return s, nil
}

// SetProgressCallback sets the progress callback function
func (s *Session) SetProgressCallback(cb ProgressCallback) {
	s.onProgress = cb
}

// Recorder returns the session's decision recorder.
func (s *Session) Recorder() *decision.Recorder {
	return s.recorder
}

// RecordDecision appends a decision for one duplicate pair.
func (s *Session) RecordDecision(pathA, pathB string, outcome models.Outcome) (models.Decision, error) {
	if !outcome.Valid() {
		return models.Decision{}, fmt.Errorf("unknown decision outcome: %s", outcome)
	}
	return s.recorder.Record(pathA, pathB, outcome), nil
}

// Start begins scanning root. It returns immediately; callers observe the
// scan through Progress() or block on Wait().
func (s *Session) Start(root string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.progress.Phase != models.PhaseIdle {
		return fmt.Errorf("scan already started in phase %s: use restart", s.progress.Phase)
	}

	s.root = root
	s.launchLocked()
	return nil
}

// Wait blocks until the currently running scan reaches a terminal phase.
func (s *Session) Wait() {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Progress returns a snapshot of the current scan state.
func (s *Session) Progress() models.ScanProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress
}

// DuplicateGroups returns the finalized duplicate groups, ordered by
// wasted space descending. It is empty until the scan is complete.
func (s *Session) DuplicateGroups() []models.DuplicateGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.progress.Phase != models.PhaseComplete {
		return nil
	}
	return append([]models.DuplicateGroup(nil), s.groups...)
}

// Report returns the scan report with the current decision log attached,
// or nil before the scan completes.
func (s *Session) Report() *models.ScanReport {
	s.mu.Lock()
	report := s.report
	s.mu.Unlock()
	if report == nil {
		return nil
	}
	r := *report
	r.Decisions = s.recorder.Decisions()
	return &r
}

// Control applies a pause, resume, or restart command.
func (s *Session) Control(action Action) error {
	switch action {
	case ActionPause:
		s.mu.Lock()
		s.pauseReq = true
		s.mu.Unlock()
		s.logger.Info("Scan pause requested")
		return nil
	case ActionResume:
		s.mu.Lock()
		s.pauseReq = false
		s.cond.Broadcast()
		s.mu.Unlock()
		s.logger.Info("Scan resumed")
		return nil
	case ActionRestart:
		return s.restart()
	}
	return fmt.Errorf("unknown control action: %s", action)
}

// launchLocked starts the scan goroutine. Caller holds s.mu.
func (s *Session) launchLocked() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	s.pauseReq = false
	s.progress = models.ScanProgress{Phase: models.PhaseScanning}
	s.stats = models.ScanStatistics{}
	s.startTime = time.Now()

	go s.run(ctx, s.root, s.done)
}

// restart cancels any running scan, clears all state, and re-enters
// scanning from idle. Valid from every phase.
func (s *Session) restart() error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.pauseReq = false
	s.cond.Broadcast()
	done := s.done
	s.mu.Unlock()

	if done != nil {
		<-done
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.grouper.Reset()
	s.groups = nil
	s.report = nil
	s.stats = models.ScanStatistics{}
	s.progress = models.ScanProgress{Phase: models.PhaseIdle}
	s.logger.Info("Scan state cleared", zap.String("root", s.root))

	if s.root != "" {
		s.launchLocked()
	}
	return nil
}

// run executes one scan from enumeration to finalized groups.
func (s *Session) run(ctx context.Context, root string, done chan struct{}) {
	defer close(done)

	s.logger.Info("Starting scan",
		zap.String("path", root),
		zap.Int("max_depth", s.config.MaxDepth),
		zap.String("max_size", s.config.MaxSize))

	maxSize := filesystem.ParseSize(s.config.MaxSize)
	walker := filesystem.NewWalker(s.filter, s.config.MaxDepth, maxSize, s.logger)
	walker.SetProgressCallback(func(path string, found, skipped int) {
		s.mu.Lock()
		s.progress.CurrentPath = path
		s.progress.FoundCount = found
		s.progress.SkippedCount = skipped
		s.mu.Unlock()
		s.emitProgress()
	})

	candidates, err := walker.Walk(root)
	if err != nil {
		s.fail(err)
		return
	}

	s.mu.Lock()
	s.progress.Phase = models.PhaseProcessing
	s.progress.FoundCount = len(candidates)
	s.progress.SkippedCount = walker.Skipped()
	s.progress.CurrentPath = ""
	s.mu.Unlock()
	s.emitProgress()

	batchSize := s.config.BatchSize
	if batchSize <= 0 {
		batchSize = 25
	}
	delay := time.Duration(s.config.BatchDelay) * time.Millisecond

	for offset := 0; offset < len(candidates); offset += batchSize {
		if !s.waitIfPaused(ctx) {
			return
		}

		end := offset + batchSize
		if end > len(candidates) {
			end = len(candidates)
		}
		s.mergeBatch(s.hashBatch(candidates[offset:end]))
		s.emitProgress()

		// Inter-batch yield keeps the host responsive and lets a pause
		// request take effect promptly
		if end < len(candidates) && delay > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
		}
	}

	if ctx.Err() != nil {
		return
	}

	s.finalize(root)
}

// waitIfPaused blocks between batches while a pause is in effect. It
// returns false when the scan has been cancelled.
func (s *Session) waitIfPaused(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for s.pauseReq && ctx.Err() == nil {
		s.progress.Phase = models.PhasePaused
		s.cond.Wait()
	}
	if ctx.Err() != nil {
		return false
	}
	s.progress.Phase = models.PhaseProcessing
	return true
}

// hashResult holds the outcome of hashing one candidate.
type hashResult struct {
	candidate  models.FileCandidate
	digest     models.Digest
	normalized bool
	err        error
}

// hashBatch hashes one batch with a worker pool. Results land in
// per-index slots so the merge preserves batch order and no partial
// batch state is ever observable.
func (s *Session) hashBatch(batch []models.FileCandidate) []hashResult {
	results := make([]hashResult, len(batch))

	workers := s.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU() * 2
	}
	if workers > len(batch) {
		workers = len(batch)
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indexes {
				c := batch[idx]
				d, normalized, err := digest.Hash(c.Path)
				results[idx] = hashResult{candidate: c, digest: d, normalized: normalized, err: err}
			}
		}()
	}
	for idx := range batch {
		indexes <- idx
	}
	close(indexes)
	wg.Wait()

	return results
}

// mergeBatch folds batch results into the grouper and counters. The
// session goroutine is the single writer to both.
func (s *Session) mergeBatch(results []hashResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, res := range results {
		if res.err != nil {
			s.logger.Warn("Failed to hash file",
				zap.String("path", res.candidate.Path),
				zap.Error(res.err))
			s.progress.SkippedCount++
			s.stats.ReadErrors++
			s.stats.ErrorFiles = append(s.stats.ErrorFiles, res.candidate.Path)
			continue
		}

		s.grouper.Add(res.candidate, res.digest)
		s.progress.ProcessedCount++
		s.progress.CurrentPath = res.candidate.Path
		s.stats.TotalBytesHashed += res.candidate.Size
		if res.normalized {
			s.stats.NormalizedFiles++
		} else {
			s.stats.BinaryFiles++
		}
	}
}

// finalize computes the duplicate groups and the scan report.
func (s *Session) finalize(root string) {
	groups := s.grouper.Finalize()
	endTime := time.Now()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	s.mu.Lock()
	s.groups = groups
	s.progress.Phase = models.PhaseComplete
	s.progress.CurrentPath = ""

	s.stats.WorkersUsed = s.config.Workers
	if s.stats.WorkersUsed <= 0 {
		s.stats.WorkersUsed = runtime.NumCPU() * 2
	}
	s.stats.MemoryUsed = m.Alloc
	duration := endTime.Sub(s.startTime)
	if secs := duration.Seconds(); secs > 0 {
		s.stats.FilesPerSecond = float64(s.progress.ProcessedCount) / secs
	}

	stats := s.stats
	report := &models.ScanReport{
		StartTime:      s.startTime,
		EndTime:        endTime,
		Duration:       duration,
		ScanPath:       root,
		FoundFiles:     s.progress.FoundCount,
		SkippedFiles:   s.progress.SkippedCount,
		ProcessedFiles: s.progress.ProcessedCount,
		Stats:          &stats,
	}
	for _, g := range groups {
		report.AddGroup(g)
	}
	s.report = report
	s.mu.Unlock()

	s.emitProgress()
	s.logger.Info("Scan completed",
		zap.Duration("duration", duration),
		zap.Int("files_processed", report.ProcessedFiles),
		zap.Int("duplicate_groups", len(groups)),
		zap.Int64("wasted_bytes", report.WastedTotal))
}

// fail records a fatal error; the session stays in the error phase until
// an explicit restart.
func (s *Session) fail(err error) {
	s.logger.Error("Scan failed", zap.Error(err))
	s.mu.Lock()
	s.progress.Phase = models.PhaseError
	s.progress.Error = err.Error()
	s.mu.Unlock()
	s.emitProgress()
}

// emitProgress mirrors the current snapshot to the optional callback.
func (s *Session) emitProgress() {
	if s.onProgress == nil {
		return
	}
	s.onProgress(s.Progress())
}
