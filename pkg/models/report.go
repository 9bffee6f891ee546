package models

import "time"

// ScanReport contains the complete results of a finished scan.
type ScanReport struct {
	// Summary
	StartTime time.Time     `json:"start_time"`
	EndTime   time.Time     `json:"end_time"`
	Duration  time.Duration `json:"duration"`
	ScanPath  string        `json:"scan_path"`

	// Counters
	FoundFiles     int `json:"found_files"`
	SkippedFiles   int `json:"skipped_files"`
	ProcessedFiles int `json:"processed_files"`

	// Duplicate groups, ordered by wasted space descending
	Groups      []DuplicateGroup `json:"groups"`
	WastedTotal int64            `json:"wasted_total"`

	// Decisions recorded during review
	Decisions []Decision `json:"decisions,omitempty"`

	// Statistics
	Stats *ScanStatistics `json:"statistics"`

	// Report path
	ReportPath string `json:"report_path,omitempty"`
}

// ScanStatistics contains detailed scan statistics.
type ScanStatistics struct {
	TotalBytesHashed int64   `json:"total_bytes_hashed"`
	NormalizedFiles  int     `json:"normalized_files"` // hashed as normalized text
	BinaryFiles      int     `json:"binary_files"`     // hashed as raw bytes
	FilesPerSecond   float64 `json:"files_per_second"`

	// Errors absorbed during the scan
	ReadErrors int      `json:"read_errors"`
	ErrorFiles []string `json:"error_files,omitempty"`

	// Performance
	WorkersUsed int    `json:"workers_used"`
	MemoryUsed  uint64 `json:"memory_used_bytes"`
}

// AddGroup appends a group and accumulates the wasted-space total.
func (r *ScanReport) AddGroup(g DuplicateGroup) {
	r.Groups = append(r.Groups, g)
	r.WastedTotal += g.WastedSpace
}
