package health

// ReportStatus summarizes the overall outcome of a health check.
type ReportStatus string

const (
	// ReportStatusHealthy indicates no issues were detected.
	ReportStatusHealthy ReportStatus = "healthy"
	// ReportStatusWarning indicates at least one issue was detected.
	ReportStatusWarning ReportStatus = "warning"
)

// LargeFileEntry describes a tracked file exceeding the size threshold.
type LargeFileEntry struct {
	Path      string `json:"path" yaml:"path"`
	SizeBytes int64  `json:"size_bytes" yaml:"size_bytes"`
}

// ReportMetrics carries the numeric measurements collected during a health check.
// Fields are nil when the corresponding probe could not run.
type ReportMetrics struct {
	UnpushedCommits     *int             `json:"unpushed_commits,omitempty" yaml:"unpushed_commits,omitempty"`
	DaysSinceLastCommit *int             `json:"days_since_last_commit,omitempty" yaml:"days_since_last_commit,omitempty"`
	LargeFiles          []LargeFileEntry `json:"large_files,omitempty" yaml:"large_files,omitempty"`
}

// Report aggregates the outcome of all health probes.
type Report struct {
	Status          ReportStatus  `json:"status" yaml:"status"`
	Issues          []string      `json:"issues" yaml:"issues"`
	Recommendations []string      `json:"recommendations" yaml:"recommendations"`
	Metrics         ReportMetrics `json:"metrics" yaml:"metrics"`
}
