package domain

import "path/filepath"

const (
	// DigestDirName is the name of the local working directory.
	DigestDirName = ".digest"

	// CacheDirName is the name of the source cache directory.
	CacheDirName = "cache"

	// ReportsDirName is the name of the directory holding generated report files.
	ReportsDirName = "reports"

	// RefreshMarkerName is the name of the file recording the last full-set refresh.
	RefreshMarkerName = "last_refresh"

	// ExecutionLogName is the name of the local execution log database.
	ExecutionLogName = "executions.db"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "digest.yaml"

	// ConfigEnvVar names the environment variable overriding the configuration file path.
	ConfigEnvVar = "DIGEST_CONFIG"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCachePath returns the default path for the source cache.
// It joins .digest and cache.
func DefaultCachePath() string {
	return filepath.Join(DigestDirName, CacheDirName)
}

// DefaultReportsPath returns the default path for local report artifacts.
// It joins .digest and reports.
func DefaultReportsPath() string {
	return filepath.Join(DigestDirName, ReportsDirName)
}

// DefaultExecutionLogPath returns the default path for the local execution log.
// It joins .digest and executions.db.
func DefaultExecutionLogPath() string {
	return filepath.Join(DigestDirName, ExecutionLogName)
}
