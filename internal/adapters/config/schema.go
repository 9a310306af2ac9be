package config

import "time"

// Settings represents the structure of the digest.yaml configuration file.
type Settings struct {
	Cache        CacheSettings        `yaml:"cache"`
	Sync         SyncSettings         `yaml:"sync"`
	Tracker      TrackerSettings      `yaml:"tracker"`
	Sheets       SheetsSettings       `yaml:"sheets"`
	Google       GoogleSettings       `yaml:"google"`
	Discord      DiscordSettings      `yaml:"discord"`
	Publish      PublishSettings      `yaml:"publish"`
	Schedule     ScheduleSettings     `yaml:"schedule"`
	Reports      ReportsSettings      `yaml:"reports"`
	Log          LogSettings          `yaml:"log"`
	ExecutionLog ExecutionLogSettings `yaml:"execution_log"`
	Serve        ServeSettings        `yaml:"serve"`
	Projects     []ProjectRow         `yaml:"projects"`
}

// ProjectRow is a raw project configuration row keyed by column name.
type ProjectRow map[string]any

// CacheSettings configures the local source cache.
type CacheSettings struct {
	Dir string `yaml:"dir"`
}

// SyncSettings configures cache freshness thresholds.
type SyncSettings struct {
	IssuesMaxAge time.Duration `yaml:"issues_max_age"`
	SheetsMaxAge time.Duration `yaml:"sheets_max_age"`
	RecentWindow time.Duration `yaml:"recent_window"`
	Parallelism  int           `yaml:"parallelism"`
}

// TrackerSettings configures the issue tracker clients.
type TrackerSettings struct {
	GraphQLURL string        `yaml:"graphql_url"`
	RESTURL    string        `yaml:"rest_url"`
	IssueURL   string        `yaml:"issue_url"`
	Username   string        `yaml:"username"`
	Password   string        `yaml:"password"`
	APIKey     string        `yaml:"api_key"`
	APISecret  string        `yaml:"api_secret"`
	Timeout    time.Duration `yaml:"timeout"`
	GraphQL    bool          `yaml:"graphql"`
	REST       bool          `yaml:"rest"`
}

// SheetsSettings configures the schedule sheet client.
type SheetsSettings struct {
	BaseURL string        `yaml:"base_url"`
	Token   string        `yaml:"token"`
	Timeout time.Duration `yaml:"timeout"`
}

// GoogleSettings configures document, folder and configuration sheet access.
type GoogleSettings struct {
	CredentialsFile   string        `yaml:"credentials_file"`
	ProjectsSheetID   string        `yaml:"projects_sheet_id"`
	ProjectsRange     string        `yaml:"projects_range"`
	LogSheetID        string        `yaml:"log_sheet_id"`
	LogRange          string        `yaml:"log_range"`
	DefaultFolderID   string        `yaml:"default_folder_id"`
	ParentFolderID    string        `yaml:"parent_folder_id"`
	CreateMissingDirs bool          `yaml:"create_missing_folders"`
	Timeout           time.Duration `yaml:"timeout"`
}

// DiscordSettings configures chat notifications.
type DiscordSettings struct {
	BaseURL        string        `yaml:"base_url"`
	Token          string        `yaml:"token"`
	NotifyDelay    time.Duration `yaml:"notify_delay"`
	RequestsPerSec float64       `yaml:"requests_per_second"`
}

// PublishSettings configures document publishing limits.
type PublishSettings struct {
	BatchSize   int           `yaml:"batch_size"`
	BatchPause  time.Duration `yaml:"batch_pause"`
	Cooldown    time.Duration `yaml:"cooldown"`
	MaxAttempts int           `yaml:"max_attempts"`
}

// ScheduleSettings configures the scheduled batch run.
type ScheduleSettings struct {
	Weekday string `yaml:"weekday"`
}

// ReportsSettings configures local report artifacts.
type ReportsSettings struct {
	Dir string `yaml:"dir"`
}

// LogSettings configures log output.
type LogSettings struct {
	Format string `yaml:"format"`
}

// ExecutionLogSettings configures the local execution log.
type ExecutionLogSettings struct {
	Path string `yaml:"path"`
}

// ServeSettings configures the HTTP request API.
type ServeSettings struct {
	Addr string `yaml:"addr"`
}
