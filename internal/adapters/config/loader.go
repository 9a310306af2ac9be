// Package config provides the settings loader for digest.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"go.trai.ch/digest/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding secrets from the configuration file.
const (
	EnvTrackerUsername   = "DIGEST_TRACKER_USERNAME"
	EnvTrackerPassword   = "DIGEST_TRACKER_PASSWORD"
	EnvTrackerAPIKey     = "DIGEST_TRACKER_API_KEY"
	EnvTrackerAPISecret  = "DIGEST_TRACKER_API_SECRET"
	EnvSheetsToken       = "DIGEST_SHEETS_TOKEN"
	EnvGoogleCredentials = "DIGEST_GOOGLE_CREDENTIALS"
	EnvDiscordToken      = "DIGEST_DISCORD_TOKEN"
	EnvLogFormat         = "DIGEST_LOG_FORMAT"
)

// Defaults returns the settings used when the configuration file omits a value.
func Defaults() *Settings {
	return &Settings{
		Cache: CacheSettings{Dir: domain.DefaultCachePath()},
		Sync: SyncSettings{
			IssuesMaxAge: time.Hour,
			SheetsMaxAge: 24 * time.Hour,
			RecentWindow: 10 * time.Minute,
			Parallelism:  5,
		},
		Tracker: TrackerSettings{
			GraphQLURL: "https://api.construflow.com.br/graphql",
			RESTURL:    "https://api.construflow.com.br/v1",
			IssueURL:   "https://app.construflow.com.br/workspace/project/{project}/issues?issueId={issue}",
			Timeout:    30 * time.Second,
			GraphQL:    true,
			REST:       true,
		},
		Sheets: SheetsSettings{
			BaseURL: "https://api.smartsheet.com/2.0",
			Timeout: 30 * time.Second,
		},
		Google: GoogleSettings{
			ProjectsRange:     "Projetos!A1:Z",
			LogRange:          "Log!A1",
			CreateMissingDirs: true,
			Timeout:           30 * time.Second,
		},
		Discord: DiscordSettings{
			BaseURL:        "https://discord.com/api/v10",
			NotifyDelay:    2 * time.Second,
			RequestsPerSec: 1,
		},
		Publish: PublishSettings{
			BatchSize:   20,
			BatchPause:  time.Second,
			Cooldown:    60 * time.Second,
			MaxAttempts: 5,
		},
		Schedule:     ScheduleSettings{Weekday: "friday"},
		Reports:      ReportsSettings{Dir: domain.DefaultReportsPath()},
		Log:          LogSettings{Format: "auto"},
		ExecutionLog: ExecutionLogSettings{Path: domain.DefaultExecutionLogPath()},
		Serve:        ServeSettings{Addr: ":8080"},
	}
}

// Path returns the configuration file path, honoring DIGEST_CONFIG.
func Path() string {
	if p := os.Getenv(domain.ConfigEnvVar); p != "" {
		return p
	}
	return domain.ConfigFileName
}

// Load reads the configuration file at path on top of the defaults and applies
// environment overrides. A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	settings := Defaults()

	//nolint:gosec // Path is provided by the operator
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults only.
	case err != nil:
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	default:
		if err := yaml.Unmarshal(data, settings); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
		}
	}

	applyEnv(settings)
	return settings, nil
}

func applyEnv(s *Settings) {
	override := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	override(&s.Tracker.Username, EnvTrackerUsername)
	override(&s.Tracker.Password, EnvTrackerPassword)
	override(&s.Tracker.APIKey, EnvTrackerAPIKey)
	override(&s.Tracker.APISecret, EnvTrackerAPISecret)
	override(&s.Sheets.Token, EnvSheetsToken)
	override(&s.Google.CredentialsFile, EnvGoogleCredentials)
	override(&s.Discord.Token, EnvDiscordToken)
	override(&s.Log.Format, EnvLogFormat)
}

// ScheduledWeekday parses the configured weekday, defaulting to Friday.
func (s *Settings) ScheduledWeekday() time.Weekday {
	name := strings.ToLower(strings.TrimSpace(s.Schedule.Weekday))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == name {
			return d
		}
	}
	return time.Friday
}
