// Package config loads server settings from defaults, an optional config
// file, environment variables and command-line flags (in rising priority).
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/iudanet/filesmanager/internal/logging"
)

const (
	keyPort          = "port"
	keyDBPath        = "db.path"
	keySessionsPath  = "sessions.path"
	keySessionTTL    = "sessions.ttl"
	keyStorageFolder = "storage.folder"
	keyLogLevel      = "log.level"
	keyLogFormat     = "log.format"
	keyRateLimitAuth = "ratelimit.auth"
)

// Config holds runtime settings for the server.
type Config struct {
	DBPath        string
	SessionsPath  string
	StorageFolder string
	LogLevel      string
	LogFormat     string
	ConfigFile    string
	SessionTTL    time.Duration
	Port          int
	RateLimitAuth int
	ShowVersion   bool
}

// Addr returns the listen address for http.Server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

type option struct {
	key   string
	env   string
	flag  string
	def   any
	usage string
}

var options = []option{
	{key: keyPort, env: "PORT", flag: "port", def: 5000, usage: "HTTP listen port"},
	{key: keyDBPath, env: "DB_DATABASE", flag: "db", def: "files_manager.db", usage: "SQLite database path"},
	{key: keySessionsPath, env: "SESSIONS_DB", flag: "sessions-db", def: "files_manager_sessions.db", usage: "session store (bbolt) path"},
	{key: keySessionTTL, env: "SESSION_TTL", flag: "session-ttl", def: 24 * time.Hour, usage: "session lifetime"},
	{key: keyStorageFolder, env: "FOLDER_PATH", flag: "folder", def: "/tmp/files_manager", usage: "root directory for file contents"},
	{key: keyLogLevel, env: "LOG_LEVEL", flag: "log-level", def: "info", usage: "log level (debug, info, warn, error)"},
	{key: keyLogFormat, env: "LOG_FORMAT", flag: "log-format", def: "text", usage: "log format (text, json)"},
	{key: keyRateLimitAuth, env: "RATE_LIMIT_AUTH", flag: "rate-limit-auth", def: 20, usage: "requests per minute per IP on /connect and POST /users (0 disables)"},
}

// Load parses args (without the program name) and the environment into Config.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("server", pflag.ContinueOnError)
	v := viper.New()

	for _, o := range options {
		switch def := o.def.(type) {
		case int:
			fs.Int(o.flag, def, o.usage)
		case time.Duration:
			fs.Duration(o.flag, def, o.usage)
		case string:
			fs.String(o.flag, def, o.usage)
		}

		v.SetDefault(o.key, o.def)
		if err := v.BindEnv(o.key, o.env); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", o.env, err)
		}
		if err := v.BindPFlag(o.key, fs.Lookup(o.flag)); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", o.flag, err)
		}
	}

	configFile := fs.String("config", "", "optional config file (yaml, json, toml)")
	showVersion := fs.Bool("version", false, "Show version information")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *configFile != "" {
		v.SetConfigFile(*configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Port:          v.GetInt(keyPort),
		DBPath:        v.GetString(keyDBPath),
		SessionsPath:  v.GetString(keySessionsPath),
		SessionTTL:    v.GetDuration(keySessionTTL),
		StorageFolder: v.GetString(keyStorageFolder),
		LogLevel:      v.GetString(keyLogLevel),
		LogFormat:     v.GetString(keyLogFormat),
		RateLimitAuth: v.GetInt(keyRateLimitAuth),
		ConfigFile:    *configFile,
		ShowVersion:   *showVersion,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var errs []error

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port must be in 1..65535, got %d", c.Port))
	}
	if strings.TrimSpace(c.DBPath) == "" {
		errs = append(errs, errors.New("db path cannot be empty"))
	}
	if strings.TrimSpace(c.SessionsPath) == "" {
		errs = append(errs, errors.New("sessions path cannot be empty"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("session ttl must be positive, got %s", c.SessionTTL))
	}
	if strings.TrimSpace(c.StorageFolder) == "" {
		errs = append(errs, errors.New("storage folder cannot be empty"))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if f := strings.ToLower(c.LogFormat); f != logging.FormatText && f != logging.FormatJSON {
		errs = append(errs, fmt.Errorf("invalid log format %q", c.LogFormat))
	}
	if c.RateLimitAuth < 0 {
		errs = append(errs, fmt.Errorf("rate limit cannot be negative, got %d", c.RateLimitAuth))
	}

	return errors.Join(errs...)
}
