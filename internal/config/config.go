package config

import "time"

// Config is the root application configuration.
type Config struct {
	API      APIConfig      `yaml:"api"`
	Auth     AuthConfig     `yaml:"auth"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	View     ViewConfig     `yaml:"view"`
}

// APIConfig holds backend connection settings.
type APIConfig struct {
	BaseURL string        `yaml:"base_url" env:"CONTACTS_API_URL"     env-default:"http://localhost:3000"`
	Timeout time.Duration `yaml:"timeout"  env:"CONTACTS_API_TIMEOUT" env-default:"10s"`
}

// AuthConfig holds session persistence settings.
type AuthConfig struct {
	// TokenFile is where the access token survives between runs.
	// Empty selects session.json under the user config directory.
	TokenFile string `yaml:"token_file" env:"CONTACTS_TOKEN_FILE"`
}

// DatabaseConfig holds PostgreSQL connection settings for the offline
// snapshot. The snapshot is disabled when DSN is empty.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"0"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// Enabled reports whether a snapshot database is configured.
func (c DatabaseConfig) Enabled() bool { return c.DSN != "" }

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// ViewConfig tunes derived views and list rendering.
type ViewConfig struct {
	Locale        string `yaml:"locale"         env:"CONTACTS_LOCALE"         env-default:"en"`
	TopCategories int    `yaml:"top_categories" env:"CONTACTS_TOP_CATEGORIES" env-default:"3"`
	RecentLimit   int    `yaml:"recent_limit"   env:"CONTACTS_RECENT_LIMIT"   env-default:"5"`
	ActivityLimit int    `yaml:"activity_limit" env:"CONTACTS_ACTIVITY_LIMIT" env-default:"5"`
}
