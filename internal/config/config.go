package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	EnvDevelopment = "development"
)

// Config keeps runtime settings for the API server and the seeder.
type Config struct {
	Env      string   `toml:"env"`
	Database Database `toml:"database"`
	Server   Server   `toml:"server"`
}

// Database describes how to reach the relational store.
type Database struct {
	Driver   string `toml:"driver"`
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Name     string `toml:"name"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	SSLMode  string `toml:"sslmode"`
	// Migrate forces schema auto-sync outside development.
	Migrate bool `toml:"auto-migrate"`
}

// Server holds HTTP listener settings.
type Server struct {
	Addr string `toml:"addr"`
}

func defaults() Config {
	return Config{
		Env: "production",
		Database: Database{
			Driver:  DriverPostgres,
			Host:    "localhost",
			Port:    5432,
			Name:    "todo_app",
			User:    "postgres",
			SSLMode: "disable",
		},
		Server: Server{Addr: ":3000"},
	}
}

// Load reads configuration from an optional TOML file and then from
// environment variables, which take precedence. An empty path falls back to
// TASKAPI_CONFIG; a missing file is not an error.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path == "" {
		path = strings.TrimSpace(os.Getenv("TASKAPI_CONFIG"))
	}
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	return cfg, cfg.validate()
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Env, "APP_ENV")
	setString(&cfg.Database.Driver, "DB_DRIVER")
	setString(&cfg.Database.Host, "DB_HOST")
	setString(&cfg.Database.Name, "DB_NAME")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.SSLMode, "DB_SSLMODE")
	setString(&cfg.Server.Addr, "HTTP_ADDR")

	// The password may legitimately contain surrounding spaces.
	if raw, ok := os.LookupEnv("DB_PASSWORD"); ok {
		cfg.Database.Password = raw
	}

	if raw := strings.TrimSpace(os.Getenv("DB_PORT")); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("DB_PORT must be an integer, got %q", raw)
		}
		cfg.Database.Port = port
	}

	if raw := strings.TrimSpace(os.Getenv("DB_AUTO_MIGRATE")); raw != "" {
		migrate, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("DB_AUTO_MIGRATE must be a boolean, got %q", raw)
		}
		cfg.Database.Migrate = migrate
	}

	return nil
}

func setString(dst *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*dst = v
	}
}

func (c Config) validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.Driver == DriverPostgres && (c.Database.Port < 1 || c.Database.Port > 65535) {
		return fmt.Errorf("database port %d out of range", c.Database.Port)
	}
	if c.Database.Name == "" {
		return fmt.Errorf("database name is required")
	}
	return nil
}

// Development reports whether the process runs in development mode.
func (c Config) Development() bool {
	return c.Env == EnvDevelopment
}

// AutoMigrate reports whether the schema should be synced at startup.
func (c Config) AutoMigrate() bool {
	return c.Development() || c.Database.Migrate
}

// DSN returns the connection string for the configured driver. For SQLite the
// database name is the file path.
func (d Database) DSN() string {
	if d.Driver == DriverSQLite {
		return d.Name
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}
	return u.String()
}
