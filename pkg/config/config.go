package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. CLUBHOUSE_DATABASE_PASSWORD.
const EnvPrefix = "CLUBHOUSE_"

// Config represents the clubhouse server configuration
type Config struct {
	Server   ServerConfig   `yaml:"server" envPrefix:"SERVER_"`
	Database DatabaseConfig `yaml:"database" envPrefix:"DATABASE_"`
	Logging  LoggingConfig  `yaml:"logging" envPrefix:"LOGGING_"`
	Program  ProgramConfig  `yaml:"program" envPrefix:"PROGRAM_"`
	Auth     AuthConfig     `yaml:"auth" envPrefix:"AUTH_"`
	Game     GameConfig     `yaml:"game" envPrefix:"GAME_"`
	Metrics  MetricsConfig  `yaml:"metrics" envPrefix:"METRICS_"`
	Tracing  TracingConfig  `yaml:"tracing" envPrefix:"TRACING_"`
	Feed     FeedConfig     `yaml:"feed" envPrefix:"FEED_"`
	Auditor  AuditorConfig  `yaml:"auditor" envPrefix:"AUDITOR_"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `yaml:"host" env:"HOST" default:"0.0.0.0"`
	Port            int           `yaml:"port" env:"PORT" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"WRITE_TIMEOUT" default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" default:"30s"`
	RequestTimeout  time.Duration `yaml:"request_timeout" env:"REQUEST_TIMEOUT" default:"60s"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host" env:"HOST" default:"localhost" validate:"required"`
	Port     int    `yaml:"port" env:"PORT" default:"5432" validate:"min=1,max=65535"`
	User     string `yaml:"user" env:"USER" validate:"required"`
	Password string `yaml:"password" env:"PASSWORD"`
	Database string `yaml:"database" env:"NAME" default:"clubhouse" validate:"required"`
	SSLMode  string `yaml:"ssl_mode" env:"SSL_MODE" default:"disable" validate:"oneof=disable require verify-ca verify-full"`
	// ApplicationName is reported to postgres and shows up in pg_stat_activity.
	ApplicationName string        `yaml:"application_name" env:"APPLICATION_NAME" default:"clubhouse"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout" env:"CONNECT_TIMEOUT" default:"5s"`
	MaxOpenConns    int           `yaml:"max_open_conns" env:"MAX_OPEN_CONNS" default:"10" validate:"min=0"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" env:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format     string `yaml:"format" env:"FORMAT" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" env:"OUTPUT_PATH" default:"stdout"`
}

// ProgramConfig names the deployment-wide authority that manages program admins.
type ProgramConfig struct {
	Authority string `yaml:"authority" env:"AUTHORITY" validate:"required,eth_addr"`
}

// AuthorityAddress returns the parsed program authority.
func (c ProgramConfig) AuthorityAddress() common.Address {
	return common.HexToAddress(c.Authority)
}

// AuthConfig controls request signer authentication.
type AuthConfig struct {
	// TrustSignerHeader accepts X-Signer without a signature. Development only.
	TrustSignerHeader bool `yaml:"trust_signer_header" env:"TRUST_SIGNER_HEADER"`
	// MaxMessageAge bounds how old a signed timestamp in X-Message may be.
	MaxMessageAge time.Duration `yaml:"max_message_age" env:"MAX_MESSAGE_AGE" default:"5m"`
	// ReplayCacheSize bounds how many used messages are remembered.
	ReplayCacheSize int `yaml:"replay_cache_size" env:"REPLAY_CACHE_SIZE" default:"65536" validate:"min=0"`
}

// GameConfig carries the operational knobs of the game service.
type GameConfig struct {
	// ForceClose allows creators to close a campaign inside its window.
	ForceClose bool `yaml:"force_close" env:"FORCE_CLOSE"`
	// MinNativeReserve is left in a house vault on withdrawal.
	MinNativeReserve uint64 `yaml:"min_native_reserve" env:"MIN_NATIVE_RESERVE"`
}

// MetricsConfig contains prometheus exposition settings
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"ENABLED" default:"true"`
	Path    string `yaml:"path" env:"PATH" default:"/metrics"`
}

// TracingConfig contains OpenTelemetry export settings
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled" env:"ENABLED"`
	Endpoint    string  `yaml:"endpoint" env:"ENDPOINT" default:"localhost:4318" validate:"required_if=Enabled true"`
	Insecure    bool    `yaml:"insecure" env:"INSECURE" default:"true"`
	ServiceName string  `yaml:"service_name" env:"SERVICE_NAME" default:"clubhouse"`
	SampleRatio float64 `yaml:"sample_ratio" env:"SAMPLE_RATIO" default:"1" validate:"gte=0,lte=1"`
}

// FeedConfig contains websocket event feed settings
type FeedConfig struct {
	Enabled      bool          `yaml:"enabled" env:"ENABLED" default:"true"`
	BufferSize   int           `yaml:"buffer_size" env:"BUFFER_SIZE" default:"64" validate:"min=1"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"WRITE_TIMEOUT" default:"10s"`
	PingInterval time.Duration `yaml:"ping_interval" env:"PING_INTERVAL" default:"30s"`
}

// AuditorConfig contains settings for the periodic escrow audit
type AuditorConfig struct {
	InitialTimeout time.Duration `yaml:"initial_timeout" env:"INITIAL_TIMEOUT" default:"30s"`
	Interval       time.Duration `yaml:"interval" env:"INTERVAL" default:"5m"`
}

// Load reads configuration from the YAML file at configPath, fills unset fields
// with defaults, applies CLUBHOUSE_* environment overrides and validates the result.
func Load(configPath string) (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("failed to set defaults: %w", err)
	}

	raw, err := os.ReadFile(configPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the struct-tag constraints of cfg.
func Validate(cfg *Config) error {
	return validator.New(validator.WithRequiredStructEnabled()).Struct(cfg)
}
