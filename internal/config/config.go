package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Detection holds the tunable detection thresholds and timings.
// The values form the live configuration of a session: they may be
// replaced between frames, and the state machine always reads the
// latest values rather than a captured copy.
type Detection struct {
	// EARThreshold is the eye aspect ratio below which the eyes count as closed.
	EARThreshold float64 `yaml:"ear_threshold"`
	// MARThreshold is the mouth aspect ratio above which the mouth counts as open.
	MARThreshold float64 `yaml:"mar_threshold"`
	// DrowsyTime is how long the eyes must stay closed before a DROWSY event.
	DrowsyTime time.Duration `yaml:"drowsy_time"`
	// YawnTime is how long the mouth must stay open before a YAWN event.
	YawnTime time.Duration `yaml:"yawn_time"`
	// AlertCooldown is the minimum gap between two emissions of the same event type.
	AlertCooldown time.Duration `yaml:"alert_cooldown"`
}

// MQTT holds the optional MQTT event sink settings.
type MQTT struct {
	// BrokerURL is the broker address, e.g. tcp://127.0.0.1:1883.
	// Empty URL disables the MQTT sink.
	BrokerURL string `yaml:"broker_url"`
	// Topic is the topic event tokens are published to.
	Topic string `yaml:"topic"`
	// ClientID identifies this publisher to the broker.
	ClientID string `yaml:"client_id"`
}

// Logging holds log level and optional rotating file output settings.
type Logging struct {
	// Level is the minimum log level (debug, info, warn, error, ...).
	Level string `yaml:"level"`
	// FilePath enables duplicated log output to a rotating file when set.
	FilePath string `yaml:"file_path"`
	// FileMaxSizeMB is the rotation size threshold in megabytes.
	FileMaxSizeMB int `yaml:"file_max_size_mb"`
}

// Config holds the settings shared by the face-sentinel binaries.
type Config struct {
	// GRPCAddress is the address the detection gRPC server listens on
	// and clients (simulator, capture sidecar) connect to.
	GRPCAddress string `yaml:"grpc_addr"`
	// HTTPAddress is the address of the websocket event feed.
	HTTPAddress string `yaml:"http_addr"`
	// PipePath is the named pipe the event line protocol is written to.
	PipePath string `yaml:"pipe_path"`
	// StatsFile is the path to the JSON file storing session statistics.
	StatsFile string `yaml:"stats_file"`
	// Timeout is the duration for network operations and RPC calls.
	Timeout time.Duration `yaml:"timeout"`
	// Detection holds the default detection thresholds for new sessions.
	Detection Detection `yaml:"detection"`
	// MQTT configures the optional MQTT event sink.
	MQTT MQTT `yaml:"mqtt"`
	// Logging configures log level and file output.
	Logging Logging `yaml:"logging"`
}

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "face-sentinel-settings.yaml"

	// DefaultStatsFilename is the default filename for session statistics JSON.
	DefaultStatsFilename = "face-sentinel-stats.json"

	// DefaultPipePath matches the pipe path external listeners already use.
	DefaultPipePath = "/tmp/face_status_pipe"

	// DefaultGRPCAddress is the default gRPC listen address.
	DefaultGRPCAddress = "127.0.0.1:50051"

	// DefaultHTTPAddress is the default websocket feed listen address.
	DefaultHTTPAddress = "127.0.0.1:8080"

	// DefaultTimeout is the default duration for network operations.
	DefaultTimeout = 5 * time.Second

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

// Default detection values match the thresholds the detector was tuned with.
const (
	DefaultEARThreshold  = 0.22
	DefaultMARThreshold  = 0.6
	DefaultDrowsyTime    = 2 * time.Second
	DefaultYawnTime      = 1 * time.Second
	DefaultAlertCooldown = 3 * time.Second
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// ErrNonPositiveThreshold is returned when a ratio threshold is zero or negative.
	ErrNonPositiveThreshold = errors.New("detection threshold must be positive")
	// ErrNegativeDuration is returned when a detection duration or cooldown is negative.
	ErrNegativeDuration = errors.New("detection durations must not be negative")
)

// DefaultDetection returns the detection defaults used when a session
// starts without explicit settings.
func DefaultDetection() Detection {
	return Detection{
		EARThreshold:  DefaultEARThreshold,
		MARThreshold:  DefaultMARThreshold,
		DrowsyTime:    DefaultDrowsyTime,
		YawnTime:      DefaultYawnTime,
		AlertCooldown: DefaultAlertCooldown,
	}
}

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings for required fields and formatting,
// filling defaults for optional values. Detection invariant violations are
// rejected, never clamped.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.GRPCAddress == "" {
		cfg.GRPCAddress = DefaultGRPCAddress
	}

	if _, err := net.ResolveTCPAddr("tcp", cfg.GRPCAddress); err != nil {
		return fmt.Errorf("invalid gRPC address: %w", err)
	}

	if cfg.HTTPAddress == "" {
		cfg.HTTPAddress = DefaultHTTPAddress
	}

	if _, err := net.ResolveTCPAddr("tcp", cfg.HTTPAddress); err != nil {
		return fmt.Errorf("invalid HTTP address: %w", err)
	}

	if cfg.PipePath == "" {
		cfg.PipePath = DefaultPipePath
	}

	if cfg.StatsFile == "" {
		cfg.StatsFile = DefaultStatsFilename
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	if err := validateDetection(&cfg.Detection); err != nil {
		return err
	}

	return validateMQTT(&cfg.MQTT)
}

// validateDetection checks threshold invariants, filling zero-value
// durations and thresholds with defaults first. An explicitly negative
// value is always an error.
func validateDetection(d *Detection) error {
	if d.EARThreshold == 0 {
		d.EARThreshold = DefaultEARThreshold
	}

	if d.MARThreshold == 0 {
		d.MARThreshold = DefaultMARThreshold
	}

	if d.DrowsyTime == 0 {
		d.DrowsyTime = DefaultDrowsyTime
	}

	if d.YawnTime == 0 {
		d.YawnTime = DefaultYawnTime
	}

	if d.AlertCooldown == 0 {
		d.AlertCooldown = DefaultAlertCooldown
	}

	if d.EARThreshold <= 0 || d.MARThreshold <= 0 {
		return ErrNonPositiveThreshold
	}

	if d.DrowsyTime < 0 || d.YawnTime < 0 || d.AlertCooldown < 0 {
		return ErrNegativeDuration
	}

	return nil
}

// validateMQTT checks the broker URL when the MQTT sink is enabled.
func validateMQTT(m *MQTT) error {
	if m.BrokerURL == "" {
		return nil
	}

	if _, err := url.Parse(m.BrokerURL); err != nil {
		return fmt.Errorf("invalid MQTT broker URL: %w", err)
	}

	if m.Topic == "" {
		m.Topic = "face-sentinel/events"
	}

	if m.ClientID == "" {
		m.ClientID = "face-sentinel"
	}

	return nil
}
