package config

import (
	"fmt"
	"phishlens/internal/extractor"
	"phishlens/pkg/serrors"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, logging, link extraction,
// keyword scoring, batch processing and metrics export.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Log configures where logs are written
	Log struct {
		// File sends logs to a rotated file instead of stderr when set
		File string `env:"LOG_FILE" yaml:"file"`
		// MaxSizeMB is the size in megabytes at which the log file is rotated
		MaxSizeMB int `env:"LOG_MAX_SIZE_MB" env-default:"100" yaml:"maxSizeMB"`
		// MaxBackups is the number of rotated files to keep
		MaxBackups int `env:"LOG_MAX_BACKUPS" env-default:"3" yaml:"maxBackups"`
		// MaxAgeDays is the number of days to keep rotated files
		MaxAgeDays int `env:"LOG_MAX_AGE_DAYS" env-default:"28" yaml:"maxAgeDays"`
		// Compress gzips rotated files
		Compress bool `env:"LOG_COMPRESS" env-default:"false" yaml:"compress"`
	} `yaml:"log"`

	// Extractor configures link domain extraction
	Extractor struct {
		// HTMLParser selects the href parser: "tree" or "regex"
		HTMLParser string `env:"EXTRACTOR_HTML_PARSER" env-default:"tree" yaml:"htmlParser"`
		// Registrable adds registrable domains (eTLD+1) to the output
		Registrable bool `env:"EXTRACTOR_REGISTRABLE" env-default:"false" yaml:"registrable"`
	} `yaml:"extractor"`

	// Keywords configures the suspicious phrase list
	Keywords struct {
		// Phrases replaces the built-in list when not empty
		Phrases []string `env:"KEYWORDS_PHRASES" env-separator:"," yaml:"phrases"`
	} `yaml:"keywords"`

	// Worker configures batch processing
	Worker struct {
		// Concurrency is the number of emails analyzed in parallel
		Concurrency int `env:"WORKER_CONCURRENCY" env-default:"8" yaml:"concurrency"`
		// MaxLineBytes is the longest accepted input line
		MaxLineBytes int `env:"WORKER_MAX_LINE_BYTES" env-default:"10485760" yaml:"maxLineBytes"`
	} `yaml:"worker"`

	// Metrics configures metrics export
	Metrics struct {
		// TextfilePath is where batch runs write Prometheus metrics; empty disables it
		TextfilePath string `env:"METRICS_TEXTFILE_PATH" yaml:"textfilePath"`
	} `yaml:"metrics"`

	// GracefulShutdownTimeout is the maximum duration to wait for in-flight records after an interrupt
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
// An empty path reads the configuration from environment variables only.
func Load(configPath string) (*Config, error) {
	var cfg Config

	var err error
	if configPath == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(configPath, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values cleanenv cannot express as tags.
func (c *Config) Validate() error {
	if _, err := extractor.NewLinkParser(c.Extractor.HTMLParser); err != nil {
		return fmt.Errorf("invalid extractor.htmlParser: %w", err)
	}
	if c.Worker.Concurrency < 1 {
		return serrors.With(serrors.ErrInvalidInput, "worker.concurrency must be positive, got %d", c.Worker.Concurrency)
	}
	if c.Worker.MaxLineBytes < 1 {
		return serrors.With(serrors.ErrInvalidInput, "worker.maxLineBytes must be positive, got %d", c.Worker.MaxLineBytes)
	}

	return nil
}
