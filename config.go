package marklassian

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/univerus/marklassian/internal/tokenizer"
)

var (
	ErrLoggingProviderUnknown    = errors.New("marklassian config: logging provider is invalid")
	ErrLoggingLevelInvalid       = errors.New("marklassian config: logging level is invalid")
	ErrLoggingFormatInvalid      = errors.New("marklassian config: logging format is invalid")
	ErrTokenizerExtensionUnknown = errors.New("marklassian config: tokenizer extension is unknown")
)

// Config controls how a Converter tokenizes input, logs, and checks output.
type Config struct {
	Tokenizer TokenizerConfig
	Logging   LoggingConfig

	// ValidateOutput re-checks every produced document against the embedded
	// ADF schema subset before returning it. The engine maintains the schema
	// invariants by construction, so this is off by default.
	ValidateOutput bool
}

// TokenizerConfig customises the default goldmark tokenizer. Extensions is a
// list of named extensions ("gfm", "tasklist", "table", "strikethrough",
// "linkify"); empty enables the GFM defaults plus task lists.
type TokenizerConfig struct {
	Extensions []string
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	// Provider selects the logging backend: "" or "noop" for silence,
	// "gologger" for the go-logger adapter.
	Provider  string
	Level     string
	Format    string
	AddSource bool
}

// DefaultConfig returns the configuration used by the package-level Convert
// helper: default tokenizer extensions, no logging, no output validation.
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Provider: "noop"},
	}
}

// Validate checks the configuration before a Converter is built.
func (cfg Config) Validate() error {
	if err := cfg.Tokenizer.Validate(); err != nil {
		return err
	}
	return cfg.Logging.Validate()
}

// Validate rejects extension names the tokenizer does not know. The ozzo
// error map does not unwrap, so the sentinel is reattached here.
func (cfg TokenizerConfig) Validate() error {
	err := validation.ValidateStruct(&cfg,
		validation.Field(&cfg.Extensions, validation.Each(validation.By(func(value any) error {
			name, _ := value.(string)
			if !tokenizer.KnownExtension(name) {
				return fmt.Errorf("unknown extension %q", name)
			}
			return nil
		}))),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTokenizerExtensionUnknown, err)
	}
	return nil
}

// Validate checks provider, level, and format against the supported sets.
func (cfg LoggingConfig) Validate() error {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "noop", "gologger":
	default:
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, cfg.Provider)
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, cfg.Level)
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "json", "console", "pretty":
	default:
		return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, cfg.Format)
	}

	return nil
}
