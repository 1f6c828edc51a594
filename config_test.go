package marklassian

import (
	"errors"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestTokenizerConfigRejectsUnknownExtension(t *testing.T) {
	cfg := Config{Tokenizer: TokenizerConfig{Extensions: []string{"gfm", "footnote"}}}

	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected unknown extension error")
	}
	if !errors.Is(err, ErrTokenizerExtensionUnknown) {
		t.Fatalf("expected ErrTokenizerExtensionUnknown, got %v", err)
	}
}

func TestTokenizerConfigAcceptsKnownExtensions(t *testing.T) {
	cfg := Config{Tokenizer: TokenizerConfig{Extensions: []string{"gfm", "tasklist", "table"}}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("known extensions rejected: %v", err)
	}
}

func TestLoggingConfigValidation(t *testing.T) {
	cases := []struct {
		name string
		cfg  LoggingConfig
		want error
	}{
		{"empty", LoggingConfig{}, nil},
		{"noop", LoggingConfig{Provider: "noop"}, nil},
		{"gologger", LoggingConfig{Provider: "gologger", Level: "debug", Format: "json"}, nil},
		{"bad provider", LoggingConfig{Provider: "zap"}, ErrLoggingProviderUnknown},
		{"bad level", LoggingConfig{Level: "verbose"}, ErrLoggingLevelInvalid},
		{"bad format", LoggingConfig{Format: "xml"}, ErrLoggingFormatInvalid},
	}

	for _, tc := range cases {
		err := tc.cfg.Validate()
		if tc.want == nil {
			if err != nil {
				t.Fatalf("%s: unexpected error %v", tc.name, err)
			}
			continue
		}
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Provider = "zap"

	if _, err := New(cfg); !errors.Is(err, ErrLoggingProviderUnknown) {
		t.Fatalf("expected provider rejection, got %v", err)
	}
}
