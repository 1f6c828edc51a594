package logging

import (
	"context"
	"maps"

	"github.com/univerus/marklassian/pkg/interfaces"
)

const (
	rootModule       = "marklassian"
	tokenizerModule  = "marklassian.tokenizer"
	transformModule  = "marklassian.transform"
	validationModule = "marklassian.validation"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// RootLogger returns the logger namespace for the converter facade.
func RootLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, rootModule)
}

// TokenizerLogger returns the logger namespace reserved for the tokenizer.
func TokenizerLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, tokenizerModule)
}

// TransformLogger returns the logger namespace reserved for the engine.
func TransformLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, transformModule)
}

// ValidationLogger returns the logger namespace reserved for output checks.
func ValidationLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, validationModule)
}

// WithFields attaches structured fields when the implementation supports the
// optional FieldsLogger extension; otherwise the logger passes through
// unchanged. The field map is copied so callers can reuse theirs.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		maps.Copy(copied, fields)
		return fieldsLogger.WithFields(copied)
	}

	return logger
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
