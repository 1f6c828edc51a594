package logging

import (
	"context"
	"testing"

	"github.com/univerus/marklassian/pkg/interfaces"
)

type recordingLogger struct {
	fields   map[string]any
	messages []string
}

func (r *recordingLogger) log(msg string) {
	r.messages = append(r.messages, msg)
}

func (r *recordingLogger) Trace(msg string, _ ...any) { r.log(msg) }
func (r *recordingLogger) Debug(msg string, _ ...any) { r.log(msg) }
func (r *recordingLogger) Info(msg string, _ ...any)  { r.log(msg) }
func (r *recordingLogger) Warn(msg string, _ ...any)  { r.log(msg) }
func (r *recordingLogger) Error(msg string, _ ...any) { r.log(msg) }
func (r *recordingLogger) Fatal(msg string, _ ...any) { r.log(msg) }

func (r *recordingLogger) WithContext(context.Context) interfaces.Logger {
	return r
}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	merged := map[string]any{}
	for k, v := range r.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &recordingLogger{fields: merged}
}

type stubProvider struct {
	loggers map[string]interfaces.Logger
	seen    []string
}

func (p *stubProvider) GetLogger(name string) interfaces.Logger {
	p.seen = append(p.seen, name)
	if logger, ok := p.loggers[name]; ok {
		return logger
	}
	return nil
}

func TestModuleLoggerAttachesModuleField(t *testing.T) {
	base := &recordingLogger{}
	provider := &stubProvider{loggers: map[string]interfaces.Logger{
		"marklassian.transform": base,
	}}

	logger := TransformLogger(provider)

	recorded, ok := logger.(*recordingLogger)
	if !ok {
		t.Fatalf("expected the provider logger back, got %T", logger)
	}
	if recorded.fields["module"] != "marklassian.transform" {
		t.Fatalf("module field = %v", recorded.fields["module"])
	}
	if len(provider.seen) != 1 || provider.seen[0] != "marklassian.transform" {
		t.Fatalf("provider asked for %v", provider.seen)
	}
}

func TestModuleLoggerDefaultsToRootModule(t *testing.T) {
	provider := &stubProvider{}
	ModuleLogger(provider, "")

	if len(provider.seen) != 1 || provider.seen[0] != "marklassian" {
		t.Fatalf("expected root module lookup, got %v", provider.seen)
	}
}

func TestModuleLoggerNilProviderIsNoOp(t *testing.T) {
	logger := RootLogger(nil)
	if logger == nil {
		t.Fatalf("expected a usable logger")
	}
	// Must not panic.
	logger.Info("dropped")
	logger.WithContext(context.Background()).Error("also dropped")
}

func TestWithFieldsCopiesInput(t *testing.T) {
	base := &recordingLogger{}
	fields := map[string]any{"key": "value"}

	logger := WithFields(base, fields)
	fields["key"] = "mutated"

	recorded, ok := logger.(*recordingLogger)
	if !ok {
		t.Fatalf("expected recordingLogger, got %T", logger)
	}
	if recorded.fields["key"] != "value" {
		t.Fatalf("fields must be copied, got %v", recorded.fields["key"])
	}
}

func TestWithFieldsPassthrough(t *testing.T) {
	if got := WithFields(nil, map[string]any{"a": 1}); got != nil {
		t.Fatalf("nil logger should pass through, got %#v", got)
	}

	base := NoOp()
	if got := WithFields(base, nil); got != base {
		t.Fatalf("empty fields should return the logger unchanged")
	}
}
