// Package marklassian converts Markdown text into Atlassian Document Format
// (ADF), the JSON document tree consumed by Jira and Confluence rich text
// bodies.
//
// The pipeline has two stages. A tokenizer collaborator (goldmark by
// default) lowers raw Markdown into the token model of pkg/token; the
// transformation engine then maps the token tree onto the
// schema-constrained ADF tree in one pass. Task lists get special care: the
// ADF schema forbids non-task content inside a taskList container, so
// ordinary lists nested under task items are hoisted into document-order
// siblings rather than silently reparented or dropped.
//
//	doc, err := marklassian.Convert("# Hello\n\n- [ ] ship it")
//	payload, _ := json.Marshal(doc)
package marklassian

import (
	"context"
	"fmt"
	"strings"

	"github.com/univerus/marklassian/internal/logging"
	"github.com/univerus/marklassian/internal/logging/gologger"
	"github.com/univerus/marklassian/internal/tokenizer"
	"github.com/univerus/marklassian/internal/transform"
	"github.com/univerus/marklassian/internal/validation"
	"github.com/univerus/marklassian/pkg/adf"
	"github.com/univerus/marklassian/pkg/interfaces"
)

// Tokenizer exports the tokenizer collaborator contract.
type Tokenizer = interfaces.Tokenizer

// TokenizeOptions exports the tokenizer option struct.
type TokenizeOptions = interfaces.TokenizeOptions

// IDGenerator exports the identifier generator contract.
type IDGenerator = interfaces.IDGenerator

// Logger exports the leveled logging contract.
type Logger = interfaces.Logger

// LoggerProvider exports the named-logger provider contract.
type LoggerProvider = interfaces.LoggerProvider

// Converter is the conversion facade. Instances are stateless apart from
// their collaborators and safe for concurrent use.
type Converter struct {
	cfg       Config
	tokenizer interfaces.Tokenizer
	engine    *transform.Transformer
	ids       interfaces.IDGenerator
	provider  interfaces.LoggerProvider
	logger    interfaces.Logger
	tokLog    interfaces.Logger
	checkLog  interfaces.Logger
}

// Option overrides a Converter collaborator.
type Option func(*Converter)

// WithTokenizer replaces the default goldmark tokenizer.
func WithTokenizer(tok interfaces.Tokenizer) Option {
	return func(c *Converter) {
		c.tokenizer = tok
	}
}

// WithIDGenerator replaces the random UUID generator, typically with a
// deterministic one in tests.
func WithIDGenerator(ids interfaces.IDGenerator) Option {
	return func(c *Converter) {
		c.ids = ids
	}
}

// WithLoggerProvider supplies module loggers, overriding cfg.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Converter) {
		c.provider = provider
	}
}

// New constructs a Converter from the provided configuration and optional
// collaborator overrides.
func New(cfg Config, opts ...Option) (*Converter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Converter{cfg: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if c.provider == nil {
		provider, err := newLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		c.provider = provider
	}
	c.logger = logging.RootLogger(c.provider)
	c.tokLog = logging.TokenizerLogger(c.provider)
	c.checkLog = logging.ValidationLogger(c.provider)

	if c.tokenizer == nil {
		c.tokenizer = tokenizer.NewGoldmark(interfaces.TokenizeOptions{
			Extensions: cfg.Tokenizer.Extensions,
		})
	}
	if c.ids == nil {
		c.ids = transform.DefaultIDGenerator
	}
	c.engine = transform.New(c.ids, logging.TransformLogger(c.provider))

	return c, nil
}

// Convert tokenizes Markdown and transforms the token tree into a version 1
// ADF document. The context is consulted before work begins; the
// transformation itself is synchronous and has no suspension points.
func (c *Converter) Convert(ctx context.Context, source []byte) (*adf.Document, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	toks, err := c.tokenizer.Tokenize(source)
	if err != nil {
		return nil, fmt.Errorf("marklassian: tokenize: %w", err)
	}
	c.tokLog.Debug("tokenized source", "tokens", len(toks))

	doc := adf.NewDocument(c.engine.Blocks(toks))

	if c.cfg.ValidateOutput {
		if err := validation.Document(doc); err != nil {
			c.checkLog.Error("document failed schema validation", "error", err)
			return nil, fmt.Errorf("marklassian: validate output: %w", err)
		}
	}

	c.logger.Debug("converted document", "blocks", len(doc.Content))
	return doc, nil
}

// Convert transforms Markdown into an ADF document using the default
// configuration: goldmark tokenizer with GFM and task-list extensions,
// random UUID identifiers, no logging.
func Convert(source string) (*adf.Document, error) {
	converter, err := New(DefaultConfig())
	if err != nil {
		return nil, err
	}
	return converter.Convert(context.Background(), []byte(source))
}

func newLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "noop":
		return nil, nil
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
		})
	default:
		return nil, fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, cfg.Provider)
	}
}
