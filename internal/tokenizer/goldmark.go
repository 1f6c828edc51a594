// Package tokenizer lowers raw Markdown into the token model consumed by
// the transformation engine, using the goldmark parser.
package tokenizer

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/univerus/marklassian/pkg/interfaces"
	"github.com/univerus/marklassian/pkg/token"
)

// GoldmarkTokenizer implements interfaces.Tokenizer on top of the goldmark
// engine. The tokenizer is intentionally stateless so callers can reuse a
// single instance across conversions without additional locking.
type GoldmarkTokenizer struct {
	defaultOptions interfaces.TokenizeOptions
}

var _ interfaces.Tokenizer = (*GoldmarkTokenizer)(nil)

// NewGoldmark constructs a tokenizer with sensible defaults (GFM extensions
// plus task lists). Callers can override behaviour per invocation through
// TokenizeWithOptions.
func NewGoldmark(defaults interfaces.TokenizeOptions) *GoldmarkTokenizer {
	return &GoldmarkTokenizer{
		defaultOptions: defaults,
	}
}

// Tokenize satisfies interfaces.Tokenizer using the default configuration.
func (t *GoldmarkTokenizer) Tokenize(source []byte) ([]token.Token, error) {
	return t.TokenizeWithOptions(source, t.defaultOptions)
}

// TokenizeWithOptions lexes Markdown into block tokens using the provided
// options. goldmark parsing cannot fail on well-formed byte input, so the
// error return exists only to satisfy the collaborator contract.
func (t *GoldmarkTokenizer) TokenizeWithOptions(source []byte, opts interfaces.TokenizeOptions) ([]token.Token, error) {
	engine := newGoldmarkEngine(opts)
	doc := engine.Parser().Parse(text.NewReader(source))
	return blockTokens(doc, source), nil
}

// newGoldmarkEngine builds a goldmark.Markdown configured from the supplied
// options. Only the parser half of the engine is exercised; no renderer
// options apply. Unsupported extension names are ignored.
func newGoldmarkEngine(opts interfaces.TokenizeOptions) goldmark.Markdown {
	exts := collectExtensions(opts.Extensions)

	engineOptions := []goldmark.Option{}
	if len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}

	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
}

// KnownExtension reports whether the named extension can be enabled.
func KnownExtension(name string) bool {
	_, ok := extensionRegistry[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{
			extension.GFM,
			extension.TaskList,
		}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}

		if _, ok := seen[key]; ok {
			continue
		}

		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}

		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders
}
