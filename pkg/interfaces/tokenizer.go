package interfaces

import "github.com/univerus/marklassian/pkg/token"

// Tokenizer defines how raw Markdown bytes are lowered into the token model
// consumed by the transformation engine. Implementations should be stateless
// so callers can reuse a single instance across conversions without locking.
type Tokenizer interface {
	// Tokenize lexes Markdown into block-level tokens using the tokenizer's
	// default settings.
	Tokenize(source []byte) ([]token.Token, error)
	// TokenizeWithOptions lexes Markdown using the supplied overrides.
	TokenizeWithOptions(source []byte, opts TokenizeOptions) ([]token.Token, error)
}

// TokenizeOptions customises tokenizer behaviour, keeping option names
// readable for configuration unmarshalling.
type TokenizeOptions struct {
	Extensions []string
}

// IDGenerator produces a sufficiently unique identifier for task containers
// and task items. Implementations must be safe for concurrent callers; the
// engine injects a deterministic generator in tests.
type IDGenerator func() string
