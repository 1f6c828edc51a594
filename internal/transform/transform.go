// Package transform implements the token-tree to ADF-tree conversion engine.
//
// The engine is a single-pass, purely functional walk over an immutable
// token tree. It is lenient: tokens of unrecognised type are silently
// dropped rather than reported, so tokenizer extensions stay forward
// compatible. Structural fields are assumed well formed; the engine does
// not re-validate tokenizer output.
package transform

import (
	"github.com/univerus/marklassian/internal/logging"
	"github.com/univerus/marklassian/pkg/adf"
	"github.com/univerus/marklassian/pkg/interfaces"
	"github.com/univerus/marklassian/pkg/token"
)

// Transformer converts block-level tokens into ADF nodes. Instances are
// stateless apart from the injected identifier generator and are safe for
// concurrent use when the generator is.
type Transformer struct {
	ids interfaces.IDGenerator
	log interfaces.Logger
}

// New constructs a Transformer. A nil generator falls back to random UUIDs
// and a nil logger to the no-op implementation.
func New(ids interfaces.IDGenerator, log interfaces.Logger) *Transformer {
	if ids == nil {
		ids = DefaultIDGenerator
	}
	if log == nil {
		log = logging.NoOp()
	}
	return &Transformer{ids: ids, log: log}
}

// Blocks converts an ordered sequence of block-level tokens into a flattened
// ordered sequence of ADF nodes. One token may yield zero, one, or several
// nodes: paragraphs split around embedded images, and task lists may expand
// into several sibling containers.
func (t *Transformer) Blocks(toks []token.Token) []adf.Node {
	var out []adf.Node
	for _, tok := range toks {
		out = append(out, t.block(tok)...)
	}
	return out
}

// block converts a single block-level token.
func (t *Transformer) block(tok token.Token) []adf.Node {
	switch tok.Type {
	case token.Paragraph:
		return t.splitParagraph(tok.Tokens)
	case token.Heading:
		return []adf.Node{{
			Type:    adf.NodeHeading,
			Attrs:   map[string]any{"level": tok.Depth},
			Content: t.inline(tok.Tokens),
		}}
	case token.List:
		if isTaskList(tok) {
			return t.extractTaskLists(tok)
		}
		return []adf.Node{t.list(tok)}
	case token.Code:
		return []adf.Node{t.codeBlock(tok)}
	case token.Blockquote:
		return []adf.Node{{
			Type:    adf.NodeBlockquote,
			Content: t.Blocks(tok.Tokens),
		}}
	case token.HR:
		return []adf.Node{{Type: adf.NodeRule}}
	case token.Table:
		return []adf.Node{t.table(tok)}
	default:
		t.log.Debug("dropping unsupported block token", "type", string(tok.Type))
		return nil
	}
}

// codeBlock preserves the literal text byte-for-byte. The language attribute
// is attached only when the block declared one; an absent attribute keeps
// round-trip fidelity, so no placeholder is substituted.
func (t *Transformer) codeBlock(tok token.Token) adf.Node {
	node := adf.Node{
		Type:    adf.NodeCodeBlock,
		Content: []adf.Node{{Type: adf.NodeText, Text: tok.Text}},
	}
	if tok.Lang != "" {
		node.Attrs = map[string]any{"language": tok.Lang}
	}
	return node
}
