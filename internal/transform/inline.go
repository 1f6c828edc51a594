package transform

import (
	"regexp"
	"strings"

	"github.com/univerus/marklassian/pkg/adf"
	"github.com/univerus/marklassian/pkg/token"
)

// inline flattens an ordered inline token sequence into text and hardBreak
// nodes. Empty text nodes are filtered out; unrecognised inline types
// contribute nothing.
func (t *Transformer) inline(toks []token.Token) []adf.Node {
	var out []adf.Node
	for _, tok := range toks {
		switch tok.Type {
		case token.Text:
			if len(tok.Tokens) > 0 {
				out = append(out, t.inline(tok.Tokens)...)
				continue
			}
			if text := safeText(tok); text != "" {
				out = append(out, adf.Node{Type: adf.NodeText, Text: text})
			}
		case token.Em, token.Strong, token.Del:
			// One output text node per direct child, each seeded with the
			// wrapper's own mark so strong-containing-em merges correctly.
			// Hard breaks pass through unmarked.
			for _, child := range tok.Tokens {
				if child.Type == token.Br {
					out = append(out, adf.Node{Type: adf.NodeHardBreak})
					continue
				}
				set := newMarkSet()
				seedMark(tok, set)
				marks := resolveMarks(child, set)
				if text := inlineText(child); text != "" {
					out = append(out, adf.Node{Type: adf.NodeText, Text: text, Marks: marks})
				}
			}
		case token.Link, token.Codespan:
			set := newMarkSet()
			marks := resolveMarks(tok, set)
			if text := inlineText(tok); text != "" {
				out = append(out, adf.Node{Type: adf.NodeText, Text: text, Marks: marks})
			}
		case token.Br:
			out = append(out, adf.Node{Type: adf.NodeHardBreak})
		}
	}
	return out
}

// inlineText extracts the literal text for one inline token. Code spans keep
// their text untouched; everything else goes through safe-text extraction.
func inlineText(tok token.Token) string {
	if tok.Type == token.Codespan {
		return tok.Text
	}
	return safeText(tok)
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// safeText unwraps exactly-one-child chains down to a literal text carrier,
// then normalizes hard-wrapped source text into a single line: one trailing
// newline is stripped, remaining newlines become spaces, and whitespace runs
// collapse to a single space. Intentional line breaks arrive as separate br
// tokens, not embedded newlines, so nothing meaningful is lost. The
// normalization is idempotent.
func safeText(tok token.Token) string {
	for len(tok.Tokens) == 1 {
		tok = tok.Tokens[0]
	}
	text := strings.TrimSuffix(tok.Text, "\n")
	text = strings.ReplaceAll(text, "\n", " ")
	return whitespaceRun.ReplaceAllString(text, " ")
}
