package transform

import (
	"github.com/univerus/marklassian/pkg/adf"
	"github.com/univerus/marklassian/pkg/token"
)

// splitParagraph partitions one paragraph's inline tokens around embedded
// images into alternating paragraph and media nodes. A paragraph consisting
// of exactly one image emits a bare media container with no paragraph
// wrapper.
func (t *Transformer) splitParagraph(toks []token.Token) []adf.Node {
	if len(toks) == 1 && toks[0].Type == token.Image {
		return []adf.Node{t.media(toks[0])}
	}

	var out []adf.Node
	var run []token.Token
	flush := func() {
		if len(run) == 0 {
			return
		}
		if content := t.inline(run); len(content) > 0 {
			out = append(out, adf.Node{Type: adf.NodeParagraph, Content: content})
		}
		run = nil
	}

	for _, tok := range toks {
		if tok.Type == token.Image {
			flush()
			out = append(out, t.media(tok))
			continue
		}
		run = append(run, tok)
	}
	flush()

	return out
}

// media builds the single-media container for an image token. The url is the
// image target and alt carries the display text, possibly empty.
func (t *Transformer) media(tok token.Token) adf.Node {
	return adf.Node{
		Type:  adf.NodeMediaSingle,
		Attrs: map[string]any{"layout": "center"},
		Content: []adf.Node{{
			Type: adf.NodeMedia,
			Attrs: map[string]any{
				"type": "external",
				"url":  tok.Href,
				"alt":  tok.Text,
			},
		}},
	}
}
