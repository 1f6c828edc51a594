// Package token defines the Markdown token model consumed by the
// transformation engine. Tokens are produced by a tokenizer collaborator
// (see pkg/interfaces.Tokenizer); the engine never lexes raw Markdown
// itself.
package token

// Type discriminates token variants. The engine recognises the types below;
// any other value is silently dropped during transformation so tokenizer
// extensions remain forward compatible.
type Type string

const (
	// Inline-bearing types.
	Text     Type = "text"
	Em       Type = "em"
	Strong   Type = "strong"
	Del      Type = "del"
	Link     Type = "link"
	Codespan Type = "codespan"

	// Block-level types.
	Paragraph  Type = "paragraph"
	Heading    Type = "heading"
	List       Type = "list"
	ListItem   Type = "list_item"
	Code       Type = "code"
	Blockquote Type = "blockquote"
	HR         Type = "hr"
	Table      Type = "table"

	// Leaf inline types.
	Image Type = "image"
	Br    Type = "br"

	// Pass-through types emitted by tokenizers but ignored by the engine.
	HTML  Type = "html"
	Space Type = "space"
)

// Token is a tagged variant over the Markdown constructs the engine
// understands. Structural fields are populated per Type; unused fields stay
// zero. Token trees are treated as immutable by the engine.
type Token struct {
	Type Type

	// Text holds literal content for text, codespan, code, and html tokens,
	// and the alt text for image tokens.
	Text string

	// Depth is the heading level (1-6).
	Depth int

	// Href is the target URL for link and image tokens.
	Href string

	// Lang is the declared language of a fenced code block; empty when the
	// block declared none.
	Lang string

	// Ordered, Start, and Items describe list tokens. Items holds the
	// list_item tokens in document order.
	Ordered bool
	Start   int
	Items   []Token

	// Task and Checked describe list_item tokens flagged as task entries.
	Task    bool
	Checked bool

	// Header and Rows describe table tokens.
	Header []Cell
	Rows   [][]Cell

	// Tokens holds nested content: inline children of emphasis/link/text
	// tokens, block children of blockquote and list_item tokens.
	Tokens []Token
}

// Cell is one table cell with its inline content.
type Cell struct {
	Tokens []Token
}
