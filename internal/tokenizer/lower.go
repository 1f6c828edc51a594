package tokenizer

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark/ast"
	extast "github.com/yuin/goldmark/extension/ast"
	gtext "github.com/yuin/goldmark/text"

	"github.com/univerus/marklassian/pkg/token"
)

// blockTokens lowers the direct children of a goldmark block node into block
// tokens. AST nodes without a token mapping are skipped.
func blockTokens(n ast.Node, source []byte) []token.Token {
	var toks []token.Token
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if tok, ok := blockToken(child, source); ok {
			toks = append(toks, tok)
		}
	}
	return toks
}

func blockToken(n ast.Node, source []byte) (token.Token, bool) {
	switch node := n.(type) {
	case *ast.Paragraph:
		return token.Token{Type: token.Paragraph, Tokens: inlineTokens(node, source)}, true
	case *ast.TextBlock:
		// Tight list items carry their inline content in a TextBlock; the
		// engine treats the resulting text token as an inline-bearing run.
		return token.Token{Type: token.Text, Tokens: inlineTokens(node, source)}, true
	case *ast.Heading:
		return token.Token{Type: token.Heading, Depth: node.Level, Tokens: inlineTokens(node, source)}, true
	case *ast.List:
		return listToken(node, source), true
	case *ast.FencedCodeBlock:
		return token.Token{
			Type: token.Code,
			Text: blockLines(node, source),
			Lang: string(node.Language(source)),
		}, true
	case *ast.CodeBlock:
		return token.Token{Type: token.Code, Text: blockLines(node, source)}, true
	case *ast.Blockquote:
		return token.Token{Type: token.Blockquote, Tokens: blockTokens(node, source)}, true
	case *ast.ThematicBreak:
		return token.Token{Type: token.HR}, true
	case *extast.Table:
		return tableToken(node, source), true
	case *ast.HTMLBlock:
		return token.Token{Type: token.HTML, Text: blockLines(node, source)}, true
	default:
		return token.Token{}, false
	}
}

func listToken(list *ast.List, source []byte) token.Token {
	tok := token.Token{Type: token.List, Ordered: list.IsOrdered()}
	if list.IsOrdered() {
		tok.Start = list.Start
	}
	for child := list.FirstChild(); child != nil; child = child.NextSibling() {
		item, ok := child.(*ast.ListItem)
		if !ok {
			continue
		}
		tok.Items = append(tok.Items, listItemToken(item, source))
	}
	return tok
}

func listItemToken(item *ast.ListItem, source []byte) token.Token {
	tok := token.Token{Type: token.ListItem}
	if checkbox, ok := taskCheckBox(item); ok {
		tok.Task = true
		tok.Checked = checkbox.IsChecked
	}
	tok.Tokens = blockTokens(item, source)
	return tok
}

// taskCheckBox finds the checkbox the TaskList extension parks as the first
// inline child of the item's first block.
func taskCheckBox(item *ast.ListItem) (*extast.TaskCheckBox, bool) {
	first := item.FirstChild()
	if first == nil {
		return nil, false
	}
	checkbox, ok := first.FirstChild().(*extast.TaskCheckBox)
	return checkbox, ok
}

// inlineTokens lowers inline children. Adjacent text segments merge into one
// text token with soft line breaks embedded as newlines, mirroring how the
// token model represents hard-wrapped source; hard breaks become br tokens.
func inlineTokens(parent ast.Node, source []byte) []token.Token {
	var toks []token.Token
	var buf strings.Builder
	trimNext := false

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		toks = append(toks, token.Token{Type: token.Text, Text: buf.String()})
		buf.Reset()
	}
	appendText := func(s string) {
		if trimNext {
			s = strings.TrimLeft(s, " \t")
			trimNext = false
		}
		buf.WriteString(s)
	}

	for child := parent.FirstChild(); child != nil; child = child.NextSibling() {
		switch node := child.(type) {
		case *ast.Text:
			appendText(string(node.Segment.Value(source)))
			if node.HardLineBreak() {
				flush()
				toks = append(toks, token.Token{Type: token.Br})
			} else if node.SoftLineBreak() {
				buf.WriteString("\n")
			}
		case *ast.String:
			appendText(string(node.Value))
		case *extast.TaskCheckBox:
			// Consumed at the list-item level; the marker's trailing space
			// would otherwise leak into the item text.
			trimNext = true
		case *ast.Emphasis:
			flush()
			emType := token.Em
			if node.Level == 2 {
				emType = token.Strong
			}
			toks = append(toks, token.Token{Type: emType, Tokens: inlineTokens(node, source)})
		case *extast.Strikethrough:
			flush()
			toks = append(toks, token.Token{Type: token.Del, Tokens: inlineTokens(node, source)})
		case *ast.Link:
			flush()
			toks = append(toks, token.Token{
				Type:   token.Link,
				Href:   string(node.Destination),
				Tokens: inlineTokens(node, source),
			})
		case *ast.AutoLink:
			flush()
			url := string(node.URL(source))
			label := string(node.Label(source))
			if node.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(url, "mailto:") {
				url = "mailto:" + url
			}
			toks = append(toks, token.Token{
				Type:   token.Link,
				Href:   url,
				Tokens: []token.Token{{Type: token.Text, Text: label}},
			})
		case *ast.CodeSpan:
			flush()
			toks = append(toks, token.Token{Type: token.Codespan, Text: textOf(node, source)})
		case *ast.Image:
			flush()
			toks = append(toks, token.Token{
				Type: token.Image,
				Href: string(node.Destination),
				Text: textOf(node, source),
			})
		case *ast.RawHTML:
			flush()
			toks = append(toks, token.Token{Type: token.HTML, Text: segmentsText(node.Segments, source)})
		}
	}
	flush()

	return toks
}

func tableToken(table *extast.Table, source []byte) token.Token {
	tok := token.Token{Type: token.Table}
	for child := table.FirstChild(); child != nil; child = child.NextSibling() {
		switch row := child.(type) {
		case *extast.TableHeader:
			tok.Header = rowCells(row, source)
		case *extast.TableRow:
			tok.Rows = append(tok.Rows, rowCells(row, source))
		}
	}
	return tok
}

func rowCells(row ast.Node, source []byte) []token.Cell {
	var cells []token.Cell
	for child := row.FirstChild(); child != nil; child = child.NextSibling() {
		if _, ok := child.(*extast.TableCell); !ok {
			continue
		}
		cells = append(cells, token.Cell{Tokens: inlineTokens(child, source)})
	}
	return cells
}

// textOf collects the literal text of every descendant text node.
func textOf(n ast.Node, source []byte) string {
	var buf strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch node := child.(type) {
		case *ast.Text:
			buf.Write(node.Segment.Value(source))
		case *ast.String:
			buf.Write(node.Value)
		default:
			buf.WriteString(textOf(child, source))
		}
	}
	return buf.String()
}

// blockLines joins a block node's raw lines, trimming the final newline so
// code blocks do not gain a trailing blank line.
func blockLines(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(source))
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func segmentsText(segments *gtext.Segments, source []byte) string {
	var buf bytes.Buffer
	for i := 0; i < segments.Len(); i++ {
		segment := segments.At(i)
		buf.Write(segment.Value(source))
	}
	return buf.String()
}
