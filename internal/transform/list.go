package transform

import (
	"github.com/univerus/marklassian/pkg/adf"
	"github.com/univerus/marklassian/pkg/token"
)

// inlineBearing marks the token types that accumulate into paragraph runs
// inside list and task items.
var inlineBearing = map[token.Type]bool{
	token.Text:     true,
	token.Em:       true,
	token.Strong:   true,
	token.Del:      true,
	token.Link:     true,
	token.Codespan: true,
}

// isTaskList reports whether every item of the list is task-flagged. An
// empty list is never a task list, and a mixed list is treated as ordinary
// with its items' task flags ignored.
func isTaskList(list token.Token) bool {
	if len(list.Items) == 0 {
		return false
	}
	for _, item := range list.Items {
		if !item.Task {
			return false
		}
	}
	return true
}

// list builds a bulletList or orderedList node. Ordered lists carry their
// declared start number (default 1) in attrs.order.
func (t *Transformer) list(list token.Token) adf.Node {
	node := adf.Node{Type: adf.NodeBulletList}
	if list.Ordered {
		start := list.Start
		if start == 0 {
			start = 1
		}
		node.Type = adf.NodeOrderedList
		node.Attrs = map[string]any{"order": start}
	}
	for _, item := range list.Items {
		node.Content = append(node.Content, t.listItem(item))
	}
	return node
}

// listItem builds one listItem node from a non-task item. Consecutive
// inline-bearing tokens accumulate into a pending run which is flushed as a
// paragraph before any non-inline token's own translation is emitted.
func (t *Transformer) listItem(item token.Token) adf.Node {
	node := adf.Node{Type: adf.NodeListItem}

	var run []token.Token
	flush := func() {
		if len(run) == 0 {
			return
		}
		if content := t.inline(run); len(content) > 0 {
			node.Content = append(node.Content, adf.Node{
				Type:    adf.NodeParagraph,
				Content: content,
			})
		}
		run = nil
	}

	for _, tok := range item.Tokens {
		if inlineBearing[tok.Type] {
			run = append(run, tok)
			continue
		}
		flush()
		if tok.Type == token.List {
			if isTaskList(tok) {
				node.Content = append(node.Content, t.taskList(tok))
			} else {
				node.Content = append(node.Content, t.list(tok))
			}
			continue
		}
		node.Content = append(node.Content, t.block(tok)...)
	}
	flush()

	return node
}
