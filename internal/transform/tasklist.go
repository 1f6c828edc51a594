package transform

import (
	"github.com/univerus/marklassian/pkg/adf"
	"github.com/univerus/marklassian/pkg/token"
)

// The output schema forbids non-task content inside a taskList container,
// yet input task items may carry nested ordinary lists that must surface as
// siblings in their original document position. The extraction runs in two
// phases over a tagged intermediate sequence: flatten-with-tagging, then
// regroup. Each phase is a pure function so they stay independently
// testable.

type entryTag uint8

const (
	// tagTask marks task items and nested task-list containers.
	tagTask entryTag = iota
	// tagExtracted marks non-task lists hoisted out of task items.
	tagExtracted
)

type taggedEntry struct {
	tag  entryTag
	node adf.Node
}

// extractTaskLists converts a task-classified list into an ordered sequence
// of sibling nodes: taskList containers interleaved with any hoisted
// bulletList/orderedList nodes, preserving document order.
func (t *Transformer) extractTaskLists(list token.Token) []adf.Node {
	return t.regroupTaskEntries(t.flattenTaskItems(list.Items))
}

// flattenTaskItems walks the item sequence in order, emitting a task-tagged
// entry per item followed by entries for each of its nested lists. Nested
// task lists recurse and stay structurally nested; their own hoisted lists
// bubble up to this level. Nested ordinary lists are tagged extracted.
func (t *Transformer) flattenTaskItems(items []token.Token) []taggedEntry {
	var entries []taggedEntry
	for _, item := range items {
		entries = append(entries, taggedEntry{tag: tagTask, node: t.taskItem(item)})

		for _, tok := range item.Tokens {
			if tok.Type != token.List {
				continue
			}
			if !isTaskList(tok) {
				entries = append(entries, taggedEntry{tag: tagExtracted, node: t.list(tok)})
				continue
			}

			nested := t.flattenTaskItems(tok.Items)
			sub := adf.Node{
				Type:  adf.NodeTaskList,
				Attrs: map[string]any{"localId": t.ids()},
			}
			var bubbled []taggedEntry
			for _, entry := range nested {
				if entry.tag == tagTask {
					sub.Content = append(sub.Content, entry.node)
					continue
				}
				bubbled = append(bubbled, entry)
			}
			entries = append(entries, taggedEntry{tag: tagTask, node: sub})
			entries = append(entries, bubbled...)
		}
	}
	return entries
}

// regroupTaskEntries walks the tagged sequence in order, collecting
// consecutive task-tagged nodes into taskList containers and passing
// extracted nodes through as siblings.
func (t *Transformer) regroupTaskEntries(entries []taggedEntry) []adf.Node {
	var out []adf.Node
	var pending []adf.Node

	flush := func() {
		if len(pending) == 0 {
			return
		}
		out = append(out, adf.Node{
			Type:    adf.NodeTaskList,
			Attrs:   map[string]any{"localId": t.ids()},
			Content: pending,
		})
		pending = nil
	}

	for _, entry := range entries {
		if entry.tag == tagTask {
			pending = append(pending, entry.node)
			continue
		}
		flush()
		out = append(out, entry.node)
	}
	flush()

	return out
}

// taskList builds a taskList container directly, without extraction. This is
// the path for task lists nested inside ordinary list items, where the
// schema already provides a sibling slot and no hoisting applies.
func (t *Transformer) taskList(list token.Token) adf.Node {
	node := adf.Node{
		Type:  adf.NodeTaskList,
		Attrs: map[string]any{"localId": t.ids()},
	}
	for _, item := range list.Items {
		node.Content = append(node.Content, t.taskItem(item))
	}
	return node
}

// taskItem builds one taskItem node. Inline runs are appended directly as
// text nodes because task items hold inline content without paragraph
// wrappers. Nested list tokens are skipped here; the extraction algorithm
// handles them one level up.
func (t *Transformer) taskItem(item token.Token) adf.Node {
	state := adf.StateTodo
	if item.Checked {
		state = adf.StateDone
	}
	node := adf.Node{
		Type: adf.NodeTaskItem,
		Attrs: map[string]any{
			"localId": t.ids(),
			"state":   state,
		},
	}

	var run []token.Token
	flush := func() {
		if len(run) == 0 {
			return
		}
		node.Content = append(node.Content, t.inline(run)...)
		run = nil
	}

	for _, tok := range item.Tokens {
		if inlineBearing[tok.Type] {
			run = append(run, tok)
			continue
		}
		flush()
		switch tok.Type {
		case token.List:
			// Handled by the extraction algorithm one level up.
		case token.Paragraph:
			// Loose items arrive with paragraph children; the schema allows
			// only inline content here, so the wrapper is unwrapped.
			node.Content = append(node.Content, t.inline(tok.Tokens)...)
		default:
			node.Content = append(node.Content, t.block(tok)...)
		}
	}
	flush()

	return node
}
