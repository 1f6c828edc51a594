// Package adf models the Atlassian Document Format tree produced by the
// conversion engine. The types map one-to-one onto the JSON wire shape so a
// Document can be handed straight to encoding/json.
package adf

// Node type identifiers used by the engine.
const (
	NodeDoc         = "doc"
	NodeParagraph   = "paragraph"
	NodeHeading     = "heading"
	NodeBulletList  = "bulletList"
	NodeOrderedList = "orderedList"
	NodeListItem    = "listItem"
	NodeTaskList    = "taskList"
	NodeTaskItem    = "taskItem"
	NodeCodeBlock   = "codeBlock"
	NodeBlockquote  = "blockquote"
	NodeRule        = "rule"
	NodeTable       = "table"
	NodeTableRow    = "tableRow"
	NodeTableHeader = "tableHeader"
	NodeTableCell   = "tableCell"
	NodeMediaSingle = "mediaSingle"
	NodeMedia       = "media"
	NodeText        = "text"
	NodeHardBreak   = "hardBreak"
)

// Mark type identifiers.
const (
	MarkEm     = "em"
	MarkStrong = "strong"
	MarkStrike = "strike"
	MarkLink   = "link"
	MarkCode   = "code"
)

// Task item states.
const (
	StateTodo = "TODO"
	StateDone = "DONE"
)

// Node is a single ADF node. Leaf text nodes populate Text and optionally
// Marks; container nodes populate Content; attribute-bearing nodes populate
// Attrs. Nodes are never mutated once built.
type Node struct {
	Type    string         `json:"type"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Content []Node         `json:"content,omitempty"`
	Marks   []Mark         `json:"marks,omitempty"`
	Text    string         `json:"text,omitempty"`
}

// Mark is a text decoration attached to a text node.
type Mark struct {
	Type  string         `json:"type"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// Document is the root of an ADF tree. Content always serializes, even when
// empty, because the platform schema requires the field on doc nodes.
type Document struct {
	Version int    `json:"version"`
	Type    string `json:"type"`
	Content []Node `json:"content"`
}

// NewDocument wraps converted block nodes in a version 1 doc envelope. A nil
// content slice is replaced with an empty one so the document marshals with
// a content array present.
func NewDocument(content []Node) *Document {
	if content == nil {
		content = []Node{}
	}
	return &Document{
		Version: 1,
		Type:    NodeDoc,
		Content: content,
	}
}
