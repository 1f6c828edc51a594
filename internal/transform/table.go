package transform

import (
	"github.com/univerus/marklassian/pkg/adf"
	"github.com/univerus/marklassian/pkg/token"
)

// table builds a table node: one header row when at least one header cell
// exists, then one tableRow per body row.
func (t *Transformer) table(tok token.Token) adf.Node {
	node := adf.Node{Type: adf.NodeTable}

	if len(tok.Header) > 0 {
		row := adf.Node{Type: adf.NodeTableRow}
		for _, cell := range tok.Header {
			row.Content = append(row.Content, t.tableCell(cell, adf.NodeTableHeader))
		}
		node.Content = append(node.Content, row)
	}

	for _, cells := range tok.Rows {
		row := adf.Node{Type: adf.NodeTableRow}
		for _, cell := range cells {
			row.Content = append(row.Content, t.tableCell(cell, adf.NodeTableCell))
		}
		node.Content = append(node.Content, row)
	}

	return node
}

// tableCell wraps a cell's content in the given cell type. The schema
// forbids empty cell content, so an empty result is padded with a paragraph
// holding a single-space text node.
func (t *Transformer) tableCell(cell token.Cell, cellType string) adf.Node {
	content := t.splitParagraph(cell.Tokens)
	if len(content) == 0 {
		content = []adf.Node{{
			Type:    adf.NodeParagraph,
			Content: []adf.Node{{Type: adf.NodeText, Text: " "}},
		}}
	}
	return adf.Node{Type: cellType, Content: content}
}
