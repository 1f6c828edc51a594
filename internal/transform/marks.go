package transform

import (
	"github.com/univerus/marklassian/pkg/adf"
	"github.com/univerus/marklassian/pkg/token"
)

// markSet accumulates marks keyed by mark type while preserving first
// insertion order, so the finalized list is deterministic and deduplicated.
type markSet struct {
	order  []string
	byType map[string]*adf.Mark
}

func newMarkSet() *markSet {
	return &markSet{byType: map[string]*adf.Mark{}}
}

// add inserts a mark unless one of the same type exists. When overwrite is
// set, an existing mark has its attrs rewritten in place instead; this is
// how nested links resolve to the innermost URL.
func (s *markSet) add(markType string, attrs map[string]any, overwrite bool) {
	if existing, ok := s.byType[markType]; ok {
		if overwrite {
			existing.Attrs = attrs
		}
		return
	}
	mark := &adf.Mark{Type: markType, Attrs: attrs}
	s.byType[markType] = mark
	s.order = append(s.order, markType)
}

// marks finalizes the set into an ordered list. A code mark suppresses all
// styling except link, matching the schema restriction on the marks allowed
// to co-occur with code.
func (s *markSet) marks() []adf.Mark {
	if _, hasCode := s.byType[adf.MarkCode]; hasCode {
		var out []adf.Mark
		for _, markType := range s.order {
			if markType == adf.MarkCode || markType == adf.MarkLink {
				out = append(out, *s.byType[markType])
			}
		}
		return out
	}

	out := make([]adf.Mark, 0, len(s.order))
	for _, markType := range s.order {
		out = append(out, *s.byType[markType])
	}
	return out
}

// seedMark records the mark contributed by the token's own type. Emphasis,
// strong, strike, and code marks are added only if absent; link marks always
// overwrite so the innermost href wins.
func seedMark(tok token.Token, set *markSet) {
	switch tok.Type {
	case token.Em:
		set.add(adf.MarkEm, nil, false)
	case token.Strong:
		set.add(adf.MarkStrong, nil, false)
	case token.Del:
		set.add(adf.MarkStrike, nil, false)
	case token.Link:
		set.add(adf.MarkLink, map[string]any{"href": tok.Href}, true)
	case token.Codespan:
		set.add(adf.MarkCode, nil, false)
	}
}

// resolveMarks computes the final ordered mark list for a chain of singly
// nested inline tokens. It recurses only through exactly-one-child chains,
// collapsing constructs like strong-containing-em into one merged mark set
// on one text node; an empty or branching child list stops the recursion.
func resolveMarks(tok token.Token, set *markSet) []adf.Mark {
	seedMark(tok, set)
	if len(tok.Tokens) == 1 {
		return resolveMarks(tok.Tokens[0], set)
	}
	return set.marks()
}
