package adf

import (
	"encoding/json"
	"testing"
)

func TestNewDocumentNeverSerializesNullContent(t *testing.T) {
	payload, err := json.Marshal(NewDocument(nil))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if got := string(payload); got != `{"version":1,"type":"doc","content":[]}` {
		t.Fatalf("unexpected payload: %s", got)
	}
}

func TestNodeOmitsEmptyFields(t *testing.T) {
	payload, err := json.Marshal(Node{Type: NodeRule})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if got := string(payload); got != `{"type":"rule"}` {
		t.Fatalf("unexpected payload: %s", got)
	}
}

func TestTextNodeKeepsMarksOrder(t *testing.T) {
	node := Node{
		Type: NodeText,
		Text: "x",
		Marks: []Mark{
			{Type: MarkStrong},
			{Type: MarkEm},
		},
	}
	payload, err := json.Marshal(node)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{"type":"text","marks":[{"type":"strong"},{"type":"em"}],"text":"x"}`
	if got := string(payload); got != want {
		t.Fatalf("unexpected payload: %s", got)
	}
}
