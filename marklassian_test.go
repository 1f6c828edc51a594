package marklassian

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/univerus/marklassian/pkg/adf"
)

func newTestConverter(t *testing.T, cfg Config) *Converter {
	t.Helper()
	var n int
	converter, err := New(cfg, WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return converter
}

func convert(t *testing.T, source string) *adf.Document {
	t.Helper()
	cfg := DefaultConfig()
	cfg.ValidateOutput = true
	doc, err := newTestConverter(t, cfg).Convert(context.Background(), []byte(source))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	return doc
}

func TestConvertTaskList(t *testing.T) {
	doc := convert(t, "- [ ] Foo bar\n- [ ] Baz yo")

	if len(doc.Content) != 1 || doc.Content[0].Type != adf.NodeTaskList {
		t.Fatalf("expected a single taskList, got %#v", doc.Content)
	}
	items := doc.Content[0].Content
	if len(items) != 2 {
		t.Fatalf("expected 2 task items, got %d", len(items))
	}
	for i, want := range []string{"Foo bar", "Baz yo"} {
		item := items[i]
		if item.Type != adf.NodeTaskItem {
			t.Fatalf("item %d is %s", i, item.Type)
		}
		if item.Attrs["state"] != adf.StateTodo {
			t.Fatalf("item %d state = %v", i, item.Attrs["state"])
		}
		if len(item.Content) != 1 || item.Content[0].Text != want {
			t.Fatalf("item %d content = %#v", i, item.Content)
		}
		if len(item.Content[0].Marks) != 0 {
			t.Fatalf("item %d text carries marks: %#v", i, item.Content[0].Marks)
		}
	}
}

func TestConvertLooseTaskList(t *testing.T) {
	doc := convert(t, "- [ ] alpha\n\n- [ ] beta")

	if len(doc.Content) != 1 || doc.Content[0].Type != adf.NodeTaskList {
		t.Fatalf("expected a single taskList, got %#v", doc.Content)
	}
	items := doc.Content[0].Content
	if len(items) != 2 {
		t.Fatalf("expected 2 task items, got %d", len(items))
	}
	for i, want := range []string{"alpha", "beta"} {
		if len(items[i].Content) != 1 || items[i].Content[0].Type != adf.NodeText {
			t.Fatalf("item %d content = %#v, want a bare text node", i, items[i].Content)
		}
		if items[i].Content[0].Text != want {
			t.Fatalf("item %d text = %q", i, items[i].Content[0].Text)
		}
	}
}

func TestConvertTaskListHoistsNestedOrdinaryList(t *testing.T) {
	source := strings.Join([]string{
		"- [ ] Task 1",
		"  - Item 1.1",
		"  - Item 1.2",
		"- [x] Task 2",
	}, "\n")

	doc := convert(t, source)

	if len(doc.Content) != 3 {
		t.Fatalf("expected 3 top-level nodes, got %d: %#v", len(doc.Content), doc.Content)
	}
	types := []string{doc.Content[0].Type, doc.Content[1].Type, doc.Content[2].Type}
	if types[0] != adf.NodeTaskList || types[1] != adf.NodeBulletList || types[2] != adf.NodeTaskList {
		t.Fatalf("unexpected sibling order: %v", types)
	}
	if doc.Content[2].Content[0].Attrs["state"] != adf.StateDone {
		t.Fatalf("checked task lost its state: %#v", doc.Content[2].Content[0].Attrs)
	}
}

func TestConvertDocumentEnvelope(t *testing.T) {
	doc := convert(t, "# Hello")

	payload, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded["version"] != float64(1) || decoded["type"] != "doc" {
		t.Fatalf("unexpected envelope: %v", decoded)
	}
	if _, ok := decoded["content"]; !ok {
		t.Fatalf("content must always serialize")
	}
}

func TestConvertEmptySource(t *testing.T) {
	doc := convert(t, "")

	if doc.Content == nil || len(doc.Content) != 0 {
		t.Fatalf("expected empty non-nil content, got %#v", doc.Content)
	}
}

func TestConvertMixedDocumentPassesValidation(t *testing.T) {
	source := strings.Join([]string{
		"# Release notes",
		"",
		"Some *styled* text with a [link](https://example.com) and `code`.",
		"",
		"> quoted",
		"",
		"| a | b |",
		"| --- | --- |",
		"| 1 |  |",
		"",
		"```go",
		"fmt.Println(1)",
		"```",
		"",
		"---",
		"",
		"1. one",
		"2. two",
		"",
		"- [ ] open",
		"- [x] done",
	}, "\n")

	doc := convert(t, source)

	if len(doc.Content) == 0 {
		t.Fatalf("expected content")
	}
}

func TestConvertContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	converter := newTestConverter(t, DefaultConfig())
	if _, err := converter.Convert(ctx, []byte("# x")); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestPackageLevelConvert(t *testing.T) {
	doc, err := Convert("plain paragraph")
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if len(doc.Content) != 1 || doc.Content[0].Type != adf.NodeParagraph {
		t.Fatalf("unexpected content: %#v", doc.Content)
	}
}

func TestConvertSoftWrappedParagraph(t *testing.T) {
	doc := convert(t, "line one\nline two")

	para := doc.Content[0]
	if len(para.Content) != 1 || para.Content[0].Text != "line one line two" {
		t.Fatalf("soft wrap not normalized: %#v", para.Content)
	}
}

func TestConvertCodeBlockPreservesBytes(t *testing.T) {
	doc := convert(t, "```\nline  with   spaces\n\ttabbed\n```")

	block := doc.Content[0]
	if block.Type != adf.NodeCodeBlock {
		t.Fatalf("expected codeBlock, got %s", block.Type)
	}
	if block.Attrs != nil {
		t.Fatalf("language attr must be absent, got %#v", block.Attrs)
	}
	if got := block.Content[0].Text; got != "line  with   spaces\n\ttabbed" {
		t.Fatalf("code text = %q", got)
	}
}
