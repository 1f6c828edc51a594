package marklassian

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/univerus/marklassian/pkg/adf"
)

// FrontMatter models YAML metadata extracted from a Markdown document
// before conversion. Unrecognised keys land in Custom so publishing
// pipelines keep their domain-specific values.
type FrontMatter struct {
	Title   string         `yaml:"title"`
	Slug    string         `yaml:"slug"`
	Summary string         `yaml:"summary"`
	Tags    []string       `yaml:"tags"`
	Author  string         `yaml:"author"`
	Date    time.Time      `yaml:"date"`
	Draft   bool           `yaml:"draft"`
	Custom  map[string]any `yaml:",inline"`
}

// Document pairs a converted ADF tree with the metadata and body that
// produced it.
type Document struct {
	Meta FrontMatter
	Body []byte
	ADF  *adf.Document
}

// ConvertDocument strips YAML frontmatter from the source, converts the
// remaining body, and returns both. Sources without frontmatter convert
// as-is with zero metadata.
func (c *Converter) ConvertDocument(ctx context.Context, source []byte) (*Document, error) {
	var meta FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return nil, fmt.Errorf("marklassian: parse frontmatter: %w", err)
	}

	doc, err := c.Convert(ctx, body)
	if err != nil {
		return nil, err
	}

	return &Document{
		Meta: meta,
		Body: body,
		ADF:  doc,
	}, nil
}
