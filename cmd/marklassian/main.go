package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/univerus/marklassian"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatalf("marklassian: %v", err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("marklassian", flag.ExitOnError)
	input := fs.String("input", "-", "Markdown file to convert, or - for stdin")
	extensions := fs.String("extensions", "", "Comma separated tokenizer extensions (defaults to gfm,tasklist)")
	frontMatter := fs.Bool("frontmatter", false, "Strip YAML frontmatter and emit it alongside the document")
	validate := fs.Bool("validate", false, "Validate the produced document against the embedded schema")
	pretty := fs.Bool("pretty", false, "Indent the JSON output")
	logLevel := fs.String("log-level", "", "Log level (trace, debug, info, warn, error); empty disables logging")
	logFormat := fs.String("log-format", "console", "Log format (json, console, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	source, err := readSource(*input, stdin)
	if err != nil {
		return err
	}

	cfg := marklassian.DefaultConfig()
	cfg.Tokenizer.Extensions = splitExtensions(*extensions)
	cfg.ValidateOutput = *validate
	if *logLevel != "" {
		cfg.Logging = marklassian.LoggingConfig{
			Provider: "gologger",
			Level:    *logLevel,
			Format:   *logFormat,
		}
	}

	converter, err := marklassian.New(cfg)
	if err != nil {
		return fmt.Errorf("configure converter: %w", err)
	}

	ctx := context.Background()

	var payload any
	if *frontMatter {
		doc, err := converter.ConvertDocument(ctx, source)
		if err != nil {
			return fmt.Errorf("convert document: %w", err)
		}
		payload = struct {
			Meta marklassian.FrontMatter `json:"meta"`
			ADF  any                     `json:"adf"`
		}{Meta: doc.Meta, ADF: doc.ADF}
	} else {
		doc, err := converter.Convert(ctx, source)
		if err != nil {
			return fmt.Errorf("convert: %w", err)
		}
		payload = doc
	}

	enc := json.NewEncoder(stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func readSource(input string, stdin io.Reader) ([]byte, error) {
	if input == "" || input == "-" {
		source, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return source, nil
	}
	source, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", input, err)
	}
	return source, nil
}

func splitExtensions(list string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	var out []string
	for _, name := range strings.Split(list, ",") {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
