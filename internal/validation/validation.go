// Package validation checks produced ADF documents against an embedded
// subset of the platform document schema. The engine maintains the schema
// invariants by construction; validation exists as an optional safety net
// for hosts that want the guarantee enforced at the boundary.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/univerus/marklassian/pkg/adf"
)

// ErrDocumentInvalid wraps every validation failure so callers can test with
// errors.Is without inspecting issue details.
var ErrDocumentInvalid = errors.New("adf document validation failed")

// ValidationIssue captures a single validation failure.
type ValidationIssue struct {
	Location string
	Message  string
}

// PayloadValidationError surfaces validation issues with schema-aware context.
type PayloadValidationError struct {
	Issues []ValidationIssue
	Cause  error
}

func (e *PayloadValidationError) Error() string {
	if len(e.Issues) == 0 {
		if e.Cause != nil {
			return e.Cause.Error()
		}
		return ErrDocumentInvalid.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return strings.Join(parts, "; ")
}

func (e *PayloadValidationError) Unwrap() error {
	return ErrDocumentInvalid
}

// Issues extracts validation issues from an error.
func Issues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}
	var payloadErr *PayloadValidationError
	if errors.As(err, &payloadErr) && payloadErr != nil {
		return payloadErr.Issues
	}
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) && validationErr != nil {
		return collectValidationIssues(validationErr)
	}
	return []ValidationIssue{{Message: err.Error()}}
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Document validates a produced ADF document against the embedded schema
// subset. A nil document is rejected.
func Document(doc *adf.Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrDocumentInvalid)
	}

	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource("adf.json", bytes.NewReader([]byte(documentSchema))); err != nil {
			compileErr = err
			return
		}
		compiledSchema, compileErr = compiler.Compile("adf.json")
	})
	if compileErr != nil {
		return fmt.Errorf("%w: compile schema: %v", ErrDocumentInvalid, compileErr)
	}

	encoded, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: encode document: %v", ErrDocumentInvalid, err)
	}
	var payload any
	if err := json.Unmarshal(encoded, &payload); err != nil {
		return fmt.Errorf("%w: decode document: %v", ErrDocumentInvalid, err)
	}

	if err := compiledSchema.Validate(payload); err != nil {
		return &PayloadValidationError{
			Issues: Issues(err),
			Cause:  err,
		}
	}
	return nil
}

func collectValidationIssues(err *jsonschema.ValidationError) []ValidationIssue {
	if err == nil {
		return nil
	}
	issues := []ValidationIssue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, ValidationIssue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
