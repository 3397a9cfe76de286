package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"github.com/pypack-labs/pypack/internal/specifier"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/pyproject.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// Validate checks the invariants a parsed manifest must hold:
// non-empty identity, syntactically valid dependency specifiers in every
// requirement list, and a non-empty build-system.requires when a backend
// is declared. The backend identifier itself is not checked here; whether
// it resolves to an installable tool is the installer's concern.
func Validate(m *Manifest) error {
	if m.Project == nil || m.Project.Name == "" {
		return &MissingFieldError{Field: "project.name"}
	}
	if m.Project.Version == "" && !isDynamic(m.Project, "version") {
		return &MissingFieldError{Field: "project.version"}
	}

	if err := checkSpecifiers("project.dependencies", m.Project.Dependencies); err != nil {
		return err
	}
	for extra, deps := range m.Project.OptionalDependencies {
		field := fmt.Sprintf("project.optional-dependencies.%s", extra)
		if err := checkSpecifiers(field, deps); err != nil {
			return err
		}
	}

	if m.BuildSystem != nil {
		if len(m.BuildSystem.Requires) == 0 {
			return &MissingFieldError{Field: "build-system.requires"}
		}
		if err := checkSpecifiers("build-system.requires", m.BuildSystem.Requires); err != nil {
			return err
		}
	}

	if m.Project.RequiresPython != "" {
		if _, err := specifier.ParseConstraints(m.Project.RequiresPython); err != nil {
			return fmt.Errorf("project.requires-python: %w", err)
		}
	}

	return nil
}

// checkSpecifiers parses each entry in a requirement list, reporting the
// first malformed one with its position.
func checkSpecifiers(field string, entries []string) error {
	for i, entry := range entries {
		if _, err := specifier.Parse(entry); err != nil {
			return &InvalidSpecifierError{Field: field, Index: i, Err: err}
		}
	}
	return nil
}

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue is a single schema violation.
type ValidationIssue struct {
	Path    string // instance location, e.g. "/project/name"
	Message string
	Keyword string // schema keyword that failed
}

// getSchema compiles the embedded JSON Schema once.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("pyproject.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("pyproject.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// ValidateSchema validates raw TOML bytes against the embedded pyproject
// schema. The error return covers structural parse and schema compilation
// failures; schema violations land in the ValidationResult.
func ValidateSchema(data []byte) (*ValidationResult, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, &MalformedManifestError{Err: err}
	}

	// Route through encoding/json so the validator sees json.Number and
	// plain maps rather than TOML decoder types.
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	return &ValidationResult{Valid: false, Issues: extractIssues(validationErr)}, nil
}

// ValidateSchemaFile reads a file and validates it against the schema.
func ValidateSchemaFile(path string) (*ValidationResult, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return ValidateSchema(data)
}

// extractIssues walks the error tree and returns deduplicated leaf issues.
func extractIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	collectValidationIssues(ve, &issues)

	if len(issues) == 0 {
		return []ValidationIssue{{Message: ve.Error()}}
	}
	return deduplicateIssues(issues)
}

// collectValidationIssues recursively finds leaf errors that carry specific
// property information, skipping generic container keywords.
func collectValidationIssues(ve *jsonschema.ValidationError, issues *[]ValidationIssue) {
	if len(ve.Causes) == 0 {
		path := "/" + strings.Join(ve.InstanceLocation, "/")
		if len(ve.InstanceLocation) == 0 {
			path = ""
		}

		keyword := ""
		if ve.ErrorKind != nil {
			kwPath := ve.ErrorKind.KeywordPath()
			if len(kwPath) > 0 {
				keyword = kwPath[len(kwPath)-1]
			}
		}

		msg := ""
		if ve.ErrorKind != nil {
			msg = ve.ErrorKind.LocalizedString(printer)
		}

		if keyword == "oneOf" || keyword == "allOf" || keyword == "anyOf" || keyword == "$ref" || keyword == "" {
			return
		}

		*issues = append(*issues, ValidationIssue{Path: path, Message: msg, Keyword: keyword})
		return
	}

	for _, cause := range ve.Causes {
		collectValidationIssues(cause, issues)
	}
}

// deduplicateIssues drops repeated path+keyword+message triples.
func deduplicateIssues(issues []ValidationIssue) []ValidationIssue {
	seen := make(map[string]bool)
	var result []ValidationIssue
	for _, issue := range issues {
		key := issue.Path + "|" + issue.Keyword + "|" + issue.Message
		if !seen[key] {
			seen[key] = true
			result = append(result, issue)
		}
	}
	return result
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
