package specifier

import (
	"fmt"
	"regexp"
	"strings"
)

// Requirement is a parsed PEP 508 dependency specifier.
type Requirement struct {
	Name        string      // distribution name as written
	Extras      []string    // optional extras, e.g. xarray[io] -> ["io"]
	Constraints Constraints // version clauses, empty when unconstrained
	URL         string      // direct reference after "@", empty otherwise
	Marker      *Marker     // environment marker after ";", nil otherwise
}

// ParseError describes why a specifier string could not be parsed.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid dependency specifier %q: %s", e.Input, e.Reason)
}

// namePattern matches a distribution name or extra identifier per PEP 508:
// alphanumeric with interior dots, hyphens, and underscores.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9._-]*[A-Za-z0-9])?$`)

// Parse parses a dependency specifier string such as
// "xarray[io]>=2023.1; python_version >= '3.9'".
func Parse(input string) (*Requirement, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil, &ParseError{Input: input, Reason: "empty specifier"}
	}

	req := &Requirement{}

	// Environment marker follows the first semicolon.
	if i := strings.Index(s, ";"); i >= 0 {
		markerText := strings.TrimSpace(s[i+1:])
		if markerText == "" {
			return nil, &ParseError{Input: input, Reason: "empty environment marker"}
		}
		m, err := ParseMarker(markerText)
		if err != nil {
			return nil, &ParseError{Input: input, Reason: err.Error()}
		}
		req.Marker = m
		s = strings.TrimSpace(s[:i])
	}

	// Direct URL reference: "name @ https://...".
	if i := strings.Index(s, "@"); i >= 0 {
		req.URL = strings.TrimSpace(s[i+1:])
		if req.URL == "" {
			return nil, &ParseError{Input: input, Reason: "empty URL after @"}
		}
		s = strings.TrimSpace(s[:i])
	}

	// Extras between brackets.
	if i := strings.Index(s, "["); i >= 0 {
		j := strings.Index(s, "]")
		if j < i {
			return nil, &ParseError{Input: input, Reason: "unterminated extras list"}
		}
		for _, extra := range strings.Split(s[i+1:j], ",") {
			extra = strings.TrimSpace(extra)
			if !namePattern.MatchString(extra) {
				return nil, &ParseError{Input: input, Reason: fmt.Sprintf("invalid extra %q", extra)}
			}
			req.Extras = append(req.Extras, extra)
		}
		s = s[:i] + strings.TrimSpace(s[j+1:])
	}

	// What remains is the name followed by an optional constraint expression.
	nameEnd := len(s)
	for k, op := range s {
		if op == '<' || op == '>' || op == '=' || op == '!' || op == '~' || op == '(' || op == ' ' {
			nameEnd = k
			break
		}
	}
	name := strings.TrimSpace(s[:nameEnd])
	if !namePattern.MatchString(name) {
		return nil, &ParseError{Input: input, Reason: fmt.Sprintf("invalid distribution name %q", name)}
	}
	req.Name = name

	if rest := strings.TrimSpace(s[nameEnd:]); rest != "" {
		if req.URL != "" {
			return nil, &ParseError{Input: input, Reason: "version constraints are not allowed with a URL reference"}
		}
		cs, err := ParseConstraints(rest)
		if err != nil {
			return nil, &ParseError{Input: input, Reason: err.Error()}
		}
		req.Constraints = cs
	}

	return req, nil
}

// String renders the requirement in canonical specifier form.
func (r *Requirement) String() string {
	var b strings.Builder
	b.WriteString(r.Name)
	if len(r.Extras) > 0 {
		b.WriteString("[" + strings.Join(r.Extras, ",") + "]")
	}
	if len(r.Constraints) > 0 {
		b.WriteString(r.Constraints.String())
	}
	if r.URL != "" {
		b.WriteString(" @ " + r.URL)
	}
	if r.Marker != nil {
		b.WriteString("; " + r.Marker.String())
	}
	return b.String()
}
