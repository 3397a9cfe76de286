package specifier

import (
	"fmt"
	"strings"
)

// Marker is a parsed environment marker: a flat and/or chain of comparisons.
// Parenthesized sub-expressions are not supported; the full text is kept so
// unsupported markers still round-trip through String.
type Marker struct {
	raw     string
	clauses []markerClause
	ops     []string // "and"/"or" connectives between consecutive clauses
}

type markerClause struct {
	variable string
	operator string
	value    string
}

// markerVariables are the environment fields a marker may reference.
var markerVariables = map[string]bool{
	"python_version":      true,
	"python_full_version": true,
	"os_name":             true,
	"sys_platform":        true,
	"platform_machine":    true,
	"platform_system":     true,
	"implementation_name": true,
	"extra":               true,
}

// Environment carries the interpreter facts markers are evaluated against.
// Zero-value fields make clauses referencing them evaluate to false.
type Environment struct {
	PythonVersion string // e.g. "3.9"
	SysPlatform   string // e.g. "linux"
	OSName        string // e.g. "posix"
	Extra         string // active extra during resolution, if any
}

// ParseMarker parses an environment marker expression such as
// `python_version >= "3.9" and sys_platform != "win32"`.
func ParseMarker(text string) (*Marker, error) {
	m := &Marker{raw: strings.TrimSpace(text)}

	tokens := strings.Fields(m.raw)
	i := 0
	for i < len(tokens) {
		if i+2 >= len(tokens) {
			return nil, fmt.Errorf("marker %q: incomplete comparison", text)
		}
		variable, op, value := tokens[i], tokens[i+1], tokens[i+2]
		width := 3
		if op == "not" {
			// "not in" is a two-token operator.
			if value != "in" || i+3 >= len(tokens) {
				return nil, fmt.Errorf("marker %q: expected 'not in'", text)
			}
			op = "not in"
			value = tokens[i+3]
			width = 4
		}
		if !markerVariables[variable] {
			return nil, fmt.Errorf("marker %q: unknown variable %q", text, variable)
		}
		if !isMarkerOperator(op) {
			return nil, fmt.Errorf("marker %q: unknown operator %q", text, op)
		}
		unquoted, err := unquote(value)
		if err != nil {
			return nil, fmt.Errorf("marker %q: %w", text, err)
		}
		m.clauses = append(m.clauses, markerClause{variable: variable, operator: op, value: unquoted})
		i += width

		if i < len(tokens) {
			conn := tokens[i]
			if conn != "and" && conn != "or" {
				return nil, fmt.Errorf("marker %q: expected 'and' or 'or', got %q", text, conn)
			}
			m.ops = append(m.ops, conn)
			i++
		}
	}
	if len(m.clauses) == 0 {
		return nil, fmt.Errorf("marker %q: no comparisons", text)
	}
	return m, nil
}

func isMarkerOperator(op string) bool {
	switch op {
	case "==", "!=", "<", "<=", ">", ">=", "~=", "in", "not in":
		return true
	}
	return false
}

// unquote strips a matched pair of single or double quotes.
func unquote(s string) (string, error) {
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1], nil
		}
	}
	return "", fmt.Errorf("expected quoted value, got %q", s)
}

// Evaluate reports whether the marker holds in the given environment.
// Evaluation is left-to-right without precedence, which matches the flat
// expressions this parser accepts.
func (m *Marker) Evaluate(env Environment) (bool, error) {
	result, err := m.clauses[0].evaluate(env)
	if err != nil {
		return false, err
	}
	for i, op := range m.ops {
		next, err := m.clauses[i+1].evaluate(env)
		if err != nil {
			return false, err
		}
		if op == "and" {
			result = result && next
		} else {
			result = result || next
		}
	}
	return result, nil
}

func (c markerClause) evaluate(env Environment) (bool, error) {
	var actual string
	switch c.variable {
	case "python_version", "python_full_version":
		actual = env.PythonVersion
	case "sys_platform", "platform_system":
		actual = env.SysPlatform
	case "os_name":
		actual = env.OSName
	case "extra":
		actual = env.Extra
	default:
		return false, nil
	}
	if actual == "" {
		return false, nil
	}

	switch c.operator {
	case "==":
		if c.variable == "python_version" || c.variable == "python_full_version" {
			return versionCompare(actual, "==", c.value)
		}
		return actual == c.value, nil
	case "!=":
		if c.variable == "python_version" || c.variable == "python_full_version" {
			return versionCompare(actual, "!=", c.value)
		}
		return actual != c.value, nil
	case "<", "<=", ">", ">=", "~=":
		return versionCompare(actual, c.operator, c.value)
	case "in":
		return strings.Contains(c.value, actual), nil
	case "not in":
		return !strings.Contains(c.value, actual), nil
	}
	return false, fmt.Errorf("unsupported marker operator %q", c.operator)
}

// versionCompare checks a version-valued clause through the constraint
// translation used for dependency clauses.
func versionCompare(actual, op, value string) (bool, error) {
	cs := Constraints{{Operator: op, Version: value}}
	return cs.Check(actual)
}

// String returns the marker text as written.
func (m *Marker) String() string {
	return m.raw
}
