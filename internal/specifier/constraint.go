package specifier

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// comparison operators recognized in a version constraint clause, longest
// first so that ">=" is matched before ">".
var operators = []string{"===", "==", "!=", "~=", "<=", ">=", "<", ">"}

// Constraint is a single version comparison clause, e.g. ">=7.0" or "==1.2.*".
type Constraint struct {
	Operator string
	Version  string
}

// Constraints is an ordered conjunction of clauses. All clauses must hold
// for a version to be accepted.
type Constraints []Constraint

// ParseConstraints parses a comma-separated constraint expression such as
// ">=3.8" or ">=1.21,<2". An optional surrounding parenthesis pair is
// stripped, matching the form pip accepts in requirement strings.
func ParseConstraints(expr string) (Constraints, error) {
	expr = strings.TrimSpace(expr)
	if strings.HasPrefix(expr, "(") && strings.HasSuffix(expr, ")") {
		expr = strings.TrimSpace(expr[1 : len(expr)-1])
	}
	if expr == "" {
		return nil, nil
	}

	var cs Constraints
	for _, clause := range strings.Split(expr, ",") {
		c, err := parseClause(clause)
		if err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	return cs, nil
}

// parseClause splits one clause into operator and version.
func parseClause(clause string) (Constraint, error) {
	clause = strings.TrimSpace(clause)
	for _, op := range operators {
		if strings.HasPrefix(clause, op) {
			version := strings.TrimSpace(clause[len(op):])
			if version == "" {
				return Constraint{}, fmt.Errorf("constraint %q: missing version after %q", clause, op)
			}
			if strings.HasSuffix(version, ".*") && op != "==" && op != "!=" {
				return Constraint{}, fmt.Errorf("constraint %q: wildcard suffix is only valid with == or !=", clause)
			}
			return Constraint{Operator: op, Version: version}, nil
		}
	}
	return Constraint{}, fmt.Errorf("constraint %q: missing comparison operator", clause)
}

// String renders the constraint set back to its canonical comma-joined form.
func (cs Constraints) String() string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.Operator + c.Version
	}
	return strings.Join(parts, ",")
}

// Check reports whether a concrete version satisfies every clause.
// Versions are compared through semver after translating PEP 440 shorthand:
// "~=" becomes a tilde/caret range and a trailing ".*" becomes an .x
// wildcard. Local version labels ("+cpu") and epoch prefixes are not
// supported and cause an error.
func (cs Constraints) Check(version string) (bool, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", version, err)
	}
	for _, c := range cs {
		rng, err := c.semverRange()
		if err != nil {
			return false, err
		}
		if !rng.Check(v) {
			return false, nil
		}
	}
	return true, nil
}

// semverRange translates one PEP 440 clause into a semver constraint.
func (c Constraint) semverRange() (*semver.Constraints, error) {
	var expr string
	switch c.Operator {
	case "~=":
		// ~=X.Y.Z allows patch-level changes. ~=X.Y allows any X.*
		// release at or above X.Y, including when X is 0, so the bounds
		// are spelled out rather than using a caret (a caret on 0.Y
		// would stop at 0.Y+1).
		if strings.Count(c.Version, ".") >= 2 {
			expr = "~" + c.Version
		} else {
			major, err := strconv.Atoi(strings.SplitN(c.Version, ".", 2)[0])
			if err != nil {
				return nil, fmt.Errorf("translating constraint ~=%s: %w", c.Version, err)
			}
			expr = fmt.Sprintf(">=%s, <%d.0.0", c.Version, major+1)
		}
	case "==", "===":
		expr = "=" + exactOrWildcard(c.Version)
	case "!=":
		expr = "!=" + exactOrWildcard(c.Version)
	default:
		expr = c.Operator + c.Version
	}

	rng, err := semver.NewConstraint(expr)
	if err != nil {
		return nil, fmt.Errorf("translating constraint %s%s: %w", c.Operator, c.Version, err)
	}
	return rng, nil
}

// exactOrWildcard prepares an equality operand: a trailing ".*" becomes
// semver's ".x" wildcard, and plain versions are zero-padded to three
// components so that "==1.0" stays an exact match on 1.0.0 instead of
// widening to the 1.0.x range.
func exactOrWildcard(version string) string {
	if strings.HasSuffix(version, ".*") {
		return strings.Replace(version, ".*", ".x", 1)
	}
	parts := strings.Split(version, ".")
	for len(parts) < 3 {
		parts = append(parts, "0")
	}
	return strings.Join(parts, ".")
}
