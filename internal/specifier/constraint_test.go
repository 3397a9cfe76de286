package specifier

import "testing"

func TestParseConstraints(t *testing.T) {
	tests := []struct {
		expr string
		want int
	}{
		{">=3.8", 1},
		{">=1.21,<2", 2},
		{"==1.2.*", 1},
		{"(>=2.0, <3.0)", 2},
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			cs, err := ParseConstraints(tt.expr)
			if err != nil {
				t.Fatalf("ParseConstraints(%q) error: %v", tt.expr, err)
			}
			if len(cs) != tt.want {
				t.Errorf("clause count = %d, want %d", len(cs), tt.want)
			}
		})
	}
}

func TestParseConstraints_Invalid(t *testing.T) {
	for _, expr := range []string{"1.0", ">=", ">=1.0,,<2", ">=1.*"} {
		t.Run(expr, func(t *testing.T) {
			if _, err := ParseConstraints(expr); err == nil {
				t.Fatalf("ParseConstraints(%q) succeeded, expected error", expr)
			}
		})
	}
}

func TestConstraintsCheck(t *testing.T) {
	tests := []struct {
		expr    string
		version string
		want    bool
	}{
		{">=3.8", "3.8", true},
		{">=3.8", "3.10", true},
		{">=3.8", "3.7", false},
		{">=7.0", "7.4.3", true},
		{">=7.0", "6.2.5", false},
		{">=1.21,<2", "1.26.4", true},
		{">=1.21,<2", "2.0.0", false},
		{"==1.2.*", "1.2.9", true},
		{"==1.2.*", "1.3.0", false},
		{"!=1.5.*", "1.5.2", false},
		{"!=1.5.*", "1.6.0", true},
		{"~=1.4.2", "1.4.9", true},
		{"~=1.4.2", "1.5.0", false},
		{"~=2.2", "2.9.0", true},
		{"~=2.2", "3.0.0", false},
		// ~=0.Y spans the whole 0.* series from 0.Y upward.
		{"~=0.5", "0.8.0", true},
		{"~=0.5", "0.5.0", true},
		{"~=0.5", "0.4.9", false},
		{"~=0.5", "1.0.0", false},
		// == without a wildcard is an exact match, not a prefix range.
		{"==1.0", "1.0.0", true},
		{"==1.0", "1.0.5", false},
		{"==1.0", "1.1.0", false},
		{"!=1.0", "1.0.0", false},
		{"!=1.0", "1.0.5", true},
	}

	for _, tt := range tests {
		t.Run(tt.expr+"/"+tt.version, func(t *testing.T) {
			cs, err := ParseConstraints(tt.expr)
			if err != nil {
				t.Fatalf("ParseConstraints error: %v", err)
			}
			got, err := cs.Check(tt.version)
			if err != nil {
				t.Fatalf("Check error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Check(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}

func TestConstraintsCheck_BadVersion(t *testing.T) {
	cs, err := ParseConstraints(">=3.8")
	if err != nil {
		t.Fatalf("ParseConstraints error: %v", err)
	}
	if _, err := cs.Check("not-a-version"); err == nil {
		t.Fatal("expected error for unparseable version")
	}
}

func TestConstraintsString(t *testing.T) {
	cs, err := ParseConstraints(">=1.21, <2")
	if err != nil {
		t.Fatalf("ParseConstraints error: %v", err)
	}
	if cs.String() != ">=1.21,<2" {
		t.Errorf("String() = %q, want %q", cs.String(), ">=1.21,<2")
	}
}
