package version

import (
	"testing"
)

// TestParse verifies normalization of valid and invalid version strings
func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		ok     bool
		nums   [4]int
		suffix string
	}{
		{"two segments", "1.2", true, [4]int{1, 2, 0, 0}, ""},
		{"three segments", "1.2.3", true, [4]int{1, 2, 3, 0}, ""},
		{"four segments", "1.2.3.4", true, [4]int{1, 2, 3, 4}, ""},
		{"leading v", "v1.2.3", true, [4]int{1, 2, 3, 0}, ""},
		{"leading V", "V2.0", true, [4]int{2, 0, 0, 0}, ""},
		{"prerelease suffix", "1.2.3-rc.1", true, [4]int{1, 2, 3, 0}, "-rc.1"},
		{"build suffix", "1.2.3+build5", true, [4]int{1, 2, 3, 0}, "+build5"},
		{"single segment", "7", true, [4]int{7, 0, 0, 0}, ""},
		{"empty", "", false, [4]int{}, ""},
		{"bare v", "v", false, [4]int{}, ""},
		{"leading garbage", "x1.2.3", false, [4]int{}, ""},
		{"leading dot", ".1.2", false, [4]int{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := Parse(tt.raw)
			if ok != tt.ok {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if !ok {
				return
			}
			if p.Nums != tt.nums {
				t.Errorf("Parse(%q) nums = %v, want %v", tt.raw, p.Nums, tt.nums)
			}
			if p.Suffix != tt.suffix {
				t.Errorf("Parse(%q) suffix = %q, want %q", tt.raw, p.Suffix, tt.suffix)
			}
		})
	}
}

// TestParsePadding verifies that missing trailing segments compare equal to
// explicit zeros
func TestParsePadding(t *testing.T) {
	a, ok := Parse("1.2")
	if !ok {
		t.Fatal("Parse(1.2) failed")
	}
	b, ok := Parse("1.2.0.0")
	if !ok {
		t.Fatal("Parse(1.2.0.0) failed")
	}
	if a.Nums != b.Nums {
		t.Errorf("Expected equal numeric tuples, got %v and %v", a.Nums, b.Nums)
	}
}

// TestParseCoreRoundTrip verifies re-parsing Core output with a v prefix
// yields the same normalized value
func TestParseCoreRoundTrip(t *testing.T) {
	for _, raw := range []string{"1.2", "v1.2.3", "1.2.3.4-rc.1", "V3.0+meta"} {
		orig, ok := Parse(raw)
		if !ok {
			t.Fatalf("Parse(%q) failed", raw)
		}
		again, ok := Parse("v" + Core(raw))
		if !ok {
			t.Fatalf("re-parse of %q failed", raw)
		}
		if orig != again {
			t.Errorf("Parse(%q) = %v, re-parse = %v", raw, orig, again)
		}
	}
}

// TestCore verifies prefix stripping
func TestCore(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"v1.2.3", "1.2.3"},
		{"V1.2.3", "1.2.3"},
		{"1.2.3", "1.2.3"},
		{" v1.0 ", "1.0"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Core(tt.raw); got != tt.expected {
			t.Errorf("Core(%q) = %q, want %q", tt.raw, got, tt.expected)
		}
	}
}

// TestIsValid verifies the CLI entry grammar
func TestIsValid(t *testing.T) {
	tests := []struct {
		raw      string
		expected bool
	}{
		{"1.2", true},
		{"1.2.3", true},
		{"1.2.3.4", true},
		{"v1.2.3", true},
		{"V1.2.3-rc.1", true},
		{"1.2.3+build.7", true},
		{"1", false}, // grammar requires at least two segments
		{"1.2.3.4.5", false},
		{"1.2.3_rc1", false},
		{"abc", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValid(tt.raw); got != tt.expected {
			t.Errorf("IsValid(%q) = %v, want %v", tt.raw, got, tt.expected)
		}
	}
}

// TestIsNewer verifies numeric-first ordering and the equal-numerics
// final-over-prerelease policy
func TestIsNewer(t *testing.T) {
	tests := []struct {
		name            string
		candidate       string
		current         string
		allowEqualFinal bool
		expected        bool
	}{
		{"patch bump", "1.2.4", "1.2.3", true, true},
		{"patch downgrade", "1.2.3", "1.2.4", true, false},
		{"major beats minor", "2.0", "1.9.9.9", true, true},
		{"fourth segment decides", "1.2.3.1", "1.2.3", true, true},
		{"padding equal", "1.2", "1.2.0.0", true, false},
		{"suffix ignored when numerics differ", "1.2.4-alpha", "1.2.3", true, true},
		{"final over prerelease", "1.2.3", "1.2.3-rc.1", true, true},
		{"prerelease never over final", "1.2.3-rc.1", "1.2.3", true, false},
		{"final over prerelease disabled", "1.2.3", "1.2.3-rc.1", false, false},
		{"differing suffixes non-newer", "1.2.3-alpha", "1.2.3-beta", true, false},
		{"differing suffixes non-newer reversed", "1.2.3-beta", "1.2.3-alpha", true, false},
		{"equal finals", "1.2.3", "1.2.3", true, false},
		{"v prefix transparent", "v1.2.4", "1.2.3", true, true},
		{"malformed candidate", "abc", "1.2.3", true, false},
		{"malformed current", "1.2.4", "abc", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsNewer(tt.candidate, tt.current, tt.allowEqualFinal)
			if got != tt.expected {
				t.Errorf("IsNewer(%q, %q, %v) = %v, want %v",
					tt.candidate, tt.current, tt.allowEqualFinal, got, tt.expected)
			}
		})
	}
}

// TestIsNewerAntisymmetric verifies that with unequal numeric tuples exactly
// one direction is newer, regardless of suffixes
func TestIsNewerAntisymmetric(t *testing.T) {
	pairs := [][2]string{
		{"1.2.3", "1.2.4"},
		{"0.9", "1.0"},
		{"2.0.0.1", "2.0"},
		{"1.2.3-alpha", "1.2.4-beta"},
	}
	for _, pair := range pairs {
		ab := IsNewer(pair[0], pair[1], true)
		ba := IsNewer(pair[1], pair[0], true)
		if ab == ba {
			t.Errorf("IsNewer symmetry violated for %q vs %q: %v/%v", pair[0], pair[1], ab, ba)
		}
	}
}
