// Package version implements parsing and ordering of release version
// strings. Accepted inputs look like 1.2, 1.2.3 or 1.2.3.4, with an
// optional leading v/V and an optional -/+ suffix (1.2.3-rc.1).
package version

import (
	"regexp"
	"strconv"
	"strings"
)

// grammarRE accepts the full version grammar used at the CLI boundary.
var grammarRE = regexp.MustCompile(`^[vV]?\d+(?:\.\d+){1,3}(?:[-+][0-9A-Za-z.-]+)?$`)

// numericRE splits a version core into its numeric run and trailing suffix.
var numericRE = regexp.MustCompile(`^(\d+(?:\.\d+){0,3})(.*)$`)

// Parsed is the normalized form of a version string: exactly four numeric
// segments (missing trailing segments padded with zeros) plus an opaque
// suffix. The empty suffix marks a final release; any non-empty suffix is a
// prerelease/build marker and is never ordered against other suffixes.
type Parsed struct {
	Nums   [4]int
	Suffix string
}

// IsValid reports whether raw matches the version grammar accepted by the
// publish command.
func IsValid(raw string) bool {
	return grammarRE.MatchString(raw)
}

// Core strips one leading v/V marker. It is used when deriving tag names so
// a user-supplied "v1.2.3" cannot become "vv1.2.3".
func Core(raw string) string {
	v := strings.TrimSpace(raw)
	if v != "" && (v[0] == 'v' || v[0] == 'V') {
		v = v[1:]
	}
	return v
}

// Parse normalizes raw into a Parsed value. The second return is false when
// the numeric portion does not match the grammar; malformed input is an
// ordinary outcome here, not an error.
func Parse(raw string) (Parsed, bool) {
	v := Core(raw)
	if v == "" {
		return Parsed{}, false
	}
	m := numericRE.FindStringSubmatch(v)
	if m == nil {
		return Parsed{}, false
	}
	var p Parsed
	for i, s := range strings.Split(m[1], ".") {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Parsed{}, false
		}
		p.Nums[i] = n
	}
	p.Suffix = m[2]
	return p, true
}

// IsFinal reports whether the version carries no prerelease suffix.
func (p Parsed) IsFinal() bool {
	return p.Suffix == ""
}

// compareNums orders two numeric 4-tuples, most significant segment first.
func compareNums(a, b [4]int) int {
	for i := range a {
		switch {
		case a[i] > b[i]:
			return 1
		case a[i] < b[i]:
			return -1
		}
	}
	return 0
}

// IsNewer reports whether candidate is strictly newer than current.
//
// The numeric 4-tuples are compared first; when they differ, that ordering
// decides. At equal numerics the only case considered newer is a final
// candidate over a prerelease current, and only when allowEqualFinal is set.
// Two different non-empty suffixes are mutually non-newer. If either input
// fails to parse the result is false.
func IsNewer(candidate, current string, allowEqualFinal bool) bool {
	c, ok := Parse(candidate)
	if !ok {
		return false
	}
	cur, ok := Parse(current)
	if !ok {
		return false
	}
	switch compareNums(c.Nums, cur.Nums) {
	case 1:
		return true
	case -1:
		return false
	}
	return allowEqualFinal && c.IsFinal() && !cur.IsFinal()
}
