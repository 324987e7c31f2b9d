// Package semver normalizes the version strings reported by agent CLIs.
//
// Agent tools format their version output inconsistently: bare numbers
// ("1.1.25"), label prefixes ("codex-cli 0.87.0"), parenthesized banners
// ("2.1.12 (Claude Code)"), sometimes across multiple lines. Extract scans
// arbitrary text for the first thing that looks like a version and returns
// it in a comparable form. Unparseable output is an expected outcome, not
// an error.
package semver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Version is a normalized semantic version. Pre orders before the same
// numeric version without a pre-release label; Build is informational only
// and never participates in comparison.
type Version struct {
	Major int
	Minor int
	Patch int
	Pre   string
	Build string
}

// versionRE matches a version candidate anywhere in free text: at least
// major.minor, optional patch, optional -prerelease and +build tokens.
// A lone integer is deliberately not a candidate; it is ambiguous with
// build numbers and unrelated digits.
var versionRE = regexp.MustCompile(`v?(\d+)\.(\d+)(?:\.(\d+))?(?:-([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?(?:\+([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?`)

// Extract scans raw text for the first version candidate and returns it.
// A missing patch component defaults to 0. Candidates whose numeric groups
// overflow int are skipped and the scan continues. Returns ok=false when
// no candidate matches; it never panics on arbitrary input.
func Extract(text string) (Version, bool) {
	for _, m := range versionRE.FindAllStringSubmatch(text, -1) {
		major, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		minor, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		patch := 0
		if m[3] != "" {
			patch, err = strconv.Atoi(m[3])
			if err != nil {
				continue
			}
		}
		return Version{
			Major: major,
			Minor: minor,
			Patch: patch,
			Pre:   m[4],
			Build: m[5],
		}, true
	}
	return Version{}, false
}

// MustParse extracts a version from s and panics when none is present.
// Intended for fixed inputs such as test fixtures.
func MustParse(s string) Version {
	v, ok := Extract(s)
	if !ok {
		panic(fmt.Sprintf("semver: no version in %q", s))
	}
	return v
}

// String returns the canonical "MAJOR.MINOR.PATCH[-pre][+build]" form.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Pre != "" {
		s += "-" + v.Pre
	}
	if v.Build != "" {
		s += "+" + v.Build
	}
	return s
}

// Compare returns -1 if v < other, 0 if equal, and 1 if v > other.
// Ordering follows semantic-version precedence: numeric components first,
// then pre-release labels (a pre-release orders before its release).
// Build metadata is ignored.
func (v Version) Compare(other Version) int {
	if v.Major != other.Major {
		return compareInts(v.Major, other.Major)
	}
	if v.Minor != other.Minor {
		return compareInts(v.Minor, other.Minor)
	}
	if v.Patch != other.Patch {
		return compareInts(v.Patch, other.Patch)
	}
	return comparePre(v.Pre, other.Pre)
}

// Equal reports whether two versions have the same precedence.
// Versions differing only in build metadata are equal.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// comparePre compares pre-release labels per semver precedence rules:
// absence ranks higher than presence, numeric identifiers compare
// numerically and rank below alphanumeric ones, and a shorter identifier
// list ranks lower when all shared identifiers are equal.
func comparePre(a, b string) int {
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	}

	aIDs := strings.Split(a, ".")
	bIDs := strings.Split(b, ".")
	for i := 0; i < len(aIDs) && i < len(bIDs); i++ {
		if c := comparePreIdentifier(aIDs[i], bIDs[i]); c != 0 {
			return c
		}
	}
	return compareInts(len(aIDs), len(bIDs))
}

func comparePreIdentifier(a, b string) int {
	aNum, aErr := strconv.Atoi(a)
	bNum, bErr := strconv.Atoi(b)
	switch {
	case aErr == nil && bErr == nil:
		return compareInts(aNum, bNum)
	case aErr == nil:
		return -1 // numeric identifiers rank below alphanumeric
	case bErr == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// compareInts compares two integers and returns -1, 0, or 1.
func compareInts(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
