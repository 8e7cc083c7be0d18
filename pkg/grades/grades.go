// Package grades parses climbing grades so session statistics can compare
// them. Two scales are supported: French sport grades ("6b+", "8a") and the
// V-scale for bouldering ("V4", "V10").
package grades

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	SystemFrench = "french"
	SystemVScale = "v_scale"
)

// Grade is a parsed climbing grade with a rank comparable within its system.
type Grade struct {
	Raw    string
	System string
	rank   int
}

var (
	frenchRe = regexp.MustCompile(`^([3-9])([abc])(\+?)$`)
	vScaleRe = regexp.MustCompile(`^[vV](\d{1,2})$`)
)

// Parse accepts either scale. Input is trimmed and lowercased; "6B+" and
// "6b+" are the same grade.
func Parse(raw string) (Grade, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return Grade{}, fmt.Errorf("empty grade")
	}

	if m := vScaleRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return Grade{Raw: raw, System: SystemVScale, rank: n}, nil
	}

	if m := frenchRe.FindStringSubmatch(s); m != nil {
		number, _ := strconv.Atoi(m[1])
		letter := int(m[2][0] - 'a')
		plus := 0
		if m[3] == "+" {
			plus = 1
		}
		return Grade{Raw: raw, System: SystemFrench, rank: number*6 + letter*2 + plus}, nil
	}

	return Grade{}, fmt.Errorf("unrecognized grade %q", raw)
}

// Compare orders two grades of the same system: -1, 0 or 1. Grades from
// different systems are not comparable.
func Compare(a, b Grade) (int, error) {
	if a.System != b.System {
		return 0, fmt.Errorf("cannot compare %s grade with %s grade", a.System, b.System)
	}
	switch {
	case a.rank < b.rank:
		return -1, nil
	case a.rank > b.rank:
		return 1, nil
	default:
		return 0, nil
	}
}

// Highest returns the highest parseable grade of the given system from a list
// of raw grade strings. Unparseable entries and entries from the other system
// are skipped; ok is false when nothing qualified.
func Highest(raws []string, system string) (Grade, bool) {
	var best Grade
	found := false
	for _, raw := range raws {
		g, err := Parse(raw)
		if err != nil || g.System != system {
			continue
		}
		if !found || g.rank > best.rank {
			best = g
			found = true
		}
	}
	return best, found
}
