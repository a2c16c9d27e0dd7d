package scoring

import (
	"strconv"
	"strings"
)

// TagSet holds normalized domain tags: trimmed, lower-cased, deduplicated.
type TagSet map[string]struct{}

// NormalizeTags splits a comma-separated tag string into a TagSet.
// Blank entries are dropped. Never fails; empty input yields an empty set.
func NormalizeTags(text string) TagSet {
	out := make(TagSet)
	for _, raw := range strings.Split(text, ",") {
		t := strings.ToLower(strings.TrimSpace(raw))
		if t == "" {
			continue
		}
		out[t] = struct{}{}
	}
	return out
}

func (s TagSet) Contains(tag string) bool {
	_, ok := s[strings.ToLower(strings.TrimSpace(tag))]
	return ok
}

// CommonCount returns the number of tags present in both sets.
func (s TagSet) CommonCount(other TagSet) int {
	n := 0
	for t := range s {
		if _, ok := other[t]; ok {
			n++
		}
	}
	return n
}

// ParseIntOr parses raw as an integer, substituting def on any non-numeric input.
func ParseIntOr(raw string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return def
	}
	return v
}

func ClampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
