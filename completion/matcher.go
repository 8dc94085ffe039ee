package completion

import (
	"sort"
	"strings"
)

// PrefixMatch reports whether name starts with prefix. Matching is
// case-sensitive; every name matches the empty prefix.
func PrefixMatch(name, prefix string) bool {
	return strings.HasPrefix(name, prefix)
}

// LongestCommonPrefix returns the longest prefix shared by every candidate.
// It starts from the first candidate and truncates against each subsequent
// one, stopping early once nothing is left.
func LongestCommonPrefix(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}

	lcp := candidates[0]
	for _, c := range candidates[1:] {
		n := 0
		for n < len(lcp) && n < len(c) && lcp[n] == c[n] {
			n++
		}
		lcp = lcp[:n]
		if lcp == "" {
			break
		}
	}
	return lcp
}

// sortUnique sorts candidates lexicographically and drops adjacent
// duplicates in place.
func sortUnique(candidates []string) []string {
	if len(candidates) < 2 {
		return candidates
	}
	sort.Strings(candidates)
	out := candidates[:1]
	for _, c := range candidates[1:] {
		if c != out[len(out)-1] {
			out = append(out, c)
		}
	}
	return out
}
