package dataprocessing

import (
	"regexp"
)

// Header and label patterns. All are anchored at the start of the string
// only and are case-sensitive: a label matches when the pattern matches a
// prefix of it.
var (
	averagePattern       = regexp.MustCompile(`^.*average`)
	operationPattern     = regexp.MustCompile(`^(?:insert|read|scan)`)
	stdDevPattern        = regexp.MustCompile(`^.*StdD`)
	workloadIndexPattern = regexp.MustCompile(`^[1-5]`)
)

// dropLeadingRunes removes the first n characters of s
func dropLeadingRunes(s string, n int) string {
	r := []rune(s)
	if n >= len(r) {
		return ""
	}
	return string(r[n:])
}

// dropTrailingRunes removes the last n characters of s
func dropTrailingRunes(s string, n int) string {
	r := []rune(s)
	if n >= len(r) {
		return ""
	}
	return string(r[:len(r)-n])
}
