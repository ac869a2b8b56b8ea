package igg

import "strings"

// cleanSequence uppercases the raw input and strips every character that
// isn't a letter. All downstream indices are 0-based offsets into the
// string this returns.
func cleanSequence(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c >= 'A' && c <= 'Z' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
