package util

import "strings"

// LooksLikeEmail reports whether s contains an email-shaped token.
// Intentionally loose: the funnel only needs "an @ and a dot after it".
func LooksLikeEmail(s string) bool {
	at := strings.Index(s, "@")
	if at <= 0 {
		return false
	}
	rest := s[at+1:]
	dot := strings.Index(rest, ".")
	return dot > 0 && dot < len(rest)-1
}

// FirstInt returns the first integer literal in s, or ok=false when none exists.
func FirstInt(s string) (int, bool) {
	n := 0
	found := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			found = true
			n = 0
			for i < len(s) && s[i] >= '0' && s[i] <= '9' {
				n = n*10 + int(s[i]-'0')
				i++
			}
			return n, found
		}
	}
	return 0, false
}
