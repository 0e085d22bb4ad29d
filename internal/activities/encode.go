package activities

import "strings"

const upperhex = "0123456789ABCDEF"

// EncodeComponent percent-encodes s for use as a single path segment or query
// value. Only ASCII letters, digits and - _ . ! ~ * ' ( ) are left as is; every
// other byte of the UTF-8 encoding becomes %XX. url.PathEscape and
// url.QueryEscape both leave or rewrite characters the service expects
// escaped ('@' and ' ' respectively), so neither can be used here.
func EncodeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
