package scans

import (
	"regexp"
)

// IdentPattern matches a JavaScript identifier as produced by minifiers.
const IdentPattern = `[A-Za-z_$][\w$]*`

// boundary refuses member accesses and longer identifiers on the left.
const boundary = `(?:^|[^\w$.])`

var identRegexp = regexp.MustCompile(`^` + IdentPattern + `$`)

var reserved = map[string]bool{
	"true": true, "false": true, "null": true, "undefined": true,
	"this": true, "new": true, "if": true, "else": true, "for": true,
	"while": true, "return": true, "let": true, "const": true, "var": true,
	"function": true, "typeof": true, "void": true, "delete": true,
	"in": true, "of": true, "do": true, "switch": true, "case": true,
}

// IsIdent reports whether s is a bare identifier: no dots, no literal, no
// keyword.
func IsIdent(s string) bool {
	return identRegexp.MatchString(s) && !reserved[s]
}

// BareCall builds a pattern for a call whose callee is a bare identifier.
// The callee is captured in the first group; args is a regexp fragment.
func BareCall(args string) string {
	return boundary + `(` + IdentPattern + `)\(` + args + `\)`
}

// Bare wraps an already quoted identifier so it only matches when not
// preceded by an identifier character or a dot.
func Bare(quotedIdent string) string {
	return boundary + quotedIdent
}

func IsIdentByte(b byte) bool {
	return b == '_' || b == '$' ||
		b >= 'a' && b <= 'z' ||
		b >= 'A' && b <= 'Z' ||
		b >= '0' && b <= '9'
}
