package postgres

import "strings"

// EscapeLike escapes the three characters that are meaningful inside a
// LIKE/ILIKE pattern so user input matches as a literal substring.
// The escape character itself is replaced first, otherwise the backslashes
// introduced for % and _ would be escaped twice.
func EscapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// ContainsPattern wraps an already-escaped string for a
// "contains, case-insensitive" ILIKE predicate.
func ContainsPattern(escaped string) string {
	return "%" + escaped + "%"
}
