package chat

import (
	"fmt"
	"regexp"
	"strings"
)

// UnsafeQueryError means generated SQL failed the safety filter and was
// never executed.
type UnsafeQueryError struct {
	Keyword string
	Reason  string
}

func (e *UnsafeQueryError) Error() string {
	if e.Keyword != "" {
		return fmt.Sprintf("%s operations are not allowed", e.Keyword)
	}
	return e.Reason
}

// Standalone keywords only: \b keeps identifiers like deleted_at from
// matching DELETE (underscore is a word character).
var dangerousKeywords = regexp.MustCompile(`\b(DROP|DELETE|UPDATE|INSERT|ALTER|TRUNCATE|CREATE)\b`)

// CheckReadOnly rejects any statement that is not a plain SELECT. It is a
// keyword blocklist reproduced for compatibility, not a security boundary.
func CheckReadOnly(query string) error {
	upper := strings.ToUpper(strings.TrimSpace(query))
	if !strings.HasPrefix(upper, "SELECT") {
		return &UnsafeQueryError{Reason: "Only SELECT queries are allowed"}
	}
	if m := dangerousKeywords.FindString(upper); m != "" {
		return &UnsafeQueryError{Keyword: m}
	}
	return nil
}
