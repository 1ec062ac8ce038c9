package inplacesort

import (
	"fmt"
	"strings"
)

// Format returns the elements of s as "[a, b, c]", a nil slice is formatted as "null".
func Format[T any](s []T) string {
	if s == nil {
		return "null"
	}
	return FormatHead(s, len(s))
}

// FormatHead formats at most n leading elements of s, a truncated sequence ends with "...]".
func FormatHead[T any](s []T, n int) string {
	if s == nil {
		return "null"
	}
	if n < 0 {
		n = 0
	}
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < len(s) && i < n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, s[i])
	}
	if n < len(s) {
		sb.WriteString("...")
	}
	sb.WriteString("]")

	return sb.String()
}
