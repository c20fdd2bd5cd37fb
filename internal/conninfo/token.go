package conninfo

import "strings"

// whitespace is the character set stripped from option values.
const whitespace = " \t\n\r\f\v"

// Trim removes leading and trailing whitespace from an option value. Unlike
// strings.TrimSpace it strips exactly the set libpq treats as blank, vertical
// tab included.
func Trim(s string) string {
	return strings.Trim(s, whitespace)
}

func isEmpty(s string) bool {
	return len(s) == 0
}
