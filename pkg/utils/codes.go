package utils

import "strings"

// NormalizeIdent uppercases a user-entered flight identifier and strips all
// whitespace, including interior runs ("ba 123" -> "BA123").
func NormalizeIdent(ident string) string {
	return strings.Join(strings.Fields(strings.ToUpper(ident)), "")
}

// NormalizeAirportCode uppercases and trims an airport code.
func NormalizeAirportCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
