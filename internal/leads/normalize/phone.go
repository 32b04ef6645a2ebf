package normalize

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// NormalizePhone formats international phone values to E.164. Only
// +-prefixed numbers are touched: national numbers carry no region
// information here, and rewriting them would corrupt values like a bare
// seven-digit dealer line, so they pass through as sent.
func NormalizePhone(value string) string {
	value = strings.TrimSpace(value)
	if !strings.HasPrefix(value, "+") {
		return value
	}

	parsed, err := phonenumbers.Parse(value, "")
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return value
	}
	return phonenumbers.Format(parsed, phonenumbers.E164)
}
