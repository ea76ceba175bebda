// Package currency defines the currency codes accepted by the bank.
package currency

import "regexp"

// Code is an ISO 4217 currency code.
type Code string

// GBP is the only currency accounts can currently be denominated in.
const GBP Code = "GBP"

// DefaultCurrency is assigned to every account at creation.
const DefaultCurrency = GBP

var codeFormat = regexp.MustCompile(`^[A-Z]{3}$`)

// supported is the closed set of currencies the ledger will transact in.
var supported = map[Code]struct{}{
	GBP: {},
}

// String returns the code as a plain string.
func (c Code) String() string {
	return string(c)
}

// IsValidFormat reports whether s looks like an ISO 4217 code.
func IsValidFormat(s string) bool {
	return codeFormat.MatchString(s)
}

// IsSupported reports whether the bank transacts in the given currency.
func IsSupported(c Code) bool {
	_, ok := supported[c]
	return ok
}
