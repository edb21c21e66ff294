package passwords

import (
	"unicode"

	"github.com/dmitrijs2005/adminauth/internal/common"
)

// Rules reported in common.WeakPasswordError.
const (
	RuleMinLength = "min_length"
	RuleMaxLength = "max_length"
	RuleUpper     = "uppercase"
	RuleLower     = "lowercase"
	RuleDigit     = "digit"
	RuleSymbol    = "symbol"
)

// maxBytes is the longest input bcrypt accepts.
const maxBytes = 72

// Policy is the password strength policy.
type Policy struct {
	MinLength int
}

// Validate returns a *common.WeakPasswordError naming the first rule the
// password violates, or nil.
func (p Policy) Validate(password string) error {
	if len([]rune(password)) < p.MinLength {
		return &common.WeakPasswordError{Rule: RuleMinLength}
	}
	if len(password) > maxBytes {
		return &common.WeakPasswordError{Rule: RuleMaxLength}
	}

	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			symbol = true
		}
	}

	switch {
	case !upper:
		return &common.WeakPasswordError{Rule: RuleUpper}
	case !lower:
		return &common.WeakPasswordError{Rule: RuleLower}
	case !digit:
		return &common.WeakPasswordError{Rule: RuleDigit}
	case !symbol:
		return &common.WeakPasswordError{Rule: RuleSymbol}
	}
	return nil
}
