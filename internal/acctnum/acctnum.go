// Package acctnum generates and validates display account numbers with an
// embedded Luhn check digit.
package acctnum

import (
	"fmt"
	"strings"

	"github.com/servisthird/coreledger/internal/model"
)

// Type prefixes for the first four digits of an account number.
const (
	prefixChecking = "1001"
	prefixSavings  = "2001"
	prefixCredit   = "4001"
	prefixLoan     = "8001"
	prefixUnknown  = "9001"
)

// Generate returns a display account number "TTTT-UUU-SSSS-C": a 4-digit
// type prefix, a 3-digit owner segment derived from ownerSeed, a 4-digit
// sequence, and a Luhn check digit over the preceding eleven digits.
// Deterministic for identical inputs.
func Generate(accountType model.AccountType, ownerSeed string, sequence int) string {
	prefix := typePrefix(accountType)
	owner := ownerSegment(ownerSeed)
	seq := fmt.Sprintf("%04d", sequence)
	check := CheckDigit(prefix + owner + seq)
	return fmt.Sprintf("%s-%s-%s-%d", prefix, owner, seq, check)
}

// CheckDigit computes the Luhn check digit for a digit string: double
// every second digit from the right, subtract 9 from doubles above 9,
// sum, and return (10 - sum mod 10) mod 10. Non-digit bytes are skipped.
func CheckDigit(digits string) int {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			continue
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return (10 - sum%10) % 10
}

// Valid reports whether the trailing digit of number is the correct check
// digit for the digits before it. Dashes and other separators are ignored.
func Valid(number string) bool {
	digits := strip(number)
	if len(digits) < 2 {
		return false
	}
	body, last := digits[:len(digits)-1], digits[len(digits)-1]
	return CheckDigit(body) == int(last-'0')
}

func typePrefix(accountType model.AccountType) string {
	switch accountType {
	case model.AccountTypeChecking:
		return prefixChecking
	case model.AccountTypeSavings:
		return prefixSavings
	case model.AccountTypeCredit:
		return prefixCredit
	case model.AccountTypeLoan:
		return prefixLoan
	default:
		return prefixUnknown
	}
}

// ownerSegment keeps only the digits of ownerSeed, left-padded with zeros
// to three places; longer seeds keep their last three digits.
func ownerSegment(ownerSeed string) string {
	digits := strip(ownerSeed)
	if len(digits) > 3 {
		digits = digits[len(digits)-3:]
	}
	return strings.Repeat("0", 3-len(digits)) + digits
}

func strip(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
