package acctnum

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servisthird/coreledger/internal/model"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		accountType model.AccountType
		ownerSeed   string
		sequence    int
		want        string
	}{
		{model.AccountTypeChecking, "user042", 1, "1001-042-0001-6"},
		{model.AccountTypeSavings, "user042", 1, "2001-042-0001-5"},
		{model.AccountTypeChecking, "7", 12, "1001-007-0012-6"},
		{model.AccountType("unknown"), "1", 1, "9001-001-0001-7"},
	}
	for _, tt := range tests {
		got := Generate(tt.accountType, tt.ownerSeed, tt.sequence)
		assert.True(t, Valid(got), "generated number must validate: %s", got)
		assert.Equal(t, tt.want, got)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(model.AccountTypeSavings, "u123", 2)
	b := Generate(model.AccountTypeSavings, "u123", 2)
	assert.Equal(t, a, b)
}

func TestCheckDigit_KnownValues(t *testing.T) {
	tests := []struct {
		digits string
		want   int
	}{
		{"7992739871", 3}, // classic Luhn example
		{"10010420001", 6},
		{"0", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CheckDigit(tt.digits), "digits: %s", tt.digits)
	}
}

func TestValid_RecomputesTrailingDigit(t *testing.T) {
	for seq := 1; seq <= 25; seq++ {
		num := Generate(model.AccountTypeCredit, fmt.Sprintf("user%d", seq), seq)
		require.True(t, Valid(num), num)

		// Stripping the check digit and recomputing must reproduce it.
		digits := strings.ReplaceAll(num, "-", "")
		body := digits[:len(digits)-1]
		assert.Equal(t, int(digits[len(digits)-1]-'0'), CheckDigit(body))
	}
}

func TestValid_DetectsSingleDigitMutation(t *testing.T) {
	num := Generate(model.AccountTypeChecking, "user042", 1)
	digits := strings.ReplaceAll(num, "-", "")

	for i := 0; i < len(digits); i++ {
		for d := byte('0'); d <= '9'; d++ {
			if digits[i] == d {
				continue
			}
			mutated := digits[:i] + string(d) + digits[i+1:]
			assert.False(t, Valid(mutated), "mutation at %d undetected: %s", i, mutated)
		}
	}
}

func TestValid_Degenerate(t *testing.T) {
	assert.False(t, Valid(""))
	assert.False(t, Valid("5"))
	assert.False(t, Valid("--"))
}
