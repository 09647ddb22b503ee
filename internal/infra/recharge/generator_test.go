package recharge

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeGenerator_GenerateCode_Format(t *testing.T) {
	generator := NewCodeGenerator()

	formatPattern := regexp.MustCompile(`^[A-HJ-NP-Z2-9]{4}-[A-HJ-NP-Z2-9]{4}-[A-HJ-NP-Z2-9]{4}-[A-HJ-NP-Z2-9]{4}$`)

	for i := 0; i < 100; i++ {
		code := generator.GenerateCode()
		assert.Regexp(t, formatPattern, code)
	}
}

func TestCodeGenerator_GenerateCode_AlphabetOnly(t *testing.T) {
	generator := NewCodeGenerator()

	for i := 0; i < 100; i++ {
		code := generator.GenerateCode()
		stripped := strings.ReplaceAll(code, "-", "")
		require.Len(t, stripped, 16)

		for _, r := range stripped {
			assert.Contains(t, codeAlphabet, string(r))
		}

		// Ambiguous characters never appear
		assert.NotContains(t, stripped, "0")
		assert.NotContains(t, stripped, "1")
		assert.NotContains(t, stripped, "O")
		assert.NotContains(t, stripped, "I")
	}
}

func TestCodeGenerator_GenerateCode_Distinct(t *testing.T) {
	generator := NewCodeGenerator()

	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		code := generator.GenerateCode()
		_, dup := seen[code]
		require.False(t, dup, "generated duplicate code: %s", code)
		seen[code] = struct{}{}
	}
}

func TestCodeGenerator_HashCode_NormalizationInvariance(t *testing.T) {
	generator := NewCodeGenerator()

	canonical := generator.HashCode("ABCD-EFGH-JKLM-NPQR")

	// Separators and case never change the hash
	assert.Equal(t, canonical, generator.HashCode("ABCDEFGHJKLMNPQR"))
	assert.Equal(t, canonical, generator.HashCode("abcd-efgh-jklm-npqr"))
	assert.Equal(t, canonical, generator.HashCode("abcd efgh jklm npqr"))
	assert.Equal(t, canonical, generator.HashCode(" ABCD-EFGH-JKLM-NPQR "))
}

func TestCodeGenerator_HashCode_Hex(t *testing.T) {
	generator := NewCodeGenerator()

	hash := generator.HashCode(generator.GenerateCode())
	assert.Regexp(t, `^[0-9a-f]{64}$`, hash)
}

func TestCodeGenerator_HashCode_DistinctInputs(t *testing.T) {
	generator := NewCodeGenerator()

	first := generator.HashCode("ABCD-EFGH-JKLM-NPQR")
	second := generator.HashCode("ABCD-EFGH-JKLM-NPQS")
	assert.NotEqual(t, first, second)
}
