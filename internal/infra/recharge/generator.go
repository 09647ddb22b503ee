// Package recharge implements recharge code generation and hashing.
package recharge

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"math/big"
	"regexp"
	"strings"

	"raseed/internal/domain/service"
)

// codeAlphabet omits 0/1/O/I so printed cards stay unambiguous.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	codeLength = 16
	groupSize  = 4
)

var normalizePattern = regexp.MustCompile(`[-\s]`)

type codeGenerator struct{}

// NewCodeGenerator is the constructor for codeGenerator.
func NewCodeGenerator() service.CodeGenerator {
	return &codeGenerator{}
}

// GenerateCode returns a fresh plaintext code formatted XXXX-XXXX-XXXX-XXXX.
func (g *codeGenerator) GenerateCode() string {
	alphabetLen := big.NewInt(int64(len(codeAlphabet)))

	var builder strings.Builder
	builder.Grow(codeLength + codeLength/groupSize - 1)

	for i := 0; i < codeLength; i++ {
		if i > 0 && i%groupSize == 0 {
			builder.WriteByte('-')
		}

		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is broken.
			panic(err)
		}
		builder.WriteByte(codeAlphabet[n.Int64()])
	}

	return builder.String()
}

// HashCode normalizes the code and returns the lowercase-hex SHA-256 digest.
// Normalization strips hyphens and whitespace and uppercases, so shoppers can
// enter codes with or without separators.
func (g *codeGenerator) HashCode(code string) string {
	normalized := strings.ToUpper(normalizePattern.ReplaceAllString(code, ""))
	digest := sha256.Sum256([]byte(normalized))

	return hex.EncodeToString(digest[:])
}
