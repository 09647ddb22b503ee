// Package service defines interfaces for domain services implemented in infra.
package service

// CodeGenerator produces human-enterable recharge codes and their
// storage-safe hashes.
//
// Codes are 16 characters from an unambiguous alphabet (no 0/1/O/I),
// formatted XXXX-XXXX-XXXX-XXXX. Uniqueness is not checked at generation
// time; batch sizes are capped to bound the practical collision risk.
type CodeGenerator interface {
	// GenerateCode returns a fresh plaintext code.
	GenerateCode() string

	// HashCode normalizes the code (strip hyphens and whitespace,
	// uppercase) and returns the lowercase-hex SHA-256 digest. The hash is
	// the persisted identity of a code; the plaintext never is.
	HashCode(code string) string
}
