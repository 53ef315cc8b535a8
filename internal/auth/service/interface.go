// Package service provides technical services for authentication operations.
//
// This package implements reusable services for password hashing and token
// generation using industry-standard cryptographic practices.
package service

// SecretService defines operations for password hashing and verification.
// Implementations must use an industry-standard hashing algorithm (e.g., argon2id).
type SecretService interface {
	// HashSecret hashes a plain text password using a secure hashing algorithm.
	HashSecret(plainSecret string) (hashedSecret string, err error)

	// CompareSecret compares a plain text password against a hashed one.
	// Returns true if the plain password matches the hash, false otherwise.
	// This is constant-time to prevent timing attacks.
	CompareSecret(plainSecret string, hashedSecret string) bool
}

// TokenService defines operations for authentication token generation and hashing.
// Implementations must use cryptographically secure random generation and
// fast hashing algorithms suitable for short-lived tokens (e.g., SHA-256).
type TokenService interface {
	// GenerateToken creates a new cryptographically secure random token.
	// Returns both the plain text token (to be shared with the caller) and
	// the hashed version (to be stored in the database).
	GenerateToken() (plainToken string, tokenHash string, err error)

	// HashToken hashes a plain text token using SHA-256.
	// Used for token validation by comparing hashes.
	HashToken(plainToken string) string
}
