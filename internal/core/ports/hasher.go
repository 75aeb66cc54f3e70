package ports

// PasswordHasher is a one-way, salted credential hasher. Hash is not
// required to be deterministic; Verify must recognize every pair Hash
// produced. Implementations must never log or retain the plaintext.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}
