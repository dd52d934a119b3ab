package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted, self-describing
// hashes and checks candidates against them.
type PasswordHasher interface {
	// Hash returns a new salted hash of password. Two calls with the same
	// input produce different outputs.
	Hash(password string) (string, error)

	// Verify reports whether candidate matches the stored hash. Malformed
	// stored values never match.
	Verify(candidate, stored string) bool
}
