package service

// PasswordHasher derives and checks salted password hashes. The salt is
// per-record: Hash generates a fresh one on every call, and Verify recomputes
// the digest with the stored salt and compares in constant time.
type PasswordHasher interface {
	// Hash derives a digest from a plaintext password with a new random salt.
	// Both return values are encoded for storage.
	Hash(password string) (hash string, salt string, err error)

	// Verify reports whether the password matches the stored hash/salt pair.
	Verify(password, salt, hash string) bool
}
