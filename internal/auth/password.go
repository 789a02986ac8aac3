package auth

import "golang.org/x/crypto/bcrypt"

// dummyHash is compared against when a login lookup misses, so the
// request costs the same whether the email exists or not.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("evently-dummy"), bcrypt.DefaultCost)

// HashPassword derives a salted bcrypt digest. Each call embeds a fresh
// random salt, so hashing the same password twice yields different digests.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether password matches the stored digest.
// A malformed digest simply fails the check.
func CheckPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}

// FakeCheck burns a bcrypt comparison against a throwaway digest.
func FakeCheck(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}
