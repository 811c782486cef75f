package security

import (
	"golang.org/x/crypto/bcrypt"
)

// dummyHash is a bcrypt digest of an unguessable throwaway value. Login runs a
// compare against it when the username does not exist, so the unknown-user and
// wrong-password paths cost the same.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// HashPassword returns the bcrypt encoding of password. bcrypt salts every
// call, so hashing the same password twice yields different encodings.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash reports whether password matches the stored bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// BurnPasswordCheck spends one bcrypt verification against a fixed hash and
// always reports false. Used to keep login timing flat for unknown usernames.
func BurnPasswordCheck(password string) bool {
	bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
	return false
}
