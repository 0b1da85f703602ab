package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// Crypt hashes the password with bcrypt before it is stored.
func Crypt(password string) (string, error) {
	cost := 5

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(hashedPassword), err
}

// VerifyPassword checks the plaintext password against the stored hash.
func VerifyPassword(password, hashedPassword string) (error, bool) {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err != nil {
		return err, false
	}
	return nil, true
}
