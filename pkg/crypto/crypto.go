package crypto

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const shortIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateShortID creates an 8-character lowercase alphanumeric code used as
// the human-facing identifier of every record.
func GenerateShortID() string {
	b := make([]byte, 8)
	for i := range b {
		b[i] = shortIDAlphabet[RandIntn(len(shortIDAlphabet))]
	}

	return string(b)
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

func VerifyPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

// RandIntn returns a uniform random value in [0, n). It panics if got a
// non-positive parameter.
func RandIntn(n int) int {
	r, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(r.Int64())
}
