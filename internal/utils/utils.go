package utils

import (
	"crypto/rand"
	"math/big"
)

// TemporaryPassword generates a random 12-character password for
// manager-created broker accounts.
func TemporaryPassword() (string, error) {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	length := 12
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		if err != nil {
			return "", err
		}
		result[i] = chars[num.Int64()]
	}
	return string(result), nil
}

// Float64Ptr is a literal helper for the nullable rate fields.
func Float64Ptr(v float64) *float64 {
	return &v
}
