package payment

import "crypto/rand"

const tokenLength = 6

func generateToken() string {
	const digits = "0123456789"
	b := make([]byte, tokenLength)
	_, _ = rand.Read(b)
	for i := range b {
		b[i] = digits[int(b[i])%len(digits)]
	}
	return string(b)
}
