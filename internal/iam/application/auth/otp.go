package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateOTP gera um código numérico de n dígitos.
func GenerateOTP(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("tamanho de OTP inválido: %d", n)
	}
	code := make([]byte, n)
	for i := range code {
		d, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("falha ao gerar OTP: %w", err)
		}
		code[i] = byte('0' + d.Int64())
	}
	return string(code), nil
}
