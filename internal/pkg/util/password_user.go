package util

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/argon2"
)

// Parâmetros do Argon2id
const (
	saltLength  = 16
	memory      = 64 * 1024
	iterations  = 3
	parallelism = 2
	keyLength   = 32
)

var (
	ErrInvalidHash     = errors.New("invalid hash format")
	ErrInvalidPassword = errors.New("invalid password")
)

// Password define o contrato para hash e comparação de senhas.
type Password interface {
	Hash(password string) (string, error)
	Compare(encodedHash, password string) error
}

type argon2Password struct{}

var (
	passwordInstance Password
	once             sync.Once
)

// UsePassword retorna a instância única de Password.
func UsePassword() Password {
	once.Do(func() {
		passwordInstance = &argon2Password{}
	})
	return passwordInstance
}

// Hash gera um hash no formato PHC: $argon2id$v=19$m=...,t=...,p=...$salt$hash
func (p *argon2Password) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, keyLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, memory, iterations, parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash)), nil
}

func (p *argon2Password) Compare(encodedHash, password string) error {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return ErrInvalidHash
	}

	var (
		mem  uint32
		iter uint32
		par  uint8
	)
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iter, &par); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return fmt.Errorf("%w: salt: %v", ErrInvalidHash, err)
	}
	expectedHash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return fmt.Errorf("%w: hash: %v", ErrInvalidHash, err)
	}

	computedHash := argon2.IDKey([]byte(password), salt, iter, mem, par, uint32(len(expectedHash)))
	if subtle.ConstantTimeCompare(expectedHash, computedHash) != 1 {
		return ErrInvalidPassword
	}
	return nil
}
