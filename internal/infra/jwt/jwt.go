package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var singleton *TokenGenerator

var ErrInvalidToken = errors.New("token inválido")

type AccessTokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type TokenGenerator struct {
	accessSecretKey []byte
	issuer          string
	accessExpiry    time.Duration
}

type Config struct {
	AccessSecret string
	Issuer       string
	AccessExpiry time.Duration
}

// NewTokenGenerator valida a configuração e cria um gerador independente do singleton.
func NewTokenGenerator(cfg Config) (*TokenGenerator, error) {
	if cfg.AccessSecret == "" {
		return nil, fmt.Errorf("segredo JWT não pode estar vazio")
	}
	if cfg.Issuer == "" {
		return nil, fmt.Errorf("emissor (issuer) JWT não pode estar vazio")
	}
	if cfg.AccessExpiry <= 0 {
		return nil, fmt.Errorf("expiração do token deve ser positiva")
	}

	return &TokenGenerator{
		accessSecretKey: []byte(cfg.AccessSecret),
		issuer:          cfg.Issuer,
		accessExpiry:    cfg.AccessExpiry,
	}, nil
}

// Init inicializa o singleton (chamado uma vez no bootstrap).
func Init(cfg Config) error {
	tg, err := NewTokenGenerator(cfg)
	if err != nil {
		return err
	}
	singleton = tg
	return nil
}

// Use retorna a instância global.
func Use() *TokenGenerator {
	if singleton == nil {
		panic("JWT package não foi inicializado. Chame jwt.Init(cfg) no startup da aplicação.")
	}
	return singleton
}

func (tg *TokenGenerator) GenerateAccessToken(userID uuid.UUID, role string) (string, time.Time, error) {
	now := time.Now().UTC()
	expirationTime := now.Add(tg.accessExpiry)

	claims := &AccessTokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tg.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tg.accessSecretKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("erro ao assinar o access token: %w", err)
	}

	return tokenString, expirationTime, nil
}

// ParseAccessToken valida assinatura, emissor e expiração.
func (tg *TokenGenerator) ParseAccessToken(tokenString string) (*AccessTokenClaims, error) {
	claims := &AccessTokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return tg.accessSecretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tg.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}
