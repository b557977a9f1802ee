package model

import (
	"time"

	"github.com/google/uuid"
)

// AcessToken é a sessão ativa de um usuário. Apagar a linha revoga o token.
type AcessToken struct {
	UserUUID *uuid.UUID `gorm:"type:uuid;index"`
	Token    string     `gorm:"type:varchar(512);not null;uniqueIndex"`
	Expiry   time.Time  `gorm:"type:timestamp;not null;column:expire_date"`
}

func (AcessToken) TableName() string {
	return "users_acess_tokens"
}

// Expired compara com o instante informado (UTC).
func (t AcessToken) Expired(now time.Time) bool {
	return !t.Expiry.After(now)
}
