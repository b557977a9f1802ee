package auth

import (
	"sistema-advocacia/internal/iam/domain/model"
	"sistema-advocacia/internal/iam/domain/user"
)

type AcessToken = model.AcessToken

type Login struct {
	User       user.User
	AcessToken AcessToken
}
