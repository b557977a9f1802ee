package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const UserContextKey = "AuthenticatedUserKey"

func SetAuthenticatedUser(c *gin.Context, userLogin *Login) {
	if userLogin != nil {
		c.Set(UserContextKey, userLogin)
	}
}

func GetAuthenticatedUser(c *gin.Context) (*Login, bool) {
	value, exists := c.Get(UserContextKey)
	if !exists {
		return nil, false
	}
	userLogin, ok := value.(*Login)
	if !ok {
		return nil, false
	}
	return userLogin, true
}

// Identify alimenta o log de acesso com o usuário do request (se autenticado).
func Identify(c *gin.Context) (*uuid.UUID, string) {
	login, ok := GetAuthenticatedUser(c)
	if !ok || login.User.UUID == uuid.Nil {
		return nil, ""
	}
	id := login.User.UUID
	return &id, login.User.Email
}

// ActorUUID devolve o UUID do usuário autenticado ou uuid.Nil.
func ActorUUID(c *gin.Context) uuid.UUID {
	login, ok := GetAuthenticatedUser(c)
	if !ok {
		return uuid.Nil
	}
	return login.User.UUID
}
