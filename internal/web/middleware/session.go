package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const (
	SessionName    = "advocacia_session"
	SessionUserKey = "user_token"
	tokenKey       = "token"
	loginPath      = "/login"
)

// NewStore cria o cookie store da sessão web. maxAge em segundos.
func NewStore(secret string, secure bool, maxAge int) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

func unauthorized(c *gin.Context) {
	// HTMX não segue redirect, precisa do header
	if c.GetHeader("HX-Request") == "true" {
		c.Header("HX-Redirect", loginPath)
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	c.Redirect(http.StatusFound, loginPath)
	c.Abort()
}

// RequireAuth protege as rotas HTML que exigem sessão.
func RequireAuth(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := store.Get(c.Request, SessionName)
		if err != nil {
			unauthorized(c)
			return
		}

		token, ok := session.Values[SessionUserKey].(string)
		if !ok || token == "" {
			unauthorized(c)
			return
		}

		c.Set(tokenKey, token)
		c.Next()
	}
}

// GetToken retorna o token da sessão guardado por RequireAuth.
func GetToken(c *gin.Context) string {
	token, _ := c.Get(tokenKey)
	s, _ := token.(string)
	return s
}
