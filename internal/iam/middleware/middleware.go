package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"sistema-advocacia/internal/iam/domain/model"
	"sistema-advocacia/internal/pkg/log/acess_log"
	"sistema-advocacia/internal/pkg/rest_err"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Middleware interface {
	SetContextAutorization() gin.HandlerFunc
	AuthorizeRole(requiredRoles ...model.UserRole) gin.HandlerFunc
}

type impl struct {
	repository Repository
}

func NewMiddleware(repository Repository) Middleware {
	return &impl{
		repository: repository,
	}
}

func (mw *impl) SetContextAutorization() gin.HandlerFunc {
	return func(c *gin.Context) {
		rayTrace := acess_log.RayTrace(c)
		token := extractBearerToken(c.GetHeader("Authorization"))

		if token == "" {
			e := rest_err.NewUnauthorizedError(&rayTrace, "Token ausente ou inválido.")
			c.AbortWithStatusJSON(e.Code, e)
			return
		}

		login, err := mw.repository.GetLogin(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				e := rest_err.NewUnauthorizedError(&rayTrace, "Token de acesso não encontrado.")
				c.AbortWithStatusJSON(e.Code, e)
				return
			}
			e := rest_err.NewUnauthorizedError(&rayTrace, "Falha ao validar token de acesso.")
			c.AbortWithStatusJSON(e.Code, e)
			return
		}

		if login.AcessToken.UserUUID == nil || *login.AcessToken.UserUUID == uuid.Nil {
			e := rest_err.NewUnauthorizedError(&rayTrace, "Token não associado a nenhum usuário válido.")
			c.AbortWithStatusJSON(e.Code, e)
			return
		}

		if login.AcessToken.Expired(time.Now().UTC()) {
			e := rest_err.NewUnauthorizedError(&rayTrace, "Token expirado. Efetue login novamente.")
			c.AbortWithStatusJSON(e.Code, e)
			return
		}

		if !login.User.Live {
			e := rest_err.NewForbiddenError(&rayTrace, "Usuário desativado.")
			c.AbortWithStatusJSON(e.Code, e)
			return
		}

		login.Metadata = Metadata{
			RayTraceCode: rayTrace,
			IP:           c.ClientIP(),
			Agent:        c.Request.UserAgent(),
			Method:       c.Request.Method,
			Path:         c.Request.URL.Path,
			Host:         c.Request.Host,
			Referer:      c.Request.Referer(),
			ContentType:  c.ContentType(),
			UserLanguage: c.GetHeader("Accept-Language"),
			TimeRequest:  time.Now().UTC(),
		}

		SetAuthenticatedUser(c, login)
		c.Next()
	}
}

func (mw *impl) AuthorizeRole(requiredRoles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		rayTrace := acess_log.RayTrace(c)
		lUser, ok := GetAuthenticatedUser(c)

		if !ok {
			e := rest_err.NewUnauthorizedError(&rayTrace, "Usuário não autenticado.")
			c.AbortWithStatusJSON(e.Code, e)
			return
		}

		if !isRoleAuthorized(lUser.User.Role, requiredRoles) {
			requiredRoleStrings := make([]string, len(requiredRoles))
			for i, role := range requiredRoles {
				requiredRoleStrings[i] = string(role)
			}

			e := rest_err.NewForbiddenError(&rayTrace, fmt.Sprintf(
				"Acesso negado. É necessário possuir uma das permissões: %v.",
				requiredRoleStrings,
			))
			c.AbortWithStatusJSON(e.Code, e)
			return
		}

		c.Next()
	}
}

func isRoleAuthorized(userRole model.UserRole, requiredRoles []model.UserRole) bool {
	if len(requiredRoles) == 0 {
		return true
	}
	for _, requiredRole := range requiredRoles {
		if userRole == requiredRole {
			return true
		}
	}
	return false
}

func extractBearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
