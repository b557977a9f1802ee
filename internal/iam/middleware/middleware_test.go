package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sistema-advocacia/internal/iam/domain/model"
	"sistema-advocacia/internal/infra/database/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type env struct {
	db     *gorm.DB
	router *gin.Engine
}

func newEnv(t *testing.T) *env {
	t.Helper()
	db := dbtest.Open(t, &model.User{}, &AcessToken{})
	mw := NewMiddleware(NewRepository(db))

	r := gin.New()
	r.GET("/me", mw.SetContextAutorization(), func(c *gin.Context) {
		login, ok := GetAuthenticatedUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"email": login.User.Email, "trace": login.Metadata.RayTraceCode})
	})
	r.GET("/admin", mw.SetContextAutorization(), mw.AuthorizeRole(model.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return &env{db: db, router: r}
}

func (e *env) user(t *testing.T, role model.UserRole, live bool, token string, expiry time.Time) model.User {
	t.Helper()
	u := model.User{Name: "Maria", Email: token + "@example.com", Password: "x", Role: role, Live: true}
	require.NoError(t, e.db.Create(&u).Error)
	if !live {
		require.NoError(t, e.db.Model(&model.User{}).Where("uuid = ?", u.UUID).Update("live", false).Error)
	}
	require.NoError(t, e.db.Create(&AcessToken{UserUUID: &u.UUID, Token: token, Expiry: expiry}).Error)
	return u
}

func (e *env) do(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", "trace-1")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestSetContextAutorization(t *testing.T) {
	e := newEnv(t)
	future := time.Now().UTC().Add(time.Hour)
	e.user(t, model.RoleStaff, true, "valid", future)
	e.user(t, model.RoleStaff, true, "expired", time.Now().UTC().Add(-time.Hour))
	e.user(t, model.RoleStaff, false, "disabled", future)

	tests := []struct {
		name  string
		token string
		code  int
	}{
		{"valid token", "valid", http.StatusOK},
		{"missing token", "", http.StatusUnauthorized},
		{"unknown token", "nope", http.StatusUnauthorized},
		{"expired token", "expired", http.StatusUnauthorized},
		{"disabled user", "disabled", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := e.do("/me", tt.token)
			assert.Equal(t, tt.code, w.Code, w.Body.String())
		})
	}

	w := e.do("/me", "valid")
	assert.JSONEq(t, `{"email":"valid@example.com","trace":"trace-1"}`, w.Body.String())
}

func TestAuthorizeRole(t *testing.T) {
	e := newEnv(t)
	future := time.Now().UTC().Add(time.Hour)
	e.user(t, model.RoleAdmin, true, "admin", future)
	e.user(t, model.RoleStaff, true, "staff", future)

	assert.Equal(t, http.StatusNoContent, e.do("/admin", "admin").Code)

	w := e.do("/admin", "staff")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "ADMIN")
}

func TestExtractBearerToken(t *testing.T) {
	assert.Equal(t, "abc", extractBearerToken("Bearer abc "))
	assert.Equal(t, "", extractBearerToken("Basic abc"))
	assert.Equal(t, "", extractBearerToken(""))
}
