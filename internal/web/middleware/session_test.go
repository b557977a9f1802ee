package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := NewStore("test-secret-with-32-bytes-length", false, 3600)

	r := gin.New()
	r.GET("/login-as/:token", func(c *gin.Context) {
		session, _ := store.Get(c.Request, SessionName)
		session.Values[SessionUserKey] = c.Param("token")
		require.NoError(t, session.Save(c.Request, c.Writer))
		c.Status(http.StatusNoContent)
	})
	r.GET("/private", RequireAuth(store), func(c *gin.Context) {
		c.String(http.StatusOK, GetToken(c))
	})
	return r
}

func TestRequireAuth_NoSessionRedirects(t *testing.T) {
	h := newRouter(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireAuth_HTMXGets401(t *testing.T) {
	h := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("HX-Request", "true")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "/login", w.Header().Get("HX-Redirect"))
}

func TestRequireAuth_WithSession(t *testing.T) {
	h := newRouter(t)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/login-as/abc123", nil))
	require.Equal(t, http.StatusNoContent, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc123", w.Body.String())
}

func TestGetToken_Missing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, GetToken(c))
}
