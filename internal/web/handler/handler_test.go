package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"sistema-advocacia/internal/iam/application/auth"
	"sistema-advocacia/internal/iam/domain/user"
	"sistema-advocacia/internal/office/docgen"
	"sistema-advocacia/internal/office/domain/client"
	"sistema-advocacia/internal/office/domain/document"
	"sistema-advocacia/internal/pkg/rest_err"
	webMiddleware "sistema-advocacia/internal/web/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiToken = "tok-1"

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeAPI struct {
	mu      sync.Mutex
	revoked []string
	server  *httptest.Server
}

func bearerOK(c *gin.Context) bool {
	if c.GetHeader("Authorization") != "Bearer "+apiToken {
		c.JSON(http.StatusUnauthorized, rest_err.NewUnauthorizedError(nil, "Token inválido"))
		return false
	}
	return true
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	f := &fakeAPI{}

	r := gin.New()
	api := r.Group("/api")
	api.POST("/auth/login", func(c *gin.Context) {
		var req auth.LoginRequest
		_ = c.ShouldBindJSON(&req)
		if req.Password != "secret" {
			c.JSON(http.StatusUnauthorized, rest_err.NewUnauthorizedError(nil, "Email ou senha inválidos"))
			return
		}
		c.JSON(http.StatusOK, auth.LoginResponse{
			Token:  apiToken,
			Expire: time.Now().Add(time.Hour),
			User:   user.UserResponseDto{Name: "Dra. Ana", Email: req.Email, Role: "STAFF", Live: true},
		})
	})
	api.POST("/auth/logout/:token", func(c *gin.Context) {
		f.mu.Lock()
		f.revoked = append(f.revoked, c.Param("token"))
		f.mu.Unlock()
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	api.GET("/document/dashboard", func(c *gin.Context) {
		if !bearerOK(c) {
			return
		}
		c.JSON(http.StatusOK, document.DashboardResponseDto{
			TotalClients:   3,
			TotalDocuments: 7,
			Recent: []document.DocumentResponseDto{
				{UUID: uuid.New(), Kind: "Procuração", ClientName: "Maria Souza", CreateAt: time.Now()},
			},
		})
	})
	api.GET("/client/list", func(c *gin.Context) {
		if !bearerOK(c) {
			return
		}
		clients := []client.ClientResponseDto{
			{UUID: uuid.New(), FullName: "Maria Souza", TaxID: "123.456.789-00", City: "Recife"},
			{UUID: uuid.New(), FullName: "João Lima", TaxID: "987.654.321-00", City: "Olinda"},
		}
		if search := c.Query("search"); search != "" {
			var filtered []client.ClientResponseDto
			for _, cl := range clients {
				if strings.Contains(cl.FullName, search) {
					filtered = append(filtered, cl)
				}
			}
			clients = filtered
		}
		c.JSON(http.StatusOK, client.ClientListResponseDto{Clients: clients, Total: int64(len(clients)), Page: 1, Size: 20})
	})
	api.GET("/document/generate/:client/:template", func(c *gin.Context) {
		if !bearerOK(c) {
			return
		}
		if c.Param("template") == "broken" {
			c.JSON(http.StatusUnprocessableEntity, rest_err.NewUnprocessableEntityError(nil, "Modelo indisponível", nil))
			return
		}
		c.Header("Content-Disposition", `attachment; filename="Maria_Procuracao.docx"`)
		c.Data(http.StatusOK, docgen.ContentType, []byte("DOCX-BYTES"))
	})

	f.server = httptest.NewServer(r)
	t.Cleanup(f.server.Close)
	return f
}

func newWeb(t *testing.T) (*gin.Engine, *fakeAPI) {
	t.Helper()
	api := newFakeAPI(t)
	store := webMiddleware.NewStore("test-secret-with-32-bytes-length", false, 3600)

	h, err := NewWebHandler(store, NewAPIClient(api.server.URL+"/api", 5*time.Second))
	require.NoError(t, err)

	r := gin.New()
	h.Routes(r)
	return r, api
}

func login(t *testing.T, r *gin.Engine) []*http.Cookie {
	t.Helper()
	form := url.Values{"email": {"ana@example.com"}, "password": {"secret"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/dashboard", w.Header().Get("Location"))
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies
}

func get(r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginPage(t *testing.T) {
	r, _ := newWeb(t)

	w := get(r, "/login", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `action="/login"`)
}

func TestHandleLogin_WrongPassword(t *testing.T) {
	r, _ := newWeb(t)

	form := url.Values{"email": {"ana@example.com"}, "password": {"errada"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Email ou senha inválidos")
}

func TestPrivatePages_RequireSession(t *testing.T) {
	r, _ := newWeb(t)

	for _, path := range []string{"/dashboard", "/clients", "/documents", "/clients/x/generate/y"} {
		w := get(r, path, nil)
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/login", w.Header().Get("Location"), path)
	}
}

func TestDashboard(t *testing.T) {
	r, _ := newWeb(t)
	cookies := login(t, r)

	w := get(r, "/dashboard", cookies)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Dra. Ana")
	assert.Contains(t, body, ">7<")
	assert.Contains(t, body, "Maria Souza")
	assert.Contains(t, body, "Procuração")
}

func TestClientsTable_Search(t *testing.T) {
	r, _ := newWeb(t)
	cookies := login(t, r)

	w := get(r, "/clients/table?search=Jo", cookies)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "João Lima")
	assert.NotContains(t, w.Body.String(), "Maria Souza")
	assert.NotContains(t, w.Body.String(), "<html")
}

func TestDownloadDocument(t *testing.T) {
	r, _ := newWeb(t)
	cookies := login(t, r)

	w := get(r, "/clients/c1/generate/t1", cookies)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, docgen.ContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Maria_Procuracao.docx"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "10", w.Header().Get("Content-Length"))
	assert.Equal(t, "DOCX-BYTES", w.Body.String())
}

func TestDownloadDocument_FailureRedirects(t *testing.T) {
	r, _ := newWeb(t)
	cookies := login(t, r)

	w := get(r, "/clients/c1/generate/broken", cookies)

	require.Equal(t, http.StatusFound, w.Code)
	loc, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "/clients/c1/generate", loc.Path)
	assert.Equal(t, "Modelo indisponível", loc.Query().Get("error"))
}

func TestLogout_RevokesToken(t *testing.T) {
	r, api := newWeb(t)
	cookies := login(t, r)

	w := get(r, "/logout", cookies)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	api.mu.Lock()
	defer api.mu.Unlock()
	assert.Equal(t, []string{apiToken}, api.revoked)
}

func TestAPIClient_DecodesRestErr(t *testing.T) {
	api := newFakeAPI(t)
	c := NewAPIClient(api.server.URL+"/api", time.Second)

	var out document.DashboardResponseDto
	err := c.GetJSON(context.Background(), "/document/dashboard", "wrong", &out)

	require.Error(t, err)
	assert.Equal(t, "Token inválido", errorMessage(err, "fallback"))
}
