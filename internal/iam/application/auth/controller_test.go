package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"sistema-advocacia/internal/iam/application/auth/cache"
	"sistema-advocacia/internal/iam/domain/user"
	"sistema-advocacia/internal/iam/middleware"
	"sistema-advocacia/internal/infra/database/dbtest"
	"sistema-advocacia/internal/infra/jwt"
	"sistema-advocacia/internal/pkg/mailer"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeMailer struct {
	mu   sync.Mutex
	sent map[string]string
}

func (m *fakeMailer) SendRaw(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sent == nil {
		m.sent = map[string]string{}
	}
	m.sent[to] = body
	return nil
}

func (m *fakeMailer) SendTemplate(to, subject, tpl string, data any) error {
	return m.SendRaw(to, subject, tpl)
}

var otpPattern = regexp.MustCompile(`\d{6}`)

func (m *fakeMailer) otp(t *testing.T, to string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	code := otpPattern.FindString(m.sent[to])
	require.NotEmpty(t, code)
	return code
}

type testEnv struct {
	router *gin.Engine
	users  user.Service
	mail   *fakeMailer
}

func newTestEnv(t *testing.T, mail mailer.Service) *testEnv {
	t.Helper()
	t.Cleanup(cache.OTPCache.Flush)

	db := dbtest.Open(t, &user.User{}, &AcessToken{})
	users := user.NewService(user.NewRepository(db))
	tokens, err := jwt.NewTokenGenerator(jwt.Config{AccessSecret: "s", Issuer: "test", AccessExpiry: time.Hour})
	require.NoError(t, err)

	svc := NewService(NewRepository(db), users, tokens, mail)
	ctrl := NewController(svc, middleware.NewMiddleware(middleware.NewRepository(db)))

	r := gin.New()
	ctrl.Routes(r.Group("/api"))

	env := &testEnv{router: r, users: users}
	if fm, ok := mail.(*fakeMailer); ok {
		env.mail = fm
	}
	return env
}

func (e *testEnv) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) createUser(t *testing.T, email, pwd string) user.User {
	t.Helper()
	u, err := e.users.Create(context.Background(), user.User{Name: "Maria", Email: email, Password: pwd, Role: user.RoleStaff})
	require.NoError(t, err)
	return u
}

func (e *testEnv) login(t *testing.T, email, pwd string) string {
	t.Helper()
	w := e.do(http.MethodPost, "/api/auth/login", "", `{"email":"`+email+`","password":"`+pwd+`"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestLogin_AndHealthcheck(t *testing.T) {
	e := newTestEnv(t, nil)
	e.createUser(t, "maria@example.com", "senha-forte")

	token := e.login(t, "maria@example.com", "senha-forte")

	w := e.do(http.MethodGet, "/api/auth/healthcheck", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "maria@example.com")
	assert.NotContains(t, w.Body.String(), "password")
}

func TestLogin_WrongCredentials(t *testing.T) {
	e := newTestEnv(t, nil)
	e.createUser(t, "maria@example.com", "senha-forte")

	w := e.do(http.MethodPost, "/api/auth/login", "", `{"email":"maria@example.com","password":"errada"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = e.do(http.MethodPost, "/api/auth/login", "", `{"email":"ninguem@example.com","password":"errada"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = e.do(http.MethodPost, "/api/auth/login", "", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_DisabledUser(t *testing.T) {
	e := newTestEnv(t, nil)
	u := e.createUser(t, "maria@example.com", "senha-forte")
	live := false
	_, err := e.users.Update(context.Background(), user.User{UUID: u.UUID}, &live)
	require.NoError(t, err)

	w := e.do(http.MethodPost, "/api/auth/login", "", `{"email":"maria@example.com","password":"senha-forte"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLogin_SingleSession(t *testing.T) {
	e := newTestEnv(t, nil)
	e.createUser(t, "maria@example.com", "senha-forte")

	first := e.login(t, "maria@example.com", "senha-forte")
	second := e.login(t, "maria@example.com", "senha-forte")

	assert.Equal(t, http.StatusUnauthorized, e.do(http.MethodGet, "/api/auth/healthcheck", first, "").Code)
	assert.Equal(t, http.StatusOK, e.do(http.MethodGet, "/api/auth/healthcheck", second, "").Code)
}

func TestLogout(t *testing.T) {
	e := newTestEnv(t, nil)
	e.createUser(t, "maria@example.com", "senha-forte")
	token := e.login(t, "maria@example.com", "senha-forte")

	assert.Equal(t, http.StatusAccepted, e.do(http.MethodPost, "/api/auth/logout/"+token, "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, e.do(http.MethodGet, "/api/auth/healthcheck", token, "").Code)
	assert.Equal(t, http.StatusNotFound, e.do(http.MethodPost, "/api/auth/logout/inexistente", "", "").Code)
}

func TestPasswordReset_WithOTP(t *testing.T) {
	mail := &fakeMailer{}
	e := newTestEnv(t, mail)
	e.createUser(t, "maria@example.com", "senha-forte")
	oldToken := e.login(t, "maria@example.com", "senha-forte")

	require.Equal(t, http.StatusAccepted, e.do(http.MethodPost, "/api/auth/otp", "", `{"email":"maria@example.com"}`).Code)
	assert.Equal(t, http.StatusConflict, e.do(http.MethodPost, "/api/auth/otp", "", `{"email":"maria@example.com"}`).Code)

	w := e.do(http.MethodPost, "/api/auth/password/reset", "", `{"email":"maria@example.com","otp":"000000x","password":"nova-senha-1"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	code := mail.otp(t, "maria@example.com")
	w = e.do(http.MethodPost, "/api/auth/password/reset", "", `{"email":"maria@example.com","otp":"`+code+`","password":"nova-senha-1"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// o código é de uso único e a sessão anterior foi encerrada
	w = e.do(http.MethodPost, "/api/auth/password/reset", "", `{"email":"maria@example.com","otp":"`+code+`","password":"outra-senha"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, http.StatusUnauthorized, e.do(http.MethodGet, "/api/auth/healthcheck", oldToken, "").Code)

	e.login(t, "maria@example.com", "nova-senha-1")
}

func TestCreateOTP_Errors(t *testing.T) {
	e := newTestEnv(t, nil)
	e.createUser(t, "maria@example.com", "senha-forte")

	assert.Equal(t, http.StatusInternalServerError, e.do(http.MethodPost, "/api/auth/otp", "", `{"email":"maria@example.com"}`).Code)
	assert.Equal(t, http.StatusNotFound, e.do(http.MethodPost, "/api/auth/otp", "", `{"email":"ninguem@example.com"}`).Code)
}

func TestGenerateOTP(t *testing.T) {
	code, err := GenerateOTP(6)
	require.NoError(t, err)
	assert.Regexp(t, `^\d{6}$`, code)

	_, err = GenerateOTP(0)
	assert.Error(t, err)
}
