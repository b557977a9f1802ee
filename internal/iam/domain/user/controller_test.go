package user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sistema-advocacia/internal/iam/middleware"
	"sistema-advocacia/internal/infra/database/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	db      *gorm.DB
	service Service
	router  *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := dbtest.Open(t, &User{}, &middleware.AcessToken{})
	service := NewService(NewRepository(db))
	ctrl := NewController(service, middleware.NewMiddleware(middleware.NewRepository(db)))

	r := gin.New()
	ctrl.Routes(r.Group("/api"))
	return &testEnv{db: db, service: service, router: r}
}

// login cria um usuário com token válido e devolve o token.
func (e *testEnv) login(t *testing.T, role UserRole) (User, string) {
	t.Helper()
	u := User{Name: string(role), Email: strings.ToLower(string(role)) + "-" + uuid.NewString()[:8] + "@example.com", Password: "x", Role: role, Live: true}
	require.NoError(t, e.db.Create(&u).Error)

	token := uuid.NewString()
	require.NoError(t, e.db.Create(&middleware.AcessToken{UserUUID: &u.UUID, Token: token, Expiry: time.Now().UTC().Add(time.Hour)}).Error)
	return u, token
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

func TestSignup_CreatesStaff(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(http.MethodPost, "/api/user/signup", "", `{"name":"Ana","email":"Ana@Example.com","password":"12345678"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp UserResponseDto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, RoleStaff, resp.Role)
	assert.Equal(t, "ana@example.com", resp.Email)
	assert.True(t, resp.Live)
	assert.NotContains(t, w.Body.String(), "password")

	w = e.do(http.MethodPost, "/api/user/signup", "", `{"name":"Ana","email":"ana@example.com","password":"12345678"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSignup_Validation(t *testing.T) {
	e := newTestEnv(t)

	w := e.do(http.MethodPost, "/api/user/signup", "", `{"name":"Ana","email":"not-an-email","password":"12345678"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = e.do(http.MethodPost, "/api/user/signup", "", `{"name":"Ana","email":"ana@example.com","password":"123"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreate_RequiresAdmin(t *testing.T) {
	e := newTestEnv(t)
	_, staffToken := e.login(t, RoleStaff)
	_, adminToken := e.login(t, RoleAdmin)
	body := `{"name":"Bia","email":"bia@example.com","password":"12345678","role":"ADMIN"}`

	assert.Equal(t, http.StatusUnauthorized, e.do(http.MethodPost, "/api/user", "", body).Code)
	assert.Equal(t, http.StatusForbidden, e.do(http.MethodPost, "/api/user", staffToken, body).Code)

	w := e.do(http.MethodPost, "/api/user", adminToken, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"role":"ADMIN"`)

	w = e.do(http.MethodPost, "/api/user", adminToken, `{"name":"C","email":"c@example.com","password":"12345678","role":"ROOT"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRead_StaffOnlySelf(t *testing.T) {
	e := newTestEnv(t)
	staff, staffToken := e.login(t, RoleStaff)
	other, _ := e.login(t, RoleStaff)
	_, adminToken := e.login(t, RoleAdmin)

	w := e.do(http.MethodGet, "/api/user", staffToken, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), staff.Email)

	w = e.do(http.MethodGet, "/api/user?uuid="+other.UUID.String(), staffToken, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = e.do(http.MethodGet, "/api/user?uuid="+other.UUID.String(), adminToken, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = e.do(http.MethodGet, "/api/user?uuid=xyz", adminToken, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = e.do(http.MethodGet, "/api/user?uuid="+uuid.NewString(), adminToken, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestList(t *testing.T) {
	e := newTestEnv(t)
	_, adminToken := e.login(t, RoleAdmin)
	e.login(t, RoleStaff)
	e.login(t, RoleStaff)

	w := e.do(http.MethodGet, "/api/user/list?page=1&size=2", adminToken, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp UserListResponseDto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Users, 2)
	assert.Equal(t, 2, resp.Size)
}

func TestUpdate_DeactivateAndRole(t *testing.T) {
	e := newTestEnv(t)
	_, adminToken := e.login(t, RoleAdmin)
	staff, staffToken := e.login(t, RoleStaff)

	w := e.do(http.MethodPatch, "/api/user/"+staff.Email, adminToken, `{"live":false,"role":"ADMIN"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp UserResponseDto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Live)
	assert.Equal(t, RoleAdmin, resp.Role)

	// usuário desativado não acessa mais a API
	assert.Equal(t, http.StatusForbidden, e.do(http.MethodGet, "/api/user", staffToken, "").Code)

	w = e.do(http.MethodPatch, "/api/user/"+uuid.NewString(), adminToken, `{"name":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = e.do(http.MethodPatch, "/api/user/"+staff.UUID.String(), adminToken, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDelete(t *testing.T) {
	e := newTestEnv(t)
	admin, adminToken := e.login(t, RoleAdmin)
	staff, _ := e.login(t, RoleStaff)

	assert.Equal(t, http.StatusNoContent, e.do(http.MethodDelete, "/api/user?uuid="+staff.UUID.String(), adminToken, "").Code)
	assert.Equal(t, http.StatusNotFound, e.do(http.MethodDelete, "/api/user?uuid="+staff.UUID.String(), adminToken, "").Code)
	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodDelete, "/api/user", adminToken, "").Code)

	// último admin
	w := e.do(http.MethodDelete, "/api/user?email="+admin.Email, adminToken, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}
