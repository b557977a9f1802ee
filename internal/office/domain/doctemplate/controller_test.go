package doctemplate

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	iammodel "sistema-advocacia/internal/iam/domain/model"
	"sistema-advocacia/internal/iam/middleware"
	"sistema-advocacia/internal/infra/database/dbtest"
	"sistema-advocacia/internal/infra/storage"
	"sistema-advocacia/internal/office/docgen"
	"sistema-advocacia/internal/office/docgen/docxtest"

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
	db     *gorm.DB
	router *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := dbtest.Open(t, &iammodel.User{}, &middleware.AcessToken{}, &DocumentTemplate{})
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	ctrl := NewController(NewService(NewRepository(db), store, 0), middleware.NewMiddleware(middleware.NewRepository(db)), 0)
	r := gin.New()
	ctrl.Routes(r.Group("/api"))
	return &testEnv{db: db, router: r}
}

func (e *testEnv) login(t *testing.T, role iammodel.UserRole) string {
	t.Helper()
	u := iammodel.User{Name: string(role), Email: uuid.NewString()[:8] + "@example.com", Password: "x", Role: role, Live: true}
	require.NoError(t, e.db.Create(&u).Error)

	token := uuid.NewString()
	require.NoError(t, e.db.Create(&middleware.AcessToken{UserUUID: &u.UUID, Token: token, Expiry: time.Now().UTC().Add(time.Hour)}).Error)
	return token
}

func (e *testEnv) multipart(t *testing.T, method, path, token string, fields map[string]string, filename string, file []byte) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) do(method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func TestCreateTemplate(t *testing.T) {
	e := newTestEnv(t)
	admin := e.login(t, iammodel.RoleAdmin)
	staff := e.login(t, iammodel.RoleStaff)
	file := docxtest.Build(t, docxtest.Paragraph("{{nome}} {{comarca}}"))
	fields := map[string]string{"title": "Procuração", "description": "<i>ad judicia</i>"}

	w := e.multipart(t, http.MethodPost, "/api/template", staff, fields, "p.docx", file)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = e.multipart(t, http.MethodPost, "/api/template", admin, fields, "p.docx", file)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp TemplateResponseDto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Procuração", resp.Title)
	assert.Equal(t, "ad judicia", resp.Description)
	assert.Equal(t, []string{"comarca", "nome"}, resp.Tags)
	assert.Equal(t, []string{"comarca"}, resp.UnknownTags)
	assert.NotContains(t, w.Body.String(), "templates_docs")

	// staff consulta, mas não baixa o original
	assert.Equal(t, http.StatusOK, e.do(http.MethodGet, "/api/template/"+resp.UUID.String(), staff).Code)
	assert.Equal(t, http.StatusForbidden, e.do(http.MethodGet, "/api/template/"+resp.UUID.String()+"/file", staff).Code)

	w = e.do(http.MethodGet, "/api/template/"+resp.UUID.String()+"/file", admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, docgen.ContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, file, w.Body.Bytes())
}

func TestCreateTemplate_Invalid(t *testing.T) {
	e := newTestEnv(t)
	admin := e.login(t, iammodel.RoleAdmin)

	w := e.multipart(t, http.MethodPost, "/api/template", admin, map[string]string{"title": "x"}, "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = e.multipart(t, http.MethodPost, "/api/template", admin, map[string]string{"title": "x"}, "x.txt", []byte("oi"))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = e.multipart(t, http.MethodPost, "/api/template", admin, map[string]string{"title": "x"}, "x.docx", []byte("oi"))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestListUpdateDeleteTemplate(t *testing.T) {
	e := newTestEnv(t)
	admin := e.login(t, iammodel.RoleAdmin)
	file := docxtest.Build(t, docxtest.Paragraph("{{nome}}"))

	var ids []string
	for _, title := range []string{"Procuração", "Contrato"} {
		w := e.multipart(t, http.MethodPost, "/api/template", admin, map[string]string{"title": title}, "a.docx", file)
		require.Equal(t, http.StatusCreated, w.Code)
		var resp TemplateResponseDto
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		ids = append(ids, resp.UUID.String())
	}

	w := e.do(http.MethodGet, "/api/template/list", admin)
	require.Equal(t, http.StatusOK, w.Code)
	var list TemplateListResponseDto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Templates, 2)
	assert.Equal(t, "Contrato", list.Templates[0].Title)
	assert.EqualValues(t, 2, list.Total)

	w = e.multipart(t, http.MethodPatch, "/api/template/"+ids[0], admin, map[string]string{"description": "nova"}, "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"description":"nova"`)
	assert.Contains(t, w.Body.String(), `"title":"Procuração"`)

	assert.Equal(t, http.StatusNoContent, e.do(http.MethodDelete, "/api/template/"+ids[0], admin).Code)
	assert.Equal(t, http.StatusNotFound, e.do(http.MethodDelete, "/api/template/"+ids[0], admin).Code)
	assert.Equal(t, http.StatusBadRequest, e.do(http.MethodDelete, "/api/template/nope", admin).Code)
}
