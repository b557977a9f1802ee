package document

import (
	"context"
	"encoding/json"
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
	"sistema-advocacia/internal/office/domain/client"
	"sistema-advocacia/internal/office/domain/doctemplate"
	"sistema-advocacia/internal/office/domain/model"

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
	store  *storage.LocalStore
	router *gin.Engine
	actor  iammodel.User
	token  string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := dbtest.Open(t, &iammodel.User{}, &middleware.AcessToken{}, &model.Client{}, &model.DocumentTemplate{}, &model.GeneratedDocument{})
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	clients := client.NewRepository(db)
	repo := NewRepository(db)
	generator := docgen.NewGenerator(clients, doctemplate.NewRepository(db), repo, store, "pt-BR")
	ctrl := NewController(NewService(repo, generator, clients), middleware.NewMiddleware(middleware.NewRepository(db)))

	r := gin.New()
	ctrl.Routes(r.Group("/api"))

	actor := iammodel.User{Name: "Dra. Ana", Email: "ana@example.com", Password: "x", Role: iammodel.RoleStaff, Live: true}
	require.NoError(t, db.Create(&actor).Error)
	token := uuid.NewString()
	require.NoError(t, db.Create(&middleware.AcessToken{UserUUID: &actor.UUID, Token: token, Expiry: time.Now().UTC().Add(time.Hour)}).Error)

	return &testEnv{db: db, store: store, router: r, actor: actor, token: token}
}

func (e *testEnv) client(t *testing.T, name, taxID string, sex model.Sex) model.Client {
	t.Helper()
	c := model.Client{
		FullName:      name,
		Sex:           sex,
		Nationality:   model.DefaultNationality,
		MaritalStatus: model.MaritalSingle,
		TaxID:         taxID,
		Profession:    "professora",
		Street:        "Rua A",
		Number:        "1",
		PostalCode:    "00000-000",
		Contact:       "x",
		Active:        true,
	}
	require.NoError(t, e.db.Create(&c).Error)
	return c
}

func (e *testEnv) template(t *testing.T, title, body string) model.DocumentTemplate {
	t.Helper()
	key := doctemplate.KeyPrefix + uuid.NewString() + doctemplate.Extension
	_, err := e.store.Upload(context.Background(), storage.UploadInput{Key: key, Body: docxtest.Build(t, body)})
	require.NoError(t, err)

	tpl := model.DocumentTemplate{Title: title, FilePath: key}
	require.NoError(t, e.db.Create(&tpl).Error)
	return tpl
}

func (e *testEnv) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", "Bearer "+e.token)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) historyCount(t *testing.T) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(&model.GeneratedDocument{}).Count(&n).Error)
	return n
}

func TestGenerate(t *testing.T) {
	e := newTestEnv(t)
	maria := e.client(t, "Maria Silva", "111", model.SexFemale)
	tpl := e.template(t, "Contrato", docxtest.Paragraph("{{nome_completo}}, {{nacionalidade}}, {{nascido}} em {{data_nascimento}}"))

	w := e.get("/api/document/generate/" + maria.UUID.String() + "/" + tpl.UUID.String())
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, docgen.ContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Maria Silva_Contrato.docx"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, docxtest.DocumentXML(t, w.Body.Bytes()), "Maria Silva, brasileira, nascida em XX/XX/XXXX")

	var docs []model.GeneratedDocument
	require.NoError(t, e.db.Find(&docs).Error)
	require.Len(t, docs, 1)
	assert.Equal(t, maria.UUID, docs[0].ClientUUID)
	require.NotNil(t, docs[0].TemplateUUID)
	assert.Equal(t, tpl.UUID, *docs[0].TemplateUUID)
	assert.Equal(t, "Contrato", docs[0].Kind)
	assert.Equal(t, e.actor.UUID, docs[0].CreatedBy)
	assert.Equal(t, "Maria Silva_Contrato.docx", docs[0].OutputFile)
}

func TestGenerate_Failures(t *testing.T) {
	e := newTestEnv(t)
	maria := e.client(t, "Maria Silva", "111", model.SexFemale)
	tpl := e.template(t, "Contrato", docxtest.Paragraph("{{nome}}"))
	broken := e.template(t, "Quebrado", docxtest.Paragraph("{{ nome | upper }}"))
	missing := model.DocumentTemplate{Title: "Sem arquivo", FilePath: doctemplate.KeyPrefix + "nao-existe.docx"}
	require.NoError(t, e.db.Create(&missing).Error)

	tests := []struct {
		name string
		path string
		code int
	}{
		{"cliente inexistente", "/api/document/generate/" + uuid.NewString() + "/" + tpl.UUID.String(), http.StatusNotFound},
		{"modelo inexistente", "/api/document/generate/" + maria.UUID.String() + "/" + uuid.NewString(), http.StatusNotFound},
		{"uuid inválido", "/api/document/generate/1/2", http.StatusBadRequest},
		{"arquivo ausente", "/api/document/generate/" + maria.UUID.String() + "/" + missing.UUID.String(), http.StatusUnprocessableEntity},
		{"modelo malformado", "/api/document/generate/" + maria.UUID.String() + "/" + broken.UUID.String(), http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, e.get(tt.path).Code)
		})
	}
	assert.Zero(t, e.historyCount(t))
}

func TestGenerate_RequiresAuth(t *testing.T) {
	e := newTestEnv(t)
	req := httptest.NewRequest(http.MethodGet, "/api/document/dashboard", nil)
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListAndDashboard(t *testing.T) {
	e := newTestEnv(t)
	maria := e.client(t, "Maria Silva", "111", model.SexFemale)
	joao := e.client(t, "João Souza", "222", model.SexMale)
	tpl := e.template(t, "Procuração", docxtest.Paragraph("{{nome}}"))

	for i, c := range []model.Client{maria, joao, maria, maria, joao, maria} {
		w := e.get("/api/document/generate/" + c.UUID.String() + "/" + tpl.UUID.String())
		require.Equal(t, http.StatusOK, w.Code, "geração %d", i)
	}

	var list DocumentListResponseDto
	w := e.get("/api/document/list?client=" + joao.UUID.String())
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.EqualValues(t, 2, list.Total)
	for _, d := range list.Documents {
		assert.Equal(t, "João Souza", d.ClientName)
		assert.Equal(t, "Procuração", d.Kind)
	}

	w = e.get("/api/document/list?size=3")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.EqualValues(t, 6, list.Total)
	require.Len(t, list.Documents, 3)
	assert.False(t, list.Documents[0].CreateAt.Before(list.Documents[1].CreateAt))

	assert.Equal(t, http.StatusBadRequest, e.get("/api/document/list?client=x").Code)

	var dash DashboardResponseDto
	w = e.get("/api/document/dashboard")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dash))
	assert.EqualValues(t, 2, dash.TotalClients)
	assert.EqualValues(t, 6, dash.TotalDocuments)
	assert.Len(t, dash.Recent, RecentLimit)
}

func TestTemplateDeleteKeepsHistory(t *testing.T) {
	e := newTestEnv(t)
	maria := e.client(t, "Maria Silva", "111", model.SexFemale)
	tpl := e.template(t, "Contrato", docxtest.Paragraph("{{nome}}"))
	require.Equal(t, http.StatusOK, e.get("/api/document/generate/"+maria.UUID.String()+"/"+tpl.UUID.String()).Code)

	require.NoError(t, e.db.Delete(&model.DocumentTemplate{}, "uuid = ?", tpl.UUID).Error)

	var doc model.GeneratedDocument
	require.NoError(t, e.db.First(&doc).Error)
	assert.Nil(t, doc.TemplateUUID)
	assert.Equal(t, "Contrato", doc.Kind)

	require.NoError(t, e.db.Delete(&model.Client{}, "uuid = ?", maria.UUID).Error)
	assert.Zero(t, e.historyCount(t))
}
