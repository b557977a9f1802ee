package handler

import (
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"sistema-advocacia/internal/iam/application/auth"
	"sistema-advocacia/internal/office/domain/client"
	"sistema-advocacia/internal/office/domain/doctemplate"
	"sistema-advocacia/internal/office/domain/document"
	webMiddleware "sistema-advocacia/internal/web/middleware"
	"sistema-advocacia/internal/web/templates"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/rs/zerolog/log"
)

const (
	pageSize         = 20
	templatesPerPage = 100
	dateLayout       = "02/01/2006 15:04"
)

type WebHandler struct {
	sessionStore sessions.Store
	templates    map[string]*template.Template
	api          *APIClient
}

var pages = []string{
	"login.html",
	"dashboard.html",
	"clients.html",
	"select_template.html",
	"documents.html",
}

var partials = []string{
	"partials/clients_table.html",
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"add":      func(a, b int) int { return a + b },
		"subtract": func(a, b int) int { return a - b },
		"date": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Local().Format(dateLayout)
		},
	}
}

// NewWebHandler compila as páginas embutidas e guarda o cliente da API.
func NewWebHandler(sessionStore sessions.Store, api *APIClient) (*WebHandler, error) {
	parsed := make(map[string]*template.Template, len(pages)+len(partials))

	for _, page := range pages {
		// cada página ganha um template isolado com base.html e as parciais
		tmpl, err := template.New("").Funcs(funcMap()).ParseFS(templates.FS, "base.html", page, "partials/*.html")
		if err != nil {
			return nil, fmt.Errorf("error parsing template %s: %w", page, err)
		}
		parsed[page] = tmpl
	}

	for _, partial := range partials {
		tmpl, err := template.New("").Funcs(funcMap()).ParseFS(templates.FS, partial)
		if err != nil {
			return nil, fmt.Errorf("error parsing partial %s: %w", partial, err)
		}
		parsed[partial] = tmpl
	}

	return &WebHandler{
		sessionStore: sessionStore,
		templates:    parsed,
		api:          api,
	}, nil
}

// Routes registra as páginas HTML. As rotas privadas exigem sessão.
func (h *WebHandler) Routes(r gin.IRouter) {
	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/dashboard") })
	r.GET("/login", h.ServeLogin)
	r.POST("/login", h.HandleLogin)

	private := r.Group("", webMiddleware.RequireAuth(h.sessionStore))
	{
		private.GET("/logout", h.HandleLogout)
		private.GET("/dashboard", h.ServeDashboard)
		private.GET("/clients", h.ServeClients)
		private.GET("/clients/table", h.ServeClientsTable)
		private.GET("/clients/:uuid/generate", h.ServeSelectTemplate)
		private.GET("/clients/:uuid/generate/:template", h.DownloadDocument)
		private.GET("/documents", h.ServeDocuments)
		private.Any("/api/web/*path", h.ProxyAPI)
	}
}

func (h *WebHandler) render(c *gin.Context, status int, page string, data gin.H) {
	tmpl, ok := h.templates[page]
	if !ok {
		c.String(http.StatusInternalServerError, "Template not found: "+page)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := tmpl.ExecuteTemplate(c.Writer, "base.html", data); err != nil {
		log.Error().Err(err).Str("component", "web").Str("page", page).Msg("falha ao renderizar página")
	}
}

func (h *WebHandler) renderPartial(c *gin.Context, partial, name string, data gin.H) {
	tmpl, ok := h.templates[partial]
	if !ok {
		c.String(http.StatusInternalServerError, "Template partial not found")
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(c.Writer, name, data); err != nil {
		log.Error().Err(err).Str("component", "web").Str("partial", partial).Msg("falha ao renderizar parcial")
	}
}

func (h *WebHandler) sessionUser(c *gin.Context) gin.H {
	session, _ := h.sessionStore.Get(c.Request, webMiddleware.SessionName)
	return gin.H{
		"Name":  session.Values["user_name"],
		"Email": session.Values["user_email"],
		"Role":  session.Values["user_role"],
	}
}

func (h *WebHandler) pageData(c *gin.Context, title string) gin.H {
	return gin.H{
		"Title":      title,
		"ShowHeader": true,
		"ShowFooter": true,
		"User":       h.sessionUser(c),
	}
}

func loginData(message string) gin.H {
	return gin.H{
		"Title":      "Login",
		"Error":      message,
		"ShowHeader": false,
		"ShowFooter": false,
	}
}

func (h *WebHandler) ServeLogin(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", loginData(""))
}

// HandleLogin autentica pela API e guarda o token na sessão.
func (h *WebHandler) HandleLogin(c *gin.Context) {
	req := auth.LoginRequest{
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}

	var resp auth.LoginResponse
	if err := h.api.PostJSON(c.Request.Context(), "/auth/login", "", req, &resp); err != nil {
		h.render(c, http.StatusUnauthorized, "login.html", loginData(errorMessage(err, "Email ou senha incorretos")))
		return
	}

	session, _ := h.sessionStore.Get(c.Request, webMiddleware.SessionName)
	session.Values[webMiddleware.SessionUserKey] = resp.Token
	session.Values["user_name"] = resp.User.Name
	session.Values["user_email"] = resp.User.Email
	session.Values["user_role"] = string(resp.User.Role)
	if err := session.Save(c.Request, c.Writer); err != nil {
		log.Error().Err(err).Str("component", "web").Msg("falha ao salvar sessão")
		h.render(c, http.StatusInternalServerError, "login.html", loginData("Erro ao salvar sessão"))
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// HandleLogout revoga o token na API e limpa a sessão.
func (h *WebHandler) HandleLogout(c *gin.Context) {
	token := webMiddleware.GetToken(c)
	if token != "" {
		if err := h.api.PostJSON(c.Request.Context(), "/auth/logout/"+url.PathEscape(token), token, nil, nil); err != nil {
			log.Warn().Err(err).Str("component", "web").Msg("falha ao revogar token no logout")
		}
	}

	session, _ := h.sessionStore.Get(c.Request, webMiddleware.SessionName)
	session.Values = make(map[interface{}]interface{})
	session.Options.MaxAge = -1
	_ = session.Save(c.Request, c.Writer)

	c.Redirect(http.StatusFound, "/login")
}

func (h *WebHandler) ServeDashboard(c *gin.Context) {
	data := h.pageData(c, "Painel")

	var dash document.DashboardResponseDto
	if err := h.api.GetJSON(c.Request.Context(), "/document/dashboard", webMiddleware.GetToken(c), &dash); err != nil {
		data["Error"] = errorMessage(err, "Erro ao carregar painel")
	}
	data["Dashboard"] = dash

	h.render(c, http.StatusOK, "dashboard.html", data)
}

func (h *WebHandler) fetchClients(c *gin.Context) (gin.H, error) {
	page := queryPage(c)
	search := c.Query("search")

	q := url.Values{}
	q.Set("page", fmt.Sprint(page))
	q.Set("size", fmt.Sprint(pageSize))
	q.Set("active", "true")
	if search != "" {
		q.Set("search", search)
	}

	var list client.ClientListResponseDto
	err := h.api.GetJSON(c.Request.Context(), "/client/list?"+q.Encode(), webMiddleware.GetToken(c), &list)
	return gin.H{
		"Clients": list.Clients,
		"Page":    page,
		"Search":  search,
		"HasNext": int64(page*pageSize) < list.Total,
	}, err
}

func (h *WebHandler) ServeClients(c *gin.Context) {
	data := h.pageData(c, "Clientes")

	table, err := h.fetchClients(c)
	if err != nil {
		data["Error"] = errorMessage(err, "Erro ao carregar clientes")
	}
	for k, v := range table {
		data[k] = v
	}

	h.render(c, http.StatusOK, "clients.html", data)
}

// ServeClientsTable devolve só a tabela, usada pela busca HTMX.
func (h *WebHandler) ServeClientsTable(c *gin.Context) {
	table, err := h.fetchClients(c)
	if err != nil {
		c.String(http.StatusBadGateway, errorMessage(err, "Erro ao carregar clientes"))
		return
	}
	h.renderPartial(c, "partials/clients_table.html", "clients_table.html", table)
}

// ServeSelectTemplate lista os modelos disponíveis para gerar documento do cliente.
func (h *WebHandler) ServeSelectTemplate(c *gin.Context) {
	token := webMiddleware.GetToken(c)
	data := h.pageData(c, "Gerar documento")

	var cl client.ClientResponseDto
	err := h.api.GetJSON(c.Request.Context(), "/client/"+url.PathEscape(c.Param("uuid")), token, &cl)
	data["Client"] = cl
	if err != nil {
		data["Error"] = errorMessage(err, "Cliente não encontrado")
		h.render(c, http.StatusNotFound, "select_template.html", data)
		return
	}

	var list doctemplate.TemplateListResponseDto
	path := fmt.Sprintf("/template/list?page=1&size=%d", templatesPerPage)
	if err := h.api.GetJSON(c.Request.Context(), path, token, &list); err != nil {
		data["Error"] = errorMessage(err, "Erro ao carregar modelos")
	}
	data["Templates"] = list.Templates

	// erro vindo de um download que falhou
	if msg := c.Query("error"); msg != "" {
		data["Error"] = msg
	}

	h.render(c, http.StatusOK, "select_template.html", data)
}

func (h *WebHandler) ServeDocuments(c *gin.Context) {
	data := h.pageData(c, "Documentos")
	page := queryPage(c)

	var list document.DocumentListResponseDto
	path := fmt.Sprintf("/document/list?page=%d&size=%d", page, pageSize)
	if err := h.api.GetJSON(c.Request.Context(), path, webMiddleware.GetToken(c), &list); err != nil {
		data["Error"] = errorMessage(err, "Erro ao carregar documentos")
	}
	data["Documents"] = list.Documents
	data["Page"] = page
	data["HasNext"] = int64(page*pageSize) < list.Total

	h.render(c, http.StatusOK, "documents.html", data)
}
