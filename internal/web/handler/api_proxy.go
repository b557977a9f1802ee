package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"sistema-advocacia/internal/pkg/rest_err"
	webMiddleware "sistema-advocacia/internal/web/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const defaultAPITimeout = 30 * time.Second

// APIClient chama a API REST do próprio servidor em nome da sessão web.
type APIClient struct {
	baseURL string
	http    *http.Client
}

func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	if timeout <= 0 {
		timeout = defaultAPITimeout
	}
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// LocalAPIClient aponta para a API servida na porta local.
func LocalAPIClient(port int) *APIClient {
	return NewAPIClient(fmt.Sprintf("http://localhost:%d/api", port), defaultAPITimeout)
}

// Do executa o request cru. O chamador fecha o body.
func (a *APIClient) Do(ctx context.Context, method, path, token string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return a.http.Do(req)
}

// decodeError lê o envelope rest_err; se o body não for JSON usa o status.
func decodeError(resp *http.Response) error {
	var restErr rest_err.RestErr
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(body, &restErr); err != nil || restErr.Message == "" {
		return &rest_err.RestErr{
			Message: http.StatusText(resp.StatusCode),
			Code:    resp.StatusCode,
		}
	}
	if restErr.Code == 0 {
		restErr.Code = resp.StatusCode
	}
	return &restErr
}

func (a *APIClient) doJSON(ctx context.Context, method, path, token string, payload, dst any) error {
	var body io.Reader
	contentType := ""
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
		contentType = "application/json"
	}

	resp, err := a.Do(ctx, method, path, token, body, contentType)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}
	if dst == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

func (a *APIClient) GetJSON(ctx context.Context, path, token string, dst any) error {
	return a.doJSON(ctx, http.MethodGet, path, token, nil, dst)
}

func (a *APIClient) PostJSON(ctx context.Context, path, token string, payload, dst any) error {
	return a.doJSON(ctx, http.MethodPost, path, token, payload, dst)
}

// errorMessage extrai a mensagem amigável do erro da API.
func errorMessage(err error, fallback string) string {
	var restErr *rest_err.RestErr
	if errors.As(err, &restErr) && restErr.Message != "" {
		return restErr.Message
	}
	return fallback
}

// ProxyAPI repassa requisições HTMX de /api/web/* para a API REST com o token da sessão.
func (h *WebHandler) ProxyAPI(c *gin.Context) {
	token := webMiddleware.GetToken(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	path := strings.TrimPrefix(c.Request.URL.Path, "/api/web")
	if c.Request.URL.RawQuery != "" {
		path += "?" + c.Request.URL.RawQuery
	}

	resp, err := h.api.Do(c.Request.Context(), c.Request.Method, path, token, c.Request.Body, c.GetHeader("Content-Type"))
	if err != nil {
		log.Error().Err(err).Str("component", "web").Str("path", path).Msg("falha no proxy da API")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to execute request"})
		return
	}
	defer resp.Body.Close()

	c.DataFromReader(resp.StatusCode, resp.ContentLength, resp.Header.Get("Content-Type"), resp.Body, map[string]string{})
}

// DownloadDocument gera o documento pela API e repassa o arquivo ao navegador.
func (h *WebHandler) DownloadDocument(c *gin.Context) {
	token := webMiddleware.GetToken(c)
	clientID := c.Param("uuid")
	templateID := c.Param("template")

	path := fmt.Sprintf("/document/generate/%s/%s", url.PathEscape(clientID), url.PathEscape(templateID))
	resp, err := h.api.Do(c.Request.Context(), http.MethodGet, path, token, nil, "")
	if err != nil {
		h.redirectGenerateError(c, clientID, "Erro ao conectar com o servidor")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		h.redirectGenerateError(c, clientID, errorMessage(decodeError(resp), "Erro ao gerar documento"))
		return
	}

	headers := map[string]string{}
	if disposition := resp.Header.Get("Content-Disposition"); disposition != "" {
		headers["Content-Disposition"] = disposition
	}
	c.DataFromReader(http.StatusOK, resp.ContentLength, resp.Header.Get("Content-Type"), resp.Body, headers)
}

func (h *WebHandler) redirectGenerateError(c *gin.Context, clientID, message string) {
	target := fmt.Sprintf("/clients/%s/generate?error=%s", url.PathEscape(clientID), url.QueryEscape(message))
	c.Redirect(http.StatusFound, target)
}

func queryPage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
