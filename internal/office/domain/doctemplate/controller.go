package doctemplate

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	iammodel "sistema-advocacia/internal/iam/domain/model"
	"sistema-advocacia/internal/iam/middleware"
	"sistema-advocacia/internal/office/docgen"
	"sistema-advocacia/internal/pkg/log/acess_log"
	"sistema-advocacia/internal/pkg/log/auditoria_log"
	"sistema-advocacia/internal/pkg/rest_err"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller interface {
	Routes(routes gin.IRouter)
	Create(c *gin.Context)
	Read(c *gin.Context)
	List(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Download(c *gin.Context)
}

type controllerImpl struct {
	Service  Service
	mw       middleware.Middleware
	maxBytes int64
}

func NewController(service Service, mw middleware.Middleware, maxBytes int64) Controller {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &controllerImpl{
		Service:  service,
		mw:       mw,
		maxBytes: maxBytes,
	}
}

func (ctrl *controllerImpl) Routes(routes gin.IRouter) {
	auth := ctrl.mw.SetContextAutorization()
	admin := ctrl.mw.AuthorizeRole(iammodel.RoleAdmin)

	templateGroup := routes.Group("/template", auth)
	{
		templateGroup.POST("", admin, ctrl.Create)
		templateGroup.GET("/list", ctrl.List)
		templateGroup.GET("/:uuid", ctrl.Read)
		templateGroup.GET("/:uuid/file", admin, ctrl.Download)
		templateGroup.PATCH("/:uuid", admin, ctrl.Update)
		templateGroup.DELETE("/:uuid", admin, ctrl.Delete)
	}
}

func (ctrl *controllerImpl) logAudit(c *gin.Context, action, function string, resource *uuid.UUID, success bool, input, output interface{}) {
	userUUID, identifier := middleware.Identify(c)

	auditoria_log.LogAsync(c.Request.Context(), auditoria_log.AuditLog{
		UserUUID:     userUUID,
		Identifier:   identifier,
		RayTraceCode: acess_log.RayTrace(c),
		Domain:       "template",
		Action:       action,
		Function:     function,
		ResourceUUID: resource,
		Success:      success,
		InputData:    auditoria_log.SerializeData(input),
		OutputData:   auditoria_log.SerializeData(output),
	})
}

func (ctrl *controllerImpl) restError(c *gin.Context, err error) *rest_err.RestErr {
	rayTrace := acess_log.RayTrace(c)
	switch {
	case errors.Is(err, ErrNotFound):
		return rest_err.NewNotFoundError(&rayTrace, err.Error())
	case errors.Is(err, ErrInvalidFile):
		return rest_err.NewUnprocessableEntityError(&rayTrace, err.Error(), rest_err.SingleCause("file", err.Error()))
	case errors.Is(err, ErrFileUnavailable):
		return rest_err.NewUnprocessableEntityError(&rayTrace, err.Error(), nil)
	case errors.Is(err, ErrFileTooLarge):
		return rest_err.NewBadRequestValidationError(&rayTrace, err.Error(), rest_err.SingleCause("file", fmt.Sprintf("max %d bytes", ctrl.maxBytes)))
	case errors.Is(err, ErrInvalidInput):
		return rest_err.NewBadRequestValidationError(&rayTrace, err.Error(), rest_err.SingleCause("title", "required, up to 100 characters"))
	case errors.Is(err, ErrNothingToUpdate):
		return rest_err.NewBadRequestError(&rayTrace, err.Error())
	default:
		return rest_err.NewInternalServerError(&rayTrace, "internal server error", nil)
	}
}

func (ctrl *controllerImpl) paramUUID(c *gin.Context) (uuid.UUID, *rest_err.RestErr) {
	rayTrace := acess_log.RayTrace(c)
	id, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		return uuid.Nil, rest_err.NewBadRequestError(&rayTrace, "invalid uuid")
	}
	return id, nil
}

// readUpload lê no máximo maxBytes+1 para o service conseguir recusar arquivos grandes.
func (ctrl *controllerImpl) readUpload(fh *multipart.FileHeader) (Upload, error) {
	if fh.Size > ctrl.maxBytes {
		return Upload{}, ErrFileTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return Upload{}, fmt.Errorf("falha ao abrir upload: %w", err)
	}
	defer f.Close()

	body, err := io.ReadAll(io.LimitReader(f, ctrl.maxBytes+1))
	if err != nil {
		return Upload{}, fmt.Errorf("falha ao ler upload: %w", err)
	}
	return Upload{Filename: fh.Filename, Body: body}, nil
}

func withTags(tpl DocumentTemplate, tags []string) TemplateResponseDto {
	resp := ToResponse(tpl)
	resp.Tags = tags
	resp.UnknownTags = docgen.UnknownTags(tags)
	return resp
}

// @Summary      Cadastra um modelo de documento
// @Description  Recebe um .docx com tags {{nome}}, {{cpf_cnpj}}, etc. A resposta lista as tags encontradas e as que não serão preenchidas.
// @Tags         Template
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        title        formData  string  true   "Título"
// @Param        description  formData  string  false  "Descrição"
// @Param        file         formData  file    true   "Arquivo .docx"
// @Success      201  {object}  TemplateResponseDto
// @Failure      400  {object}  rest_err.RestErr
// @Failure      403  {object}  rest_err.RestErr
// @Failure      422  {object}  rest_err.RestErr "Arquivo não é um .docx válido"
// @Failure      500  {object}  rest_err.RestErr
// @Router       /api/template [post]
func (ctrl *controllerImpl) Create(c *gin.Context) {
	rayTrace := acess_log.RayTrace(c)

	var req CreateTemplateRequestDto
	if err := c.ShouldBind(&req); err != nil {
		restError := rest_err.NewBadRequestError(&rayTrace, "invalid form data")
		ctrl.logAudit(c, "create", "Create", nil, false, req.Title, restError)
		c.JSON(restError.Code, restError)
		return
	}

	file, err := ctrl.readUpload(req.File)
	if err != nil {
		restError := ctrl.restError(c, err)
		ctrl.logAudit(c, "create", "Create", nil, false, req.Title, restError)
		c.JSON(restError.Code, restError)
		return
	}

	created, tags, err := ctrl.Service.Create(c.Request.Context(), req.Title, req.Description, file)
	if err != nil {
		restError := ctrl.restError(c, err)
		ctrl.logAudit(c, "create", "Create", nil, false, req.Title, restError)
		c.JSON(restError.Code, restError)
		return
	}

	response := withTags(created, tags)
	ctrl.logAudit(c, "create", "Create", &created.UUID, true, req.Title, response)
	c.JSON(http.StatusCreated, response)
}

// @Summary      Busca um modelo
// @Tags         Template
// @Produce      json
// @Security     BearerAuth
// @Param        uuid  path      string  true  "UUID do modelo"
// @Success      200  {object}  TemplateResponseDto
// @Failure      400  {object}  rest_err.RestErr
// @Failure      404  {object}  rest_err.RestErr
// @Router       /api/template/{uuid} [get]
func (ctrl *controllerImpl) Read(c *gin.Context) {
	id, restError := ctrl.paramUUID(c)
	if restError != nil {
		c.JSON(restError.Code, restError)
		return
	}

	found, err := ctrl.Service.Read(c.Request.Context(), id)
	if err != nil {
		restError := ctrl.restError(c, err)
		c.JSON(restError.Code, restError)
		return
	}
	c.JSON(http.StatusOK, ToResponse(found))
}

// @Summary      Lista modelos
// @Description  Lista paginada, ordenada por título.
// @Tags         Template
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Número da página (padrão 1)"
// @Param        size  query     int  false  "Tamanho da página (padrão 10)"
// @Success      200  {object}  TemplateListResponseDto
// @Failure      400  {object}  rest_err.RestErr
// @Failure      500  {object}  rest_err.RestErr
// @Router       /api/template/list [get]
func (ctrl *controllerImpl) List(c *gin.Context) {
	rayTrace := acess_log.RayTrace(c)

	var req ListTemplateRequestDto
	if err := c.ShouldBindQuery(&req); err != nil {
		restError := rest_err.NewBadRequestError(&rayTrace, "invalid query parameters")
		c.JSON(restError.Code, restError)
		return
	}
	page, size := normalizePage(req.Page, req.Size)

	templates, total, err := ctrl.Service.List(c.Request.Context(), page, size)
	if err != nil {
		restError := ctrl.restError(c, err)
		c.JSON(restError.Code, restError)
		return
	}

	response := TemplateListResponseDto{Templates: make([]TemplateResponseDto, 0, len(templates)), Total: total, Page: page, Size: size}
	for _, t := range templates {
		response.Templates = append(response.Templates, ToResponse(t))
	}
	c.JSON(http.StatusOK, response)
}

// @Summary      Atualiza um modelo
// @Description  Campos omitidos são mantidos. Um novo arquivo substitui o anterior.
// @Tags         Template
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        uuid         path      string  true   "UUID do modelo"
// @Param        title        formData  string  false  "Título"
// @Param        description  formData  string  false  "Descrição"
// @Param        file         formData  file    false  "Novo arquivo .docx"
// @Success      200  {object}  TemplateResponseDto
// @Failure      400  {object}  rest_err.RestErr
// @Failure      404  {object}  rest_err.RestErr
// @Failure      422  {object}  rest_err.RestErr
// @Failure      500  {object}  rest_err.RestErr
// @Router       /api/template/{uuid} [patch]
func (ctrl *controllerImpl) Update(c *gin.Context) {
	rayTrace := acess_log.RayTrace(c)

	id, restError := ctrl.paramUUID(c)
	if restError != nil {
		c.JSON(restError.Code, restError)
		return
	}

	var req UpdateTemplateRequestDto
	if err := c.ShouldBind(&req); err != nil {
		restError := rest_err.NewBadRequestError(&rayTrace, "invalid form data")
		ctrl.logAudit(c, "update", "Update", &id, false, nil, restError)
		c.JSON(restError.Code, restError)
		return
	}

	patch := Patch{Title: req.Title, Description: req.Description}
	if req.File != nil {
		file, err := ctrl.readUpload(req.File)
		if err != nil {
			restError := ctrl.restError(c, err)
			ctrl.logAudit(c, "update", "Update", &id, false, req.Title, restError)
			c.JSON(restError.Code, restError)
			return
		}
		patch.File = &file
	}

	updated, tags, err := ctrl.Service.Update(c.Request.Context(), id, patch)
	if err != nil {
		restError := ctrl.restError(c, err)
		ctrl.logAudit(c, "update", "Update", &id, false, req.Title, restError)
		c.JSON(restError.Code, restError)
		return
	}

	response := withTags(updated, tags)
	ctrl.logAudit(c, "update", "Update", &id, true, req.Title, response)
	c.JSON(http.StatusOK, response)
}

// @Summary      Remove um modelo
// @Description  Remove o registro e o arquivo. Documentos gerados continuam no histórico sem referência ao modelo.
// @Tags         Template
// @Produce      json
// @Security     BearerAuth
// @Param        uuid  path  string  true  "UUID do modelo"
// @Success      204
// @Failure      400  {object}  rest_err.RestErr
// @Failure      403  {object}  rest_err.RestErr
// @Failure      404  {object}  rest_err.RestErr
// @Failure      500  {object}  rest_err.RestErr
// @Router       /api/template/{uuid} [delete]
func (ctrl *controllerImpl) Delete(c *gin.Context) {
	id, restError := ctrl.paramUUID(c)
	if restError != nil {
		c.JSON(restError.Code, restError)
		return
	}

	if err := ctrl.Service.Delete(c.Request.Context(), id); err != nil {
		restError := ctrl.restError(c, err)
		ctrl.logAudit(c, "delete", "Delete", &id, false, nil, restError)
		c.JSON(restError.Code, restError)
		return
	}

	ctrl.logAudit(c, "delete", "Delete", &id, true, nil, nil)
	c.Status(http.StatusNoContent)
}

// @Summary      Baixa o arquivo original do modelo
// @Tags         Template
// @Produce      application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Security     BearerAuth
// @Param        uuid  path  string  true  "UUID do modelo"
// @Success      200  {file}    file
// @Failure      404  {object}  rest_err.RestErr
// @Failure      422  {object}  rest_err.RestErr
// @Router       /api/template/{uuid}/file [get]
func (ctrl *controllerImpl) Download(c *gin.Context) {
	id, restError := ctrl.paramUUID(c)
	if restError != nil {
		c.JSON(restError.Code, restError)
		return
	}

	tpl, body, err := ctrl.Service.Download(c.Request.Context(), id)
	if err != nil {
		restError := ctrl.restError(c, err)
		c.JSON(restError.Code, restError)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", tpl.Title+Extension))
	c.Data(http.StatusOK, docgen.ContentType, body)
}
