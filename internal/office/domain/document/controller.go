package document

import (
	"errors"
	"net/http"

	"sistema-advocacia/internal/iam/middleware"
	"sistema-advocacia/internal/office/docgen"
	"sistema-advocacia/internal/office/domain/model"
	"sistema-advocacia/internal/pkg/log/acess_log"
	"sistema-advocacia/internal/pkg/log/auditoria_log"
	"sistema-advocacia/internal/pkg/rest_err"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller interface {
	Routes(routes gin.IRouter)
	Generate(c *gin.Context)
	List(c *gin.Context)
	Dashboard(c *gin.Context)
}

type controllerImpl struct {
	Service Service
	mw      middleware.Middleware
}

func NewController(service Service, mw middleware.Middleware) Controller {
	return &controllerImpl{
		Service: service,
		mw:      mw,
	}
}

func (ctrl *controllerImpl) Routes(routes gin.IRouter) {
	auth := ctrl.mw.SetContextAutorization()

	documentGroup := routes.Group("/document", auth)
	{
		documentGroup.GET("/generate/:client/:template", ctrl.Generate)
		documentGroup.GET("/list", ctrl.List)
		documentGroup.GET("/dashboard", ctrl.Dashboard)
	}
}

func (ctrl *controllerImpl) logAudit(c *gin.Context, action, function string, resource *uuid.UUID, success bool, input, output interface{}) {
	userUUID, identifier := middleware.Identify(c)

	auditoria_log.LogAsync(c.Request.Context(), auditoria_log.AuditLog{
		UserUUID:     userUUID,
		Identifier:   identifier,
		RayTraceCode: acess_log.RayTrace(c),
		Domain:       "document",
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
	case errors.Is(err, model.ErrNotFound):
		return rest_err.NewNotFoundError(&rayTrace, err.Error())
	case errors.Is(err, docgen.ErrTemplateUnavailable), errors.Is(err, docgen.ErrRenderFailure):
		return rest_err.NewUnprocessableEntityError(&rayTrace, err.Error(), nil)
	default:
		return rest_err.NewInternalServerError(&rayTrace, "internal server error", nil)
	}
}

// @Summary      Gera um documento
// @Description  Preenche o modelo com os dados do cliente, registra no histórico e devolve o .docx.
// @Tags         Document
// @Produce      application/vnd.openxmlformats-officedocument.wordprocessingml.document
// @Security     BearerAuth
// @Param        client    path  string  true  "UUID do cliente"
// @Param        template  path  string  true  "UUID do modelo"
// @Success      200  {file}    file
// @Failure      400  {object}  rest_err.RestErr
// @Failure      404  {object}  rest_err.RestErr "Cliente ou modelo inexistente"
// @Failure      422  {object}  rest_err.RestErr "Arquivo do modelo indisponível ou inválido"
// @Failure      500  {object}  rest_err.RestErr
// @Router       /api/document/generate/{client}/{template} [get]
func (ctrl *controllerImpl) Generate(c *gin.Context) {
	rayTrace := acess_log.RayTrace(c)

	clientID, errClient := uuid.Parse(c.Param("client"))
	templateID, errTemplate := uuid.Parse(c.Param("template"))
	input := map[string]string{"client": c.Param("client"), "template": c.Param("template")}
	if errClient != nil || errTemplate != nil {
		restError := rest_err.NewBadRequestError(&rayTrace, "invalid uuid")
		ctrl.logAudit(c, "generate", "Generate", nil, false, input, restError)
		c.JSON(restError.Code, restError)
		return
	}

	filename, buf, err := ctrl.Service.Generate(c.Request.Context(), clientID, templateID, middleware.ActorUUID(c))
	if err != nil {
		restError := ctrl.restError(c, err)
		ctrl.logAudit(c, "generate", "Generate", &clientID, false, input, restError)
		c.JSON(restError.Code, restError)
		return
	}

	ctrl.logAudit(c, "generate", "Generate", &clientID, true, input, filename)
	c.Header("Content-Disposition", ContentDisposition(filename))
	c.Data(http.StatusOK, docgen.ContentType, buf.Bytes())
}

// @Summary      Histórico de documentos
// @Description  Documentos gerados, do mais recente para o mais antigo.
// @Tags         Document
// @Produce      json
// @Security     BearerAuth
// @Param        page    query     int     false  "Número da página (padrão 1)"
// @Param        size    query     int     false  "Tamanho da página (padrão 10)"
// @Param        client  query     string  false  "UUID do cliente"
// @Success      200  {object}  DocumentListResponseDto
// @Failure      400  {object}  rest_err.RestErr
// @Failure      500  {object}  rest_err.RestErr
// @Router       /api/document/list [get]
func (ctrl *controllerImpl) List(c *gin.Context) {
	rayTrace := acess_log.RayTrace(c)

	var req ListDocumentRequestDto
	if err := c.ShouldBindQuery(&req); err != nil {
		restError := rest_err.NewBadRequestError(&rayTrace, "invalid query parameters")
		c.JSON(restError.Code, restError)
		return
	}
	page, size := normalizePage(req.Page, req.Size)

	filter := Filter{Page: page, Size: size}
	if req.Client != "" {
		id, err := uuid.Parse(req.Client)
		if err != nil {
			restError := rest_err.NewBadRequestError(&rayTrace, "invalid client uuid")
			c.JSON(restError.Code, restError)
			return
		}
		filter.ClientUUID = &id
	}

	docs, total, err := ctrl.Service.List(c.Request.Context(), filter)
	if err != nil {
		restError := ctrl.restError(c, err)
		c.JSON(restError.Code, restError)
		return
	}

	c.JSON(http.StatusOK, DocumentListResponseDto{
		Documents: toResponses(docs),
		Total:     total,
		Page:      page,
		Size:      size,
	})
}

// @Summary      Painel
// @Description  Total de clientes, total de documentos e os últimos documentos gerados.
// @Tags         Document
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  DashboardResponseDto
// @Failure      500  {object}  rest_err.RestErr
// @Router       /api/document/dashboard [get]
func (ctrl *controllerImpl) Dashboard(c *gin.Context) {
	dashboard, err := ctrl.Service.Dashboard(c.Request.Context())
	if err != nil {
		restError := ctrl.restError(c, err)
		c.JSON(restError.Code, restError)
		return
	}

	c.JSON(http.StatusOK, DashboardResponseDto{
		TotalClients:   dashboard.TotalClients,
		TotalDocuments: dashboard.TotalDocuments,
		Recent:         toResponses(dashboard.Recent),
	})
}
