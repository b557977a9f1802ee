package client

import (
	"errors"
	"net/http"

	iammodel "sistema-advocacia/internal/iam/domain/model"
	"sistema-advocacia/internal/iam/middleware"
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
	admin := ctrl.mw.AuthorizeRole(iammodel.RoleAdmin)

	clientGroup := routes.Group("/client", auth)
	{
		clientGroup.POST("", ctrl.Create)
		clientGroup.GET("/list", ctrl.List)
		clientGroup.GET("/:uuid", ctrl.Read)
		clientGroup.PATCH("/:uuid", ctrl.Update)
		clientGroup.DELETE("/:uuid", admin, ctrl.Delete)
	}
}

func (ctrl *controllerImpl) logAudit(c *gin.Context, action, function string, resource *uuid.UUID, success bool, input, output interface{}) {
	userUUID, identifier := middleware.Identify(c)

	auditoria_log.LogAsync(c.Request.Context(), auditoria_log.AuditLog{
		UserUUID:     userUUID,
		Identifier:   identifier,
		RayTraceCode: acess_log.RayTrace(c),
		Domain:       "client",
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
	case errors.Is(err, ErrTaxIDDuplicated):
		return rest_err.NewConflictValidationError(&rayTrace, err.Error(), rest_err.SingleCause("tax_id", "already registered"))
	case errors.Is(err, ErrInvalidSex):
		return rest_err.NewBadRequestValidationError(&rayTrace, err.Error(), rest_err.SingleCause("sex", "must be one of M, F"))
	case errors.Is(err, ErrInvalidMaritalStatus):
		return rest_err.NewBadRequestValidationError(&rayTrace, err.Error(), rest_err.SingleCause("marital_status", "must be one of S, C, D, V"))
	case errors.Is(err, ErrInvalidBirthDate):
		return rest_err.NewBadRequestValidationError(&rayTrace, err.Error(), rest_err.SingleCause("birth_date", "expected YYYY-MM-DD"))
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrNothingToUpdate):
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

// @Summary      Cadastra um cliente
// @Description  CPF/CNPJ é único. Sexo padrão M e nacionalidade padrão Brasileira(o).
// @Tags         Client
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateClientRequestDto true "Dados do cliente"
// @Success      201  {object}  ClientResponseDto
// @Failure      400  {object}  rest_err.RestErr
// @Failure      401  {object}  rest_err.RestErr
// @Failure      409  {object}  rest_err.RestErr "CPF/CNPJ já cadastrado"
// @Failure      500  {object}  rest_err.RestErr
// @Router       /api/client [post]
func (ctrl *controllerImpl) Create(c *gin.Context) {
	rayTrace := acess_log.RayTrace(c)

	var req CreateClientRequestDto
	if err := c.ShouldBindJSON(&req); err != nil {
		restError := rest_err.NewBadRequestError(&rayTrace, "invalid json body")
		ctrl.logAudit(c, "create", "Create", nil, false, req, restError)
		c.JSON(restError.Code, restError)
		return
	}

	toCreate, err := req.toClient()
	if err != nil {
		restError := ctrl.restError(c, err)
		ctrl.logAudit(c, "create", "Create", nil, false, req, restError)
		c.JSON(restError.Code, restError)
		return
	}

	created, err := ctrl.Service.Create(c.Request.Context(), toCreate)
	if err != nil {
		restError := ctrl.restError(c, err)
		ctrl.logAudit(c, "create", "Create", nil, false, req, restError)
		c.JSON(restError.Code, restError)
		return
	}

	response := ToResponse(created)
	ctrl.logAudit(c, "create", "Create", &created.UUID, true, req, response)
	c.JSON(http.StatusCreated, response)
}

// @Summary      Busca um cliente
// @Tags         Client
// @Produce      json
// @Security     BearerAuth
// @Param        uuid  path      string  true  "UUID do cliente"
// @Success      200  {object}  ClientResponseDto
// @Failure      400  {object}  rest_err.RestErr
// @Failure      404  {object}  rest_err.RestErr
// @Failure      500  {object}  rest_err.RestErr
// @Router       /api/client/{uuid} [get]
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

// @Summary      Lista clientes
// @Description  Lista paginada, ordenada por nome. search filtra por nome ou CPF/CNPJ.
// @Tags         Client
// @Produce      json
// @Security     BearerAuth
// @Param        page    query     int     false  "Número da página (padrão 1)"
// @Param        size    query     int     false  "Tamanho da página (padrão 10)"
// @Param        active  query     bool    false  "Filtra por situação"
// @Param        search  query     string  false  "Trecho do nome ou CPF/CNPJ"
// @Success      200  {object}  ClientListResponseDto
// @Failure      400  {object}  rest_err.RestErr
// @Failure      500  {object}  rest_err.RestErr
// @Router       /api/client/list [get]
func (ctrl *controllerImpl) List(c *gin.Context) {
	rayTrace := acess_log.RayTrace(c)

	var req ListClientRequestDto
	if err := c.ShouldBindQuery(&req); err != nil {
		restError := rest_err.NewBadRequestError(&rayTrace, "invalid query parameters")
		c.JSON(restError.Code, restError)
		return
	}
	page, size := normalizePage(req.Page, req.Size)

	clients, total, err := ctrl.Service.List(c.Request.Context(), Filter{
		Page:   page,
		Size:   size,
		Active: req.Active,
		Search: req.Search,
	})
	if err != nil {
		restError := ctrl.restError(c, err)
		c.JSON(restError.Code, restError)
		return
	}

	response := ClientListResponseDto{Clients: make([]ClientResponseDto, 0, len(clients)), Total: total, Page: page, Size: size}
	for _, cl := range clients {
		response.Clients = append(response.Clients, ToResponse(cl))
	}
	c.JSON(http.StatusOK, response)
}

// @Summary      Atualiza um cliente
// @Description  Atualiza apenas os campos enviados. birth_date vazio remove a data.
// @Tags         Client
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        uuid     path      string                  true  "UUID do cliente"
// @Param        request  body      UpdateClientRequestDto  true  "Campos a atualizar"
// @Success      200  {object}  ClientResponseDto
// @Failure      400  {object}  rest_err.RestErr
// @Failure      404  {object}  rest_err.RestErr
// @Failure      409  {object}  rest_err.RestErr
// @Failure      500  {object}  rest_err.RestErr
// @Router       /api/client/{uuid} [patch]
func (ctrl *controllerImpl) Update(c *gin.Context) {
	rayTrace := acess_log.RayTrace(c)

	id, restError := ctrl.paramUUID(c)
	if restError != nil {
		c.JSON(restError.Code, restError)
		return
	}

	var req UpdateClientRequestDto
	if err := c.ShouldBindJSON(&req); err != nil {
		restError := rest_err.NewBadRequestError(&rayTrace, "invalid json body")
		ctrl.logAudit(c, "update", "Update", &id, false, req, restError)
		c.JSON(restError.Code, restError)
		return
	}

	updated, err := ctrl.Service.Update(c.Request.Context(), id, req.toPatch())
	if err != nil {
		restError := ctrl.restError(c, err)
		ctrl.logAudit(c, "update", "Update", &id, false, req, restError)
		c.JSON(restError.Code, restError)
		return
	}

	response := ToResponse(updated)
	ctrl.logAudit(c, "update", "Update", &id, true, req, response)
	c.JSON(http.StatusOK, response)
}

// @Summary      Remove um cliente
// @Description  Remove o cliente e o histórico de documentos gerados para ele.
// @Tags         Client
// @Produce      json
// @Security     BearerAuth
// @Param        uuid  path  string  true  "UUID do cliente"
// @Success      204
// @Failure      400  {object}  rest_err.RestErr
// @Failure      403  {object}  rest_err.RestErr
// @Failure      404  {object}  rest_err.RestErr
// @Failure      500  {object}  rest_err.RestErr
// @Router       /api/client/{uuid} [delete]
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
