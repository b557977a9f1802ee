package user

import (
	"errors"
	"net/http"

	"sistema-advocacia/internal/iam/middleware"
	"sistema-advocacia/internal/pkg/log/acess_log"
	"sistema-advocacia/internal/pkg/log/auditoria_log"
	"sistema-advocacia/internal/pkg/rest_err"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller interface {
	Routes(routes gin.IRouter)
	Signup(c *gin.Context)
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
	admin := ctrl.mw.AuthorizeRole(RoleAdmin)

	userGroup := routes.Group("/user")
	{
		userGroup.POST("/signup", ctrl.Signup)
		userGroup.POST("", auth, admin, ctrl.Create)
		userGroup.GET("", auth, ctrl.Read)
		userGroup.GET("/list", auth, admin, ctrl.List)
		userGroup.PATCH("/:identifier", auth, admin, ctrl.Update)
		userGroup.DELETE("", auth, admin, ctrl.Delete)
	}
}

func (ctrl *controllerImpl) logAudit(c *gin.Context, action, function string, success bool, input, output interface{}) {
	var (
		userUUID   *uuid.UUID
		identifier string
	)
	if login, ok := middleware.GetAuthenticatedUser(c); ok {
		id := login.User.UUID
		userUUID = &id
		identifier = login.User.Email
	}

	auditoria_log.LogAsync(c.Request.Context(), auditoria_log.AuditLog{
		UserUUID:     userUUID,
		Identifier:   identifier,
		RayTraceCode: acess_log.RayTrace(c),
		Domain:       "user",
		Action:       action,
		Function:     function,
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
	case errors.Is(err, ErrEmailDuplicated):
		return rest_err.NewConflictValidationError(&rayTrace, err.Error(), rest_err.SingleCause("email", "already in use"))
	case errors.Is(err, ErrInvalidRole):
		return rest_err.NewBadRequestValidationError(&rayTrace, err.Error(), rest_err.SingleCause("role", "must be one of ADMIN, STAFF"))
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrNothingToUpdate):
		return rest_err.NewBadRequestError(&rayTrace, err.Error())
	case errors.Is(err, ErrLastAdmin):
		return rest_err.NewConflictValidationError(&rayTrace, err.Error(), nil)
	default:
		return rest_err.NewInternalServerError(&rayTrace, "internal server error", nil)
	}
}

// @Summary      Cadastro público
// @Description  Cria um usuário com perfil STAFF. Não exige autenticação.
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body SignupUserRequestDto true "Dados do usuário"
// @Success      201  {object}  UserResponseDto
// @Failure      400  {object}  rest_err.RestErr
// @Failure      409  {object}  rest_err.RestErr "Email já cadastrado"
// @Failure      500  {object}  rest_err.RestErr
// @Router       /api/user/signup [post]
func (ctrl *controllerImpl) Signup(c *gin.Context) {
	rayTrace := acess_log.RayTrace(c)

	var req SignupUserRequestDto
	if err := c.ShouldBindJSON(&req); err != nil {
		restError := rest_err.NewBadRequestError(&rayTrace, "invalid json body")
		ctrl.logAudit(c, "signup", "Signup", false, req, restError)
		c.JSON(restError.Code, restError)
		return
	}

	created, err := ctrl.Service.Signup(c.Request.Context(), User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		restError := ctrl.restError(c, err)
		ctrl.logAudit(c, "signup", "Signup", false, req, restError)
		c.JSON(restError.Code, restError)
		return
	}

	response := ToResponse(created)
	ctrl.logAudit(c, "signup", "Signup", true, req, response)
	c.JSON(http.StatusCreated, response)
}

// @Summary      Cria um usuário
// @Description  Cria um usuário com o perfil informado (ADMIN ou STAFF).
// @Tags         User
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateUserRequestDto true "Dados do usuário"
// @Success      201  {object}  UserResponseDto
// @Failure      400  {object}  rest_err.RestErr
// @Failure      403  {object}  rest_err.RestErr
// @Failure      409  {object}  rest_err.RestErr
// @Failure      500  {object}  rest_err.RestErr
// @Router       /api/user [post]
func (ctrl *controllerImpl) Create(c *gin.Context) {
	rayTrace := acess_log.RayTrace(c)

	var req CreateUserRequestDto
	if err := c.ShouldBindJSON(&req); err != nil {
		restError := rest_err.NewBadRequestError(&rayTrace, "invalid json body")
		ctrl.logAudit(c, "create", "Create", false, req, restError)
		c.JSON(restError.Code, restError)
		return
	}

	created, err := ctrl.Service.Create(c.Request.Context(), User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		restError := ctrl.restError(c, err)
		ctrl.logAudit(c, "create", "Create", false, req, restError)
		c.JSON(restError.Code, restError)
		return
	}

	response := ToResponse(created)
	ctrl.logAudit(c, "create", "Create", true, req, response)
	c.JSON(http.StatusCreated, response)
}

// @Summary      Busca um usuário
// @Description  Busca por UUID ou email. STAFF só consulta o próprio cadastro.
// @Tags         User
// @Produce      json
// @Security     BearerAuth
// @Param        uuid   query     string  false  "UUID do usuário"
// @Param        email  query     string  false  "Email do usuário"
// @Success      200  {object}  UserResponseDto
// @Failure      400  {object}  rest_err.RestErr
// @Failure      403  {object}  rest_err.RestErr
// @Failure      404  {object}  rest_err.RestErr
// @Failure      500  {object}  rest_err.RestErr
// @Router       /api/user [get]
func (ctrl *controllerImpl) Read(c *gin.Context) {
	rayTrace := acess_log.RayTrace(c)

	userToFind, restError := ctrl.bindIdentity(c)
	if restError != nil {
		c.JSON(restError.Code, restError)
		return
	}

	login, _ := middleware.GetAuthenticatedUser(c)
	if userToFind.UUID == uuid.Nil && userToFind.Email == "" {
		userToFind.UUID = login.User.UUID
	}

	userFound, err := ctrl.Service.Read(c.Request.Context(), userToFind)
	if err != nil {
		restError := ctrl.restError(c, err)
		c.JSON(restError.Code, restError)
		return
	}

	if login.User.Role != RoleAdmin && userFound.UUID != login.User.UUID {
		restError := rest_err.NewForbiddenError(&rayTrace, "Acesso negado.")
		c.JSON(restError.Code, restError)
		return
	}

	c.JSON(http.StatusOK, ToResponse(userFound))
}

// @Summary      Lista usuários
// @Description  Lista paginada, ordenada por nome.
// @Tags         User
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int     false  "Número da página (padrão 1)"
// @Param        size  query     int     false  "Tamanho da página (padrão 10)"
// @Success      200  {object}  UserListResponseDto
// @Failure      403  {object}  rest_err.RestErr
// @Failure      500  {object}  rest_err.RestErr
// @Router       /api/user/list [get]
func (ctrl *controllerImpl) List(c *gin.Context) {
	rayTrace := acess_log.RayTrace(c)

	var req ListUserRequestDto
	if err := c.ShouldBindQuery(&req); err != nil {
		restError := rest_err.NewBadRequestError(&rayTrace, "invalid query parameters")
		c.JSON(restError.Code, restError)
		return
	}
	page, size := normalizePage(req.Page, req.PageSize)

	users, err := ctrl.Service.List(c.Request.Context(), page, size)
	if err != nil {
		restError := ctrl.restError(c, err)
		c.JSON(restError.Code, restError)
		return
	}

	response := UserListResponseDto{Users: make([]UserResponseDto, 0, len(users)), Page: page, Size: size}
	for _, u := range users {
		response.Users = append(response.Users, ToResponse(u))
	}
	c.JSON(http.StatusOK, response)
}

// @Summary      Atualiza um usuário
// @Description  Atualiza os campos enviados. O usuário é identificado por UUID ou email no path.
// @Tags         User
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        identifier path      string                true  "UUID ou email do usuário"
// @Param        request    body      UpdateUserRequestDto  true  "Dados para atualização"
// @Success      200  {object}  UserResponseDto
// @Failure      400  {object}  rest_err.RestErr
// @Failure      404  {object}  rest_err.RestErr
// @Failure      409  {object}  rest_err.RestErr
// @Failure      500  {object}  rest_err.RestErr
// @Router       /api/user/{identifier} [patch]
func (ctrl *controllerImpl) Update(c *gin.Context) {
	rayTrace := acess_log.RayTrace(c)

	target := User{}
	identifier := c.Param("identifier")
	if id, err := uuid.Parse(identifier); err == nil {
		target.UUID = id
	} else {
		target.Email = identifier
	}

	found, err := ctrl.Service.Read(c.Request.Context(), target)
	if err != nil {
		restError := ctrl.restError(c, err)
		c.JSON(restError.Code, restError)
		return
	}

	var req UpdateUserRequestDto
	if err := c.ShouldBindJSON(&req); err != nil {
		restError := rest_err.NewBadRequestError(&rayTrace, "invalid json body")
		ctrl.logAudit(c, "update", "Update", false, req, restError)
		c.JSON(restError.Code, restError)
		return
	}

	updated, err := ctrl.Service.Update(c.Request.Context(), User{
		UUID:     found.UUID,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	}, req.Live)
	if err != nil {
		restError := ctrl.restError(c, err)
		ctrl.logAudit(c, "update", "Update", false, req, restError)
		c.JSON(restError.Code, restError)
		return
	}

	response := ToResponse(updated)
	ctrl.logAudit(c, "update", "Update", true, req, response)
	c.JSON(http.StatusOK, response)
}

// @Summary      Remove um usuário
// @Description  Exclui o usuário pelo UUID ou email. O último ADMIN não pode ser removido.
// @Tags         User
// @Produce      json
// @Security     BearerAuth
// @Param        uuid   query     string  false  "UUID do usuário"
// @Param        email  query     string  false  "Email do usuário"
// @Success      204
// @Failure      400  {object}  rest_err.RestErr
// @Failure      404  {object}  rest_err.RestErr
// @Failure      409  {object}  rest_err.RestErr
// @Failure      500  {object}  rest_err.RestErr
// @Router       /api/user [delete]
func (ctrl *controllerImpl) Delete(c *gin.Context) {
	rayTrace := acess_log.RayTrace(c)

	userToDelete, restError := ctrl.bindIdentity(c)
	if restError != nil {
		c.JSON(restError.Code, restError)
		return
	}
	if userToDelete.UUID == uuid.Nil && userToDelete.Email == "" {
		restError := rest_err.NewBadRequestError(&rayTrace, "uuid or email is required")
		c.JSON(restError.Code, restError)
		return
	}

	if err := ctrl.Service.Delete(c.Request.Context(), userToDelete); err != nil {
		restError := ctrl.restError(c, err)
		ctrl.logAudit(c, "delete", "Delete", false, userToDelete.Email, restError)
		c.JSON(restError.Code, restError)
		return
	}

	ctrl.logAudit(c, "delete", "Delete", true, map[string]string{"uuid": userToDelete.UUID.String(), "email": userToDelete.Email}, nil)
	c.Status(http.StatusNoContent)
}

func (ctrl *controllerImpl) bindIdentity(c *gin.Context) (User, *rest_err.RestErr) {
	rayTrace := acess_log.RayTrace(c)

	var req ReadUserRequestDto
	if err := c.ShouldBindQuery(&req); err != nil {
		return User{}, rest_err.NewBadRequestError(&rayTrace, "invalid query parameters")
	}

	u := User{Email: req.Email}
	if req.UUID != "" {
		id, err := uuid.Parse(req.UUID)
		if err != nil {
			return User{}, rest_err.NewBadRequestError(&rayTrace, "invalid uuid")
		}
		u.UUID = id
	}
	return u, nil
}
