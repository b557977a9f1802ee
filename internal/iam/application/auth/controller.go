package auth

import (
	"errors"
	"net/http"
	"time"

	"sistema-advocacia/internal/iam/domain/user"
	"sistema-advocacia/internal/iam/middleware"
	"sistema-advocacia/internal/pkg/log/acess_log"
	"sistema-advocacia/internal/pkg/log/auditoria_log"
	"sistema-advocacia/internal/pkg/mailer"
	"sistema-advocacia/internal/pkg/rest_err"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller interface {
	Routes(routes gin.IRouter)
	Healthcheck(c *gin.Context)
	Login(c *gin.Context)
	Logout(c *gin.Context)
	CreateOTP(c *gin.Context)
	ResetPassword(c *gin.Context)
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
	authGroup := routes.Group("/auth")
	{
		authGroup.POST("/login", ctrl.Login)
		authGroup.POST("/logout/:token", ctrl.Logout)
		authGroup.POST("/otp", ctrl.CreateOTP)
		authGroup.POST("/password/reset", ctrl.ResetPassword)
		authGroup.GET("/healthcheck", ctrl.mw.SetContextAutorization(), ctrl.Healthcheck)
	}
}

func logAuth(c *gin.Context, userUUID *uuid.UUID, identifier, action, function string, success bool, input, output interface{}) {
	auditoria_log.LogAsync(c.Request.Context(), auditoria_log.AuditLog{
		UserUUID:     userUUID,
		Identifier:   identifier,
		RayTraceCode: acess_log.RayTrace(c),
		Domain:       "auth",
		Action:       action,
		Function:     function,
		Success:      success,
		InputData:    auditoria_log.SerializeData(input),
		OutputData:   auditoria_log.SerializeData(output),
	})
}

// @Summary Efetua o login do usuário
// @Description Recebe email e senha, autentica o usuário e retorna o token de acesso.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credenciais do Usuário (Email e Senha)"
// @Success 200 {object} LoginResponse "Login bem-sucedido"
// @Failure 400 {object} rest_err.RestErr "Requisição inválida (JSON mal formatado)"
// @Failure 401 {object} rest_err.RestErr "Credenciais inválidas"
// @Failure 403 {object} rest_err.RestErr "Usuário desativado"
// @Failure 409 {object} rest_err.RestErr "Token duplicado ou conflito"
// @Failure 500 {object} rest_err.RestErr "Erro interno do servidor"
// @Router /api/auth/login [post]
func (ctrl *controllerImpl) Login(c *gin.Context) {
	rayTrace := acess_log.RayTrace(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		restErr := rest_err.NewBadRequestError(&rayTrace, "invalid json body")
		logAuth(c, nil, req.Email, "login", "Login", false, req, restErr)
		c.JSON(restErr.Code, restErr)
		return
	}

	uLogin, err := ctrl.Service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var restErr *rest_err.RestErr
		switch {
		case errors.Is(err, ErrPwdWrong):
			restErr = rest_err.NewUnauthorizedError(&rayTrace, err.Error())
		case errors.Is(err, ErrUserDisabled):
			restErr = rest_err.NewForbiddenError(&rayTrace, err.Error())
		case errors.Is(err, ErrTokenDuplicated):
			restErr = rest_err.NewConflictValidationError(&rayTrace, err.Error(), nil)
		default:
			restErr = rest_err.NewInternalServerError(&rayTrace, "internal server error", nil)
		}

		logAuth(c, nil, req.Email, "login", "Login", false, req, restErr)
		c.JSON(restErr.Code, restErr)
		return
	}

	response := LoginResponse{
		User:   user.ToResponse(uLogin.User),
		Token:  uLogin.AcessToken.Token,
		Expire: uLogin.AcessToken.Expiry,
	}

	logAuth(c, &uLogin.User.UUID, uLogin.User.Email, "login", "Login", true, req, response)
	c.JSON(http.StatusOK, response)
}

// @Summary Revoga o token de acesso
// @Description Invalida o token de acesso informado.
// @Tags Auth
// @Produce json
// @Param token path string true "Token de acesso a ser revogado"
// @Success 202 "Token revogado com sucesso"
// @Failure 404 {object} rest_err.RestErr "Token não encontrado"
// @Failure 500 {object} rest_err.RestErr "Erro interno do servidor"
// @Router /api/auth/logout/{token} [post]
func (ctrl *controllerImpl) Logout(c *gin.Context) {
	rayTrace := acess_log.RayTrace(c)

	if err := ctrl.Service.RevokeAcessToken(c.Request.Context(), c.Param("token")); err != nil {
		var restErr *rest_err.RestErr
		if errors.Is(err, ErrTokenNotFound) {
			restErr = rest_err.NewNotFoundError(&rayTrace, err.Error())
		} else {
			restErr = rest_err.NewInternalServerError(&rayTrace, "internal server error", nil)
		}
		logAuth(c, nil, "", "logout", "Logout", false, nil, restErr)
		c.JSON(restErr.Code, restErr)
		return
	}

	logAuth(c, nil, "", "logout", "Logout", true, nil, nil)
	c.Status(http.StatusAccepted)
}

// @Summary Solicita um código OTP
// @Description Gera um OTP vinculado ao e-mail e envia por e-mail.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body OTPRequest true "Email para envio do OTP"
// @Success 202 "OTP enviado com sucesso"
// @Failure 400 {object} rest_err.RestErr "JSON inválido"
// @Failure 404 {object} rest_err.RestErr "Email não cadastrado"
// @Failure 409 {object} rest_err.RestErr "OTP já existente"
// @Failure 500 {object} rest_err.RestErr "Erro interno"
// @Router /api/auth/otp [post]
func (ctrl *controllerImpl) CreateOTP(c *gin.Context) {
	rayTrace := acess_log.RayTrace(c)

	var req OTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		restErr := rest_err.NewBadRequestError(&rayTrace, "invalid json body")
		c.JSON(restErr.Code, restErr)
		return
	}

	if err := ctrl.Service.CreateOTPCode(c.Request.Context(), req.Email); err != nil {
		var restErr *rest_err.RestErr
		switch {
		case errors.Is(err, ErrOTPCodeExist):
			restErr = rest_err.NewConflictValidationError(&rayTrace, err.Error(), nil)
		case errors.Is(err, user.ErrNotFound):
			restErr = rest_err.NewNotFoundError(&rayTrace, err.Error())
		case errors.Is(err, mailer.ErrMailerNotInitialized):
			causes := rest_err.SingleCause("mailer", "mailer not initialized")
			restErr = rest_err.NewInternalServerError(&rayTrace, "internal server error", causes)
		default:
			restErr = rest_err.NewInternalServerError(&rayTrace, "internal server error", nil)
		}

		logAuth(c, nil, req.Email, "otp", "CreateOTP", false, req, restErr)
		c.JSON(restErr.Code, restErr)
		return
	}

	logAuth(c, nil, req.Email, "otp", "CreateOTP", true, req, nil)
	c.Status(http.StatusAccepted)
}

// @Summary Troca a senha usando OTP
// @Description Valida o OTP e troca a senha do usuário. Sessões abertas são encerradas.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body OTPResetPasswordRequest true "Email, OTP e nova senha"
// @Success 200 "Senha alterada com sucesso"
// @Failure 400 {object} rest_err.RestErr "JSON inválido"
// @Failure 403 {object} rest_err.RestErr "OTP inválido"
// @Failure 500 {object} rest_err.RestErr "Erro interno"
// @Router /api/auth/password/reset [post]
func (ctrl *controllerImpl) ResetPassword(c *gin.Context) {
	rayTrace := acess_log.RayTrace(c)

	var req OTPResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		restErr := rest_err.NewBadRequestError(&rayTrace, "invalid json body")
		c.JSON(restErr.Code, restErr)
		return
	}

	ok, err := ctrl.Service.ChangeUserPwd(c.Request.Context(), req.OTPCode, req.Email, req.Password)
	if err != nil || !ok {
		var restErr *rest_err.RestErr
		switch {
		case errors.Is(err, ErrOTPCodeWrong):
			restErr = rest_err.NewForbiddenError(&rayTrace, err.Error())
		default:
			restErr = rest_err.NewInternalServerError(&rayTrace, "could not change password", nil)
		}

		logAuth(c, nil, req.Email, "password_reset", "ResetPassword", false, req, restErr)
		c.JSON(restErr.Code, restErr)
		return
	}

	logAuth(c, nil, req.Email, "password_reset", "ResetPassword", true, req, nil)
	c.Status(http.StatusOK)
}

// @Summary Verifica o status do login
// @Description Retorna os dados do usuário logado se o token for válido.
// @Tags Auth
// @Produce json
// @Security     BearerAuth
// @Success 200 {object} LoginResponse "Dados do usuário logado"
// @Failure 401 {object} rest_err.RestErr "Não autorizado"
// @Router /api/auth/healthcheck [get]
func (ctrl *controllerImpl) Healthcheck(c *gin.Context) {
	rayTrace := acess_log.RayTrace(c)

	lUser, ok := middleware.GetAuthenticatedUser(c)
	if !ok {
		restErr := rest_err.NewUnauthorizedError(&rayTrace, "user not authorized")
		c.JSON(restErr.Code, restErr)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		User:          user.ToResponse(lUser.User),
		Token:         lUser.AcessToken.Token,
		SystemTimeUTC: time.Now().UTC(),
		Expire:        lUser.AcessToken.Expiry,
	})
}
