package routes

import (
	"fmt"

	"sistema-advocacia/internal/iam/application/auth"
	"sistema-advocacia/internal/iam/domain/user"
	"sistema-advocacia/internal/iam/middleware"
	"sistema-advocacia/internal/office/domain/client"
	"sistema-advocacia/internal/office/domain/doctemplate"
	"sistema-advocacia/internal/office/domain/document"
	"sistema-advocacia/internal/pkg/log/acess_log"
	"sistema-advocacia/internal/web/handler"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "sistema-advocacia/docs"
)

// ginMode traduz app.env para o modo do gin.
func ginMode(env string) (string, error) {
	switch env {
	case "dev":
		return gin.DebugMode, nil
	case "prod":
		return gin.ReleaseMode, nil
	case "":
		log.Warn().Str("component", "router").Msg("'app.env' não definido, usando modo dev")
		return gin.DebugMode, nil
	default:
		return "", fmt.Errorf("valor inválido para app.env '%s': use 'dev' ou 'prod'", env)
	}
}

func SetupRouter(web *handler.WebHandler) (*gin.Engine, error) {
	mode, err := ginMode(viper.GetString("app.env"))
	if err != nil {
		return nil, err
	}
	gin.SetMode(mode)

	r := gin.New()
	r.Use(gin.Recovery(), acess_log.Middleware(middleware.Identify))

	// Acessível em /doc/index.html
	r.GET("/doc/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := SetupApiRoutes(r); err != nil {
		return nil, err
	}
	if web != nil {
		web.Routes(r)
	}
	return r, nil
}

type routable interface {
	Routes(routes gin.IRouter)
}

func SetupApiRoutes(r *gin.Engine) error {
	route := r.Group("/api")

	controllers := []func() (routable, error){
		func() (routable, error) { return user.Use() },
		func() (routable, error) { return auth.Use() },
		func() (routable, error) { return client.Use() },
		func() (routable, error) { return doctemplate.Use() },
		func() (routable, error) { return document.Use() },
	}
	for _, use := range controllers {
		ctrl, err := use()
		if err != nil {
			return err
		}
		ctrl.Routes(route)
	}
	return nil
}
