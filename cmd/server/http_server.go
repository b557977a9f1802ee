package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"sistema-advocacia/cmd/server/routes"
	"sistema-advocacia/internal/web/handler"
)

type HTTPServer struct {
	server *http.Server
}

func NewHTTPServer(web *handler.WebHandler) (*HTTPServer, error) {
	router, err := routes.SetupRouter(web)
	if err != nil {
		return nil, err
	}
	port := fmt.Sprintf(":%d", viper.GetInt("server.http.port"))

	return &HTTPServer{server: &http.Server{
		Addr:              port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}}, nil
}

func (s *HTTPServer) Start() error {
	log.Info().Str("component", "server").Str("addr", s.server.Addr).Msg("iniciando servidor")
	if err := s.server.ListenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info().Str("component", "server").Msg("servidor finalizado")
			return nil
		}
		return err
	}
	return nil
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	log.Info().Str("component", "server").Msg("encerrando servidor")
	return s.server.Shutdown(ctx)
}
