// @title           Sistema Advocacia API
// @version         1.0
// @description     Gestão de clientes e geração de documentos do escritório.
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"github.com/rs/zerolog/log"

	"sistema-advocacia/cmd/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal().Err(err).Msg("falha na execução")
	}
}
