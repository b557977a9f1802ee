package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"sistema-advocacia/cmd/bootstrap"
	"sistema-advocacia/internal/infra/database/postgres"
	"sistema-advocacia/internal/pkg/system"
)

const defaultPIDFile = "run/server.pid"

func pidFile() string {
	if path := viper.GetString("server.pid_file"); path != "" {
		return path
	}
	return defaultPIDFile
}

func startServer() error {
	app, err := bootstrap.New()
	if err != nil {
		return fmt.Errorf("não foi possível criar a aplicação: %w", err)
	}

	path := pidFile()
	if err := system.ClaimPID(path, os.Getpid()); err != nil {
		return err
	}
	defer system.RemovePID(path)
	defer postgres.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Start(ctx)
}

func stopServer() error {
	path := pidFile()
	pid, err := system.LoadPID(path)
	if err != nil {
		return err
	}
	if !system.Alive(pid) {
		system.RemovePID(path)
		log.Warn().Int("pid", pid).Msg("Processo não encontrado; arquivo PID removido.")
		return nil
	}

	if err := system.TerminateProcess(pid); err != nil {
		return err
	}

	system.RemovePID(path)
	return nil
}
