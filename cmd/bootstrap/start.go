package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"sistema-advocacia/cmd/server"
	"sistema-advocacia/internal/iam/application/auth"
	"sistema-advocacia/internal/iam/domain/user"
	"sistema-advocacia/internal/iam/middleware"
	"sistema-advocacia/internal/infra/database/postgres"
	"sistema-advocacia/internal/infra/jwt"
	"sistema-advocacia/internal/infra/storage"
	"sistema-advocacia/internal/office/domain/client"
	"sistema-advocacia/internal/office/domain/doctemplate"
	"sistema-advocacia/internal/office/domain/document"
	"sistema-advocacia/internal/pkg/locale"
	"sistema-advocacia/internal/pkg/log/acess_log"
	"sistema-advocacia/internal/pkg/log/auditoria_log"
	"sistema-advocacia/internal/pkg/logger"
	"sistema-advocacia/internal/pkg/mailer"
	"sistema-advocacia/internal/web/handler"
	webMiddleware "sistema-advocacia/internal/web/middleware"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"golang.ngrok.com/ngrok/v2"
	"gorm.io/gorm"
)

// Application armazena as dependências centrais da aplicação.
type Application struct {
	server *server.HTTPServer
}

func setDefaults() {
	viper.SetDefault("app.name", "sistema-advocacia")
	viper.SetDefault("app.env", "dev")
	viper.SetDefault("app.locale", locale.Default)
	viper.SetDefault("server.http.port", 8080)
	viper.SetDefault("security.jwt_access_expiry_min", 480)
	viper.SetDefault("web.session_max_age", 8*60*60)
	viper.SetDefault("storage.files_dir", "files")
	viper.SetDefault("storage.max_upload_mb", 10)
	viper.SetDefault("log.level", "info")
}

// Environment carrega o .env (opcional) e o configs.json. Variáveis de ambiente
// sobrescrevem chaves do arquivo: databases.postgres.pwd vira DATABASES_POSTGRES_PWD.
func Environment() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("erro ao ler .env: %w", err)
	}

	setDefaults()
	viper.SetConfigName("configs")
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/") // Para ambientes de produção
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("erro no arquivo de configuração: %w", err)
		}
	}

	logger.Setup(logger.Config{
		Env:   viper.GetString("app.env"),
		Level: viper.GetString("log.level"),
	})
	return nil
}

// Storage abre o diretório de arquivos configurado.
func Storage() (*storage.LocalStore, error) {
	return storage.NewLocalStore(viper.GetString("storage.files_dir"))
}

func maxUploadBytes() int64 {
	return viper.GetInt64("storage.max_upload_mb") << 20
}

// InitUsers sobe só o necessário para administrar usuários pela CLI.
func InitUsers(db *gorm.DB) (user.Service, error) {
	mw, err := middleware.New(db)
	if err != nil {
		return nil, err
	}
	if _, err := user.New(db, mw); err != nil {
		return nil, err
	}
	return user.MustUse().Service, nil
}

// InitTemplates sobe o domínio de modelos para a importação via CLI.
func InitTemplates(db *gorm.DB, store storage.Store) (doctemplate.Service, error) {
	mw, err := middleware.New(db)
	if err != nil {
		return nil, err
	}
	if _, err := doctemplate.New(db, mw, store, doctemplate.Config{MaxUploadBytes: maxUploadBytes()}); err != nil {
		return nil, err
	}
	return doctemplate.MustUse().Service, nil
}

func initIamDomain(db *gorm.DB, mail mailer.Service) (middleware.Middleware, error) {
	mw, err := middleware.New(db)
	if err != nil {
		return nil, err
	}
	if _, err := user.New(db, mw); err != nil {
		return nil, err
	}
	if _, err := auth.New(db, user.MustUse().Service, jwt.Use(), mail, mw); err != nil {
		return nil, err
	}
	return mw, nil
}

func initOfficeDomain(db *gorm.DB, mw middleware.Middleware, store storage.Store) error {
	if _, err := client.New(db, mw); err != nil {
		return err
	}
	if _, err := doctemplate.New(db, mw, store, doctemplate.Config{MaxUploadBytes: maxUploadBytes()}); err != nil {
		return err
	}
	lang := locale.Normalize(viper.GetString("app.locale"))
	if _, err := document.New(db, mw, store, lang); err != nil {
		return err
	}
	return nil
}

func initLogs(db *gorm.DB) {
	enabled := viper.GetBool("log.enabled")
	if _, err := auditoria_log.New(db, auditoria_log.Config{LogEnabled: enabled, Enabled: viper.GetBool("log.audit")}); err != nil {
		log.Warn().Err(err).Str("component", "bootstrap").Msg("log de auditoria desativado")
	}
	if _, err := acess_log.New(db, acess_log.Config{LogEnabled: enabled, Enabled: viper.GetBool("log.access")}); err != nil {
		log.Warn().Err(err).Str("component", "bootstrap").Msg("log de acesso desativado")
	}
}

func initWeb() (*handler.WebHandler, error) {
	secret := viper.GetString("web.session_secret")
	if secret == "" {
		return nil, errors.New("web.session_secret não configurado")
	}
	store := webMiddleware.NewStore(secret, viper.GetString("app.env") == "prod", viper.GetInt("web.session_max_age"))
	return handler.NewWebHandler(store, handler.LocalAPIClient(viper.GetInt("server.http.port")))
}

// New prepara a aplicação (config, db, di) e retorna a instância.
func New() (*Application, error) {
	if err := Environment(); err != nil {
		return nil, err
	}
	boot := logger.Component("bootstrap")
	boot.Info().Msg("configuração de ambiente carregada")

	err := jwt.Init(jwt.Config{
		AccessSecret: viper.GetString("security.jwt_access_secret"),
		Issuer:       viper.GetString("app.name"),
		AccessExpiry: time.Duration(viper.GetInt64("security.jwt_access_expiry_min")) * time.Minute,
	})
	if err != nil {
		// a aplicação não sobe sem o gerador de token
		return nil, fmt.Errorf("falha ao criar gerador de token: %w", err)
	}
	boot.Info().Msg("gerador de token inicializado")

	mail, err := mailer.New(mailer.SMTPConfig{
		Host:       viper.GetString("smtp.host"),
		Port:       viper.GetString("smtp.port"),
		Username:   viper.GetString("smtp.username"),
		Password:   viper.GetString("smtp.password"),
		Encryption: viper.GetString("smtp.encryption"),
		Address:    viper.GetString("smtp.address"),
	})
	if err != nil {
		boot.Warn().Err(err).Msg("sistema de emails indisponível, OTP desativado")
		mail = nil
	} else {
		boot.Info().Msg("sistema de emails inicializado")
	}

	db := postgres.InitPostgres()
	boot.Info().Msg("conexão com o banco de dados inicializada")
	initLogs(db)

	store, err := Storage()
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir diretório de arquivos: %w", err)
	}

	mw, err := initIamDomain(db, mail)
	if err != nil {
		return nil, fmt.Errorf("falha ao iniciar domínio iam: %w", err)
	}
	if err := initOfficeDomain(db, mw, store); err != nil {
		return nil, fmt.Errorf("falha ao iniciar domínio do escritório: %w", err)
	}
	boot.Info().Msg("contêiner de dependências inicializado")

	web, err := initWeb()
	if err != nil {
		return nil, fmt.Errorf("falha ao iniciar interface web: %w", err)
	}
	srv, err := server.NewHTTPServer(web)
	if err != nil {
		return nil, err
	}

	return &Application{server: srv}, nil
}

func startNgrokForward(ctx context.Context, token string, port int) error {
	tunnel := logger.Component("ngrok")

	agent, err := ngrok.NewAgent(
		ngrok.WithAuthtoken(token),
		ngrok.WithAutoConnect(true),
	)
	if err != nil {
		return fmt.Errorf("erro criando ngrok Agent: %w", err)
	}

	upstream := ngrok.WithUpstream(fmt.Sprintf("http://127.0.0.1:%d", port))
	endpoint, err := agent.Forward(ctx, upstream)
	if err != nil {
		var ngErr ngrok.Error
		if errors.As(err, &ngErr) {
			tunnel.Error().Str("code", fmt.Sprint(ngErr.Code())).Err(ngErr).Msg("erro ao criar forward")
		}
		return fmt.Errorf("erro iniciando ngrok Forward: %w", err)
	}

	tunnel.Info().Str("url", fmt.Sprint(endpoint.URL())).Msg("endpoint online")

	<-ctx.Done()

	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := endpoint.CloseWithContext(closeCtx); err != nil {
		return fmt.Errorf("erro ao fechar endpoint ngrok: %w", err)
	}
	if err := agent.Disconnect(); err != nil {
		return fmt.Errorf("erro ao desconectar ngrok Agent: %w", err)
	}
	return nil
}

func (a *Application) Start(ctx context.Context) error {
	log.Info().Str("component", "bootstrap").Str("env", viper.GetString("app.env")).Msg("iniciando servidor")

	errCh := make(chan error, 1)
	go func() {
		errCh <- a.server.Start()
	}()

	if viper.GetBool("test.ngrok.live") {
		token := viper.GetString("test.ngrok.token")
		if token == "" {
			log.Warn().Str("component", "ngrok").Msg("test.ngrok.live=true mas test.ngrok.token está vazio; ngrok não será iniciado")
		} else {
			port := viper.GetInt("server.http.port")
			go func() {
				if err := startNgrokForward(ctx, token, port); err != nil {
					log.Error().Err(err).Str("component", "ngrok").Msg("túnel encerrado com erro")
				}
			}()
		}
	}

	// logs assíncronos pendentes são gravados antes de fechar o banco
	defer func() {
		auditoria_log.Wait()
		acess_log.Wait()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("falha ao encerrar servidor: %w", err)
		}
		return <-errCh

	case err := <-errCh:
		return err
	}
}
