package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"gorm.io/gorm"

	"sistema-advocacia/cmd/bootstrap"
	"sistema-advocacia/internal/iam/domain/user"
	"sistema-advocacia/internal/infra/database/admin"
	"sistema-advocacia/internal/infra/database/migrations"
	"sistema-advocacia/internal/infra/database/postgres"
)

type options struct {
	Start             bool
	Stop              bool
	Seed              bool
	Update            bool
	DBCheck           bool
	DBDelete          bool
	DBBackup          bool
	BackupDestination string
	CreateAdmin       bool
	AdminName         string
	AdminEmail        string
	AdminPassword     string
	TemplateImport    string
}

func Execute() error {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if !opts.anyOperation() {
		log.Info().Msg("Nenhuma operação informada. Use --help para listar as opções disponíveis.")
		return nil
	}

	if err := bootstrap.Environment(); err != nil {
		return err
	}

	if opts.Stop {
		if err := stopServer(); err != nil {
			return fmt.Errorf("falha ao parar servidor: %w", err)
		}
		log.Info().Msg("Servidor finalizado com sucesso.")
		return nil
	}

	if err := opts.validate(); err != nil {
		return err
	}

	ctx := context.Background()
	var (
		db         *gorm.DB
		manager    *migrations.Manager
		operations bool
	)

	if opts.requiresDatabase() {
		db = postgres.InitPostgres()
		defer postgres.Close()
	}

	if opts.Seed {
		if manager == nil {
			manager = migrations.NewManager(db)
		}
		applied, err := manager.ApplySeed()
		if err != nil {
			return fmt.Errorf("falha ao aplicar migrations de seed: %w", err)
		}
		log.Info().Strs("applied", applied).Msg("Migrations de seed aplicadas com sucesso.")
		operations = true
	}

	if opts.Update {
		if manager == nil {
			manager = migrations.NewManager(db)
		}
		applied, err := manager.ApplyUpdate()
		if err != nil {
			return fmt.Errorf("falha ao aplicar migrations de atualização: %w", err)
		}
		log.Info().Strs("applied", applied).Msg("Migrations de atualização aplicadas com sucesso.")
		operations = true
	}

	if opts.DBCheck {
		status, err := admin.Check(db)
		if err != nil {
			return fmt.Errorf("falha ao checar banco de dados: %w", err)
		}
		ev := log.Info()
		if !status.Healthy() {
			ev = log.Warn().Strs("missing", status.Missing)
		}
		ev.Int("tables", len(status.Tables)).Strs("found", status.Tables).Msg("Banco de dados ativo.")
		operations = true
	}

	if opts.DBDelete {
		if err := admin.DeleteAll(db); err != nil {
			return fmt.Errorf("falha ao deletar tabelas do banco: %w", err)
		}
		log.Info().Msg("Todas as tabelas foram removidas com sucesso.")
		operations = true
	}

	if opts.DBBackup {
		dest := opts.BackupDestination
		if !filepath.IsAbs(dest) {
			if abs, err := filepath.Abs(dest); err == nil {
				dest = abs
			}
		}

		if err := admin.Backup(ctx, admin.BackupOptions{Destination: dest}); err != nil {
			return fmt.Errorf("falha ao executar backup: %w", err)
		}
		log.Info().Str("destination", dest).Msg("Backup gerado.")
		operations = true
	}

	if opts.CreateAdmin {
		if err := createAdmin(ctx, db, opts); err != nil {
			return fmt.Errorf("falha ao criar administrador: %w", err)
		}
		operations = true
	}

	if opts.TemplateImport != "" {
		if err := importTemplates(ctx, db, opts.TemplateImport); err != nil {
			return fmt.Errorf("falha ao importar modelos: %w", err)
		}
		operations = true
	}

	if opts.Start {
		if err := startServer(); err != nil {
			return fmt.Errorf("falha ao iniciar servidor: %w", err)
		}
		operations = true
	}

	if !operations {
		log.Info().Msg("Nenhuma operação executada. Use --help para listar as opções disponíveis.")
	}

	return nil
}

func createAdmin(ctx context.Context, db *gorm.DB, opts options) error {
	users, err := bootstrap.InitUsers(db)
	if err != nil {
		return err
	}
	created, err := users.Create(ctx, user.User{
		Name:     opts.AdminName,
		Email:    opts.AdminEmail,
		Password: opts.AdminPassword,
		Role:     user.RoleAdmin,
	})
	if err != nil {
		return err
	}
	log.Info().Str("uuid", created.UUID.String()).Str("email", created.Email).Msg("Administrador criado.")
	return nil
}

func parseOptions(args []string) (options, error) {
	var opts options

	fs := pflag.NewFlagSet("sistema-advocacia", pflag.ContinueOnError)
	fs.BoolVar(&opts.Start, "start", false, "Inicia o servidor HTTP")
	fs.BoolVar(&opts.Stop, "stop", false, "Finaliza o servidor HTTP")
	fs.BoolVar(&opts.Seed, "migration-seed", false, "Aplica migrations de seed")
	fs.BoolVar(&opts.Update, "migration-update", false, "Aplica migrations de atualização")
	fs.BoolVar(&opts.DBCheck, "db-check", false, "Checa status do banco de dados")
	fs.BoolVar(&opts.DBDelete, "db-delete", false, "Remove todas as tabelas do banco de dados")
	fs.BoolVar(&opts.DBBackup, "db-backup", false, "Realiza backup do banco de dados")
	fs.StringVar(&opts.BackupDestination, "local", "", "Diretório de destino para o backup do banco")
	fs.BoolVar(&opts.CreateAdmin, "create-admin", false, "Cria um usuário ADMIN")
	fs.StringVar(&opts.AdminName, "name", "", "Nome do administrador (--create-admin)")
	fs.StringVar(&opts.AdminEmail, "email", "", "Email do administrador (--create-admin)")
	fs.StringVar(&opts.AdminPassword, "password", "", "Senha do administrador (--create-admin)")
	fs.StringVar(&opts.TemplateImport, "template-import", "", "Importa modelos .docx listados em um manifesto YAML")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	return opts, nil
}

// validate confere os argumentos obrigatórios antes de abrir o banco.
func (o options) validate() error {
	if o.DBBackup && o.BackupDestination == "" {
		return errors.New("para executar o backup informe o destino com --local=<caminho>")
	}
	if o.CreateAdmin && (o.AdminName == "" || o.AdminEmail == "" || o.AdminPassword == "") {
		return errors.New("--create-admin exige --name, --email e --password")
	}
	return nil
}

func (o options) anyOperation() bool {
	return o.Start || o.Stop || o.Seed || o.Update || o.DBCheck || o.DBDelete || o.DBBackup ||
		o.CreateAdmin || o.TemplateImport != ""
}

func (o options) requiresDatabase() bool {
	return o.Seed || o.Update || o.DBCheck || o.DBDelete || o.CreateAdmin || o.TemplateImport != ""
}
