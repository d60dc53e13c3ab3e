package migrate

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/niggl1/appsindico/internal/infrastructure/config"
	"github.com/niggl1/appsindico/internal/infrastructure/database"
	"github.com/niggl1/appsindico/internal/infrastructure/migration"
	"github.com/niggl1/appsindico/internal/shared/logger"
)

var (
	env   string
	name  string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations. MySQL uses the goose scripts, SQLite uses AutoMigrate.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create a new SQL migration file with the specified name.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

type migrateEnv struct {
	cfg     *config.Config
	log     logger.Interface
	manager *migration.Manager
}

func initEnv() (*migrateEnv, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()

	return &migrateEnv{
		cfg:     cfg,
		log:     log,
		manager: migration.NewManager(&cfg.Database, log),
	}, nil
}

func (e *migrateEnv) openDatabase() (*gorm.DB, error) {
	if err := database.Init(&e.cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return database.Get(), nil
}

func (e *migrateEnv) goose() (*migration.GooseStrategy, error) {
	g, ok := e.manager.Goose()
	if !ok {
		return nil, fmt.Errorf("this command needs the goose strategy; database driver %q uses %s",
			e.cfg.Database.Driver, e.manager.GetStrategy().GetName())
	}
	return g, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	e, err := initEnv()
	if err != nil {
		return err
	}
	db, err := e.openDatabase()
	if err != nil {
		return err
	}
	defer database.Close()

	e.log.Infow("running up migrations", "environment", env)

	if err := e.manager.Migrate(db); err != nil {
		return err
	}

	e.log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	e, err := initEnv()
	if err != nil {
		return err
	}
	g, err := e.goose()
	if err != nil {
		return err
	}
	db, err := e.openDatabase()
	if err != nil {
		return err
	}
	defer database.Close()

	e.log.Infow("running down migrations", "environment", env, "steps", steps)

	if err := g.MigrateDown(db, steps); err != nil {
		e.log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	e.log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	e, err := initEnv()
	if err != nil {
		return err
	}
	g, err := e.goose()
	if err != nil {
		return err
	}
	db, err := e.openDatabase()
	if err != nil {
		return err
	}
	defer database.Close()

	version, err := g.GetVersion(db)
	if err != nil {
		e.log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", env)
	fmt.Fprintf(out, "  Current Version: %d\n", version)

	if err := g.Status(db); err != nil {
		e.log.Errorw("failed to get detailed status", "error", err)
		return fmt.Errorf("failed to get detailed status: %w", err)
	}

	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	e, err := initEnv()
	if err != nil {
		return err
	}

	e.log.Infow("creating new migration", "name", name)

	g, ok := migration.NewGooseStrategy(migration.DefaultScriptsPath, e.log).(*migration.GooseStrategy)
	if !ok {
		return fmt.Errorf("unexpected migration strategy")
	}
	if err := g.Create(name); err != nil {
		e.log.Errorw("failed to create migration", "error", err)
		return fmt.Errorf("failed to create migration: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migration '%s' created in %s\n", name, migration.DefaultScriptsPath)
	return nil
}
