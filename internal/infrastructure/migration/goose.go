package migration

import (
	"embed"
	"fmt"
	"io"
	"log"
	"log/slog"
	"path"
	"sync"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/potluckhq/potluck/internal/shared/logger"
)

//go:embed scripts
var scriptsFS embed.FS

// goose keeps dialect and base FS in package globals
var gooseMu sync.Mutex

type GooseStrategy struct {
	dialect     string
	scriptsPath string
	logger      *slog.Logger
}

// NewGooseStrategy selects the embedded script set for the configured driver.
func NewGooseStrategy(driver string) (*GooseStrategy, error) {
	dialect, err := gooseDialect(driver)
	if err != nil {
		return nil, err
	}
	return &GooseStrategy{
		dialect:     dialect,
		scriptsPath: path.Join("scripts", dialect),
		logger:      logger.WithComponent("migration.goose"),
	}, nil
}

func gooseDialect(driver string) (string, error) {
	switch driver {
	case "", "sqlite":
		return "sqlite3", nil
	case "mysql":
		return "mysql", nil
	case "postgres":
		return "postgres", nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}

func (s *GooseStrategy) GetName() string {
	return "goose"
}

// ScriptsDir is where `migrate create` writes new files for this dialect.
func (s *GooseStrategy) ScriptsDir() string {
	return path.Join("internal", "infrastructure", "migration", s.scriptsPath)
}

func (s *GooseStrategy) prepare() {
	goose.SetBaseFS(scriptsFS)
	goose.SetLogger(goose.NopLogger())
}

func (s *GooseStrategy) Migrate(db *gorm.DB) error {
	s.logger.Info("starting goose migration", "dialect", s.dialect)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()
	s.prepare()

	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	currentVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	if err := goose.Up(sqlDB, s.scriptsPath); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	s.logger.Info("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)

	return nil
}

func (s *GooseStrategy) MigrateDown(db *gorm.DB, steps int) error {
	s.logger.Info("starting down migration", "steps", steps)

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()
	s.prepare()

	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	for i := 0; i < steps; i++ {
		if err := goose.Down(sqlDB, s.scriptsPath); err != nil {
			return fmt.Errorf("failed to run down migration: %w", err)
		}
	}

	s.logger.Info("down migration completed successfully")
	return nil
}

func (s *GooseStrategy) GetVersion(db *gorm.DB) (int64, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()
	s.prepare()

	if err := goose.SetDialect(s.dialect); err != nil {
		return 0, fmt.Errorf("failed to set goose dialect: %w", err)
	}

	version, err := goose.GetDBVersion(sqlDB)
	if err != nil {
		return 0, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}

// Status prints the applied and pending scripts to out.
func (s *GooseStrategy) Status(db *gorm.DB, out io.Writer) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()
	goose.SetBaseFS(scriptsFS)
	goose.SetLogger(log.New(out, "", 0))

	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Status(sqlDB, s.scriptsPath); err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}
	return nil
}

// Create writes a new SQL migration on disk, next to the embedded scripts.
func (s *GooseStrategy) Create(name string) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()
	goose.SetBaseFS(nil)

	if err := goose.SetDialect(s.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Create(nil, s.ScriptsDir(), name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	s.logger.Info("migration created successfully", "name", name, "dir", s.ScriptsDir())
	return nil
}
