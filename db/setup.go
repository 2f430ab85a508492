package db

import (
	"database/sql"
	"embed"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/daniel/library/pkg/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

// SetupPostgres applies all pending goose migrations before the
// application starts serving requests.
func SetupPostgres(migrateURL string, log *zap.Logger) error {
	conn, err := sql.Open("postgres", migrateURL)

	if logger.CheckError(err, log, "can not open migration connection", zap.Error(err)) {
		return err
	}

	defer func() {
		err = conn.Close()
		logger.CheckError(err, log, "can not close migration connection", zap.Error(err))
	}()

	goose.SetBaseFS(migrations)

	if err = goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err = goose.Up(conn, "migrations"); err != nil {
		return err
	}

	logger.MakeInfo(log, "migrations applied")

	return nil
}
