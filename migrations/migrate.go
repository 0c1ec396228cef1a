// Пакет migrations — goose-миграции схемы, вшитые в бинарник.
// Применяются при старте сервиса (ADMIN_POSTGRES_MIGRATE=true) и из
// интеграционных тестов.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql драйвер с именем "pgx"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var fsys embed.FS

// Up — применяет все невыполненные миграции к базе по DSN.
func Up(dsn string) error {
	goose.SetBaseFS(fsys)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose set dialect: %w", err)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
