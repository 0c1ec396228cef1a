//go:build integration

package testutil

import (
	"fmt"

	"github.com/bangshop/admin/migrations"
)

// ApplyMigrations — накатывает вшитые в бинарник goose-миграции на базу
// контейнера. Та же схема, что и у боевого сервиса при старте.
func ApplyMigrations(dsn string) error {
	if err := migrations.Up(dsn); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
