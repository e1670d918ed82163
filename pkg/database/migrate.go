package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

// 看板库的表结构全部由嵌入的 SQL 脚本维护，随二进制一起发布
//
//go:embed migrations/*.sql
var schemaFS embed.FS

// RunMigrations 启动时把看板库结构对齐到最新版本
// 结构已是最新时静默通过（ErrNoChange 不算失败）
func RunMigrations(db *sql.DB, logger *zap.Logger) error {
	source, err := iofs.New(schemaFS, "migrations")
	if err != nil {
		return fmt.Errorf("读取嵌入迁移脚本失败: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("构造 postgres 迁移驱动失败: %w", err)
	}

	m, err := migrate.NewWithInstance("embed", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("构造迁移实例失败: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("应用看板库迁移失败: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("读取迁移版本失败: %w", err)
	}
	if dirty {
		logger.Warn("看板库迁移停在 dirty 版本，需人工处理后重启", zap.Uint("version", version))
		return nil
	}

	logger.Info("看板库结构已对齐", zap.Uint("version", version))
	return nil
}
