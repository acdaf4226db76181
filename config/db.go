// picks the GORM driver by DBDriver. No repository/service code changes needed when you change DB.

package config

import (
	"fmt"

	"github.com/Abdulwakil1/Creatorverse/models"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
)

// Dialector returns the GORM dialector for cfg.DBDriver.
func Dialector(cfg *Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case "mysql":
		if cfg.MySQLDSN == "" {
			return nil, fmt.Errorf("db: mysql selected but mysql_dsn empty")
		}
		return mysql.Open(cfg.MySQLDSN), nil
	case "postgres":
		if cfg.PostgresDSN == "" {
			return nil, fmt.Errorf("db: postgres selected but postgres_dsn empty")
		}
		return postgres.Open(cfg.PostgresDSN), nil
	case "sqlite":
		// SQLite only needs a file path; the file is created if missing.
		return sqlite.Open(cfg.SQLitePath), nil
	case "sqlserver":
		if cfg.SQLServerDSN == "" {
			return nil, fmt.Errorf("db: sqlserver selected but sqlserver_dsn empty")
		}
		return sqlserver.Open(cfg.SQLServerDSN), nil
	default:
		return nil, fmt.Errorf("db: unknown db_driver %q", cfg.DBDriver)
	}
}

// InitDB opens the configured database and migrates the creators table.
func InitDB(cfg *Config) (*gorm.DB, error) {
	dial, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	// Warn keeps GORM output readable; Info logs every statement.
	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("db: connect (%s): %w", cfg.DBDriver, err)
	}

	if err := db.AutoMigrate(&models.Creator{}); err != nil {
		return nil, fmt.Errorf("db: automigrate: %w", err)
	}
	return db, nil
}
