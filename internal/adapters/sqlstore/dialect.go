package sqlstore

import (
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

// Dialect selects the driver and DDL flavour.
type Dialect string

const (
	DialectSQLite Dialect = "sqlite"
	DialectMySQL  Dialect = "mysql"
)

func (d Dialect) driverName() string {
	if d == DialectMySQL {
		return "mysql"
	}
	return "sqlite3"
}

// schema returns the DDL statements, one per Exec so that MySQL connections
// without multiStatements accept them.
func (d Dialect) schema() []string {
	if d == DialectMySQL {
		return []string{
			`CREATE TABLE IF NOT EXISTS recipes (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				name VARCHAR(50) NOT NULL,
				cooking_time INT NOT NULL,
				difficulty VARCHAR(20) NOT NULL
			) CHARACTER SET utf8mb4`,
			`CREATE TABLE IF NOT EXISTS ingredients (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				name VARCHAR(50) COLLATE utf8mb4_bin NOT NULL UNIQUE
			) CHARACTER SET utf8mb4`,
			`CREATE TABLE IF NOT EXISTS recipe_ingredients (
				recipe_id BIGINT NOT NULL,
				ingredient_id BIGINT NOT NULL,
				position INT NOT NULL,
				PRIMARY KEY (recipe_id, position),
				INDEX idx_recipe_ingredients_ingredient (ingredient_id)
			)`,
		}
	}
	return []string{
		`PRAGMA busy_timeout = 5000`,
		`CREATE TABLE IF NOT EXISTS recipes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			cooking_time INTEGER NOT NULL,
			difficulty TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS ingredients (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS recipe_ingredients (
			recipe_id INTEGER NOT NULL,
			ingredient_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			PRIMARY KEY (recipe_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_recipe_ingredients_ingredient ON recipe_ingredients(ingredient_id)`,
	}
}

func (d Dialect) insertIgnore() string {
	if d == DialectMySQL {
		return `INSERT IGNORE INTO ingredients (name) VALUES (?)`
	}
	return `INSERT OR IGNORE INTO ingredients (name) VALUES (?)`
}

// normalizeDSN prepares a data source name for the dialect's driver.
func (d Dialect) normalizeDSN(dsn string) (string, error) {
	switch d {
	case DialectMySQL:
		cfg, err := mysql.ParseDSN(dsn)
		if err != nil {
			return "", fmt.Errorf("invalid mysql dsn: %w", err)
		}
		cfg.MultiStatements = false
		cfg.ParseTime = true
		return cfg.FormatDSN(), nil
	case DialectSQLite:
		if dsn == "" {
			return "", fmt.Errorf("sqlite path is required")
		}
		if strings.Contains(dsn, "?") {
			return dsn, nil
		}
		return dsn + "?_journal_mode=WAL", nil
	default:
		return "", fmt.Errorf("unknown sql dialect %q", d)
	}
}
