package uefisettings

import (
	"errors"
	"strings"
)

// TableName is the table owned by the plugin.
const TableName = "uefisettings"

// Dialect selects the SQL flavour of the install statement.
type Dialect string

// Supported dialects, named like the gorm engines in the config.
const (
	DialectMySQL    Dialect = "mysql"
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// ErrUnknownDialect is returned for engine names without a schema.
var ErrUnknownDialect = errors.New("unknown sql dialect")

const (
	createTableMySQL = `CREATE TABLE uefisettings (
		id INTEGER NOT NULL AUTO_INCREMENT,
		hardware_id INTEGER NOT NULL,
		setting_name VARCHAR(255) DEFAULT NULL,
		setting_value VARCHAR(255) DEFAULT NULL,
		PRIMARY KEY (id, hardware_id)
	) ENGINE=InnoDB`

	createTablePostgres = `CREATE TABLE uefisettings (
		id SERIAL NOT NULL,
		hardware_id INTEGER NOT NULL,
		setting_name VARCHAR(255) DEFAULT NULL,
		setting_value VARCHAR(255) DEFAULT NULL,
		PRIMARY KEY (id, hardware_id)
	)`

	// sqlite has no AUTOINCREMENT on composite keys, ids are assigned by the model.
	createTableSQLite = `CREATE TABLE uefisettings (
		id INTEGER NOT NULL,
		hardware_id INTEGER NOT NULL,
		setting_name VARCHAR(255) DEFAULT NULL,
		setting_value VARCHAR(255) DEFAULT NULL,
		PRIMARY KEY (id, hardware_id)
	)`

	dropTable = "DROP TABLE IF EXISTS uefisettings"
)

// ParseDialect maps a configured engine name to a Dialect.
func ParseDialect(engine string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "mysql", "mariadb":
		return DialectMySQL, nil
	case "postgres", "postgresql":
		return DialectPostgres, nil
	case "sqlite", "sqlite3":
		return DialectSQLite, nil
	default:
		return "", ErrUnknownDialect
	}
}

// CreateStatement returns the CREATE TABLE statement for the dialect.
func (d Dialect) CreateStatement() (string, error) {
	switch d {
	case DialectMySQL:
		return createTableMySQL, nil
	case DialectPostgres:
		return createTablePostgres, nil
	case DialectSQLite:
		return createTableSQLite, nil
	default:
		return "", ErrUnknownDialect
	}
}

// DropStatement returns the DROP TABLE statement, identical for all dialects.
func (d Dialect) DropStatement() string {
	return dropTable
}
