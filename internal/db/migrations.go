package db

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	embeddedmigrations "github.com/terraincognita07/brygady/migrations"
	"gorm.io/gorm"
)

// ErrSchemaIncomplete is returned when the migrated database lacks a table,
// column or index the repositories rely on.
var ErrSchemaIncomplete = errors.New("schema incomplete")

var (
	migrationFileName   = regexp.MustCompile(`^(\d+)_[\w-]+\.sql$`)
	addColumnStatement  = regexp.MustCompile(`(?i)^ALTER\s+TABLE\s+(\S+)\s+ADD\s+COLUMN\s+(\S+)`)
	requiredTables      = []string{"users", "brigades", "workers", "brigade_workers", "time_sheets"}
	requiredUserColumns = []string{"username", "password_hash", "role", "brigade_id", "must_change_password"}
)

// timeSheetDayIndex enforces one time sheet row per worker and day; upserts
// and the bulk fill conflict target depend on it.
const timeSheetDayIndex = "uidx_worker_date"

type schemaMigration struct {
	Version    string
	File       string
	Statements []string
}

// migrateSchema applies embedded migrations that are not yet recorded in
// schema_migrations, then checks the result.
func migrateSchema(database *gorm.DB, log zerolog.Logger) error {
	const createLedger = `CREATE TABLE IF NOT EXISTS schema_migrations (
  version TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`
	if err := database.Exec(createLedger).Error; err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	available, err := loadEmbeddedMigrations()
	if err != nil {
		return err
	}

	var recorded []string
	if err := database.Raw(`SELECT version FROM schema_migrations`).Scan(&recorded).Error; err != nil {
		return fmt.Errorf("load applied migration versions: %w", err)
	}

	applied := 0
	for _, migration := range available {
		if slices.Contains(recorded, migration.Version) {
			continue
		}
		if err := applyMigration(database, migration); err != nil {
			return err
		}
		applied++
		log.Info().Str("migration", migration.File).Msg("applied schema migration")
	}

	if err := verifyTimesheetSchema(database); err != nil {
		return err
	}
	log.Debug().Int("applied", applied).Int("known", len(available)).Msg("schema up to date")
	return nil
}

func loadEmbeddedMigrations() ([]schemaMigration, error) {
	entries, err := fs.ReadDir(embeddedmigrations.Files, ".")
	if err != nil {
		return nil, fmt.Errorf("read embedded migrations: %w", err)
	}

	migrations := make([]schemaMigration, 0, len(entries))
	for _, entry := range entries {
		matches := migrationFileName.FindStringSubmatch(entry.Name())
		if entry.IsDir() || matches == nil {
			continue
		}
		for _, existing := range migrations {
			if existing.Version == matches[1] {
				return nil, fmt.Errorf("duplicate migration version %s in %s and %s", existing.Version, existing.File, entry.Name())
			}
		}

		raw, err := fs.ReadFile(embeddedmigrations.Files, entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}
		statements := splitSQLStatements(string(raw))
		if len(statements) == 0 {
			return nil, fmt.Errorf("migration %s has no SQL statements", entry.Name())
		}
		migrations = append(migrations, schemaMigration{
			Version:    matches[1],
			File:       entry.Name(),
			Statements: statements,
		})
	}

	// Versions are zero-padded, so lexical order is apply order.
	slices.SortFunc(migrations, func(a, b schemaMigration) int {
		return strings.Compare(a.Version, b.Version)
	})
	return migrations, nil
}

func applyMigration(database *gorm.DB, migration schemaMigration) error {
	return database.Transaction(func(tx *gorm.DB) error {
		for _, statement := range migration.Statements {
			if matches := addColumnStatement.FindStringSubmatch(statement); matches != nil {
				exists, err := tableColumnExists(tx, unquoteIdentifier(matches[1]), unquoteIdentifier(matches[2]))
				if err != nil {
					return fmt.Errorf("inspect migration %s: %w", migration.File, err)
				}
				if exists {
					continue
				}
			}
			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("execute migration %s statement %q: %w", migration.File, statement, err)
			}
		}

		if err := tx.Exec(
			`INSERT INTO schema_migrations(version, name) VALUES (?, ?)`,
			migration.Version,
			migration.File,
		).Error; err != nil {
			return fmt.Errorf("record migration %s: %w", migration.File, err)
		}
		return nil
	})
}

// verifyTimesheetSchema checks the structures queries assume: every table,
// the user columns the auth layer reads, and a unique (worker_id, date)
// index on time_sheets.
func verifyTimesheetSchema(database *gorm.DB) error {
	for _, table := range requiredTables {
		if !database.Migrator().HasTable(table) {
			return fmt.Errorf("%w: table %s missing", ErrSchemaIncomplete, table)
		}
	}
	for _, column := range requiredUserColumns {
		exists, err := tableColumnExists(database, "users", column)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: column users.%s missing", ErrSchemaIncomplete, column)
		}
	}

	columns, unique, err := indexColumns(database, "time_sheets", timeSheetDayIndex)
	if err != nil {
		return err
	}
	if !unique || !slices.Equal(columns, []string{"worker_id", "date"}) {
		return fmt.Errorf("%w: %s must be a unique index on time_sheets(worker_id, date), got unique=%v columns=%v",
			ErrSchemaIncomplete, timeSheetDayIndex, unique, columns)
	}
	return nil
}

type sqliteIndex struct {
	Name   string `gorm:"column:name"`
	Unique int    `gorm:"column:unique"`
}

type sqliteIndexColumn struct {
	Seq  int    `gorm:"column:seqno"`
	Name string `gorm:"column:name"`
}

// indexColumns returns the ordered column list of index name on table.
// A missing index yields no columns.
func indexColumns(database *gorm.DB, table string, name string) ([]string, bool, error) {
	var indexes []sqliteIndex
	if err := database.Raw(fmt.Sprintf(`PRAGMA index_list(%s)`, quoteIdentifier(table))).Scan(&indexes).Error; err != nil {
		return nil, false, fmt.Errorf("load index_list for %s: %w", table, err)
	}

	found := slices.IndexFunc(indexes, func(index sqliteIndex) bool { return index.Name == name })
	if found < 0 {
		return nil, false, nil
	}

	var info []sqliteIndexColumn
	if err := database.Raw(fmt.Sprintf(`PRAGMA index_info(%s)`, quoteIdentifier(name))).Scan(&info).Error; err != nil {
		return nil, false, fmt.Errorf("load index_info for %s: %w", name, err)
	}
	slices.SortFunc(info, func(a, b sqliteIndexColumn) int { return a.Seq - b.Seq })

	columns := make([]string, 0, len(info))
	for _, column := range info {
		columns = append(columns, column.Name)
	}
	return columns, indexes[found].Unique == 1, nil
}

type sqliteColumn struct {
	Name string `gorm:"column:name"`
}

func tableColumnExists(database *gorm.DB, table string, column string) (bool, error) {
	var columns []sqliteColumn
	if err := database.Raw(fmt.Sprintf(`PRAGMA table_info(%s)`, quoteIdentifier(table))).Scan(&columns).Error; err != nil {
		return false, fmt.Errorf("load table_info for %s: %w", table, err)
	}
	return slices.ContainsFunc(columns, func(existing sqliteColumn) bool {
		return strings.EqualFold(existing.Name, column)
	}), nil
}

func splitSQLStatements(sqlText string) []string {
	var statements []string
	for _, part := range strings.Split(sqlText, ";") {
		if statement := strings.TrimSpace(part); statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}

func quoteIdentifier(identifier string) string {
	return `"` + strings.ReplaceAll(identifier, `"`, `""`) + `"`
}

func unquoteIdentifier(identifier string) string {
	return strings.Trim(strings.TrimSpace(identifier), "\"`[]")
}
