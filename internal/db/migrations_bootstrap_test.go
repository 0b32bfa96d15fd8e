package db

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func TestOpenSQLiteAppliesEmbeddedMigrationsOnCleanDatabase(t *testing.T) {
	database := openSQLiteForTest(t, filepath.Join(t.TempDir(), "brygady-clean.db"))

	for _, table := range []string{"users", "brigades", "workers", "brigade_workers", "time_sheets"} {
		if !database.Migrator().HasTable(table) {
			t.Fatalf("expected table %s to exist", table)
		}
	}

	exists, err := tableColumnExists(database, "users", "must_change_password")
	if err != nil {
		t.Fatalf("inspect users columns: %v", err)
	}
	if !exists {
		t.Fatal("expected users.must_change_password column")
	}

	var indexCount int64
	if err := database.Raw(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'index' AND name = 'uidx_worker_date'`,
	).Scan(&indexCount).Error; err != nil {
		t.Fatalf("inspect indexes: %v", err)
	}
	if indexCount != 1 {
		t.Fatalf("expected uidx_worker_date index, got %d", indexCount)
	}

	migrations, err := loadEmbeddedMigrations()
	if err != nil {
		t.Fatalf("load embedded migrations: %v", err)
	}
	records := loadMigrationRecords(t, database)
	if len(records) != len(migrations) {
		t.Fatalf("expected %d applied migrations, got %v", len(migrations), records)
	}
}

func TestOpenSQLiteMigrationBootstrapIsIdempotent(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "brygady-idempotent.db")

	firstOpen, err := OpenSQLite(databasePath, zerolog.Nop())
	if err != nil {
		t.Fatalf("first open sqlite: %v", err)
	}
	firstRecords := loadMigrationRecords(t, firstOpen)

	firstSQLDB, err := firstOpen.DB()
	if err != nil {
		t.Fatalf("first open sql db: %v", err)
	}
	if err := firstSQLDB.Close(); err != nil {
		t.Fatalf("close first sql db: %v", err)
	}

	secondOpen := openSQLiteForTest(t, databasePath)
	secondRecords := loadMigrationRecords(t, secondOpen)

	if !reflect.DeepEqual(firstRecords, secondRecords) {
		t.Fatalf("expected migration records to remain unchanged between boots, before=%v after=%v", firstRecords, secondRecords)
	}
}

func TestSplitSQLStatementsDropsEmptyParts(t *testing.T) {
	statements := splitSQLStatements("CREATE TABLE a (id INTEGER);\n\n;CREATE INDEX i ON a(id);  ")
	if len(statements) != 2 {
		t.Fatalf("expected 2 statements, got %d: %v", len(statements), statements)
	}
}

func TestVerifyTimesheetSchemaRequiresUniqueWorkerDateIndex(t *testing.T) {
	database := openSQLiteForTest(t, filepath.Join(t.TempDir(), "brygady-verify.db"))

	if err := verifyTimesheetSchema(database); err != nil {
		t.Fatalf("expected migrated schema to verify, got %v", err)
	}

	if err := database.Exec(`DROP INDEX uidx_worker_date`).Error; err != nil {
		t.Fatalf("drop index: %v", err)
	}
	if err := verifyTimesheetSchema(database); !errors.Is(err, ErrSchemaIncomplete) {
		t.Fatalf("expected ErrSchemaIncomplete without index, got %v", err)
	}

	if err := database.Exec(`CREATE INDEX uidx_worker_date ON time_sheets(worker_id, date)`).Error; err != nil {
		t.Fatalf("create non-unique index: %v", err)
	}
	if err := verifyTimesheetSchema(database); !errors.Is(err, ErrSchemaIncomplete) {
		t.Fatalf("expected ErrSchemaIncomplete for non-unique index, got %v", err)
	}

	if err := database.Exec(`DROP INDEX uidx_worker_date`).Error; err != nil {
		t.Fatalf("drop non-unique index: %v", err)
	}
	if err := database.Exec(`CREATE UNIQUE INDEX uidx_worker_date ON time_sheets(date, worker_id)`).Error; err != nil {
		t.Fatalf("create reordered index: %v", err)
	}
	if err := verifyTimesheetSchema(database); !errors.Is(err, ErrSchemaIncomplete) {
		t.Fatalf("expected ErrSchemaIncomplete for reordered columns, got %v", err)
	}
}

func TestLoadEmbeddedMigrationsOrdersByVersion(t *testing.T) {
	migrations, err := loadEmbeddedMigrations()
	if err != nil {
		t.Fatalf("load embedded migrations: %v", err)
	}
	if len(migrations) < 2 {
		t.Fatalf("expected at least 2 migrations, got %d", len(migrations))
	}
	for index := 1; index < len(migrations); index++ {
		if migrations[index-1].Version >= migrations[index].Version {
			t.Fatalf("migrations out of order: %s before %s", migrations[index-1].File, migrations[index].File)
		}
	}
	if migrations[0].File != "0001_init.sql" || len(migrations[0].Statements) == 0 {
		t.Fatalf("unexpected first migration %+v", migrations[0])
	}
}

func TestIndexColumnsReportsMissingIndex(t *testing.T) {
	database := openSQLiteForTest(t, filepath.Join(t.TempDir(), "brygady-index.db"))

	columns, unique, err := indexColumns(database, "time_sheets", "idx_does_not_exist")
	if err != nil {
		t.Fatalf("indexColumns returned error: %v", err)
	}
	if unique || len(columns) != 0 {
		t.Fatalf("expected no columns for missing index, got unique=%v columns=%v", unique, columns)
	}
}

func openSQLiteForTest(t *testing.T, databasePath string) *gorm.DB {
	t.Helper()

	database, err := OpenSQLite(databasePath, zerolog.Nop())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database
}

func loadMigrationRecords(t *testing.T, database *gorm.DB) []string {
	t.Helper()

	versions := make([]string, 0)
	if err := database.Raw(`SELECT version FROM schema_migrations ORDER BY version`).Scan(&versions).Error; err != nil {
		t.Fatalf("load schema_migrations: %v", err)
	}
	return versions
}
