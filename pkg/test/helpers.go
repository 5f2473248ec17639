package test

import (
	"database/sql"
	"log"
	"path/filepath"

	"github.com/Masterminds/squirrel"

	"taskboard/internal/adapter/database/sqlite"
	"taskboard/pkg"
)

// InitTestDB opens an in-memory sqlite database with the schema applied.
// A single connection keeps the in-memory database alive for the whole
// test.
func InitTestDB() *sqlite.DB {
	db, err := sql.Open("sqlite3", ":memory:")

	if err != nil {
		log.Fatal(err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		log.Fatal(err)
	}

	migrationsPath := filepath.Join(pkg.FindProjectRoot(), "db", "migrations")
	sqlite.RunMigrations(db, migrationsPath)

	queryBuilder := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	return &sqlite.DB{
		DB:           db,
		QueryBuilder: &queryBuilder,
	}
}
