package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	sqlite3 "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// ErrEmailTaken is returned by CreateUser when the email unique
// constraint rejects the insert.
var ErrEmailTaken = errors.New("email already taken")

// DateLayout is the format used for fecha columns. Rows sort
// chronologically under plain string ordering.
const DateLayout = "2006-01-02 15:04:05"

const schema = `
CREATE TABLE IF NOT EXISTS productos (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	nombre TEXT NOT NULL,
	categoria TEXT NOT NULL,
	precio REAL NOT NULL,
	cantidad INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS ventas (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	descripcion TEXT NOT NULL,
	total REAL NOT NULL,
	fecha TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS reportes (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	tipo TEXT NOT NULL,
	descripcion TEXT NOT NULL,
	fecha TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS usuarios (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	nombre TEXT NOT NULL,
	correo TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL
);
`

type Store struct {
	db *sqlx.DB
}

// New opens (creating if needed) the file-backed database at path and
// ensures the schema exists. The containing directory is created on demand.
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One writer at a time; requests take short-lived connections from
	// database/sql and run a single unit of work each.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// GetDB returns the underlying database handle
func (s *Store) GetDB() *sqlx.DB {
	return s.db
}

func isUniqueViolation(err error) bool {
	var serr *sqlite3.Error
	if errors.As(err, &serr) {
		return serr.Code() == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE ||
			serr.Code() == sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}
