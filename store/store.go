// Package store persists heading level style definitions to a SQLite sidecar
// database, one row per customized level with the definition serialized as a
// binary Ion blob. The registry stays storage-agnostic: the store hydrates it
// at document open and snapshots it back on save.
package store

import (
	"fmt"

	"go.uber.org/zap"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"scribe/style"
)

const schema = `
CREATE TABLE IF NOT EXISTS heading_styles (
	level      INTEGER PRIMARY KEY CHECK (level BETWEEN 1 AND 6),
	definition BLOB NOT NULL
);
`

// Store is a single-connection handle, matching the single threaded contract
// of the registry it serves.
type Store struct {
	conn *sqlite.Conn
	log  *zap.Logger
}

// Open opens (creating if needed) the styles database at path. Pass
// ":memory:" for a throwaway in-memory database.
func Open(path string, log *zap.Logger) (*Store, error) {
	if log == nil {
		log = zap.NewNop()
	}
	conn, err := sqlite.OpenConn(path)
	if err != nil {
		return nil, fmt.Errorf("opening styles db %s: %w", path, err)
	}
	if err := sqlitex.ExecuteScript(conn, schema, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("preparing styles schema: %w", err)
	}
	return &Store{conn: conn, log: log.Named("store")}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Load reads every persisted definition and hydrates the registry with them.
// Rows that fail to decode are skipped with a warning rather than failing the
// whole load - a corrupt row should not make the document unopenable.
func (s *Store) Load(reg *style.Registry) error {
	levels := make(map[int]*style.Definition)
	err := sqlitex.Execute(s.conn, `SELECT level, definition FROM heading_styles`,
		&sqlitex.ExecOptions{ResultFunc: func(stmt *sqlite.Stmt) error {
			level := stmt.ColumnInt(0)
			blob := make([]byte, stmt.ColumnLen(1))
			stmt.ColumnBytes(1, blob)
			def, err := decodeDefinition(blob)
			if err != nil {
				s.log.Warn("Skipping unreadable heading style",
					zap.Int("level", level), zap.Error(err))
				return nil
			}
			levels[level] = def
			return nil
		}})
	if err != nil {
		return fmt.Errorf("loading heading styles: %w", err)
	}
	reg.Hydrate(levels)
	s.log.Debug("Loaded heading styles", zap.Int("levels", len(levels)))
	return nil
}

// Save snapshots the registry into the database, replacing previous content.
// The whole write happens inside one savepoint so a failure leaves the
// previous snapshot intact.
func (s *Store) Save(reg *style.Registry) (err error) {
	defer sqlitex.Save(s.conn)(&err)

	if err = sqlitex.Execute(s.conn, `DELETE FROM heading_styles`, nil); err != nil {
		return fmt.Errorf("clearing heading styles: %w", err)
	}
	levels := reg.Export()
	for level, def := range levels {
		blob, err := encodeDefinition(def)
		if err != nil {
			return fmt.Errorf("level %d: %w", level, err)
		}
		err = sqlitex.Execute(s.conn,
			`INSERT INTO heading_styles (level, definition) VALUES (?, ?)`,
			&sqlitex.ExecOptions{Args: []any{level, blob}})
		if err != nil {
			return fmt.Errorf("writing level %d: %w", level, err)
		}
	}
	s.log.Debug("Saved heading styles", zap.Int("levels", len(levels)))
	return nil
}
