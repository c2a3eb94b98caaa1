package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/vaultlocker/vaultlocker/internal/logger"
	"github.com/vaultlocker/vaultlocker/migrations"
)

// sqliteArea is an Area backed by the kv_entries table of a sqlite file.
// Several areas can share one database, distinguished by the area column.
type sqliteArea struct {
	db     *sql.DB
	name   string
	logger *logger.Logger
}

// OpenSQLite opens (creating the file if needed) the sqlite database at dsn
// and runs the schema migrations. The returned handle is shared by every
// Area built on top of it.
func OpenSQLite(ctx context.Context, dsn string, log *logger.Logger) (*sql.DB, error) {
	if err := createLocalDBFileIfNotExists(dsn); err != nil {
		log.Err(err).Str("func", "OpenSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "OpenSQLite").Msg("error opening database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	if err = db.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "OpenSQLite").Msg("error connecting database (ping)")
		return nil, err
	}

	if err = migrations.Migrate(db); err != nil {
		return nil, err
	}
	log.Debug().Str("func", "OpenSQLite").Msg("connected to storage database")

	return db, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if dbFile == ":memory:" || dbFile == "" {
		return nil
	}
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		return f.Close()
	}
	return nil
}

// NewSQLiteArea returns the Area stored under name inside db.
func NewSQLiteArea(db *sql.DB, name string, log *logger.Logger) Area {
	return &sqliteArea{db: db, name: name, logger: log}
}

func (a *sqliteArea) Get(ctx context.Context, keys ...string) (map[string]json.RawMessage, error) {
	if len(keys) == 0 {
		return map[string]json.RawMessage{}, nil
	}

	query, args, err := sq.Select("key", "value").
		From("kv_entries").
		Where(sq.Eq{"area": a.name, "key": keys}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get query: %w", err)
	}

	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		a.logger.Err(err).Str("area", a.name).Msg("failed to query storage keys")
		return nil, fmt.Errorf("query storage keys: %w", err)
	}
	defer rows.Close()

	result := make(map[string]json.RawMessage, len(keys))
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan storage row: %w", err)
		}
		result[key] = json.RawMessage(value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate storage rows: %w", err)
	}

	return result, nil
}

func (a *sqliteArea) Set(ctx context.Context, pairs map[string]any) error {
	now := time.Now().UTC()

	for key, value := range pairs {
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encode value for key %q: %w", key, err)
		}

		query, args, err := sq.Insert("kv_entries").
			Columns("area", "key", "value", "updated_at").
			Values(a.name, key, string(raw), now).
			Suffix("ON CONFLICT (area, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("build set query: %w", err)
		}

		if _, err := a.db.ExecContext(ctx, query, args...); err != nil {
			a.logger.Err(err).Str("area", a.name).Str("key", key).Msg("failed to upsert storage key")
			return fmt.Errorf("upsert storage key %q: %w", key, err)
		}
	}

	return nil
}

func (a *sqliteArea) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	query, args, err := sq.Delete("kv_entries").
		Where(sq.Eq{"area": a.name, "key": keys}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build remove query: %w", err)
	}

	if _, err := a.db.ExecContext(ctx, query, args...); err != nil {
		a.logger.Err(err).Str("area", a.name).Msg("failed to delete storage keys")
		return fmt.Errorf("delete storage keys: %w", err)
	}

	return nil
}
