// Package memberstore caches fetched member records in sqlite so
// repeated congress lookups do not re-crawl the registry.
package memberstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"vistos-backend/lib/memberstore/db"
	"vistos-backend/lib/scrapers/bioguide"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func NewStore(database *sql.DB) (Store, error) {
	_, err := database.Exec(db.Schema)
	if err != nil {
		return Store{}, err
	}
	return Store{db: database}, nil
}

// Open creates a store backed by the sqlite file at path, creating the
// schema when needed. Use ":memory:" for an ephemeral store.
func Open(path string) (Store, error) {
	database, err := sql.Open("sqlite", path)
	if err != nil {
		return Store{}, err
	}
	return NewStore(database)
}

func (s Store) Close() error {
	return s.db.Close()
}

func (s Store) Put(ctx context.Context, record bioguide.MemberRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(
		ctx,
		`insert into member (bioguide_id, fetched_at, record) values (?, ?, ?)
		on conflict (bioguide_id) do update set fetched_at = excluded.fetched_at, record = excluded.record`,
		record.BioguideID, time.Now().Unix(), string(payload),
	)
	return err
}

func (s Store) PutAll(ctx context.Context, records []bioguide.MemberRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().Unix()
	for _, record := range records {
		payload, err := json.Marshal(record)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(
			ctx,
			`insert into member (bioguide_id, fetched_at, record) values (?, ?, ?)
			on conflict (bioguide_id) do update set fetched_at = excluded.fetched_at, record = excluded.record`,
			record.BioguideID, now, string(payload),
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Get returns the cached record for one member. The boolean is false on
// a cache miss; a corrupt row is treated as a miss rather than an error
// so a bad cache never blocks a fetch.
func (s Store) Get(ctx context.Context, bioguideID string) (bioguide.MemberRecord, bool, error) {
	var payload string
	err := s.db.QueryRowContext(
		ctx,
		`select record from member where bioguide_id = ?`,
		bioguideID,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return bioguide.MemberRecord{}, false, nil
	}
	if err != nil {
		return bioguide.MemberRecord{}, false, err
	}

	var record bioguide.MemberRecord
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		slog.WarnContext(ctx, "discarding corrupt cached member record", "bioguide_id", bioguideID, "err", err)
		return bioguide.MemberRecord{}, false, nil
	}
	return record, true, nil
}
