// Package store persists synchronization cursors between ewsctl runs: the
// SyncState of every synced folder and the watermark of every pull
// subscription.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// SQLite driver registered as "sqlite".
	_ "modernc.org/sqlite"

	"github.com/custodia-labs/ews-go/ews"
	"github.com/custodia-labs/ews-go/internal/logger"
)

// InMemory opens a private database that lives as long as the Store.
const InMemory = ":memory:"

// CursorKind distinguishes item and hierarchy synchronization.
type CursorKind string

// Cursor kinds.
const (
	KindItems     CursorKind = "items"
	KindHierarchy CursorKind = "hierarchy"
)

// ErrNoSubscription is returned when a mailbox has no stored subscription.
var ErrNoSubscription = errors.New("store: no subscription")

var schema = []string{
	`CREATE TABLE IF NOT EXISTS sync_states (
		mailbox    TEXT NOT NULL,
		folder     TEXT NOT NULL,
		kind       TEXT NOT NULL,
		sync_state TEXT NOT NULL,
		complete   INTEGER NOT NULL DEFAULT 0,
		updated_at INTEGER NOT NULL,
		PRIMARY KEY (mailbox, folder, kind)
	)`,
	`CREATE TABLE IF NOT EXISTS subscriptions (
		mailbox    TEXT NOT NULL,
		id         TEXT NOT NULL,
		watermark  TEXT NOT NULL,
		updated_at INTEGER NOT NULL,
		PRIMARY KEY (mailbox, id)
	)`,
}

// Store is a SQLite-backed cursor store. It is safe for concurrent use.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Cursor is the stored synchronization state of one folder.
type Cursor struct {
	Mailbox   string
	Folder    string
	Kind      CursorKind
	SyncState string
	// Complete is set once the last batch reported the end of the range.
	Complete  bool
	UpdatedAt time.Time
}

// Open opens or creates the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if path != InMemory {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}
	logger.Debug("store: opening %s", path)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	// One connection keeps an in-memory database shared and serialises
	// writers on a file.
	db.SetMaxOpenConns(1)

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("initialise store schema: %w", err)
		}
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SyncState returns the stored SyncState of folder, or "" when the folder
// was never synced.
func (s *Store) SyncState(ctx context.Context, mailbox, folder string, kind CursorKind) (string, error) {
	var state string
	err := s.db.QueryRowContext(ctx,
		`SELECT sync_state FROM sync_states WHERE mailbox = ? AND folder = ? AND kind = ?`,
		mailbox, folder, string(kind)).Scan(&state)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read sync state: %w", err)
	}
	return state, nil
}

// SaveSyncState stores the SyncState returned by the last batch.
func (s *Store) SaveSyncState(ctx context.Context, mailbox, folder string, kind CursorKind, state string, complete bool) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sync_states (mailbox, folder, kind, sync_state, complete, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (mailbox, folder, kind)
		DO UPDATE SET sync_state = excluded.sync_state, complete = excluded.complete, updated_at = excluded.updated_at`,
		mailbox, folder, string(kind), state, complete, s.now().Unix())
	if err != nil {
		return fmt.Errorf("save sync state: %w", err)
	}
	return nil
}

// ResetSyncState forgets the SyncState of folder so the next sync starts
// from scratch.
func (s *Store) ResetSyncState(ctx context.Context, mailbox, folder string, kind CursorKind) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM sync_states WHERE mailbox = ? AND folder = ? AND kind = ?`,
		mailbox, folder, string(kind))
	if err != nil {
		return fmt.Errorf("reset sync state: %w", err)
	}
	return nil
}

// Cursors lists the stored cursors of mailbox ordered by folder and kind.
func (s *Store) Cursors(ctx context.Context, mailbox string) ([]Cursor, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT folder, kind, sync_state, complete, updated_at FROM sync_states
		WHERE mailbox = ? ORDER BY folder, kind`, mailbox)
	if err != nil {
		return nil, fmt.Errorf("list cursors: %w", err)
	}
	defer rows.Close()

	var out []Cursor
	for rows.Next() {
		c := Cursor{Mailbox: mailbox}
		var kind string
		var updated int64
		if err := rows.Scan(&c.Folder, &kind, &c.SyncState, &c.Complete, &updated); err != nil {
			return nil, fmt.Errorf("scan cursor: %w", err)
		}
		c.Kind = CursorKind(kind)
		c.UpdatedAt = time.Unix(updated, 0)
		out = append(out, c)
	}
	return out, rows.Err()
}

// SaveSubscription stores the current watermark of sub.
func (s *Store) SaveSubscription(ctx context.Context, mailbox string, sub *ews.Subscription) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO subscriptions (mailbox, id, watermark, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT (mailbox, id)
		DO UPDATE SET watermark = excluded.watermark, updated_at = excluded.updated_at`,
		mailbox, sub.ID, sub.Watermark, s.now().Unix())
	if err != nil {
		return fmt.Errorf("save subscription: %w", err)
	}
	return nil
}

// LastSubscription returns the most recently saved subscription of mailbox.
func (s *Store) LastSubscription(ctx context.Context, mailbox string) (*ews.Subscription, error) {
	sub := &ews.Subscription{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, watermark FROM subscriptions WHERE mailbox = ?
		ORDER BY updated_at DESC, rowid DESC LIMIT 1`, mailbox).Scan(&sub.ID, &sub.Watermark)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSubscription
	}
	if err != nil {
		return nil, fmt.Errorf("read subscription: %w", err)
	}
	return sub, nil
}

// DeleteSubscription forgets a subscription.
func (s *Store) DeleteSubscription(ctx context.Context, mailbox, id string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM subscriptions WHERE mailbox = ? AND id = ?`, mailbox, id)
	if err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}
	return nil
}
