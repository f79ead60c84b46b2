package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/clir-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/clir-cli/internal/core/domain"
	"github.com/custodia-labs/clir-cli/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides access to
// all metadata store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.clir/data/clir.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".clir", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "clir.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// TranslationCache returns a TranslationCache interface backed by this store.
func (s *Store) TranslationCache() driven.TranslationCache {
	return &translationCache{store: s}
}

// BlobStore returns a BlobStore interface backed by this store.
func (s *Store) BlobStore() driven.BlobStore {
	return &blobStore{store: s}
}

// QueryLog returns a QueryLog interface backed by this store.
func (s *Store) QueryLog() driven.QueryLog {
	return &queryLog{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Translation Cache ====================

// translationCache implements driven.TranslationCache.
type translationCache struct {
	store *Store
}

var _ driven.TranslationCache = (*translationCache)(nil)

// Get retrieves a cached translation by its (text, source, target) key.
func (c *translationCache) Get(ctx context.Context, text, source, target string) (*domain.Translation, bool, error) {
	row := c.store.db.QueryRowContext(ctx, `
		SELECT text, source_lang, target_lang, translated_text, created_at
		FROM translations
		WHERE text = ? AND source_lang = ? AND target_lang = ?
	`, text, source, target)

	var entry domain.Translation
	if err := row.Scan(&entry.Text, &entry.SourceLang, &entry.TargetLang,
		&entry.TranslatedText, &entry.CreatedAtUnix); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("scanning translation: %w", err)
	}

	return &entry, true, nil
}

// Put stores a translation. Existing keys keep their first value, making
// the cache append-only.
func (c *translationCache) Put(ctx context.Context, entry domain.Translation) error {
	_, err := c.store.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO translations (text, source_lang, target_lang, translated_text, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, entry.Text, entry.SourceLang, entry.TargetLang, entry.TranslatedText, entry.CreatedAtUnix)

	if err != nil {
		return fmt.Errorf("saving translation: %w", err)
	}
	return nil
}

// ==================== Blob Store ====================

// blobStore implements driven.BlobStore.
type blobStore struct {
	store *Store
}

var _ driven.BlobStore = (*blobStore)(nil)

// Get retrieves a blob by name.
func (b *blobStore) Get(ctx context.Context, name string) ([]byte, error) {
	row := b.store.db.QueryRowContext(ctx, "SELECT data FROM blobs WHERE name = ?", name)

	var data []byte
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning blob: %w", err)
	}

	return data, nil
}

// Put stores or replaces a blob.
func (b *blobStore) Put(ctx context.Context, name string, data []byte) error {
	_, err := b.store.db.ExecContext(ctx, `
		INSERT INTO blobs (name, data, updated_at)
		VALUES (?, ?, unixepoch())
		ON CONFLICT(name) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`, name, data)

	if err != nil {
		return fmt.Errorf("saving blob: %w", err)
	}
	return nil
}

// Delete removes a blob. Missing blobs are not an error.
func (b *blobStore) Delete(ctx context.Context, name string) error {
	_, err := b.store.db.ExecContext(ctx, "DELETE FROM blobs WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("deleting blob: %w", err)
	}
	return nil
}

// ==================== Query Log ====================

// queryLog implements driven.QueryLog.
type queryLog struct {
	store *Store
}

var _ driven.QueryLog = (*queryLog)(nil)

// Append adds an entry to the query log.
func (l *queryLog) Append(ctx context.Context, entry domain.QueryLogEntry) error {
	_, err := l.store.db.ExecContext(ctx, `
		INSERT INTO query_log (id, query, translated_query, result_count, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, entry.ID, entry.Query, entry.TranslatedQuery, entry.ResultCount, entry.CreatedAtUnix)

	if err != nil {
		return fmt.Errorf("appending query log entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (l *queryLog) Recent(ctx context.Context, limit int) ([]domain.QueryLogEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := l.store.db.QueryContext(ctx, `
		SELECT id, query, translated_query, result_count, created_at
		FROM query_log
		ORDER BY created_at DESC, id
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying query log: %w", err)
	}
	defer rows.Close()

	var entries []domain.QueryLogEntry //nolint:prealloc // size unknown from query
	for rows.Next() {
		var entry domain.QueryLogEntry
		if err := rows.Scan(&entry.ID, &entry.Query, &entry.TranslatedQuery,
			&entry.ResultCount, &entry.CreatedAtUnix); err != nil {
			return nil, fmt.Errorf("scanning query log entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating query log: %w", err)
	}

	return entries, nil
}
