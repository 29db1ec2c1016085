package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dshills/partmatch-mcp/pkg/types"
)

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when trying to create a duplicate entity
	ErrAlreadyExists = errors.New("already exists")
)

// SQLiteStorage implements the Storage interface using SQLite
type SQLiteStorage struct {
	db *sql.DB
}

// openDatabase opens a SQLite database with appropriate settings
func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// SQLite benefits from a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return db, nil
}

// NewSQLiteStorage creates a new SQLite storage instance
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	db, err := openDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := ApplyMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// querier is an interface that both *sql.DB and *sql.Tx implement
type querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Cross-reference operations

// addCrossReferenceWithQuerier is the internal implementation that uses a querier
func (s *SQLiteStorage) addCrossReferenceWithQuerier(ctx context.Context, q querier, xref *CrossReference) error {
	xref.Canonicalize()
	if xref.MPNA == "" || xref.MPNB == "" {
		return fmt.Errorf("%w: blank MPN in cross-reference", types.ErrMalformedInput)
	}
	if xref.Source == "" {
		xref.Source = "manual"
	}

	query := `
		INSERT OR IGNORE INTO cross_references (mpn_a, mpn_b, source, note, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	now := time.Now()
	result, err := q.ExecContext(ctx, query, xref.MPNA, xref.MPNB, xref.Source, xref.Note, now)
	if err != nil {
		return fmt.Errorf("failed to add cross-reference: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrAlreadyExists
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	xref.ID = id
	xref.CreatedAt = now
	return nil
}

func (s *SQLiteStorage) AddCrossReference(ctx context.Context, xref *CrossReference) error {
	return s.addCrossReferenceWithQuerier(ctx, s.db, xref)
}

// ImportCrossReferences adds a batch of pairs in a single transaction.
// Duplicates are skipped, not errors; the count of newly added pairs is
// returned.
func (s *SQLiteStorage) ImportCrossReferences(ctx context.Context, xrefs []*CrossReference) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	added := 0
	for _, xref := range xrefs {
		err := s.addCrossReferenceWithQuerier(ctx, tx, xref)
		if errors.Is(err, ErrAlreadyExists) {
			continue
		}
		if err != nil {
			return 0, err
		}
		added++
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return added, nil
}

func (s *SQLiteStorage) ListCrossReferences(ctx context.Context) ([]*CrossReference, error) {
	query := `
		SELECT id, mpn_a, mpn_b, source, COALESCE(note, ''), created_at
		FROM cross_references
		ORDER BY mpn_a, mpn_b
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cross-references: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []*CrossReference
	for rows.Next() {
		var xref CrossReference
		if err := rows.Scan(&xref.ID, &xref.MPNA, &xref.MPNB, &xref.Source, &xref.Note, &xref.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &xref)
	}
	return out, rows.Err()
}

func (s *SQLiteStorage) DeleteCrossReference(ctx context.Context, mpnA, mpnB string) error {
	pair := CrossReference{MPNA: mpnA, MPNB: mpnB}
	pair.Canonicalize()

	result, err := s.db.ExecContext(ctx,
		"DELETE FROM cross_references WHERE mpn_a = ? AND mpn_b = ?", pair.MPNA, pair.MPNB)
	if err != nil {
		return fmt.Errorf("failed to delete cross-reference: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Audit operations

func (s *SQLiteStorage) RecordClassification(ctx context.Context, rec *ClassificationRecord) error {
	query := `
		INSERT INTO classifications (mpn, component_type, manufacturer, package_code, series, tier, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	now := time.Now()
	result, err := s.db.ExecContext(ctx, query,
		rec.MPN, string(rec.Type), string(rec.Manufacturer),
		rec.PackageCode, rec.Series, string(rec.Tier), now)
	if err != nil {
		return fmt.Errorf("failed to record classification: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	rec.ID = id
	rec.CreatedAt = now
	return nil
}

func (s *SQLiteStorage) ListClassifications(ctx context.Context, mpn string, limit int) ([]*ClassificationRecord, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT id, mpn, component_type, manufacturer,
		       COALESCE(package_code, ''), COALESCE(series, ''), tier, created_at
		FROM classifications
	`
	args := []interface{}{}
	if mpn != "" {
		query += " WHERE mpn = ?"
		args = append(args, types.NormalizeMPN(mpn))
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list classifications: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []*ClassificationRecord
	for rows.Next() {
		var rec ClassificationRecord
		var componentType, manufacturer, tier string
		if err := rows.Scan(&rec.ID, &rec.MPN, &componentType, &manufacturer,
			&rec.PackageCode, &rec.Series, &tier, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Type = types.ComponentType(componentType)
		rec.Manufacturer = types.RuleOwnerID(manufacturer)
		rec.Tier = types.ConfidenceTier(tier)
		out = append(out, &rec)
	}
	return out, rows.Err()
}

func (s *SQLiteStorage) RecordComparison(ctx context.Context, rec *ComparisonRecord) error {
	query := `
		INSERT INTO comparisons (mpn_a, mpn_b, profile, score, acceptable, short_circuited, unscored, reason, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	now := time.Now()
	result, err := s.db.ExecContext(ctx, query,
		rec.MPNA, rec.MPNB, rec.Profile, rec.Score,
		rec.Acceptable, rec.ShortCircuited, rec.Unscored, rec.Reason, now)
	if err != nil {
		return fmt.Errorf("failed to record comparison: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	rec.ID = id
	rec.CreatedAt = now
	return nil
}

func (s *SQLiteStorage) ListComparisons(ctx context.Context, limit int) ([]*ComparisonRecord, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT id, mpn_a, mpn_b, profile, score, acceptable, short_circuited, unscored,
		       COALESCE(reason, ''), created_at
		FROM comparisons
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list comparisons: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []*ComparisonRecord
	for rows.Next() {
		var rec ComparisonRecord
		if err := rows.Scan(&rec.ID, &rec.MPNA, &rec.MPNB, &rec.Profile, &rec.Score,
			&rec.Acceptable, &rec.ShortCircuited, &rec.Unscored, &rec.Reason, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &rec)
	}
	return out, rows.Err()
}

// Status operations

func (s *SQLiteStorage) GetStatus(ctx context.Context) (*StoreStatus, error) {
	status := &StoreStatus{
		SchemaVersion: CurrentSchemaVersion,
		BuildMode:     BuildMode,
	}

	if err := s.db.PingContext(ctx); err != nil {
		return status, nil
	}
	status.DatabaseAccessible = true

	counts := []struct {
		query string
		dest  *int
	}{
		{"SELECT COUNT(*) FROM cross_references", &status.CrossReferences},
		{"SELECT COUNT(*) FROM classifications", &status.Classifications},
		{"SELECT COUNT(*) FROM comparisons", &status.Comparisons},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("failed to count rows: %w", err)
		}
	}

	return status, nil
}
