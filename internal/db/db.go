// Package db provides PostgreSQL storage for resume import records.
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-importer/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// ImportRecord is one stored parse outcome.
type ImportRecord struct {
	ID         uuid.UUID         `json:"id"`
	Filename   string            `json:"filename"`
	Mimetype   string            `json:"mimetype"`
	Success    bool              `json:"success"`
	Confidence float64           `json:"confidence"`
	Result     types.ParseResult `json:"result"`
	CreatedAt  time.Time         `json:"created_at"`
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// SaveImport stores a parse result under a fresh import ID and returns it.
func (db *DB) SaveImport(ctx context.Context, filename, mimetype string, result types.ParseResult) (uuid.UUID, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal parse result: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO imports (filename, mimetype, success, confidence, result)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		filename, mimetype, result.Success, result.Confidence, resultJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save import for %s: %w", filename, err)
	}
	return id, nil
}

// GetImport retrieves a stored import record by ID. Returns nil when no
// record exists.
func (db *DB) GetImport(ctx context.Context, id uuid.UUID) (*ImportRecord, error) {
	record := ImportRecord{ID: id}
	var resultJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT filename, mimetype, success, confidence, result, created_at
		 FROM imports WHERE id = $1`,
		id,
	).Scan(&record.Filename, &record.Mimetype, &record.Success, &record.Confidence, &resultJSON, &record.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get import %s: %w", id, err)
	}

	if err := json.Unmarshal(resultJSON, &record.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored result for %s: %w", id, err)
	}
	return &record, nil
}

// ListImports returns the most recent import records, newest first.
func (db *DB) ListImports(ctx context.Context, limit int) ([]ImportRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, filename, mimetype, success, confidence, result, created_at
		 FROM imports ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list imports: %w", err)
	}
	defer rows.Close()

	var records []ImportRecord
	for rows.Next() {
		var record ImportRecord
		var resultJSON []byte
		if err := rows.Scan(&record.ID, &record.Filename, &record.Mimetype,
			&record.Success, &record.Confidence, &resultJSON, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan import row: %w", err)
		}
		if err := json.Unmarshal(resultJSON, &record.Result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal stored result for %s: %w", record.ID, err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
