package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"jobcraft/internal/errors"
	"jobcraft/internal/types"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store on a local SQLite database file.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens (or creates) the database at path and ensures the schema.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, errors.NewStoreError(errors.ErrCodeStoreFailed,
				fmt.Sprintf("failed to create store directory %s", dir), err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.NewStoreError(errors.ErrCodeStoreFailed, "failed to open database", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, errors.NewStoreError(errors.ErrCodeStoreFailed, "failed to initialize schema", err)
	}

	return &SQLiteStore{db: db}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS profiles (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS responses (
		profile_id TEXT NOT NULL,
		category   TEXT NOT NULL,
		question   TEXT NOT NULL,
		answer     TEXT NOT NULL,
		weight     REAL NOT NULL DEFAULT 1.0,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (profile_id, question),
		FOREIGN KEY (profile_id) REFERENCES profiles(id)
	);
	CREATE TABLE IF NOT EXISTS documents (
		id         TEXT PRIMARY KEY,
		type       TEXT NOT NULL,
		title      TEXT NOT NULL,
		content    TEXT NOT NULL,
		job_title  TEXT,
		company    TEXT,
		profile_id TEXT,
		created_at TEXT NOT NULL
	);`)
	return err
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateProfile creates a new empty profile.
func (s *SQLiteStore) CreateProfile(ctx context.Context, name string) (*Profile, error) {
	profile := &Profile{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO profiles (id, name, created_at) VALUES (?, ?, ?)`,
		profile.ID, profile.Name, profile.CreatedAt)
	if err != nil {
		return nil, errors.NewStoreError(errors.ErrCodeStoreFailed, "failed to create profile", err)
	}
	return profile, nil
}

// GetProfile returns a profile by ID.
func (s *SQLiteStore) GetProfile(ctx context.Context, id string) (*Profile, error) {
	var profile Profile
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM profiles WHERE id = ?`, id).
		Scan(&profile.ID, &profile.Name, &profile.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, errors.NewStoreError(errors.ErrCodeNotFound,
			fmt.Sprintf("profile not found: %s", id), nil)
	}
	if err != nil {
		return nil, errors.NewStoreError(errors.ErrCodeStoreFailed, "failed to load profile", err)
	}
	return &profile, nil
}

// ListProfiles returns all profiles, newest first.
func (s *SQLiteStore) ListProfiles(ctx context.Context) ([]Profile, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM profiles ORDER BY created_at DESC`)
	if err != nil {
		return nil, errors.NewStoreError(errors.ErrCodeStoreFailed, "failed to list profiles", err)
	}
	defer rows.Close()

	var profiles []Profile
	for rows.Next() {
		var p Profile
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, errors.NewStoreError(errors.ErrCodeStoreFailed, "failed to scan profile", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// DeleteProfile removes a profile and its responses in one transaction.
func (s *SQLiteStore) DeleteProfile(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewStoreError(errors.ErrCodeStoreFailed, "failed to begin transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM responses WHERE profile_id = ?`, id); err != nil {
		return errors.NewStoreError(errors.ErrCodeStoreFailed, "failed to delete responses", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return errors.NewStoreError(errors.ErrCodeStoreFailed, "failed to delete profile", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return errors.NewStoreError(errors.ErrCodeNotFound,
			fmt.Sprintf("profile not found: %s", id), nil)
	}

	if err := tx.Commit(); err != nil {
		return errors.NewStoreError(errors.ErrCodeStoreFailed, "failed to commit profile deletion", err)
	}
	return nil
}

// SaveResponses upserts responses keyed by exact question text.
func (s *SQLiteStore) SaveResponses(ctx context.Context, profileID string, responses []types.QuestionnaireResponse) error {
	if _, err := s.GetProfile(ctx, profileID); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewStoreError(errors.ErrCodeStoreFailed, "failed to begin transaction", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, r := range responses {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO responses (profile_id, category, question, answer, weight, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?)
			 ON CONFLICT (profile_id, question)
			 DO UPDATE SET category = excluded.category,
			               answer   = excluded.answer,
			               weight   = excluded.weight,
			               updated_at = excluded.updated_at`,
			profileID, r.Category, r.Question, r.Answer, r.Weight, now)
		if err != nil {
			return errors.NewStoreError(errors.ErrCodeStoreFailed, "failed to save response", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.NewStoreError(errors.ErrCodeStoreFailed, "failed to commit responses", err)
	}
	return nil
}

// GetResponses returns all stored responses for a profile.
func (s *SQLiteStore) GetResponses(ctx context.Context, profileID string) ([]types.QuestionnaireResponse, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT category, question, answer, weight FROM responses
		 WHERE profile_id = ? ORDER BY category, question`, profileID)
	if err != nil {
		return nil, errors.NewStoreError(errors.ErrCodeStoreFailed, "failed to load responses", err)
	}
	defer rows.Close()

	var responses []types.QuestionnaireResponse
	for rows.Next() {
		var r types.QuestionnaireResponse
		if err := rows.Scan(&r.Category, &r.Question, &r.Answer, &r.Weight); err != nil {
			return nil, errors.NewStoreError(errors.ErrCodeStoreFailed, "failed to scan response", err)
		}
		responses = append(responses, r)
	}
	return responses, rows.Err()
}

// SaveDocument stores a generated document record.
func (s *SQLiteStore) SaveDocument(ctx context.Context, doc *types.GeneratedDocument) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (id, type, title, content, job_title, company, profile_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		doc.ID, doc.Type, doc.Title, doc.Content, doc.JobTitle, doc.Company, doc.ProfileID, doc.CreatedAt)
	if err != nil {
		return errors.NewStoreError(errors.ErrCodeStoreFailed, "failed to save document", err)
	}
	return nil
}

// GetDocument returns a stored document by ID.
func (s *SQLiteStore) GetDocument(ctx context.Context, id string) (*types.GeneratedDocument, error) {
	var doc types.GeneratedDocument
	err := s.db.QueryRowContext(ctx,
		`SELECT id, type, title, content, job_title, company, profile_id, created_at
		 FROM documents WHERE id = ?`, id).
		Scan(&doc.ID, &doc.Type, &doc.Title, &doc.Content, &doc.JobTitle, &doc.Company, &doc.ProfileID, &doc.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, errors.NewStoreError(errors.ErrCodeNotFound,
			fmt.Sprintf("document not found: %s", id), nil)
	}
	if err != nil {
		return nil, errors.NewStoreError(errors.ErrCodeStoreFailed, "failed to load document", err)
	}
	return &doc, nil
}

// ListDocuments returns document records, optionally filtered by profile ID.
func (s *SQLiteStore) ListDocuments(ctx context.Context, profileID string) ([]types.GeneratedDocument, error) {
	query := `SELECT id, type, title, content, job_title, company, profile_id, created_at
	          FROM documents ORDER BY created_at DESC`
	args := []any{}
	if profileID != "" {
		query = `SELECT id, type, title, content, job_title, company, profile_id, created_at
		         FROM documents WHERE profile_id = ? ORDER BY created_at DESC`
		args = append(args, profileID)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.NewStoreError(errors.ErrCodeStoreFailed, "failed to list documents", err)
	}
	defer rows.Close()

	var docs []types.GeneratedDocument
	for rows.Next() {
		var doc types.GeneratedDocument
		if err := rows.Scan(&doc.ID, &doc.Type, &doc.Title, &doc.Content, &doc.JobTitle, &doc.Company, &doc.ProfileID, &doc.CreatedAt); err != nil {
			return nil, errors.NewStoreError(errors.ErrCodeStoreFailed, "failed to scan document", err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// DeleteDocument removes a stored document by ID.
func (s *SQLiteStore) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE id = ?`, id)
	if err != nil {
		return errors.NewStoreError(errors.ErrCodeStoreFailed, "failed to delete document", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return errors.NewStoreError(errors.ErrCodeNotFound,
			fmt.Sprintf("document not found: %s", id), nil)
	}
	return nil
}
