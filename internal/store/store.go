// Package store persists user profiles, questionnaire responses, and
// generated documents. Match results are deliberately not stored; they are
// recomputed from the raw inputs on every request.
package store

import (
	"context"

	"jobcraft/internal/types"
)

// Profile is a stored profile record.
type Profile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

// Store is the persistence interface used by the CLI and the HTTP server.
type Store interface {
	// CreateProfile creates a new empty profile and returns it.
	CreateProfile(ctx context.Context, name string) (*Profile, error)

	// GetProfile returns a profile by ID.
	GetProfile(ctx context.Context, id string) (*Profile, error)

	// ListProfiles returns all profiles, newest first.
	ListProfiles(ctx context.Context) ([]Profile, error)

	// DeleteProfile removes a profile together with its stored responses.
	// Generated documents keep their profile reference for audit purposes.
	DeleteProfile(ctx context.Context, id string) error

	// SaveResponses upserts questionnaire responses for a profile. A
	// response replaces any earlier answer to the exact same question text.
	SaveResponses(ctx context.Context, profileID string, responses []types.QuestionnaireResponse) error

	// GetResponses returns all stored responses for a profile.
	GetResponses(ctx context.Context, profileID string) ([]types.QuestionnaireResponse, error)

	// SaveDocument stores a generated document record.
	SaveDocument(ctx context.Context, doc *types.GeneratedDocument) error

	// GetDocument returns a stored document by ID.
	GetDocument(ctx context.Context, id string) (*types.GeneratedDocument, error)

	// ListDocuments returns document records, optionally filtered by
	// profile ID, newest first.
	ListDocuments(ctx context.Context, profileID string) ([]types.GeneratedDocument, error)

	// DeleteDocument removes a stored document by ID.
	DeleteDocument(ctx context.Context, id string) error

	// Close releases the underlying database handle.
	Close() error
}
