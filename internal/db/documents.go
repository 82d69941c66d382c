package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateDocument inserts a new document for a user and returns its id.
func (db *DB) CreateDocument(ctx context.Context, userID uuid.UUID, title, templateID string, content, overrides []byte) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO documents (user_id, title, template_id, content, settings)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		userID, title, templateID, content, overrides,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create document: %w", err)
	}
	return id, nil
}

// GetDocument retrieves a document owned by userID, or nil when it does not
// exist or belongs to someone else.
func (db *DB) GetDocument(ctx context.Context, userID, docID uuid.UUID) (*DocumentRecord, error) {
	var rec DocumentRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, title, template_id, content, settings, created_at, updated_at
		 FROM documents WHERE id = $1 AND user_id = $2`,
		docID, userID,
	).Scan(&rec.ID, &rec.UserID, &rec.Title, &rec.TemplateID, &rec.Content, &rec.Settings, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return &rec, nil
}

// ListDocuments retrieves a user's documents, newest first.
func (db *DB) ListDocuments(ctx context.Context, userID uuid.UUID, limit int) ([]DocumentRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, title, template_id, content, settings, created_at, updated_at
		 FROM documents WHERE user_id = $1 ORDER BY updated_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []DocumentRecord
	for rows.Next() {
		var rec DocumentRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Title, &rec.TemplateID, &rec.Content, &rec.Settings, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, rec)
	}
	return docs, nil
}

// UpdateDocumentContent replaces a document's content JSON.
func (db *DB) UpdateDocumentContent(ctx context.Context, userID, docID uuid.UUID, content []byte) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE documents SET content = $1, updated_at = NOW() WHERE id = $2 AND user_id = $3`,
		content, docID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update document content: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("document not found: %s", docID)
	}
	return nil
}

// UpdateDocumentSettings replaces a document's override settings layer in
// one step. Reset-to-defaults passes an empty JSON object.
func (db *DB) UpdateDocumentSettings(ctx context.Context, userID, docID uuid.UUID, overrides []byte) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE documents SET settings = $1, updated_at = NOW() WHERE id = $2 AND user_id = $3`,
		overrides, docID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update document settings: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("document not found: %s", docID)
	}
	return nil
}

// UpdateDocumentTemplate switches a document's active template. The stored
// override layer is left untouched so user edits survive template changes.
func (db *DB) UpdateDocumentTemplate(ctx context.Context, userID, docID uuid.UUID, templateID string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE documents SET template_id = $1, updated_at = NOW() WHERE id = $2 AND user_id = $3`,
		templateID, docID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update document template: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("document not found: %s", docID)
	}
	return nil
}

// DeleteDocument removes a document owned by userID.
func (db *DB) DeleteDocument(ctx context.Context, userID, docID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM documents WHERE id = $1 AND user_id = $2`, docID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("document not found: %s", docID)
	}
	return nil
}
