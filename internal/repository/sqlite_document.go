package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/tender/internal/db"
	"github.com/alexanderramin/tender/internal/domain"
)

// SQLiteDocumentRepo stores the metadata of uploaded RFP documents.
type SQLiteDocumentRepo struct {
	db db.DBTX
}

func NewSQLiteDocumentRepo(conn db.DBTX) *SQLiteDocumentRepo {
	return &SQLiteDocumentRepo{db: conn}
}

func (r *SQLiteDocumentRepo) Create(ctx context.Context, d *domain.Document) error {
	query := `INSERT INTO documents (id, project_id, name, mime_type, size_bytes, sha256, uploaded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		d.ID, d.ProjectID, d.Name, d.MIMEType, d.Size, d.SHA256,
		d.UploadedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting document: %w", err)
	}
	return nil
}

func (r *SQLiteDocumentRepo) GetByProject(ctx context.Context, projectID string) (*domain.Document, error) {
	query := `SELECT id, project_id, name, mime_type, size_bytes, sha256, uploaded_at
		FROM documents WHERE project_id = ?`
	var d domain.Document
	var uploadedAt string
	err := r.db.QueryRowContext(ctx, query, projectID).Scan(
		&d.ID, &d.ProjectID, &d.Name, &d.MIMEType, &d.Size, &d.SHA256, &uploadedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("document: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning document: %w", err)
	}
	if d.UploadedAt, err = time.Parse(time.RFC3339, uploadedAt); err != nil {
		return nil, fmt.Errorf("parsing uploaded_at: %w", err)
	}
	return &d, nil
}
