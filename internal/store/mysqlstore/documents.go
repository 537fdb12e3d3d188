package mysqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rakhadavin/dukcapil-admin/internal/model"
)

const documentCols = "id, title, description, file_name, file_path, file_size, mime_type, uploaded_by, status, category, expiration_date, is_active, version, created_at, updated_at"

func scanDocument(row *sql.Row) (model.Document, bool, error) {
	var d model.Document
	err := row.Scan(&d.ID, &d.Title, &d.Description, &d.FileName, &d.FilePath,
		&d.FileSize, &d.MimeType, &d.UploadedBy, &d.Status, &d.Category,
		&d.ExpirationDate, &d.IsActive, &d.Version, &d.CreatedAt, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Document{}, false, nil
	}
	if err != nil {
		return model.Document{}, false, err
	}
	return d, true, nil
}

func (s *Store) getDocument(ctx context.Context, id string) (model.Document, bool, error) {
	return scanDocument(s.db.QueryRowContext(ctx,
		"SELECT "+documentCols+" FROM documents WHERE id = ? LIMIT 1", id))
}

func (s *Store) CreateDocument(ctx context.Context, in model.InsertDocument) (model.Document, error) {
	status := in.Status
	if status == "" {
		status = model.DocumentStatusPending
	}
	version := in.Version
	if version == "" {
		version = "1.0"
	}
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}
	id := uuid.NewString()
	now := time.Now()
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO documents ("+documentCols+") VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)",
		id, in.Title, in.Description, in.FileName, in.FilePath, in.FileSize,
		in.MimeType, in.UploadedBy, status, in.Category, in.ExpirationDate,
		isActive, version, now, now)
	if err != nil {
		return model.Document{}, err
	}
	d, _, err := s.getDocument(ctx, id)
	return d, err
}

func (s *Store) GetAllDocuments(ctx context.Context) ([]model.Document, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT "+documentCols+" FROM documents")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Document, 0)
	for rows.Next() {
		var d model.Document
		if err := rows.Scan(&d.ID, &d.Title, &d.Description, &d.FileName, &d.FilePath,
			&d.FileSize, &d.MimeType, &d.UploadedBy, &d.Status, &d.Category,
			&d.ExpirationDate, &d.IsActive, &d.Version, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *Store) GetDocumentByID(ctx context.Context, id string) (model.Document, bool, error) {
	return s.getDocument(ctx, id)
}

func (s *Store) UpdateDocument(ctx context.Context, id string, upd model.DocumentUpdate) (model.Document, bool, error) {
	var c setClause
	if upd.Title != nil {
		c.set("title", *upd.Title)
	}
	if upd.Description != nil {
		c.set("description", *upd.Description)
	}
	if upd.Status != nil {
		c.set("status", *upd.Status)
	}
	if upd.Category != nil {
		c.set("category", *upd.Category)
	}
	if upd.ExpirationDate != nil {
		c.set("expiration_date", *upd.ExpirationDate)
	}
	if upd.IsActive != nil {
		c.set("is_active", *upd.IsActive)
	}
	if upd.Version != nil {
		c.set("version", *upd.Version)
	}
	c.set("updated_at", time.Now())
	args := append(c.args, id)
	if _, err := s.db.ExecContext(ctx,
		"UPDATE documents SET "+c.assignments()+" WHERE id = ?", args...); err != nil {
		return model.Document{}, false, err
	}
	return s.getDocument(ctx, id)
}

// DeleteDocument removes the row only; agreements keep their document_id
// even when it no longer resolves.
func (s *Store) DeleteDocument(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
