package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rakhadavin/dukcapil-admin/internal/model"
)

// CreateDocument stores a new document with a fresh id.  Status defaults
// to pending and Version to "1.0" when the caller leaves them empty.
func (s *Store) CreateDocument(_ context.Context, in model.InsertDocument) (model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	d := model.Document{
		ID:             uuid.NewString(),
		Title:          in.Title,
		Description:    in.Description,
		FileName:       in.FileName,
		FilePath:       in.FilePath,
		FileSize:       in.FileSize,
		MimeType:       in.MimeType,
		UploadedBy:     in.UploadedBy,
		Status:         in.Status,
		Category:       in.Category,
		ExpirationDate: in.ExpirationDate,
		IsActive:       true,
		Version:        in.Version,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if d.Status == "" {
		d.Status = model.DocumentStatusPending
	}
	if d.Version == "" {
		d.Version = "1.0"
	}
	if in.IsActive != nil {
		d.IsActive = *in.IsActive
	}
	s.documents[d.ID] = d
	return d, nil
}

// GetAllDocuments returns every document in unspecified order.
func (s *Store) GetAllDocuments(_ context.Context) ([]model.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Document, 0, len(s.documents))
	for _, d := range s.documents {
		out = append(out, d)
	}
	return out, nil
}

// GetDocumentByID returns the document and whether it exists.
func (s *Store) GetDocumentByID(_ context.Context, id string) (model.Document, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.documents[id]
	return d, ok, nil
}

// UpdateDocument applies the non-nil fields and stamps UpdatedAt.  Used
// for the pending->approved/rejected review transition.
func (s *Store) UpdateDocument(_ context.Context, id string, upd model.DocumentUpdate) (model.Document, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.documents[id]
	if !ok {
		return model.Document{}, false, nil
	}
	if upd.Title != nil {
		d.Title = *upd.Title
	}
	if upd.Description != nil {
		d.Description = upd.Description
	}
	if upd.Status != nil {
		d.Status = *upd.Status
	}
	if upd.Category != nil {
		d.Category = *upd.Category
	}
	if upd.ExpirationDate != nil {
		d.ExpirationDate = upd.ExpirationDate
	}
	if upd.IsActive != nil {
		d.IsActive = *upd.IsActive
	}
	if upd.Version != nil {
		d.Version = *upd.Version
	}
	d.UpdatedAt = time.Now()
	s.documents[id] = d
	return d, true, nil
}

// DeleteDocument removes the record and reports whether it existed.
// Agreements referencing the document are left alone; dangling ids are
// an accepted condition.
func (s *Store) DeleteDocument(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.documents[id]; !ok {
		return false, nil
	}
	delete(s.documents, id)
	return true, nil
}
