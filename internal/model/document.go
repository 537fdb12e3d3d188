package model

import "time"

// Document review states.  A document is uploaded as pending and moves to
// approved or rejected exactly once in the normal flow.
const (
	DocumentStatusPending  = "pending"
	DocumentStatusApproved = "approved"
	DocumentStatusRejected = "rejected"
)

// Document categories mirror the three agreement artifact kinds handled
// by the service.
const (
	CategoryPKS    = "PKS"
	CategoryJuknis = "Juknis"
	CategoryPOC    = "POC"
)

// Document represents an uploaded artifact in the `documents` table.  The
// file itself lives in external storage; only the metadata supplied by the
// file-storage collaborator is kept here and never opened by this service.
//
// Fields:
//  ID             – primary key (UUID string).
//  Title          – display title.
//  Description    – optional free text.
//  FileName       – original file name.
//  FilePath       – storage path reference.
//  FileSize       – size in bytes.
//  MimeType       – content type as reported on upload.
//  UploadedBy     – id of the uploading user (soft reference, nullable).
//  Status         – pending, approved or rejected.
//  Category       – PKS, Juknis or POC.
//  ExpirationDate – optional validity end.
//  IsActive       – soft visibility flag.
//  Version        – version tag, defaults to "1.0".
//  CreatedAt      – creation timestamp.
//  UpdatedAt      – timestamp of last update.
type Document struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Description    *string    `json:"description"`
	FileName       string     `json:"fileName"`
	FilePath       string     `json:"filePath"`
	FileSize       int        `json:"fileSize"`
	MimeType       string     `json:"mimeType"`
	UploadedBy     *string    `json:"uploadedBy"`
	Status         string     `json:"status"`
	Category       string     `json:"category"`
	ExpirationDate *time.Time `json:"expirationDate"`
	IsActive       bool       `json:"isActive"`
	Version        string     `json:"version"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// InsertDocument is the upload payload.  Status defaults to pending and
// Version to "1.0" when empty; IsActive defaults to true when nil.
type InsertDocument struct {
	Title          string     `json:"title"`
	Description    *string    `json:"description"`
	FileName       string     `json:"fileName"`
	FilePath       string     `json:"filePath"`
	FileSize       int        `json:"fileSize"`
	MimeType       string     `json:"mimeType"`
	UploadedBy     *string    `json:"uploadedBy"`
	Status         string     `json:"status"`
	Category       string     `json:"category"`
	ExpirationDate *time.Time `json:"expirationDate"`
	IsActive       *bool      `json:"isActive"`
	Version        string     `json:"version"`
}

// DocumentUpdate is the partial update used by the review flow.  Nil
// fields are not modified.
type DocumentUpdate struct {
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	Status         *string    `json:"status"`
	Category       *string    `json:"category"`
	ExpirationDate *time.Time `json:"expirationDate"`
	IsActive       *bool      `json:"isActive"`
	Version        *string    `json:"version"`
}
