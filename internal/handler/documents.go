package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rakhadavin/dukcapil-admin/internal/model"
)

// CreateDocument registers uploaded file metadata.  The binary itself is
// stored by the upload collaborator; only the reference lands here.
func (h *Handler) CreateDocument(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var in model.InsertDocument
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if in.Title == "" || in.FileName == "" || in.Category == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title, fileName and category required"})
	}
	if in.UploadedBy == nil {
		in.UploadedBy = &uid
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	doc, err := h.Store.CreateDocument(ctx, in)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create document failed"})
	}

	h.logActivity(c, &uid, model.ActivityUpload,
		fmt.Sprintf("uploaded document %q", doc.Title),
		map[string]any{"documentId": doc.ID, "fileName": doc.FileName})

	return c.JSON(http.StatusCreated, doc)
}

func (h *Handler) ListDocuments(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	docs, err := h.Store.GetAllDocuments(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch documents failed"})
	}
	return c.JSON(http.StatusOK, docs)
}

func (h *Handler) GetDocument(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	doc, found, err := h.Store.GetDocumentByID(ctx, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch document failed"})
	}
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "document not found"})
	}
	return c.JSON(http.StatusOK, doc)
}

// UpdateDocument applies a partial update.  A status change is the
// review decision, so it is also written to the audit trail.
func (h *Handler) UpdateDocument(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var upd model.DocumentUpdate
	if err := c.Bind(&upd); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	doc, found, err := h.Store.UpdateDocument(ctx, c.Param("id"), upd)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update document failed"})
	}
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "document not found"})
	}

	if upd.Status != nil {
		h.logActivity(c, &uid, model.ActivityReview,
			fmt.Sprintf("document %q marked %s", doc.Title, doc.Status),
			map[string]any{"documentId": doc.ID})
	}
	return c.JSON(http.StatusOK, doc)
}

func (h *Handler) DeleteDocument(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	found, err := h.Store.DeleteDocument(ctx, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete document failed"})
	}
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "document not found"})
	}
	return c.NoContent(http.StatusNoContent)
}
