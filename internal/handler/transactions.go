package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rakhadavin/dukcapil-admin/internal/model"
)

// CreatePnbpTransaction records a payable service request.  Regular
// users create transactions for themselves; admins may name another
// payer.
func (h *Handler) CreatePnbpTransaction(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var in model.InsertPnbpTransaction
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if in.TransactionID == "" || in.Amount <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "transactionId and positive amount required"})
	}
	if in.UserID == "" || !isAdmin(c) {
		in.UserID = uid
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	t, err := h.Store.CreatePnbpTransaction(ctx, in)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create transaction failed"})
	}
	return c.JSON(http.StatusCreated, t)
}

// ListTransactions returns the caller's transactions; admins may inspect
// another user's with ?userId=.
func (h *Handler) ListTransactions(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if q := c.QueryParam("userId"); q != "" && isAdmin(c) {
		uid = q
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	txs, err := h.Store.GetUserTransactions(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "fetch transactions failed"})
	}
	return c.JSON(http.StatusOK, txs)
}

type transactionStatusReq struct {
	Status string `json:"status"`
}

// SettleTransaction overwrites a transaction's status with the settled
// outcome reported by the payment gateway.
func (h *Handler) SettleTransaction(c echo.Context) error {
	var req transactionStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	switch req.Status {
	case model.TransactionStatusPending, model.TransactionStatusCompleted, model.TransactionStatusFailed:
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	found, err := h.Store.UpdateTransactionStatus(ctx, c.Param("id"), req.Status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update transaction failed"})
	}
	if !found {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "transaction not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": req.Status})
}
