package model

import "time"

// PNBP transaction states.  A transaction starts pending and is settled
// exactly once into completed or failed.
const (
	TransactionStatusPending   = "pending"
	TransactionStatusCompleted = "completed"
	TransactionStatusFailed    = "failed"
)

// PnbpTransaction is a payment record for the fee-bearing (PNBP) service
// in the `pnbp_transactions` table.  Amount is in the smallest currency
// unit (rupiah).
//
// Fields:
//  ID              – primary key (UUID string).
//  UserID          – paying user (soft reference).
//  TransactionID   – external unique reference such as "TRX/2024/001".
//  ServiceType     – billed service, e.g. "akta_kelahiran".
//  Amount          – integer amount in rupiah.
//  Status          – pending, completed or failed.
//  PaymentMethod   – bank_transfer, virtual_account, e_wallet, ...
//  TransactionDate – when the payable request was issued.
//  PaymentDate     – when payment settled (nullable until then).
//  ReferenceNumber – payment gateway reference (nullable).
//  Notes           – free text (nullable).
//  CreatedAt       – creation timestamp.
type PnbpTransaction struct {
	ID              string     `json:"id"`
	UserID          string     `json:"userId"`
	TransactionID   string     `json:"transactionId"`
	ServiceType     *string    `json:"serviceType"`
	Amount          int        `json:"amount"`
	Status          string     `json:"status"`
	PaymentMethod   *string    `json:"paymentMethod"`
	TransactionDate time.Time  `json:"transactionDate"`
	PaymentDate     *time.Time `json:"paymentDate"`
	ReferenceNumber *string    `json:"referenceNumber"`
	Notes           *string    `json:"notes"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// InsertPnbpTransaction is the creation payload.  Status defaults to
// pending and TransactionDate to now when zero.
type InsertPnbpTransaction struct {
	UserID          string     `json:"userId"`
	TransactionID   string     `json:"transactionId"`
	ServiceType     *string    `json:"serviceType"`
	Amount          int        `json:"amount"`
	Status          string     `json:"status"`
	PaymentMethod   *string    `json:"paymentMethod"`
	TransactionDate *time.Time `json:"transactionDate"`
	ReferenceNumber *string    `json:"referenceNumber"`
	Notes           *string    `json:"notes"`
}
