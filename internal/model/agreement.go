package model

import "time"

// Agreement lifecycle states.  Expiry is observed at read time via
// end_date; the store never flips active records to expired on its own.
const (
	AgreementStatusActive         = "active"
	AgreementStatusExpired        = "expired"
	AgreementStatusPendingRenewal = "pending_renewal"
)

// Agreement binds a user and a document into a formal record in the
// `agreements` table (PKS cooperation memoranda, Juknis technical
// guidelines, POC records).
//
// Fields:
//  ID                 – primary key (UUID string).
//  UserID             – owning user (soft reference).
//  DocumentID         – underlying document (soft reference, nullable).
//  Type               – PKS, Juknis or POC.
//  AgreementNumber    – registry number such as "PKS/2024/001".
//  StartDate          – validity start.
//  EndDate            – validity end; must not precede StartDate.
//  Status             – active, expired or pending_renewal.
//  RenewalRequested   – whether the owner asked for renewal.
//  RenewalRequestDate – set together with RenewalRequested.
//  CreatedAt          – creation timestamp.
//  UpdatedAt          – timestamp of last update.
type Agreement struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"userId"`
	DocumentID         *string    `json:"documentId"`
	Type               string     `json:"type"`
	AgreementNumber    *string    `json:"agreementNumber"`
	StartDate          *time.Time `json:"startDate"`
	EndDate            *time.Time `json:"endDate"`
	Status             string     `json:"status"`
	RenewalRequested   bool       `json:"renewalRequested"`
	RenewalRequestDate *time.Time `json:"renewalRequestDate"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// InsertAgreement is the administrative creation payload.  Status
// defaults to active when empty.
type InsertAgreement struct {
	UserID          string     `json:"userId"`
	DocumentID      *string    `json:"documentId"`
	Type            string     `json:"type"`
	AgreementNumber *string    `json:"agreementNumber"`
	StartDate       *time.Time `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
	Status          string     `json:"status"`
}

// AgreementUpdate is a partial update; nil fields are not modified.
type AgreementUpdate struct {
	DocumentID      *string    `json:"documentId"`
	Type            *string    `json:"type"`
	AgreementNumber *string    `json:"agreementNumber"`
	StartDate       *time.Time `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
	Status          *string    `json:"status"`
}
