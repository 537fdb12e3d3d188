// Package mysqlstore implements store.Store on MySQL through database/sql.
// Every operation is a single statement (or a short statement sequence on
// one connection pool); there are no cross-entity transactions, matching
// the contract's lack of cross-entity guarantees.  The DSN must carry
// parseTime=true so DATETIME columns scan into time.Time.
package mysqlstore

import (
	"database/sql"

	"github.com/rakhadavin/dukcapil-admin/internal/store"
)

type Store struct {
	db *sql.DB
}

var _ store.Store = (*Store)(nil)

// New wraps an open connection pool.  Callers run database.EnsureSchema
// before serving traffic.
func New(db *sql.DB) *Store { return &Store{db: db} }
