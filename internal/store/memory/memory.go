// Package memory implements store.Store over plain maps.  It backs tests
// and dev mode and is the behavioral reference for the MySQL
// implementation.
package memory

import (
	"sync"

	"github.com/rakhadavin/dukcapil-admin/internal/model"
	"github.com/rakhadavin/dukcapil-admin/internal/store"
)

// Store keeps one id-keyed map per entity.  Echo serves requests from
// concurrent goroutines, so every operation takes the mutex; mutations
// that read-then-write (the quota increment in particular) run as a
// single critical section so concurrent increments are never lost.
type Store struct {
	mu            sync.RWMutex
	users         map[string]model.User
	documents     map[string]model.Document
	activities    map[string]model.Activity
	requests      map[string]model.Request
	notifications map[string]model.Notification
	agreements    map[string]model.Agreement
	quotaUsage    map[string]model.QuotaUsage
	transactions  map[string]model.PnbpTransaction
}

var _ store.Store = (*Store)(nil)

// New returns an empty in-memory store.  Call Seed for the dev fixture.
func New() *Store {
	return &Store{
		users:         make(map[string]model.User),
		documents:     make(map[string]model.Document),
		activities:    make(map[string]model.Activity),
		requests:      make(map[string]model.Request),
		notifications: make(map[string]model.Notification),
		agreements:    make(map[string]model.Agreement),
		quotaUsage:    make(map[string]model.QuotaUsage),
		transactions:  make(map[string]model.PnbpTransaction),
	}
}
