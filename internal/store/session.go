package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jask/courierapp/internal/database"
	"github.com/jask/courierapp/internal/record"
)

// Backend names accepted by OpenSession.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Session bundles the collections of one UI session.
type Session struct {
	Doctors *Store
	Drivers *Roster
	Orders  *Board

	db *sql.DB
}

// OpenSession builds the session's collections on the named backend,
// pre-populated with seed.
func OpenSession(ctx context.Context, backend string, seed record.Seed, opts ...Option) (*Session, error) {
	s := &Session{
		Drivers: NewRoster(seed.Drivers),
		Orders:  NewBoard(seed.Orders),
	}
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendMemory:
		s.Doctors = New(NewMemory(seed.Doctors), opts...)
	case BackendSQLite:
		db, err := database.OpenSession()
		if err != nil {
			return nil, err
		}
		if err := database.SeedDefaults(ctx, db, seed.Doctors); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("seed session db: %w", err)
		}
		s.db = db
		s.Doctors = New(NewSQLite(db), opts...)
	default:
		return nil, fmt.Errorf("unknown store backend %q (want %s or %s)", backend, BackendMemory, BackendSQLite)
	}
	return s, nil
}

// Close releases the session database, if any. The session's data is gone
// afterwards.
func (s *Session) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
