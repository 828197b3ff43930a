package store

import (
	"context"
	"database/sql"
	"slices"

	"github.com/jask/courierapp/internal/database/repository"
	"github.com/jask/courierapp/internal/record"
)

// Backend keeps the ordered doctor collection. Implementations do no
// validation; Store checks everything before it writes.
type Backend interface {
	List(ctx context.Context) ([]record.Doctor, error)
	Get(ctx context.Context, id string) (record.Doctor, bool, error)
	Insert(ctx context.Context, d record.Doctor) error
	// Replace overwrites the record with d.ID in place.
	Replace(ctx context.Context, d record.Doctor) (bool, error)
	Remove(ctx context.Context, id string) (bool, error)
}

// Memory is a Backend over a plain slice.
type Memory struct {
	docs []record.Doctor
}

// NewMemory returns a backend holding a copy of seed.
func NewMemory(seed []record.Doctor) *Memory {
	return &Memory{docs: slices.Clone(seed)}
}

func (m *Memory) List(context.Context) ([]record.Doctor, error) {
	return slices.Clone(m.docs), nil
}

func (m *Memory) Get(_ context.Context, id string) (record.Doctor, bool, error) {
	if i := m.index(id); i >= 0 {
		return m.docs[i], true, nil
	}
	return record.Doctor{}, false, nil
}

func (m *Memory) Insert(_ context.Context, d record.Doctor) error {
	m.docs = append(m.docs, d)
	return nil
}

func (m *Memory) Replace(_ context.Context, d record.Doctor) (bool, error) {
	i := m.index(d.ID)
	if i < 0 {
		return false, nil
	}
	m.docs[i] = d
	return true, nil
}

func (m *Memory) Remove(_ context.Context, id string) (bool, error) {
	i := m.index(id)
	if i < 0 {
		return false, nil
	}
	m.docs = slices.Delete(m.docs, i, i+1)
	return true, nil
}

func (m *Memory) index(id string) int {
	return slices.IndexFunc(m.docs, func(d record.Doctor) bool { return d.ID == id })
}

// SQLite is a Backend over a session database.
type SQLite struct {
	repo *repository.DoctorRepo
}

// NewSQLite wraps an already migrated database.
func NewSQLite(db *sql.DB) *SQLite {
	return &SQLite{repo: repository.NewDoctorRepo(db)}
}

func (s *SQLite) List(ctx context.Context) ([]record.Doctor, error) {
	return s.repo.List(ctx)
}

func (s *SQLite) Get(ctx context.Context, id string) (record.Doctor, bool, error) {
	d, err := s.repo.Get(ctx, id)
	if err != nil || d == nil {
		return record.Doctor{}, false, err
	}
	return *d, true, nil
}

func (s *SQLite) Insert(ctx context.Context, d record.Doctor) error {
	return s.repo.Insert(ctx, d)
}

func (s *SQLite) Replace(ctx context.Context, d record.Doctor) (bool, error) {
	return s.repo.Update(ctx, d)
}

func (s *SQLite) Remove(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}
