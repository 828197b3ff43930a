// Package store owns the session's collections: the doctor directory with
// its full operation set, the drivers roster and the orders board.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jask/courierapp/internal/record"
)

const kindDoctor = "doctor"

// Change is the outcome of a mutation: the affected record and the
// collection as it stands afterwards.
type Change struct {
	Record     record.Doctor
	Collection []record.Doctor
}

// Store is the authoritative doctor collection for one session. Every
// mutation is validated and looked up before the backend is touched, so a
// failed call leaves the collection as it was.
type Store struct {
	backend Backend
	newID   func() string
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithIDs replaces the id generator (uuid v4 by default).
func WithIDs(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithClock replaces the source of the join date.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) { s.now = fn }
}

// New returns a Store over backend.
func New(backend Backend, opts ...Option) *Store {
	s := &Store{backend: backend, newID: uuid.NewString, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// List returns the whole collection in insertion order.
func (s *Store) List(ctx context.Context) ([]record.Doctor, error) {
	docs, err := s.backend.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	return docs, nil
}

// Create appends a new record built from draft.
func (s *Store) Create(ctx context.Context, draft record.Draft) (Change, error) {
	if err := draft.Validate(); err != nil {
		return Change{}, err
	}
	id, err := s.freshID(ctx)
	if err != nil {
		return Change{}, err
	}
	doc := record.NewDoctor(id, draft, s.now())
	if err := s.backend.Insert(ctx, doc); err != nil {
		return Change{}, fmt.Errorf("create doctor: %w", err)
	}
	return s.changed(ctx, doc)
}

// Read returns the record with id.
func (s *Store) Read(ctx context.Context, id string) (record.Doctor, error) {
	doc, ok, err := s.backend.Get(ctx, id)
	if err != nil {
		return record.Doctor{}, fmt.Errorf("read doctor %s: %w", id, err)
	}
	if !ok {
		return record.Doctor{}, &record.NotFoundError{Kind: kindDoctor, ID: id}
	}
	return doc, nil
}

// Update replaces the editable fields of the record with id.
func (s *Store) Update(ctx context.Context, id string, draft record.Draft) (Change, error) {
	if err := draft.Validate(); err != nil {
		return Change{}, err
	}
	cur, err := s.Read(ctx, id)
	if err != nil {
		return Change{}, err
	}
	doc := cur.Apply(draft)
	if err := s.replace(ctx, doc); err != nil {
		return Change{}, err
	}
	return s.changed(ctx, doc)
}

// Delete removes the record with id. There is no undo.
func (s *Store) Delete(ctx context.Context, id string) (Change, error) {
	cur, err := s.Read(ctx, id)
	if err != nil {
		return Change{}, err
	}
	ok, err := s.backend.Remove(ctx, id)
	if err != nil {
		return Change{}, fmt.Errorf("delete doctor %s: %w", id, err)
	}
	if !ok {
		return Change{}, &record.NotFoundError{Kind: kindDoctor, ID: id}
	}
	return s.changed(ctx, cur)
}

// ToggleStatus flips the record between active and inactive.
func (s *Store) ToggleStatus(ctx context.Context, id string) (Change, error) {
	cur, err := s.Read(ctx, id)
	if err != nil {
		return Change{}, err
	}
	cur.Status = cur.Status.Toggled()
	if err := s.replace(ctx, cur); err != nil {
		return Change{}, err
	}
	return s.changed(ctx, cur)
}

// Filter returns the records whose name, email or specialization contain
// query, ignoring case, in collection order. A blank query matches all.
func (s *Store) Filter(ctx context.Context, query string) ([]record.Doctor, error) {
	docs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]record.Doctor, 0, len(docs))
	for _, d := range docs {
		if d.Matches(query) {
			out = append(out, d)
		}
	}
	return out, nil
}

// Stats summarizes the whole collection.
func (s *Store) Stats(ctx context.Context) (record.Stats, error) {
	docs, err := s.List(ctx)
	if err != nil {
		return record.Stats{}, err
	}
	return record.Summarize(docs), nil
}

func (s *Store) replace(ctx context.Context, doc record.Doctor) error {
	ok, err := s.backend.Replace(ctx, doc)
	if err != nil {
		return fmt.Errorf("update doctor %s: %w", doc.ID, err)
	}
	if !ok {
		return &record.NotFoundError{Kind: kindDoctor, ID: doc.ID}
	}
	return nil
}

func (s *Store) changed(ctx context.Context, doc record.Doctor) (Change, error) {
	docs, err := s.List(ctx)
	if err != nil {
		return Change{}, err
	}
	return Change{Record: doc, Collection: docs}, nil
}

// freshID draws ids until one is unused. A custom generator that keeps
// colliding is reported instead of looping forever.
func (s *Store) freshID(ctx context.Context) (string, error) {
	for range 8 {
		id := s.newID()
		if id == "" {
			continue
		}
		_, taken, err := s.backend.Get(ctx, id)
		if err != nil {
			return "", fmt.Errorf("check id %s: %w", id, err)
		}
		if !taken {
			return id, nil
		}
	}
	return "", fmt.Errorf("create doctor: id generator produced no unused id")
}
