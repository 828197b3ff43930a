// Package form holds the single edit session of the doctors page: which
// record, if any, is being created or edited, and the draft being typed.
package form

import (
	"context"

	"github.com/jask/courierapp/internal/record"
	"github.com/jask/courierapp/internal/store"
)

// Mode is the state of the edit session.
type Mode int

const (
	Idle Mode = iota
	Creating
	Editing
)

func (m Mode) String() string {
	switch m {
	case Creating:
		return "creating"
	case Editing:
		return "editing"
	default:
		return "idle"
	}
}

// Target applies a submitted draft. *store.Store satisfies it.
type Target interface {
	Create(ctx context.Context, draft record.Draft) (store.Change, error)
	Update(ctx context.Context, id string, draft record.Draft) (store.Change, error)
}

// Session is the edit session. The zero value is Idle.
type Session struct {
	mode      Mode
	editingID string
	original  string
	Draft     record.Draft
}

func (s *Session) Mode() Mode { return s.mode }

func (s *Session) Open() bool { return s.mode != Idle }

// EditingID is the id under edit, or "" unless the mode is Editing.
func (s *Session) EditingID() string { return s.editingID }

// EditingName is the name the record had when editing began.
func (s *Session) EditingName() string { return s.original }

// BeginCreate opens a blank create session, discarding any open one.
func (s *Session) BeginCreate() {
	s.reset()
	s.mode = Creating
	s.Draft.Status = record.StatusActive
}

// BeginEdit opens an edit session prefilled from doc, discarding any open one.
func (s *Session) BeginEdit(doc record.Doctor) {
	s.reset()
	s.mode = Editing
	s.editingID = doc.ID
	s.original = doc.Name
	s.Draft = record.DraftOf(doc)
}

// Cancel discards the session without touching any record.
func (s *Session) Cancel() {
	s.reset()
}

// Submit validates the draft and applies it to target. On failure the
// session stays open with its draft so the user can correct it.
func (s *Session) Submit(ctx context.Context, target Target) (store.Change, error) {
	var (
		ch  store.Change
		err error
	)
	switch s.mode {
	case Creating:
		ch, err = target.Create(ctx, s.Draft)
	case Editing:
		ch, err = target.Update(ctx, s.editingID, s.Draft)
	default:
		return store.Change{}, ErrNoSession
	}
	if err != nil {
		return store.Change{}, err
	}
	s.reset()
	return ch, nil
}

func (s *Session) reset() {
	*s = Session{}
}
