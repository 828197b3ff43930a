package form

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jask/courierapp/internal/record"
	"github.com/jask/courierapp/internal/store"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var _ Target = (*store.Store)(nil)

// mockTarget records calls; unset funcs succeed with an empty change.
type mockTarget struct {
	CreateFunc func(ctx context.Context, draft record.Draft) (store.Change, error)
	UpdateFunc func(ctx context.Context, id string, draft record.Draft) (store.Change, error)

	creates int
	updates int
}

func (m *mockTarget) Create(ctx context.Context, draft record.Draft) (store.Change, error) {
	m.creates++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, draft)
	}
	return store.Change{}, nil
}

func (m *mockTarget) Update(ctx context.Context, id string, draft record.Draft) (store.Change, error) {
	m.updates++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, draft)
	}
	return store.Change{}, nil
}

func seededStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(store.NewMemory(record.MustLoadSeed().Doctors))
}

func TestZeroSessionIsIdle(t *testing.T) {
	var s Session
	require.Equal(t, Idle, s.Mode())
	require.False(t, s.Open())

	_, err := s.Submit(context.Background(), &mockTarget{})
	require.ErrorIs(t, err, ErrNoSession)
}

func TestCreateFlow(t *testing.T) {
	ctx := context.Background()
	st := seededStore(t)
	var s Session

	s.BeginCreate()
	require.Equal(t, Creating, s.Mode())
	require.Equal(t, record.StatusActive, s.Draft.Status)

	s.Draft.Name = "Dr. Test"
	s.Draft.Email = "t@t.com"
	s.Draft.Phone = "555"
	s.Draft.Specialization = "Derm"
	ch, err := s.Submit(ctx, st)
	require.NoError(t, err)
	require.Len(t, ch.Collection, 4)
	require.Equal(t, record.StatusActive, ch.Record.Status)
	require.Equal(t, 0, ch.Record.TotalOrders)
	require.Equal(t, Idle, s.Mode())
	require.Equal(t, record.Draft{}, s.Draft)
}

func TestFailedSubmitKeepsSessionOpen(t *testing.T) {
	ctx := context.Background()
	st := seededStore(t)
	var s Session

	s.BeginCreate()
	s.Draft.Name = "Dr. Half"
	_, err := s.Submit(ctx, st)
	require.True(t, record.IsValidation(err))
	require.Equal(t, Creating, s.Mode())
	require.Equal(t, "Dr. Half", s.Draft.Name)

	docs, _ := st.List(ctx)
	require.Len(t, docs, 3)
}

func TestEditFlowPrefillsAndUpdates(t *testing.T) {
	ctx := context.Background()
	st := seededStore(t)
	doc, err := st.Read(ctx, "3")
	require.NoError(t, err)

	var s Session
	s.BeginEdit(doc)
	require.Equal(t, Editing, s.Mode())
	require.Equal(t, "3", s.EditingID())
	require.Equal(t, "Dr. Emily Rodriguez", s.EditingName())
	require.Equal(t, record.DraftOf(doc), s.Draft)

	s.Draft.Specialization = "Dermatology & Allergy"
	ch, err := s.Submit(ctx, st)
	require.NoError(t, err)
	require.Equal(t, "3", ch.Record.ID)
	require.Equal(t, doc.JoinDate, ch.Record.JoinDate)
	require.Equal(t, "Dermatology & Allergy", ch.Record.Specialization)
	require.False(t, s.Open())
}

func TestBeginningANewSessionCancelsTheOpenOne(t *testing.T) {
	target := &mockTarget{}
	var s Session

	s.BeginEdit(record.Doctor{ID: "1", Name: "Dr. One"})
	s.Draft.Name = "typed but abandoned"
	s.BeginCreate()

	require.Equal(t, Creating, s.Mode())
	require.Empty(t, s.EditingID())
	require.Empty(t, s.Draft.Name)

	s.BeginEdit(record.Doctor{ID: "2", Name: "Dr. Two"})
	require.Equal(t, "2", s.EditingID())

	_, err := s.Submit(context.Background(), target)
	require.NoError(t, err)
	require.Equal(t, 0, target.creates)
	require.Equal(t, 1, target.updates)
}

func TestCancelDiscardsWithoutCallingTarget(t *testing.T) {
	target := &mockTarget{}
	var s Session
	s.BeginCreate()
	s.Draft.Name = "x"
	s.Cancel()

	require.Equal(t, Idle, s.Mode())
	require.Equal(t, record.Draft{}, s.Draft)
	require.Zero(t, target.creates+target.updates)
}

func TestModeString(t *testing.T) {
	require.Equal(t, "idle", Idle.String())
	require.Equal(t, "creating", Creating.String())
	require.Equal(t, "editing", Editing.String())
}
