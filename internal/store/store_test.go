package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/jask/courierapp/internal/record"
)

var today = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return today }

func counterIDs() func() string {
	n := 100
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// forEachBackend runs fn against a freshly seeded session on every backend.
func forEachBackend(t *testing.T, fn func(t *testing.T, s *Store)) {
	t.Helper()
	for _, backend := range []string{BackendMemory, BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			sess, err := OpenSession(context.Background(), backend, record.MustLoadSeed(),
				WithIDs(counterIDs()), WithClock(fixedClock))
			require.NoError(t, err)
			t.Cleanup(func() { _ = sess.Close() })
			fn(t, sess.Doctors)
		})
	}
}

func validDraft() record.Draft {
	return record.Draft{Name: "Dr. Test", Email: "t@t.com", Phone: "555", Specialization: "Derm"}
}

func TestCreateAppendsWithFreshIdentity(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Store) {
		ctx := context.Background()
		before, err := s.List(ctx)
		require.NoError(t, err)

		ch, err := s.Create(ctx, validDraft())
		require.NoError(t, err)
		require.Len(t, ch.Collection, len(before)+1)

		want := record.Doctor{
			ID: "id-101", Name: "Dr. Test", Email: "t@t.com", Phone: "555", Specialization: "Derm",
			Status: record.StatusActive, JoinDate: time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
		}
		if diff := cmp.Diff(want, ch.Record); diff != "" {
			t.Fatalf("created record mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, ch.Record, ch.Collection[len(ch.Collection)-1])
		if diff := cmp.Diff(before, ch.Collection[:len(before)]); diff != "" {
			t.Fatalf("existing records changed (-want +got):\n%s", diff)
		}

		second, err := s.Create(ctx, validDraft())
		require.NoError(t, err)
		require.NotEqual(t, ch.Record.ID, second.Record.ID)
	})
}

func TestCreateRejectsIncompleteDraftsWithoutMutation(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Store) {
		ctx := context.Background()
		before, err := s.List(ctx)
		require.NoError(t, err)

		for _, blank := range []func(*record.Draft){
			func(d *record.Draft) { d.Name = "" },
			func(d *record.Draft) { d.Email = " " },
			func(d *record.Draft) { d.Phone = "" },
			func(d *record.Draft) { d.Specialization = "\t" },
		} {
			d := validDraft()
			blank(&d)
			_, err := s.Create(ctx, d)
			require.True(t, record.IsValidation(err), "got %v", err)
		}

		after, err := s.List(ctx)
		require.NoError(t, err)
		require.Equal(t, before, after)
	})
}

func TestCreateSkipsTakenIDs(t *testing.T) {
	for _, backend := range []string{BackendMemory, BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			ids := []string{"1", "", "2", "fresh"}
			next := func() string { id := ids[0]; ids = ids[1:]; return id }
			sess, err := OpenSession(context.Background(), backend, record.MustLoadSeed(), WithIDs(next))
			require.NoError(t, err)
			t.Cleanup(func() { _ = sess.Close() })

			ch, err := sess.Doctors.Create(context.Background(), validDraft())
			require.NoError(t, err)
			require.Equal(t, "fresh", ch.Record.ID)
		})
	}
}

func TestCreateGivesUpOnExhaustedGenerator(t *testing.T) {
	s := New(NewMemory(record.MustLoadSeed().Doctors), WithIDs(func() string { return "1" }))
	_, err := s.Create(context.Background(), validDraft())
	require.Error(t, err)
	require.False(t, record.IsValidation(err))

	docs, _ := s.List(context.Background())
	require.Len(t, docs, 3)
}

func TestUpdateThenReadKeepsIdentity(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Store) {
		ctx := context.Background()
		orig, err := s.Read(ctx, "2")
		require.NoError(t, err)

		draft := record.Draft{Name: "Dr. Michael Chen-Li", Email: "mcl@clinic.com", Phone: "+1 555",
			Specialization: "Neonatology", Address: "", Status: record.StatusInactive}
		ch, err := s.Update(ctx, "2", draft)
		require.NoError(t, err)

		got, err := s.Read(ctx, "2")
		require.NoError(t, err)
		require.Equal(t, ch.Record, got)

		want := orig
		want.Name, want.Email, want.Phone = draft.Name, draft.Email, draft.Phone
		want.Specialization, want.Address, want.Status = draft.Specialization, "", record.StatusInactive
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("updated record mismatch (-want +got):\n%s", diff)
		}

		// position in the collection is unchanged
		require.Equal(t, "2", ch.Collection[1].ID)
	})
}

func TestUpdateRejectsInvalidOrUnknown(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Store) {
		ctx := context.Background()
		before, _ := s.List(ctx)

		_, err := s.Update(ctx, "1", record.Draft{Name: "only a name"})
		require.True(t, record.IsValidation(err))

		_, err = s.Update(ctx, "nope", validDraft())
		require.True(t, record.IsNotFound(err))

		after, _ := s.List(ctx)
		require.Equal(t, before, after)
	})
}

func TestUpdateHonoursExplicitTotalOrders(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Store) {
		ctx := context.Background()
		d := validDraft()
		ch, err := s.Update(ctx, "1", d)
		require.NoError(t, err)
		require.Equal(t, 45, ch.Record.TotalOrders)

		n := 50
		d.TotalOrders = &n
		ch, err = s.Update(ctx, "1", d)
		require.NoError(t, err)
		require.Equal(t, 50, ch.Record.TotalOrders)
	})
}

func TestDeleteThenReadReportsNotFound(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Store) {
		ctx := context.Background()
		ch, err := s.Delete(ctx, "1")
		require.NoError(t, err)
		require.Equal(t, "Dr. Sarah Johnson", ch.Record.Name)
		require.Len(t, ch.Collection, 2)

		_, err = s.Read(ctx, "1")
		require.True(t, record.IsNotFound(err))
	})
}

func TestDeleteUnknownLeavesCollectionUnchanged(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Store) {
		ctx := context.Background()
		before, _ := s.List(ctx)

		_, err := s.Delete(ctx, "does-not-exist")
		var nf *record.NotFoundError
		require.ErrorAs(t, err, &nf)
		require.Equal(t, "does-not-exist", nf.ID)

		after, _ := s.List(ctx)
		require.Equal(t, before, after)
	})
}

func TestToggleStatusIsItsOwnInverse(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Store) {
		ctx := context.Background()
		orig, _ := s.Read(ctx, "3")

		ch, err := s.ToggleStatus(ctx, "3")
		require.NoError(t, err)
		require.Equal(t, record.StatusActive, ch.Record.Status)

		_, err = s.ToggleStatus(ctx, "3")
		require.NoError(t, err)
		got, _ := s.Read(ctx, "3")
		require.Equal(t, orig, got)

		_, err = s.ToggleStatus(ctx, "missing")
		require.True(t, record.IsNotFound(err))
	})
}

func TestFilter(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Store) {
		ctx := context.Background()
		all, _ := s.List(ctx)

		got, err := s.Filter(ctx, "")
		require.NoError(t, err)
		require.Equal(t, all, got)

		got, err = s.Filter(ctx, "cardio")
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "Cardiology", got[0].Specialization)

		// ".com" hits all three emails; order preserved
		got, err = s.Filter(ctx, ".COM")
		require.NoError(t, err)
		require.Equal(t, all, got)

		once, _ := s.Filter(ctx, "dr. m")
		twice := make([]record.Doctor, 0, len(once))
		for _, d := range once {
			if d.Matches("dr. m") {
				twice = append(twice, d)
			}
		}
		require.Equal(t, once, twice)
		require.Equal(t, "2", once[0].ID)

		// no trimming: trailing and whitespace-only queries are literal
		got, err = s.Filter(ctx, "johnson ")
		require.NoError(t, err)
		require.Empty(t, got)
		got, err = s.Filter(ctx, "   ")
		require.NoError(t, err)
		require.Empty(t, got)

		got, err = s.Filter(ctx, "555")
		require.NoError(t, err)
		require.Empty(t, got, "phone is not searched")
	})
}

func TestStats(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Store) {
		ctx := context.Background()
		st, err := s.Stats(ctx)
		require.NoError(t, err)
		require.Equal(t, record.Stats{Total: 3, Active: 2, TotalOrders: 105, AvgOrders: 35}, st)

		for _, id := range []string{"1", "2", "3"} {
			_, err := s.Delete(ctx, id)
			require.NoError(t, err)
		}
		st, err = s.Stats(ctx)
		require.NoError(t, err)
		require.Equal(t, record.Stats{}, st)
	})
}

func TestSuggest(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s *Store) {
		ctx := context.Background()
		cases := map[string]string{
			"":           "",
			"cardio":     "",
			"cardiolgy":  "Cardiology",
			"pediatrcs":  "Pediatrics",
			"sarha":      "Dr. Sarah Johnson",
			"xylophones": "",
			"   ":        "",
		}
		for q, want := range cases {
			got, err := s.Suggest(ctx, q)
			require.NoError(t, err)
			require.Equal(t, want, got, "query %q", q)
		}
	})
}

func TestOpenSessionRejectsUnknownBackend(t *testing.T) {
	_, err := OpenSession(context.Background(), "postgres", record.MustLoadSeed())
	require.Error(t, err)
}
