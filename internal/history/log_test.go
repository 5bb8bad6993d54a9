package history

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	m map[string]string
}

func newMemStore() *memStore { return &memStore{m: make(map[string]string)} }

func (s *memStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *memStore) Put(_ context.Context, key, value string) error {
	s.m[key] = value
	return nil
}

func TestAddAssignsIDAndPrepends(t *testing.T) {
	ctx := context.Background()
	l := NewLog[*EmailEntry](ctx, newMemStore(), EmailLogKey)

	first, err := l.Add(ctx, &EmailEntry{FirstName: "Ada", LastName: "Lovelace", Domain: "acme.com", Status: StatusSuccess})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())
	assert.Equal(t, KindEmail, first.Type)

	second, err := l.Add(ctx, &EmailEntry{FirstName: "Grace", LastName: "Hopper", Domain: "acme.com", Status: StatusError})
	require.NoError(t, err)

	all := l.All()
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID) // most recent first
	assert.Equal(t, first.ID, all[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestCapEvictsOldest(t *testing.T) {
	ctx := context.Background()
	l := NewLog[*EmailEntry](ctx, newMemStore(), EmailLogKey)

	var oldest *EmailEntry
	for i := 0; i <= MaxEntries; i++ {
		e, err := l.Add(ctx, &EmailEntry{FirstName: fmt.Sprintf("p%d", i), Domain: "acme.com", Status: StatusSuccess})
		require.NoError(t, err)
		if i == 0 {
			oldest = e
		}
	}

	require.Equal(t, MaxEntries, l.Len())
	for _, e := range l.All() {
		assert.NotEqual(t, oldest.ID, e.ID, "oldest entry should have been evicted")
	}
}

func TestRemoveAndClear(t *testing.T) {
	ctx := context.Background()
	st := newMemStore()
	l := NewLog[*EmailEntry](ctx, st, EmailLogKey)

	e, err := l.Add(ctx, &EmailEntry{FirstName: "Ada", Domain: "acme.com", Status: StatusSuccess})
	require.NoError(t, err)

	require.NoError(t, l.Remove(ctx, "no-such-id")) // silent no-op
	assert.Equal(t, 1, l.Len())

	require.NoError(t, l.Remove(ctx, e.ID))
	assert.Equal(t, 0, l.Len())

	_, err = l.Add(ctx, &EmailEntry{FirstName: "Grace", Domain: "acme.com", Status: StatusError})
	require.NoError(t, err)
	require.NoError(t, l.Clear(ctx))
	assert.Equal(t, 0, l.Len())

	// cleared state persisted too
	reloaded := NewLog[*EmailEntry](ctx, st, EmailLogKey)
	assert.Equal(t, 0, reloaded.Len())
}

func TestUpdateMergesSnapshot(t *testing.T) {
	ctx := context.Background()
	l := NewLog[*CompanyEntry](ctx, newMemStore(), CompanyLogKey)

	e, err := l.Add(ctx, &CompanyEntry{CompanyName: "Acme", Domain: "acme.com", ConfidenceScore: 0.9})
	require.NoError(t, err)
	created := e.CreatedAt

	require.NoError(t, l.Update(ctx, e.ID, func(c *CompanyEntry) {
		c.Employees = []EmployeeSnapshot{{ID: "a", FullName: "Ada Lovelace"}}
		c.TotalPages = 3
		c.CurrentPage = 1
	}))

	require.NoError(t, l.Update(ctx, "missing", func(c *CompanyEntry) {
		t.Fatal("mutate must not run for an absent id")
	}))

	got := l.All()[0]
	assert.Len(t, got.Employees, 1)
	assert.Equal(t, 3, got.TotalPages)
	assert.Equal(t, created, got.CreatedAt) // immutable
}

func TestReloadFromPersistedBlob(t *testing.T) {
	ctx := context.Background()
	st := newMemStore()

	l := NewLog[*CompanyEntry](ctx, st, CompanyLogKey)
	e, err := l.Add(ctx, &CompanyEntry{CompanyName: "Acme", Domain: "acme.com"})
	require.NoError(t, err)

	reloaded := NewLog[*CompanyEntry](ctx, st, CompanyLogKey)
	require.Equal(t, 1, reloaded.Len())
	assert.Equal(t, e.ID, reloaded.All()[0].ID)
}

func TestCorruptBlobIsEmptyLog(t *testing.T) {
	ctx := context.Background()
	st := newMemStore()
	st.m[EmailLogKey] = `{"not": "a list"`

	l := NewLog[*EmailEntry](ctx, st, EmailLogKey)
	assert.Equal(t, 0, l.Len())

	// still usable
	_, err := l.Add(ctx, &EmailEntry{FirstName: "Ada", Domain: "acme.com", Status: StatusSuccess})
	require.NoError(t, err)
}

func TestNewEntryIDIsTimeRandomComposite(t *testing.T) {
	at := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	a := NewEntryID(at)
	b := NewEntryID(at)
	assert.NotEqual(t, a, b)
	assert.Contains(t, a, fmt.Sprintf("%d-", at.UnixMilli()))
}
