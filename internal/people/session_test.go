package people

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prospector-engine/internal/lookup"
)

type fakeSearcher struct {
	pages map[int]*lookup.SearchResponse
	errs  map[int]error
	calls []int
}

func (f *fakeSearcher) SearchPerson(ctx context.Context, domain string, page int) (*lookup.SearchResponse, error) {
	f.calls = append(f.calls, page)
	if err, ok := f.errs[page]; ok {
		return nil, err
	}
	return f.pages[page], nil
}

func page(ids []string, pg, total int) *lookup.SearchResponse {
	resp := &lookup.SearchResponse{
		Pagination: &lookup.Pagination{Page: pg, TotalPages: total, TotalResults: len(ids)},
	}
	for _, id := range ids {
		resp.Results = append(resp.Results, lookup.SearchResult{Person: &lookup.RawPerson{ID: id, FullName: id}})
	}
	return resp
}

func TestSessionAccumulatesAndDedupes(t *testing.T) {
	f := &fakeSearcher{pages: map[int]*lookup.SearchResponse{
		1: page([]string{"a", "b"}, 1, 2),
		2: page([]string{"b", "c"}, 2, 2),
	}}

	s := NewSession("acme.com")
	ctx := context.Background()

	view, err := s.LoadNext(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Page)
	assert.True(t, view.HasMore)

	view, err = s.LoadNext(ctx, f)
	require.NoError(t, err)

	ids := make([]string, 0, len(view.Employees))
	for _, e := range view.Employees {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids) // b not duplicated, append order kept
	assert.Equal(t, 2, view.Page)
	assert.False(t, view.HasMore)
	assert.Equal(t, []int{1, 2}, f.calls)
}

func TestSessionNoMorePages(t *testing.T) {
	f := &fakeSearcher{pages: map[int]*lookup.SearchResponse{
		1: page([]string{"a"}, 1, 1),
	}}

	s := NewSession("acme.com")
	_, err := s.LoadNext(context.Background(), f)
	require.NoError(t, err)

	_, err = s.LoadNext(context.Background(), f)
	assert.ErrorIs(t, err, ErrNoMorePages)
	assert.Equal(t, []int{1}, f.calls)
}

func TestSessionMissingPaginationMeansOnePage(t *testing.T) {
	resp := page([]string{"a", "b"}, 0, 0)
	resp.Pagination = nil
	f := &fakeSearcher{pages: map[int]*lookup.SearchResponse{1: resp}}

	s := NewSession("acme.com")
	view, err := s.LoadNext(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Page)
	assert.Equal(t, 1, view.TotalPages)
	assert.False(t, view.HasMore)
}

func TestSessionFailureKeepsAccumulated(t *testing.T) {
	f := &fakeSearcher{
		pages: map[int]*lookup.SearchResponse{1: page([]string{"a", "b"}, 1, 3)},
		errs:  map[int]error{2: errors.New("boom")},
	}

	s := NewSession("acme.com")
	_, err := s.LoadNext(context.Background(), f)
	require.NoError(t, err)

	_, err = s.LoadNext(context.Background(), f)
	require.Error(t, err)

	view := s.Snapshot()
	assert.Len(t, view.Employees, 2) // no rollback
	assert.Equal(t, 1, view.Page)
	assert.True(t, view.HasMore) // retryable
}

func TestSessionDiscardsResultAfterCancel(t *testing.T) {
	f := &fakeSearcher{pages: map[int]*lookup.SearchResponse{1: page([]string{"a"}, 1, 1)}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewSession("acme.com")
	_, err := s.LoadNext(ctx, f)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, s.Snapshot().Employees)

	// a fresh, live load still works; the latch was released
	view, err := s.LoadNext(context.Background(), f)
	require.NoError(t, err)
	assert.Len(t, view.Employees, 1)
}

func TestManagerFreshResetsSession(t *testing.T) {
	m := NewManager()
	f := &fakeSearcher{pages: map[int]*lookup.SearchResponse{1: page([]string{"a"}, 1, 1)}}

	s1 := m.Fresh("Acme.com ")
	_, err := s1.LoadNext(context.Background(), f)
	require.NoError(t, err)

	got, ok := m.Get("acme.com")
	require.True(t, ok)
	assert.Len(t, got.Snapshot().Employees, 1)

	s2 := m.Fresh("acme.com")
	assert.Empty(t, s2.Snapshot().Employees)
	assert.Equal(t, 0, s2.Snapshot().Page)
}
