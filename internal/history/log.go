package history

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"
)

// MaxEntries caps each log; the oldest entries fall off silently.
const MaxEntries = 100

// Record is implemented by *EmailEntry and *CompanyEntry.
type Record interface {
	EntryID() string
	CreatedTime() time.Time
	stamp(id string, at time.Time)
}

// Log is one bounded, most-recent-first entry log persisted as a single JSON
// blob under its key. Both history kinds are instances of this; the
// cap/evict/persist logic lives only here.
type Log[T Record] struct {
	mu      sync.Mutex
	key     string
	store   BlobStore
	entries []T
	now     func() time.Time
}

// NewLog loads the existing blob for key. A missing or corrupt blob is an
// empty log, never an error: history is a cache, not a source of truth.
func NewLog[T Record](ctx context.Context, store BlobStore, key string) *Log[T] {
	l := &Log[T]{key: key, store: store, now: time.Now}

	blob, ok, err := store.Get(ctx, key)
	if err != nil {
		log.Printf("[history] load %s: %v", key, err)
		return l
	}
	if !ok || blob == "" {
		return l
	}
	if err := json.Unmarshal([]byte(blob), &l.entries); err != nil {
		log.Printf("[history] corrupt blob %s, starting empty: %v", key, err)
		l.entries = nil
	}
	if len(l.entries) > MaxEntries {
		l.entries = l.entries[:MaxEntries]
	}
	return l
}

// Add assigns the id and creation timestamp, prepends, evicts past the cap
// and persists. The finalized entry comes back to the caller.
func (l *Log[T]) Add(ctx context.Context, e T) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	at := l.now().UTC()
	e.stamp(NewEntryID(at), at)

	l.entries = append([]T{e}, l.entries...)
	if len(l.entries) > MaxEntries {
		l.entries = l.entries[:MaxEntries]
	}
	return e, l.persistLocked(ctx)
}

// Remove drops the entry with id. Absent ids are a no-op.
func (l *Log[T]) Remove(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.entries[:0]
	found := false
	for _, e := range l.entries {
		if e.EntryID() == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	l.entries = kept
	if !found {
		return nil
	}
	return l.persistLocked(ctx)
}

// Clear empties the log.
func (l *Log[T]) Clear(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
	return l.persistLocked(ctx)
}

// Update applies mutate to the entry with id and persists. Absent ids are a
// no-op. mutate must not touch the id or creation timestamp.
func (l *Log[T]) Update(ctx context.Context, id string, mutate func(T)) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, e := range l.entries {
		if e.EntryID() == id {
			mutate(e)
			return l.persistLocked(ctx)
		}
	}
	return nil
}

// All returns the entries most-recent-first.
func (l *Log[T]) All() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *Log[T]) persistLocked(ctx context.Context) error {
	b, err := json.Marshal(l.entries)
	if err != nil {
		return err
	}
	return l.store.Put(ctx, l.key, string(b))
}
