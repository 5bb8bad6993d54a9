package people

import (
	"context"
	"errors"
	"strings"
	"sync"

	"prospector-engine/internal/lookup"
)

var (
	// ErrLoadInFlight means this session is already waiting on a page; the
	// UI mounts screens more than once, so duplicate triggers are expected
	// and refused rather than issued twice.
	ErrLoadInFlight = errors.New("a page load is already in flight")

	// ErrNoMorePages means current page == total pages.
	ErrNoMorePages = errors.New("no more pages")
)

// Searcher is the slice of the lookup client a session needs.
type Searcher interface {
	SearchPerson(ctx context.Context, domain string, page int) (*lookup.SearchResponse, error)
}

// View is a consistent snapshot of a session for the UI.
type View struct {
	Domain       string            `json:"domain"`
	Employees    []Employee        `json:"employees"`
	Groups       []DepartmentGroup `json:"groups"`
	Page         int               `json:"page"`
	TotalPages   int               `json:"total_pages"`
	TotalResults int               `json:"total_results"`
	HasMore      bool              `json:"has_more"`
	Balance      *int              `json:"balance,omitempty"`
}

// Session accumulates search pages for one domain. Pages append; already-seen
// ids are skipped without re-sorting what is accumulated. A failed page
// leaves the accumulated set untouched.
type Session struct {
	mu           sync.Mutex
	domain       string
	employees    []Employee
	seen         map[string]struct{}
	currentPage  int
	totalPages   int
	totalResults int
	inFlight     bool
}

func NewSession(domain string) *Session {
	return &Session{
		domain: strings.ToLower(strings.TrimSpace(domain)),
		seen:   make(map[string]struct{}),
	}
}

func (s *Session) Domain() string { return s.domain }

func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked(nil)
}

// LoadNext fetches page current+1 (page 1 for a fresh session), dedupes the
// results into the accumulated set and returns the new snapshot. The session
// is single-flight: a second call while one is outstanding fails fast with
// ErrLoadInFlight. If ctx is done by the time the response lands (screen torn
// down), the result is discarded and nothing mutates.
func (s *Session) LoadNext(ctx context.Context, cl Searcher) (View, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return View{}, ErrLoadInFlight
	}
	if s.currentPage > 0 && s.currentPage >= s.totalPages {
		s.mu.Unlock()
		return View{}, ErrNoMorePages
	}
	page := s.currentPage + 1
	s.inFlight = true
	s.mu.Unlock()

	resp, err := cl.SearchPerson(ctx, s.domain, page)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false

	if ctx.Err() != nil {
		return View{}, ctx.Err()
	}
	if err != nil {
		return View{}, err
	}

	for _, e := range MapSearchResponse(resp) {
		if _, dup := s.seen[e.ID]; dup {
			continue
		}
		s.seen[e.ID] = struct{}{}
		s.employees = append(s.employees, e)
	}

	// every response's metadata overwrites prior state; no metadata at all
	// means this was the only page
	if pg := resp.Pagination; pg != nil {
		s.currentPage = pg.Page
		s.totalPages = pg.TotalPages
		s.totalResults = pg.TotalResults
	} else {
		s.currentPage = page
		s.totalPages = page
		s.totalResults = len(s.employees)
	}

	return s.viewLocked(resp.Balance), nil
}

func (s *Session) viewLocked(balance *int) View {
	emps := make([]Employee, len(s.employees))
	copy(emps, s.employees)
	return View{
		Domain:       s.domain,
		Employees:    emps,
		Groups:       GroupByDepartment(emps),
		Page:         s.currentPage,
		TotalPages:   s.totalPages,
		TotalResults: s.totalResults,
		HasMore:      s.currentPage < s.totalPages,
		Balance:      balance,
	}
}

// Manager keeps one session per domain. A fresh search replaces the old
// session outright, which is what resets the accumulated employees and the
// page counters.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

func (m *Manager) Fresh(domain string) *Session {
	s := NewSession(domain)
	m.mu.Lock()
	m.sessions[s.domain] = s
	m.mu.Unlock()
	return s
}

func (m *Manager) Get(domain string) (*Session, bool) {
	domain = strings.ToLower(strings.TrimSpace(domain))
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[domain]
	return s, ok
}
