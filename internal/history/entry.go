package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"prospector-engine/internal/enrich"
)

type Kind string

const (
	KindEmail   Kind = "email"
	KindCompany Kind = "company"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Storage keys for the two logs inside the kv blob store.
const (
	EmailLogKey   = "history:email"
	CompanyLogKey = "history:company"
)

// EmailEntry records one past enrichment attempt, success or failure.
type EmailEntry struct {
	ID        string    `json:"id"`
	Type      Kind      `json:"type"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Domain    string    `json:"domain"`
	CreatedAt time.Time `json:"created_at"`
	Status    Status    `json:"status"`
	// Data is only set on success; entries written by older builds may lack
	// it even then.
	Data         *enrich.EnrichedData `json:"data,omitempty"`
	ErrorMessage string               `json:"error_message,omitempty"`
}

// CompanyEntry records one past company search, with an optional employee
// snapshot attached later via Update once pages have been fetched.
type CompanyEntry struct {
	ID              string             `json:"id"`
	Type            Kind               `json:"type"`
	CompanyName     string             `json:"company_name"`
	Domain          string             `json:"domain"`
	ConfidenceScore float64            `json:"confidence_score"`
	LogoURL         string             `json:"logo_url,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	Employees       []EmployeeSnapshot `json:"employees,omitempty"`
	TotalPages      int                `json:"total_pages,omitempty"`
	CurrentPage     int                `json:"current_page,omitempty"`
}

// EmployeeSnapshot is the reduced employee projection cached on a company
// entry, enough to replay the list without a paid re-search.
type EmployeeSnapshot struct {
	ID          string   `json:"id"`
	FullName    string   `json:"full_name"`
	JobTitle    string   `json:"job_title"`
	Departments []string `json:"departments"`
	LinkedinURL string   `json:"linkedin_url,omitempty"`
}

func (e *EmailEntry) EntryID() string        { return e.ID }
func (e *EmailEntry) CreatedTime() time.Time { return e.CreatedAt }
func (e *EmailEntry) stamp(id string, at time.Time) {
	e.ID = id
	e.Type = KindEmail
	e.CreatedAt = at
}

func (e *CompanyEntry) EntryID() string        { return e.ID }
func (e *CompanyEntry) CreatedTime() time.Time { return e.CreatedAt }
func (e *CompanyEntry) stamp(id string, at time.Time) {
	e.ID = id
	e.Type = KindCompany
	e.CreatedAt = at
}

// NewEntryID builds a time+random composite id. Collision-negligible is all
// that is needed here, not cryptographic uniqueness.
func NewEntryID(at time.Time) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%d-%s", at.UnixMilli(), suffix)
}
