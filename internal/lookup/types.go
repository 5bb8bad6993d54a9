package lookup

// Raw wire shapes. The upstream API omits almost everything freely, so every
// field here tolerates absence; normalization happens in internal/people and
// internal/enrich, never here.

type CreditsResponse struct {
	Balance   int    `json:"balance"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type Pagination struct {
	Page         int `json:"page"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
}

type SearchResponse struct {
	Balance    *int           `json:"balance"`
	Results    []SearchResult `json:"results"`
	Pagination *Pagination    `json:"pagination"`
}

type SearchResult struct {
	Person *RawPerson `json:"person"`
}

type EnrichResponse struct {
	Balance *int        `json:"balance"`
	Person  *RawPerson  `json:"person"`
	Company *RawCompany `json:"company"`
}

type RawPerson struct {
	ID             string          `json:"id"`
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	FullName       string          `json:"full_name"`
	JobTitle       string          `json:"job_title"`
	LinkedinURL    string          `json:"linkedin_url"`
	Location       string          `json:"location"`
	Seniority      string          `json:"seniority"`
	WorkExperience []RawExperience `json:"work_experience"`
	Email          *RawEmail       `json:"email"`
}

type RawExperience struct {
	Current     bool     `json:"current"`
	Title       string   `json:"title"`
	Departments []string `json:"departments"`
}

type RawEmail struct {
	Email  string `json:"email"`
	Status string `json:"status"`
}

type RawCompany struct {
	Name        string            `json:"name"`
	Domain      string            `json:"domain"`
	Website     string            `json:"website"`
	Industry    string            `json:"industry"`
	Headcount   string            `json:"headcount"`
	Description string            `json:"description"`
	LogoURL     string            `json:"logo_url"`
	Location    string            `json:"location"`
	FoundedYear int               `json:"founded_year"`
	Funding     []RawFundingEvent `json:"funding"`
}

type RawFundingEvent struct {
	Round     string   `json:"round"`
	Amount    float64  `json:"amount"`
	Currency  string   `json:"currency"`
	Date      string   `json:"date"` // YYYY-MM-DD, sometimes empty
	Investors []string `json:"investors"`
}

// CompanySuggestion is one autocomplete hit from the free clearout endpoint.
type CompanySuggestion struct {
	Name            string  `json:"name"`
	Domain          string  `json:"domain"`
	ConfidenceScore float64 `json:"confidence_score"`
	LogoURL         string  `json:"logo_url"`
}
