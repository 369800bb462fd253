package domain

// Resource identifies one of the list-backed entity kinds.
type Resource string

const (
	ResourceUsers Resource = "users"
	ResourceFoods Resource = "foods"
	ResourceLogs  Resource = "logs"
)

const (
	userPageLimit = 20
	foodPageLimit = 50
	logPageLimit  = 50
)

// DefaultPageLimit returns the fixed page size for a resource kind.
func DefaultPageLimit(r Resource) int {
	switch r {
	case ResourceUsers:
		return userPageLimit
	case ResourceLogs:
		return logPageLimit
	default:
		return foodPageLimit
	}
}

// PageState tracks the pagination and filter state of one resource
// view. It is owned by whoever drives the view and passed explicitly;
// there is no ambient per-resource global.
type PageState struct {
	Page   int
	Limit  int
	Search string
	Total  int
}

// NewPageState starts a resource view at page 1 with its fixed limit
// and an unknown total.
func NewPageState(r Resource) *PageState {
	return &PageState{Page: 1, Limit: DefaultPageLimit(r)}
}

// TotalPages derives the page count from the server-reported total.
func (s *PageState) TotalPages() int {
	if s.Limit <= 0 || s.Total <= 0 {
		return 0
	}
	return (s.Total + s.Limit - 1) / s.Limit
}

// Apply records a successful list response: the server's total and
// the page/limit it actually served.
func (s *PageState) Apply(total, page, limit int) {
	s.Total = total
	if page > 0 {
		s.Page = page
	}
	if limit > 0 {
		s.Limit = limit
	}
}

// ResetToFirstPage is the search-change transition: a new search term
// always restarts at page 1, never preserves the prior page.
func (s *PageState) ResetToFirstPage(search string) {
	s.Search = search
	s.Page = 1
}

// PageQuery is the wire form of a list request.
type PageQuery struct {
	Page   int
	Limit  int
	Search string
}

// Query builds the request for a given target page, keeping the
// current search term and limit.
func (s *PageState) Query(page int) PageQuery {
	if page < 1 {
		page = 1
	}
	return PageQuery{Page: page, Limit: s.Limit, Search: s.Search}
}
