package usecase

import "strings"

// ListState is the admin listing position: 1-based page, free-text search
// and status filter. It is a value type; every transition returns a new state.
type ListState struct {
	Page   int
	Search string
	Status string
}

// NewListState builds a state from raw query values.
func NewListState(page int, search, status string) ListState {
	if page < 1 {
		page = 1
	}
	return ListState{Page: page, Search: strings.TrimSpace(search), Status: strings.TrimSpace(status)}
}

// WithSearch changes the search text and goes back to the first page.
func (s ListState) WithSearch(search string) ListState {
	s.Search = strings.TrimSpace(search)
	s.Page = 1
	return s
}

// WithStatus changes the status filter and goes back to the first page.
func (s ListState) WithStatus(status string) ListState {
	s.Status = strings.TrimSpace(status)
	s.Page = 1
	return s
}

func (s ListState) NextPage() ListState {
	s.Page++
	return s
}

func (s ListState) PrevPage() ListState {
	if s.Page > 1 {
		s.Page--
	}
	return s
}

// Pagination describes the window shown for one listing page.
type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	From       int  `json:"from"`
	To         int  `json:"to"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
}

// NewPagination computes the 1-based item window of page over total items.
// From and To are zero when the page holds no items.
func NewPagination(page, pageSize, total int) Pagination {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if total < 0 {
		total = 0
	}

	p := Pagination{
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: (total + pageSize - 1) / pageSize,
		HasPrev:    page > 1,
		HasNext:    page*pageSize < total,
	}
	from := (page-1)*pageSize + 1
	if from <= total {
		p.From = from
		p.To = min(page*pageSize, total)
	}
	return p
}
