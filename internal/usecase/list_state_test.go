package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name                 string
		page, size, total    int
		from, to, totalPages int
		hasPrev, hasNext     bool
	}{
		{name: "last partial page", page: 3, size: 10, total: 23, from: 21, to: 23, totalPages: 3, hasPrev: true, hasNext: false},
		{name: "first page", page: 1, size: 10, total: 23, from: 1, to: 10, totalPages: 3, hasPrev: false, hasNext: true},
		{name: "exact fit", page: 2, size: 10, total: 20, from: 11, to: 20, totalPages: 2, hasPrev: true, hasNext: false},
		{name: "empty", page: 1, size: 10, total: 0, from: 0, to: 0, totalPages: 0, hasPrev: false, hasNext: false},
		{name: "beyond last page", page: 5, size: 10, total: 23, from: 0, to: 0, totalPages: 3, hasPrev: true, hasNext: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.page, tc.size, tc.total)
			assert.Equal(t, tc.from, p.From)
			assert.Equal(t, tc.to, p.To)
			assert.Equal(t, tc.totalPages, p.TotalPages)
			assert.Equal(t, tc.hasPrev, p.HasPrev)
			assert.Equal(t, tc.hasNext, p.HasNext)
		})
	}
}

func TestListStateTransitions(t *testing.T) {
	s := NewListState(4, " nf ", "Em rota")
	assert.Equal(t, ListState{Page: 4, Search: "nf", Status: "Em rota"}, s)

	assert.Equal(t, 1, s.WithSearch("abc").Page, "search resets page")
	assert.Equal(t, "abc", s.WithSearch(" abc ").Search)
	assert.Equal(t, 1, s.WithStatus("Entregue").Page, "status resets page")
	assert.Equal(t, 1, s.WithStatus("").Page, "clearing the filter resets page")

	assert.Equal(t, 5, s.NextPage().Page)
	assert.Equal(t, 3, s.PrevPage().Page)
	assert.Equal(t, 1, NewListState(1, "", "").PrevPage().Page)
	assert.Equal(t, 4, s.Page, "transitions do not mutate the receiver")

	assert.Equal(t, 1, NewListState(-2, "", "").Page)
}
