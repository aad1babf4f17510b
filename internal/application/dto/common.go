package dto

import (
	"time"

	"github.com/ndtrung/warehouse-backoffice/internal/domain/repository"
)

// Envelope is the uniform response wrapper: every endpoint returns
// {success, message, data}. Message carries localized business text; Data is
// null on errors.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// PageRequest is the transient paging/filter input shared by every list
// endpoint. Constructed per request and discarded.
type PageRequest struct {
	PageNumber    int    `query:"pageNumber"`
	PageSize      int    `query:"pageSize"`
	SearchKeyword string `query:"searchKeyword"`
	FromDate      string `query:"fromDate"` // YYYY-MM-DD
	ToDate        string `query:"toDate"`   // YYYY-MM-DD, inclusive
	SortAsc       bool   `query:"sortAsc"`
}

// Page converts to the clamped repository page.
func (p PageRequest) Page() repository.Page {
	return repository.Page{Number: p.PageNumber, Size: p.PageSize, SortAsc: p.SortAsc}.Clamp()
}

const dateLayout = "2006-01-02"

// Range parses the optional creation-date range. The To bound is pushed to
// the end of its day so the range is inclusive.
func (p PageRequest) Range() (repository.DateRange, error) {
	var r repository.DateRange
	if p.FromDate != "" {
		t, err := time.Parse(dateLayout, p.FromDate)
		if err != nil {
			return r, err
		}
		r.From = &t
	}
	if p.ToDate != "" {
		t, err := time.Parse(dateLayout, p.ToDate)
		if err != nil {
			return r, err
		}
		end := t.Add(24*time.Hour - time.Nanosecond)
		r.To = &end
	}
	return r, nil
}

// PagedResult is one page of items plus enough metadata to compute total pages.
type PagedResult[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
}

// NewPagedResult assembles the paged payload from the clamped page. Items is
// never null in JSON, even for an empty page.
func NewPagedResult[T any](items []T, page repository.Page, total int) PagedResult[T] {
	if items == nil {
		items = []T{}
	}
	return PagedResult[T]{
		Items:      items,
		Page:       page.Number,
		PageSize:   page.Size,
		TotalItems: total,
	}
}
