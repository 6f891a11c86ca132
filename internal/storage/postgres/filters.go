package postgres

import (
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/camaradigital/gabinete-api/internal/dates"
)

// DocumentFilter narrows a document listing. Only constraints whose
// parameters were supplied are applied; an empty filter matches everything.
type DocumentFilter struct {
	Kind   string
	Author string
	Status string
	Year   *int

	// invalid marks a filter built from an unparseable parameter. It matches
	// no records, mirroring the source behavior of comparing against NaN.
	invalid bool
}

// ResolveDocumentFilter builds a DocumentFilter from raw query parameters.
// A non-numeric ano yields a filter that matches nothing.
func ResolveDocumentFilter(kind, author, status, yearRaw string) DocumentFilter {
	filter := DocumentFilter{
		Kind:   kind,
		Author: author,
		Status: status,
	}

	if yearRaw != "" {
		year, err := strconv.Atoi(yearRaw)
		if err != nil {
			filter.invalid = true
		} else {
			filter.Year = &year
		}
	}

	return filter
}

// Apply appends the filter's constraints to a query
func (f DocumentFilter) Apply(q *gorm.DB) *gorm.DB {
	if f.invalid {
		return q.Where("1 = 0")
	}
	if f.Kind != "" {
		q = q.Where("tipo = ?", f.Kind)
	}
	if f.Author != "" {
		q = q.Where("autor = ?", f.Author)
	}
	if f.Status != "" {
		q = q.Where("situacao = ?", f.Status)
	}
	if f.Year != nil {
		q = q.Where("ano = ?", *f.Year)
	}
	return q
}

// AgendaFilter narrows a calendar listing. Date bounds combine into a range
// on the event date; either side may be open.
type AgendaFilter struct {
	Kind     string
	Status   string
	DateFrom *time.Time
	DateTo   *time.Time

	invalid bool
}

// ResolveAgendaFilter builds an AgendaFilter from raw query parameters.
// A malformed date bound yields a filter that matches nothing, the same
// outcome an invalid-date comparison has in the store.
func ResolveAgendaFilter(kind, status, fromRaw, toRaw string) AgendaFilter {
	filter := AgendaFilter{
		Kind:   kind,
		Status: status,
	}

	if fromRaw != "" {
		from, err := dates.Parse(fromRaw)
		if err != nil {
			filter.invalid = true
		} else {
			filter.DateFrom = &from
		}
	}

	if toRaw != "" {
		to, err := dates.Parse(toRaw)
		if err != nil {
			filter.invalid = true
		} else {
			filter.DateTo = &to
		}
	}

	return filter
}

// Apply appends the filter's constraints to a query
func (f AgendaFilter) Apply(q *gorm.DB) *gorm.DB {
	if f.invalid {
		return q.Where("1 = 0")
	}
	if f.Kind != "" {
		q = q.Where("tipo = ?", f.Kind)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.DateFrom != nil {
		q = q.Where("data_evento >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("data_evento <= ?", *f.DateTo)
	}
	return q
}
