package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDocumentFilter(t *testing.T) {
	filter := ResolveDocumentFilter("Moção", "Silva", "Aprovado", "2024")
	assert.Equal(t, "Moção", filter.Kind)
	assert.Equal(t, "Silva", filter.Author)
	assert.Equal(t, "Aprovado", filter.Status)
	require.NotNil(t, filter.Year)
	assert.Equal(t, 2024, *filter.Year)
	assert.False(t, filter.invalid)

	filter = ResolveDocumentFilter("", "", "", "")
	assert.Nil(t, filter.Year)
	assert.False(t, filter.invalid)

	filter = ResolveDocumentFilter("", "", "", "abc")
	assert.Nil(t, filter.Year)
	assert.True(t, filter.invalid)
}

func TestResolveAgendaFilter(t *testing.T) {
	filter := ResolveAgendaFilter("Reunião", "Agendado", "2024-06-01", "2024-06-30")
	assert.Equal(t, "Reunião", filter.Kind)
	assert.Equal(t, "Agendado", filter.Status)
	require.NotNil(t, filter.DateFrom)
	require.NotNil(t, filter.DateTo)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), *filter.DateFrom)
	assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), *filter.DateTo)
	assert.False(t, filter.invalid)

	filter = ResolveAgendaFilter("", "", "", "")
	assert.Nil(t, filter.DateFrom)
	assert.Nil(t, filter.DateTo)

	filter = ResolveAgendaFilter("", "", "not-a-date", "")
	assert.True(t, filter.invalid)

	filter = ResolveAgendaFilter("", "", "", "31/12/2024")
	assert.True(t, filter.invalid)
}

func TestResolveAgendaFilterAcceptsRFC3339(t *testing.T) {
	filter := ResolveAgendaFilter("", "", "2024-06-01T08:30:00Z", "")
	require.NotNil(t, filter.DateFrom)
	assert.Equal(t, time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC), *filter.DateFrom)
	assert.False(t, filter.invalid)
}
