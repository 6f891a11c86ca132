package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	got, err := Parse("2024-06-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), got)

	got, err = Parse("2024-06-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC), got)
}

func TestParseRejectsOtherFormats(t *testing.T) {
	for _, raw := range []string{"15/06/2024", "next-tuesday", ""} {
		_, err := Parse(raw)
		assert.Error(t, err, raw)
	}
}
