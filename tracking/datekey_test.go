package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"05-03-2024", "5.3.2024"},
		{"31-12-2023", "31.12.2023"},
		{"01-01-2000", "1.1.2000"},
		{"29-02-2024", "29.2.2024"},
		{"10-11-1999", "10.11.1999"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeDate(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeDate_Invalid(t *testing.T) {
	for _, in := range []string{
		"",
		"5-3-2024",
		"2024-03-05",
		"05.03.2024",
		"31-02-2024",
		"29-02-2023",
		"32-01-2024",
		"05-13-2024",
		"05-03-24",
		"05-03-2024x",
		" 05-03-2024",
		"garbage",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := NormalizeDate(in)
			assert.ErrorIs(t, err, ErrInvalidDate)
		})
	}
}

func TestCanonicalDateKey(t *testing.T) {
	tests := map[string]string{
		"05-03-2024":  "5.3.2024",
		"5.3.2024":    "5.3.2024",
		"05.03.2024":  "5.3.2024",
		"31.12.2023":  "31.12.2023",
		" 1.1.2000  ": "1.1.2000",
	}
	for in, want := range tests {
		got, err := CanonicalDateKey(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"31.2.2024", "5/3/2024", "5.3.24", "yesterday"} {
		_, err := CanonicalDateKey(in)
		assert.ErrorIs(t, err, ErrInvalidDate, in)
	}
}

func TestDateKey(t *testing.T) {
	assert.Equal(t, "7.4.2025", DateKey(time.Date(2025, 4, 7, 23, 59, 0, 0, time.UTC)))
}
