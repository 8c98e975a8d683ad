package timefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{"rfc3339 nano", "2026-09-01T10:30:00.123456789Z", true},
		{"rfc3339", "2026-09-01T10:30:00Z", true},
		{"no zone", "2026-09-01T10:30:00", true},
		{"date only", "2026-09-01", true},
		{"empty", "", false},
		{"garbage", "next tuesday", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Parse(tt.input)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestDate(t *testing.T) {
	assert.Equal(t, "Sep 1, 2026", Date("2026-09-01"))
	assert.Equal(t, "Date TBD", Date(""))
	assert.Equal(t, "Date TBD", Date("???"))
}

func TestDateTime(t *testing.T) {
	assert.Equal(t, "Sep 1, 2026 10:30", DateTime("2026-09-01T10:30:00Z"))
}

func TestAgo(t *testing.T) {
	now := time.Now().UTC()

	assert.Equal(t, "just now", Ago(now.Format(time.RFC3339)))
	assert.Equal(t, "5 minutes ago", Ago(now.Add(-5*time.Minute).Format(time.RFC3339)))
	assert.Equal(t, "1 hour ago", Ago(now.Add(-90*time.Minute).Format(time.RFC3339)))
	assert.Equal(t, "3 days ago", Ago(now.Add(-72*time.Hour).Format(time.RFC3339)))
	assert.Equal(t, "unknown time", Ago(""))

	old := now.Add(-60 * 24 * time.Hour)
	assert.Equal(t, old.Format("Jan 2, 2006"), Ago(old.Format(time.RFC3339)))
}

func TestIsUpcoming(t *testing.T) {
	future := time.Now().Add(24 * time.Hour).Format(time.RFC3339)
	past := time.Now().Add(-24 * time.Hour).Format(time.RFC3339)

	assert.True(t, IsUpcoming(future))
	assert.False(t, IsUpcoming(past))
	assert.False(t, IsUpcoming("not a date"))
}
