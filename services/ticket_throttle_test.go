package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMayIssueTicket_FirstIssuance(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	ok, wait := MayIssueTicket(nil, now)
	assert.True(t, ok)
	assert.Equal(t, 0, wait)
}

func TestMayIssueTicket_WaitHoursRoundsUp(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		elapsed  time.Duration
		wantOK   bool
		wantWait int
	}{
		{"just issued", 0, false, 24},
		{"ten minutes ago", 10 * time.Minute, false, 24},
		{"one hour ago", 1 * time.Hour, false, 23},
		{"23.5 hours ago", 23*time.Hour + 30*time.Minute, false, 1},
		{"exactly 24 hours ago", 24 * time.Hour, true, 0},
		{"two days ago", 48 * time.Hour, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			last := now.Add(-tt.elapsed)
			ok, wait := MayIssueTicket(&last, now)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantWait, wait)
		})
	}
}
