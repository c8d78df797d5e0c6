package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHelpRequestIsOpen(t *testing.T) {
	created := time.Date(2020, 5, 1, 10, 0, 0, 0, time.UTC)
	h := HelpRequest{
		Status:    HELP_ACTIVE,
		CreatedAt: created,
		ExpiresAt: created.Add(HelpRequestTTL),
	}

	assert.True(t, h.IsOpen(created))
	assert.True(t, h.IsOpen(created.Add(29*time.Minute)))
	assert.False(t, h.IsOpen(created.Add(30*time.Minute)))

	// stored status stays ACTIVE after the window; only the predicate flips
	assert.Equal(t, HELP_ACTIVE, h.Status)
	assert.False(t, h.IsOpen(created.Add(31*time.Minute)))
}

func TestHelpRequestIsOpenResolved(t *testing.T) {
	now := time.Now()
	h := HelpRequest{
		Status:    HELP_RESOLVED,
		ExpiresAt: now.Add(HelpRequestTTL),
	}
	assert.False(t, h.IsOpen(now))
}
