package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/DanielaMVG19/sloteats/models"
)

func sampleReservation() models.Reservation {
	return models.Reservation{
		ID:             7,
		RestaurantName: "La Terraza",
		CustomerName:   "Daniela",
		PartySize:      4,
		ScheduledAt:    time.Date(2026, 5, 20, 19, 30, 0, 0, time.UTC),
		Notes:          "window seat",
		Code:           "f3b9c8e2-1111-2222-3333-444455556666",
	}
}

func TestTicketLines(t *testing.T) {
	lines := TicketLines(sampleReservation())

	assert.Equal(t, []string{
		"Restaurant: La Terraza",
		"Guest: Daniela",
		"Party size: 4",
		"Scheduled: 20 May 2026 19:30 UTC",
		"Notes: window seat",
		"Code: f3b9c8e2-1111-2222-3333-444455556666",
	}, lines)
}

func TestTicketLines_OmitsEmptyNotes(t *testing.T) {
	res := sampleReservation()
	res.Notes = ""

	for _, line := range TicketLines(res) {
		assert.False(t, strings.HasPrefix(line, "Notes:"))
	}
}

func TestRenderTicket_DataURI(t *testing.T) {
	uri, err := RenderTicket(sampleReservation(), TicketStyle{})

	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:application/pdf;base64,"))
}
