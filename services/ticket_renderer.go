package services

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/DanielaMVG19/sloteats/models"
)

// TicketStyle mengontrol tampilan tiket PDF. Zero value memakai default.
type TicketStyle struct {
	Title    string
	FontSize float64
}

func (s TicketStyle) withDefaults() TicketStyle {
	if s.Title == "" {
		s.Title = "SlotEats Visit Ticket"
	}
	if s.FontSize == 0 {
		s.FontSize = 11
	}
	return s
}

// TicketLines menyusun isi tiket. Deterministik: render berulang untuk
// reservasi yang sama menghasilkan teks yang sama persis.
func TicketLines(res models.Reservation) []string {
	lines := []string{
		fmt.Sprintf("Restaurant: %s", res.RestaurantName),
		fmt.Sprintf("Guest: %s", res.CustomerName),
		fmt.Sprintf("Party size: %d", res.PartySize),
		fmt.Sprintf("Scheduled: %s", res.ScheduledAt.UTC().Format("02 Jan 2006 15:04 MST")),
	}
	if res.Notes != "" {
		lines = append(lines, fmt.Sprintf("Notes: %s", res.Notes))
	}
	lines = append(lines, fmt.Sprintf("Code: %s", res.Code))
	return lines
}

// RenderTicket membuat artefak tiket satu halaman dan mengembalikannya
// sebagai data URI. Gagal render tidak boleh mengubah state reservasi,
// jadi caller wajib memanggil ini SEBELUM menyimpan lastTicketIssuedAt.
func RenderTicket(res models.Reservation, style TicketStyle) (string, error) {
	style = style.withDefaults()

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", style.FontSize+4)
	pdf.CellFormat(0, 10, style.Title, "", 1, "C", false, 0, "")
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", style.FontSize)
	for _, line := range TicketLines(res) {
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return "", &RenderError{Err: err}
	}
	return "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
