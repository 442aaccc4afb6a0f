package services

import (
	"math"
	"time"
)

// TicketReissueWindow adalah jarak minimum antara dua penerbitan tiket
// untuk reservasi yang sama.
const TicketReissueWindow = 24 * time.Hour

// MayIssueTicket memutuskan apakah tiket kunjungan baru boleh diterbitkan.
// Kalau belum pernah terbit (lastIssuedAt nil) selalu boleh. Kalau ditolak,
// waitHours berisi sisa tunggu dibulatkan ke atas ke jam penuh (untuk pesan
// ke user). Fungsi ini pure; penyimpanan lastIssuedAt = now dilakukan caller
// lewat conditional update.
func MayIssueTicket(lastIssuedAt *time.Time, now time.Time) (bool, int) {
	if lastIssuedAt == nil {
		return true, 0
	}
	elapsed := now.Sub(*lastIssuedAt)
	if elapsed >= TicketReissueWindow {
		return true, 0
	}
	remaining := TicketReissueWindow - elapsed
	return false, int(math.Ceil(remaining.Hours()))
}
