package services

import (
	"fmt"
	"math"
	"time"

	"github.com/DanielaMVG19/sloteats/models"
)

// ReservationCancelGraceHours: 0.9 jam (54 menit), bukan 1.0. Margin ini
// menyerap skew jam antar proses sambil tetap menegakkan cutoff satu jam.
// Jangan dibulatkan ke 1.0.
const ReservationCancelGraceHours = 0.9

// MayCancelReservation memutuskan apakah reservasi masih boleh dibatalkan.
// Boleh hanya jika jarak ke jadwal MASIH lebih besar dari grace margin;
// tepat di 0.9 jam sudah ditolak. hoursUntil dibulatkan dua desimal untuk
// pesan ke user.
func MayCancelReservation(scheduledAt, now time.Time) (bool, float64) {
	hoursUntil := scheduledAt.Sub(now).Hours()
	rounded := math.Round(hoursUntil*100) / 100
	return hoursUntil > ReservationCancelGraceHours, rounded
}

const nearbyDistanceKm = 2.0

// OrderCancelWindow: order dekat (< 2 km) sudah diantar cepat, jadi hanya
// 2 menit; selebihnya 5 menit.
func OrderCancelWindow(distanceKm float64) time.Duration {
	if distanceKm < nearbyDistanceKm {
		return 2 * time.Minute
	}
	return 5 * time.Minute
}

// MayCancelOrder memutuskan apakah order boleh dibatalkan. Hanya status
// received yang bisa dibatalkan; status lain kebal pembatalan berapa pun
// umurnya. Selalu dievaluasi dari record yang baru dibaca, bukan dari
// state yang dicache sebelumnya.
func MayCancelOrder(status string, placedAt time.Time, distanceKm float64, now time.Time) (bool, string) {
	if status != models.OrderStatusReceived {
		return false, fmt.Sprintf("order is already %s and can no longer be cancelled", status)
	}
	window := OrderCancelWindow(distanceKm)
	if now.Sub(placedAt) > window {
		return false, fmt.Sprintf("cancellation window of %d minutes has passed", int(window.Minutes()))
	}
	return true, ""
}
