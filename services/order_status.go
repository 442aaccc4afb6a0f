package services

import (
	"fmt"

	"github.com/DanielaMVG19/sloteats/models"
)

// Urutan nominal: received -> preparing -> en_route -> delivered.
// Staff boleh langsung set status mana pun dari daftar ini; yang ditolak
// hanya nilai di luar daftar. "cancelled" bukan target yang sah karena
// pembatalan lewat jalur CancelOrder (record-nya dihapus).
var orderStatuses = []string{
	models.OrderStatusReceived,
	models.OrderStatusPreparing,
	models.OrderStatusEnRoute,
	models.OrderStatusDelivered,
}

func ValidOrderStatus(status string) bool {
	for _, s := range orderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// CheckStatusTarget memvalidasi target transisi. Set ulang ke status yang
// sama adalah no-op yang sah (idempotent).
func CheckStatusTarget(target string) error {
	if !ValidOrderStatus(target) {
		return &ValidationError{Reason: fmt.Sprintf("invalid order status %q", target)}
	}
	return nil
}
