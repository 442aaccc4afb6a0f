package models

import "time"

// Reservation merepresentasikan satu slot meja yang sudah dibooking.
// ScheduledAt disimpan sekali sebagai instant absolut; semua aritmatika
// waktu (throttle tiket, window pembatalan) dihitung dari kolom ini,
// tidak pernah dari field tanggal/jam terpisah.
type Reservation struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	RestaurantName     string     `gorm:"type:varchar(255);not null;index" json:"restaurant_name"`
	CustomerName       string     `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail      string     `gorm:"type:varchar(255);not null;index" json:"customer_email"`
	PartySize          int        `gorm:"not null" json:"party_size"`
	ScheduledAt        time.Time  `gorm:"not null" json:"scheduled_at"`
	Notes              string     `gorm:"type:text" json:"notes,omitempty"`
	Code               string     `gorm:"type:varchar(64);unique;not null" json:"code"`
	LastTicketIssuedAt *time.Time `json:"last_ticket_issued_at,omitempty"`
	CreatedAt          time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"not null" json:"updated_at"`
}
