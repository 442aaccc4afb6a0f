package models

import "time"

// Restaurant adalah daftar restoran yang dikenal sistem. Dipakai oleh
// ranking untuk menentukan "cold tail" (restoran tanpa reservasi).
type Restaurant struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(255);unique;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
