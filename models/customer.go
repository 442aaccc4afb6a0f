package models

import "time"

// Customer adalah diner yang melakukan registrasi lewat endpoint publik.
type Customer struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"type:varchar(255);not null" json:"name"`
	LastName  string `gorm:"type:varchar(255);not null" json:"last_name"`
	Username  string `gorm:"type:varchar(255);unique;not null" json:"username"`
	Email     string `gorm:"type:varchar(255);unique;not null" json:"email"`
	Phone     string `gorm:"type:varchar(30);not null" json:"phone"`
	Password  string `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
