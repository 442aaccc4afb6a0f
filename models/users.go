package models

import "time"

// User adalah akun staff/admin yang boleh mengubah status order
// dan melihat ranking restoran.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(255); not null"`
	Email     string `gorm:"type:varchar(255); unique;not null"`
	Password  string `gorm:"type:varchar(255); not null"`
	Role      string `gorm:"type:varchar(255); not null"` // staff, admin
	CreatedAt time.Time
	UpdatedAt time.Time
}
