package models

import "time"

// Status order. "cancelled" tidak punya konstanta karena pembatalan
// menghapus record (lihat services.CancelOrder).
const (
	OrderStatusReceived  = "received"
	OrderStatusPreparing = "preparing"
	OrderStatusEnRoute   = "en_route"
	OrderStatusDelivered = "delivered"
)

type Order struct {
	ID               uint        `gorm:"primaryKey" json:"id"`
	RestaurantName   string      `gorm:"type:varchar(255);index" json:"restaurant_name,omitempty"`
	CustomerName     string      `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail    string      `gorm:"type:varchar(255);not null;index" json:"customer_email"`
	Status           string      `gorm:"type:varchar(20);not null;default:'received'" json:"status"`
	TotalAmount      float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total_amount"`
	DeliveryLocation string      `gorm:"type:varchar(255);not null" json:"delivery_location"`
	DistanceKm       float64     `gorm:"not null;default:0" json:"distance_km"`
	CreatedAt        time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time   `gorm:"not null" json:"updated_at"`
	OrderItems       []OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"order_items"`
}
