package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DanielaMVG19/sloteats/models"
)

const DefaultStoreTimeout = 5 * time.Second

// Lifecycle adalah composition root dari engine: semua use case mutating
// mengikuti pola load fresh -> evaluasi policy -> conditional write.
// Tidak ada state record yang disimpan di memori antar request; keputusan
// selalu dari record yang baru dibaca.
type Lifecycle struct {
	DB           *gorm.DB
	Now          func() time.Time
	StoreTimeout time.Duration
	TicketStyle  TicketStyle
}

func NewLifecycle(db *gorm.DB) *Lifecycle {
	return &Lifecycle{
		DB:           db,
		Now:          time.Now,
		StoreTimeout: DefaultStoreTimeout,
	}
}

// store membungkus setiap akses DB dengan timeout supaya tidak ada call
// yang menggantung tanpa batas.
func (ls *Lifecycle) store(ctx context.Context) (*gorm.DB, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(ctx, ls.StoreTimeout)
	return ls.DB.WithContext(ctx), cancel
}

type ReservationInput struct {
	Restaurant    string
	CustomerName  string
	CustomerEmail string
	PartySize     int
	ScheduledAt   time.Time
	Notes         string
}

func (in ReservationInput) validate() error {
	switch {
	case in.Restaurant == "":
		return &ValidationError{Reason: "restaurant is required"}
	case in.CustomerName == "":
		return &ValidationError{Reason: "customer name is required"}
	case in.CustomerEmail == "":
		return &ValidationError{Reason: "customer email is required"}
	case in.PartySize <= 0:
		return &ValidationError{Reason: "party size must be positive"}
	case in.ScheduledAt.IsZero():
		return &ValidationError{Reason: "scheduled time is required"}
	}
	return nil
}

// CreateReservation menyimpan reservasi baru. ScheduledAt sudah berupa
// instant absolut dari layer HTTP; di sini tidak ada penggabungan ulang
// tanggal + jam. Code di-mint sekali di sini supaya tiket yang dirender
// berulang kali tetap identik.
func (ls *Lifecycle) CreateReservation(ctx context.Context, in ReservationInput) (*models.Reservation, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	res := models.Reservation{
		RestaurantName: in.Restaurant,
		CustomerName:   in.CustomerName,
		CustomerEmail:  in.CustomerEmail,
		PartySize:      in.PartySize,
		ScheduledAt:    in.ScheduledAt,
		Notes:          in.Notes,
		Code:           uuid.NewString(),
	}

	db, cancel := ls.store(ctx)
	defer cancel()
	if err := db.Create(&res).Error; err != nil {
		return nil, translateStoreError("reservation", 0, err)
	}
	return &res, nil
}

// Ticket adalah artefak kunjungan yang dikembalikan ke diner.
type Ticket struct {
	ReservationID   uint      `json:"reservation_id"`
	ReservationCode string    `json:"reservation_code"`
	IssuedAt        time.Time `json:"issued_at"`
	DataURI         string    `json:"data_uri"`
}

// IssueTicket menerbitkan (ulang) tiket kunjungan. Urutannya penting:
//  1. baca record segar, tanya throttle
//  2. render artefak (gagal render = state tidak tersentuh)
//  3. compare-and-swap last_ticket_issued_at
// CAS memastikan dua request serentak untuk reservasi yang sama tidak
// dua-duanya lolos dalam satu window 24 jam; yang kalah dapat
// ConflictError dan boleh retry dengan membaca ulang.
func (ls *Lifecycle) IssueTicket(ctx context.Context, id uint) (*Ticket, error) {
	db, cancel := ls.store(ctx)
	defer cancel()

	var res models.Reservation
	if err := db.First(&res, id).Error; err != nil {
		return nil, translateStoreError("reservation", id, err)
	}

	now := ls.Now()
	ok, waitHours := MayIssueTicket(res.LastTicketIssuedAt, now)
	if !ok {
		return nil, &PolicyDeniedError{
			Reason:    fmt.Sprintf("a ticket was already issued for this reservation, wait %d hour(s)", waitHours),
			WaitHours: waitHours,
		}
	}

	dataURI, err := RenderTicket(res, ls.TicketStyle)
	if err != nil {
		return nil, err
	}

	cas := db.Model(&models.Reservation{}).Where("id = ?", res.ID)
	if res.LastTicketIssuedAt == nil {
		cas = cas.Where("last_ticket_issued_at IS NULL")
	} else {
		cas = cas.Where("last_ticket_issued_at = ?", *res.LastTicketIssuedAt)
	}
	result := cas.Update("last_ticket_issued_at", now)
	if result.Error != nil {
		return nil, translateStoreError("reservation", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, &ConflictError{Reason: "another ticket request won the race, re-read and retry"}
	}

	return &Ticket{
		ReservationID:   res.ID,
		ReservationCode: res.Code,
		IssuedAt:        now,
		DataURI:         dataURI,
	}, nil
}

// CancelReservation menghapus reservasi kalau masih di luar grace margin.
// Delete-if-exists: request kedua yang kalah balapan melihat NotFound,
// bukan sukses kedua.
func (ls *Lifecycle) CancelReservation(ctx context.Context, id uint) error {
	db, cancel := ls.store(ctx)
	defer cancel()

	var res models.Reservation
	if err := db.First(&res, id).Error; err != nil {
		return translateStoreError("reservation", id, err)
	}

	ok, hoursUntil := MayCancelReservation(res.ScheduledAt, ls.Now())
	if !ok {
		return &PolicyDeniedError{
			Reason:     fmt.Sprintf("too close to the appointment (%.2f hour(s) left)", hoursUntil),
			HoursUntil: hoursUntil,
		}
	}

	result := db.Where("id = ?", res.ID).Delete(&models.Reservation{})
	if result.Error != nil {
		return translateStoreError("reservation", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Kind: "reservation", ID: id}
	}
	return nil
}

// ListReservationsFor mengembalikan reservasi milik satu email, terurut
// berdasarkan jadwal.
func (ls *Lifecycle) ListReservationsFor(ctx context.Context, email string) ([]models.Reservation, error) {
	if email == "" {
		return nil, &ValidationError{Reason: "email is required"}
	}

	db, cancel := ls.store(ctx)
	defer cancel()

	var reservations []models.Reservation
	if err := db.Where("customer_email = ?", email).
		Order("scheduled_at ASC").
		Find(&reservations).Error; err != nil {
		return nil, translateStoreError("reservation", 0, err)
	}
	return reservations, nil
}

type OrderItemInput struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type OrderInput struct {
	Restaurant       string
	CustomerName     string
	CustomerEmail    string
	Items            []OrderItemInput
	Total            float64
	DeliveryLocation string
	DistanceKm       float64
}

func (in OrderInput) validate() error {
	switch {
	case in.CustomerName == "":
		return &ValidationError{Reason: "customer name is required"}
	case in.CustomerEmail == "":
		return &ValidationError{Reason: "customer email is required"}
	case len(in.Items) == 0:
		return &ValidationError{Reason: "at least one item is required"}
	case in.DeliveryLocation == "":
		return &ValidationError{Reason: "delivery location is required"}
	case in.DistanceKm < 0:
		return &ValidationError{Reason: "distance must not be negative"}
	}

	sum := 0.0
	for _, item := range in.Items {
		if item.Name == "" {
			return &ValidationError{Reason: "item name is required"}
		}
		if item.Quantity <= 0 {
			return &ValidationError{Reason: fmt.Sprintf("invalid quantity for item %s", item.Name)}
		}
		if item.Price < 0 {
			return &ValidationError{Reason: fmt.Sprintf("invalid price for item %s", item.Name)}
		}
		sum += float64(item.Quantity) * item.Price
	}
	// toleransi kecil untuk pembulatan float dari JSON
	if math.Abs(sum-in.Total) > 0.005 {
		return &ValidationError{Reason: fmt.Sprintf("total %.2f does not match item sum %.2f", in.Total, sum)}
	}
	return nil
}

// CreateOrder menyimpan order baru dengan status received. Invariant
// total == jumlah line item dicek sebelum menyentuh store.
func (ls *Lifecycle) CreateOrder(ctx context.Context, in OrderInput) (*models.Order, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	order := models.Order{
		RestaurantName:   in.Restaurant,
		CustomerName:     in.CustomerName,
		CustomerEmail:    in.CustomerEmail,
		Status:           models.OrderStatusReceived,
		TotalAmount:      in.Total,
		DeliveryLocation: in.DeliveryLocation,
		DistanceKm:       in.DistanceKm,
	}
	for _, item := range in.Items {
		order.OrderItems = append(order.OrderItems, models.OrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	db, cancel := ls.store(ctx)
	defer cancel()
	if err := db.Create(&order).Error; err != nil {
		return nil, translateStoreError("order", 0, err)
	}
	return &order, nil
}

// GetOrder memuat satu order beserta item-itemnya.
func (ls *Lifecycle) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	db, cancel := ls.store(ctx)
	defer cancel()

	var order models.Order
	if err := db.Preload("OrderItems").First(&order, id).Error; err != nil {
		return nil, translateStoreError("order", id, err)
	}
	return &order, nil
}

// AdvanceOrderStatus dipakai staff untuk menggeser status order. Target
// di luar enum ditolak tanpa menyentuh store; set ulang ke status yang
// sama sukses tanpa efek.
func (ls *Lifecycle) AdvanceOrderStatus(ctx context.Context, id uint, target string) error {
	if err := CheckStatusTarget(target); err != nil {
		return err
	}

	db, cancel := ls.store(ctx)
	defer cancel()

	var order models.Order
	if err := db.First(&order, id).Error; err != nil {
		return translateStoreError("order", id, err)
	}
	if order.Status == target {
		return nil
	}
	if err := db.Model(&order).Update("status", target).Error; err != nil {
		return translateStoreError("order", id, err)
	}
	return nil
}

// CancelOrder menghapus order kalau masih received dan masih di dalam
// window pembatalan berbasis jarak. Delete-nya conditional pada status
// supaya balapan dengan AdvanceOrderStatus tidak menghapus order yang
// keburu masuk dapur.
func (ls *Lifecycle) CancelOrder(ctx context.Context, id uint) error {
	db, cancel := ls.store(ctx)
	defer cancel()

	var order models.Order
	if err := db.First(&order, id).Error; err != nil {
		return translateStoreError("order", id, err)
	}

	ok, reason := MayCancelOrder(order.Status, order.CreatedAt, order.DistanceKm, ls.Now())
	if !ok {
		return &PolicyDeniedError{Reason: reason}
	}

	result := db.Where("id = ? AND status = ?", order.ID, models.OrderStatusReceived).
		Delete(&models.Order{})
	if result.Error != nil {
		return translateStoreError("order", id, result.Error)
	}
	if result.RowsAffected == 0 {
		// Antara load dan delete ada penulis lain: order hilang
		// (dibatalkan duluan) atau statusnya berubah.
		if err := db.First(&models.Order{}, id).Error; errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Kind: "order", ID: id}
		}
		return &ConflictError{Reason: "order changed while cancelling, re-read and retry"}
	}
	return nil
}

// ComputeRanking membaca seluruh reservasi plus daftar restoran yang
// dikenal lalu menyerahkan perhitungannya ke Rank. Tidak ada cache.
func (ls *Lifecycle) ComputeRanking(ctx context.Context) (RankingView, error) {
	db, cancel := ls.store(ctx)
	defer cancel()

	var reservations []models.Reservation
	if err := db.Order("id ASC").Find(&reservations).Error; err != nil {
		return RankingView{}, translateStoreError("reservation", 0, err)
	}

	var restaurants []models.Restaurant
	if err := db.Order("id ASC").Find(&restaurants).Error; err != nil {
		return RankingView{}, translateStoreError("restaurant", 0, err)
	}
	known := make([]string, 0, len(restaurants))
	for _, r := range restaurants {
		known = append(known, r.Name)
	}

	return Rank(reservations, known), nil
}
