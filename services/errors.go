package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ValidationError berarti request-nya sendiri yang salah (field kosong,
// total tidak cocok, duplicate key). Tidak perlu retry.
type ValidationError struct {
	Reason       string
	DuplicateKey bool
}

func (e *ValidationError) Error() string { return e.Reason }

type NotFoundError struct {
	Kind string
	ID   uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

// PolicyDeniedError dikembalikan saat throttle/window pembatalan menolak
// aksi. WaitHours terisi untuk penolakan tiket, HoursUntil untuk
// penolakan pembatalan reservasi.
type PolicyDeniedError struct {
	Reason     string
	WaitHours  int
	HoursUntil float64
}

func (e *PolicyDeniedError) Error() string { return e.Reason }

// ConflictError berarti conditional write kalah balapan dengan request
// lain. Aman untuk retry sekali setelah membaca ulang record.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

// StoreUnavailableError membungkus fault transient dari store (timeout,
// koneksi putus). Caller boleh retry dengan backoff.
type StoreUnavailableError struct {
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("store unavailable: %v", e.Err)
}

func (e *StoreUnavailableError) Unwrap() error { return e.Err }

// RenderError berarti pembuatan artefak tiket/chart gagal. Non-retryable
// untuk request tersebut; state reservasi tidak berubah.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render failed: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// translateStoreError memetakan error gorm/driver ke taksonomi di atas
// supaya controller tidak perlu tahu soal gorm.
func translateStoreError(kind string, id uint, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &NotFoundError{Kind: kind, ID: id}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &ValidationError{Reason: "user or email already exists", DuplicateKey: true}
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return &StoreUnavailableError{Err: err}
	default:
		return &StoreUnavailableError{Err: err}
	}
}
