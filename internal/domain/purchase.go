package domain

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseOutcome describes a purchase whose seats were reserved and whose
// payment was taken. It is never returned for a failed attempt.
type PurchaseOutcome struct {
	ID         uuid.UUID
	AccountID  AccountID
	TotalSeats int
	TotalCost  decimal.Decimal
	Quantities TicketQuantities
}

// SeatReservationService reserves seats for an account. Implementations are
// external systems; a nil error means the seats are held.
type SeatReservationService interface {
	ReserveSeat(ctx context.Context, accountID AccountID, totalSeats int) error
}

// TicketPaymentService charges an account. A nil error means the amount was taken.
type TicketPaymentService interface {
	MakePayment(ctx context.Context, accountID AccountID, amount decimal.Decimal) error
}
