// Package seatbooking holds the seat reservation backends used to fulfil
// ticket purchases.
package seatbooking

import (
	"context"

	"github.com/metinatakli/cinema-tickets/internal/domain"
)

// SeatCounter reports the seats reserved for an account so far.
type SeatCounter interface {
	ReservedSeats(ctx context.Context, accountID domain.AccountID) (int, error)
}

// Backend is a reservation service that can also report running totals.
type Backend interface {
	domain.SeatReservationService
	SeatCounter
}
