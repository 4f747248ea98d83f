package seatbooking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/samber/lo"
)

type Reservation struct {
	AccountID  domain.AccountID
	Seats      int
	ReservedAt time.Time
}

// InMemorySeatReservationService keeps reservations in process memory. It is
// used when no reservation backend is configured.
type InMemorySeatReservationService struct {
	mu           sync.Mutex
	reservations []Reservation
}

func NewInMemorySeatReservationService() *InMemorySeatReservationService {
	return &InMemorySeatReservationService{}
}

func (s *InMemorySeatReservationService) ReserveSeat(ctx context.Context, accountID domain.AccountID, totalSeats int) error {
	if totalSeats < 0 {
		return fmt.Errorf("cannot reserve %d seats", totalSeats)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.reservations = append(s.reservations, Reservation{
		AccountID:  accountID,
		Seats:      totalSeats,
		ReservedAt: time.Now(),
	})

	return nil
}

// ReservedSeats sums the seats of every reservation made for the account.
func (s *InMemorySeatReservationService) ReservedSeats(ctx context.Context, accountID domain.AccountID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reservations := lo.Filter(s.reservations, func(r Reservation, _ int) bool {
		return r.AccountID == accountID
	})

	return lo.SumBy(reservations, func(r Reservation) int { return r.Seats }), nil
}

func (s *InMemorySeatReservationService) Reservations() []Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	reservations := make([]Reservation, len(s.reservations))
	copy(reservations, s.reservations)

	return reservations
}
