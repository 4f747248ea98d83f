package mocks

import (
	"context"

	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockSeatReservationService struct {
	mock.Mock
}

func (m *MockSeatReservationService) ReserveSeat(ctx context.Context, accountID domain.AccountID, totalSeats int) error {
	args := m.Called(ctx, accountID, totalSeats)
	return args.Error(0)
}

type MockTicketPaymentService struct {
	mock.Mock
}

func (m *MockTicketPaymentService) MakePayment(ctx context.Context, accountID domain.AccountID, amount decimal.Decimal) error {
	args := m.Called(ctx, accountID, amount)
	return args.Error(0)
}
