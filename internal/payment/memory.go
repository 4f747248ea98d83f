package payment

import (
	"context"
	"fmt"
	"sync"

	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/shopspring/decimal"
)

type Charge struct {
	AccountID domain.AccountID
	Amount    decimal.Decimal
}

// InMemoryPaymentService records charges without contacting a payment
// provider. It is used when no Stripe key is configured.
type InMemoryPaymentService struct {
	mu      sync.Mutex
	charges []Charge
}

func NewInMemoryPaymentService() *InMemoryPaymentService {
	return &InMemoryPaymentService{}
}

func (m *InMemoryPaymentService) MakePayment(ctx context.Context, accountID domain.AccountID, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("cannot charge negative amount %s", amount)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.charges = append(m.charges, Charge{AccountID: accountID, Amount: amount})

	return nil
}

func (m *InMemoryPaymentService) Charges() []Charge {
	m.mu.Lock()
	defer m.mu.Unlock()

	charges := make([]Charge, len(m.charges))
	copy(charges, m.charges)

	return charges
}
