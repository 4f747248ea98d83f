package payment

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

type StripePaymentService struct {
	currency      stripe.Currency
	paymentMethod string
	newIntent     func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

func NewStripePaymentService(currency, paymentMethod string) *StripePaymentService {
	return &StripePaymentService{
		currency:      stripe.Currency(currency),
		paymentMethod: paymentMethod,
		newIntent:     paymentintent.New,
	}
}

func (s *StripePaymentService) MakePayment(ctx context.Context, accountID domain.AccountID, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("cannot charge negative amount %s", amount)
	}

	// Nothing to collect, Stripe rejects zero amount intents.
	if amount.IsZero() {
		return nil
	}

	accountIDStr := strconv.FormatInt(int64(accountID), 10)

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(minorUnits(s.currency, amount)),
		Currency:      stripe.String(string(s.currency)),
		PaymentMethod: stripe.String(s.paymentMethod),
		Confirm:       stripe.Bool(true),
		Description:   stripe.String(fmt.Sprintf("Cinema tickets for account %s", accountIDStr)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String(string(stripe.PaymentIntentAutomaticPaymentMethodsAllowRedirectsNever)),
		},
		Metadata: map[string]string{
			"account_id": accountIDStr,
		},
	}
	params.Context = ctx

	intent, err := s.newIntent(params)
	if err != nil {
		return fmt.Errorf("failed to create payment intent for account %s: %w", accountIDStr, err)
	}

	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return fmt.Errorf("payment intent %s for account %s ended with status %s", intent.ID, accountIDStr, intent.Status)
	}

	return nil
}

// zeroDecimalCurrencies are charged in whole units by Stripe.
var zeroDecimalCurrencies = map[stripe.Currency]struct{}{
	"bif": {},
	"clp": {},
	"djf": {},
	"gnf": {},
	"jpy": {},
	"kmf": {},
	"krw": {},
	"mga": {},
	"pyg": {},
	"rwf": {},
	"ugx": {},
	"vnd": {},
	"vuv": {},
	"xaf": {},
	"xof": {},
	"xpf": {},
}

func minorUnits(currency stripe.Currency, amount decimal.Decimal) int64 {
	if _, ok := zeroDecimalCurrencies[stripe.Currency(strings.ToLower(string(currency)))]; ok {
		return amount.Round(0).IntPart()
	}

	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
