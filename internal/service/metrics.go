package service

import (
	"context"
	"errors"

	"github.com/metinatakli/cinema-tickets/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type purchaseMetrics struct {
	purchases     metric.Int64Counter
	seatsReserved metric.Int64Counter
}

func newPurchaseMetrics(meter metric.Meter) (*purchaseMetrics, error) {
	purchases, err := meter.Int64Counter(
		"ticket_purchases_total",
		metric.WithDescription("Ticket purchase attempts by outcome"),
	)
	if err != nil {
		return nil, err
	}

	seatsReserved, err := meter.Int64Counter(
		"ticket_seats_reserved_total",
		metric.WithDescription("Seats reserved by successful purchases"),
	)
	if err != nil {
		return nil, err
	}

	return &purchaseMetrics{
		purchases:     purchases,
		seatsReserved: seatsReserved,
	}, nil
}

func (m *purchaseMetrics) recordSuccess(ctx context.Context, outcome *domain.PurchaseOutcome) {
	m.purchases.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "Success")))
	m.seatsReserved.Add(ctx, int64(outcome.TotalSeats))
}

func (m *purchaseMetrics) recordFailure(ctx context.Context, err error) {
	outcome := "Unknown"

	var purchaseErr *domain.PurchaseError
	if errors.As(err, &purchaseErr) {
		outcome = purchaseErr.KindName()
	}

	m.purchases.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
