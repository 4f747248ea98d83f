package service

import (
	"context"
	"errors"
	"testing"

	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestPurchaseMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	metrics, err := newPurchaseMetrics(provider.Meter(instrumentationName))
	require.NoError(t, err)

	ctx := context.Background()

	metrics.recordSuccess(ctx, &domain.PurchaseOutcome{TotalSeats: 4})
	metrics.recordSuccess(ctx, &domain.PurchaseOutcome{TotalSeats: 1})
	metrics.recordFailure(ctx, domain.NewFulfillmentError(errors.New("down")))
	metrics.recordFailure(ctx, errors.New("plain"))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	purchases := map[string]int64{}
	var seats int64

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "unexpected data type for %s", m.Name)

			for _, dp := range sum.DataPoints {
				switch m.Name {
				case "ticket_purchases_total":
					outcome, _ := dp.Attributes.Value(attribute.Key("outcome"))
					purchases[outcome.AsString()] += dp.Value
				case "ticket_seats_reserved_total":
					seats += dp.Value
				}
			}
		}
	}

	assert.Equal(t, map[string]int64{"Success": 2, "FulfillmentFailure": 1, "Unknown": 1}, purchases)
	assert.Equal(t, int64(5), seats)
}
