package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/metinatakli/cinema-tickets/internal/service"

type TicketService struct {
	config   *domain.TicketConfig
	rules    domain.PurchaseRules
	seats    domain.SeatReservationService
	payments domain.TicketPaymentService
	logger   *slog.Logger
	tracer   trace.Tracer
	metrics  *purchaseMetrics
}

func NewTicketService(
	config *domain.TicketConfig,
	rules domain.PurchaseRules,
	seats domain.SeatReservationService,
	payments domain.TicketPaymentService,
	logger *slog.Logger) (*TicketService, error) {

	if config == nil {
		return nil, errors.New("ticket config is required")
	}

	if seats == nil || payments == nil {
		return nil, errors.New("seat reservation and payment services are required")
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	err := rules.Check(config)
	if err != nil {
		return nil, fmt.Errorf("invalid purchase rules: %w", err)
	}

	metrics, err := newPurchaseMetrics(otel.Meter(instrumentationName))
	if err != nil {
		return nil, fmt.Errorf("failed to create purchase metrics: %w", err)
	}

	return &TicketService{
		config:   config,
		rules:    rules,
		seats:    seats,
		payments: payments,
		logger:   logger,
		tracer:   otel.Tracer(instrumentationName),
		metrics:  metrics,
	}, nil
}

func (s *TicketService) Config() *domain.TicketConfig {
	return s.config
}

func (s *TicketService) Rules() domain.PurchaseRules {
	return s.rules
}

// PurchaseTickets validates and prices the requests, then reserves the seats and
// takes the payment. Every validation failure is returned before either
// collaborator is called.
func (s *TicketService) PurchaseTickets(
	ctx context.Context,
	accountID any,
	requests ...domain.RawTicketTypeRequest) (*domain.PurchaseOutcome, error) {

	purchaseID := uuid.New()
	logger := LoggerFromContext(ctx, s.logger).With("purchase_id", purchaseID.String())

	ctx, span := s.tracer.Start(ctx, "TicketService.PurchaseTickets",
		trace.WithAttributes(attribute.String("purchase.id", purchaseID.String())))
	defer span.End()

	logger.Info("starting ticket purchase", "account_id", accountID, "requests", len(requests))

	outcome, err := s.purchase(ctx, logger, accountID, requests)
	if err != nil {
		s.metrics.recordFailure(ctx, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	outcome.ID = purchaseID
	s.metrics.recordSuccess(ctx, outcome)
	span.SetAttributes(
		attribute.Int64("purchase.account_id", int64(outcome.AccountID)),
		attribute.Int("purchase.total_seats", outcome.TotalSeats),
		attribute.String("purchase.total_cost", outcome.TotalCost.String()),
	)

	logger.Info("ticket purchase successful",
		"account_id", outcome.AccountID,
		"total_seats", outcome.TotalSeats,
		"total_cost", outcome.TotalCost.String())

	return outcome, nil
}

func (s *TicketService) purchase(
	ctx context.Context,
	logger *slog.Logger,
	rawAccountID any,
	raw []domain.RawTicketTypeRequest) (*domain.PurchaseOutcome, error) {

	accountID, err := domain.ParseAccountID(rawAccountID)
	if err != nil {
		logger.Warn("purchase rejected: invalid account", "error", err)
		return nil, err
	}

	logger = logger.With("account_id", int64(accountID))

	requests, err := domain.NormalizeRequests(s.config, raw)
	if err != nil {
		logger.Warn("purchase rejected: invalid ticket type request", "error", err)
		return nil, err
	}

	quantities := domain.Aggregate(s.config, requests)

	err = s.rules.Validate(quantities)
	if err != nil {
		logger.Warn("purchase rejected: ticket quantities break purchase rules",
			"error", err, "quantities", quantities.AsMap())
		return nil, err
	}

	totalSeats := s.rules.TotalSeats(quantities)
	totalCost := domain.TotalCost(s.config, quantities)

	logger.Info("calculated total seats and cost", "total_seats", totalSeats, "total_cost", totalCost.String())

	err = s.fulfil(ctx, logger, accountID, totalSeats, totalCost)
	if err != nil {
		return nil, err
	}

	return &domain.PurchaseOutcome{
		AccountID:  accountID,
		TotalSeats: totalSeats,
		TotalCost:  totalCost,
		Quantities: quantities,
	}, nil
}

// fulfil reserves seats before taking payment. A failed payment does not
// release the reservation.
func (s *TicketService) fulfil(
	ctx context.Context,
	logger *slog.Logger,
	accountID domain.AccountID,
	totalSeats int,
	totalCost decimal.Decimal) error {

	logger.Info("reserving seats", "total_seats", totalSeats)

	err := callCollaborator(func() error {
		return s.seats.ReserveSeat(ctx, accountID, totalSeats)
	})
	if err != nil {
		logger.Error("seat reservation failed", "error", err)
		return domain.NewFulfillmentError(fmt.Errorf("seat reservation: %w", err))
	}

	logger.Info("processing payment", "total_cost", totalCost.String())

	err = callCollaborator(func() error {
		return s.payments.MakePayment(ctx, accountID, totalCost)
	})
	if err != nil {
		logger.Error("payment failed after seats were reserved, reservation is kept",
			"error", err, "total_seats", totalSeats)
		return domain.NewFulfillmentError(fmt.Errorf("payment: %w", err))
	}

	return nil
}

func callCollaborator(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("collaborator panicked: %v", r)
		}
	}()

	return fn()
}
