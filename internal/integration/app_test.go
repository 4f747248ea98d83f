package integration_test

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-tickets/internal/app"
	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/metinatakli/cinema-tickets/internal/payment"
	"github.com/metinatakli/cinema-tickets/internal/seatbooking"
	"github.com/metinatakli/cinema-tickets/internal/service"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	Handler  http.Handler
	Seats    seatbooking.Backend
	Payments *payment.InMemoryPaymentService
}

type TestEnv struct {
	DB       *pgxpool.Pool
	Redis    *redis.Client
	Postgres *TestApp
	Cache    *TestApp
}

func newTestEnv(cfg app.Config) (*TestEnv, error) {
	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	postgresApp, err := newTestApp(cfg, redisClient, seatbooking.NewPostgresSeatReservationService(db))
	if err != nil {
		return nil, err
	}

	cacheApp, err := newTestApp(cfg, redisClient, seatbooking.NewRedisSeatReservationService(redisClient, cfg.Redis.SeatReservationTTL))
	if err != nil {
		return nil, err
	}

	return &TestEnv{
		DB:       db,
		Redis:    redisClient,
		Postgres: postgresApp,
		Cache:    cacheApp,
	}, nil
}

func newTestApp(cfg app.Config, redisClient *redis.Client, seats seatbooking.Backend) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	payments := payment.NewInMemoryPaymentService()

	ticketService, err := service.NewTicketService(
		domain.DefaultTicketConfig(),
		domain.DefaultPurchaseRules(),
		seats,
		payments,
		logger,
	)
	if err != nil {
		return nil, err
	}

	handler, err := app.NewHandler(cfg, logger, app.NewSessionManager(redisClient), ticketService, seats)
	if err != nil {
		return nil, err
	}

	return &TestApp{
		Handler:  handler,
		Seats:    seats,
		Payments: payments,
	}, nil
}
