package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/exaring/otelpgx"
	"github.com/getkin/kin-openapi/routers"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-tickets/api"
	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/metinatakli/cinema-tickets/internal/payment"
	"github.com/metinatakli/cinema-tickets/internal/seatbooking"
	"github.com/metinatakli/cinema-tickets/internal/service"
	appvalidator "github.com/metinatakli/cinema-tickets/internal/validator"
	"github.com/metinatakli/cinema-tickets/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
	"github.com/stripe/stripe-go/v82"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const serviceName = "cinema-tickets-api"

var (
	version = vcs.Version()
)

type application struct {
	config         Config
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	openapiRouter  routers.Router

	ticketService *service.TicketService
	seatCounter   seatbooking.SeatCounter
}

func Run() error {
	cfg, displayVersion, err := parseFlags(os.Args[1:])
	if err != nil {
		return err
	}

	if displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	textHandler := slog.NewTextHandler(os.Stdout, nil)
	logger := slog.New(textHandler)

	validator := appvalidator.NewValidator()

	err = validator.Struct(cfg)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", describeValidationErrors(err))
	}

	ticketConfig, rules, err := cfg.Ticketing.Build(validator)
	if err != nil {
		return fmt.Errorf("invalid ticketing configuration: %w", err)
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		app.logger = slog.New(NewMultiHandler(textHandler, otelslog.NewHandler(serviceName)))
	}

	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		redisClient, err = NewRedisClient(cfg)
		if err != nil {
			return err
		}
		defer redisClient.Close()
	}

	app.sessionManager = NewSessionManager(redisClient)

	seats, closeSeats, err := app.newSeatReservationService(redisClient)
	if err != nil {
		return err
	}
	defer closeSeats()

	app.seatCounter = seats

	app.ticketService, err = service.NewTicketService(
		ticketConfig,
		rules,
		seats,
		app.newPaymentService(),
		app.logger,
	)
	if err != nil {
		return err
	}

	app.openapiRouter, err = newOpenAPIRouter()
	if err != nil {
		return err
	}

	return app.run()
}

func (app *application) newSeatReservationService(redisClient *redis.Client) (seatbooking.Backend, func(), error) {
	switch app.config.SeatBackend {
	case "redis":
		if redisClient == nil {
			return nil, nil, errors.New("seat backend redis requires -redis-url")
		}

		app.logger.Info("using redis seat reservation service")
		return seatbooking.NewRedisSeatReservationService(redisClient, app.config.Redis.SeatReservationTTL), func() {}, nil
	case "postgres":
		db, err := NewDatabasePool(app.config)
		if err != nil {
			return nil, nil, err
		}

		app.logger.Info("using postgres seat reservation service")
		return seatbooking.NewPostgresSeatReservationService(db), db.Close, nil
	default:
		app.logger.Warn("no seat reservation backend configured, reservations are kept in memory")
		return seatbooking.NewInMemorySeatReservationService(), func() {}, nil
	}
}

func (app *application) newPaymentService() domain.TicketPaymentService {
	if app.config.Stripe.SecretKey == "" {
		app.logger.Warn("stripe key not set, payments are recorded in memory")
		return payment.NewInMemoryPaymentService()
	}

	stripe.Key = app.config.Stripe.SecretKey

	return payment.NewStripePaymentService(app.config.Stripe.Currency, app.config.Stripe.PaymentMethod)
}

func NewSessionManager(client *redis.Client) *scs.SessionManager {
	sessionManager := scs.New()

	if client != nil {
		sessionManager.Store = goredisstore.New(client)
	}
	sessionManager.IdleTimeout = 20 * time.Minute
	sessionManager.Cookie.Name = "session_id"

	return sessionManager
}

func newOpenAPIRouter() (routers.Router, error) {
	doc, err := api.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi document: %w", err)
	}

	err = doc.Validate(context.Background())
	if err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}

	return legacyrouter.NewRouter(doc)
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	err := errors.Join(redisotel.InstrumentTracing(rdb), redisotel.InstrumentMetrics(rdb))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// NewHandler assembles the HTTP handler around an already built ticket service.
func NewHandler(cfg Config, logger *slog.Logger, sessionManager *scs.SessionManager, ticketService *service.TicketService, seatCounter seatbooking.SeatCounter) (http.Handler, error) {
	openapiRouter, err := newOpenAPIRouter()
	if err != nil {
		return nil, err
	}

	app := &application{
		config:         cfg,
		logger:         logger,
		sessionManager: sessionManager,
		openapiRouter:  openapiRouter,
		ticketService:  ticketService,
		seatCounter:    seatCounter,
	}

	return app.routes(), nil
}

func (app *application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)
	r.Use(app.ensureSession)
	r.Use(app.requestLogger)

	return api.HandlerWithOptions(app, api.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []api.MiddlewareFunc{app.validateRequest},
		ErrorHandlerFunc: app.badRequestResponse,
	})
}
