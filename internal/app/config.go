package app

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-tickets/internal/domain"
	appvalidator "github.com/metinatakli/cinema-tickets/internal/validator"
	"github.com/shopspring/decimal"
)

type Config struct {
	Port             int
	Env              string
	OtelCollectorUrl string
	SeatBackend      string `validate:"oneof=memory redis postgres"`
	DB               DBConfig
	Redis            RedisConfig
	Stripe           StripeConfig
	Ticketing        TicketingConfig
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

type RedisConfig struct {
	URL                string
	MaxOpenConns       int
	MaxIdleConns       int
	MaxIdleTime        time.Duration
	SeatReservationTTL time.Duration
}

type StripeConfig struct {
	SecretKey     string
	Currency      string
	PaymentMethod string
}

type TicketingConfig struct {
	Prices            []CategoryPrice `validate:"required,min=1,unique=Category,dive"`
	MaxTickets        int             `validate:"gte=1"`
	GuardianCategory  string          `validate:"required,ticket_category"`
	DependentCategory string          `validate:"required,ticket_category"`
	ZeroSeatCategory  string          `validate:"required,ticket_category"`
}

type CategoryPrice struct {
	Category string `validate:"required,ticket_category"`
	Price    string `validate:"required,nonneg_decimal"`
}

func defaultTicketPrices() []CategoryPrice {
	return []CategoryPrice{
		{Category: string(domain.CategoryAdult), Price: "25"},
		{Category: string(domain.CategoryChild), Price: "15"},
		{Category: string(domain.CategoryInfant), Price: "0"},
	}
}

// parseFlags reads the configuration from the command line. The second return
// value reports whether -version was given.
func parseFlags(args []string) (Config, bool, error) {
	var cfg Config

	fs := flag.NewFlagSet("cinema-tickets", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "port", 3000, "server port")
	fs.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")
	fs.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector gRPC endpoint")
	fs.StringVar(&cfg.SeatBackend, "seat-backend", "memory", "Seat reservation backend (memory|redis|postgres)")

	fs.StringVar(&cfg.DB.DSN, "db-dsn", "", "PostgreSQL DSN")
	fs.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	fs.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	fs.StringVar(&cfg.Redis.URL, "redis-url", "", "Redis URL")
	fs.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	fs.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	fs.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")
	fs.DurationVar(&cfg.Redis.SeatReservationTTL, "seat-reservation-ttl", 24*time.Hour, "How long Redis keeps a seat reservation record")

	fs.StringVar(&cfg.Stripe.SecretKey, "stripe-key", "", "Stripe secret key")
	fs.StringVar(&cfg.Stripe.Currency, "stripe-currency", "gbp", "Currency used for ticket payments")
	fs.StringVar(&cfg.Stripe.PaymentMethod, "stripe-payment-method", "pm_card_visa", "Stripe payment method charged for tickets")

	cfg.Ticketing.Prices = defaultTicketPrices()
	fs.Func("ticket-prices", `Ticket categories and unit prices (e.g. "ADULT=25,CHILD=15,INFANT=0")`, func(s string) error {
		prices, err := parseTicketPrices(s)
		if err != nil {
			return err
		}

		cfg.Ticketing.Prices = prices
		return nil
	})
	fs.IntVar(&cfg.Ticketing.MaxTickets, "max-tickets", domain.DefaultMaxTickets, "Maximum tickets per purchase")
	fs.StringVar(&cfg.Ticketing.GuardianCategory, "guardian-category", string(domain.CategoryAdult), "Category that accompanies dependents")
	fs.StringVar(&cfg.Ticketing.DependentCategory, "dependent-category", string(domain.CategoryChild), "Category that needs a guardian")
	fs.StringVar(&cfg.Ticketing.ZeroSeatCategory, "zero-seat-category", string(domain.CategoryInfant), "Category that takes no seat and needs one guardian each")

	displayVersion := fs.Bool("version", false, "Display version and exit")

	err := fs.Parse(args)
	if err != nil {
		return Config{}, false, err
	}

	return cfg, *displayVersion, nil
}

func parseTicketPrices(s string) ([]CategoryPrice, error) {
	var prices []CategoryPrice

	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		category, price, found := strings.Cut(entry, "=")
		if !found {
			return nil, fmt.Errorf("ticket price %q must have the form CATEGORY=PRICE", entry)
		}

		prices = append(prices, CategoryPrice{
			Category: strings.ToUpper(strings.TrimSpace(category)),
			Price:    strings.TrimSpace(price),
		})
	}

	return prices, nil
}

// Build validates the ticketing section and turns it into the immutable domain
// configuration.
func (c TicketingConfig) Build(v *validator.Validate) (*domain.TicketConfig, domain.PurchaseRules, error) {
	err := v.Struct(c)
	if err != nil {
		return nil, domain.PurchaseRules{}, describeValidationErrors(err)
	}

	prices := make(map[domain.TicketCategory]decimal.Decimal, len(c.Prices))
	for _, p := range c.Prices {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return nil, domain.PurchaseRules{}, fmt.Errorf("invalid price for %s: %w", p.Category, err)
		}

		prices[domain.TicketCategory(p.Category)] = price
	}

	ticketConfig, err := domain.NewTicketConfig(prices)
	if err != nil {
		return nil, domain.PurchaseRules{}, err
	}

	rules := domain.PurchaseRules{
		MaxTickets: c.MaxTickets,
		Guardian:   domain.TicketCategory(c.GuardianCategory),
		Dependent:  domain.TicketCategory(c.DependentCategory),
		ZeroSeat:   domain.TicketCategory(c.ZeroSeatCategory),
	}

	err = rules.Check(ticketConfig)
	if err != nil {
		return nil, domain.PurchaseRules{}, err
	}

	return ticketConfig, rules, nil
}

// describeValidationErrors joins validator field errors into one readable error
// per field, e.g. "Ticketing.MaxTickets must be greater than or equal to 1".
func describeValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := make([]error, len(validationErrors))
	for i, fieldErr := range validationErrors {
		errs[i] = fmt.Errorf("%s %s", fieldErr.Namespace(), appvalidator.ValidationMessage(fieldErr))
	}

	return errors.Join(errs...)
}
