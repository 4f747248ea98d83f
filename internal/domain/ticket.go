package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

type TicketCategory string

const (
	CategoryAdult  TicketCategory = "ADULT"
	CategoryChild  TicketCategory = "CHILD"
	CategoryInfant TicketCategory = "INFANT"
)

func (c TicketCategory) String() string {
	return string(c)
}

// TicketConfig is the category to unit price table. It is built once at startup
// and never changes afterwards; every pipeline stage iterates over it instead of
// a fixed set of categories.
type TicketConfig struct {
	prices     map[TicketCategory]decimal.Decimal
	categories []TicketCategory
}

func NewTicketConfig(prices map[TicketCategory]decimal.Decimal) (*TicketConfig, error) {
	if len(prices) == 0 {
		return nil, errors.New("ticket config must contain at least one category")
	}

	cfg := &TicketConfig{
		prices:     make(map[TicketCategory]decimal.Decimal, len(prices)),
		categories: make([]TicketCategory, 0, len(prices)),
	}

	for category, price := range prices {
		canonical := TicketCategory(strings.ToUpper(strings.TrimSpace(string(category))))
		if canonical == "" {
			return nil, errors.New("ticket category must not be empty")
		}

		if price.IsNegative() {
			return nil, fmt.Errorf("price of %s must not be negative", canonical)
		}

		if _, exists := cfg.prices[canonical]; exists {
			return nil, fmt.Errorf("ticket category %s is configured more than once", canonical)
		}

		cfg.prices[canonical] = price
		cfg.categories = append(cfg.categories, canonical)
	}

	slices.Sort(cfg.categories)

	return cfg, nil
}

func DefaultTicketConfig() *TicketConfig {
	cfg, _ := NewTicketConfig(map[TicketCategory]decimal.Decimal{
		CategoryAdult:  decimal.NewFromInt(25),
		CategoryChild:  decimal.NewFromInt(15),
		CategoryInfant: decimal.Zero,
	})

	return cfg
}

// Categories returns the configured categories in a stable order.
func (c *TicketConfig) Categories() []TicketCategory {
	return slices.Clone(c.categories)
}

func (c *TicketConfig) Price(category TicketCategory) (decimal.Decimal, bool) {
	price, ok := c.prices[category]
	return price, ok
}

func (c *TicketConfig) Has(category TicketCategory) bool {
	_, ok := c.prices[category]
	return ok
}

// Lookup resolves raw input to a configured category, ignoring case and
// surrounding whitespace.
func (c *TicketConfig) Lookup(raw string) (TicketCategory, bool) {
	category := TicketCategory(strings.ToUpper(strings.TrimSpace(raw)))
	if !c.Has(category) {
		return "", false
	}

	return category, true
}

func (c *TicketConfig) categoryList() string {
	names := make([]string, len(c.categories))
	for i, category := range c.categories {
		names[i] = string(category)
	}

	return strings.Join(names, ", ")
}

// TicketTypeRequest is an immutable (category, quantity) pair. It can only be
// obtained through NewTicketTypeRequest, which validates both fields.
type TicketTypeRequest struct {
	category TicketCategory
	quantity int
}

func NewTicketTypeRequest(cfg *TicketConfig, category TicketCategory, quantity int) (TicketTypeRequest, error) {
	if !cfg.Has(category) {
		return TicketTypeRequest{}, newPurchaseError(
			ErrInvalidTicketType,
			fmt.Sprintf("invalid ticket type %q: must be one of %s", category, cfg.categoryList()),
		)
	}

	if quantity < 0 {
		return TicketTypeRequest{}, newPurchaseError(
			ErrInvalidQuantity,
			fmt.Sprintf("invalid quantity %d for %s: must not be negative", quantity, category),
		)
	}

	return TicketTypeRequest{category: category, quantity: quantity}, nil
}

func (r TicketTypeRequest) Category() TicketCategory {
	return r.category
}

func (r TicketTypeRequest) Quantity() int {
	return r.quantity
}
