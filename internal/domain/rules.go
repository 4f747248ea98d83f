package domain

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const DefaultMaxTickets = 25

// PurchaseRules names the categories that carry accompaniment and seating
// semantics and caps the tickets bought in one transaction.
type PurchaseRules struct {
	MaxTickets int
	// Guardian must be present whenever Dependent tickets are bought.
	Guardian  TicketCategory
	Dependent TicketCategory
	// ZeroSeat tickets take no seat and need one Guardian ticket each.
	ZeroSeat TicketCategory
}

func DefaultPurchaseRules() PurchaseRules {
	return PurchaseRules{
		MaxTickets: DefaultMaxTickets,
		Guardian:   CategoryAdult,
		Dependent:  CategoryChild,
		ZeroSeat:   CategoryInfant,
	}
}

// Check verifies the rules against a ticket configuration.
func (r PurchaseRules) Check(cfg *TicketConfig) error {
	if r.MaxTickets < 1 {
		return fmt.Errorf("max tickets must be at least 1, got %d", r.MaxTickets)
	}

	roles := []struct {
		name     string
		category TicketCategory
	}{
		{"guardian", r.Guardian},
		{"dependent", r.Dependent},
		{"zero-seat", r.ZeroSeat},
	}

	for _, role := range roles {
		if !cfg.Has(role.category) {
			return fmt.Errorf("%s category %q is not a configured ticket category", role.name, role.category)
		}
	}

	// Each role must name its own category.
	for i, role := range roles {
		for _, other := range roles[i+1:] {
			if role.category == other.category {
				return fmt.Errorf("%s and %s roles must use different categories, both are %q", role.name, other.name, role.category)
			}
		}
	}

	return nil
}

// Validate applies the quantity rules in a fixed order and reports the first
// violation only.
func (r PurchaseRules) Validate(q TicketQuantities) error {
	total := q.Total()
	if total < 1 || total > r.MaxTickets {
		return newPurchaseError(
			ErrQuantityOutOfRange,
			fmt.Sprintf("ticket quantity must be between 1-%d", r.MaxTickets),
		)
	}

	guardians := q.Of(r.Guardian)

	if q.Of(r.Dependent) > 0 && guardians == 0 {
		return newPurchaseError(
			ErrMissingGuardianForDependent,
			fmt.Sprintf("at least one %s ticket must be purchased to buy %s tickets", r.Guardian, r.Dependent),
		)
	}

	if q.Of(r.ZeroSeat) > guardians {
		return newPurchaseError(
			ErrInsufficientGuardians,
			fmt.Sprintf("one %s ticket must be purchased for each %s ticket", r.Guardian, r.ZeroSeat),
		)
	}

	return nil
}

// TotalSeats counts every ticket except the zero-seat category.
func (r PurchaseRules) TotalSeats(q TicketQuantities) int {
	seated := lo.Filter(q.Categories(), func(category TicketCategory, _ int) bool {
		return category != r.ZeroSeat
	})

	return lo.Sum(lo.Map(seated, func(category TicketCategory, _ int) int {
		return q.Of(category)
	}))
}

// TotalCost prices every category at its configured unit price.
func TotalCost(cfg *TicketConfig, q TicketQuantities) decimal.Decimal {
	total := decimal.Zero

	for _, category := range q.Categories() {
		price, _ := cfg.Price(category)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(q.Of(category)))))
	}

	return total
}
