package domain

import (
	"maps"
	"math"
	"slices"

	"github.com/samber/lo"
)

// TicketQuantities holds the aggregated count of every configured category.
// Categories without requests are present with a count of zero.
type TicketQuantities struct {
	counts     map[TicketCategory]int
	categories []TicketCategory
}

// Aggregate folds requests into per-category totals. Duplicate categories
// accumulate and request order does not matter.
func Aggregate(cfg *TicketConfig, requests []TicketTypeRequest) TicketQuantities {
	q := TicketQuantities{
		counts:     make(map[TicketCategory]int, len(cfg.categories)),
		categories: cfg.Categories(),
	}

	for _, category := range q.categories {
		q.counts[category] = 0
	}

	for _, r := range requests {
		q.counts[r.Category()] = saturatingAdd(q.counts[r.Category()], r.Quantity())
	}

	return q
}

func (q TicketQuantities) Of(category TicketCategory) int {
	return q.counts[category]
}

// Categories returns a copy of the configured categories in order.
func (q TicketQuantities) Categories() []TicketCategory {
	return slices.Clone(q.categories)
}

func (q TicketQuantities) Total() int {
	return lo.Reduce(q.categories, func(total int, category TicketCategory, _ int) int {
		return saturatingAdd(total, q.counts[category])
	}, 0)
}

// AsMap returns a copy of the counts.
func (q TicketQuantities) AsMap() map[TicketCategory]int {
	return maps.Clone(q.counts)
}

func saturatingAdd(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}

	return a + b
}
