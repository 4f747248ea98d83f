package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

// RawTicketTypeRequest is a ticket request as it arrives from the caller,
// before the category and quantity have been checked.
type RawTicketTypeRequest struct {
	Category string `json:"category"`
	Quantity any    `json:"quantity"`
}

type AccountID int64

// ParseAccountID accepts any numeric representation of a whole number greater
// than zero.
func ParseAccountID(raw any) (AccountID, error) {
	if raw == nil {
		return 0, newPurchaseError(ErrInvalidAccount, "account ID is required and must be greater than 0")
	}

	id, whole, numeric := wholeNumber(raw)

	switch {
	case !numeric || !whole:
		return 0, newPurchaseError(ErrInvalidAccount, "account ID must be a whole number")
	case id <= 0:
		return 0, newPurchaseError(ErrInvalidAccount, "account ID is required and must be greater than 0")
	}

	return AccountID(id), nil
}

// NormalizeRequests converts raw requests into validated TicketTypeRequests.
// The first invalid entry fails the whole batch.
func NormalizeRequests(cfg *TicketConfig, raw []RawTicketTypeRequest) ([]TicketTypeRequest, error) {
	requests := make([]TicketTypeRequest, 0, len(raw))

	for _, r := range raw {
		category, ok := cfg.Lookup(r.Category)
		if !ok {
			return nil, newPurchaseError(
				ErrInvalidTicketType,
				fmt.Sprintf("invalid ticket type %q: must be one of %s", r.Category, cfg.categoryList()),
			)
		}

		quantity, whole, numeric := wholeNumber(r.Quantity)
		if !numeric || !whole {
			return nil, newPurchaseError(
				ErrInvalidQuantity,
				fmt.Sprintf("invalid quantity %v for %s: must be a whole number", r.Quantity, category),
			)
		}

		if quantity > math.MaxInt {
			quantity = math.MaxInt
		}

		request, err := NewTicketTypeRequest(cfg, category, int(quantity))
		if err != nil {
			return nil, err
		}

		requests = append(requests, request)
	}

	return requests, nil
}

// wholeNumber reports whether v is numeric and, if so, whether it holds a whole
// value. Values beyond the int64 range are clamped.
func wholeNumber(v any) (n int64, whole bool, numeric bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true, true
	case int8:
		return int64(x), true, true
	case int16:
		return int64(x), true, true
	case int32:
		return int64(x), true, true
	case int64:
		return x, true, true
	case uint:
		return clampUint(uint64(x)), true, true
	case uint8:
		return int64(x), true, true
	case uint16:
		return int64(x), true, true
	case uint32:
		return int64(x), true, true
	case uint64:
		return clampUint(x), true, true
	case float32:
		return wholeFloat(float64(x))
	case float64:
		return wholeFloat(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i, true, true
		}

		f, err := x.Float64()
		if err != nil {
			return 0, false, false
		}

		return wholeFloat(f)
	default:
		return 0, false, false
	}
}

func wholeFloat(f float64) (int64, bool, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false, true
	}

	if f != math.Trunc(f) {
		return 0, false, true
	}

	switch {
	case f >= math.MaxInt64:
		return math.MaxInt64, true, true
	case f <= math.MinInt64:
		return math.MinInt64, true, true
	}

	return int64(f), true, true
}

func clampUint(u uint64) int64 {
	if u > math.MaxInt64 {
		return math.MaxInt64
	}

	return int64(u)
}
