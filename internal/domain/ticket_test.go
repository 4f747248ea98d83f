package domain

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicketConfig(t *testing.T) {
	tests := []struct {
		name           string
		prices         map[TicketCategory]decimal.Decimal
		wantCategories []TicketCategory
		wantErr        bool
	}{
		{
			name: "canonicalises and sorts categories",
			prices: map[TicketCategory]decimal.Decimal{
				"child ": decimal.NewFromInt(15),
				"Adult":  decimal.NewFromInt(25),
				"INFANT": decimal.Zero,
			},
			wantCategories: []TicketCategory{CategoryAdult, CategoryChild, CategoryInfant},
		},
		{
			name:    "empty table",
			prices:  map[TicketCategory]decimal.Decimal{},
			wantErr: true,
		},
		{
			name:    "negative price",
			prices:  map[TicketCategory]decimal.Decimal{CategoryAdult: decimal.NewFromInt(-1)},
			wantErr: true,
		},
		{
			name: "same category twice after canonicalisation",
			prices: map[TicketCategory]decimal.Decimal{
				"adult": decimal.NewFromInt(25),
				"ADULT": decimal.NewFromInt(20),
			},
			wantErr: true,
		},
		{
			name:    "blank category",
			prices:  map[TicketCategory]decimal.Decimal{" ": decimal.NewFromInt(1)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewTicketConfig(tt.prices)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)

			if diff := cmp.Diff(tt.wantCategories, cfg.Categories()); diff != "" {
				t.Errorf("categories mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTicketConfigIsNotAffectedByCallerMap(t *testing.T) {
	prices := map[TicketCategory]decimal.Decimal{CategoryAdult: decimal.NewFromInt(25)}

	cfg, err := NewTicketConfig(prices)
	require.NoError(t, err)

	prices[CategoryAdult] = decimal.NewFromInt(99)
	prices["VIP"] = decimal.NewFromInt(50)

	price, ok := cfg.Price(CategoryAdult)
	assert.True(t, ok)
	assert.True(t, price.Equal(decimal.NewFromInt(25)))
	assert.False(t, cfg.Has("VIP"))

	categories := cfg.Categories()
	categories[0] = "CHANGED"
	assert.Equal(t, []TicketCategory{CategoryAdult}, cfg.Categories())
}

func TestDefaultTicketConfig(t *testing.T) {
	cfg := DefaultTicketConfig()

	want := map[TicketCategory]string{
		CategoryAdult:  "25",
		CategoryChild:  "15",
		CategoryInfant: "0",
	}

	for category, price := range want {
		got, ok := cfg.Price(category)
		require.True(t, ok, "missing %s", category)
		assert.Equal(t, price, got.String())
	}
}

func TestTicketConfigLookup(t *testing.T) {
	cfg := DefaultTicketConfig()

	tests := []struct {
		raw    string
		want   TicketCategory
		wantOk bool
	}{
		{raw: "ADULT", want: CategoryAdult, wantOk: true},
		{raw: "child", want: CategoryChild, wantOk: true},
		{raw: "  Infant ", want: CategoryInfant, wantOk: true},
		{raw: "SENIOR"},
		{raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := cfg.Lookup(tt.raw)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTicketTypeRequest(t *testing.T) {
	cfg := DefaultTicketConfig()

	t.Run("valid request", func(t *testing.T) {
		r, err := NewTicketTypeRequest(cfg, CategoryChild, 3)
		require.NoError(t, err)
		assert.Equal(t, CategoryChild, r.Category())
		assert.Equal(t, 3, r.Quantity())
	})

	t.Run("zero quantity is allowed", func(t *testing.T) {
		r, err := NewTicketTypeRequest(cfg, CategoryAdult, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, r.Quantity())
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := NewTicketTypeRequest(cfg, "SENIOR", 1)
		assert.True(t, errors.Is(err, ErrInvalidTicketType))
		assert.True(t, errors.Is(err, ErrInvalidPurchase))
	})

	t.Run("negative quantity", func(t *testing.T) {
		_, err := NewTicketTypeRequest(cfg, CategoryAdult, -1)
		assert.True(t, errors.Is(err, ErrInvalidQuantity))
	})
}
