package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type priceInput struct {
	Category string `validate:"required,ticket_category"`
	Price    string `validate:"required,nonneg_decimal"`
}

func TestCustomValidations(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		input   priceInput
		wantTag string
	}{
		{name: "valid", input: priceInput{Category: "ADULT", Price: "25"}},
		{name: "valid with digits and fraction", input: priceInput{Category: "VIP_2", Price: "12.50"}},
		{name: "free ticket", input: priceInput{Category: "INFANT", Price: "0"}},
		{name: "lower case category", input: priceInput{Category: "adult", Price: "25"}, wantTag: "ticket_category"},
		{name: "category starting with digit", input: priceInput{Category: "1ST", Price: "25"}, wantTag: "ticket_category"},
		{name: "negative price", input: priceInput{Category: "ADULT", Price: "-1"}, wantTag: "nonneg_decimal"},
		{name: "price is not a number", input: priceInput{Category: "ADULT", Price: "free"}, wantTag: "nonneg_decimal"},
		{name: "missing category", input: priceInput{Price: "1"}, wantTag: "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if tt.wantTag == "" {
				assert.NoError(t, err)
				return
			}

			var validationErrors validator.ValidationErrors
			require.True(t, errors.As(err, &validationErrors))
			assert.Equal(t, tt.wantTag, validationErrors[0].Tag())
		})
	}
}

func TestValidationMessage(t *testing.T) {
	v := NewValidator()

	type input struct {
		Items []string `validate:"min=1"`
		Count int      `validate:"gte=1"`
	}

	err := v.Struct(input{})

	var validationErrors validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrors))

	messages := map[string]string{}
	for _, fieldErr := range validationErrors {
		messages[fieldErr.Field()] = ValidationMessage(fieldErr)
	}

	assert.Equal(t, map[string]string{
		"Items": "must contain at least 1 item(s)",
		"Count": "must be greater than or equal to 1",
	}, messages)
}
