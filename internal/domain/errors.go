package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPurchase is matched by every failure detected before fulfillment.
	ErrInvalidPurchase = errors.New("invalid purchase")

	ErrInvalidAccount              = errors.New("invalid account")
	ErrInvalidTicketType           = errors.New("invalid ticket type")
	ErrInvalidQuantity             = errors.New("invalid quantity")
	ErrQuantityOutOfRange          = errors.New("quantity out of range")
	ErrMissingGuardianForDependent = errors.New("missing guardian for dependent")
	ErrInsufficientGuardians       = errors.New("insufficient guardians")
	ErrFulfillmentFailure          = errors.New("fulfillment failure")
)

var errorKindNames = map[error]string{
	ErrInvalidAccount:              "InvalidAccount",
	ErrInvalidTicketType:           "InvalidTicketType",
	ErrInvalidQuantity:             "InvalidQuantity",
	ErrQuantityOutOfRange:          "QuantityOutOfRange",
	ErrMissingGuardianForDependent: "MissingGuardianForDependent",
	ErrInsufficientGuardians:       "InsufficientGuardians",
	ErrFulfillmentFailure:          "FulfillmentFailure",
}

// PurchaseError is the single failure type returned by a purchase attempt.
// Kind is one of the sentinel errors above, Reason is the human readable message
// and Err is the collaborator error behind a fulfillment failure.
type PurchaseError struct {
	Kind   error
	Reason string
	Err    error
}

func newPurchaseError(kind error, reason string) *PurchaseError {
	return &PurchaseError{Kind: kind, Reason: reason}
}

func NewFulfillmentError(err error) *PurchaseError {
	return &PurchaseError{
		Kind:   ErrFulfillmentFailure,
		Reason: fmt.Sprintf("book seats or payment failed: %v", err),
		Err:    err,
	}
}

func (e *PurchaseError) Error() string {
	return e.Reason
}

func (e *PurchaseError) Unwrap() []error {
	errs := []error{e.Kind}
	if e.IsValidation() {
		errs = append(errs, ErrInvalidPurchase)
	}

	if e.Err != nil {
		errs = append(errs, e.Err)
	}

	return errs
}

func (e *PurchaseError) IsValidation() bool {
	return e.Kind != ErrFulfillmentFailure
}

// KindName returns the stable name of the failure kind, e.g. "InsufficientGuardians".
func (e *PurchaseError) KindName() string {
	name, ok := errorKindNames[e.Kind]
	if !ok {
		return "Unknown"
	}

	return name
}
