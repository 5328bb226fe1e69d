package order

import (
	"errors"

	"storefront-api/internal/pkg/errs"
)

type Status string

const (
	StatusPending Status = "pending"
)

func (s Status) String() string {
	return string(s)
}

// errEmptyCart keeps ErrEmptyItems distinguishable from the other validation errors, which all
// share the ErrDomainValidation mark.
var errEmptyCart = errors.New("empty cart")

var (
	ErrEmptyItems       = errs.Mark(errs.Mark(errs.New("order must contain at least one item"), errs.ErrDomainValidation), errEmptyCart)
	ErrItemNameRequired = errs.Mark(errs.New("item name is required"), errs.ErrDomainValidation)
	ErrInvalidQuantity  = errs.Mark(errs.New("item quantity must be positive"), errs.ErrDomainValidation)
	ErrNegativePrice    = errs.Mark(errs.New("item price cannot be negative"), errs.ErrDomainValidation)
	ErrTotalRequired    = errs.Mark(errs.New("order total is required"), errs.ErrDomainValidation)
	ErrNegativeTotal    = errs.Mark(errs.New("order total cannot be negative"), errs.ErrDomainValidation)
)
