package contact

import "storefront-api/internal/pkg/errs"

var (
	ErrNameRequired    = errs.Mark(errs.New("name is required"), errs.ErrDomainValidation)
	ErrEmailRequired   = errs.Mark(errs.New("email is required"), errs.ErrDomainValidation)
	ErrSubjectRequired = errs.Mark(errs.New("subject is required"), errs.ErrDomainValidation)
	ErrMessageRequired = errs.Mark(errs.New("message is required"), errs.ErrDomainValidation)
)
