package telegram

import (
	"errors"
	"strconv"

	"storefront-api/internal/pkg/errs"
)

type DeliveryErrorKind string

// Outcome classes of a failed sendMessage call
const (
	KindNotConfigured DeliveryErrorKind = "NOT_CONFIGURED"
	KindRejected      DeliveryErrorKind = "REJECTED"
	KindUnreachable   DeliveryErrorKind = "UNREACHABLE"
	KindUnexpected    DeliveryErrorKind = "UNEXPECTED"
)

type DeliveryError struct {
	Kind DeliveryErrorKind
	// StatusCode and Payload are set for KindRejected.
	StatusCode int
	Payload    string
	msg        string
	err        error
}

func (e *DeliveryError) Error() string {
	s := string(e.Kind) + ": " + e.msg
	if e.StatusCode != 0 {
		s += " (status " + strconv.Itoa(e.StatusCode) + ")"
	}
	if e.err != nil {
		s += ": " + e.err.Error()
	}
	return s
}

func (e *DeliveryError) Unwrap() error {
	return e.err
}

// Is lets callers match any delivery failure with errs.ErrNotificationFailed.
func (e *DeliveryError) Is(target error) bool {
	return target == errs.ErrNotificationFailed
}

func IsKind(err error, kind DeliveryErrorKind) bool {
	var e *DeliveryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
