package ptr

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

func StringFromPgtype(pt pgtype.Text) *string {
	if !pt.Valid {
		return nil
	}
	return &pt.String
}

func Float64FromPgtype(pn pgtype.Numeric) (*float64, error) {
	if !pn.Valid {
		return nil, nil
	}

	value, err := pn.Float64Value()
	if err != nil {
		return nil, err
	}

	return &value.Float64, nil
}

func TimeFromPgtype(pt pgtype.Timestamp) *time.Time {
	if !pt.Valid {
		return nil
	}
	return &pt.Time
}

func Of[T any](v T) *T {
	return &v
}

func Deref[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
