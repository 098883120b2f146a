package pricing

import "errors"

var (
	ErrPlanNotFound       = errors.New("plan not found")
	ErrPackNotFound       = errors.New("credit pack not found")
	ErrInvalidMode        = errors.New("invalid pricing mode")
	ErrDurationOutOfRange = errors.New("trip duration must be between 2 and 30 days")
	ErrNoPackLargeEnough  = errors.New("no credit pack covers this trip duration")
)
