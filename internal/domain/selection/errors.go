package selection

import "errors"

var (
	ErrPlanNotFound   = errors.New("plan not found in catalog")
	ErrPackNotFound   = errors.New("credit pack not found in catalog")
	ErrInvalidMode    = errors.New("invalid pricing mode")
	ErrInvalidCycle   = errors.New("invalid billing cycle")
	ErrMissingSession = errors.New("missing session id")
)
