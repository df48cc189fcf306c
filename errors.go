package main

import "errors"

var (
	// Prefix validation errors
	ErrPrefixLength    = errors.New("invalid prefix length")
	ErrPrefixCharacter = errors.New("invalid prefix character")

	// Datasource errors
	ErrUnknownSource = errors.New("unknown datasource name")
	ErrFetch         = errors.New("failed to fetch vendor data")
	ErrDecode        = errors.New("failed to read vendor data response")
	ErrConvert       = errors.New("malformed vendor data payload")

	// Persistence errors
	ErrPersist = errors.New("failed to persist vendor database")

	// Permission errors
	ErrNeedRoot = errors.New("operation requires root privileges")
)
