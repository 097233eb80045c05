package internal

import "errors"

// Sentinel errors surfaced by request preparation. All are immediate,
// synchronous failures; no partial request state is left behind.
var (
	// ErrUnknownField is returned when the generic setter is given a key
	// outside the recognized request field set.
	ErrUnknownField = errors.New("unknown field")
	// ErrAlreadyPrepared is returned by a second prepare call on a client
	// instance that already holds a prepared payment.
	ErrAlreadyPrepared = errors.New("payment already prepared")
	// ErrInvalidCurrency is returned for a currency token that is neither a
	// known symbol nor a numeric code.
	ErrInvalidCurrency = errors.New("invalid currency")
)
