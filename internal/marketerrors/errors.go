package marketerrors

import (
	"errors"
	"fmt"
)

// Error kinds, matched with errors.Is at the API boundary
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrAuth       = errors.New("authentication failed")
	ErrInvalidBid = errors.New("invalid bid")
)

// Repository-level errors
var (
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
	ErrItemNotFound    = fmt.Errorf("item %w", ErrNotFound)
	ErrAuctionNotFound = fmt.Errorf("auction %w", ErrNotFound)
	ErrEmailTaken      = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrCollegeIDTaken  = fmt.Errorf("%w: college ID already registered", ErrConflict)
)

// business logic errors
var (
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrAuth)
	ErrBidTooLow          = fmt.Errorf("%w: bid must be higher than current bid", ErrInvalidBid)
	ErrAuctionEnded       = errors.New("auction has ended")
)
