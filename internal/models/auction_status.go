package models

import "time"

// AuctionStatus is derived from an auction's end time, never stored
type AuctionStatus string

const (
	AuctionActive     AuctionStatus = "active"
	AuctionEndingSoon AuctionStatus = "ending-soon"
	AuctionEnded      AuctionStatus = "ended"
)

// DefaultEndingSoonWindow is how close to its end an auction counts as ending soon
const DefaultEndingSoonWindow = 24 * time.Hour

// DeriveStatus computes the status of an auction ending at endTime as seen at now
func DeriveStatus(endTime, now time.Time, window time.Duration) AuctionStatus {
	left := endTime.Sub(now)
	switch {
	case left <= 0:
		return AuctionEnded
	case left <= window:
		return AuctionEndingSoon
	default:
		return AuctionActive
	}
}

// Valid reports whether s is one of the known auction statuses
func (s AuctionStatus) Valid() bool {
	switch s {
	case AuctionActive, AuctionEndingSoon, AuctionEnded:
		return true
	}
	return false
}

// Valid reports whether s is lost or found
func (s ItemStatus) Valid() bool {
	return s == ItemLost || s == ItemFound
}
