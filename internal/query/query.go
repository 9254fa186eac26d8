// Package query filters, sorts and paginates item and auction listings.
//
// Every function here is pure: the same input and the same clock reading
// always produce the same ordered output.
package query

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"lostfound-market/internal/marketerrors"
	model "lostfound-market/internal/models"
)

// Page selects a window of a result set. A zero Limit means no limit.
type Page struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// Validate rejects negative bounds
func (p Page) Validate() error {
	if p.Limit < 0 || p.Offset < 0 {
		return fmt.Errorf("query: %w - limit and offset must not be negative", marketerrors.ErrValidation)
	}
	return nil
}

// Paginate returns the page of in selected by p. Offsets past the end yield an empty slice.
func Paginate[T any](in []T, p Page) []T {
	if p.Offset >= len(in) {
		return []T{}
	}
	out := in[max(p.Offset, 0):]
	if p.Limit > 0 && p.Limit < len(out) {
		out = out[:p.Limit]
	}
	return out
}

// DateWindow restricts items to those reported recently
type DateWindow string

const (
	DateAny   DateWindow = ""
	DateToday DateWindow = "today"
	DateWeek  DateWindow = "week"
	DateMonth DateWindow = "month"
)

// ParseDateWindow converts a query parameter into a DateWindow
func ParseDateWindow(s string) (DateWindow, error) {
	switch w := DateWindow(s); w {
	case DateAny, DateToday, DateWeek, DateMonth:
		return w, nil
	}
	return DateAny, fmt.Errorf("query: %w - unknown date window %q", marketerrors.ErrValidation, s)
}

// since returns the earliest date inside the window
func (w DateWindow) since(now time.Time) time.Time {
	switch w {
	case DateToday:
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	case DateWeek:
		return now.AddDate(0, 0, -7)
	case DateMonth:
		return now.AddDate(0, -1, 0)
	}
	return time.Time{}
}

// ItemSort names an ordering of items
type ItemSort string

const (
	SortNewest   ItemSort = "newest"
	SortOldest   ItemSort = "oldest"
	SortStatus   ItemSort = "status"
	SortCategory ItemSort = "category"
)

// ParseItemSort converts a query parameter into an ItemSort. Empty means newest.
func ParseItemSort(s string) (ItemSort, error) {
	switch o := ItemSort(s); o {
	case "":
		return SortNewest, nil
	case SortNewest, SortOldest, SortStatus, SortCategory:
		return o, nil
	}
	return "", fmt.Errorf("query: %w - unknown item sort %q", marketerrors.ErrValidation, s)
}

// ItemFilter enumerates every recognised item constraint. Zero values mean "no constraint".
type ItemFilter struct {
	Search   string
	Category string
	Status   model.ItemStatus
	Location string
	Approved *bool
	Date     DateWindow
	Sort     ItemSort
	Page     Page
}

func (f ItemFilter) matches(item model.Item, since time.Time) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(item.Title), q) &&
			!strings.Contains(strings.ToLower(item.Description), q) &&
			!strings.Contains(strings.ToLower(item.Category), q) {
			return false
		}
	}
	if f.Category != "" && item.Category != f.Category {
		return false
	}
	if f.Status != "" && item.Status != f.Status {
		return false
	}
	if f.Location != "" && item.Location != f.Location {
		return false
	}
	if f.Approved != nil && item.Approved != *f.Approved {
		return false
	}
	if !since.IsZero() && item.Date.Before(since) {
		return false
	}
	return true
}

// Items applies filter, sort and pagination to items
func Items(items []model.Item, f ItemFilter, now time.Time) []model.Item {
	since := f.Date.since(now)

	out := make([]model.Item, 0, len(items))
	for _, item := range items {
		if f.matches(item, since) {
			out = append(out, item)
		}
	}

	slices.SortStableFunc(out, itemOrder(f.Sort))
	return Paginate(out, f.Page)
}

func itemOrder(s ItemSort) func(a, b model.Item) int {
	switch s {
	case SortOldest:
		return func(a, b model.Item) int { return a.Date.Compare(b.Date) }
	case SortStatus:
		return func(a, b model.Item) int { return cmp.Compare(a.Status, b.Status) }
	case SortCategory:
		return func(a, b model.Item) int { return cmp.Compare(a.Category, b.Category) }
	default:
		return func(a, b model.Item) int { return b.Date.Compare(a.Date) }
	}
}

// AuctionSort names an ordering of auctions
type AuctionSort string

const (
	SortEndingSoon AuctionSort = "ending-soon"
	SortLatest     AuctionSort = "newest"
	SortPriceLow   AuctionSort = "price-low"
	SortPriceHigh  AuctionSort = "price-high"
	SortPopular    AuctionSort = "popular"
)

// ParseAuctionSort converts a query parameter into an AuctionSort. Empty means ending-soon.
func ParseAuctionSort(s string) (AuctionSort, error) {
	switch o := AuctionSort(s); o {
	case "":
		return SortEndingSoon, nil
	case SortEndingSoon, SortLatest, SortPriceLow, SortPriceHigh, SortPopular:
		return o, nil
	}
	return "", fmt.Errorf("query: %w - unknown auction sort %q", marketerrors.ErrValidation, s)
}

// PriceRange bounds an auction's current bid, inclusive on both ends
type PriceRange struct {
	Min *float64
	Max *float64
}

// AuctionFilter enumerates every recognised auction constraint
type AuctionFilter struct {
	Category string
	Status   model.AuctionStatus
	Price    PriceRange
	Sort     AuctionSort
	Page     Page
}

// Auctions applies filter, sort and pagination to auctions.
// Status must already be derived for now on every auction.
func Auctions(auctions []model.Auction, f AuctionFilter) []model.Auction {
	out := make([]model.Auction, 0, len(auctions))
	for _, a := range auctions {
		if f.Category != "" && a.Category != f.Category {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		if f.Price.Min != nil && a.CurrentBid < *f.Price.Min {
			continue
		}
		if f.Price.Max != nil && a.CurrentBid > *f.Price.Max {
			continue
		}
		out = append(out, a)
	}

	slices.SortStableFunc(out, auctionOrder(f.Sort))
	return Paginate(out, f.Page)
}

func auctionOrder(s AuctionSort) func(a, b model.Auction) int {
	switch s {
	case SortLatest:
		return func(a, b model.Auction) int { return cmp.Compare(b.ID, a.ID) }
	case SortPriceLow:
		return func(a, b model.Auction) int { return cmp.Compare(a.CurrentBid, b.CurrentBid) }
	case SortPriceHigh:
		return func(a, b model.Auction) int { return cmp.Compare(b.CurrentBid, a.CurrentBid) }
	case SortPopular:
		return func(a, b model.Auction) int { return cmp.Compare(b.BidCount, a.BidCount) }
	default:
		return func(a, b model.Auction) int { return a.EndTime.Compare(b.EndTime) }
	}
}
