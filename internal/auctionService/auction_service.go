package auction

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"lostfound-market/internal/marketerrors"
	"lostfound-market/internal/models"
	"lostfound-market/internal/query"
	"lostfound-market/internal/repository"
)

// Options tune the auction rules
type Options struct {
	// RejectEndedBids refuses bids once an auction's derived status is ended.
	RejectEndedBids bool
	// EndingSoonWindow defaults to models.DefaultEndingSoonWindow.
	EndingSoonWindow time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

// AuctionService holds the bidding rules and derives auction status on every read
type AuctionService struct {
	repo repository.MarketDB
	opts Options
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.MarketDB, opts Options) *AuctionService {
	if opts.EndingSoonWindow <= 0 {
		opts.EndingSoonWindow = models.DefaultEndingSoonWindow
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &AuctionService{
		repo: repo,
		opts: opts,
	}
}

// PlaceBid validates and records a bid on an auction
func (s *AuctionService) PlaceBid(auctionID int, bidder string, amount float64) (models.Bid, error) {
	bidder = strings.TrimSpace(bidder)
	if err := validateBid(bidder, amount); err != nil {
		return models.Bid{}, err
	}

	now := s.opts.Now().UTC()

	if s.opts.RejectEndedBids {
		a, err := s.repo.GetAuctionByID(auctionID)
		if err != nil {
			return models.Bid{}, fmt.Errorf("service: failed to load auction %d: %w", auctionID, err)
		}
		if s.status(a, now) == models.AuctionEnded {
			return models.Bid{}, fmt.Errorf("service: auction %d: %w", auctionID, marketerrors.ErrAuctionEnded)
		}
	}

	bid, err := s.repo.PlaceBid(auctionID, bidder, amount, now)
	if err != nil {
		return models.Bid{}, fmt.Errorf("service: failed to record bid on auction %d by %s: %w", auctionID, bidder, err)
	}
	return bid, nil
}

// validateBid checks input validity before touching the store
func validateBid(bidder string, amount float64) error {
	if bidder == "" {
		return fmt.Errorf("service: %w - missing bidder name", marketerrors.ErrInvalidBid)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return fmt.Errorf("service: %w - bid amount must be a positive number", marketerrors.ErrInvalidBid)
	}
	return nil
}

// GetAuction returns a single auction with its current status
func (s *AuctionService) GetAuction(id int) (models.Auction, error) {
	a, err := s.repo.GetAuctionByID(id)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to get auction %d: %w", id, err)
	}
	a.Status = s.status(a, s.opts.Now())
	return a, nil
}

// ListAuctions returns the auctions matching filter, with status derived at call time
func (s *AuctionService) ListAuctions(filter query.AuctionFilter) ([]models.Auction, error) {
	if err := filter.Page.Validate(); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("service: %w - unknown auction status %q", marketerrors.ErrValidation, filter.Status)
	}
	if p := filter.Price; p.Min != nil && p.Max != nil && *p.Min > *p.Max {
		return nil, fmt.Errorf("service: %w - min price above max price", marketerrors.ErrValidation)
	}

	now := s.opts.Now()
	auctions := s.repo.ListAuctions()
	for i := range auctions {
		auctions[i].Status = s.status(auctions[i], now)
	}
	return query.Auctions(auctions, filter), nil
}

// CreateAuction opens a new auction
func (s *AuctionService) CreateAuction(a models.Auction) (models.Auction, error) {
	var errs []error
	if strings.TrimSpace(a.Title) == "" {
		errs = append(errs, errors.New("title is required"))
	}
	if a.StartingPrice <= 0 || math.IsInf(a.StartingPrice, 0) || math.IsNaN(a.StartingPrice) {
		errs = append(errs, errors.New("starting price must be positive"))
	}
	if a.EndTime.IsZero() {
		errs = append(errs, errors.New("end time is required"))
	}
	if len(errs) > 0 {
		return models.Auction{}, fmt.Errorf("service: %w - %w", marketerrors.ErrValidation, errors.Join(errs...))
	}

	created, err := s.repo.CreateAuction(a)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: failed to create auction %q: %w", a.Title, err)
	}
	created.Status = s.status(created, s.opts.Now())
	return created, nil
}

// CountOpen returns how many auctions still accept bids
func (s *AuctionService) CountOpen() int {
	now := s.opts.Now()
	open := 0
	for _, a := range s.repo.ListAuctions() {
		if s.status(a, now) != models.AuctionEnded {
			open++
		}
	}
	return open
}

func (s *AuctionService) status(a models.Auction, now time.Time) models.AuctionStatus {
	return models.DeriveStatus(a.EndTime, now, s.opts.EndingSoonWindow)
}
