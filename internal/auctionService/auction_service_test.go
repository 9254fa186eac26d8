package auction

import (
	"errors"
	"math"
	"testing"
	"time"

	"lostfound-market/internal/marketerrors"
	model "lostfound-market/internal/models"
	"lostfound-market/internal/query"
	"lostfound-market/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 1, 20, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// Tests PlaceBid against a mocked store
func TestAuctionService_PlaceBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockMarketDB(ctrl)
	service := NewAuctionService(mockRepo, Options{RejectEndedBids: true, Now: fixedClock})

	open := model.Auction{ID: 1, StartingPrice: 25, CurrentBid: 45, EndTime: fixedNow.Add(30 * time.Hour)}
	closed := model.Auction{ID: 2, StartingPrice: 25, CurrentBid: 45, EndTime: fixedNow.Add(-time.Second)}

	// Table-driven test cases
	tests := []struct {
		name          string
		auctionID     int
		bidder        string
		amount        float64
		mockSetup     func()
		expectedError error
	}{
		{
			name:      "valid_bid",
			auctionID: 1,
			bidder:    "X",
			amount:    46,
			mockSetup: func() {
				mockRepo.EXPECT().GetAuctionByID(1).Return(open, nil)
				mockRepo.EXPECT().PlaceBid(1, "X", 46.0, fixedNow).
					Return(model.Bid{ID: 1, AuctionID: 1, Bidder: "X", Amount: 46, Time: fixedNow}, nil)
			},
		},
		{
			name:          "empty_bidder",
			auctionID:     1,
			bidder:        "   ",
			amount:        50,
			mockSetup:     func() {},
			expectedError: marketerrors.ErrInvalidBid,
		},
		{
			name:          "zero_amount",
			auctionID:     1,
			bidder:        "X",
			amount:        0,
			mockSetup:     func() {},
			expectedError: marketerrors.ErrInvalidBid,
		},
		{
			name:          "negative_amount",
			auctionID:     1,
			bidder:        "X",
			amount:        -5,
			mockSetup:     func() {},
			expectedError: marketerrors.ErrInvalidBid,
		},
		{
			name:          "nan_amount",
			auctionID:     1,
			bidder:        "X",
			amount:        math.NaN(),
			mockSetup:     func() {},
			expectedError: marketerrors.ErrInvalidBid,
		},
		{
			name:      "unknown_auction",
			auctionID: 9,
			bidder:    "X",
			amount:    50,
			mockSetup: func() {
				mockRepo.EXPECT().GetAuctionByID(9).Return(model.Auction{}, marketerrors.ErrAuctionNotFound)
			},
			expectedError: marketerrors.ErrNotFound,
		},
		{
			name:      "auction_ended",
			auctionID: 2,
			bidder:    "X",
			amount:    100,
			mockSetup: func() {
				mockRepo.EXPECT().GetAuctionByID(2).Return(closed, nil)
			},
			expectedError: marketerrors.ErrAuctionEnded,
		},
		{
			name:      "bid_too_low",
			auctionID: 1,
			bidder:    "X",
			amount:    45,
			mockSetup: func() {
				mockRepo.EXPECT().GetAuctionByID(1).Return(open, nil)
				mockRepo.EXPECT().PlaceBid(1, "X", 45.0, fixedNow).Return(model.Bid{}, marketerrors.ErrBidTooLow)
			},
			expectedError: marketerrors.ErrBidTooLow,
		},
		{
			name:      "repo_fails",
			auctionID: 1,
			bidder:    "X",
			amount:    120,
			mockSetup: func() {
				mockRepo.EXPECT().GetAuctionByID(1).Return(open, nil)
				mockRepo.EXPECT().PlaceBid(1, "X", 120.0, fixedNow).Return(model.Bid{}, errors.New("repo write failed"))
			},
			expectedError: nil, // wrapped repo error, only its presence is checked
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			bid, err := service.PlaceBid(tc.auctionID, tc.bidder, tc.amount)

			if tc.name == "valid_bid" {
				require.NoError(t, err)
				require.Equal(t, 46.0, bid.Amount)
				require.Equal(t, "X", bid.Bidder)
				return
			}
			require.Error(t, err)
			if tc.expectedError != nil {
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
			}
		})
	}
}

// Ended auctions still accept bids when the policy is off
func TestAuctionService_PlaceBid_EndedAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockMarketDB(ctrl)
	service := NewAuctionService(mockRepo, Options{RejectEndedBids: false, Now: fixedClock})

	mockRepo.EXPECT().PlaceBid(2, "X", 100.0, fixedNow).Return(model.Bid{ID: 3, AuctionID: 2, Amount: 100}, nil)

	bid, err := service.PlaceBid(2, "X", 100)
	require.NoError(t, err)
	require.Equal(t, 3, bid.ID)
}

// Property: currentBid tracks the last accepted bid and never decreases
func TestAuctionService_BidSequence(t *testing.T) {
	repo := repository.NewMemoryRepo()
	service := NewAuctionService(repo, Options{RejectEndedBids: true, Now: fixedClock})

	created, err := service.CreateAuction(model.Auction{Title: "Bluetooth Headphones", StartingPrice: 25, EndTime: fixedNow.Add(30 * time.Hour)})
	require.NoError(t, err)
	require.Equal(t, model.AuctionActive, created.Status)

	_, err = service.PlaceBid(created.ID, "Jane Smith", 45)
	require.NoError(t, err)

	attempts := []float64{45, 46, 30, 46, 50.5, 50.49, 51}
	accepted := 1
	last := 45.0
	for _, amount := range attempts {
		before, err := service.GetAuction(created.ID)
		require.NoError(t, err)

		_, err = service.PlaceBid(created.ID, "X", amount)
		after, getErr := service.GetAuction(created.ID)
		require.NoError(t, getErr)

		if amount <= before.CurrentBid {
			require.ErrorIs(t, err, marketerrors.ErrInvalidBid)
			require.Equal(t, before, after)
			continue
		}
		require.NoError(t, err)
		accepted++
		last = amount
		require.GreaterOrEqual(t, after.CurrentBid, before.CurrentBid)
	}

	final, err := service.GetAuction(created.ID)
	require.NoError(t, err)
	require.Equal(t, last, final.CurrentBid)
	require.Equal(t, accepted, final.BidCount)
	require.Len(t, final.Bids, accepted)
	require.Equal(t, 51.0, final.CurrentBid)
}

func TestAuctionService_StatusDerivedOnRead(t *testing.T) {
	repo := repository.NewMemoryRepo()
	now := fixedNow
	service := NewAuctionService(repo, Options{Now: func() time.Time { return now }})

	a, err := service.CreateAuction(model.Auction{Title: "Winter Coat", StartingPrice: 30, EndTime: fixedNow.Add(30 * time.Hour)})
	require.NoError(t, err)
	require.Equal(t, model.AuctionActive, a.Status)

	now = fixedNow.Add(20 * time.Hour)
	got, err := service.GetAuction(a.ID)
	require.NoError(t, err)
	require.Equal(t, model.AuctionEndingSoon, got.Status)

	now = fixedNow.Add(31 * time.Hour)
	got, err = service.GetAuction(a.ID)
	require.NoError(t, err)
	require.Equal(t, model.AuctionEnded, got.Status)
	require.Equal(t, 0, service.CountOpen())
}

func TestAuctionService_ListAuctions(t *testing.T) {
	repo := repository.NewMemoryRepo()
	service := NewAuctionService(repo, Options{Now: fixedClock})

	for _, a := range []model.Auction{
		{Title: "Headphones", Category: "electronics", StartingPrice: 25, EndTime: fixedNow.Add(30 * time.Hour)},
		{Title: "Calculator", Category: "electronics", StartingPrice: 15, EndTime: fixedNow.Add(10 * time.Hour)},
		{Title: "Coat", Category: "clothing", StartingPrice: 30, EndTime: fixedNow.Add(-time.Second)},
	} {
		_, err := service.CreateAuction(a)
		require.NoError(t, err)
	}

	endingSoon, err := service.ListAuctions(query.AuctionFilter{Status: model.AuctionEndingSoon})
	require.NoError(t, err)
	require.Len(t, endingSoon, 1)
	require.Equal(t, "Calculator", endingSoon[0].Title)

	electronics, err := service.ListAuctions(query.AuctionFilter{Category: "electronics", Sort: query.SortPriceHigh})
	require.NoError(t, err)
	require.Len(t, electronics, 2)
	require.Equal(t, "Headphones", electronics[0].Title)

	all, err := service.ListAuctions(query.AuctionFilter{})
	require.NoError(t, err)
	require.Equal(t, model.AuctionEnded, all[0].Status)
	require.Equal(t, 2, service.CountOpen())

	_, err = service.ListAuctions(query.AuctionFilter{Status: "closed"})
	require.ErrorIs(t, err, marketerrors.ErrValidation)

	_, err = service.ListAuctions(query.AuctionFilter{Page: query.Page{Limit: -1}})
	require.ErrorIs(t, err, marketerrors.ErrValidation)

	lo, hi := 50.0, 10.0
	_, err = service.ListAuctions(query.AuctionFilter{Price: query.PriceRange{Min: &lo, Max: &hi}})
	require.ErrorIs(t, err, marketerrors.ErrValidation)
}

func TestAuctionService_CreateAuction_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewAuctionService(repository.NewMockMarketDB(ctrl), Options{Now: fixedClock})

	_, err := service.CreateAuction(model.Auction{})
	require.ErrorIs(t, err, marketerrors.ErrValidation)
	require.Contains(t, err.Error(), "title is required")
	require.Contains(t, err.Error(), "end time is required")
}
