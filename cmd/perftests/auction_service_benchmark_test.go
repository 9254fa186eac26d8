package perftests

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"lostfound-market/internal/apiclient"
	auction "lostfound-market/internal/auctionService"
	"lostfound-market/internal/fixtures"
	market "lostfound-market/internal/marketService"
	model "lostfound-market/internal/models"
	"lostfound-market/internal/query"
	repository "lostfound-market/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

// Benchmark 1: PlaceBid - Isolated Auctions (Low Contention - Micro Benchmark)
func Benchmark_PlaceBid_Isolated(b *testing.B) {
	_, svc := setupAuctions(b.N)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.PlaceBid(i+1, fmt.Sprintf("bidder_%d", i), 150); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: PlaceBid - Shared Auction (High Contention - Concurrency Benchmark)
func Benchmark_PlaceBid_ConcurrentSharedAuction(b *testing.B) {
	_, svc := setupAuctions(1)

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 100

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			nextBid := atomic.AddInt64(&lastBid, 1)
			_, _ = svc.PlaceBid(1, "parallel_bidder", float64(nextBid))
		}
	})
}

// Benchmark 3: GetAuction with a long bid history
func Benchmark_GetAuction_LongHistory(b *testing.B) {
	_, svc := setupAuctions(1)
	for i := 0; i < 1000; i++ {
		if _, err := svc.PlaceBid(1, "seed", float64(101+i)); err != nil {
			b.Fatalf("failed to seed bid: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		a, err := svc.GetAuction(1)
		if err != nil || a.BidCount != 1000 {
			b.Fatalf("unexpected auction: %+v %v", a.BidCount, err)
		}
	}
}

// Benchmark 4: ListAuctions filter and sort over many auctions
func Benchmark_ListAuctions_Filtered(b *testing.B) {
	_, svc := setupAuctions(2000)
	lo, hi := 100.0, 500.0
	filter := query.AuctionFilter{
		Category: "electronics",
		Price:    query.PriceRange{Min: &lo, Max: &hi},
		Sort:     query.SortPriceHigh,
		Page:     query.Page{Limit: 20},
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.ListAuctions(filter); err != nil {
			b.Fatalf("list failed: %v", err)
		}
	}
}

// Benchmark 5: ListItems text search over many reports
func Benchmark_ListItems_Search(b *testing.B) {
	repo := repository.NewMemoryRepo()
	for i := 0; i < 5000; i++ {
		status := model.ItemLost
		if i%2 == 0 {
			status = model.ItemFound
		}
		_, err := repo.CreateItem(model.Item{
			Title:       fmt.Sprintf("item %d", i),
			Category:    "electronics",
			Status:      status,
			Location:    "library",
			Date:        time.Date(2025, 1, 1+i%28, 0, 0, 0, 0, time.UTC),
			Description: fmt.Sprintf("generated report number %d", i),
			Approved:    true,
		})
		if err != nil {
			b.Fatalf("failed to seed item: %v", err)
		}
	}
	svc := market.NewMarketService(repo, nil, market.Options{})

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.ListItems(query.ItemFilter{Search: "number 4", Status: model.ItemFound, Page: query.Page{Limit: 12}}); err != nil {
			b.Fatalf("list failed: %v", err)
		}
	}
}

// Benchmark 6: Bid bursts through the request facade, one goroutine per bidder
func Benchmark_Client_BidBurst(b *testing.B) {
	repo := repository.NewMemoryRepo()
	if err := fixtures.Seed(repo, time.Now(), bcrypt.MinCost); err != nil {
		b.Fatalf("failed to seed: %v", err)
	}
	auctions := auction.NewAuctionService(repo, auction.Options{RejectEndedBids: true})
	client := apiclient.NewClient(market.NewMarketService(repo, auctions, market.Options{}), auctions, apiclient.Latency{})

	const burst = 32
	var next atomic.Int64
	next.Store(1000)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var g errgroup.Group
		var accepted atomic.Int64
		for j := 0; j < burst; j++ {
			g.Go(func() error {
				env := client.PlaceBid(1, float64(next.Add(1)), fmt.Sprintf("bidder_%d", j))
				if env.Success {
					accepted.Add(1)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			b.Fatalf("burst failed: %v", err)
		}
		if accepted.Load() == 0 {
			b.Fatalf("burst %d accepted no bids", i)
		}
	}
}
