package app

import (
	"fmt"
	"time"

	"lostfound-market/internal/apiclient"
	auction "lostfound-market/internal/auctionService"
	"lostfound-market/internal/config"
	"lostfound-market/internal/fixtures"
	market "lostfound-market/internal/marketService"
	"lostfound-market/internal/repository"
	"lostfound-market/internal/server"

	"github.com/gin-gonic/gin"
)

// App holds the wired marketplace
type App struct {
	Repo     *repository.MemoryRepo
	Auctions *auction.AuctionService
	Market   *market.MarketService
	Client   *apiclient.Client
	Router   *gin.Engine
}

// New seeds a fresh store and wires services, facade and router from cfg
func New(cfg config.Config) (*App, error) {
	repo := repository.NewMemoryRepo()
	if err := fixtures.Seed(repo, time.Now(), cfg.Auth.BcryptCost); err != nil {
		return nil, fmt.Errorf("app: seed store: %w", err)
	}

	auctions := auction.NewAuctionService(repo, auction.Options{
		RejectEndedBids:  cfg.Auctions.RejectEndedBids,
		EndingSoonWindow: cfg.Auctions.EndingSoonWindow,
	})
	markets := market.NewMarketService(repo, auctions, market.Options{
		AutoApprove:      cfg.Items.AutoApprove,
		ReturnedBaseline: cfg.Stats.ReturnedBaseline,
		BcryptCost:       cfg.Auth.BcryptCost,
	})
	client := apiclient.NewClient(markets, auctions, apiclient.Latency{Min: cfg.Latency.Min, Max: cfg.Latency.Max})

	return &App{
		Repo:     repo,
		Auctions: auctions,
		Market:   markets,
		Client:   client,
		Router:   server.SetupRouter(client),
	}, nil
}
