// Package apiclient is the uniform request surface of the marketplace.
//
// Every operation waits for a simulated network delay and then returns an
// Envelope: either a success payload or a failure carrying a readable error.
// Errors and panics from the layers below never escape a call.
package apiclient

import (
	"fmt"
	"math/rand/v2"
	"time"

	auction "lostfound-market/internal/auctionService"
	"lostfound-market/internal/credentials"
	market "lostfound-market/internal/marketService"
	"lostfound-market/internal/models"
	"lostfound-market/internal/query"
	"lostfound-market/utils"
)

// Envelope is the tagged result of every facade call
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	// Err keeps the underlying error for errors.Is checks. It is not serialized.
	Err error `json:"-"`
}

// Ack is the payload of operations that only acknowledge receipt
type Ack struct {
	ID int `json:"id,omitempty"`
}

// Latency bounds the simulated network delay
type Latency struct {
	Min time.Duration
	Max time.Duration
}

// DefaultLatency matches the delay range of the demo front end
var DefaultLatency = Latency{Min: 300 * time.Millisecond, Max: 1000 * time.Millisecond}

// Client dispatches requests to the market and auction services
type Client struct {
	market   *market.MarketService
	auctions *auction.AuctionService
	latency  Latency
	sleep    func(time.Duration)
	now      func() time.Time
}

// NewClient creates a new Client instance
func NewClient(m *market.MarketService, a *auction.AuctionService, latency Latency) *Client {
	if latency.Max < latency.Min {
		latency.Max = latency.Min
	}
	return &Client{
		market:   m,
		auctions: a,
		latency:  latency,
		sleep:    time.Sleep,
		now:      time.Now,
	}
}

// delay picks a duration in [Min, Max)
func (c *Client) delay() time.Duration {
	spread := c.latency.Max - c.latency.Min
	if spread <= 0 {
		return c.latency.Min
	}
	return c.latency.Min + rand.N(spread)
}

// call simulates latency, runs op and folds its outcome into an Envelope
func call[T any](c *Client, name string, op func() (T, string, error)) (env Envelope[T]) {
	if d := c.delay(); d > 0 {
		c.sleep(d)
	}

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%s: unexpected failure: %v", name, r)
			utils.Error("apiclient: recovered from panic", map[string]any{"operation": name, "panic": fmt.Sprint(r)})
			env = Envelope[T]{Error: "internal error", Err: err}
		}
	}()

	data, message, err := op()
	if err != nil {
		utils.Debug("apiclient: request failed", map[string]any{"operation": name, "error": err.Error()})
		return Envelope[T]{Error: err.Error(), Err: err}
	}
	return Envelope[T]{Success: true, Data: data, Message: message}
}

// Async runs fn on its own goroutine. The channel receives exactly one envelope.
func Async[T any](fn func() Envelope[T]) <-chan Envelope[T] {
	out := make(chan Envelope[T], 1)
	go func() {
		out <- fn()
	}()
	return out
}

func (c *Client) session(u models.User) models.Session {
	return models.Session{User: u.Profile(), Token: credentials.NewToken(u.ID, c.now())}
}

// Login authenticates by email or college ID
func (c *Client) Login(identifier, password string) Envelope[models.Session] {
	return call(c, "login", func() (models.Session, string, error) {
		u, err := c.market.Authenticate(identifier, password)
		if err != nil {
			return models.Session{}, "", err
		}
		return c.session(u), "Login successful", nil
	})
}

// Signup registers a student account and logs it in
func (c *Client) Signup(in market.SignupInput) Envelope[models.Session] {
	return call(c, "signup", func() (models.Session, string, error) {
		u, err := c.market.Register(in)
		if err != nil {
			return models.Session{}, "", err
		}
		return c.session(u), "Account created successfully", nil
	})
}

// ListItems returns items matching filter
func (c *Client) ListItems(filter query.ItemFilter) Envelope[[]models.Item] {
	return call(c, "list items", func() ([]models.Item, string, error) {
		items, err := c.market.ListItems(filter)
		return items, "", err
	})
}

// RecentItems returns the newest approved items
func (c *Client) RecentItems(limit int) Envelope[[]models.Item] {
	return call(c, "recent items", func() ([]models.Item, string, error) {
		items, err := c.market.RecentItems(limit)
		return items, "", err
	})
}

// GetItem returns a single item
func (c *Client) GetItem(id int) Envelope[models.Item] {
	return call(c, "get item", func() (models.Item, string, error) {
		item, err := c.market.GetItem(id)
		return item, "", err
	})
}

// ReportLostItem files a lost item report
func (c *Client) ReportLostItem(in market.ReportInput) Envelope[models.Item] {
	return call(c, "report lost item", func() (models.Item, string, error) {
		item, err := c.market.ReportItem(in, models.ItemLost)
		return item, "Lost item report submitted successfully", err
	})
}

// ReportFoundItem files a found item report
func (c *Client) ReportFoundItem(in market.ReportInput) Envelope[models.Item] {
	return call(c, "report found item", func() (models.Item, string, error) {
		item, err := c.market.ReportItem(in, models.ItemFound)
		return item, "Found item report submitted successfully", err
	})
}

// ApproveItem publishes a pending report
func (c *Client) ApproveItem(id int) Envelope[models.Item] {
	return call(c, "approve item", func() (models.Item, string, error) {
		item, err := c.market.ApproveItem(id)
		return item, "Item approved successfully", err
	})
}

// DeleteItem removes a report
func (c *Client) DeleteItem(id int) Envelope[Ack] {
	return call(c, "delete item", func() (Ack, string, error) {
		return Ack{ID: id}, "Item deleted successfully", c.market.DeleteItem(id)
	})
}

// ListAuctions returns auctions matching filter
func (c *Client) ListAuctions(filter query.AuctionFilter) Envelope[[]models.Auction] {
	return call(c, "list auctions", func() ([]models.Auction, string, error) {
		auctions, err := c.auctions.ListAuctions(filter)
		return auctions, "", err
	})
}

// GetAuction returns a single auction
func (c *Client) GetAuction(id int) Envelope[models.Auction] {
	return call(c, "get auction", func() (models.Auction, string, error) {
		a, err := c.auctions.GetAuction(id)
		return a, "", err
	})
}

// CreateAuction opens a new auction
func (c *Client) CreateAuction(a models.Auction) Envelope[models.Auction] {
	return call(c, "create auction", func() (models.Auction, string, error) {
		created, err := c.auctions.CreateAuction(a)
		return created, "Auction created successfully", err
	})
}

// PlaceBid bids amount on an auction
func (c *Client) PlaceBid(auctionID int, amount float64, bidder string) Envelope[models.Bid] {
	return call(c, "place bid", func() (models.Bid, string, error) {
		bid, err := c.auctions.PlaceBid(auctionID, bidder, amount)
		return bid, "Bid placed successfully", err
	})
}

// SubmitClaim records an ownership claim
func (c *Client) SubmitClaim(in market.ClaimInput) Envelope[models.Claim] {
	return call(c, "submit claim", func() (models.Claim, string, error) {
		claim, err := c.market.SubmitClaim(in)
		return claim, "Claim submitted successfully", err
	})
}

// SubmitContact sends a contact form message
func (c *Client) SubmitContact(in market.ContactInput) Envelope[Ack] {
	return call(c, "contact", func() (Ack, string, error) {
		msg, err := c.market.SubmitContact(in)
		return Ack{ID: msg.ID}, "Message sent successfully", err
	})
}

// Stats returns the platform counters
func (c *Client) Stats() Envelope[models.Stats] {
	return call(c, "stats", func() (models.Stats, string, error) {
		return c.market.Stats(), "", nil
	})
}
