package repository

import (
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"lostfound-market/internal/credentials"
	"lostfound-market/internal/marketerrors"
	model "lostfound-market/internal/models"
)

// MarketDB defines the storage interface for the marketplace
type MarketDB interface {
	FindUserByEmail(email string) (model.User, error)
	FindUserByCollegeID(collegeID string) (model.User, error)
	CreateUser(user model.User) (model.User, error)
	AuthenticateUser(identifier, password string) (model.User, error)

	CreateItem(item model.Item) (model.Item, error)
	GetItemByID(id int) (model.Item, error)
	ListItems() []model.Item
	SetItemApproval(id int, approved bool) (model.Item, error)
	DeleteItem(id int) error

	CreateAuction(auction model.Auction) (model.Auction, error)
	GetAuctionByID(id int) (model.Auction, error)
	ListAuctions() []model.Auction
	PlaceBid(auctionID int, bidder string, amount float64, at time.Time) (model.Bid, error)

	CreateClaim(claim model.Claim) (model.Claim, error)
	CountClaims() int
	RecordContact(msg model.ContactMessage) (model.ContactMessage, error)
}

// sequences hands out monotonically increasing ids per collection
type sequences struct {
	users, items, auctions, bids, claims, contacts int
}

func next(counter *int) int {
	*counter++
	return *counter
}

// MemoryRepo is a concurrency-safe in-memory implementation of MarketDB
type MemoryRepo struct {
	mu       sync.RWMutex
	seq      sequences
	users    map[int]model.User
	items    map[int]model.Item
	auctions map[int]model.Auction // stored without derived fields
	bids     map[int][]model.Bid   // key: auctionID -> value: bids in acceptance order
	claims   map[int]model.Claim
	contacts map[int]model.ContactMessage
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:    make(map[int]model.User),
		items:    make(map[int]model.Item),
		auctions: make(map[int]model.Auction),
		bids:     make(map[int][]model.Bid),
		claims:   make(map[int]model.Claim),
		contacts: make(map[int]model.ContactMessage),
	}
}

// FindUserByEmail returns the user with exactly this email
func (r *MemoryRepo) FindUserByEmail(email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if u, ok := r.userWhere(func(u model.User) bool { return u.Email == email }); ok {
		return u, nil
	}
	return model.User{}, fmt.Errorf("find user by email %q: %w", email, marketerrors.ErrUserNotFound)
}

// FindUserByCollegeID returns the user with exactly this college ID
func (r *MemoryRepo) FindUserByCollegeID(collegeID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if u, ok := r.userWhere(func(u model.User) bool { return u.CollegeID == collegeID }); ok {
		return u, nil
	}
	return model.User{}, fmt.Errorf("find user by college id %q: %w", collegeID, marketerrors.ErrUserNotFound)
}

// CreateUser stores a new student account. Role and verification are forced.
func (r *MemoryRepo) CreateUser(user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.userWhere(func(u model.User) bool { return u.Email == user.Email }); taken {
		return model.User{}, fmt.Errorf("create user: %w", marketerrors.ErrEmailTaken)
	}
	if _, taken := r.userWhere(func(u model.User) bool { return u.CollegeID == user.CollegeID }); taken {
		return model.User{}, fmt.Errorf("create user: %w", marketerrors.ErrCollegeIDTaken)
	}

	user.ID = next(&r.seq.users)
	user.Role = model.RoleStudent
	// TODO: replace with an email verification flow once one exists.
	user.IsVerified = true
	r.users[user.ID] = user
	return user, nil
}

// AuthenticateUser returns the user whose email or college ID equals identifier
// and whose credential matches password
func (r *MemoryRepo) AuthenticateUser(identifier, password string) (model.User, error) {
	r.mu.RLock()
	u, ok := r.userWhere(func(u model.User) bool {
		return u.Email == identifier || u.CollegeID == identifier
	})
	r.mu.RUnlock()

	if !ok || !credentials.Matches(u.PasswordHash, password) {
		return model.User{}, fmt.Errorf("authenticate user: %w", marketerrors.ErrInvalidCredentials)
	}
	return u, nil
}

// userWhere must be called with the lock held
func (r *MemoryRepo) userWhere(match func(model.User) bool) (model.User, bool) {
	for _, id := range slices.Sorted(maps.Keys(r.users)) {
		if u := r.users[id]; match(u) {
			return u, true
		}
	}
	return model.User{}, false
}

// CreateItem stores a new item report and assigns its id
func (r *MemoryRepo) CreateItem(item model.Item) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = next(&r.seq.items)
	r.items[item.ID] = item
	return item, nil
}

// GetItemByID returns a single item
func (r *MemoryRepo) GetItemByID(id int) (model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return model.Item{}, fmt.Errorf("get item %d: %w", id, marketerrors.ErrItemNotFound)
	}
	return item, nil
}

// ListItems returns all items ordered by id
func (r *MemoryRepo) ListItems() []model.Item {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.Item, 0, len(r.items))
	for _, id := range slices.Sorted(maps.Keys(r.items)) {
		items = append(items, r.items[id])
	}
	return items
}

// SetItemApproval updates the approval flag of an item
func (r *MemoryRepo) SetItemApproval(id int, approved bool) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[id]
	if !ok {
		return model.Item{}, fmt.Errorf("set approval for item %d: %w", id, marketerrors.ErrItemNotFound)
	}
	item.Approved = approved
	r.items[id] = item
	return item, nil
}

// DeleteItem removes an item. Its id is never handed out again.
func (r *MemoryRepo) DeleteItem(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("delete item %d: %w", id, marketerrors.ErrItemNotFound)
	}
	delete(r.items, id)
	return nil
}

// CreateAuction stores a new auction. Derived fields on the input are ignored.
func (r *MemoryRepo) CreateAuction(auction model.Auction) (model.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	auction.ID = next(&r.seq.auctions)
	auction.CurrentBid, auction.BidCount, auction.Bids, auction.Status = 0, 0, nil, ""
	r.auctions[auction.ID] = auction
	return r.auctionView(auction), nil
}

// GetAuctionByID returns an auction with its bid-derived fields filled in
func (r *MemoryRepo) GetAuctionByID(id int) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auction, ok := r.auctions[id]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %d: %w", id, marketerrors.ErrAuctionNotFound)
	}
	return r.auctionView(auction), nil
}

// ListAuctions returns all auctions ordered by id
func (r *MemoryRepo) ListAuctions() []model.Auction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctions := make([]model.Auction, 0, len(r.auctions))
	for _, id := range slices.Sorted(maps.Keys(r.auctions)) {
		auctions = append(auctions, r.auctionView(r.auctions[id]))
	}
	return auctions
}

// PlaceBid accepts a bid if it is strictly higher than the current bid.
// The check and the append happen under one write lock.
func (r *MemoryRepo) PlaceBid(auctionID int, bidder string, amount float64, at time.Time) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return model.Bid{}, fmt.Errorf("place bid on auction %d: %w", auctionID, marketerrors.ErrAuctionNotFound)
	}

	current := r.auctionView(auction).CurrentBid
	if amount <= current {
		return model.Bid{}, fmt.Errorf("place bid on auction %d: %w - current bid is %.2f", auctionID, marketerrors.ErrBidTooLow, current)
	}

	bid := model.Bid{
		ID:        next(&r.seq.bids),
		AuctionID: auctionID,
		Bidder:    bidder,
		Amount:    amount,
		Time:      at,
	}
	r.bids[auctionID] = append(r.bids[auctionID], bid)
	return bid, nil
}

// auctionView derives currentBid, bidCount and bids from the bid index.
// Must be called with the lock held.
func (r *MemoryRepo) auctionView(auction model.Auction) model.Auction {
	bids := r.bids[auction.ID]
	auction.Bids = append([]model.Bid{}, bids...)
	auction.BidCount = len(bids)
	auction.CurrentBid = auction.StartingPrice
	if len(bids) > 0 {
		auction.CurrentBid = bids[len(bids)-1].Amount
	}
	return auction
}

// CreateClaim stores a new pending claim
func (r *MemoryRepo) CreateClaim(claim model.Claim) (model.Claim, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	claim.ID = next(&r.seq.claims)
	claim.Status = model.ClaimPending
	if claim.CreatedAt.IsZero() {
		claim.CreatedAt = time.Now().UTC()
	}
	r.claims[claim.ID] = claim
	return claim, nil
}

// CountClaims returns the number of claims submitted so far
func (r *MemoryRepo) CountClaims() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.claims)
}

// RecordContact stores a contact form message
func (r *MemoryRepo) RecordContact(msg model.ContactMessage) (model.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	msg.ID = next(&r.seq.contacts)
	if msg.ReceivedAt.IsZero() {
		msg.ReceivedAt = time.Now().UTC()
	}
	r.contacts[msg.ID] = msg
	return msg, nil
}

// AddAdmin stores an administrator account. This method is intended for seeding only.
func (r *MemoryRepo) AddAdmin(user model.User) model.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = next(&r.seq.users)
	user.Role = model.RoleAdmin
	user.IsVerified = true
	r.users[user.ID] = user
	return user
}
