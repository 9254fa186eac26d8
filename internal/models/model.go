package models

import "time"

// Role is the access level of a user
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// ItemStatus tells whether an item was reported lost or found
type ItemStatus string

const (
	ItemLost  ItemStatus = "lost"
	ItemFound ItemStatus = "found"
)

// ClaimStatus is the review state of an ownership claim
type ClaimStatus string

const ClaimPending ClaimStatus = "pending"

// User represents a registered member of the platform
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	CollegeID    string `json:"collegeId"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	IsVerified   bool   `json:"isVerified"`
	Phone        string `json:"phone,omitempty"`
}

// UserProfile is the public view of a user, without the credential
type UserProfile struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	CollegeID  string `json:"collegeId"`
	Role       Role   `json:"role"`
	IsVerified bool   `json:"isVerified"`
	Phone      string `json:"phone,omitempty"`
}

// Profile returns the public view of u
func (u User) Profile() UserProfile {
	return UserProfile{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		CollegeID:  u.CollegeID,
		Role:       u.Role,
		IsVerified: u.IsVerified,
		Phone:      u.Phone,
	}
}

// Session is returned on successful login or signup
type Session struct {
	User  UserProfile `json:"user"`
	Token string      `json:"token"`
}

// Item represents a lost or found item report
type Item struct {
	ID           int        `json:"id"`
	Title        string     `json:"title"`
	Category     string     `json:"category"`
	Status       ItemStatus `json:"status"`
	Location     string     `json:"location"`
	Date         time.Time  `json:"date"`
	Description  string     `json:"description"`
	Image        string     `json:"image,omitempty"`
	ReportedBy   string     `json:"reportedBy"`
	Approved     bool       `json:"approved"`
	ContactEmail string     `json:"contactEmail"`
}

// Bid represents an accepted bid on an auction
type Bid struct {
	ID        int       `json:"id"`
	AuctionID int       `json:"auctionId"`
	Bidder    string    `json:"bidder"`
	Amount    float64   `json:"amount"`
	Time      time.Time `json:"time"`
}

// Auction represents a timed auction for an unclaimed found item.
// CurrentBid, BidCount, Bids and Status are derived on read.
type Auction struct {
	ID            int           `json:"id"`
	Title         string        `json:"title"`
	Category      string        `json:"category"`
	Description   string        `json:"description"`
	Image         string        `json:"image,omitempty"`
	StartingPrice float64       `json:"startingPrice"`
	CurrentBid    float64       `json:"currentBid"`
	BidCount      int           `json:"bidCount"`
	EndTime       time.Time     `json:"endTime"`
	Status        AuctionStatus `json:"status"`
	Location      string        `json:"location"`
	Bids          []Bid         `json:"bids"`
}

// Claim represents an ownership claim on an item
type Claim struct {
	ID        int         `json:"id"`
	ItemID    int         `json:"itemId"`
	ItemType  ItemStatus  `json:"itemType"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone,omitempty"`
	Proof     string      `json:"proof"`
	Truthful  bool        `json:"truthful"`
	Status    ClaimStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

// ContactMessage is a message sent through the contact form
type ContactMessage struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject,omitempty"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// Stats holds the platform-wide counters shown on the landing page
type Stats struct {
	TotalActiveItems     int `json:"totalActiveItems"`
	SuccessfullyReturned int `json:"successfullyReturned"`
	ActiveLostReports    int `json:"activeLostReports"`
	FoundItemsAwaiting   int `json:"foundItemsAwaiting"`
	ItemsInAuction       int `json:"itemsInAuction"`
}
