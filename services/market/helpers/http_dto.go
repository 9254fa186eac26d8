package helpers

import (
	"time"

	market "lostfound-market/internal/marketService"
	model "lostfound-market/internal/models"
	"lostfound-market/internal/query"
)

// Request DTOs
type LoginRequest struct {
	// Email also accepts a college ID
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignupRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	CollegeID string `json:"collegeId" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Phone     string `json:"phone"`
}

func (r SignupRequest) Input() market.SignupInput {
	return market.SignupInput{Name: r.Name, Email: r.Email, CollegeID: r.CollegeID, Password: r.Password, Phone: r.Phone}
}

type ReportItemRequest struct {
	Title        string    `json:"title" binding:"required"`
	Category     string    `json:"category" binding:"required"`
	Location     string    `json:"location" binding:"required"`
	Date         time.Time `json:"date"`
	Description  string    `json:"description" binding:"required"`
	Image        string    `json:"image"`
	ReportedBy   string    `json:"reportedBy" binding:"required"`
	ContactEmail string    `json:"contactEmail" binding:"required"`
}

func (r ReportItemRequest) Input() market.ReportInput {
	return market.ReportInput{
		Title:        r.Title,
		Category:     r.Category,
		Location:     r.Location,
		Date:         r.Date,
		Description:  r.Description,
		Image:        r.Image,
		ReportedBy:   r.ReportedBy,
		ContactEmail: r.ContactEmail,
	}
}

type PlaceBidRequest struct {
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	BidderName string  `json:"bidderName"`
}

type CreateAuctionRequest struct {
	Title         string    `json:"title" binding:"required"`
	Category      string    `json:"category" binding:"required"`
	Description   string    `json:"description"`
	Image         string    `json:"image"`
	StartingPrice float64   `json:"startingPrice" binding:"required,gt=0"`
	EndTime       time.Time `json:"endTime" binding:"required"`
	Location      string    `json:"location"`
}

func (r CreateAuctionRequest) Auction() model.Auction {
	return model.Auction{
		Title:         r.Title,
		Category:      r.Category,
		Description:   r.Description,
		Image:         r.Image,
		StartingPrice: r.StartingPrice,
		EndTime:       r.EndTime,
		Location:      r.Location,
	}
}

type ClaimRequest struct {
	ItemID   int    `json:"itemId" binding:"required,gt=0"`
	ItemType string `json:"itemType" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	Proof    string `json:"proof" binding:"required"`
	Truthful bool   `json:"truthful"`
}

func (r ClaimRequest) Input() market.ClaimInput {
	return market.ClaimInput{
		ItemID:   r.ItemID,
		ItemType: model.ItemStatus(r.ItemType),
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Proof:    r.Proof,
		Truthful: r.Truthful,
	}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

func (r ContactRequest) Input() market.ContactInput {
	return market.ContactInput{Name: r.Name, Email: r.Email, Subject: r.Subject, Message: r.Message}
}

// Query DTOs
type ItemQuery struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Status   string `form:"status"`
	Location string `form:"location"`
	Approved *bool  `form:"approved"`
	Date     string `form:"date"`
	Sort     string `form:"sort"`
	Limit    int    `form:"limit" binding:"gte=0"`
	Offset   int    `form:"offset" binding:"gte=0"`
}

// Filter converts the query string into an item filter
func (q ItemQuery) Filter() (query.ItemFilter, error) {
	sort, err := query.ParseItemSort(q.Sort)
	if err != nil {
		return query.ItemFilter{}, err
	}
	window, err := query.ParseDateWindow(q.Date)
	if err != nil {
		return query.ItemFilter{}, err
	}
	return query.ItemFilter{
		Search:   q.Search,
		Category: q.Category,
		Status:   model.ItemStatus(q.Status),
		Location: q.Location,
		Approved: q.Approved,
		Date:     window,
		Sort:     sort,
		Page:     query.Page{Limit: q.Limit, Offset: q.Offset},
	}, nil
}

type AuctionQuery struct {
	Category string   `form:"category"`
	Status   string   `form:"status"`
	MinPrice *float64 `form:"min_price"`
	MaxPrice *float64 `form:"max_price"`
	Sort     string   `form:"sort"`
	Limit    int      `form:"limit" binding:"gte=0"`
	Offset   int      `form:"offset" binding:"gte=0"`
}

// Filter converts the query string into an auction filter
func (q AuctionQuery) Filter() (query.AuctionFilter, error) {
	sort, err := query.ParseAuctionSort(q.Sort)
	if err != nil {
		return query.AuctionFilter{}, err
	}
	return query.AuctionFilter{
		Category: q.Category,
		Status:   model.AuctionStatus(q.Status),
		Price:    query.PriceRange{Min: q.MinPrice, Max: q.MaxPrice},
		Sort:     sort,
		Page:     query.Page{Limit: q.Limit, Offset: q.Offset},
	}, nil
}
