package market

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"lostfound-market/internal/credentials"
	"lostfound-market/internal/marketerrors"
	"lostfound-market/internal/models"
	"lostfound-market/internal/query"
	"lostfound-market/internal/repository"
	"lostfound-market/utils"

	"github.com/go-playground/validator/v10"
)

// SignupInput carries the fields of a new account
type SignupInput struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	CollegeID string `json:"collegeId" validate:"required,alphanum"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	Phone     string `json:"phone" validate:"omitempty,e164"`
}

// ReportInput carries the fields of a lost or found item report
type ReportInput struct {
	Title        string    `json:"title" validate:"required"`
	Category     string    `json:"category" validate:"required"`
	Location     string    `json:"location" validate:"required"`
	Date         time.Time `json:"date"`
	Description  string    `json:"description" validate:"required"`
	Image        string    `json:"image" validate:"omitempty,url"`
	ReportedBy   string    `json:"reportedBy" validate:"required"`
	ContactEmail string    `json:"contactEmail" validate:"required,email"`
}

// ClaimInput carries an ownership claim
type ClaimInput struct {
	ItemID   int               `json:"itemId" validate:"required,gt=0"`
	ItemType models.ItemStatus `json:"itemType" validate:"required,oneof=lost found"`
	Name     string            `json:"name" validate:"required"`
	Email    string            `json:"email" validate:"required,email"`
	Phone    string            `json:"phone"`
	Proof    string            `json:"proof" validate:"required"`
	Truthful bool              `json:"truthful" validate:"required"`
}

// ContactInput carries a contact form message
type ContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required,max=5000"`
}

// OpenAuctionCounter reports how many auctions still accept bids
type OpenAuctionCounter interface {
	CountOpen() int
}

// Options tune marketplace policies
type Options struct {
	// AutoApprove publishes new reports without admin review.
	AutoApprove bool
	// ReturnedBaseline is reported as SuccessfullyReturned. Returns are not tracked yet.
	ReturnedBaseline int
	BcryptCost       int
	// Now defaults to time.Now.
	Now func() time.Time
}

// MarketService implements accounts, item reports, claims and platform stats
type MarketService struct {
	repo     repository.MarketDB
	auctions OpenAuctionCounter
	validate *validator.Validate
	opts     Options
}

// NewMarketService creates a new MarketService instance
func NewMarketService(repo repository.MarketDB, auctions OpenAuctionCounter, opts Options) *MarketService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &MarketService{
		repo:     repo,
		auctions: auctions,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		opts:     opts,
	}
}

// check runs struct validation and folds failures into ErrValidation
func (s *MarketService) check(in any) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("service: %w - %v", marketerrors.ErrValidation, err)
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("service: %w - invalid fields: %s", marketerrors.ErrValidation, strings.Join(fields, ", "))
}

// Register creates a student account
func (s *MarketService) Register(in SignupInput) (models.User, error) {
	if err := s.check(in); err != nil {
		return models.User{}, err
	}

	if _, err := s.repo.FindUserByEmail(in.Email); err == nil {
		return models.User{}, fmt.Errorf("service: %w", marketerrors.ErrEmailTaken)
	} else if !errors.Is(err, marketerrors.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("service: failed to look up email: %w", err)
	}
	if _, err := s.repo.FindUserByCollegeID(in.CollegeID); err == nil {
		return models.User{}, fmt.Errorf("service: %w", marketerrors.ErrCollegeIDTaken)
	} else if !errors.Is(err, marketerrors.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("service: failed to look up college id: %w", err)
	}

	hash, err := credentials.Hash(in.Password, s.opts.BcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("service: %w", err)
	}

	user, err := s.repo.CreateUser(models.User{
		Name:         in.Name,
		Email:        in.Email,
		CollegeID:    in.CollegeID,
		PasswordHash: hash,
		Phone:        in.Phone,
	})
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to create user %s: %w", in.Email, err)
	}
	return user, nil
}

// Authenticate verifies a credential. identifier is an email or a college ID.
func (s *MarketService) Authenticate(identifier, password string) (models.User, error) {
	if identifier == "" || password == "" {
		return models.User{}, fmt.Errorf("service: %w - identifier and password are required", marketerrors.ErrValidation)
	}
	user, err := s.repo.AuthenticateUser(identifier, password)
	if err != nil {
		return models.User{}, fmt.Errorf("service: %w", err)
	}
	return user, nil
}

// ListItems returns the items matching filter
func (s *MarketService) ListItems(filter query.ItemFilter) ([]models.Item, error) {
	if err := filter.Page.Validate(); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("service: %w - unknown item status %q", marketerrors.ErrValidation, filter.Status)
	}
	return query.Items(s.repo.ListItems(), filter, s.opts.Now()), nil
}

// RecentItems returns the newest approved items
func (s *MarketService) RecentItems(limit int) ([]models.Item, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("service: %w - limit must be positive, got %d", marketerrors.ErrValidation, limit)
	}
	approved := true
	return s.ListItems(query.ItemFilter{
		Approved: &approved,
		Sort:     query.SortNewest,
		Page:     query.Page{Limit: limit},
	})
}

// GetItem returns a single item
func (s *MarketService) GetItem(id int) (models.Item, error) {
	item, err := s.repo.GetItemByID(id)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to get item %d: %w", id, err)
	}
	return item, nil
}

// ReportItem files a lost or found report
func (s *MarketService) ReportItem(in ReportInput, status models.ItemStatus) (models.Item, error) {
	if !status.Valid() {
		return models.Item{}, fmt.Errorf("service: %w - unknown item status %q", marketerrors.ErrValidation, status)
	}
	if err := s.check(in); err != nil {
		return models.Item{}, err
	}

	date := in.Date
	if date.IsZero() {
		y, m, d := s.opts.Now().UTC().Date()
		date = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	item, err := s.repo.CreateItem(models.Item{
		Title:        in.Title,
		Category:     in.Category,
		Status:       status,
		Location:     in.Location,
		Date:         date,
		Description:  in.Description,
		Image:        in.Image,
		ReportedBy:   in.ReportedBy,
		Approved:     s.opts.AutoApprove,
		ContactEmail: in.ContactEmail,
	})
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to create %s item report: %w", status, err)
	}
	return item, nil
}

// ApproveItem publishes a pending report
func (s *MarketService) ApproveItem(id int) (models.Item, error) {
	item, err := s.repo.SetItemApproval(id, true)
	if err != nil {
		return models.Item{}, fmt.Errorf("service: failed to approve item %d: %w", id, err)
	}
	return item, nil
}

// DeleteItem removes a report
func (s *MarketService) DeleteItem(id int) error {
	if err := s.repo.DeleteItem(id); err != nil {
		return fmt.Errorf("service: failed to delete item %d: %w", id, err)
	}
	return nil
}

// SubmitClaim records an ownership claim on an existing item
func (s *MarketService) SubmitClaim(in ClaimInput) (models.Claim, error) {
	if err := s.check(in); err != nil {
		return models.Claim{}, err
	}

	item, err := s.repo.GetItemByID(in.ItemID)
	if err != nil {
		return models.Claim{}, fmt.Errorf("service: failed to load claimed item %d: %w", in.ItemID, err)
	}
	if item.Status != in.ItemType {
		return models.Claim{}, fmt.Errorf("service: %w - item %d is %s, not %s", marketerrors.ErrValidation, item.ID, item.Status, in.ItemType)
	}

	claim, err := s.repo.CreateClaim(models.Claim{
		ItemID:    in.ItemID,
		ItemType:  in.ItemType,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Proof:     in.Proof,
		Truthful:  in.Truthful,
		CreatedAt: s.opts.Now().UTC(),
	})
	if err != nil {
		return models.Claim{}, fmt.Errorf("service: failed to create claim for item %d: %w", in.ItemID, err)
	}
	return claim, nil
}

// SubmitContact stores a contact form message
func (s *MarketService) SubmitContact(in ContactInput) (models.ContactMessage, error) {
	if err := s.check(in); err != nil {
		return models.ContactMessage{}, err
	}

	msg, err := s.repo.RecordContact(models.ContactMessage{
		Name:       in.Name,
		Email:      in.Email,
		Subject:    in.Subject,
		Message:    in.Message,
		ReceivedAt: s.opts.Now().UTC(),
	})
	if err != nil {
		return models.ContactMessage{}, fmt.Errorf("service: failed to record contact message: %w", err)
	}

	utils.Info("contact message received", map[string]any{
		"contact_id": msg.ID,
		"email":      msg.Email,
		"subject":    msg.Subject,
	})
	return msg, nil
}

// Stats aggregates the landing page counters
func (s *MarketService) Stats() models.Stats {
	stats := models.Stats{SuccessfullyReturned: s.opts.ReturnedBaseline}
	for _, item := range s.repo.ListItems() {
		if !item.Approved {
			continue
		}
		stats.TotalActiveItems++
		switch item.Status {
		case models.ItemLost:
			stats.ActiveLostReports++
		case models.ItemFound:
			stats.FoundItemsAwaiting++
		}
	}
	if s.auctions != nil {
		stats.ItemsInAuction = s.auctions.CountOpen()
	}
	return stats
}
