// Package fixtures seeds a repository with the demo dataset.
package fixtures

import (
	"fmt"
	"time"

	"lostfound-market/internal/credentials"
	model "lostfound-market/internal/models"
	"lostfound-market/internal/repository"
)

type seedUser struct {
	name, email, collegeID, password, phone string
	admin                                   bool
}

var users = []seedUser{
	{name: "Om Pingale", email: "omp@college.edu", collegeID: "STU001", password: "password123", phone: "+1234567890"},
	{name: "Anmol Berry", email: "anmolb@college.edu", collegeID: "STU002", password: "password123", phone: "+1234567891"},
	{name: "Admin User", email: "admin@college.edu", collegeID: "ADM001", password: "admin123", phone: "+1234567892", admin: true},
}

func day(d int) time.Time {
	return time.Date(2025, time.January, d, 0, 0, 0, 0, time.UTC)
}

var items = []model.Item{
	{Title: "iPhone 13 Pro", Category: "electronics", Status: model.ItemLost, Location: "library", Date: day(15),
		Description: "Black iPhone 13 Pro with blue case. Has a small scratch on the back.",
		Image:       "https://images.pexels.com/photos/788946/pexels-photo-788946.jpeg?auto=compress&cs=tinysrgb&w=400",
		ReportedBy:  "Om Pingale", Approved: true, ContactEmail: "omp@college.edu"},
	{Title: "Black Backpack", Category: "bags", Status: model.ItemFound, Location: "cafeteria", Date: day(14),
		Description: "Large black backpack with laptop compartment. Contains some books.",
		Image:       "https://images.pexels.com/photos/2905238/pexels-photo-2905238.jpeg?auto=compress&cs=tinysrgb&w=400",
		ReportedBy:  "Anmol Berry", Approved: true, ContactEmail: "anmolb@college.edu"},
	{Title: "Silver Watch", Category: "jewelry", Status: model.ItemFound, Location: "gym", Date: day(13),
		Description: "Silver digital watch with black strap. Waterproof.",
		Image:       "https://images.pexels.com/photos/190819/pexels-photo-190819.jpeg?auto=compress&cs=tinysrgb&w=400",
		ReportedBy:  "Gaurav", Approved: true, ContactEmail: "Gaurav@college.edu"},
	{Title: "Blue Notebook", Category: "books", Status: model.ItemLost, Location: "classroom", Date: day(12),
		Description: `Blue spiral notebook with physics notes. Has name "Sarah" on cover.`,
		Image:       "https://images.pexels.com/photos/159711/books-bookstore-book-reading-159711.jpeg?auto=compress&cs=tinysrgb&w=400",
		ReportedBy:  "Sarah Wilson", Approved: true, ContactEmail: "sarah.wilson@college.edu"},
	{Title: "Red Jacket", Category: "clothing", Status: model.ItemFound, Location: "auditorium", Date: day(11),
		Description: "Red winter jacket, size medium. Has university logo.",
		Image:       "https://images.pexels.com/photos/1040945/pexels-photo-1040945.jpeg?auto=compress&cs=tinysrgb&w=400",
		ReportedBy:  "Tom Brown", Approved: true, ContactEmail: "tom.brown@college.edu"},
	{Title: "Car Keys", Category: "keys", Status: model.ItemLost, Location: "parking", Date: day(10),
		Description: "Toyota car keys with blue keychain. Has house keys attached.",
		Image:       "https://images.pexels.com/photos/97080/pexels-photo-97080.jpeg?auto=compress&cs=tinysrgb&w=400",
		ReportedBy:  "Lisa Davis", Approved: true, ContactEmail: "lisa.davis@college.edu"},
}

type seedBid struct {
	bidder string
	amount float64
	ago    time.Duration
}

type seedAuction struct {
	auction model.Auction
	endsIn  time.Duration
	bids    []seedBid
}

var auctions = []seedAuction{
	{
		auction: model.Auction{Title: "Bluetooth Headphones", Category: "electronics", Location: "Library", StartingPrice: 25,
			Description: "Sony WH-1000XM4 wireless headphones. Excellent condition.",
			Image:       "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg?auto=compress&cs=tinysrgb&w=400"},
		endsIn: 9 * 24 * time.Hour,
		bids:   []seedBid{{"Jane Smith", 40, 3 * time.Hour}, {"John Doe", 45, 2 * time.Hour}},
	},
	{
		auction: model.Auction{Title: "Designer Backpack", Category: "bags", Location: "Cafeteria", StartingPrice: 20,
			Description: "High-quality leather backpack with multiple compartments.",
			Image:       "https://images.pexels.com/photos/2905238/pexels-photo-2905238.jpeg?auto=compress&cs=tinysrgb&w=400"},
		endsIn: 6 * 24 * time.Hour,
		bids:   []seedBid{{"Sarah Wilson", 28, 5 * time.Hour}, {"Mike Johnson", 32, time.Hour}},
	},
	{
		auction: model.Auction{Title: "Scientific Calculator", Category: "electronics", Location: "Math Building", StartingPrice: 15,
			Description: "TI-84 Plus graphing calculator. Perfect for math and science courses.",
			Image:       "https://images.pexels.com/photos/6238297/pexels-photo-6238297.jpeg?auto=compress&cs=tinysrgb&w=400"},
		endsIn: 8 * 24 * time.Hour,
		bids:   []seedBid{{"Tom Brown", 28, 4 * time.Hour}},
	},
	{
		auction: model.Auction{Title: "Winter Coat", Category: "clothing", Location: "Student Center", StartingPrice: 30,
			Description: "Warm winter coat, size large. Navy blue color.",
			Image:       "https://images.pexels.com/photos/1040945/pexels-photo-1040945.jpeg?auto=compress&cs=tinysrgb&w=400"},
		endsIn: 10 * time.Hour,
		bids:   []seedBid{{"Lisa Davis", 35, 6 * time.Hour}},
	},
}

// Seed populates repo with the demo users, items and auctions.
// Auction end times are relative to now so the demo never goes stale.
func Seed(repo *repository.MemoryRepo, now time.Time, bcryptCost int) error {
	for _, su := range users {
		hash, err := credentials.Hash(su.password, bcryptCost)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", su.email, err)
		}
		u := model.User{Name: su.name, Email: su.email, CollegeID: su.collegeID, PasswordHash: hash, Phone: su.phone}
		if su.admin {
			repo.AddAdmin(u)
			continue
		}
		if _, err := repo.CreateUser(u); err != nil {
			return fmt.Errorf("seed user %s: %w", su.email, err)
		}
	}

	for _, item := range items {
		if _, err := repo.CreateItem(item); err != nil {
			return fmt.Errorf("seed item %s: %w", item.Title, err)
		}
	}

	for _, sa := range auctions {
		a := sa.auction
		a.EndTime = now.Add(sa.endsIn)
		created, err := repo.CreateAuction(a)
		if err != nil {
			return fmt.Errorf("seed auction %s: %w", a.Title, err)
		}
		for _, b := range sa.bids {
			if _, err := repo.PlaceBid(created.ID, b.bidder, b.amount, now.Add(-b.ago)); err != nil {
				return fmt.Errorf("seed bid on %s: %w", a.Title, err)
			}
		}
	}

	return nil
}
