package market

import (
	"errors"
	"strings"
	"testing"
	"time"

	"lostfound-market/internal/marketerrors"
	model "lostfound-market/internal/models"
	"lostfound-market/internal/query"
	"lostfound-market/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2025, 1, 16, 9, 30, 0, 0, time.UTC)

type openAuctions int

func (n openAuctions) CountOpen() int { return int(n) }

func newService(t *testing.T, opts Options) (*MarketService, *repository.MemoryRepo) {
	t.Helper()
	repo := repository.NewMemoryRepo()
	opts.BcryptCost = bcrypt.MinCost
	opts.Now = func() time.Time { return fixedNow }
	return NewMarketService(repo, openAuctions(3), opts), repo
}

func validSignup() SignupInput {
	return SignupInput{Name: "Om Pingale", Email: "omp@college.edu", CollegeID: "STU001", Password: "password123"}
}

func validReport() ReportInput {
	return ReportInput{
		Title:        "Blue Notebook",
		Category:     "books",
		Location:     "classroom",
		Description:  "Blue spiral notebook with physics notes.",
		ReportedBy:   "Sarah Wilson",
		ContactEmail: "sarah.wilson@college.edu",
	}
}

func TestMarketService_Register(t *testing.T) {
	service, repo := newService(t, Options{})

	user, err := service.Register(validSignup())
	require.NoError(t, err)
	require.Equal(t, model.RoleStudent, user.Role)
	require.True(t, user.IsVerified)
	require.NotEqual(t, "password123", user.PasswordHash)

	found, err := repo.FindUserByEmail("omp@college.edu")
	require.NoError(t, err)
	require.Equal(t, "omp@college.edu", found.Email)

	tests := []struct {
		name    string
		mutate  func(in *SignupInput)
		wantErr error
	}{
		{name: "duplicate_email", mutate: func(in *SignupInput) { in.CollegeID = "STU999" }, wantErr: marketerrors.ErrEmailTaken},
		{name: "duplicate_college_id", mutate: func(in *SignupInput) { in.Email = "other@college.edu" }, wantErr: marketerrors.ErrCollegeIDTaken},
		{name: "missing_name", mutate: func(in *SignupInput) { in.Name = ""; in.Email = "x@college.edu"; in.CollegeID = "STU100" }, wantErr: marketerrors.ErrValidation},
		{name: "bad_email", mutate: func(in *SignupInput) { in.Email = "not-an-email"; in.CollegeID = "STU101" }, wantErr: marketerrors.ErrValidation},
		{name: "short_password", mutate: func(in *SignupInput) { in.Email = "y@college.edu"; in.CollegeID = "STU102"; in.Password = "short" }, wantErr: marketerrors.ErrValidation},
		{name: "password_over_72_bytes", mutate: func(in *SignupInput) { in.Email = "long@college.edu"; in.CollegeID = "STU104"; in.Password = strings.Repeat("x", 80) }, wantErr: marketerrors.ErrValidation},
		{name: "multibyte_password_over_72_bytes", mutate: func(in *SignupInput) { in.Email = "wide@college.edu"; in.CollegeID = "STU105"; in.Password = strings.Repeat("é", 40) }, wantErr: marketerrors.ErrValidation},
		{name: "bad_phone", mutate: func(in *SignupInput) { in.Email = "z@college.edu"; in.CollegeID = "STU103"; in.Phone = "call me" }, wantErr: marketerrors.ErrValidation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validSignup()
			tc.mutate(&in)
			_, err := service.Register(in)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}

	require.ErrorIs(t, func() error { _, err := service.Register(validSignup()); return err }(), marketerrors.ErrConflict)
}

func TestMarketService_Register_RepoFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockMarketDB(ctrl)
	service := NewMarketService(mockRepo, nil, Options{BcryptCost: bcrypt.MinCost})

	mockRepo.EXPECT().FindUserByEmail("omp@college.edu").Return(model.User{}, errors.New("store offline"))

	_, err := service.Register(validSignup())
	require.Error(t, err)
	require.NotErrorIs(t, err, marketerrors.ErrConflict)
	require.Contains(t, err.Error(), "store offline")
}

func TestMarketService_Authenticate(t *testing.T) {
	service, _ := newService(t, Options{})
	_, err := service.Register(validSignup())
	require.NoError(t, err)

	tests := []struct {
		name       string
		identifier string
		password   string
		wantErr    error
	}{
		{name: "by_email", identifier: "omp@college.edu", password: "password123"},
		{name: "by_college_id", identifier: "STU001", password: "password123"},
		{name: "wrong_password", identifier: "STU001", password: "password", wantErr: marketerrors.ErrAuth},
		{name: "unknown_user", identifier: "STU404", password: "password123", wantErr: marketerrors.ErrAuth},
		{name: "empty_password", identifier: "STU001", password: "", wantErr: marketerrors.ErrValidation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			user, err := service.Authenticate(tc.identifier, tc.password)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "STU001", user.CollegeID)
		})
	}
}

func TestMarketService_ReportItem(t *testing.T) {
	t.Run("pending_by_default", func(t *testing.T) {
		service, _ := newService(t, Options{})

		item, err := service.ReportItem(validReport(), model.ItemLost)
		require.NoError(t, err)
		require.False(t, item.Approved)
		require.Equal(t, model.ItemLost, item.Status)
		require.Equal(t, time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC), item.Date)
	})

	t.Run("auto_approve_policy", func(t *testing.T) {
		service, _ := newService(t, Options{AutoApprove: true})

		item, err := service.ReportItem(validReport(), model.ItemFound)
		require.NoError(t, err)
		require.True(t, item.Approved)
	})

	t.Run("keeps_reported_date", func(t *testing.T) {
		service, _ := newService(t, Options{})
		in := validReport()
		in.Date = time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)

		item, err := service.ReportItem(in, model.ItemFound)
		require.NoError(t, err)
		require.Equal(t, in.Date, item.Date)
	})

	t.Run("validation", func(t *testing.T) {
		service, repo := newService(t, Options{})

		in := validReport()
		in.ContactEmail = ""
		_, err := service.ReportItem(in, model.ItemLost)
		require.ErrorIs(t, err, marketerrors.ErrValidation)
		require.Contains(t, err.Error(), "ContactEmail")

		_, err = service.ReportItem(validReport(), model.ItemStatus("stolen"))
		require.ErrorIs(t, err, marketerrors.ErrValidation)
		require.Empty(t, repo.ListItems())
	})
}

func TestMarketService_ItemsListingAndAdmin(t *testing.T) {
	service, _ := newService(t, Options{})

	lost, err := service.ReportItem(validReport(), model.ItemLost)
	require.NoError(t, err)
	in := validReport()
	in.Title, in.Category = "Black Backpack", "bags"
	found, err := service.ReportItem(in, model.ItemFound)
	require.NoError(t, err)

	recent, err := service.RecentItems(8)
	require.NoError(t, err)
	require.Empty(t, recent)

	_, err = service.ApproveItem(found.ID)
	require.NoError(t, err)

	recent, err = service.RecentItems(8)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	require.Equal(t, found.ID, recent[0].ID)

	_, err = service.RecentItems(0)
	require.ErrorIs(t, err, marketerrors.ErrValidation)

	bags, err := service.ListItems(query.ItemFilter{Category: "bags"})
	require.NoError(t, err)
	require.Len(t, bags, 1)

	_, err = service.ListItems(query.ItemFilter{Status: "stolen"})
	require.ErrorIs(t, err, marketerrors.ErrValidation)

	_, err = service.ListItems(query.ItemFilter{Page: query.Page{Offset: -3}})
	require.ErrorIs(t, err, marketerrors.ErrValidation)

	got, err := service.GetItem(lost.ID)
	require.NoError(t, err)
	require.Equal(t, "Blue Notebook", got.Title)

	require.NoError(t, service.DeleteItem(lost.ID))
	_, err = service.GetItem(lost.ID)
	require.ErrorIs(t, err, marketerrors.ErrNotFound)
	require.ErrorIs(t, service.DeleteItem(lost.ID), marketerrors.ErrItemNotFound)

	_, err = service.ApproveItem(99)
	require.ErrorIs(t, err, marketerrors.ErrItemNotFound)
}

func TestMarketService_SubmitClaim(t *testing.T) {
	service, repo := newService(t, Options{})
	found, err := service.ReportItem(validReport(), model.ItemFound)
	require.NoError(t, err)

	valid := ClaimInput{ItemID: found.ID, ItemType: model.ItemFound, Name: "Sarah", Email: "sarah.wilson@college.edu", Proof: "My name is on the cover", Truthful: true}

	claim, err := service.SubmitClaim(valid)
	require.NoError(t, err)
	require.Equal(t, model.ClaimPending, claim.Status)
	require.Equal(t, fixedNow, claim.CreatedAt)

	tests := []struct {
		name    string
		mutate  func(in *ClaimInput)
		wantErr error
	}{
		{name: "not_attested", mutate: func(in *ClaimInput) { in.Truthful = false }, wantErr: marketerrors.ErrValidation},
		{name: "missing_proof", mutate: func(in *ClaimInput) { in.Proof = "" }, wantErr: marketerrors.ErrValidation},
		{name: "bad_item_type", mutate: func(in *ClaimInput) { in.ItemType = "misc" }, wantErr: marketerrors.ErrValidation},
		{name: "type_mismatch", mutate: func(in *ClaimInput) { in.ItemType = model.ItemLost }, wantErr: marketerrors.ErrValidation},
		{name: "unknown_item", mutate: func(in *ClaimInput) { in.ItemID = 404 }, wantErr: marketerrors.ErrItemNotFound},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			_, err := service.SubmitClaim(in)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}

	require.Equal(t, 1, repo.CountClaims())
}

func TestMarketService_SubmitContact(t *testing.T) {
	service, _ := newService(t, Options{})

	msg, err := service.SubmitContact(ContactInput{Name: "Om", Email: "omp@college.edu", Subject: "Hi", Message: "Thanks for finding my phone"})
	require.NoError(t, err)
	require.Equal(t, 1, msg.ID)
	require.Equal(t, fixedNow, msg.ReceivedAt)

	_, err = service.SubmitContact(ContactInput{Name: "Om", Email: "omp@college.edu"})
	require.ErrorIs(t, err, marketerrors.ErrValidation)
}

func TestMarketService_Stats(t *testing.T) {
	service, _ := newService(t, Options{ReturnedBaseline: 247, AutoApprove: true})

	_, err := service.ReportItem(validReport(), model.ItemLost)
	require.NoError(t, err)
	_, err = service.ReportItem(validReport(), model.ItemFound)
	require.NoError(t, err)
	_, err = service.ReportItem(validReport(), model.ItemFound)
	require.NoError(t, err)

	stats := service.Stats()
	require.Equal(t, model.Stats{
		TotalActiveItems:     3,
		SuccessfullyReturned: 247,
		ActiveLostReports:    1,
		FoundItemsAwaiting:   2,
		ItemsInAuction:       3,
	}, stats)
}
